// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package sqlitestore

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rollupkit/client/common"
	"github.com/rollupkit/client/store"
)

func open(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "db.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_UpdateRollsBackOnError(t *testing.T) {
	s := open(t)
	id := common.AccountId{Prefix: 1, Suffix: 2}

	err := s.Update(func(tx store.Tx) error {
		require.NoError(t, tx.UpsertAccountHeader(common.AccountHeader{Id: id}))
		return errors.New("boom")
	})
	require.Error(t, err)

	err = s.View(func(tx store.Tx) error {
		_, err := tx.AccountHeader(id)
		return err
	})
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestStore_UpdateCommitsOnSuccess(t *testing.T) {
	s := open(t)
	id := common.AccountId{Prefix: 1, Suffix: 2}

	require.NoError(t, s.Update(func(tx store.Tx) error {
		return tx.UpsertAccountHeader(common.AccountHeader{Id: id, Nonce: 7})
	}))

	require.NoError(t, s.View(func(tx store.Tx) error {
		h, err := tx.AccountHeader(id)
		require.NoError(t, err)
		require.Equal(t, uint64(7), h.Nonce)
		return nil
	}))
}

func TestStore_NullifierUniqueness(t *testing.T) {
	s := open(t)
	n := common.Nullifier{1}
	note1 := common.NoteId{1}
	note2 := common.NoteId{2}

	require.NoError(t, s.Update(func(tx store.Tx) error {
		return tx.UpsertInputNote(common.InputNoteRecord{Id: note1, Nullifier: &n})
	}))

	err := s.Update(func(tx store.Tx) error {
		return tx.UpsertInputNote(common.InputNoteRecord{Id: note2, Nullifier: &n})
	})
	require.ErrorIs(t, err, common.ErrProtocolViolation)
}

func TestStore_ExportImportRoundTrip(t *testing.T) {
	s := open(t)
	id := common.AccountId{Prefix: 9, Suffix: 1}
	require.NoError(t, s.Update(func(tx store.Tx) error {
		if err := tx.UpsertAccountHeader(common.AccountHeader{Id: id, Nonce: 3}); err != nil {
			return err
		}
		return tx.SetSyncCursor(42)
	}))

	var dump store.Dump
	require.NoError(t, s.View(func(tx store.Tx) error {
		d, err := tx.Export()
		dump = d
		return err
	}))

	encoded, err := store.EncodeDump(dump)
	require.NoError(t, err)
	decoded, err := store.DecodeDump(encoded)
	require.NoError(t, err)

	s2 := open(t)
	require.NoError(t, s2.Update(func(tx store.Tx) error {
		return tx.Import(decoded)
	}))

	require.NoError(t, s2.View(func(tx store.Tx) error {
		h, err := tx.AccountHeader(id)
		require.NoError(t, err)
		require.Equal(t, uint64(3), h.Nonce)
		block, empty, err := tx.SyncCursor()
		require.NoError(t, err)
		require.False(t, empty)
		require.Equal(t, common.BlockNumber(42), block)
		return nil
	}))
}

func TestStore_PruneKeepsTracked(t *testing.T) {
	s := open(t)
	require.NoError(t, s.Update(func(tx store.Tx) error {
		for i := common.BlockNumber(0); i < 3; i++ {
			if err := tx.InsertBlockHeader(common.BlockHeader{BlockNum: i}, i == 1); err != nil {
				return err
			}
		}
		return nil
	}))

	require.NoError(t, s.Update(func(tx store.Tx) error {
		return tx.PruneHeadersBelow(2)
	}))

	require.NoError(t, s.View(func(tx store.Tx) error {
		_, err := tx.BlockHeader(0)
		require.ErrorIs(t, err, common.ErrNotFound)
		_, err = tx.BlockHeader(1)
		require.NoError(t, err)
		_, err = tx.BlockHeader(2)
		require.NoError(t, err)
		return nil
	}))
}

func TestStore_ChainLogWalk(t *testing.T) {
	s := open(t)
	require.NoError(t, s.Update(func(tx store.Tx) error {
		left := uint64(1)
		right := uint64(2)
		parent := uint64(3)
		nodes := []store.ChainLogNode{
			{Id: left, Hash: common.Hash{1}},
			{Id: right, Hash: common.Hash{2}},
			{Id: parent, Hash: common.Hash{3}, Left: &left, Right: &right},
		}
		return tx.InsertChainLogNodes(nodes)
	}))

	require.NoError(t, s.View(func(tx store.Tx) error {
		p, sibling, isLeft, err := tx.ParentOf(1)
		require.NoError(t, err)
		require.Equal(t, uint64(3), p.Id)
		require.Equal(t, uint64(2), sibling)
		require.True(t, isLeft)

		_, _, _, err = tx.ParentOf(3)
		require.ErrorIs(t, err, common.ErrNotFound)
		return nil
	}))
}
