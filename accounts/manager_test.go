// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package accounts

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rollupkit/client/common"
	"github.com/rollupkit/client/store"
	"github.com/rollupkit/client/store/memstore"
)

func TestManager_CreateIsDeterministicAndRejectsDuplicate(t *testing.T) {
	s := memstore.New()
	m := New()
	id := common.AccountId{Prefix: 1, Suffix: 2}
	seed := common.Hash{9}
	vault, storage, code := common.Hash{1}, common.Hash{2}, common.Hash{3}

	require.NoError(t, s.Update(func(tx store.Tx) error {
		return m.Create(tx, id, seed, common.StorageModePrivate, common.AccountTypeRegular, true, vault, storage, code)
	}))

	var h common.AccountHeader
	require.NoError(t, s.View(func(tx store.Tx) error {
		var err error
		h, err = tx.AccountHeader(id)
		return err
	}))
	require.True(t, h.IsNew())
	require.Equal(t, common.CommitAccount(id, 0, vault, storage, code), h.Commitment)

	err := s.Update(func(tx store.Tx) error {
		return m.Create(tx, id, seed, common.StorageModePrivate, common.AccountTypeRegular, true, vault, storage, code)
	})
	require.ErrorIs(t, err, common.ErrAccountAlreadyTracked)
}

func TestManager_ReconcileCommitsProvisional(t *testing.T) {
	s := memstore.New()
	m := New()
	id := common.AccountId{Prefix: 1}
	committed := common.Hash{5}

	require.NoError(t, s.Update(func(tx store.Tx) error {
		return tx.UpsertAccountHeader(common.AccountHeader{Id: id, Commitment: common.Hash{1}})
	}))
	require.NoError(t, s.Update(func(tx store.Tx) error {
		return m.BeginUpdate(tx, id, committed)
	}))
	require.NoError(t, s.Update(func(tx store.Tx) error {
		return m.Reconcile(tx, id, committed, 1)
	}))

	require.NoError(t, s.View(func(tx store.Tx) error {
		h, err := tx.AccountHeader(id)
		require.NoError(t, err)
		require.Equal(t, committed, h.Commitment)
		require.Nil(t, h.ProvisionalCommitment)
		require.False(t, h.Locked)
		return nil
	}))
}

func TestManager_ReconcileLocksOnDivergence(t *testing.T) {
	s := memstore.New()
	m := New()
	id := common.AccountId{Prefix: 1}

	require.NoError(t, s.Update(func(tx store.Tx) error {
		return tx.UpsertAccountHeader(common.AccountHeader{Id: id, Commitment: common.Hash{1}})
	}))
	require.NoError(t, s.Update(func(tx store.Tx) error {
		return m.BeginUpdate(tx, id, common.Hash{2})
	}))
	require.NoError(t, s.Update(func(tx store.Tx) error {
		return m.Reconcile(tx, id, common.Hash{3}, 1)
	}))

	require.NoError(t, s.View(func(tx store.Tx) error {
		h, err := tx.AccountHeader(id)
		require.NoError(t, err)
		require.True(t, h.Locked)
		return nil
	}))

	err := s.Update(func(tx store.Tx) error {
		return m.BeginUpdate(tx, id, common.Hash{4})
	})
	require.ErrorIs(t, err, common.ErrAccountLocked)
}

func TestForeignCodeCache(t *testing.T) {
	c, err := NewForeignCodeCache(2)
	require.NoError(t, err)

	id := common.AccountId{Prefix: 1}
	c.Put(common.ForeignAccountCode{AccountId: id, CodeRoot: common.Hash{1}})

	got, ok := c.Get(id)
	require.True(t, ok)
	require.Equal(t, common.Hash{1}, got.CodeRoot)

	c.Remove(id)
	_, ok = c.Get(id)
	require.False(t, ok)
}
