// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package notes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rollupkit/client/common"
	"github.com/rollupkit/client/store"
	"github.com/rollupkit/client/store/memstore"
)

func TestManager_InputNoteLifecycle(t *testing.T) {
	s := memstore.New()
	m := New()
	id := common.NoteId{1}
	nullifier := common.Nullifier{2}
	txId := common.Hash{3}

	require.NoError(t, s.Update(func(tx store.Tx) error {
		return tx.UpsertInputNote(common.InputNoteRecord{Id: id, State: common.InputStateExpected})
	}))

	meta := common.NoteMetadata{Sender: common.AccountId{Prefix: 1}, Tag: 5}
	require.NoError(t, s.Update(func(tx store.Tx) error {
		return m.OnMetadataArrived(tx, id, meta, &nullifier)
	}))
	require.NoError(t, s.Update(func(tx store.Tx) error {
		// Re-delivery of identical metadata is a no-op, not an error.
		return m.OnMetadataArrived(tx, id, meta, &nullifier)
	}))
	require.NoError(t, s.View(func(tx store.Tx) error {
		r, err := tx.InputNoteById(id)
		require.NoError(t, err)
		require.Equal(t, common.InputStateUnverified, r.State)
		return nil
	}))

	require.NoError(t, s.Update(func(tx store.Tx) error {
		return m.OnProofVerified(tx, id, 10)
	}))
	require.NoError(t, s.View(func(tx store.Tx) error {
		r, err := tx.InputNoteById(id)
		require.NoError(t, err)
		require.Equal(t, common.InputStateCommitted, r.State)
		require.Equal(t, common.BlockNumber(10), r.Proof.Block)
		return nil
	}))

	require.NoError(t, s.Update(func(tx store.Tx) error {
		return m.OnSubmittedAuthenticated(tx, id, txId)
	}))
	require.NoError(t, s.View(func(tx store.Tx) error {
		r, err := tx.InputNoteById(id)
		require.NoError(t, err)
		require.Equal(t, common.InputStateProcessingAuthenticated, r.State)
		require.Equal(t, txId, *r.ConsumingTxId)
		return nil
	}))

	require.NoError(t, s.Update(func(tx store.Tx) error {
		return m.OnNullifierObserved(tx, NullifierObservation{Nullifier: nullifier, Block: 11, TxId: txId}, true)
	}))
	require.NoError(t, s.View(func(tx store.Tx) error {
		r, err := tx.InputNoteById(id)
		require.NoError(t, err)
		require.Equal(t, common.InputStateConsumedAuthenticatedLocal, r.State)
		return nil
	}))
}

func TestManager_OnNullifierObserved_External(t *testing.T) {
	s := memstore.New()
	m := New()
	id := common.NoteId{1}
	nullifier := common.Nullifier{2}
	meta := common.NoteMetadata{Sender: common.AccountId{Prefix: 1}}

	require.NoError(t, s.Update(func(tx store.Tx) error {
		return tx.UpsertInputNote(common.InputNoteRecord{
			Id: id, State: common.InputStateCommitted, Nullifier: &nullifier, Metadata: &meta,
		})
	}))

	require.NoError(t, s.Update(func(tx store.Tx) error {
		return m.OnNullifierObserved(tx, NullifierObservation{Nullifier: nullifier, Block: 11, TxId: common.Hash{9}}, false)
	}))
	require.NoError(t, s.View(func(tx store.Tx) error {
		r, err := tx.InputNoteById(id)
		require.NoError(t, err)
		require.Equal(t, common.InputStateConsumedExternal, r.State)
		return nil
	}))
}

func TestManager_OnTransactionDiscarded_RevertsProcessing(t *testing.T) {
	s := memstore.New()
	m := New()
	idAuth := common.NoteId{1}
	idUnauth := common.NoteId{2}
	txId := common.Hash{7}
	meta := common.NoteMetadata{Sender: common.AccountId{Prefix: 1}}

	require.NoError(t, s.Update(func(tx store.Tx) error {
		if err := tx.UpsertInputNote(common.InputNoteRecord{
			Id: idAuth, State: common.InputStateProcessingAuthenticated, ConsumingTxId: &txId,
		}); err != nil {
			return err
		}
		return tx.UpsertInputNote(common.InputNoteRecord{
			Id: idUnauth, State: common.InputStateProcessingUnauthenticated, ConsumingTxId: &txId, Metadata: &meta,
		})
	}))

	require.NoError(t, s.Update(func(tx store.Tx) error {
		return m.OnTransactionDiscarded(tx, txId)
	}))

	require.NoError(t, s.View(func(tx store.Tx) error {
		r, err := tx.InputNoteById(idAuth)
		require.NoError(t, err)
		require.Equal(t, common.InputStateCommitted, r.State)
		require.Nil(t, r.ConsumingTxId)

		r2, err := tx.InputNoteById(idUnauth)
		require.NoError(t, err)
		require.Equal(t, common.InputStateUnverified, r2.State)
		return nil
	}))
}

func TestManager_OutputNoteLifecycle(t *testing.T) {
	s := memstore.New()
	m := New()
	id := common.NoteId{1}
	txId := common.Hash{4}

	require.NoError(t, s.Update(func(tx store.Tx) error {
		return tx.UpsertOutputNote(common.OutputNoteRecord{Id: id, State: common.OutputStateExpected, ProducingTxId: txId})
	}))
	require.NoError(t, s.Update(func(tx store.Tx) error {
		return m.OnOutputCommitted(tx, id)
	}))
	require.NoError(t, s.Update(func(tx store.Tx) error {
		return m.OnOutputConsumed(tx, id, true)
	}))
	require.NoError(t, s.View(func(tx store.Tx) error {
		r, err := tx.OutputNoteById(id)
		require.NoError(t, err)
		require.Equal(t, common.OutputStateConsumedLocal, r.State)
		return nil
	}))
}

func TestManager_Consumability(t *testing.T) {
	s := memstore.New()
	m := New()
	recallAt := common.BlockNumber(100)
	sender := common.AccountId{Prefix: 1}
	meta := common.NoteMetadata{Sender: sender, ExecutionHint: common.ExecutionHint{RecallAfter: &recallAt}}

	require.NoError(t, s.Update(func(tx store.Tx) error {
		if err := tx.UpsertInputNote(common.InputNoteRecord{
			Id: common.NoteId{1}, State: common.InputStateCommitted, Metadata: &meta,
		}); err != nil {
			return err
		}
		return tx.UpsertInputNote(common.InputNoteRecord{Id: common.NoteId{2}, State: common.InputStateExpected})
	}))

	require.NoError(t, s.View(func(tx store.Tx) error {
		entries, err := m.Consumability(tx, nil, nil)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, sender, entries[0].AccountId)
		require.Equal(t, &recallAt, entries[0].ConsumableAfter)
		return nil
	}))

	require.NoError(t, s.View(func(tx store.Tx) error {
		entries, err := m.Consumability(tx, nil, func(common.InputNoteRecord, common.AccountId) bool { return false })
		require.NoError(t, err)
		require.Empty(t, entries)
		return nil
	}))
}

// TestManager_ConsumabilityRecallWindowOnlyBindsSender covers spec.md §8
// scenario 2: a note sent subject to a recall window is immediately
// consumable by its recipient, while the sender must still wait out the
// window to reclaim it.
func TestManager_ConsumabilityRecallWindowOnlyBindsSender(t *testing.T) {
	s := memstore.New()
	m := New()
	recallAt := common.BlockNumber(100)
	sender := common.AccountId{Prefix: 1}
	recipient := common.AccountId{Prefix: 2}
	meta := common.NoteMetadata{Sender: sender, ExecutionHint: common.ExecutionHint{RecallAfter: &recallAt}}

	require.NoError(t, s.Update(func(tx store.Tx) error {
		return tx.UpsertInputNote(common.InputNoteRecord{
			Id: common.NoteId{1}, State: common.InputStateCommitted, Metadata: &meta,
		})
	}))

	require.NoError(t, s.View(func(tx store.Tx) error {
		entries, err := m.Consumability(tx, &recipient, nil)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, recipient, entries[0].AccountId)
		require.Nil(t, entries[0].ConsumableAfter)
		return nil
	}))

	require.NoError(t, s.View(func(tx store.Tx) error {
		entries, err := m.Consumability(tx, &sender, nil)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, sender, entries[0].AccountId)
		require.Equal(t, &recallAt, entries[0].ConsumableAfter)
		return nil
	}))
}
