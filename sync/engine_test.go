// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package sync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rollupkit/client/chainview"
	"github.com/rollupkit/client/common"
	"github.com/rollupkit/client/common/ticker"
	"github.com/rollupkit/client/rpc"
	"github.com/rollupkit/client/store"
	"github.com/rollupkit/client/store/memstore"
)

func header1() common.BlockHeader {
	return common.BlockHeader{BlockNum: 1, SubCommitment: common.Hash{0xaa}, NoteRoot: common.Hash{0xbb}}
}

func newEngine(t *testing.T) (*Engine, store.Store, *rpc.FakeNode) {
	t.Helper()
	s := memstore.New()
	view := chainview.New(s)
	node := rpc.NewFakeNode()
	return New(s, node, view), s, node
}

func TestEngine_RunAppendsHeaderAndAdvancesCursor(t *testing.T) {
	e, s, node := newEngine(t)
	h1 := header1()
	node.PushDelta(rpc.Delta{Headers: []rpc.HeaderDelta{{Header: h1, NewNodes: []rpc.AuthNode{{Id: 1, Hash: h1.SubCommitment}}}}})

	summary, err := e.Run(context.Background())
	require.NoError(t, err)
	require.False(t, summary.Empty)
	require.Equal(t, common.BlockNumber(1), summary.BlockNum)

	require.NoError(t, s.View(func(tx store.Tx) error {
		block, empty, err := tx.SyncCursor()
		require.NoError(t, err)
		require.False(t, empty)
		require.Equal(t, common.BlockNumber(1), block)
		got, err := tx.BlockHeader(1)
		require.NoError(t, err)
		require.Equal(t, h1, got)
		return nil
	}))
}

func TestEngine_RunIsIdempotentOnIdenticalHeader(t *testing.T) {
	e, _, node := newEngine(t)
	h1 := header1()
	delta := rpc.Delta{Headers: []rpc.HeaderDelta{{Header: h1, NewNodes: []rpc.AuthNode{{Id: 1, Hash: h1.SubCommitment}}}}}

	node.PushDelta(delta)
	_, err := e.Run(context.Background())
	require.NoError(t, err)

	node.PushDelta(delta)
	summary, err := e.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, common.BlockNumber(1), summary.BlockNum)
}

func TestEngine_RunFailsOnChainDiscontinuity(t *testing.T) {
	e, _, node := newEngine(t)
	h1 := header1()
	node.PushDelta(rpc.Delta{Headers: []rpc.HeaderDelta{{Header: h1, NewNodes: []rpc.AuthNode{{Id: 1, Hash: h1.SubCommitment}}}}})
	_, err := e.Run(context.Background())
	require.NoError(t, err)

	bad := common.BlockHeader{BlockNum: 2, SubCommitment: common.Hash{0xcc}, PrevBlockCommitment: common.Hash{0xff}}
	node.PushDelta(rpc.Delta{Headers: []rpc.HeaderDelta{{Header: bad, NewNodes: []rpc.AuthNode{{Id: 2, Hash: bad.SubCommitment}}}}})
	_, err = e.Run(context.Background())
	require.ErrorIs(t, err, common.ErrChainDiscontinuity)
}

func TestEngine_RunFailsOnConflictingNullifierObservation(t *testing.T) {
	e, _, node := newEngine(t)
	nullifier := common.Nullifier{1}
	node.PushDelta(rpc.Delta{Nullifiers: []rpc.NullifierObservation{
		{Nullifier: nullifier, Block: 5, TxId: common.Hash{1}},
		{Nullifier: nullifier, Block: 6, TxId: common.Hash{2}},
	}})
	_, err := e.Run(context.Background())
	require.ErrorIs(t, err, common.ErrProtocolViolation)
}

func TestEngine_RunDiscardsExpiredTransactionAndRollsBackAccount(t *testing.T) {
	e, s, node := newEngine(t)
	h1 := header1()
	node.PushDelta(rpc.Delta{Headers: []rpc.HeaderDelta{{Header: h1, NewNodes: []rpc.AuthNode{{Id: 1, Hash: h1.SubCommitment}}}}})
	_, err := e.Run(context.Background())
	require.NoError(t, err)

	acctId := common.AccountId{Prefix: 1, Suffix: 1}
	priorCommitment := common.Hash{0x10}
	provisional := common.Hash{0x20}
	txId := common.Hash{0x30}
	nullifier := common.Nullifier{0x40}
	noteId := common.NoteId{0x50}

	require.NoError(t, s.Update(func(tx store.Tx) error {
		if err := tx.UpsertAccountHeader(common.AccountHeader{
			Id:                    acctId,
			Commitment:            priorCommitment,
			ProvisionalCommitment: &provisional,
		}); err != nil {
			return err
		}
		if err := tx.UpsertInputNote(common.InputNoteRecord{
			Id:            noteId,
			Nullifier:     &nullifier,
			State:         common.InputStateProcessingAuthenticated,
			ConsumingTxId: &txId,
		}); err != nil {
			return err
		}
		return tx.InsertTransaction(common.TransactionRecord{
			Id:                        txId,
			AccountId:                 acctId,
			InputNullifiers:           []common.Nullifier{nullifier},
			ExpirationBlock:           1,
			PreviousAccountCommitment: priorCommitment,
		})
	}))

	externalTxId := common.Hash{0x99}
	node.PushDelta(rpc.Delta{Nullifiers: []rpc.NullifierObservation{
		{Nullifier: nullifier, Block: 1, TxId: externalTxId},
	}})

	summary, err := e.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, summary.DiscardedTransactions)
	require.Equal(t, 1, summary.UpdatedAccounts)

	require.NoError(t, s.View(func(tx store.Tx) error {
		acct, err := tx.AccountHeader(acctId)
		require.NoError(t, err)
		require.Equal(t, priorCommitment, acct.Commitment)
		require.Nil(t, acct.ProvisionalCommitment)

		rec, err := tx.Transaction(txId)
		require.NoError(t, err)
		require.True(t, rec.Discarded)

		note, err := tx.InputNoteById(noteId)
		require.NoError(t, err)
		require.Equal(t, common.InputStateConsumedExternal, note.State)
		return nil
	}))
}

// TestEngine_RunDiscardsTransactionConsumedByOthersBeforeExpiration
// covers spec.md §3: losing a race for a note's inputs is, on its own,
// sufficient to discard a transaction (scenario 4), without waiting for
// its expiration window to also pass.
func TestEngine_RunDiscardsTransactionConsumedByOthersBeforeExpiration(t *testing.T) {
	e, s, node := newEngine(t)
	h1 := header1()
	node.PushDelta(rpc.Delta{Headers: []rpc.HeaderDelta{{Header: h1, NewNodes: []rpc.AuthNode{{Id: 1, Hash: h1.SubCommitment}}}}})
	_, err := e.Run(context.Background())
	require.NoError(t, err)

	acctId := common.AccountId{Prefix: 2, Suffix: 2}
	priorCommitment := common.Hash{0x11}
	provisional := common.Hash{0x21}
	txId := common.Hash{0x31}
	nullifier := common.Nullifier{0x41}
	noteId := common.NoteId{0x51}

	require.NoError(t, s.Update(func(tx store.Tx) error {
		if err := tx.UpsertAccountHeader(common.AccountHeader{
			Id:                    acctId,
			Commitment:            priorCommitment,
			ProvisionalCommitment: &provisional,
		}); err != nil {
			return err
		}
		if err := tx.UpsertInputNote(common.InputNoteRecord{
			Id:            noteId,
			Nullifier:     &nullifier,
			State:         common.InputStateProcessingAuthenticated,
			ConsumingTxId: &txId,
		}); err != nil {
			return err
		}
		return tx.InsertTransaction(common.TransactionRecord{
			Id:                        txId,
			AccountId:                 acctId,
			InputNullifiers:           []common.Nullifier{nullifier},
			ExpirationBlock:           1000, // far from expired
			PreviousAccountCommitment: priorCommitment,
		})
	}))

	externalTxId := common.Hash{0x98}
	node.PushDelta(rpc.Delta{Nullifiers: []rpc.NullifierObservation{
		{Nullifier: nullifier, Block: 1, TxId: externalTxId},
	}})

	summary, err := e.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, summary.DiscardedTransactions)

	require.NoError(t, s.View(func(tx store.Tx) error {
		rec, err := tx.Transaction(txId)
		require.NoError(t, err)
		require.True(t, rec.Discarded)

		acct, err := tx.AccountHeader(acctId)
		require.NoError(t, err)
		require.Nil(t, acct.ProvisionalCommitment)
		return nil
	}))
}

// TestEngine_RunDiscardsTransactionThatNeverLandsAfterExpiration covers
// spec.md §8 Optimistic rollback: a build whose window simply runs out,
// with nobody else ever having spent its inputs, must still be
// discarded rather than permanently stranding the account's provisional
// commitment.
func TestEngine_RunDiscardsTransactionThatNeverLandsAfterExpiration(t *testing.T) {
	e, s, node := newEngine(t)
	h1 := header1()
	node.PushDelta(rpc.Delta{Headers: []rpc.HeaderDelta{{Header: h1, NewNodes: []rpc.AuthNode{{Id: 1, Hash: h1.SubCommitment}}}}})
	_, err := e.Run(context.Background())
	require.NoError(t, err)

	acctId := common.AccountId{Prefix: 3, Suffix: 3}
	priorCommitment := common.Hash{0x12}
	provisional := common.Hash{0x22}
	txId := common.Hash{0x32}
	nullifier := common.Nullifier{0x42}
	noteId := common.NoteId{0x52}

	require.NoError(t, s.Update(func(tx store.Tx) error {
		if err := tx.UpsertAccountHeader(common.AccountHeader{
			Id:                    acctId,
			Commitment:            priorCommitment,
			ProvisionalCommitment: &provisional,
		}); err != nil {
			return err
		}
		if err := tx.UpsertInputNote(common.InputNoteRecord{
			Id:            noteId,
			Nullifier:     &nullifier,
			State:         common.InputStateProcessingAuthenticated,
			ConsumingTxId: &txId,
		}); err != nil {
			return err
		}
		return tx.InsertTransaction(common.TransactionRecord{
			Id:                        txId,
			AccountId:                 acctId,
			InputNullifiers:           []common.Nullifier{nullifier},
			ExpirationBlock:           1, // already at/below tip after the next header
			PreviousAccountCommitment: priorCommitment,
		})
	}))

	// No nullifier observation at all: nobody ever spent this note.
	h2 := common.BlockHeader{BlockNum: 2, PrevBlockCommitment: h1.SubCommitment, SubCommitment: common.Hash{0xcc}, NoteRoot: common.Hash{0xdd}}
	node.PushDelta(rpc.Delta{Headers: []rpc.HeaderDelta{{Header: h2, NewNodes: []rpc.AuthNode{{Id: 2, Hash: h2.SubCommitment}}}}})

	summary, err := e.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, summary.DiscardedTransactions)

	require.NoError(t, s.View(func(tx store.Tx) error {
		rec, err := tx.Transaction(txId)
		require.NoError(t, err)
		require.True(t, rec.Discarded)

		acct, err := tx.AccountHeader(acctId)
		require.NoError(t, err)
		require.Nil(t, acct.ProvisionalCommitment)

		note, err := tx.InputNoteById(noteId)
		require.NoError(t, err)
		require.Equal(t, common.InputStateCommitted, note.State)
		return nil
	}))
}

func TestEngine_RunFailsFastWhenAlreadySyncing(t *testing.T) {
	e, _, _ := newEngine(t)
	require.True(t, e.mu.TryLock())
	defer e.mu.Unlock()

	_, err := e.Run(context.Background())
	require.ErrorIs(t, err, common.ErrSyncInProgress)
}

func TestEngine_TagCacheTracksAddAndRemove(t *testing.T) {
	e, _, _ := newEngine(t)
	tag := common.Tag(42)
	require.NoError(t, e.AddTag(tag, common.TagSourceUser))
	require.Contains(t, e.Tags(), tag)

	require.NoError(t, e.RemoveTag(tag))
	require.NotContains(t, e.Tags(), tag)
}

// TestEngine_RunLoopSyncsOnEveryTickAndStopsOnCancel drives RunLoop with
// a mock ticker instead of real time, asserting one Run per tick and a
// clean exit (ctx.Err()) once the context is cancelled.
func TestEngine_RunLoopSyncsOnEveryTickAndStopsOnCancel(t *testing.T) {
	e, _, node := newEngine(t)
	h1 := header1()
	node.PushDelta(rpc.Delta{Headers: []rpc.HeaderDelta{{Header: h1, NewNodes: []rpc.AuthNode{{Id: 1, Hash: h1.SubCommitment}}}}})

	ctrl := gomock.NewController(t)
	mockTicker := ticker.NewMockTicker(ctrl)
	tick := make(chan time.Time, 2)
	mockTicker.EXPECT().C().Return(tick).AnyTimes()
	mockTicker.EXPECT().Stop().Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	var summaries []Summary

	tick <- time.Now()
	done := make(chan error, 1)
	go func() {
		done <- e.RunLoop(ctx, mockTicker, func(s Summary) { summaries = append(summaries, s) })
	}()

	require.Eventually(t, func() bool { return len(summaries) == 1 }, time.Second, time.Millisecond)
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
	require.Len(t, summaries, 1)
	require.Equal(t, common.BlockNumber(1), summaries[0].BlockNum)
}

// TestEngine_RunLoopAbortsOnRunError covers the failure path: a locked
// account or any other Run error must stop the loop rather than be
// silently retried forever.
func TestEngine_RunLoopAbortsOnRunError(t *testing.T) {
	e, _, _ := newEngine(t)
	require.True(t, e.mu.TryLock())
	defer e.mu.Unlock()

	ctrl := gomock.NewController(t)
	mockTicker := ticker.NewMockTicker(ctrl)
	tick := make(chan time.Time, 1)
	tick <- time.Now()
	mockTicker.EXPECT().C().Return(tick).AnyTimes()
	mockTicker.EXPECT().Stop().Times(1)

	err := e.RunLoop(context.Background(), mockTicker, nil)
	require.ErrorIs(t, err, common.ErrSyncInProgress)
}
