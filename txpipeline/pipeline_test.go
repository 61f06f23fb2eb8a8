// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package txpipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rollupkit/client/accounts"
	"github.com/rollupkit/client/common"
	"github.com/rollupkit/client/executor"
	"github.com/rollupkit/client/prover"
	"github.com/rollupkit/client/rpc"
	"github.com/rollupkit/client/store"
	"github.com/rollupkit/client/store/memstore"
)

func setupAccountAndNote(t *testing.T, s store.Store, id common.AccountId, noteId common.NoteId) {
	t.Helper()
	require.NoError(t, s.Update(func(tx store.Tx) error {
		if err := accounts.New().Create(tx, id, common.Hash{1}, common.StorageModePrivate, common.AccountTypeRegular, true, common.Hash{}, common.Hash{}, common.Hash{}); err != nil {
			return err
		}
		return tx.UpsertInputNote(common.InputNoteRecord{
			Id:    noteId,
			State: common.InputStateCommitted,
		})
	}))
}

func TestPipeline_SubmitRecordsTransactionAndMovesNotes(t *testing.T) {
	s := memstore.New()
	acctId := common.AccountId{Prefix: 1, Suffix: 1}
	noteId := common.NoteId{2}
	setupAccountAndNote(t, s, acctId, noteId)

	node := rpc.NewFakeNode()
	p := New(s, executor.NewLocal(), prover.NewLocal(), node)

	req := executor.TransactionRequest{
		AccountId:           acctId,
		AuthenticatedInputs: []executor.InputRef{{NoteId: noteId}},
		OwnOutputs: []executor.OutputSpec{
			{RecipientDigest: common.Hash{3}, Metadata: common.NoteMetadata{Tag: 7}},
		},
	}

	txId, err := p.Submit(context.Background(), req)
	require.NoError(t, err)
	require.NotZero(t, txId)
	require.Len(t, node.SubmittedTxs(), 1)

	require.NoError(t, s.View(func(tx store.Tx) error {
		rec, err := tx.Transaction(txId)
		require.NoError(t, err)
		require.Equal(t, acctId, rec.AccountId)
		require.True(t, rec.IsPending())

		note, err := tx.InputNoteById(noteId)
		require.NoError(t, err)
		require.Equal(t, common.InputStateProcessingAuthenticated, note.State)

		acct, err := tx.AccountHeader(acctId)
		require.NoError(t, err)
		require.NotNil(t, acct.ProvisionalCommitment)
		require.Equal(t, rec.FinalAccountCommitment, *acct.ProvisionalCommitment)
		return nil
	}))
}

func TestPipeline_ApplyLocallySkipsNodeSubmission(t *testing.T) {
	s := memstore.New()
	acctId := common.AccountId{Prefix: 2, Suffix: 2}
	noteId := common.NoteId{4}
	setupAccountAndNote(t, s, acctId, noteId)

	node := rpc.NewFakeNode()
	p := New(s, executor.NewLocal(), prover.NewLocal(), node)

	req := executor.TransactionRequest{
		AccountId:           acctId,
		AuthenticatedInputs: []executor.InputRef{{NoteId: noteId}},
	}

	txId, err := p.ApplyLocally(context.Background(), req)
	require.NoError(t, err)
	require.Empty(t, node.SubmittedTxs())

	require.NoError(t, s.View(func(tx store.Tx) error {
		_, err := tx.Transaction(txId)
		return err
	}))
}

func TestPipeline_ExecuteThenProveAndSubmitMatchesSubmit(t *testing.T) {
	s := memstore.New()
	acctId := common.AccountId{Prefix: 4, Suffix: 4}
	noteId := common.NoteId{5}
	setupAccountAndNote(t, s, acctId, noteId)

	node := rpc.NewFakeNode()
	p := New(s, executor.NewLocal(), prover.NewLocal(), node)

	req := executor.TransactionRequest{
		AccountId:           acctId,
		AuthenticatedInputs: []executor.InputRef{{NoteId: noteId}},
	}

	result, err := p.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, acctId, result.Account.Id)

	txId, err := p.ProveAndSubmit(context.Background(), result, nil)
	require.NoError(t, err)
	require.Len(t, node.SubmittedTxs(), 1)

	require.NoError(t, s.View(func(tx store.Tx) error {
		_, err := tx.Transaction(txId)
		return err
	}))
}

// TestPipeline_ProveAndSubmitUsesOverrideProverExactlyOnce covers the
// prv-override path of ProveAndSubmit with a mock in place of a second
// real proving backend, asserting Prove is consulted instead of the
// Pipeline's configured prover.
func TestPipeline_ProveAndSubmitUsesOverrideProverExactlyOnce(t *testing.T) {
	s := memstore.New()
	acctId := common.AccountId{Prefix: 5, Suffix: 5}
	noteId := common.NoteId{6}
	setupAccountAndNote(t, s, acctId, noteId)

	node := rpc.NewFakeNode()
	p := New(s, executor.NewLocal(), prover.NewLocal(), node)

	req := executor.TransactionRequest{
		AccountId:           acctId,
		AuthenticatedInputs: []executor.InputRef{{NoteId: noteId}},
	}
	result, err := p.Execute(context.Background(), req)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	mockProver := prover.NewMockTxProver(ctrl)
	mockProver.EXPECT().
		Prove(gomock.Any(), result.Executed).
		Return(prover.ProvenTransaction{Executed: result.Executed, Proof: common.Blob("mock-proof")}, nil).
		Times(1)

	txId, err := p.ProveAndSubmit(context.Background(), result, mockProver)
	require.NoError(t, err)
	require.NotZero(t, txId)
	require.Len(t, node.SubmittedTxs(), 1)
}

// TestPipeline_ProveAndSubmitPropagatesOverrideProverError covers the
// failure path: a prover error must abort submission before the node is
// ever called.
func TestPipeline_ProveAndSubmitPropagatesOverrideProverError(t *testing.T) {
	s := memstore.New()
	acctId := common.AccountId{Prefix: 6, Suffix: 6}
	noteId := common.NoteId{7}
	setupAccountAndNote(t, s, acctId, noteId)

	node := rpc.NewFakeNode()
	p := New(s, executor.NewLocal(), prover.NewLocal(), node)

	req := executor.TransactionRequest{
		AccountId:           acctId,
		AuthenticatedInputs: []executor.InputRef{{NoteId: noteId}},
	}
	result, err := p.Execute(context.Background(), req)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	mockProver := prover.NewMockTxProver(ctrl)
	wantErr := errors.New("proving service unavailable")
	mockProver.EXPECT().Prove(gomock.Any(), result.Executed).Return(prover.ProvenTransaction{}, wantErr)

	_, err = p.ProveAndSubmit(context.Background(), result, mockProver)
	require.ErrorIs(t, err, wantErr)
	require.Empty(t, node.SubmittedTxs())
}

func TestPipeline_SubmitRejectsLockedAccount(t *testing.T) {
	s := memstore.New()
	acctId := common.AccountId{Prefix: 3, Suffix: 3}
	require.NoError(t, s.Update(func(tx store.Tx) error {
		return tx.UpsertAccountHeader(common.AccountHeader{Id: acctId, Locked: true})
	}))

	p := New(s, executor.NewLocal(), prover.NewLocal(), rpc.NewFakeNode())
	_, err := p.Submit(context.Background(), executor.TransactionRequest{AccountId: acctId})
	require.ErrorIs(t, err, common.ErrAccountLocked)
}
