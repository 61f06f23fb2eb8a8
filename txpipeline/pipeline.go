// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package txpipeline implements TxPipeline (spec.md §4.6): request,
// execution, proving and submission of a locally built transaction.
// Rollback is sync's job alone (spec.md §4.6 Rollback) — this package
// never reverts a transaction it has submitted.
package txpipeline

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/rollupkit/client/accounts"
	"github.com/rollupkit/client/common"
	"github.com/rollupkit/client/executor"
	"github.com/rollupkit/client/internal/metrics"
	"github.com/rollupkit/client/notes"
	"github.com/rollupkit/client/prover"
	"github.com/rollupkit/client/rpc"
	"github.com/rollupkit/client/store"
)

// DefaultExpirationWindow is the number of blocks a submitted
// transaction is given to land before sync treats it as abandoned, in
// the absence of a caller-specified window.
const DefaultExpirationWindow = common.BlockNumber(256)

// Pipeline wires together the four stages of building a transaction. It
// holds no per-transaction state; every call is independent.
type Pipeline struct {
	store  store.Store
	exec   executor.Executor
	prover prover.TxProver
	node   rpc.NodeClient
	accts  accounts.Manager
	notes  notes.Manager

	expirationWindow common.BlockNumber
}

func New(s store.Store, exec executor.Executor, p prover.TxProver, node rpc.NodeClient) *Pipeline {
	return &Pipeline{
		store:            s,
		exec:             exec,
		prover:           p,
		node:             node,
		accts:            accounts.New(),
		notes:            notes.New(),
		expirationWindow: DefaultExpirationWindow,
	}
}

// WithExpirationWindow overrides the default number of blocks a
// submission is given before sync may discard it.
func (p *Pipeline) WithExpirationWindow(w common.BlockNumber) *Pipeline {
	p.expirationWindow = w
	return p
}

// Result is the output of Execute: everything ProveAndSubmit or
// ApplyLocally needs to finish the pipeline, without having committed
// anything to the Store yet (spec.md §6 new_transaction -> TxResult).
type Result struct {
	Account  common.AccountHeader
	Request  executor.TransactionRequest
	Executed executor.ExecutedTransaction
}

// Execute is the Request+Execution stages: it loads the acting
// account's current state and runs it through the Executor. Nothing is
// persisted; the caller decides whether to prove-and-submit or simulate.
func (p *Pipeline) Execute(ctx context.Context, req executor.TransactionRequest) (Result, error) {
	timer := metrics.NewTimer()
	defer timer.ObserveDurationVec(metrics.PipelineSubmitDuration, "execute")

	var account common.AccountHeader
	err := p.store.View(func(tx store.Tx) error {
		var err error
		account, err = tx.AccountHeader(req.AccountId)
		return err
	})
	if err != nil {
		return Result{}, err
	}
	if account.Locked {
		return Result{}, fmt.Errorf("%w: account %s", common.ErrAccountLocked, account.Id)
	}

	executed, err := p.exec.Execute(ctx, account, req)
	if err != nil {
		return Result{}, err
	}
	return Result{Account: account, Request: req, Executed: executed}, nil
}

// ProveAndSubmit is the Proving+Submission stages: it proves an already
// executed result (optionally with an override prover, e.g. a remote
// proving service chosen at call time), submits it to the node, and on
// acceptance records everything in one Store transaction (spec.md §4.6
// Submission). The returned id is the transaction's local record id.
func (p *Pipeline) ProveAndSubmit(ctx context.Context, result Result, override prover.TxProver) (_ common.Hash, err error) {
	timer := metrics.NewTimer()
	defer timer.ObserveDurationVec(metrics.PipelineSubmitDuration, "prove_and_submit")
	defer func() {
		if err != nil {
			metrics.PipelineSubmissionsTotal.WithLabelValues("error").Inc()
			return
		}
		metrics.PipelineSubmissionsTotal.WithLabelValues("ok").Inc()
	}()

	pr := p.prover
	if override != nil {
		pr = override
	}
	proven, err := pr.Prove(ctx, result.Executed)
	if err != nil {
		return common.Hash{}, err
	}

	raw, err := json.Marshal(proven)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: encode proven transaction: %v", common.ErrExecutionError, err)
	}
	if err := p.node.SubmitProvenTx(ctx, raw); err != nil {
		return common.Hash{}, err
	}

	return p.record(result.Account, result.Request, result.Executed)
}

// Submit runs all four stages in one call: Execute followed by
// ProveAndSubmit with this Pipeline's configured prover.
func (p *Pipeline) Submit(ctx context.Context, req executor.TransactionRequest) (common.Hash, error) {
	result, err := p.Execute(ctx, req)
	if err != nil {
		return common.Hash{}, err
	}
	return p.ProveAndSubmit(ctx, result, nil)
}

// ApplyLocally is the apply_transaction_locally testing hook: it
// executes req and performs the store-side bookkeeping Submit would,
// without proving or submitting anything to a node. Used to simulate a
// transaction's effects before committing to the cost of proving it.
func (p *Pipeline) ApplyLocally(ctx context.Context, req executor.TransactionRequest) (common.Hash, error) {
	result, err := p.Execute(ctx, req)
	if err != nil {
		return common.Hash{}, err
	}
	return p.record(result.Account, result.Request, result.Executed)
}

// record performs the single Store transaction shared by Submit and
// ApplyLocally: insert the transaction record, move input notes to
// Processing*, insert output notes as Expected, and write the
// optimistic account commitment.
func (p *Pipeline) record(account common.AccountHeader, req executor.TransactionRequest, executed executor.ExecutedTransaction) (common.Hash, error) {
	txId := transactionId(account.Id, executed)

	err := p.store.Update(func(tx store.Tx) error {
		tip, tipEmpty, err := tx.TipBlockNumber()
		if err != nil {
			return err
		}
		blockRef := common.BlockNumber(0)
		if !tipEmpty {
			blockRef = tip
		}

		if err := tx.InsertTransaction(common.TransactionRecord{
			Id:                        txId,
			AccountId:                 account.Id,
			InitAccountCommitment:     executed.InitAccountCommitment,
			FinalAccountCommitment:    executed.FinalAccountCommitment,
			InputNullifiers:           executed.InputNullifiers,
			OutputNotes:               executed.OutputNotes,
			ScriptRoot:                req.ScriptRoot,
			BlockNum:                  blockRef,
			ExpirationBlock:           blockRef + p.expirationWindow,
			PreviousAccountCommitment: account.Commitment,
		}); err != nil {
			return err
		}

		for _, in := range req.AuthenticatedInputs {
			if err := p.notes.OnSubmittedAuthenticated(tx, in.NoteId, txId); err != nil {
				return err
			}
		}
		for _, in := range req.UnauthenticatedInputs {
			if err := tx.UpsertInputNote(in.Note); err != nil {
				return err
			}
			if err := p.notes.OnSubmittedUnauthenticated(tx, in.Note.Id, txId); err != nil {
				return err
			}
		}

		for i, out := range executed.OutputNotes {
			spec := req.OwnOutputs[i]
			if err := tx.UpsertOutputNote(common.OutputNoteRecord{
				Id:                  out.Id,
				RecipientDigest:     spec.RecipientDigest,
				Assets:              spec.Assets,
				Metadata:            &spec.Metadata,
				ExpectedBlockHeight: blockRef,
				State:               common.OutputStateExpected,
				ProducingTxId:       txId,
			}); err != nil {
				return err
			}
		}

		return p.accts.BeginUpdate(tx, account.Id, executed.FinalAccountCommitment)
	})
	if err != nil {
		return common.Hash{}, err
	}
	return txId, nil
}

// transactionId derives a stable id for a locally built transaction from
// its account and the commitments it transitions between; two builds
// that would produce identical before/after states are treated as the
// same transaction, matching NoteManager's idempotent re-delivery
// handling.
func transactionId(account common.AccountId, executed executor.ExecutedTransaction) common.Hash {
	var accBytes [16]byte
	binary.BigEndian.PutUint64(accBytes[0:8], account.Prefix)
	binary.BigEndian.PutUint64(accBytes[8:16], account.Suffix)
	return common.Keccak256(accBytes[:], executed.InitAccountCommitment[:], executed.FinalAccountCommitment[:])
}
