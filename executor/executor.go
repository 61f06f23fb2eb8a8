// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package executor declares the Executor boundary (spec.md §4.6): running
// an account's auth procedure and its input notes' scripts against
// current account state to produce an ExecutedTransaction.
package executor

//go:generate mockgen -source executor.go -destination executor_mocks.go -package executor

import (
	"context"

	"github.com/rollupkit/client/common"
)

// InputRef names an authenticated input note by id, with the arguments
// its script is invoked with.
type InputRef struct {
	NoteId common.NoteId
	Args   []common.Hash
}

// InlineInput is an unauthenticated input note: its full content is
// supplied inline rather than looked up by id, since it has not yet been
// verified included (spec.md §4.6 Request).
type InlineInput struct {
	Note common.InputNoteRecord
	Args []common.Hash
}

// OutputSpec describes an output note this transaction will produce.
type OutputSpec struct {
	RecipientDigest common.Hash
	Assets          []common.Asset
	Metadata        common.NoteMetadata
}

// TransactionRequest is the caller-built description of a transaction to
// execute (spec.md §4.6 Request).
type TransactionRequest struct {
	AccountId             common.AccountId
	AuthenticatedInputs   []InputRef
	UnauthenticatedInputs []InlineInput
	OwnOutputs            []OutputSpec
	ScriptRoot            *common.Hash
	ExpectedFutureNotes   []common.NoteId
	Advice                map[common.Hash]common.Hash
}

// AccountDelta is the change an executed transaction would apply to its
// acting account (spec.md §4.6 Execution).
type AccountDelta struct {
	NonceDelta     uint64
	NewVaultRoot   common.Hash
	NewStorageRoot common.Hash
}

// ExecutedTransaction is the Executor's output: everything TxPipeline
// needs to prove and, on acceptance, persist the transaction.
type ExecutedTransaction struct {
	InitAccountCommitment  common.Hash
	FinalAccountCommitment common.Hash
	InputNullifiers        []common.Nullifier
	OutputNotes            []common.OutputNoteHeader
	Delta                  AccountDelta
	BlockRef               common.BlockNumber
}

// Executor runs a TransactionRequest against an account's current state.
// Rejections are returned as common.ErrExecutionError; no partial state
// change is ever produced on failure.
type Executor interface {
	Execute(ctx context.Context, account common.AccountHeader, req TransactionRequest) (ExecutedTransaction, error)
}
