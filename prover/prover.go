// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package prover declares the TxProver boundary (spec.md §4.6 Proving)
// and its two implementations: Local (in-process, failures are fatal to
// the build) and Remote (a proving service, failures are
// common.ErrProverUnavailable and retryable by the caller).
package prover

//go:generate mockgen -source prover.go -destination prover_mocks.go -package prover

import (
	"context"

	"github.com/rollupkit/client/common"
	"github.com/rollupkit/client/executor"
)

// ProvenTransaction is an ExecutedTransaction plus the zero-knowledge
// proof attesting it was computed correctly.
type ProvenTransaction struct {
	Executed executor.ExecutedTransaction
	Proof    common.Blob
}

// TxProver proves an already-executed transaction.
type TxProver interface {
	Prove(ctx context.Context, tx executor.ExecutedTransaction) (ProvenTransaction, error)
}
