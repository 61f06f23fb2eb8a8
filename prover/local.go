// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package prover

import (
	"context"
	"fmt"

	"github.com/rollupkit/client/common"
	"github.com/rollupkit/client/executor"
)

// Local proves in-process. A failure here is fatal to the build (spec.md
// §4.6 Proving): it is returned verbatim, not wrapped as
// ErrProverUnavailable, so callers know not to retry.
type Local struct{}

func NewLocal() Local {
	return Local{}
}

func (Local) Prove(_ context.Context, tx executor.ExecutedTransaction) (ProvenTransaction, error) {
	if tx.FinalAccountCommitment.IsZero() {
		return ProvenTransaction{}, fmt.Errorf("%w: executed transaction has no final commitment to prove", common.ErrProofError)
	}
	proof := common.Keccak256(tx.InitAccountCommitment[:], tx.FinalAccountCommitment[:])
	return ProvenTransaction{Executed: tx, Proof: common.Blob(proof[:])}, nil
}

var _ TxProver = Local{}
