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

// RemoteService is the narrow transport Remote needs; a real
// implementation would be a grpc or http client to a proving service.
type RemoteService interface {
	Prove(ctx context.Context, tx executor.ExecutedTransaction) (common.Blob, error)
}

// Remote proves by delegating to a proving service. Any failure —
// unreachable service, rejected job, timeout — is surfaced as
// common.ErrProverUnavailable, which the caller may retry (spec.md §4.6
// Proving).
type Remote struct {
	svc RemoteService
}

func NewRemote(svc RemoteService) Remote {
	return Remote{svc: svc}
}

func (r Remote) Prove(ctx context.Context, tx executor.ExecutedTransaction) (ProvenTransaction, error) {
	proof, err := r.svc.Prove(ctx, tx)
	if err != nil {
		return ProvenTransaction{}, fmt.Errorf("%w: %v", common.ErrProverUnavailable, err)
	}
	return ProvenTransaction{Executed: tx, Proof: proof}, nil
}

var _ TxProver = Remote{}
