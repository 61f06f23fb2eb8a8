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
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rollupkit/client/common"
	"github.com/rollupkit/client/executor"
)

func TestLocal_ProveRejectsZeroCommitment(t *testing.T) {
	_, err := NewLocal().Prove(context.Background(), executor.ExecutedTransaction{})
	require.ErrorIs(t, err, common.ErrProofError)
}

func TestLocal_ProveSucceeds(t *testing.T) {
	tx := executor.ExecutedTransaction{InitAccountCommitment: common.Hash{1}, FinalAccountCommitment: common.Hash{2}}
	proven, err := NewLocal().Prove(context.Background(), tx)
	require.NoError(t, err)
	require.NotEmpty(t, proven.Proof)
}

type failingService struct{}

func (failingService) Prove(context.Context, executor.ExecutedTransaction) (common.Blob, error) {
	return nil, errors.New("service down")
}

func TestRemote_ProveWrapsFailureAsUnavailable(t *testing.T) {
	r := NewRemote(failingService{})
	_, err := r.Prove(context.Background(), executor.ExecutedTransaction{})
	require.ErrorIs(t, err, common.ErrProverUnavailable)
}
