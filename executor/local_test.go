// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package executor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rollupkit/client/common"
)

func TestLocal_ExecuteAppliesNonceAndRoots(t *testing.T) {
	e := NewLocal()
	id := common.AccountId{Prefix: 1}
	account := common.AccountHeader{
		Id:         id,
		Nonce:      2,
		VaultRoot:  common.Hash{1},
		StorageRoot: common.Hash{2},
		CodeRoot:   common.Hash{3},
		Commitment: common.CommitAccount(id, 2, common.Hash{1}, common.Hash{2}, common.Hash{3}),
	}

	req := TransactionRequest{
		AccountId: id,
		OwnOutputs: []OutputSpec{
			{RecipientDigest: common.Hash{9}, Metadata: common.NoteMetadata{Tag: 5}},
		},
	}

	exec, err := e.Execute(context.Background(), account, req)
	require.NoError(t, err)
	require.Equal(t, account.Commitment, exec.InitAccountCommitment)
	require.Equal(t, uint64(1), exec.Delta.NonceDelta)
	require.Len(t, exec.OutputNotes, 1)
	require.Equal(t, common.Tag(5), exec.OutputNotes[0].TagHint)
	require.NotEqual(t, exec.InitAccountCommitment, exec.FinalAccountCommitment)
}

func TestLocal_ExecuteRejectsWrongAccount(t *testing.T) {
	e := NewLocal()
	account := common.AccountHeader{Id: common.AccountId{Prefix: 1}}
	req := TransactionRequest{AccountId: common.AccountId{Prefix: 2}}

	_, err := e.Execute(context.Background(), account, req)
	require.ErrorIs(t, err, common.ErrExecutionError)
}
