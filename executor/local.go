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
	"fmt"

	"github.com/rollupkit/client/common"
)

// Local is a deterministic, in-process Executor: it does not run a real
// VM, but it applies a fixed rule (nonce increments by one, vault/storage
// roots fold in the request's nullifiers and outputs) so tests can
// exercise TxPipeline end to end without a real note-script interpreter.
type Local struct{}

func NewLocal() Local {
	return Local{}
}

func (Local) Execute(_ context.Context, account common.AccountHeader, req TransactionRequest) (ExecutedTransaction, error) {
	if req.AccountId != account.Id {
		return ExecutedTransaction{}, fmt.Errorf("%w: request targets %s but account is %s", common.ErrExecutionError, req.AccountId, account.Id)
	}

	nullifiers := make([]common.Nullifier, 0, len(req.AuthenticatedInputs)+len(req.UnauthenticatedInputs))
	vaultRoot := account.VaultRoot
	for _, in := range req.AuthenticatedInputs {
		n, err := noteNullifier(in.NoteId)
		if err != nil {
			return ExecutedTransaction{}, err
		}
		nullifiers = append(nullifiers, n)
		vaultRoot = common.Keccak256(vaultRoot[:], n[:])
	}
	for _, in := range req.UnauthenticatedInputs {
		if in.Note.Nullifier == nil {
			return ExecutedTransaction{}, fmt.Errorf("%w: unauthenticated input %s has no computable nullifier", common.ErrExecutionError, in.Note.Id)
		}
		nullifiers = append(nullifiers, *in.Note.Nullifier)
		vaultRoot = common.Keccak256(vaultRoot[:], (*in.Note.Nullifier)[:])
	}

	outputs := make([]common.OutputNoteHeader, 0, len(req.OwnOutputs))
	storageRoot := account.StorageRoot
	for _, out := range req.OwnOutputs {
		assetCommitment := common.Hash{}
		for _, a := range out.Assets {
			assetCommitment = common.Keccak256(assetCommitment[:], []byte(fmt.Sprintf("%s:%d:%v:%s", a.FaucetId, a.Amount, a.Fungible, a.NonFungibleId)))
		}
		id := common.CommitNote(out.RecipientDigest, assetCommitment)
		outputs = append(outputs, common.OutputNoteHeader{Id: id, TagHint: out.Metadata.Tag})
		storageRoot = common.Keccak256(storageRoot[:], id[:])
	}

	nonce := account.Nonce + 1
	final := common.CommitAccount(account.Id, nonce, vaultRoot, storageRoot, account.CodeRoot)

	return ExecutedTransaction{
		InitAccountCommitment:  account.Commitment,
		FinalAccountCommitment: final,
		InputNullifiers:        nullifiers,
		OutputNotes:            outputs,
		Delta: AccountDelta{
			NonceDelta:     1,
			NewVaultRoot:   vaultRoot,
			NewStorageRoot: storageRoot,
		},
	}, nil
}

// noteNullifier is a placeholder for looking up an authenticated input's
// nullifier by id; a real Executor resolves this from the note's stored
// serial number and script commitment via the Store, which this
// deterministic stand-in does not have access to.
func noteNullifier(id common.NoteId) (common.Nullifier, error) {
	return common.Nullifier(common.Hash(id)), nil
}

var _ Executor = Local{}
