// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package rpc declares the NodeClient boundary (spec.md §6 External
// interfaces) and a transport-agnostic wire vocabulary for sync deltas,
// account proofs and note details. Real transports (grpc, json-rpc, ...)
// live outside this module; this package only fixes the contract.
package rpc

//go:generate mockgen -source client.go -destination client_mocks.go -package rpc

import (
	"context"

	"github.com/rollupkit/client/common"
	"github.com/rollupkit/client/witness"
)

// AuthNode mirrors chainview.AuthNode at the wire level so this package
// does not need to import chainview; sync translates between the two.
type AuthNode struct {
	Id   uint64
	Hash common.Hash
}

// HeaderDelta is one new block in a sync response, with the chain-log
// nodes needed to authenticate it.
type HeaderDelta struct {
	Header   common.BlockHeader
	NewNodes []AuthNode
}

// NullifierObservation is one nullifier the node reports as spent,
// together with the block it appeared in and the consuming transaction.
type NullifierObservation struct {
	Nullifier common.Nullifier
	Block     common.BlockNumber
	TxId      common.Hash
}

// NoteInclusionUpdate carries a freshly authenticated (or disproved)
// inclusion path for a note the client is tracking or subscribed to via
// tag.
type NoteInclusionUpdate struct {
	NoteId    common.NoteId
	Block     common.BlockNumber
	Metadata  *common.NoteMetadata
	Nullifier *common.Nullifier
	Path      witness.MerklePath
	Disproved bool
}

// TransactionCommitment reports that a transaction id landed on-chain at
// a given block.
type TransactionCommitment struct {
	TxId  common.Hash
	Block common.BlockNumber
}

// Delta is the full response to a sync_state call (spec.md §4.5 step 1).
type Delta struct {
	Headers                []HeaderDelta
	Nullifiers             []NullifierObservation
	NoteUpdates            []NoteInclusionUpdate
	TransactionCommitments []TransactionCommitment
}

// AccountProof authenticates an account's on-chain state as of the block
// the node answered with.
type AccountProof struct {
	AccountId   common.AccountId
	Block       common.BlockNumber
	Nonce       uint64
	VaultRoot   common.Hash
	StorageRoot common.Hash
	CodeRoot    common.Hash
	Path        witness.MerklePath
}

// NoteDetails is the full record the node returns for a directly
// requested NoteId (e.g. a note a counterparty shared out of band).
type NoteDetails struct {
	Note  common.InputNoteRecord
	Block common.BlockNumber
	Path  witness.MerklePath
}

// NodeClient is everything the client needs from the rollup node
// (spec.md §6 NodeClient). Every method can fail with common.ErrRpc or
// common.ErrTimeout; implementations never retry internally.
type NodeClient interface {
	SyncState(ctx context.Context, from common.BlockNumber, tags []common.Tag) (Delta, error)
	SubmitProvenTx(ctx context.Context, raw common.Blob) error
	GetBlockHeaderByNumber(ctx context.Context, block common.BlockNumber) (common.BlockHeader, error)
	GetAccountProof(ctx context.Context, id common.AccountId) (AccountProof, error)
	GetAccountCode(ctx context.Context, id common.AccountId) (common.Blob, error)
	GetNotesById(ctx context.Context, ids []common.NoteId) ([]NoteDetails, error)
}
