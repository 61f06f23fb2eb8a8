// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

// OutputNoteHeader is the summary of an output note a transaction
// produced, as recorded on a TransactionRecord (§3).
type OutputNoteHeader struct {
	Id      NoteId
	TagHint Tag
}

// TransactionRecord is the client's local record of a built transaction
// (§3).
type TransactionRecord struct {
	Id                    Hash
	AccountId             AccountId
	InitAccountCommitment Hash
	FinalAccountCommitment Hash
	InputNullifiers       []Nullifier
	OutputNotes           []OutputNoteHeader
	ScriptRoot            *Hash
	BlockNum              BlockNumber
	ExpirationBlock       BlockNumber

	// CommitHeight is nil until sync observes this transaction
	// committed on-chain.
	CommitHeight *BlockNumber
	Discarded    bool

	// PreviousAccountCommitment is the account's confirmed commitment
	// immediately before this transaction was built, retained so
	// SyncEngine can roll the account back if this transaction is
	// later discarded (§4.4 Commit/rollback).
	PreviousAccountCommitment Hash
}

// IsPending reports whether the transaction is neither committed nor
// discarded yet.
func (t TransactionRecord) IsPending() bool {
	return t.CommitHeight == nil && !t.Discarded
}
