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

// InputState is the input note lifecycle state (spec.md §4.3). Values are
// fixed for wire compatibility — never renumber.
type InputState byte

const (
	InputStateExpected InputState = iota
	InputStateUnverified
	InputStateCommitted
	InputStateInvalid
	InputStateProcessingAuthenticated
	InputStateProcessingUnauthenticated
	InputStateConsumedAuthenticatedLocal
	InputStateConsumedUnauthenticatedLocal
	InputStateConsumedExternal
)

func (s InputState) String() string {
	switch s {
	case InputStateExpected:
		return "Expected"
	case InputStateUnverified:
		return "Unverified"
	case InputStateCommitted:
		return "Committed"
	case InputStateInvalid:
		return "Invalid"
	case InputStateProcessingAuthenticated:
		return "ProcessingAuthenticated"
	case InputStateProcessingUnauthenticated:
		return "ProcessingUnauthenticated"
	case InputStateConsumedAuthenticatedLocal:
		return "ConsumedAuthenticatedLocal"
	case InputStateConsumedUnauthenticatedLocal:
		return "ConsumedUnauthenticatedLocal"
	case InputStateConsumedExternal:
		return "ConsumedExternal"
	default:
		return "invalid"
	}
}

// IsProcessing reports whether the state is one of the two
// locally-submitted-but-not-yet-consumed states.
func (s InputState) IsProcessing() bool {
	return s == InputStateProcessingAuthenticated || s == InputStateProcessingUnauthenticated
}

// IsConsumed reports whether the state is terminal-consumed.
func (s InputState) IsConsumed() bool {
	switch s {
	case InputStateConsumedAuthenticatedLocal, InputStateConsumedUnauthenticatedLocal, InputStateConsumedExternal:
		return true
	default:
		return false
	}
}

// OutputState is the output note lifecycle state (spec.md §4.3).
type OutputState byte

const (
	OutputStateExpected OutputState = iota
	OutputStateCommitted
	OutputStateConsumedLocal
	OutputStateConsumedExternal
	OutputStateDiscarded
)

func (s OutputState) String() string {
	switch s {
	case OutputStateExpected:
		return "Expected"
	case OutputStateCommitted:
		return "Committed"
	case OutputStateConsumedLocal:
		return "ConsumedLocal"
	case OutputStateConsumedExternal:
		return "ConsumedExternal"
	case OutputStateDiscarded:
		return "Discarded"
	default:
		return "invalid"
	}
}

// Asset is a handle to a fungible or non-fungible asset carried by a note.
type Asset struct {
	FaucetId AccountId
	// Amount is meaningful for fungible assets only; zero for
	// non-fungible handles where NonFungibleId is set instead.
	Amount        uint64
	Fungible      bool
	NonFungibleId Hash
}

// NoteScript is a deduplicated note program, addressed by its script
// root (§3 NoteScript / NoteInputs).
type NoteScript struct {
	Root Hash
	Code Blob
}

// NoteInputs are the deduplicated program inputs a note script runs
// against, addressed by their own commitment.
type NoteInputs struct {
	Commitment Hash
	Values     []Hash
}

// ExecutionHint tells the consuming client when a note becomes
// consumable; a nil RecallAfter means immediately spendable.
type ExecutionHint struct {
	RecallAfter *BlockNumber
}

// NoteMetadata is known once sender, tag and execution hint are
// available for a note (§3 InputNoteRecord).
type NoteMetadata struct {
	Sender        AccountId
	Tag           Tag
	ExecutionHint ExecutionHint
}

// InputNoteRecord is the client's view of a note it may consume (§3).
type InputNoteRecord struct {
	Id               NoteId
	Assets           []Asset
	Serial           SerialNumber
	InputsCommitment Hash
	ScriptRoot       Hash
	Metadata         *NoteMetadata
	// Nullifier is computable once Serial and ScriptRoot are known; nil
	// beforehand.
	Nullifier *Nullifier
	State     InputState
	Proof     *InclusionProofRef

	// ConsumingTxId is set once the note enters a Processing* state,
	// naming the locally built transaction consuming it.
	ConsumingTxId *Hash
}

// InclusionProofRef names the block a record's inclusion proof was
// verified against; the authentication path itself lives in the
// witness.MerklePath returned by ChainView.InclusionProof, keyed by this
// block number.
type InclusionProofRef struct {
	Block BlockNumber
}

// OutputNoteRecord is the producing account's view of a note it created
// (§3).
type OutputNoteRecord struct {
	Id                 NoteId
	RecipientDigest    Hash
	Assets             []Asset
	Metadata           *NoteMetadata
	ExpectedBlockHeight BlockNumber
	State              OutputState
	ProducingTxId      Hash
}

// ConsumabilityEntry is one (account, consumable-after) pair returned by
// a consumability query (§4.3).
type ConsumabilityEntry struct {
	AccountId         AccountId
	ConsumableAfter   *BlockNumber
}
