// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package store defines the Store capability contract (spec.md §4.1): a
// typed, transactional persistence boundary for every entity the core
// tracks. It is not a database design, only a capability set — a
// TxPipeline submission is a single call to Update; a SyncEngine run is
// several (see Store.Update).
package store

//go:generate mockgen -source store.go -destination store_mock.go -package store

import (
	"github.com/rollupkit/client/common"
)

// InputNoteFilter selects a subset of input notes. A zero-value field is
// unconstrained for that dimension.
type InputNoteFilter struct {
	States    []common.InputState
	Tag       *common.Tag
	Nullifier *common.Nullifier
}

// OutputNoteFilter selects a subset of output notes.
type OutputNoteFilter struct {
	States []common.OutputState
}

// TransactionFilter selects a subset of transaction records.
type TransactionFilter struct {
	AccountId        *common.AccountId
	OnlyUncommitted  bool
	OnlyDiscarded    bool
}

// Store is the full capability set (§4.1). Every concrete backend
// (memstore, leveldbstore, sqlitestore, ...) must implement it. A write
// that touches N tables commits all-or-nothing via Update; reads inside
// an Update see that same transaction's writes.
type Store interface {
	// Update runs fn in a single read-write transaction. If fn returns a
	// non-nil error, or panics, all writes made through tx are rolled
	// back. A TxPipeline submission is one Update call. A SyncEngine run
	// is not: each appended header, the reconciliation together with the
	// cursor advance, and each block it marks tracked commit as separate
	// Update calls.
	Update(fn func(tx Tx) error) error

	// View runs fn in a read-only transaction, isolated from concurrent
	// Update calls.
	View(fn func(tx Tx) error) error

	// Close releases the underlying backend resources.
	Close() error
}

// Tx is the set of operations available inside a Store transaction.
type Tx interface {
	Accounts
	Notes
	Chain
	Transactions
	SyncCursor
	ForeignAccounts
	DumpIO
}

// Accounts groups account-table operations.
type Accounts interface {
	UpsertAccountHeader(h common.AccountHeader) error
	AccountHeader(id common.AccountId) (common.AccountHeader, error)
	ListAccountHeaders() ([]common.AccountHeader, error)
	MarkAccountLocked(id common.AccountId) error
	SetAccountSeed(id common.AccountId, seed common.Hash) error
	StoreAuthSecret(s common.AuthSecret) error
	AuthSecret(id common.AccountId) (common.AuthSecret, error)
}

// Notes groups input/output note-table operations.
type Notes interface {
	UpsertInputNote(r common.InputNoteRecord) error
	UpsertOutputNote(r common.OutputNoteRecord) error
	InputNoteById(id common.NoteId) (common.InputNoteRecord, error)
	InputNoteByNullifier(n common.Nullifier) (common.InputNoteRecord, error)
	InputNotes(filter InputNoteFilter) ([]common.InputNoteRecord, error)
	OutputNoteById(id common.NoteId) (common.OutputNoteRecord, error)
	OutputNotes(filter OutputNoteFilter) ([]common.OutputNoteRecord, error)

	UpsertNoteScript(s common.NoteScript) error
	NoteScript(root common.Hash) (common.NoteScript, error)
	UpsertNoteInputs(i common.NoteInputs) error
	NoteInputs(commitment common.Hash) (common.NoteInputs, error)

	AddTag(tag common.Tag, source common.TagSource) error
	RemoveTag(tag common.Tag) error
	Tags() ([]TagEntry, error)
}

// TagEntry pairs a tracked tag with why it is tracked.
type TagEntry struct {
	Tag    common.Tag
	Source common.TagSource
}

// Chain groups chain-log table operations.
type Chain interface {
	// InsertBlockHeader is idempotent on BlockNum. hasClientNotes is
	// monotone true: once set, a later call with false must not clear it.
	InsertBlockHeader(h common.BlockHeader, hasClientNotes bool) error
	BlockHeader(block common.BlockNumber) (common.BlockHeader, error)
	TipBlockNumber() (block common.BlockNumber, empty bool, err error)
	HasClientNotes(block common.BlockNumber) (bool, error)

	// InsertChainLogNodes bulk-upserts authenticated log nodes, each
	// optionally naming the two children that were combined to produce
	// it (nil/nil for a leaf). The child links let ChainView walk a
	// leaf's ancestor chain up to whatever peak subsumed it as of a
	// later reference block, without recomputing MMR position math.
	InsertChainLogNodes(nodes []ChainLogNode) error
	ChainLogNodesById(ids []uint64) ([]ChainLogNode, error)
	// ParentOf returns the node that combined childId with a sibling,
	// and the sibling's id, or common.ErrNotFound if childId is still a
	// peak (has no parent yet).
	ParentOf(childId uint64) (parent ChainLogNode, sibling uint64, isLeftChild bool, err error)

	// Peaks returns the authenticated peak set as of the given block.
	Peaks(block common.BlockNumber) ([]Peak, error)
	SetPeaks(block common.BlockNumber, peaks []Peak) error

	// SetLeafNodeId / LeafNodeId map a block number to the chain-log
	// node id of its leaf, assigned when the block was appended.
	SetLeafNodeId(block common.BlockNumber, id uint64) error
	LeafNodeId(block common.BlockNumber) (uint64, error)

	PruneHeadersBelow(block common.BlockNumber) error
}

// ChainLogNode is one interior authentication node of the chain log. Left
// and Right are nil for a leaf node.
type ChainLogNode struct {
	Id          uint64
	Hash        common.Hash
	Left, Right *uint64
}

// Peak is one root of the chain log's current forest of perfect binary
// subtrees (a Merkle Mountain Range peak).
type Peak struct {
	Id     uint64
	Height uint32
}

// Transactions groups transaction-record table operations.
type Transactions interface {
	InsertTransaction(r common.TransactionRecord) error
	UpdateTransactionCommitHeight(id common.Hash, height common.BlockNumber) error
	MarkTransactionDiscarded(id common.Hash) error
	Transaction(id common.Hash) (common.TransactionRecord, error)
	Transactions(filter TransactionFilter) ([]common.TransactionRecord, error)
}

// SyncCursor groups the sync-cursor operations (tag subscriptions are in
// Notes).
type SyncCursor interface {
	SyncCursor() (block common.BlockNumber, empty bool, err error)
	SetSyncCursor(block common.BlockNumber) error
}

// ForeignAccounts groups the foreign-account-code cache table operations.
type ForeignAccounts interface {
	UpsertForeignAccountCode(c common.ForeignAccountCode) error
	ForeignAccountCode(id common.AccountId) (common.ForeignAccountCode, error)
}

// DumpIO groups the export/import operations (§6 Persisted dump format).
type DumpIO interface {
	// Export dumps every table's full content as a portable Dump. Called
	// within a View so the snapshot is self-consistent.
	Export() (Dump, error)

	// Import replaces all tables with the content of the dump. Called
	// within an Update; it is destructive — every existing record is
	// discarded first.
	Import(d Dump) error
}
