// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package memstore is an in-memory store.Store implementation. It is the
// reference backend exercised by the core's own tests, grounded on the
// teacher pack's map-backed backend/index/memory variants.
package memstore

import (
	"sync"

	"github.com/rollupkit/client/common"
	"github.com/rollupkit/client/store"
)

// tables is the full in-memory dataset. Update clones it before handing a
// Tx to the caller's closure and swaps the clone in only on success, which
// is what gives the Store contract's atomicity and isolation guarantees
// without a real WAL.
type tables struct {
	accounts       map[common.AccountId]common.AccountHeader
	authSecrets    map[common.AccountId]common.AuthSecret
	inputNotes     map[common.NoteId]common.InputNoteRecord
	nullifierIndex map[common.Nullifier]common.NoteId
	outputNotes    map[common.NoteId]common.OutputNoteRecord
	noteScripts    map[common.Hash]common.NoteScript
	noteInputs     map[common.Hash]common.NoteInputs
	tags           map[common.Tag]common.TagSource
	headers        map[common.BlockNumber]common.BlockHeader
	hasClientNotes map[common.BlockNumber]bool
	logNodes       map[uint64]store.ChainLogNode
	parentByChild  map[uint64]childEdge
	leafNodeId     map[common.BlockNumber]uint64
	peaks          map[common.BlockNumber][]store.Peak
	transactions   map[common.Hash]common.TransactionRecord
	foreignCode    map[common.AccountId]common.ForeignAccountCode
	cursor         *common.BlockNumber
}

// childEdge records, for a node that is a child of a merge, the merge's
// parent id, its sibling id, and whether this child was the left operand.
type childEdge struct {
	parent      uint64
	sibling     uint64
	isLeftChild bool
}

func newTables() *tables {
	return &tables{
		accounts:       map[common.AccountId]common.AccountHeader{},
		authSecrets:    map[common.AccountId]common.AuthSecret{},
		inputNotes:     map[common.NoteId]common.InputNoteRecord{},
		nullifierIndex: map[common.Nullifier]common.NoteId{},
		outputNotes:    map[common.NoteId]common.OutputNoteRecord{},
		noteScripts:    map[common.Hash]common.NoteScript{},
		noteInputs:     map[common.Hash]common.NoteInputs{},
		tags:           map[common.Tag]common.TagSource{},
		headers:        map[common.BlockNumber]common.BlockHeader{},
		hasClientNotes: map[common.BlockNumber]bool{},
		logNodes:       map[uint64]store.ChainLogNode{},
		parentByChild:  map[uint64]childEdge{},
		leafNodeId:     map[common.BlockNumber]uint64{},
		peaks:          map[common.BlockNumber][]store.Peak{},
		transactions:   map[common.Hash]common.TransactionRecord{},
		foreignCode:    map[common.AccountId]common.ForeignAccountCode{},
	}
}

func (t *tables) clone() *tables {
	c := newTables()
	for k, v := range t.accounts {
		c.accounts[k] = v
	}
	for k, v := range t.authSecrets {
		c.authSecrets[k] = v
	}
	for k, v := range t.inputNotes {
		c.inputNotes[k] = v
	}
	for k, v := range t.nullifierIndex {
		c.nullifierIndex[k] = v
	}
	for k, v := range t.outputNotes {
		c.outputNotes[k] = v
	}
	for k, v := range t.noteScripts {
		c.noteScripts[k] = v
	}
	for k, v := range t.noteInputs {
		c.noteInputs[k] = v
	}
	for k, v := range t.tags {
		c.tags[k] = v
	}
	for k, v := range t.headers {
		c.headers[k] = v
	}
	for k, v := range t.hasClientNotes {
		c.hasClientNotes[k] = v
	}
	for k, v := range t.logNodes {
		c.logNodes[k] = v
	}
	for k, v := range t.parentByChild {
		c.parentByChild[k] = v
	}
	for k, v := range t.leafNodeId {
		c.leafNodeId[k] = v
	}
	for k, v := range t.peaks {
		cp := make([]store.Peak, len(v))
		copy(cp, v)
		c.peaks[k] = cp
	}
	for k, v := range t.transactions {
		c.transactions[k] = v
	}
	for k, v := range t.foreignCode {
		c.foreignCode[k] = v
	}
	if t.cursor != nil {
		b := *t.cursor
		c.cursor = &b
	}
	return c
}

// Store is the in-memory store.Store implementation.
type Store struct {
	mu   sync.Mutex
	data *tables
}

// New creates an empty in-memory Store.
func New() *Store {
	return &Store{data: newTables()}
}

func (s *Store) Update(fn func(store.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := s.data.clone()
	tx := &tx{t: clone}
	if err := fn(tx); err != nil {
		return err
	}
	s.data = clone
	return nil
}

func (s *Store) View(fn func(store.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := &tx{t: s.data, readOnly: true}
	return fn(tx)
}

func (s *Store) Close() error {
	return nil
}

var _ store.Store = (*Store)(nil)
