// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package rpc

import (
	"context"
	"fmt"
	"sync"

	"github.com/rollupkit/client/common"
)

// FakeNode is an in-memory NodeClient, grounded on the teacher pack's
// demo.DemoNetwork: a single process standing in for the real node so
// SyncEngine and the client package can be exercised without a live
// transport. Deltas and proofs are queued by test setup via PushDelta /
// SetAccountProof etc.
type FakeNode struct {
	mu sync.Mutex

	headers     map[common.BlockNumber]common.BlockHeader
	pendingTxs  []common.Blob
	accountProofs map[common.AccountId]AccountProof
	accountCode map[common.AccountId]common.Blob
	notes       map[common.NoteId]NoteDetails
	queuedDelta []Delta
}

// NewFakeNode returns an empty fake; callers seed it with PushDelta /
// SetAccountProof / SetAccountCode / SetNoteDetails before use.
func NewFakeNode() *FakeNode {
	return &FakeNode{
		headers:       map[common.BlockNumber]common.BlockHeader{},
		accountProofs: map[common.AccountId]AccountProof{},
		accountCode:   map[common.AccountId]common.Blob{},
		notes:         map[common.NoteId]NoteDetails{},
	}
}

// PushDelta enqueues the Delta returned by the next SyncState call,
// regardless of the requested cursor (tests control ordering directly).
func (f *FakeNode) PushDelta(d Delta) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, hd := range d.Headers {
		f.headers[hd.Header.BlockNum] = hd.Header
	}
	f.queuedDelta = append(f.queuedDelta, d)
}

func (f *FakeNode) SetAccountProof(p AccountProof) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accountProofs[p.AccountId] = p
}

func (f *FakeNode) SetAccountCode(id common.AccountId, code common.Blob) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accountCode[id] = code
}

func (f *FakeNode) SetNoteDetails(d NoteDetails) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes[d.Note.Id] = d
}

// SubmittedTxs returns every transaction handed to SubmitProvenTx, in
// submission order.
func (f *FakeNode) SubmittedTxs() []common.Blob {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]common.Blob, len(f.pendingTxs))
	copy(out, f.pendingTxs)
	return out
}

func (f *FakeNode) SyncState(_ context.Context, _ common.BlockNumber, _ []common.Tag) (Delta, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queuedDelta) == 0 {
		return Delta{}, nil
	}
	d := f.queuedDelta[0]
	f.queuedDelta = f.queuedDelta[1:]
	return d, nil
}

func (f *FakeNode) SubmitProvenTx(_ context.Context, raw common.Blob) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pendingTxs = append(f.pendingTxs, raw)
	return nil
}

func (f *FakeNode) GetBlockHeaderByNumber(_ context.Context, block common.BlockNumber) (common.BlockHeader, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.headers[block]
	if !ok {
		return common.BlockHeader{}, fmt.Errorf("%w: block header %d", common.ErrNotFound, block)
	}
	return h, nil
}

func (f *FakeNode) GetAccountProof(_ context.Context, id common.AccountId) (AccountProof, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.accountProofs[id]
	if !ok {
		return AccountProof{}, fmt.Errorf("%w: account proof %s", common.ErrNotFound, id)
	}
	return p, nil
}

func (f *FakeNode) GetAccountCode(_ context.Context, id common.AccountId) (common.Blob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.accountCode[id]
	if !ok {
		return nil, fmt.Errorf("%w: account code %s", common.ErrNotFound, id)
	}
	return c, nil
}

func (f *FakeNode) GetNotesById(_ context.Context, ids []common.NoteId) ([]NoteDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]NoteDetails, 0, len(ids))
	for _, id := range ids {
		d, ok := f.notes[id]
		if !ok {
			return nil, fmt.Errorf("%w: note %s", common.ErrNotFound, id)
		}
		out = append(out, d)
	}
	return out, nil
}

var _ NodeClient = (*FakeNode)(nil)
