// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package memstore

import (
	"fmt"

	"github.com/rollupkit/client/common"
	"github.com/rollupkit/client/store"
)

type tx struct {
	t        *tables
	readOnly bool
}

func (x *tx) checkWritable() error {
	if x.readOnly {
		return fmt.Errorf("%w: write attempted in a read-only transaction", common.ErrStore)
	}
	return nil
}

// --- Accounts ---

func (x *tx) UpsertAccountHeader(h common.AccountHeader) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	x.t.accounts[h.Id] = h
	return nil
}

func (x *tx) AccountHeader(id common.AccountId) (common.AccountHeader, error) {
	h, ok := x.t.accounts[id]
	if !ok {
		return common.AccountHeader{}, fmt.Errorf("%w: account %s", common.ErrNotFound, id)
	}
	return h, nil
}

func (x *tx) ListAccountHeaders() ([]common.AccountHeader, error) {
	out := make([]common.AccountHeader, 0, len(x.t.accounts))
	for _, h := range x.t.accounts {
		out = append(out, h)
	}
	return out, nil
}

func (x *tx) MarkAccountLocked(id common.AccountId) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	h, ok := x.t.accounts[id]
	if !ok {
		return fmt.Errorf("%w: account %s", common.ErrNotFound, id)
	}
	h.Locked = true
	x.t.accounts[id] = h
	return nil
}

func (x *tx) SetAccountSeed(id common.AccountId, seed common.Hash) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	h, ok := x.t.accounts[id]
	if !ok {
		return fmt.Errorf("%w: account %s", common.ErrNotFound, id)
	}
	h.Seed = &seed
	x.t.accounts[id] = h
	return nil
}

func (x *tx) StoreAuthSecret(s common.AuthSecret) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	x.t.authSecrets[s.AccountId] = s
	return nil
}

func (x *tx) AuthSecret(id common.AccountId) (common.AuthSecret, error) {
	s, ok := x.t.authSecrets[id]
	if !ok {
		return common.AuthSecret{}, fmt.Errorf("%w: auth secret for %s", common.ErrNotFound, id)
	}
	return s, nil
}

// --- Notes ---

func (x *tx) UpsertInputNote(r common.InputNoteRecord) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	if existing, ok := x.t.inputNotes[r.Id]; ok && existing.Nullifier != nil && r.Nullifier != nil && *existing.Nullifier != *r.Nullifier {
		return fmt.Errorf("%w: note %s nullifier would change", common.ErrProtocolViolation, r.Id)
	}
	x.t.inputNotes[r.Id] = r
	if r.Nullifier != nil {
		if other, ok := x.t.nullifierIndex[*r.Nullifier]; ok && other != r.Id {
			return fmt.Errorf("%w: nullifier %s already indexed for a different note", common.ErrProtocolViolation, r.Nullifier)
		}
		x.t.nullifierIndex[*r.Nullifier] = r.Id
	}
	return nil
}

func (x *tx) UpsertOutputNote(r common.OutputNoteRecord) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	x.t.outputNotes[r.Id] = r
	return nil
}

func (x *tx) InputNoteById(id common.NoteId) (common.InputNoteRecord, error) {
	r, ok := x.t.inputNotes[id]
	if !ok {
		return common.InputNoteRecord{}, fmt.Errorf("%w: input note %s", common.ErrNotFound, id)
	}
	return r, nil
}

func (x *tx) InputNoteByNullifier(n common.Nullifier) (common.InputNoteRecord, error) {
	id, ok := x.t.nullifierIndex[n]
	if !ok {
		return common.InputNoteRecord{}, fmt.Errorf("%w: nullifier %s", common.ErrNotFound, n)
	}
	return x.InputNoteById(id)
}

func (x *tx) InputNotes(filter store.InputNoteFilter) ([]common.InputNoteRecord, error) {
	var out []common.InputNoteRecord
	for _, r := range x.t.inputNotes {
		if !matchesInputFilter(r, filter) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func matchesInputFilter(r common.InputNoteRecord, f store.InputNoteFilter) bool {
	if len(f.States) > 0 {
		found := false
		for _, s := range f.States {
			if r.State == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Tag != nil {
		if r.Metadata == nil || r.Metadata.Tag != *f.Tag {
			return false
		}
	}
	if f.Nullifier != nil {
		if r.Nullifier == nil || *r.Nullifier != *f.Nullifier {
			return false
		}
	}
	return true
}

func (x *tx) OutputNoteById(id common.NoteId) (common.OutputNoteRecord, error) {
	r, ok := x.t.outputNotes[id]
	if !ok {
		return common.OutputNoteRecord{}, fmt.Errorf("%w: output note %s", common.ErrNotFound, id)
	}
	return r, nil
}

func (x *tx) OutputNotes(filter store.OutputNoteFilter) ([]common.OutputNoteRecord, error) {
	var out []common.OutputNoteRecord
	for _, r := range x.t.outputNotes {
		if len(filter.States) > 0 {
			found := false
			for _, s := range filter.States {
				if r.State == s {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, r)
	}
	return out, nil
}

func (x *tx) UpsertNoteScript(s common.NoteScript) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	x.t.noteScripts[s.Root] = s
	return nil
}

func (x *tx) NoteScript(root common.Hash) (common.NoteScript, error) {
	s, ok := x.t.noteScripts[root]
	if !ok {
		return common.NoteScript{}, fmt.Errorf("%w: note script %s", common.ErrNotFound, root)
	}
	return s, nil
}

func (x *tx) UpsertNoteInputs(i common.NoteInputs) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	x.t.noteInputs[i.Commitment] = i
	return nil
}

func (x *tx) NoteInputs(commitment common.Hash) (common.NoteInputs, error) {
	i, ok := x.t.noteInputs[commitment]
	if !ok {
		return common.NoteInputs{}, fmt.Errorf("%w: note inputs %s", common.ErrNotFound, commitment)
	}
	return i, nil
}

func (x *tx) AddTag(t common.Tag, source common.TagSource) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	x.t.tags[t] = source
	return nil
}

func (x *tx) RemoveTag(t common.Tag) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	delete(x.t.tags, t)
	return nil
}

func (x *tx) Tags() ([]store.TagEntry, error) {
	out := make([]store.TagEntry, 0, len(x.t.tags))
	for t, src := range x.t.tags {
		out = append(out, store.TagEntry{Tag: t, Source: src})
	}
	return out, nil
}

// --- Chain ---

func (x *tx) InsertBlockHeader(h common.BlockHeader, hasClientNotes bool) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	if _, exists := x.t.headers[h.BlockNum]; exists {
		if hasClientNotes {
			x.t.hasClientNotes[h.BlockNum] = true
		}
		return nil
	}
	x.t.headers[h.BlockNum] = h
	x.t.hasClientNotes[h.BlockNum] = hasClientNotes
	return nil
}

func (x *tx) BlockHeader(block common.BlockNumber) (common.BlockHeader, error) {
	h, ok := x.t.headers[block]
	if !ok {
		return common.BlockHeader{}, fmt.Errorf("%w: block header %d", common.ErrNotFound, block)
	}
	return h, nil
}

func (x *tx) TipBlockNumber() (common.BlockNumber, bool, error) {
	var tip common.BlockNumber
	found := false
	for n := range x.t.headers {
		if !found || n > tip {
			tip = n
			found = true
		}
	}
	return tip, !found, nil
}

func (x *tx) HasClientNotes(block common.BlockNumber) (bool, error) {
	return x.t.hasClientNotes[block], nil
}

func (x *tx) InsertChainLogNodes(nodes []store.ChainLogNode) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	for _, n := range nodes {
		x.t.logNodes[n.Id] = n
		if n.Left != nil {
			x.t.parentByChild[*n.Left] = childEdge{parent: n.Id, sibling: *n.Right, isLeftChild: true}
		}
		if n.Right != nil {
			x.t.parentByChild[*n.Right] = childEdge{parent: n.Id, sibling: *n.Left, isLeftChild: false}
		}
	}
	return nil
}

func (x *tx) ChainLogNodesById(ids []uint64) ([]store.ChainLogNode, error) {
	out := make([]store.ChainLogNode, 0, len(ids))
	for _, id := range ids {
		n, ok := x.t.logNodes[id]
		if !ok {
			return nil, fmt.Errorf("%w: chain log node %d", common.ErrMissingAuthData, id)
		}
		out = append(out, n)
	}
	return out, nil
}

func (x *tx) ParentOf(childId uint64) (store.ChainLogNode, uint64, bool, error) {
	edge, ok := x.t.parentByChild[childId]
	if !ok {
		return store.ChainLogNode{}, 0, false, fmt.Errorf("%w: node %d has no parent", common.ErrNotFound, childId)
	}
	parent, ok := x.t.logNodes[edge.parent]
	if !ok {
		return store.ChainLogNode{}, 0, false, fmt.Errorf("%w: chain log node %d", common.ErrMissingAuthData, edge.parent)
	}
	return parent, edge.sibling, edge.isLeftChild, nil
}

func (x *tx) Peaks(block common.BlockNumber) ([]store.Peak, error) {
	p, ok := x.t.peaks[block]
	if !ok {
		return nil, fmt.Errorf("%w: peaks at block %d", common.ErrMissingAuthData, block)
	}
	return p, nil
}

func (x *tx) SetPeaks(block common.BlockNumber, peaks []store.Peak) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	cp := make([]store.Peak, len(peaks))
	copy(cp, peaks)
	x.t.peaks[block] = cp
	return nil
}

func (x *tx) SetLeafNodeId(block common.BlockNumber, id uint64) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	x.t.leafNodeId[block] = id
	return nil
}

func (x *tx) LeafNodeId(block common.BlockNumber) (uint64, error) {
	id, ok := x.t.leafNodeId[block]
	if !ok {
		return 0, fmt.Errorf("%w: leaf node for block %d", common.ErrNotFound, block)
	}
	return id, nil
}

func (x *tx) PruneHeadersBelow(block common.BlockNumber) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	for n := range x.t.headers {
		if n < block && !x.t.hasClientNotes[n] {
			delete(x.t.headers, n)
			delete(x.t.hasClientNotes, n)
			delete(x.t.peaks, n)
		}
	}
	return nil
}

// --- Transactions ---

func (x *tx) InsertTransaction(r common.TransactionRecord) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	x.t.transactions[r.Id] = r
	return nil
}

func (x *tx) UpdateTransactionCommitHeight(id common.Hash, height common.BlockNumber) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	r, ok := x.t.transactions[id]
	if !ok {
		return fmt.Errorf("%w: transaction %s", common.ErrNotFound, id)
	}
	r.CommitHeight = &height
	x.t.transactions[id] = r
	return nil
}

func (x *tx) MarkTransactionDiscarded(id common.Hash) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	r, ok := x.t.transactions[id]
	if !ok {
		return fmt.Errorf("%w: transaction %s", common.ErrNotFound, id)
	}
	r.Discarded = true
	x.t.transactions[id] = r
	return nil
}

func (x *tx) Transaction(id common.Hash) (common.TransactionRecord, error) {
	r, ok := x.t.transactions[id]
	if !ok {
		return common.TransactionRecord{}, fmt.Errorf("%w: transaction %s", common.ErrNotFound, id)
	}
	return r, nil
}

func (x *tx) Transactions(filter store.TransactionFilter) ([]common.TransactionRecord, error) {
	var out []common.TransactionRecord
	for _, r := range x.t.transactions {
		if filter.AccountId != nil && r.AccountId != *filter.AccountId {
			continue
		}
		if filter.OnlyUncommitted && r.CommitHeight != nil {
			continue
		}
		if filter.OnlyDiscarded && !r.Discarded {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// --- Sync cursor ---

func (x *tx) SyncCursor() (common.BlockNumber, bool, error) {
	if x.t.cursor == nil {
		return 0, true, nil
	}
	return *x.t.cursor, false, nil
}

func (x *tx) SetSyncCursor(block common.BlockNumber) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	x.t.cursor = &block
	return nil
}

// --- Foreign accounts ---

func (x *tx) UpsertForeignAccountCode(c common.ForeignAccountCode) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	x.t.foreignCode[c.AccountId] = c
	return nil
}

func (x *tx) ForeignAccountCode(id common.AccountId) (common.ForeignAccountCode, error) {
	c, ok := x.t.foreignCode[id]
	if !ok {
		return common.ForeignAccountCode{}, fmt.Errorf("%w: foreign account code %s", common.ErrNotFound, id)
	}
	return c, nil
}

// --- Export/import ---

func (x *tx) Export() (store.Dump, error) {
	d := store.Dump{}
	for _, h := range x.t.accounts {
		d.Accounts = append(d.Accounts, h)
	}
	for _, s := range x.t.authSecrets {
		d.AuthSecrets = append(d.AuthSecrets, s)
	}
	for _, r := range x.t.inputNotes {
		d.InputNotes = append(d.InputNotes, r)
	}
	for _, r := range x.t.outputNotes {
		d.OutputNotes = append(d.OutputNotes, r)
	}
	for _, s := range x.t.noteScripts {
		d.NoteScripts = append(d.NoteScripts, s)
	}
	for _, i := range x.t.noteInputs {
		d.NoteInputs = append(d.NoteInputs, i)
	}
	for t, src := range x.t.tags {
		d.Tags = append(d.Tags, store.TagEntry{Tag: t, Source: src})
	}
	for n, h := range x.t.headers {
		d.BlockHeaders = append(d.BlockHeaders, store.DumpBlockHeader{Header: h, HasClientNotes: x.t.hasClientNotes[n]})
	}
	for _, n := range x.t.logNodes {
		d.ChainLogNodes = append(d.ChainLogNodes, n)
	}
	for n, peaks := range x.t.peaks {
		d.Peaks = append(d.Peaks, store.DumpPeaks{Block: n, Peaks: peaks})
	}
	for block, id := range x.t.leafNodeId {
		d.LeafNodeIds = append(d.LeafNodeIds, store.DumpLeaf{Block: block, NodeId: id})
	}
	for _, r := range x.t.transactions {
		d.Transactions = append(d.Transactions, r)
	}
	for _, c := range x.t.foreignCode {
		d.ForeignAccountCodes = append(d.ForeignAccountCodes, c)
	}
	if x.t.cursor != nil {
		b := *x.t.cursor
		d.SyncCursorBlock = &b
	}
	return d, nil
}

func (x *tx) Import(d store.Dump) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	*x.t = *newTables()
	for _, h := range d.Accounts {
		x.t.accounts[h.Id] = h
	}
	for _, s := range d.AuthSecrets {
		x.t.authSecrets[s.AccountId] = s
	}
	for _, r := range d.InputNotes {
		x.t.inputNotes[r.Id] = r
		if r.Nullifier != nil {
			x.t.nullifierIndex[*r.Nullifier] = r.Id
		}
	}
	for _, r := range d.OutputNotes {
		x.t.outputNotes[r.Id] = r
	}
	for _, s := range d.NoteScripts {
		x.t.noteScripts[s.Root] = s
	}
	for _, i := range d.NoteInputs {
		x.t.noteInputs[i.Commitment] = i
	}
	for _, e := range d.Tags {
		x.t.tags[e.Tag] = e.Source
	}
	for _, bh := range d.BlockHeaders {
		x.t.headers[bh.Header.BlockNum] = bh.Header
		x.t.hasClientNotes[bh.Header.BlockNum] = bh.HasClientNotes
	}
	if err := x.InsertChainLogNodes(d.ChainLogNodes); err != nil {
		return err
	}
	for _, p := range d.Peaks {
		x.t.peaks[p.Block] = p.Peaks
	}
	for _, l := range d.LeafNodeIds {
		x.t.leafNodeId[l.Block] = l.NodeId
	}
	for _, r := range d.Transactions {
		x.t.transactions[r.Id] = r
	}
	for _, c := range d.ForeignAccountCodes {
		x.t.foreignCode[c.AccountId] = c
	}
	x.t.cursor = d.SyncCursorBlock
	return nil
}

var _ store.Tx = (*tx)(nil)
