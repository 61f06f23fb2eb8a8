// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package leveldbstore

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/rollupkit/client/common"
	"github.com/rollupkit/client/store"
)

// reader is the read surface shared by *leveldb.Transaction and
// *leveldb.Snapshot, mirroring the teacher pack's LevelDB/LevelDBReader
// duality (backend/ldb.go) so a tx can run against either without knowing
// which one it holds.
type reader interface {
	Get(key []byte, ro *opt.ReadOptions) ([]byte, error)
	Has(key []byte, ro *opt.ReadOptions) (bool, error)
	NewIterator(slice *util.Range, ro *opt.ReadOptions) iterator.Iterator
}

type writer interface {
	Put(key, value []byte, wo *opt.WriteOptions) error
	Delete(key []byte, wo *opt.WriteOptions) error
}

type tx struct {
	r        reader
	w        writer
	readOnly bool
}

func (x *tx) checkWritable() error {
	if x.readOnly {
		return fmt.Errorf("%w: write attempted in a read-only transaction", common.ErrStore)
	}
	return nil
}

func (x *tx) getJSON(key []byte, v interface{}) (bool, error) {
	raw, err := x.r.Get(key, nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("%w: decode: %v", common.ErrStore, err)
	}
	return true, nil
}

func (x *tx) putJSON(key []byte, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", common.ErrStore, err)
	}
	if err := x.w.Put(key, raw, nil); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	return nil
}

func (x *tx) del(key []byte) error {
	if err := x.w.Delete(key, nil); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	return nil
}

func (x *tx) iteratePrefix(ts tableSpace, each func(key, value []byte) error) error {
	it := x.r.NewIterator(util.BytesPrefix(prefixOnly(ts)), nil)
	defer it.Release()
	for it.Next() {
		if err := each(it.Key(), it.Value()); err != nil {
			return err
		}
	}
	return it.Error()
}

// --- Accounts ---

func (x *tx) UpsertAccountHeader(h common.AccountHeader) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	return x.putJSON(accountKey(tsAccount, h.Id), h)
}

func (x *tx) AccountHeader(id common.AccountId) (common.AccountHeader, error) {
	var h common.AccountHeader
	ok, err := x.getJSON(accountKey(tsAccount, id), &h)
	if err != nil {
		return common.AccountHeader{}, err
	}
	if !ok {
		return common.AccountHeader{}, fmt.Errorf("%w: account %s", common.ErrNotFound, id)
	}
	return h, nil
}

func (x *tx) ListAccountHeaders() ([]common.AccountHeader, error) {
	var out []common.AccountHeader
	err := x.iteratePrefix(tsAccount, func(_, value []byte) error {
		var h common.AccountHeader
		if err := json.Unmarshal(value, &h); err != nil {
			return fmt.Errorf("%w: decode: %v", common.ErrStore, err)
		}
		out = append(out, h)
		return nil
	})
	return out, err
}

func (x *tx) MarkAccountLocked(id common.AccountId) error {
	h, err := x.AccountHeader(id)
	if err != nil {
		return err
	}
	h.Locked = true
	return x.UpsertAccountHeader(h)
}

func (x *tx) SetAccountSeed(id common.AccountId, seed common.Hash) error {
	h, err := x.AccountHeader(id)
	if err != nil {
		return err
	}
	h.Seed = &seed
	return x.UpsertAccountHeader(h)
}

func (x *tx) StoreAuthSecret(s common.AuthSecret) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	return x.putJSON(accountKey(tsAuthSecret, s.AccountId), s)
}

func (x *tx) AuthSecret(id common.AccountId) (common.AuthSecret, error) {
	var s common.AuthSecret
	ok, err := x.getJSON(accountKey(tsAuthSecret, id), &s)
	if err != nil {
		return common.AuthSecret{}, err
	}
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
	var existing common.InputNoteRecord
	if ok, err := x.getJSON(noteIdKey(tsInputNote, r.Id), &existing); err != nil {
		return err
	} else if ok && existing.Nullifier != nil && r.Nullifier != nil && *existing.Nullifier != *r.Nullifier {
		return fmt.Errorf("%w: note %s nullifier would change", common.ErrProtocolViolation, r.Id)
	}
	if r.Nullifier != nil {
		var owner common.NoteId
		if ok, err := x.getJSON(nullifierKey(*r.Nullifier), &owner); err != nil {
			return err
		} else if ok && owner != r.Id {
			return fmt.Errorf("%w: nullifier %s already indexed for a different note", common.ErrProtocolViolation, r.Nullifier)
		}
		if err := x.putJSON(nullifierKey(*r.Nullifier), r.Id); err != nil {
			return err
		}
	}
	return x.putJSON(noteIdKey(tsInputNote, r.Id), r)
}

func (x *tx) UpsertOutputNote(r common.OutputNoteRecord) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	return x.putJSON(noteIdKey(tsOutputNote, r.Id), r)
}

func (x *tx) InputNoteById(id common.NoteId) (common.InputNoteRecord, error) {
	var r common.InputNoteRecord
	ok, err := x.getJSON(noteIdKey(tsInputNote, id), &r)
	if err != nil {
		return common.InputNoteRecord{}, err
	}
	if !ok {
		return common.InputNoteRecord{}, fmt.Errorf("%w: input note %s", common.ErrNotFound, id)
	}
	return r, nil
}

func (x *tx) InputNoteByNullifier(n common.Nullifier) (common.InputNoteRecord, error) {
	var id common.NoteId
	ok, err := x.getJSON(nullifierKey(n), &id)
	if err != nil {
		return common.InputNoteRecord{}, err
	}
	if !ok {
		return common.InputNoteRecord{}, fmt.Errorf("%w: nullifier %s", common.ErrNotFound, n)
	}
	return x.InputNoteById(id)
}

func (x *tx) InputNotes(filter store.InputNoteFilter) ([]common.InputNoteRecord, error) {
	var out []common.InputNoteRecord
	err := x.iteratePrefix(tsInputNote, func(_, value []byte) error {
		var r common.InputNoteRecord
		if err := json.Unmarshal(value, &r); err != nil {
			return fmt.Errorf("%w: decode: %v", common.ErrStore, err)
		}
		if matchesInputFilter(r, filter) {
			out = append(out, r)
		}
		return nil
	})
	return out, err
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
	var r common.OutputNoteRecord
	ok, err := x.getJSON(noteIdKey(tsOutputNote, id), &r)
	if err != nil {
		return common.OutputNoteRecord{}, err
	}
	if !ok {
		return common.OutputNoteRecord{}, fmt.Errorf("%w: output note %s", common.ErrNotFound, id)
	}
	return r, nil
}

func (x *tx) OutputNotes(filter store.OutputNoteFilter) ([]common.OutputNoteRecord, error) {
	var out []common.OutputNoteRecord
	err := x.iteratePrefix(tsOutputNote, func(_, value []byte) error {
		var r common.OutputNoteRecord
		if err := json.Unmarshal(value, &r); err != nil {
			return fmt.Errorf("%w: decode: %v", common.ErrStore, err)
		}
		if len(filter.States) > 0 {
			found := false
			for _, s := range filter.States {
				if r.State == s {
					found = true
					break
				}
			}
			if !found {
				return nil
			}
		}
		out = append(out, r)
		return nil
	})
	return out, err
}

func (x *tx) UpsertNoteScript(s common.NoteScript) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	return x.putJSON(hashKey(tsNoteScript, s.Root), s)
}

func (x *tx) NoteScript(root common.Hash) (common.NoteScript, error) {
	var s common.NoteScript
	ok, err := x.getJSON(hashKey(tsNoteScript, root), &s)
	if err != nil {
		return common.NoteScript{}, err
	}
	if !ok {
		return common.NoteScript{}, fmt.Errorf("%w: note script %s", common.ErrNotFound, root)
	}
	return s, nil
}

func (x *tx) UpsertNoteInputs(i common.NoteInputs) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	return x.putJSON(hashKey(tsNoteInputs, i.Commitment), i)
}

func (x *tx) NoteInputs(commitment common.Hash) (common.NoteInputs, error) {
	var i common.NoteInputs
	ok, err := x.getJSON(hashKey(tsNoteInputs, commitment), &i)
	if err != nil {
		return common.NoteInputs{}, err
	}
	if !ok {
		return common.NoteInputs{}, fmt.Errorf("%w: note inputs %s", common.ErrNotFound, commitment)
	}
	return i, nil
}

func (x *tx) AddTag(t common.Tag, source common.TagSource) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	return x.putJSON(tagKey(t), source)
}

func (x *tx) RemoveTag(t common.Tag) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	return x.del(tagKey(t))
}

func (x *tx) Tags() ([]store.TagEntry, error) {
	var out []store.TagEntry
	err := x.iteratePrefix(tsTag, func(k, value []byte) error {
		var src common.TagSource
		if err := json.Unmarshal(value, &src); err != nil {
			return fmt.Errorf("%w: decode: %v", common.ErrStore, err)
		}
		out = append(out, store.TagEntry{Tag: common.Tag(binary.BigEndian.Uint32(k[1:])), Source: src})
		return nil
	})
	return out, err
}

// --- Chain ---

func (x *tx) InsertBlockHeader(h common.BlockHeader, hasClientNotes bool) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	var existing common.BlockHeader
	if ok, err := x.getJSON(blockKey(tsHeader, h.BlockNum), &existing); err != nil {
		return err
	} else if ok {
		if hasClientNotes {
			return x.putJSON(blockKey(tsHasClientNotes, h.BlockNum), true)
		}
		return nil
	}
	if err := x.putJSON(blockKey(tsHeader, h.BlockNum), h); err != nil {
		return err
	}
	return x.putJSON(blockKey(tsHasClientNotes, h.BlockNum), hasClientNotes)
}

func (x *tx) BlockHeader(block common.BlockNumber) (common.BlockHeader, error) {
	var h common.BlockHeader
	ok, err := x.getJSON(blockKey(tsHeader, block), &h)
	if err != nil {
		return common.BlockHeader{}, err
	}
	if !ok {
		return common.BlockHeader{}, fmt.Errorf("%w: block header %d", common.ErrNotFound, block)
	}
	return h, nil
}

func (x *tx) TipBlockNumber() (common.BlockNumber, bool, error) {
	var tip common.BlockNumber
	found := false
	err := x.iteratePrefix(tsHeader, func(k, _ []byte) error {
		n := common.BlockNumber(binary.BigEndian.Uint32(k[1:]))
		if !found || n > tip {
			tip = n
			found = true
		}
		return nil
	})
	return tip, !found, err
}

func (x *tx) HasClientNotes(block common.BlockNumber) (bool, error) {
	var v bool
	_, err := x.getJSON(blockKey(tsHasClientNotes, block), &v)
	return v, err
}

func (x *tx) InsertChainLogNodes(nodes []store.ChainLogNode) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	for _, n := range nodes {
		if err := x.putJSON(nodeIdKey(tsLogNode, n.Id), n); err != nil {
			return err
		}
		if n.Left != nil {
			if err := x.putJSON(nodeIdKey(tsParentByChild, *n.Left), childEdge{Parent: n.Id, Sibling: *n.Right, IsLeftChild: true}); err != nil {
				return err
			}
		}
		if n.Right != nil {
			if err := x.putJSON(nodeIdKey(tsParentByChild, *n.Right), childEdge{Parent: n.Id, Sibling: *n.Left, IsLeftChild: false}); err != nil {
				return err
			}
		}
	}
	return nil
}

type childEdge struct {
	Parent      uint64
	Sibling     uint64
	IsLeftChild bool
}

func (x *tx) ChainLogNodesById(ids []uint64) ([]store.ChainLogNode, error) {
	out := make([]store.ChainLogNode, 0, len(ids))
	for _, id := range ids {
		var n store.ChainLogNode
		ok, err := x.getJSON(nodeIdKey(tsLogNode, id), &n)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: chain log node %d", common.ErrMissingAuthData, id)
		}
		out = append(out, n)
	}
	return out, nil
}

func (x *tx) ParentOf(childId uint64) (store.ChainLogNode, uint64, bool, error) {
	var edge childEdge
	ok, err := x.getJSON(nodeIdKey(tsParentByChild, childId), &edge)
	if err != nil {
		return store.ChainLogNode{}, 0, false, err
	}
	if !ok {
		return store.ChainLogNode{}, 0, false, fmt.Errorf("%w: node %d has no parent", common.ErrNotFound, childId)
	}
	var parent store.ChainLogNode
	if ok, err := x.getJSON(nodeIdKey(tsLogNode, edge.Parent), &parent); err != nil {
		return store.ChainLogNode{}, 0, false, err
	} else if !ok {
		return store.ChainLogNode{}, 0, false, fmt.Errorf("%w: chain log node %d", common.ErrMissingAuthData, edge.Parent)
	}
	return parent, edge.Sibling, edge.IsLeftChild, nil
}

func (x *tx) Peaks(block common.BlockNumber) ([]store.Peak, error) {
	var peaks []store.Peak
	ok, err := x.getJSON(blockKey(tsPeaks, block), &peaks)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: peaks at block %d", common.ErrMissingAuthData, block)
	}
	return peaks, nil
}

func (x *tx) SetPeaks(block common.BlockNumber, peaks []store.Peak) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	return x.putJSON(blockKey(tsPeaks, block), peaks)
}

func (x *tx) SetLeafNodeId(block common.BlockNumber, id uint64) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	return x.putJSON(blockKey(tsLeafNodeId, block), id)
}

func (x *tx) LeafNodeId(block common.BlockNumber) (uint64, error) {
	var id uint64
	ok, err := x.getJSON(blockKey(tsLeafNodeId, block), &id)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: leaf node for block %d", common.ErrNotFound, block)
	}
	return id, nil
}

func (x *tx) PruneHeadersBelow(block common.BlockNumber) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	var toDelete [][]byte
	err := x.iteratePrefix(tsHeader, func(k, _ []byte) error {
		n := common.BlockNumber(binary.BigEndian.Uint32(k[1:]))
		if n >= block {
			return nil
		}
		tracked, err := x.HasClientNotes(n)
		if err != nil {
			return err
		}
		if tracked {
			return nil
		}
		kc := make([]byte, len(k))
		copy(kc, k)
		toDelete = append(toDelete, kc)
		return nil
	})
	if err != nil {
		return err
	}
	for _, k := range toDelete {
		n := common.BlockNumber(binary.BigEndian.Uint32(k[1:]))
		if err := x.del(k); err != nil {
			return err
		}
		if err := x.del(blockKey(tsHasClientNotes, n)); err != nil {
			return err
		}
		if err := x.del(blockKey(tsPeaks, n)); err != nil {
			return err
		}
	}
	return nil
}

// --- Transactions ---

func (x *tx) InsertTransaction(r common.TransactionRecord) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	return x.putJSON(txIdKey(r.Id), r)
}

func (x *tx) UpdateTransactionCommitHeight(id common.Hash, height common.BlockNumber) error {
	r, err := x.Transaction(id)
	if err != nil {
		return err
	}
	r.CommitHeight = &height
	return x.InsertTransaction(r)
}

func (x *tx) MarkTransactionDiscarded(id common.Hash) error {
	r, err := x.Transaction(id)
	if err != nil {
		return err
	}
	r.Discarded = true
	return x.InsertTransaction(r)
}

func (x *tx) Transaction(id common.Hash) (common.TransactionRecord, error) {
	var r common.TransactionRecord
	ok, err := x.getJSON(txIdKey(id), &r)
	if err != nil {
		return common.TransactionRecord{}, err
	}
	if !ok {
		return common.TransactionRecord{}, fmt.Errorf("%w: transaction %s", common.ErrNotFound, id)
	}
	return r, nil
}

func (x *tx) Transactions(filter store.TransactionFilter) ([]common.TransactionRecord, error) {
	var out []common.TransactionRecord
	err := x.iteratePrefix(tsTransaction, func(_, value []byte) error {
		var r common.TransactionRecord
		if err := json.Unmarshal(value, &r); err != nil {
			return fmt.Errorf("%w: decode: %v", common.ErrStore, err)
		}
		if filter.AccountId != nil && r.AccountId != *filter.AccountId {
			return nil
		}
		if filter.OnlyUncommitted && r.CommitHeight != nil {
			return nil
		}
		if filter.OnlyDiscarded && !r.Discarded {
			return nil
		}
		out = append(out, r)
		return nil
	})
	return out, err
}

// --- Sync cursor ---

func (x *tx) SyncCursor() (common.BlockNumber, bool, error) {
	var b common.BlockNumber
	ok, err := x.getJSON(metaCursorKey, &b)
	if err != nil {
		return 0, true, err
	}
	return b, !ok, nil
}

func (x *tx) SetSyncCursor(block common.BlockNumber) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	return x.putJSON(metaCursorKey, block)
}

// --- Foreign accounts ---

func (x *tx) UpsertForeignAccountCode(c common.ForeignAccountCode) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	return x.putJSON(accountKey(tsForeignCode, c.AccountId), c)
}

func (x *tx) ForeignAccountCode(id common.AccountId) (common.ForeignAccountCode, error) {
	var c common.ForeignAccountCode
	ok, err := x.getJSON(accountKey(tsForeignCode, id), &c)
	if err != nil {
		return common.ForeignAccountCode{}, err
	}
	if !ok {
		return common.ForeignAccountCode{}, fmt.Errorf("%w: foreign account code %s", common.ErrNotFound, id)
	}
	return c, nil
}

// --- Export/import ---

func (x *tx) Export() (store.Dump, error) {
	d := store.Dump{}
	if accts, err := x.ListAccountHeaders(); err != nil {
		return store.Dump{}, err
	} else {
		d.Accounts = accts
	}
	if err := x.iteratePrefix(tsAuthSecret, func(_, v []byte) error {
		var s common.AuthSecret
		if err := json.Unmarshal(v, &s); err != nil {
			return err
		}
		d.AuthSecrets = append(d.AuthSecrets, s)
		return nil
	}); err != nil {
		return store.Dump{}, err
	}
	if notes, err := x.InputNotes(store.InputNoteFilter{}); err != nil {
		return store.Dump{}, err
	} else {
		d.InputNotes = notes
	}
	if notes, err := x.OutputNotes(store.OutputNoteFilter{}); err != nil {
		return store.Dump{}, err
	} else {
		d.OutputNotes = notes
	}
	if err := x.iteratePrefix(tsNoteScript, func(_, v []byte) error {
		var s common.NoteScript
		if err := json.Unmarshal(v, &s); err != nil {
			return err
		}
		d.NoteScripts = append(d.NoteScripts, s)
		return nil
	}); err != nil {
		return store.Dump{}, err
	}
	if err := x.iteratePrefix(tsNoteInputs, func(_, v []byte) error {
		var i common.NoteInputs
		if err := json.Unmarshal(v, &i); err != nil {
			return err
		}
		d.NoteInputs = append(d.NoteInputs, i)
		return nil
	}); err != nil {
		return store.Dump{}, err
	}
	if tags, err := x.Tags(); err != nil {
		return store.Dump{}, err
	} else {
		d.Tags = tags
	}
	if err := x.iteratePrefix(tsHeader, func(k, v []byte) error {
		var h common.BlockHeader
		if err := json.Unmarshal(v, &h); err != nil {
			return err
		}
		tracked, err := x.HasClientNotes(h.BlockNum)
		if err != nil {
			return err
		}
		d.BlockHeaders = append(d.BlockHeaders, store.DumpBlockHeader{Header: h, HasClientNotes: tracked})
		return nil
	}); err != nil {
		return store.Dump{}, err
	}
	if err := x.iteratePrefix(tsLogNode, func(_, v []byte) error {
		var n store.ChainLogNode
		if err := json.Unmarshal(v, &n); err != nil {
			return err
		}
		d.ChainLogNodes = append(d.ChainLogNodes, n)
		return nil
	}); err != nil {
		return store.Dump{}, err
	}
	if err := x.iteratePrefix(tsPeaks, func(k, v []byte) error {
		var peaks []store.Peak
		if err := json.Unmarshal(v, &peaks); err != nil {
			return err
		}
		d.Peaks = append(d.Peaks, store.DumpPeaks{Block: common.BlockNumber(binary.BigEndian.Uint32(k[1:])), Peaks: peaks})
		return nil
	}); err != nil {
		return store.Dump{}, err
	}
	if err := x.iteratePrefix(tsLeafNodeId, func(k, v []byte) error {
		var id uint64
		if err := json.Unmarshal(v, &id); err != nil {
			return err
		}
		d.LeafNodeIds = append(d.LeafNodeIds, store.DumpLeaf{Block: common.BlockNumber(binary.BigEndian.Uint32(k[1:])), NodeId: id})
		return nil
	}); err != nil {
		return store.Dump{}, err
	}
	if txs, err := x.Transactions(store.TransactionFilter{}); err != nil {
		return store.Dump{}, err
	} else {
		d.Transactions = txs
	}
	if err := x.iteratePrefix(tsForeignCode, func(_, v []byte) error {
		var c common.ForeignAccountCode
		if err := json.Unmarshal(v, &c); err != nil {
			return err
		}
		d.ForeignAccountCodes = append(d.ForeignAccountCodes, c)
		return nil
	}); err != nil {
		return store.Dump{}, err
	}
	if block, empty, err := x.SyncCursor(); err != nil {
		return store.Dump{}, err
	} else if !empty {
		b := block
		d.SyncCursorBlock = &b
	}
	return d, nil
}

func (x *tx) Import(d store.Dump) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	if err := x.wipeAll(); err != nil {
		return err
	}
	for _, h := range d.Accounts {
		if err := x.UpsertAccountHeader(h); err != nil {
			return err
		}
	}
	for _, s := range d.AuthSecrets {
		if err := x.StoreAuthSecret(s); err != nil {
			return err
		}
	}
	for _, r := range d.InputNotes {
		if err := x.UpsertInputNote(r); err != nil {
			return err
		}
	}
	for _, r := range d.OutputNotes {
		if err := x.UpsertOutputNote(r); err != nil {
			return err
		}
	}
	for _, s := range d.NoteScripts {
		if err := x.UpsertNoteScript(s); err != nil {
			return err
		}
	}
	for _, i := range d.NoteInputs {
		if err := x.UpsertNoteInputs(i); err != nil {
			return err
		}
	}
	for _, e := range d.Tags {
		if err := x.AddTag(e.Tag, e.Source); err != nil {
			return err
		}
	}
	for _, bh := range d.BlockHeaders {
		if err := x.InsertBlockHeader(bh.Header, bh.HasClientNotes); err != nil {
			return err
		}
	}
	if err := x.InsertChainLogNodes(d.ChainLogNodes); err != nil {
		return err
	}
	for _, p := range d.Peaks {
		if err := x.SetPeaks(p.Block, p.Peaks); err != nil {
			return err
		}
	}
	for _, l := range d.LeafNodeIds {
		if err := x.SetLeafNodeId(l.Block, l.NodeId); err != nil {
			return err
		}
	}
	for _, r := range d.Transactions {
		if err := x.InsertTransaction(r); err != nil {
			return err
		}
	}
	for _, c := range d.ForeignAccountCodes {
		if err := x.UpsertForeignAccountCode(c); err != nil {
			return err
		}
	}
	if d.SyncCursorBlock != nil {
		if err := x.SetSyncCursor(*d.SyncCursorBlock); err != nil {
			return err
		}
	}
	return nil
}

// wipeAll deletes every key in every tablespace, used by Import to give
// it the same destructive, full-replace semantics as memstore's Import.
func (x *tx) wipeAll() error {
	spaces := []tableSpace{
		tsAccount, tsAuthSecret, tsInputNote, tsNullifierIdx, tsOutputNote,
		tsNoteScript, tsNoteInputs, tsTag, tsHeader, tsHasClientNotes,
		tsLogNode, tsParentByChild, tsLeafNodeId, tsPeaks, tsTransaction,
		tsForeignCode, tsMeta,
	}
	for _, ts := range spaces {
		var keys [][]byte
		if err := x.iteratePrefix(ts, func(k, _ []byte) error {
			kc := make([]byte, len(k))
			copy(kc, k)
			keys = append(keys, kc)
			return nil
		}); err != nil {
			return err
		}
		for _, k := range keys {
			if err := x.del(k); err != nil {
				return err
			}
		}
	}
	return nil
}

var _ store.Tx = (*tx)(nil)
