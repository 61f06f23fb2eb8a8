// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package sqlitestore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rollupkit/client/common"
	"github.com/rollupkit/client/store"
)

type tx struct {
	sqlTx    *sql.Tx
	readOnly bool
}

func (x *tx) checkWritable() error {
	if x.readOnly {
		return fmt.Errorf("%w: write attempted in a read-only transaction", common.ErrStore)
	}
	return nil
}

// scanJSON runs query, scans a single BLOB column into a JSON-decoded v,
// and reports whether a row was found.
func (x *tx) scanJSON(v interface{}, query string, args ...interface{}) (bool, error) {
	var raw []byte
	row := x.sqlTx.QueryRow(query, args...)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("%w: decode: %v", common.ErrStore, err)
	}
	return true, nil
}

func toJSON(v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %v", common.ErrStore, err)
	}
	return raw, nil
}

func (x *tx) exec(query string, args ...interface{}) error {
	if _, err := x.sqlTx.Exec(query, args...); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	return nil
}

// --- Accounts ---

func (x *tx) UpsertAccountHeader(h common.AccountHeader) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	data, err := toJSON(h)
	if err != nil {
		return err
	}
	return x.exec(`INSERT INTO account(id, data) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET data = excluded.data`, h.Id.String(), data)
}

func (x *tx) AccountHeader(id common.AccountId) (common.AccountHeader, error) {
	var h common.AccountHeader
	ok, err := x.scanJSON(&h, `SELECT data FROM account WHERE id = ?`, id.String())
	if err != nil {
		return common.AccountHeader{}, err
	}
	if !ok {
		return common.AccountHeader{}, fmt.Errorf("%w: account %s", common.ErrNotFound, id)
	}
	return h, nil
}

func (x *tx) ListAccountHeaders() ([]common.AccountHeader, error) {
	rows, err := x.sqlTx.Query(`SELECT data FROM account`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	defer rows.Close()
	var out []common.AccountHeader
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
		}
		var h common.AccountHeader
		if err := json.Unmarshal(raw, &h); err != nil {
			return nil, fmt.Errorf("%w: decode: %v", common.ErrStore, err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
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
	data, err := toJSON(s)
	if err != nil {
		return err
	}
	return x.exec(`INSERT INTO auth_secret(account_id, data) VALUES (?, ?) ON CONFLICT(account_id) DO UPDATE SET data = excluded.data`, s.AccountId.String(), data)
}

func (x *tx) AuthSecret(id common.AccountId) (common.AuthSecret, error) {
	var s common.AuthSecret
	ok, err := x.scanJSON(&s, `SELECT data FROM auth_secret WHERE account_id = ?`, id.String())
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
	if ok, err := x.scanJSON(&existing, `SELECT data FROM input_note WHERE id = ?`, r.Id.String()); err != nil {
		return err
	} else if ok && existing.Nullifier != nil && r.Nullifier != nil && *existing.Nullifier != *r.Nullifier {
		return fmt.Errorf("%w: note %s nullifier would change", common.ErrProtocolViolation, r.Id)
	}

	var nullifier interface{}
	var tag interface{}
	if r.Nullifier != nil {
		nullifier = r.Nullifier.String()
		var ownerId string
		row := x.sqlTx.QueryRow(`SELECT id FROM input_note WHERE nullifier = ?`, nullifier)
		if err := row.Scan(&ownerId); err == nil && ownerId != r.Id.String() {
			return fmt.Errorf("%w: nullifier %s already indexed for a different note", common.ErrProtocolViolation, r.Nullifier)
		} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %v", common.ErrStore, err)
		}
	}
	if r.Metadata != nil {
		tag = int64(r.Metadata.Tag)
	}

	data, err := toJSON(r)
	if err != nil {
		return err
	}
	return x.exec(`INSERT INTO input_note(id, nullifier, state, tag, data) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET nullifier = excluded.nullifier, state = excluded.state, tag = excluded.tag, data = excluded.data`,
		r.Id.String(), nullifier, int(r.State), tag, data)
}

func (x *tx) UpsertOutputNote(r common.OutputNoteRecord) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	data, err := toJSON(r)
	if err != nil {
		return err
	}
	return x.exec(`INSERT INTO output_note(id, state, data) VALUES (?, ?, ?) ON CONFLICT(id) DO UPDATE SET state = excluded.state, data = excluded.data`,
		r.Id.String(), int(r.State), data)
}

func (x *tx) InputNoteById(id common.NoteId) (common.InputNoteRecord, error) {
	var r common.InputNoteRecord
	ok, err := x.scanJSON(&r, `SELECT data FROM input_note WHERE id = ?`, id.String())
	if err != nil {
		return common.InputNoteRecord{}, err
	}
	if !ok {
		return common.InputNoteRecord{}, fmt.Errorf("%w: input note %s", common.ErrNotFound, id)
	}
	return r, nil
}

func (x *tx) InputNoteByNullifier(n common.Nullifier) (common.InputNoteRecord, error) {
	var r common.InputNoteRecord
	ok, err := x.scanJSON(&r, `SELECT data FROM input_note WHERE nullifier = ?`, n.String())
	if err != nil {
		return common.InputNoteRecord{}, err
	}
	if !ok {
		return common.InputNoteRecord{}, fmt.Errorf("%w: nullifier %s", common.ErrNotFound, n)
	}
	return r, nil
}

func (x *tx) InputNotes(filter store.InputNoteFilter) ([]common.InputNoteRecord, error) {
	rows, err := x.sqlTx.Query(`SELECT data FROM input_note`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	defer rows.Close()
	var out []common.InputNoteRecord
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
		}
		var r common.InputNoteRecord
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("%w: decode: %v", common.ErrStore, err)
		}
		if matchesInputFilter(r, filter) {
			out = append(out, r)
		}
	}
	return out, rows.Err()
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
	ok, err := x.scanJSON(&r, `SELECT data FROM output_note WHERE id = ?`, id.String())
	if err != nil {
		return common.OutputNoteRecord{}, err
	}
	if !ok {
		return common.OutputNoteRecord{}, fmt.Errorf("%w: output note %s", common.ErrNotFound, id)
	}
	return r, nil
}

func (x *tx) OutputNotes(filter store.OutputNoteFilter) ([]common.OutputNoteRecord, error) {
	rows, err := x.sqlTx.Query(`SELECT data FROM output_note`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	defer rows.Close()
	var out []common.OutputNoteRecord
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
		}
		var r common.OutputNoteRecord
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("%w: decode: %v", common.ErrStore, err)
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
				continue
			}
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (x *tx) UpsertNoteScript(s common.NoteScript) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	data, err := toJSON(s)
	if err != nil {
		return err
	}
	return x.exec(`INSERT INTO note_script(root, data) VALUES (?, ?) ON CONFLICT(root) DO UPDATE SET data = excluded.data`, s.Root.String(), data)
}

func (x *tx) NoteScript(root common.Hash) (common.NoteScript, error) {
	var s common.NoteScript
	ok, err := x.scanJSON(&s, `SELECT data FROM note_script WHERE root = ?`, root.String())
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
	data, err := toJSON(i)
	if err != nil {
		return err
	}
	return x.exec(`INSERT INTO note_inputs(commitment, data) VALUES (?, ?) ON CONFLICT(commitment) DO UPDATE SET data = excluded.data`, i.Commitment.String(), data)
}

func (x *tx) NoteInputs(commitment common.Hash) (common.NoteInputs, error) {
	var i common.NoteInputs
	ok, err := x.scanJSON(&i, `SELECT data FROM note_inputs WHERE commitment = ?`, commitment.String())
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
	return x.exec(`INSERT INTO tag(tag, source) VALUES (?, ?) ON CONFLICT(tag) DO UPDATE SET source = excluded.source`, int64(t), int(source))
}

func (x *tx) RemoveTag(t common.Tag) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	return x.exec(`DELETE FROM tag WHERE tag = ?`, int64(t))
}

func (x *tx) Tags() ([]store.TagEntry, error) {
	rows, err := x.sqlTx.Query(`SELECT tag, source FROM tag`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	defer rows.Close()
	var out []store.TagEntry
	for rows.Next() {
		var tag int64
		var source int
		if err := rows.Scan(&tag, &source); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
		}
		out = append(out, store.TagEntry{Tag: common.Tag(tag), Source: common.TagSource(source)})
	}
	return out, rows.Err()
}

// --- Chain ---

func (x *tx) InsertBlockHeader(h common.BlockHeader, hasClientNotes bool) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	var existing common.BlockHeader
	if ok, err := x.scanJSON(&existing, `SELECT data FROM block_header WHERE block = ?`, int64(h.BlockNum)); err != nil {
		return err
	} else if ok {
		if hasClientNotes {
			return x.exec(`UPDATE block_header SET has_client_notes = 1 WHERE block = ?`, int64(h.BlockNum))
		}
		return nil
	}
	data, err := toJSON(h)
	if err != nil {
		return err
	}
	flag := 0
	if hasClientNotes {
		flag = 1
	}
	return x.exec(`INSERT INTO block_header(block, has_client_notes, data) VALUES (?, ?, ?)`, int64(h.BlockNum), flag, data)
}

func (x *tx) BlockHeader(block common.BlockNumber) (common.BlockHeader, error) {
	var h common.BlockHeader
	ok, err := x.scanJSON(&h, `SELECT data FROM block_header WHERE block = ?`, int64(block))
	if err != nil {
		return common.BlockHeader{}, err
	}
	if !ok {
		return common.BlockHeader{}, fmt.Errorf("%w: block header %d", common.ErrNotFound, block)
	}
	return h, nil
}

func (x *tx) TipBlockNumber() (common.BlockNumber, bool, error) {
	var tip sql.NullInt64
	row := x.sqlTx.QueryRow(`SELECT MAX(block) FROM block_header`)
	if err := row.Scan(&tip); err != nil {
		return 0, true, fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	if !tip.Valid {
		return 0, true, nil
	}
	return common.BlockNumber(tip.Int64), false, nil
}

func (x *tx) HasClientNotes(block common.BlockNumber) (bool, error) {
	var flag int
	row := x.sqlTx.QueryRow(`SELECT has_client_notes FROM block_header WHERE block = ?`, int64(block))
	if err := row.Scan(&flag); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	return flag != 0, nil
}

func (x *tx) InsertChainLogNodes(nodes []store.ChainLogNode) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	for _, n := range nodes {
		data, err := toJSON(n)
		if err != nil {
			return err
		}
		if err := x.exec(`INSERT INTO chain_log_node(id, data) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET data = excluded.data`, int64(n.Id), data); err != nil {
			return err
		}
		if n.Left != nil {
			if err := x.exec(`INSERT INTO parent_by_child(child_id, parent_id, sibling_id, is_left) VALUES (?, ?, ?, 1)
				ON CONFLICT(child_id) DO UPDATE SET parent_id = excluded.parent_id, sibling_id = excluded.sibling_id, is_left = excluded.is_left`,
				int64(*n.Left), int64(n.Id), int64(*n.Right)); err != nil {
				return err
			}
		}
		if n.Right != nil {
			if err := x.exec(`INSERT INTO parent_by_child(child_id, parent_id, sibling_id, is_left) VALUES (?, ?, ?, 0)
				ON CONFLICT(child_id) DO UPDATE SET parent_id = excluded.parent_id, sibling_id = excluded.sibling_id, is_left = excluded.is_left`,
				int64(*n.Right), int64(n.Id), int64(*n.Left)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (x *tx) ChainLogNodesById(ids []uint64) ([]store.ChainLogNode, error) {
	out := make([]store.ChainLogNode, 0, len(ids))
	for _, id := range ids {
		var n store.ChainLogNode
		ok, err := x.scanJSON(&n, `SELECT data FROM chain_log_node WHERE id = ?`, int64(id))
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
	var parentId, siblingId int64
	var isLeft int
	row := x.sqlTx.QueryRow(`SELECT parent_id, sibling_id, is_left FROM parent_by_child WHERE child_id = ?`, int64(childId))
	if err := row.Scan(&parentId, &siblingId, &isLeft); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.ChainLogNode{}, 0, false, fmt.Errorf("%w: node %d has no parent", common.ErrNotFound, childId)
		}
		return store.ChainLogNode{}, 0, false, fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	var parent store.ChainLogNode
	ok, err := x.scanJSON(&parent, `SELECT data FROM chain_log_node WHERE id = ?`, parentId)
	if err != nil {
		return store.ChainLogNode{}, 0, false, err
	}
	if !ok {
		return store.ChainLogNode{}, 0, false, fmt.Errorf("%w: chain log node %d", common.ErrMissingAuthData, parentId)
	}
	return parent, uint64(siblingId), isLeft != 0, nil
}

func (x *tx) Peaks(block common.BlockNumber) ([]store.Peak, error) {
	var peaks []store.Peak
	ok, err := x.scanJSON(&peaks, `SELECT data FROM peaks WHERE block = ?`, int64(block))
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
	data, err := toJSON(peaks)
	if err != nil {
		return err
	}
	return x.exec(`INSERT INTO peaks(block, data) VALUES (?, ?) ON CONFLICT(block) DO UPDATE SET data = excluded.data`, int64(block), data)
}

func (x *tx) SetLeafNodeId(block common.BlockNumber, id uint64) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	return x.exec(`INSERT INTO leaf_node(block, node_id) VALUES (?, ?) ON CONFLICT(block) DO UPDATE SET node_id = excluded.node_id`, int64(block), int64(id))
}

func (x *tx) LeafNodeId(block common.BlockNumber) (uint64, error) {
	var id int64
	row := x.sqlTx.QueryRow(`SELECT node_id FROM leaf_node WHERE block = ?`, int64(block))
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%w: leaf node for block %d", common.ErrNotFound, block)
		}
		return 0, fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	return uint64(id), nil
}

func (x *tx) PruneHeadersBelow(block common.BlockNumber) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	if err := x.exec(`DELETE FROM peaks WHERE block IN (SELECT block FROM block_header WHERE block < ? AND has_client_notes = 0)`, int64(block)); err != nil {
		return err
	}
	return x.exec(`DELETE FROM block_header WHERE block < ? AND has_client_notes = 0`, int64(block))
}

// --- Transactions ---

func (x *tx) InsertTransaction(r common.TransactionRecord) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	return x.putTransaction(r)
}

func (x *tx) putTransaction(r common.TransactionRecord) error {
	data, err := toJSON(r)
	if err != nil {
		return err
	}
	var commitHeight interface{}
	if r.CommitHeight != nil {
		commitHeight = int64(*r.CommitHeight)
	}
	discarded := 0
	if r.Discarded {
		discarded = 1
	}
	return x.exec(`INSERT INTO tx_record(id, account_id, commit_height, discarded, data) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET account_id = excluded.account_id, commit_height = excluded.commit_height, discarded = excluded.discarded, data = excluded.data`,
		r.Id.String(), r.AccountId.String(), commitHeight, discarded, data)
}

func (x *tx) UpdateTransactionCommitHeight(id common.Hash, height common.BlockNumber) error {
	r, err := x.Transaction(id)
	if err != nil {
		return err
	}
	r.CommitHeight = &height
	return x.putTransaction(r)
}

func (x *tx) MarkTransactionDiscarded(id common.Hash) error {
	r, err := x.Transaction(id)
	if err != nil {
		return err
	}
	r.Discarded = true
	return x.putTransaction(r)
}

func (x *tx) Transaction(id common.Hash) (common.TransactionRecord, error) {
	var r common.TransactionRecord
	ok, err := x.scanJSON(&r, `SELECT data FROM tx_record WHERE id = ?`, id.String())
	if err != nil {
		return common.TransactionRecord{}, err
	}
	if !ok {
		return common.TransactionRecord{}, fmt.Errorf("%w: transaction %s", common.ErrNotFound, id)
	}
	return r, nil
}

func (x *tx) Transactions(filter store.TransactionFilter) ([]common.TransactionRecord, error) {
	rows, err := x.sqlTx.Query(`SELECT data FROM tx_record`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	defer rows.Close()
	var out []common.TransactionRecord
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
		}
		var r common.TransactionRecord
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("%w: decode: %v", common.ErrStore, err)
		}
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
	return out, rows.Err()
}

// --- Sync cursor ---

func (x *tx) SyncCursor() (common.BlockNumber, bool, error) {
	var raw []byte
	row := x.sqlTx.QueryRow(`SELECT value FROM meta WHERE key = 'sync_cursor'`)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, true, nil
		}
		return 0, true, fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	var b common.BlockNumber
	if err := json.Unmarshal(raw, &b); err != nil {
		return 0, true, fmt.Errorf("%w: decode: %v", common.ErrStore, err)
	}
	return b, false, nil
}

func (x *tx) SetSyncCursor(block common.BlockNumber) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	data, err := toJSON(block)
	if err != nil {
		return err
	}
	return x.exec(`INSERT INTO meta(key, value) VALUES ('sync_cursor', ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`, data)
}

// --- Foreign accounts ---

func (x *tx) UpsertForeignAccountCode(c common.ForeignAccountCode) error {
	if err := x.checkWritable(); err != nil {
		return err
	}
	data, err := toJSON(c)
	if err != nil {
		return err
	}
	return x.exec(`INSERT INTO foreign_code(account_id, data) VALUES (?, ?) ON CONFLICT(account_id) DO UPDATE SET data = excluded.data`, c.AccountId.String(), data)
}

func (x *tx) ForeignAccountCode(id common.AccountId) (common.ForeignAccountCode, error) {
	var c common.ForeignAccountCode
	ok, err := x.scanJSON(&c, `SELECT data FROM foreign_code WHERE account_id = ?`, id.String())
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
	var err error
	if d.Accounts, err = x.ListAccountHeaders(); err != nil {
		return store.Dump{}, err
	}
	if d.AuthSecrets, err = x.listAuthSecrets(); err != nil {
		return store.Dump{}, err
	}
	if d.InputNotes, err = x.InputNotes(store.InputNoteFilter{}); err != nil {
		return store.Dump{}, err
	}
	if d.OutputNotes, err = x.OutputNotes(store.OutputNoteFilter{}); err != nil {
		return store.Dump{}, err
	}
	if d.NoteScripts, err = x.listNoteScripts(); err != nil {
		return store.Dump{}, err
	}
	if d.NoteInputs, err = x.listNoteInputs(); err != nil {
		return store.Dump{}, err
	}
	if d.Tags, err = x.Tags(); err != nil {
		return store.Dump{}, err
	}
	if d.BlockHeaders, err = x.listBlockHeaders(); err != nil {
		return store.Dump{}, err
	}
	if d.ChainLogNodes, err = x.listChainLogNodes(); err != nil {
		return store.Dump{}, err
	}
	if d.Peaks, err = x.listPeaks(); err != nil {
		return store.Dump{}, err
	}
	if d.LeafNodeIds, err = x.listLeafNodeIds(); err != nil {
		return store.Dump{}, err
	}
	if d.Transactions, err = x.Transactions(store.TransactionFilter{}); err != nil {
		return store.Dump{}, err
	}
	if d.ForeignAccountCodes, err = x.listForeignCode(); err != nil {
		return store.Dump{}, err
	}
	block, empty, err := x.SyncCursor()
	if err != nil {
		return store.Dump{}, err
	}
	if !empty {
		b := block
		d.SyncCursorBlock = &b
	}
	return d, nil
}

func (x *tx) listAuthSecrets() ([]common.AuthSecret, error) {
	rows, err := x.sqlTx.Query(`SELECT data FROM auth_secret`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	defer rows.Close()
	var out []common.AuthSecret
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
		}
		var s common.AuthSecret
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("%w: decode: %v", common.ErrStore, err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (x *tx) listNoteScripts() ([]common.NoteScript, error) {
	rows, err := x.sqlTx.Query(`SELECT data FROM note_script`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	defer rows.Close()
	var out []common.NoteScript
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
		}
		var s common.NoteScript
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("%w: decode: %v", common.ErrStore, err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (x *tx) listNoteInputs() ([]common.NoteInputs, error) {
	rows, err := x.sqlTx.Query(`SELECT data FROM note_inputs`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	defer rows.Close()
	var out []common.NoteInputs
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
		}
		var i common.NoteInputs
		if err := json.Unmarshal(raw, &i); err != nil {
			return nil, fmt.Errorf("%w: decode: %v", common.ErrStore, err)
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (x *tx) listBlockHeaders() ([]store.DumpBlockHeader, error) {
	rows, err := x.sqlTx.Query(`SELECT has_client_notes, data FROM block_header`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	defer rows.Close()
	var out []store.DumpBlockHeader
	for rows.Next() {
		var flag int
		var raw []byte
		if err := rows.Scan(&flag, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
		}
		var h common.BlockHeader
		if err := json.Unmarshal(raw, &h); err != nil {
			return nil, fmt.Errorf("%w: decode: %v", common.ErrStore, err)
		}
		out = append(out, store.DumpBlockHeader{Header: h, HasClientNotes: flag != 0})
	}
	return out, rows.Err()
}

func (x *tx) listChainLogNodes() ([]store.ChainLogNode, error) {
	rows, err := x.sqlTx.Query(`SELECT data FROM chain_log_node`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	defer rows.Close()
	var out []store.ChainLogNode
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
		}
		var n store.ChainLogNode
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("%w: decode: %v", common.ErrStore, err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (x *tx) listPeaks() ([]store.DumpPeaks, error) {
	rows, err := x.sqlTx.Query(`SELECT block, data FROM peaks`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	defer rows.Close()
	var out []store.DumpPeaks
	for rows.Next() {
		var block int64
		var raw []byte
		if err := rows.Scan(&block, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
		}
		var peaks []store.Peak
		if err := json.Unmarshal(raw, &peaks); err != nil {
			return nil, fmt.Errorf("%w: decode: %v", common.ErrStore, err)
		}
		out = append(out, store.DumpPeaks{Block: common.BlockNumber(block), Peaks: peaks})
	}
	return out, rows.Err()
}

func (x *tx) listLeafNodeIds() ([]store.DumpLeaf, error) {
	rows, err := x.sqlTx.Query(`SELECT block, node_id FROM leaf_node`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	defer rows.Close()
	var out []store.DumpLeaf
	for rows.Next() {
		var block, id int64
		if err := rows.Scan(&block, &id); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
		}
		out = append(out, store.DumpLeaf{Block: common.BlockNumber(block), NodeId: uint64(id)})
	}
	return out, rows.Err()
}

func (x *tx) listForeignCode() ([]common.ForeignAccountCode, error) {
	rows, err := x.sqlTx.Query(`SELECT data FROM foreign_code`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	defer rows.Close()
	var out []common.ForeignAccountCode
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
		}
		var c common.ForeignAccountCode
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("%w: decode: %v", common.ErrStore, err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
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

func (x *tx) wipeAll() error {
	tables := []string{
		"account", "auth_secret", "input_note", "output_note", "note_script",
		"note_inputs", "tag", "block_header", "chain_log_node", "parent_by_child",
		"leaf_node", "peaks", "tx_record", "foreign_code", "meta",
	}
	for _, t := range tables {
		if err := x.exec("DELETE FROM " + t); err != nil {
			return err
		}
	}
	return nil
}

var _ store.Tx = (*tx)(nil)
