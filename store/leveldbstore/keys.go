// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package leveldbstore is a goleveldb-backed store.Store, for a long-lived
// client that needs its replica to survive a restart. It divides the
// keyspace into tablespaces the same way the teacher pack's backend/ldb.go
// does: a single-byte prefix per table, so every table can be range-scanned
// independently within the same physical database.
package leveldbstore

import (
	"encoding/binary"

	"github.com/rollupkit/client/common"
)

// tableSpace is a single-byte key prefix identifying a logical table.
type tableSpace byte

const (
	tsAccount        tableSpace = 'a'
	tsAuthSecret     tableSpace = 's'
	tsInputNote      tableSpace = 'i'
	tsNullifierIdx   tableSpace = 'n'
	tsOutputNote     tableSpace = 'o'
	tsNoteScript     tableSpace = 'c'
	tsNoteInputs     tableSpace = 'v'
	tsTag            tableSpace = 't'
	tsHeader         tableSpace = 'h'
	tsHasClientNotes tableSpace = 'k'
	tsLogNode        tableSpace = 'l'
	tsParentByChild  tableSpace = 'p'
	tsLeafNodeId     tableSpace = 'f'
	tsPeaks          tableSpace = 'e'
	tsTransaction    tableSpace = 'x'
	tsForeignCode    tableSpace = 'g'
	tsMeta           tableSpace = 'm'
)

var metaCursorKey = []byte{byte(tsMeta), 'c'}

func key(ts tableSpace, suffix []byte) []byte {
	out := make([]byte, 1+len(suffix))
	out[0] = byte(ts)
	copy(out[1:], suffix)
	return out
}

func hashKey(ts tableSpace, h common.Hash) []byte {
	return key(ts, h[:])
}

func accountKey(ts tableSpace, id common.AccountId) []byte {
	buf := make([]byte, 16)
	binary.BigEndian.PutUint64(buf[0:8], id.Prefix)
	binary.BigEndian.PutUint64(buf[8:16], id.Suffix)
	return key(ts, buf)
}

func noteIdKey(ts tableSpace, id common.NoteId) []byte {
	return hashKey(ts, common.Hash(id))
}

func nullifierKey(n common.Nullifier) []byte {
	return hashKey(tsNullifierIdx, common.Hash(n))
}

func tagKey(t common.Tag) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(t))
	return key(tsTag, buf)
}

func blockKey(ts tableSpace, b common.BlockNumber) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(b))
	return key(ts, buf)
}

func nodeIdKey(ts tableSpace, id uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, id)
	return key(ts, buf)
}

func txIdKey(id common.Hash) []byte {
	return hashKey(tsTransaction, id)
}

func prefixOnly(ts tableSpace) []byte {
	return []byte{byte(ts)}
}
