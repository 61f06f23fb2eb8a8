// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package store

import (
	"encoding/json"
	"fmt"

	"github.com/DataDog/zstd"
	"github.com/rollupkit/client/common"
)

// Dump is the portable, table-keyed representation of an entire Store
// (§6 Persisted dump format / §8 Export/import round-trip). Binary
// fields on the contained records are common.Blob, which marshals to
// the {__type: "Blob", data: <base64>} sentinel.
type Dump struct {
	Accounts            []common.AccountHeader     `json:"accounts"`
	AuthSecrets         []common.AuthSecret        `json:"auth_secrets"`
	InputNotes          []common.InputNoteRecord   `json:"input_notes"`
	OutputNotes         []common.OutputNoteRecord  `json:"output_notes"`
	NoteScripts         []common.NoteScript        `json:"note_scripts"`
	NoteInputs          []common.NoteInputs        `json:"note_inputs"`
	Tags                []TagEntry                 `json:"tags"`
	BlockHeaders        []DumpBlockHeader          `json:"block_headers"`
	ChainLogNodes       []ChainLogNode             `json:"chain_log_nodes"`
	Peaks               []DumpPeaks                `json:"peaks"`
	LeafNodeIds         []DumpLeaf                 `json:"leaf_node_ids"`
	Transactions        []common.TransactionRecord `json:"transactions"`
	SyncCursorBlock     *common.BlockNumber        `json:"sync_cursor_block"`
	ForeignAccountCodes []common.ForeignAccountCode `json:"foreign_account_codes"`
}

// DumpBlockHeader pairs a header with its has_client_notes flag, since
// the flag is stored alongside but not part of the header itself.
type DumpBlockHeader struct {
	Header         common.BlockHeader `json:"header"`
	HasClientNotes bool               `json:"has_client_notes"`
}

// DumpPeaks records the chain-log peak set as of a given block.
type DumpPeaks struct {
	Block common.BlockNumber `json:"block"`
	Peaks []Peak             `json:"peaks"`
}

// DumpLeaf records the chain-log node id assigned to a block's leaf.
type DumpLeaf struct {
	Block  common.BlockNumber `json:"block"`
	NodeId uint64             `json:"node_id"`
}

// EncodeDump serializes a Dump to JSON and zstd-compresses the result,
// matching the pattern the teacher pack uses for archived historical
// records (backend/archive compression).
func EncodeDump(d Dump) ([]byte, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("%w: encode dump: %v", common.ErrStore, err)
	}
	compressed, err := zstd.Compress(nil, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: compress dump: %v", common.ErrStore, err)
	}
	return compressed, nil
}

// DecodeDump reverses EncodeDump.
func DecodeDump(blob []byte) (Dump, error) {
	raw, err := zstd.Decompress(nil, blob)
	if err != nil {
		return Dump{}, fmt.Errorf("%w: decompress dump: %v", common.ErrStore, err)
	}
	var d Dump
	if err := json.Unmarshal(raw, &d); err != nil {
		return Dump{}, fmt.Errorf("%w: decode dump: %v", common.ErrStore, err)
	}
	return d, nil
}
