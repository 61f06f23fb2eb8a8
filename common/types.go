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

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// HashSize is the byte-size of the Hash type.
const HashSize = 32

// Hash is a collision-resistant commitment over a structured value.
type Hash [HashSize]byte

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash) IsZero() bool {
	return h == Hash{}
}

func (h Hash) Compare(o Hash) int {
	return bytes.Compare(h[:], o[:])
}

func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *Hash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	if len(b) != HashSize {
		return fmt.Errorf("hash: unexpected length %d", len(b))
	}
	copy(h[:], b)
	return nil
}

// SerialNumberSize is the byte-size of a note's serial number.
const SerialNumberSize = 32

// SerialNumber is the randomness a note's creator mixes into its
// commitment; two notes sharing a serial number are a protocol violation
// at execution time (see scenario 3 in spec.md §8).
type SerialNumber [SerialNumberSize]byte

// NullifierSize is the byte-size of a Nullifier.
const NullifierSize = 32

// Nullifier is the one-way identifier revealed when a note is consumed.
type Nullifier [NullifierSize]byte

func (n Nullifier) String() string {
	return hex.EncodeToString(n[:])
}

func (n Nullifier) IsZero() bool {
	return n == Nullifier{}
}

func (n Nullifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

func (n *Nullifier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	if len(b) != NullifierSize {
		return fmt.Errorf("nullifier: unexpected length %d", len(b))
	}
	copy(n[:], b)
	return nil
}

// NoteId identifies an InputNoteRecord / OutputNoteRecord:
// hash(recipient-digest, asset-commitment).
type NoteId Hash

func (id NoteId) String() string {
	return Hash(id).String()
}

func (id NoteId) MarshalJSON() ([]byte, error) {
	return json.Marshal(Hash(id).String())
}

func (id *NoteId) UnmarshalJSON(data []byte) error {
	return (*Hash)(id).UnmarshalJSON(data)
}

// AccountId is a 128-bit account identifier split into prefix/suffix
// halves, mirroring the wire layout the node uses to address accounts.
type AccountId struct {
	Prefix uint64
	Suffix uint64
}

func (id AccountId) String() string {
	return fmt.Sprintf("0x%016x%016x", id.Prefix, id.Suffix)
}

func (id AccountId) IsZero() bool {
	return id.Prefix == 0 && id.Suffix == 0
}

func (id AccountId) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *AccountId) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	var prefix, suffix uint64
	if _, err := fmt.Sscanf(s, "0x%016x%016x", &prefix, &suffix); err != nil {
		return fmt.Errorf("accountid: invalid encoding %q: %w", s, err)
	}
	id.Prefix, id.Suffix = prefix, suffix
	return nil
}

func (id AccountId) Compare(o AccountId) int {
	if id.Prefix != o.Prefix {
		if id.Prefix < o.Prefix {
			return -1
		}
		return 1
	}
	if id.Suffix != o.Suffix {
		if id.Suffix < o.Suffix {
			return -1
		}
		return 1
	}
	return 0
}

// StorageMode is the account's visibility to the network.
type StorageMode byte

const (
	StorageModePrivate StorageMode = iota
	StorageModePublic
)

func (m StorageMode) String() string {
	switch m {
	case StorageModePrivate:
		return "private"
	case StorageModePublic:
		return "public"
	default:
		return "invalid"
	}
}

// AccountType distinguishes ordinary accounts from faucets.
type AccountType byte

const (
	AccountTypeRegular AccountType = iota
	AccountTypeFaucet
)

func (t AccountType) String() string {
	switch t {
	case AccountTypeRegular:
		return "regular"
	case AccountTypeFaucet:
		return "faucet"
	default:
		return "invalid"
	}
}

// Tag is a 32-bit subscription key used by the node to filter note
// updates for a client.
type Tag uint32

// TagSource records why a Tag is being tracked; only user-added tags can
// be removed through the User API.
type TagSource byte

const (
	TagSourceAccount TagSource = iota
	TagSourceNote
	TagSourceUser
)

// BlockNumber is an unsigned 32-bit chain height.
type BlockNumber uint32

// Blob is a binary payload (scripts, proofs, secrets, ...). Its JSON
// encoding wraps the base64 payload in a {__type: "Blob", data: ...}
// sentinel so dumps round-trip through JSON without losing the
// distinction between a blob and a plain string (§6 Persisted dump
// format).
type Blob []byte

type blobJSON struct {
	Type string `json:"__type"`
	Data []byte `json:"data"`
}

func (b Blob) MarshalJSON() ([]byte, error) {
	return json.Marshal(blobJSON{Type: "Blob", Data: b})
}

func (b *Blob) UnmarshalJSON(data []byte) error {
	var wrapped blobJSON
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	if wrapped.Type != "Blob" {
		return fmt.Errorf("blob: unexpected __type %q", wrapped.Type)
	}
	*b = wrapped.Data
	return nil
}
