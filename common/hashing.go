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
	"encoding/binary"
	"sync"

	"golang.org/x/crypto/sha3"
)

var hasherPool = sync.Pool{New: func() any { return sha3.NewLegacyKeccak256() }}

// Keccak256 hashes an arbitrary byte slice into a Hash.
func Keccak256(data ...[]byte) Hash {
	h := hasherPool.Get().(hasher)
	h.Reset()
	for _, d := range data {
		h.Write(d)
	}
	var res Hash
	h.Read(res[:])
	hasherPool.Put(h)
	return res
}

type hasher interface {
	Reset()
	Write(in []byte) (int, error)
	Read(out []byte) (int, error)
}

// CommitAccount computes the commitment over an account's id, nonce,
// vault root, storage root and code root (§3 Account).
func CommitAccount(id AccountId, nonce uint64, vaultRoot, storageRoot, codeRoot Hash) Hash {
	var idBytes [16]byte
	binary.BigEndian.PutUint64(idBytes[0:8], id.Prefix)
	binary.BigEndian.PutUint64(idBytes[8:16], id.Suffix)
	var nonceBytes [8]byte
	binary.BigEndian.PutUint64(nonceBytes[:], nonce)
	return Keccak256(idBytes[:], nonceBytes[:], vaultRoot[:], storageRoot[:], codeRoot[:])
}

// CommitNote computes a NoteId from a recipient digest and an asset
// commitment (§3 InputNoteRecord).
func CommitNote(recipientDigest, assetCommitment Hash) NoteId {
	return NoteId(Keccak256(recipientDigest[:], assetCommitment[:]))
}

// CommitNullifier derives the nullifier for a note given its serial
// number and script commitment.
func CommitNullifier(serial SerialNumber, scriptCommitment Hash) Nullifier {
	return Nullifier(Keccak256(serial[:], scriptCommitment[:]))
}
