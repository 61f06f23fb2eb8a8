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

// AccountHeader is the locally-tracked record for an Account (§3).
type AccountHeader struct {
	Id              AccountId
	StorageMode     StorageMode
	Type            AccountType
	Updatable       bool
	Nonce           uint64
	VaultRoot       Hash
	StorageRoot     Hash
	CodeRoot        Hash
	Seed            *Hash
	Commitment      Hash

	// ProvisionalCommitment is the optimistic commitment recorded after
	// a locally-built, not-yet-committed transaction (§4.4 Updating).
	// Nil when no local build is pending.
	ProvisionalCommitment *Hash

	// Locked is true once a remote-witnessed commitment conflicted with
	// both the confirmed and provisional local commitments (§4.4
	// Commit/rollback). No local builds are permitted while locked.
	Locked bool
}

// IsNew reports whether the account has never observed an on-chain nonce
// increment (nonce = 0, §3 Account).
func (a AccountHeader) IsNew() bool {
	return a.Nonce == 0
}

// AuthSecret is the signing secret tied to an account's auth procedure
// public key (§3 AuthSecret).
type AuthSecret struct {
	AccountId AccountId
	PublicKey Blob
	Secret    Blob
}

// ForeignAccountCode caches the code of a public account not owned
// locally, so foreign note/account scripts can be executed without a
// round trip to the node for every execution (§4.4 Foreign accounts).
type ForeignAccountCode struct {
	AccountId AccountId
	CodeRoot  Hash
	Code      Blob
}
