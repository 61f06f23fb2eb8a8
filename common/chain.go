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

// BlockHeader is the immutable record for a single chain block (§3). Once
// inserted into the Store it is never mutated.
type BlockHeader struct {
	BlockNum                BlockNumber
	PrevBlockCommitment      Hash
	SubCommitment            Hash
	ChainCommitment          Hash
	AccountRoot              Hash
	NullifierRoot            Hash
	NoteRoot                 Hash
	TransactionCommitment    Hash
	TransactionKernelCommit  Hash
	ProofCommitment          Hash
	Timestamp                uint64
	Version                  uint32
}
