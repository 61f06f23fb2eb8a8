// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package witness provides the authentication-path primitive shared by
// ChainView's block inclusion proofs and NoteManager's note-root
// inclusion proofs.
package witness

import "github.com/rollupkit/client/common"

//go:generate mockgen -source proof.go -destination proof_mocks.go -package witness

// MerklePath is an authentication path proving that a leaf sits at a
// given position under a root commitment. Nodes are the sibling hashes
// from leaf to root, in bottom-up order.
type MerklePath struct {
	Index uint64
	Nodes []common.Hash
}

// Verifier extracts or checks information out of a self-contained
// authentication path, without requiring access to the full authenticated
// structure it was drawn from.
type Verifier interface {
	// Verify checks that leaf, combined with the path's sibling nodes,
	// reduces to root. A false result means the path is stale or
	// corrupted and must be discarded, never trusted.
	Verify(leaf common.Hash, root common.Hash) bool

	// IsEmpty reports whether the path carries no authentication data
	// (e.g. a proof that was never populated).
	IsEmpty() bool
}

func (p MerklePath) IsEmpty() bool {
	return len(p.Nodes) == 0
}

// Verify folds the path bottom-up using the standard binary-tree
// combine(left, right) = Keccak256(left, right) rule, taking the bit at
// each level of Index to decide node ordering.
func (p MerklePath) Verify(leaf common.Hash, root common.Hash) bool {
	cur := leaf
	idx := p.Index
	for _, sibling := range p.Nodes {
		if idx&1 == 0 {
			cur = common.Keccak256(cur[:], sibling[:])
		} else {
			cur = common.Keccak256(sibling[:], cur[:])
		}
		idx >>= 1
	}
	return cur == root
}

var _ Verifier = MerklePath{}
