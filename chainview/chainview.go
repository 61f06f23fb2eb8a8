// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package chainview maintains the client's authenticated partial log of
// block commitments (spec.md §4.2) and constructs inclusion proofs for any
// tracked historical block against a later block's chain commitment.
package chainview

//go:generate mockgen -source chainview.go -destination chainview_mock.go -package chainview

import (
	"fmt"

	"github.com/rollupkit/client/common"
	"github.com/rollupkit/client/witness"
)

// AppendDelta is the set of authenticated nodes the node returns when a
// client appends a newly observed block to its chain log.
type AppendDelta struct {
	Header   common.BlockHeader
	NewNodes []AuthNode
}

// AuthNode is one interior node of the authenticated log, addressable by
// a stable node id so it can be persisted and looked up independently of
// any single inclusion-proof request.
type AuthNode struct {
	Id   uint64
	Hash common.Hash
}

// ChainView is the authenticated append-only log over block commitments.
// Implementations persist through a Store (see store.ChainStore) and
// compute inclusion proofs purely from already-fetched authentication
// nodes: a proof request for data never appended fails with
// common.ErrMissingAuthData rather than fetching more data itself.
type ChainView interface {
	// Append persists a newly observed block header and its delta
	// nodes. Idempotent on BlockNum: appending the same height twice
	// with an identical header is a no-op.
	Append(delta AppendDelta) error

	// Header returns the stored header for a block number.
	Header(block common.BlockNumber) (common.BlockHeader, error)

	// Tip returns the highest block number appended so far, and
	// whether the view is empty.
	Tip() (block common.BlockNumber, empty bool)

	// InclusionProof returns the authentication path proving that the
	// target block's sub-commitment sits at position `target` under
	// the chain commitment recorded at block `reference`. Fails with
	// common.ErrMissingAuthData if the nodes needed to build the path
	// were never appended.
	InclusionProof(target, reference common.BlockNumber) (witness.MerklePath, error)

	// MarkTracked flags a header as client-interesting
	// (has_client_notes, §4.2 Retention policy): tracked headers and
	// the nodes needed to open them are never pruned.
	MarkTracked(block common.BlockNumber) error

	// IsTracked reports whether a header is flagged client-interesting.
	IsTracked(block common.BlockNumber) (bool, error)

	// Prune discards headers below the given block number that are not
	// tracked, together with their peak sets. Authentication nodes and
	// leaf-node mappings are kept.
	Prune(below common.BlockNumber) error
}

// ValidateContinuity checks that a newly fetched header's
// PrevBlockCommitment matches the sub-commitment of the client's current
// tip, per SyncEngine step 2. Called with the zero header (empty=true)
// when the view has no tip yet, in which case any header is accepted.
func ValidateContinuity(tip common.BlockHeader, tipEmpty bool, next common.BlockHeader) error {
	if tipEmpty {
		return nil
	}
	if next.PrevBlockCommitment != tip.SubCommitment {
		return fmt.Errorf("%w: block %d does not chain from tracked tip %d", common.ErrChainDiscontinuity, next.BlockNum, tip.BlockNum)
	}
	return nil
}
