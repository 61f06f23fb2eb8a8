// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package chainview

import (
	"fmt"

	"github.com/rollupkit/client/common"
	"github.com/rollupkit/client/store"
	"github.com/rollupkit/client/witness"
)

// view is the store-backed ChainView. It never keeps authentication state
// in memory between calls — every operation is a single Store transaction,
// so the view is always exactly what the last committed Append left behind.
type view struct {
	db store.Store
}

// New wraps a Store as a ChainView.
func New(db store.Store) ChainView {
	return &view{db: db}
}

func (v *view) Append(delta AppendDelta) error {
	if len(delta.NewNodes) == 0 {
		return fmt.Errorf("%w: append with no nodes", common.ErrProtocolViolation)
	}
	return v.db.Update(func(tx store.Tx) error {
		if existing, err := tx.BlockHeader(delta.Header.BlockNum); err == nil {
			if existing == delta.Header {
				return nil
			}
			return fmt.Errorf("%w: conflicting header at block %d", common.ErrProtocolViolation, delta.Header.BlockNum)
		}

		leaf := delta.NewNodes[0]
		if leaf.Hash != delta.Header.SubCommitment {
			return fmt.Errorf("%w: leaf hash does not match block %d sub-commitment", common.ErrProtocolViolation, delta.Header.BlockNum)
		}

		var prevPeaks []store.Peak
		tip, empty, err := tx.TipBlockNumber()
		if err != nil {
			return err
		}
		if !empty {
			prevPeaks, err = tx.Peaks(tip)
			if err != nil {
				return err
			}
		}

		nodes := []store.ChainLogNode{{Id: leaf.Id, Hash: leaf.Hash}}
		cur := store.Peak{Id: leaf.Id, Height: 0}
		curHash := leaf.Hash
		peaks := prevPeaks

		for _, merge := range delta.NewNodes[1:] {
			if len(peaks) == 0 || peaks[len(peaks)-1].Height != cur.Height {
				return fmt.Errorf("%w: unexpected merge node %d in append delta", common.ErrProtocolViolation, merge.Id)
			}
			old := peaks[len(peaks)-1]
			peaks = peaks[:len(peaks)-1]
			oldNodes, err := tx.ChainLogNodesById([]uint64{old.Id})
			if err != nil {
				return err
			}
			oldHash := oldNodes[0].Hash
			combined := common.Keccak256(oldHash[:], curHash[:])
			if combined != merge.Hash {
				return fmt.Errorf("%w: merge node %d hash mismatch", common.ErrProtocolViolation, merge.Id)
			}
			left, right := old.Id, cur.Id
			nodes = append(nodes, store.ChainLogNode{Id: merge.Id, Hash: merge.Hash, Left: &left, Right: &right})
			cur = store.Peak{Id: merge.Id, Height: old.Height + 1}
			curHash = merge.Hash
		}
		peaks = append(peaks, cur)

		if err := tx.InsertChainLogNodes(nodes); err != nil {
			return err
		}
		if err := tx.SetLeafNodeId(delta.Header.BlockNum, leaf.Id); err != nil {
			return err
		}
		if err := tx.SetPeaks(delta.Header.BlockNum, peaks); err != nil {
			return err
		}
		return tx.InsertBlockHeader(delta.Header, false)
	})
}

func (v *view) Header(block common.BlockNumber) (common.BlockHeader, error) {
	var h common.BlockHeader
	err := v.db.View(func(tx store.Tx) error {
		var err error
		h, err = tx.BlockHeader(block)
		return err
	})
	return h, err
}

func (v *view) Tip() (common.BlockNumber, bool) {
	var tip common.BlockNumber
	var empty bool
	_ = v.db.View(func(tx store.Tx) error {
		var err error
		tip, empty, err = tx.TipBlockNumber()
		return err
	})
	return tip, empty
}

func (v *view) MarkTracked(block common.BlockNumber) error {
	return v.db.Update(func(tx store.Tx) error {
		h, err := tx.BlockHeader(block)
		if err != nil {
			return err
		}
		return tx.InsertBlockHeader(h, true)
	})
}

func (v *view) IsTracked(block common.BlockNumber) (bool, error) {
	var tracked bool
	err := v.db.View(func(tx store.Tx) error {
		var err error
		tracked, err = tx.HasClientNotes(block)
		return err
	})
	return tracked, err
}

func (v *view) Prune(below common.BlockNumber) error {
	return v.db.Update(func(tx store.Tx) error {
		return tx.PruneHeadersBelow(below)
	})
}

// InclusionProof walks the leaf's ancestor chain up to whichever of
// reference's peaks subsumes it, then extends the path with the
// remaining peaks of reference's peak set so the final fold reduces to
// reference's full chain commitment (see bagPeaks for the fold order).
func (v *view) InclusionProof(target, reference common.BlockNumber) (witness.MerklePath, error) {
	var path witness.MerklePath
	err := v.db.View(func(tx store.Tx) error {
		leafId, err := tx.LeafNodeId(target)
		if err != nil {
			return err
		}
		refPeaks, err := tx.Peaks(reference)
		if err != nil {
			return err
		}

		peakIndex := -1
		var bits []uint64
		var sibHashes []common.Hash
		cur := leafId
		for {
			if idx := indexOfPeak(refPeaks, cur); idx >= 0 {
				peakIndex = idx
				break
			}
			parent, sibling, isLeftChild, err := tx.ParentOf(cur)
			if err != nil {
				return fmt.Errorf("%w: block %d not authenticated as of reference %d: %v", common.ErrMissingAuthData, target, reference, err)
			}
			sibNodes, err := tx.ChainLogNodesById([]uint64{sibling})
			if err != nil {
				return err
			}
			sibHashes = append(sibHashes, sibNodes[0].Hash)
			if isLeftChild {
				bits = append(bits, 0)
			} else {
				bits = append(bits, 1)
			}
			cur = parent.Id
		}

		if peakIndex < len(refPeaks)-1 {
			rightHashes := make([]common.Hash, 0, len(refPeaks)-peakIndex-1)
			for _, p := range refPeaks[peakIndex+1:] {
				n, err := tx.ChainLogNodesById([]uint64{p.Id})
				if err != nil {
					return err
				}
				rightHashes = append(rightHashes, n[0].Hash)
			}
			sibHashes = append(sibHashes, bagPeaks(rightHashes))
			bits = append(bits, 0)
		}
		for i := peakIndex - 1; i >= 0; i-- {
			n, err := tx.ChainLogNodesById([]uint64{refPeaks[i].Id})
			if err != nil {
				return err
			}
			sibHashes = append(sibHashes, n[0].Hash)
			bits = append(bits, 1)
		}

		var index uint64
		for i := len(bits) - 1; i >= 0; i-- {
			index = (index << 1) | bits[i]
		}
		path = witness.MerklePath{Index: index, Nodes: sibHashes}
		return nil
	})
	return path, err
}

func indexOfPeak(peaks []store.Peak, id uint64) int {
	for i, p := range peaks {
		if p.Id == id {
			return i
		}
	}
	return -1
}

var _ ChainView = (*view)(nil)
