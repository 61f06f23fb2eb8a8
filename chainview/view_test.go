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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rollupkit/client/common"
	"github.com/rollupkit/client/store"
	"github.com/rollupkit/client/store/memstore"
)

// chainSim reproduces, in memory, the bookkeeping a node performs server
// side so tests can feed view.Append a realistic AppendDelta without a
// running rpc fixture.
type chainSim struct {
	nextId uint64
	peaks  []store.Peak
	hashes map[uint64]common.Hash
}

func newChainSim() *chainSim {
	return &chainSim{hashes: map[uint64]common.Hash{}}
}

func (s *chainSim) append(leafHash common.Hash) AppendDelta {
	id := s.nextId
	s.nextId++
	s.hashes[id] = leafHash
	nodes := []AuthNode{{Id: id, Hash: leafHash}}

	cur := store.Peak{Id: id, Height: 0}
	curHash := leafHash
	peaks := s.peaks
	for len(peaks) > 0 && peaks[len(peaks)-1].Height == cur.Height {
		old := peaks[len(peaks)-1]
		peaks = peaks[:len(peaks)-1]
		combined := common.Keccak256(s.hashes[old.Id][:], curHash[:])
		mergeId := s.nextId
		s.nextId++
		s.hashes[mergeId] = combined
		nodes = append(nodes, AuthNode{Id: mergeId, Hash: combined})
		cur = store.Peak{Id: mergeId, Height: old.Height + 1}
		curHash = combined
		id = mergeId
	}
	peaks = append(peaks, cur)
	s.peaks = peaks
	return AppendDelta{NewNodes: nodes}
}

func header(n common.BlockNumber, prev, sub common.Hash) common.BlockHeader {
	return common.BlockHeader{BlockNum: n, PrevBlockCommitment: prev, SubCommitment: sub}
}

func TestView_AppendAndInclusionProof(t *testing.T) {
	db := memstore.New()
	v := New(db)
	sim := newChainSim()

	var prevSub common.Hash
	var prevPeaksSnapshot [][]store.Peak
	for i := 0; i < 5; i++ {
		leaf := common.Keccak256([]byte{byte(i)})
		delta := sim.append(leaf)
		delta.Header = header(common.BlockNumber(i), prevSub, leaf)
		require.NoError(t, v.Append(delta))
		prevSub = leaf
		peaksCopy := make([]store.Peak, len(sim.peaks))
		copy(peaksCopy, sim.peaks)
		prevPeaksSnapshot = append(prevPeaksSnapshot, peaksCopy)
	}

	tip, empty := v.Tip()
	require.False(t, empty)
	require.Equal(t, common.BlockNumber(4), tip)

	for target := common.BlockNumber(0); target <= 4; target++ {
		path, err := v.InclusionProof(target, 4)
		require.NoError(t, err, "target %d", target)
		leaf := common.Keccak256([]byte{byte(target)})
		root := bagPeaks(peakHashes(sim, prevPeaksSnapshot[4]))
		require.True(t, path.Verify(leaf, root), "target %d failed to verify", target)
	}
}

func peakHashes(sim *chainSim, peaks []store.Peak) []common.Hash {
	out := make([]common.Hash, len(peaks))
	for i, p := range peaks {
		out[i] = sim.hashes[p.Id]
	}
	return out
}

func TestView_AppendIdempotentOnIdenticalHeader(t *testing.T) {
	db := memstore.New()
	v := New(db)
	sim := newChainSim()
	leaf := common.Keccak256([]byte("genesis"))
	delta := sim.append(leaf)
	delta.Header = header(0, common.Hash{}, leaf)
	require.NoError(t, v.Append(delta))
	require.NoError(t, v.Append(delta))
}

func TestView_AppendRejectsConflictingHeader(t *testing.T) {
	db := memstore.New()
	v := New(db)
	sim := newChainSim()
	leaf := common.Keccak256([]byte("genesis"))
	delta := sim.append(leaf)
	delta.Header = header(0, common.Hash{}, leaf)
	require.NoError(t, v.Append(delta))

	other := common.Keccak256([]byte("other-genesis"))
	conflicting := AppendDelta{
		Header:   header(0, common.Hash{}, other),
		NewNodes: []AuthNode{{Id: delta.NewNodes[0].Id, Hash: other}},
	}
	err := v.Append(conflicting)
	require.ErrorIs(t, err, common.ErrProtocolViolation)
}

func TestValidateContinuity(t *testing.T) {
	tip := header(3, common.Hash{}, common.Keccak256([]byte("tip")))
	ok := header(4, tip.SubCommitment, common.Keccak256([]byte("next")))
	require.NoError(t, ValidateContinuity(tip, false, ok))

	bad := header(4, common.Keccak256([]byte("wrong-parent")), common.Keccak256([]byte("next")))
	require.ErrorIs(t, ValidateContinuity(tip, false, bad), common.ErrChainDiscontinuity)

	require.NoError(t, ValidateContinuity(common.BlockHeader{}, true, ok))
}

func TestView_TrackedAndPrune(t *testing.T) {
	db := memstore.New()
	v := New(db)
	sim := newChainSim()
	var prevSub common.Hash
	for i := 0; i < 3; i++ {
		leaf := common.Keccak256([]byte{byte(i)})
		delta := sim.append(leaf)
		delta.Header = header(common.BlockNumber(i), prevSub, leaf)
		require.NoError(t, v.Append(delta))
		prevSub = leaf
	}

	require.NoError(t, v.MarkTracked(1))
	tracked, err := v.IsTracked(1)
	require.NoError(t, err)
	require.True(t, tracked)

	untracked, err := v.IsTracked(0)
	require.NoError(t, err)
	require.False(t, untracked)

	require.NoError(t, v.Prune(2))
	_, err = v.Header(0)
	require.ErrorIs(t, err, common.ErrNotFound)
	_, err = v.Header(1)
	require.NoError(t, err, "tracked header must survive prune")
}
