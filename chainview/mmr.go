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
	"github.com/rollupkit/client/common"
)

// bagPeaks folds a peak set into a single chain commitment, newest peak
// first, matching the order the node is expected to use when it computes
// the ChainCommitment field it ships in a BlockHeader.
func bagPeaks(hashes []common.Hash) common.Hash {
	if len(hashes) == 0 {
		return common.Hash{}
	}
	acc := hashes[len(hashes)-1]
	for i := len(hashes) - 2; i >= 0; i-- {
		acc = common.Keccak256(hashes[i][:], acc[:])
	}
	return acc
}
