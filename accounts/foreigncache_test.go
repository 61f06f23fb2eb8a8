// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package accounts

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rollupkit/client/common"
)

func TestForeignCodeCache_PutThenGetRoundTrips(t *testing.T) {
	c, err := NewForeignCodeCache(4)
	require.NoError(t, err)

	id := common.AccountId{Prefix: 1, Suffix: 1}
	code := common.ForeignAccountCode{
		AccountId: id,
		CodeRoot:  common.Hash{7},
		Code:      common.Blob{1, 2, 3},
	}
	c.Put(code)

	got, ok := c.Get(id)
	require.True(t, ok)
	require.Equal(t, code, got)
}

func TestForeignCodeCache_MutatingCallerSliceDoesNotCorruptCachedEntry(t *testing.T) {
	c, err := NewForeignCodeCache(4)
	require.NoError(t, err)

	id := common.AccountId{Prefix: 2, Suffix: 2}
	src := common.Blob{1, 2, 3}
	c.Put(common.ForeignAccountCode{AccountId: id, Code: src})
	src[0] = 0xff

	got, ok := c.Get(id)
	require.True(t, ok)
	require.Equal(t, common.Blob{1, 2, 3}, got.Code)

	got.Code[1] = 0xff
	got2, ok := c.Get(id)
	require.True(t, ok)
	require.Equal(t, common.Blob{1, 2, 3}, got2.Code)
}

func TestForeignCodeCache_GetMissingReturnsFalse(t *testing.T) {
	c, err := NewForeignCodeCache(4)
	require.NoError(t, err)

	_, ok := c.Get(common.AccountId{Prefix: 9, Suffix: 9})
	require.False(t, ok)
}

func TestForeignCodeCache_RemoveEvicts(t *testing.T) {
	c, err := NewForeignCodeCache(4)
	require.NoError(t, err)

	id := common.AccountId{Prefix: 3, Suffix: 3}
	c.Put(common.ForeignAccountCode{AccountId: id, Code: common.Blob{1}})
	c.Remove(id)

	_, ok := c.Get(id)
	require.False(t, ok)
}
