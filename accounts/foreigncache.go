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
	lru "github.com/hashicorp/golang-lru"

	"github.com/rollupkit/client/common"
	"github.com/rollupkit/client/common/immutable"
)

// ForeignCodeCache bounds how much foreign (not locally owned) account
// code a client keeps resident, since executing a transaction may need
// read-only access to another public account's code (spec.md §4.4
// Foreign accounts) but clients interacting with many counterparties
// should not retain every one of them forever.
type ForeignCodeCache struct {
	cache *lru.Cache
}

// entry mirrors common.ForeignAccountCode but holds the code as
// immutable.Bytes, so a caller mutating a slice it passed to Put or got
// back from Get can never corrupt the copy shared with other readers.
type entry struct {
	accountId common.AccountId
	codeRoot  common.Hash
	code      immutable.Bytes
}

// NewForeignCodeCache creates a cache holding at most size entries,
// evicting least-recently-used foreign accounts first.
func NewForeignCodeCache(size int) (*ForeignCodeCache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &ForeignCodeCache{cache: c}, nil
}

// Get returns a cached entry, if any.
func (c *ForeignCodeCache) Get(id common.AccountId) (common.ForeignAccountCode, bool) {
	v, ok := c.cache.Get(id)
	if !ok {
		return common.ForeignAccountCode{}, false
	}
	e := v.(entry)
	return common.ForeignAccountCode{
		AccountId: e.accountId,
		CodeRoot:  e.codeRoot,
		Code:      common.Blob(e.code.ToBytes()),
	}, true
}

// Put populates or refreshes a cache entry, opportunistically called
// whenever code is fetched from the node.
func (c *ForeignCodeCache) Put(code common.ForeignAccountCode) {
	c.cache.Add(code.AccountId, entry{
		accountId: code.AccountId,
		codeRoot:  code.CodeRoot,
		code:      immutable.NewBytes(code.Code),
	})
}

// Remove evicts an entry, e.g. if the node reports the account's code
// root changed in a way the cache cannot reconcile.
func (c *ForeignCodeCache) Remove(id common.AccountId) {
	c.cache.Remove(id)
}
