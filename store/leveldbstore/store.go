// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package leveldbstore

import (
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/rollupkit/client/common"
	"github.com/rollupkit/client/store"
)

// Store is a goleveldb-backed store.Store. Update runs inside a native
// leveldb.Transaction (committed on success, discarded on error or panic),
// which is what gives the whole batch of table writes atomicity; View runs
// against a consistent leveldb.Snapshot.
type Store struct {
	db *leveldb.DB
}

// Open opens (creating if absent) a leveldb database at path.
func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{})
	if err != nil {
		return nil, fmt.Errorf("%w: open leveldb at %s: %v", common.ErrStore, path, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Update(fn func(tx store.Tx) error) (err error) {
	ldbTx, err := s.db.OpenTransaction()
	if err != nil {
		return fmt.Errorf("%w: open transaction: %v", common.ErrStore, err)
	}
	defer func() {
		if r := recover(); r != nil {
			ldbTx.Discard()
			panic(r)
		}
	}()
	x := &tx{r: ldbTx, w: ldbTx}
	if err := fn(x); err != nil {
		ldbTx.Discard()
		return err
	}
	if err := ldbTx.Commit(); err != nil {
		return fmt.Errorf("%w: commit transaction: %v", common.ErrStore, err)
	}
	return nil
}

func (s *Store) View(fn func(tx store.Tx) error) error {
	snap, err := s.db.GetSnapshot()
	if err != nil {
		return fmt.Errorf("%w: get snapshot: %v", common.ErrStore, err)
	}
	defer snap.Release()
	x := &tx{r: snap, readOnly: true}
	return fn(x)
}

func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("%w: close leveldb: %v", common.ErrStore, err)
	}
	return nil
}

var _ store.Store = (*Store)(nil)
