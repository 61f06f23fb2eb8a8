// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rollupkit/client/common"
	"github.com/rollupkit/client/store"
)

// Store is a mattn/go-sqlite3-backed store.Store. Update and View each run
// the whole closure inside one database/sql transaction; Update commits on
// success and rolls back otherwise, View always rolls back.
type Store struct {
	db *sql.DB
}

// Open opens (creating and migrating if absent) a sqlite database file.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite at %s: %v", common.ErrStore, path, err)
	}
	db.SetMaxOpenConns(1) // sqlite3 driver is not safe for concurrent writers
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: migrate schema: %v", common.ErrStore, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Update(fn func(store.Tx) error) (err error) {
	sqlTx, err := s.db.BeginTx(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", common.ErrStore, err)
	}
	defer func() {
		if r := recover(); r != nil {
			_ = sqlTx.Rollback()
			panic(r)
		}
	}()
	x := &tx{sqlTx: sqlTx}
	if err := fn(x); err != nil {
		_ = sqlTx.Rollback()
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("%w: commit transaction: %v", common.ErrStore, err)
	}
	return nil
}

func (s *Store) View(fn func(store.Tx) error) error {
	sqlTx, err := s.db.BeginTx(context.Background(), &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return fmt.Errorf("%w: begin read transaction: %v", common.ErrStore, err)
	}
	defer func() { _ = sqlTx.Rollback() }()
	x := &tx{sqlTx: sqlTx, readOnly: true}
	return fn(x)
}

func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("%w: close sqlite: %v", common.ErrStore, err)
	}
	return nil
}

var _ store.Store = (*Store)(nil)
