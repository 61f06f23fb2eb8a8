// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package sqlitestore is a mattn/go-sqlite3-backed store.Store, grounded on
// the teacher pack's backend/archive/sqlite archive: one BLOB-keyed table
// per entity kind, with the full record JSON-encoded into a data column so
// adding a field never requires a migration, and narrow indexed columns
// for the predicates queries actually filter on (nullifier, account,
// commit height).
package sqlitestore

import "database/sql"

var configurePragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA foreign_keys = ON",
}

var createTableStmts = []string{
	`CREATE TABLE IF NOT EXISTS account (id BLOB PRIMARY KEY, data BLOB NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS auth_secret (account_id BLOB PRIMARY KEY, data BLOB NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS input_note (id BLOB PRIMARY KEY, nullifier BLOB, state INTEGER, tag INTEGER, data BLOB NOT NULL)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS input_note_nullifier ON input_note(nullifier) WHERE nullifier IS NOT NULL`,
	`CREATE TABLE IF NOT EXISTS output_note (id BLOB PRIMARY KEY, state INTEGER, data BLOB NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS note_script (root BLOB PRIMARY KEY, data BLOB NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS note_inputs (commitment BLOB PRIMARY KEY, data BLOB NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS tag (tag INTEGER PRIMARY KEY, source INTEGER NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS block_header (block INTEGER PRIMARY KEY, has_client_notes INTEGER NOT NULL, data BLOB NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS chain_log_node (id INTEGER PRIMARY KEY, data BLOB NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS parent_by_child (child_id INTEGER PRIMARY KEY, parent_id INTEGER NOT NULL, sibling_id INTEGER NOT NULL, is_left INTEGER NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS leaf_node (block INTEGER PRIMARY KEY, node_id INTEGER NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS peaks (block INTEGER PRIMARY KEY, data BLOB NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS tx_record (id BLOB PRIMARY KEY, account_id BLOB NOT NULL, commit_height INTEGER, discarded INTEGER NOT NULL, data BLOB NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS foreign_code (account_id BLOB PRIMARY KEY, data BLOB NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value BLOB NOT NULL)`,
}

func initSchema(db *sql.DB) error {
	for _, p := range configurePragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	for _, stmt := range createTableStmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
