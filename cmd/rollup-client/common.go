// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"

	"github.com/rollupkit/client/store"
	"github.com/rollupkit/client/store/leveldbstore"
	"github.com/rollupkit/client/store/sqlitestore"
	"github.com/urfave/cli/v2"
)

var (
	dbDirFlag = cli.StringFlag{
		Name:     "dir",
		Usage:    "path to the store directory or file",
		Required: true,
	}
	backendFlag = cli.StringFlag{
		Name:  "backend",
		Usage: "store backend: leveldb or sqlite",
		Value: "leveldb",
	}
)

// open opens a persistent Store at dir using the named backend. Callers
// are responsible for closing the returned Store.
func open(dir, backend string) (store.Store, error) {
	switch backend {
	case "leveldb":
		return leveldbstore.Open(dir)
	case "sqlite":
		return sqlitestore.Open(dir)
	default:
		return nil, fmt.Errorf("unknown backend %q, want leveldb or sqlite", backend)
	}
}
