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
	"log"

	"github.com/rollupkit/client/store"
	"github.com/urfave/cli/v2"
)

var infoCommand = cli.Command{
	Action: getInfo,
	Name:   "info",
	Usage:  "prints summary information about a store directory",
	Flags: []cli.Flag{
		&dbDirFlag,
		&backendFlag,
	},
}

func getInfo(ctx *cli.Context) (err error) {
	dir := ctx.String(dbDirFlag.Name)
	log.Printf("Opening store in %v ...", dir)
	s, err := open(dir, ctx.String(backendFlag.Name))
	if err != nil {
		return err
	}
	defer func() {
		log.Printf("Closing store in %v ...", dir)
		if closeErr := s.Close(); closeErr != nil {
			if err == nil {
				err = closeErr
			} else {
				log.Printf("Failure closing store: %v", closeErr)
			}
		}
	}()

	return s.View(func(tx store.Tx) error {
		block, empty, err := tx.SyncCursor()
		if err != nil {
			return err
		}
		if empty {
			fmt.Println("Sync cursor: none (never synced)")
		} else {
			fmt.Printf("Sync cursor: block %v\n", block)
		}

		accounts, err := tx.ListAccountHeaders()
		if err != nil {
			return err
		}
		fmt.Printf("Accounts tracked: %d\n", len(accounts))

		pending, err := tx.Transactions(store.TransactionFilter{OnlyUncommitted: true})
		if err != nil {
			return err
		}
		fmt.Printf("Uncommitted transactions: %d\n", len(pending))

		return nil
	})
}
