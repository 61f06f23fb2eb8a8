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
	"os"

	"github.com/rollupkit/client/common/interrupt"
	"github.com/rollupkit/client/store"
	"github.com/urfave/cli/v2"
)

var dumpFileFlag = cli.StringFlag{
	Name:     "out",
	Usage:    "path to write the compressed dump to",
	Required: true,
}

var exportCommand = cli.Command{
	Action: exportStore,
	Name:   "export",
	Usage:  "dumps a store's full content to a portable file",
	Flags:  []cli.Flag{&dbDirFlag, &backendFlag, &dumpFileFlag},
}

func exportStore(ctx *cli.Context) (err error) {
	dir := ctx.String(dbDirFlag.Name)
	log.Printf("Opening store in %v ...", dir)
	s, err := open(dir, ctx.String(backendFlag.Name))
	if err != nil {
		return err
	}
	defer func() { err = closeAndJoin(s, err) }()

	var d store.Dump
	if err := s.View(func(tx store.Tx) error {
		var err error
		d, err = tx.Export()
		return err
	}); err != nil {
		return err
	}

	encoded, err := store.EncodeDump(d)
	if err != nil {
		return err
	}

	if interrupt.IsCancelled(ctx.Context) {
		return fmt.Errorf("export cancelled before write")
	}

	out := ctx.String(dumpFileFlag.Name)
	if err := os.WriteFile(out, encoded, 0o600); err != nil {
		return fmt.Errorf("write dump to %s: %w", out, err)
	}
	fmt.Printf("Wrote %d bytes to %s\n", len(encoded), out)
	return nil
}
