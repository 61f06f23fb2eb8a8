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

var dumpSourceFlag = cli.StringFlag{
	Name:     "in",
	Usage:    "path to read a compressed dump from",
	Required: true,
}

var importCommand = cli.Command{
	Action: importStore,
	Name:   "import",
	Usage:  "replaces a store's full content with a previously exported dump",
	Flags:  []cli.Flag{&dbDirFlag, &backendFlag, &dumpSourceFlag},
}

func importStore(ctx *cli.Context) (err error) {
	in := ctx.String(dumpSourceFlag.Name)
	encoded, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("read dump from %s: %w", in, err)
	}
	d, err := store.DecodeDump(encoded)
	if err != nil {
		return err
	}

	dir := ctx.String(dbDirFlag.Name)
	log.Printf("Opening store in %v ...", dir)
	s, err := open(dir, ctx.String(backendFlag.Name))
	if err != nil {
		return err
	}
	defer func() { err = closeAndJoin(s, err) }()

	if interrupt.IsCancelled(ctx.Context) {
		return fmt.Errorf("import cancelled before write")
	}

	log.Printf("Importing %d accounts, %d input notes, %d output notes ...",
		len(d.Accounts), len(d.InputNotes), len(d.OutputNotes))
	if err := s.Update(func(tx store.Tx) error {
		return tx.Import(d)
	}); err != nil {
		return err
	}
	fmt.Printf("Imported store from %s into %s\n", in, dir)
	return nil
}
