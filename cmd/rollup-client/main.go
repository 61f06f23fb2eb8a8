// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// rollup-client is a set of utilities to inspect and manage a local
// client store directory.
//
// Run with `go run ./cmd/rollup-client`
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/rollupkit/client/common/interrupt"
)

func main() {
	app := &cli.App{
		Name:      "Rollup Client Toolbox",
		HelpName:  "rollup-client",
		Usage:     "inspect and manage a local rollup client store",
		Copyright: "(c) 2024 Fantom Foundation",
		Flags:     []cli.Flag{},
		Commands: []*cli.Command{
			&infoCommand,
			&accountsCommand,
			&exportCommand,
			&importCommand,
		},
	}
	ctx := interrupt.Register(context.Background())
	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
