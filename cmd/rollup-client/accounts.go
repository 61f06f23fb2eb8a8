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
	"crypto/rand"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/rollupkit/client/accounts"
	"github.com/rollupkit/client/common"
	"github.com/rollupkit/client/store"
	"github.com/urfave/cli/v2"
)

var accountsCommand = cli.Command{
	Name:  "accounts",
	Usage: "create, list or lock accounts tracked by a store",
	Subcommands: []*cli.Command{
		&newWalletCommand,
		&listAccountsCommand,
		&lockAccountCommand,
	},
}

var newWalletCommand = cli.Command{
	Action: newWallet,
	Name:   "new-wallet",
	Usage:  "creates a private regular account from a fresh random seed",
	Flags:  []cli.Flag{&dbDirFlag, &backendFlag},
}

func newWallet(ctx *cli.Context) (err error) {
	s, err := open(ctx.String(dbDirFlag.Name), ctx.String(backendFlag.Name))
	if err != nil {
		return err
	}
	defer func() { err = closeAndJoin(s, err) }()

	var seed common.Hash
	if _, err := rand.Read(seed[:]); err != nil {
		return fmt.Errorf("generate seed: %w", err)
	}
	id := deriveAccountId(seed)

	mgr := accounts.New()
	if err := s.Update(func(tx store.Tx) error {
		return mgr.Create(tx, id, seed, common.StorageModePrivate, common.AccountTypeRegular, true, common.Hash{}, common.Hash{}, common.Hash{})
	}); err != nil {
		return err
	}

	fmt.Printf("Created account %v\n", id)
	return nil
}

var listAccountsCommand = cli.Command{
	Action: listAccounts,
	Name:   "list",
	Usage:  "lists every account tracked by a store",
	Flags:  []cli.Flag{&dbDirFlag, &backendFlag},
}

func listAccounts(ctx *cli.Context) (err error) {
	s, err := open(ctx.String(dbDirFlag.Name), ctx.String(backendFlag.Name))
	if err != nil {
		return err
	}
	defer func() { err = closeAndJoin(s, err) }()

	return s.View(func(tx store.Tx) error {
		hs, err := tx.ListAccountHeaders()
		if err != nil {
			return err
		}
		for _, h := range hs {
			locked := ""
			if h.Locked {
				locked = " [locked]"
			}
			fmt.Printf("%v  nonce=%d  commitment=%v%s\n", h.Id, h.Nonce, h.Commitment, locked)
		}
		return nil
	})
}

var accountIdFlag = cli.StringFlag{
	Name:     "account",
	Usage:    "account id as printed by the list command",
	Required: true,
}

var lockAccountCommand = cli.Command{
	Action: lockAccount,
	Name:   "lock",
	Usage:  "locks an account, rejecting further local writes against it",
	Flags:  []cli.Flag{&dbDirFlag, &backendFlag, &accountIdFlag},
}

func lockAccount(ctx *cli.Context) (err error) {
	s, err := open(ctx.String(dbDirFlag.Name), ctx.String(backendFlag.Name))
	if err != nil {
		return err
	}
	defer func() { err = closeAndJoin(s, err) }()

	id, err := parseAccountId(ctx.String(accountIdFlag.Name))
	if err != nil {
		return err
	}

	mgr := accounts.New()
	if err := s.Update(func(tx store.Tx) error {
		return mgr.Lock(tx, id)
	}); err != nil {
		return err
	}
	fmt.Printf("Locked account %v\n", id)
	return nil
}

// parseAccountId reverses AccountId.String()'s "0x<32 hex chars>" format.
func parseAccountId(s string) (common.AccountId, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s) != 32 {
		return common.AccountId{}, fmt.Errorf("account id must be 32 hex characters (16 bytes), got %d", len(s))
	}
	prefix, err := strconv.ParseUint(s[:16], 16, 64)
	if err != nil {
		return common.AccountId{}, fmt.Errorf("invalid account id prefix: %w", err)
	}
	suffix, err := strconv.ParseUint(s[16:], 16, 64)
	if err != nil {
		return common.AccountId{}, fmt.Errorf("invalid account id suffix: %w", err)
	}
	return common.AccountId{Prefix: prefix, Suffix: suffix}, nil
}

func deriveAccountId(seed common.Hash) common.AccountId {
	h := common.Keccak256(seed[:])
	s := common.Keccak256(seed[:], []byte("suffix"))
	var id common.AccountId
	for _, b := range h[0:8] {
		id.Prefix = id.Prefix<<8 | uint64(b)
	}
	for _, b := range s[0:8] {
		id.Suffix = id.Suffix<<8 | uint64(b)
	}
	return id
}

func closeAndJoin(s store.Store, err error) error {
	if closeErr := s.Close(); closeErr != nil {
		log.Printf("Failure closing store: %v", closeErr)
		if err == nil {
			return closeErr
		}
	}
	return err
}
