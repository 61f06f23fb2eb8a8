// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package client wires every core component into the User API surface
// (spec.md §6): accounts, notes, transactions, sync, and export/import.
// It is the only package application code outside this module is meant
// to import directly.
package client

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/rollupkit/client/accounts"
	"github.com/rollupkit/client/chainview"
	"github.com/rollupkit/client/common"
	"github.com/rollupkit/client/common/amount"
	"github.com/rollupkit/client/executor"
	"github.com/rollupkit/client/internal/rlog"
	"github.com/rollupkit/client/notes"
	"github.com/rollupkit/client/prover"
	"github.com/rollupkit/client/rpc"
	"github.com/rollupkit/client/store"
	"github.com/rollupkit/client/sync"
	"github.com/rollupkit/client/txpipeline"
)

// Client is the façade over Store, SyncEngine and TxPipeline. It holds
// no business-rule state of its own: every operation either reads the
// Store directly or delegates to the manager that owns the rule.
type Client struct {
	store store.Store
	node  rpc.NodeClient
	sync  *sync.Engine
	pipe  *txpipeline.Pipeline
	accts accounts.Manager
	notes notes.Manager
}

// New assembles a Client from its components. chain, exec and prv are
// typically chainview.New(s), executor.NewLocal() (or a remote
// equivalent) and prover.NewLocal()/NewRemote(...).
func New(s store.Store, node rpc.NodeClient, chain chainview.ChainView, exec executor.Executor, prv prover.TxProver) *Client {
	c := &Client{
		store: s,
		node:  node,
		sync:  sync.New(s, node, chain),
		pipe:  txpipeline.New(s, exec, prv, node),
		accts: accounts.New(),
		notes: notes.New(),
	}
	return c
}

// --- Accounts ---

// NewWallet creates a private, updatable regular account from a fresh
// random seed.
func (c *Client) NewWallet() (common.AccountId, error) {
	return c.newAccount(nil, common.StorageModePrivate, common.AccountTypeRegular, true)
}

// NewFaucet creates a public faucet account from a fresh random seed.
func (c *Client) NewFaucet() (common.AccountId, error) {
	return c.newAccount(nil, common.StorageModePublic, common.AccountTypeFaucet, true)
}

// ImportAccountFromSeed derives and registers an account from a
// caller-supplied seed (spec.md §4.4 Creation: same seed always yields
// the same id and commitment).
func (c *Client) ImportAccountFromSeed(seed common.Hash, mode common.StorageMode, typ common.AccountType, updatable bool) (common.AccountId, error) {
	return c.newAccount(&seed, mode, typ, updatable)
}

func (c *Client) newAccount(seed *common.Hash, mode common.StorageMode, typ common.AccountType, updatable bool) (common.AccountId, error) {
	var s common.Hash
	if seed != nil {
		s = *seed
	} else if _, err := rand.Read(s[:]); err != nil {
		return common.AccountId{}, fmt.Errorf("%w: generate account seed: %v", common.ErrStore, err)
	}
	id := common.AccountId{Prefix: hashPrefix(s), Suffix: hashSuffix(s)}

	err := c.store.Update(func(tx store.Tx) error {
		return c.accts.Create(tx, id, s, mode, typ, updatable, common.Hash{}, common.Hash{}, common.Hash{})
	})
	if err != nil {
		return common.AccountId{}, err
	}
	return id, nil
}

func hashPrefix(seed common.Hash) uint64 {
	h := common.Keccak256(seed[:])
	return beUint64(h[0:8])
}

func hashSuffix(seed common.Hash) uint64 {
	h := common.Keccak256(seed[:], []byte("suffix"))
	return beUint64(h[0:8])
}

func beUint64(b []byte) uint64 {
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v
}

// ImportAccount registers an externally-constructed account header
// as-is (e.g. restored from a counterparty's public account data).
func (c *Client) ImportAccount(h common.AccountHeader) error {
	return c.store.Update(func(tx store.Tx) error {
		return tx.UpsertAccountHeader(h)
	})
}

// GetAccount returns an account's current header. Per spec.md §9's
// resolved Open Question, this read is permitted even for a locked
// account; only writes through TxPipeline are rejected.
func (c *Client) GetAccount(id common.AccountId) (common.AccountHeader, error) {
	var h common.AccountHeader
	err := c.store.View(func(tx store.Tx) error {
		var err error
		h, err = tx.AccountHeader(id)
		return err
	})
	return h, err
}

// ListAccounts returns every tracked account's header.
func (c *Client) ListAccounts() ([]common.AccountHeader, error) {
	var hs []common.AccountHeader
	err := c.store.View(func(tx store.Tx) error {
		var err error
		hs, err = tx.ListAccountHeaders()
		return err
	})
	return hs, err
}

// LockAccount marks an account locked directly, e.g. when the user
// suspects its signing key is compromised.
func (c *Client) LockAccount(id common.AccountId) error {
	return c.store.Update(func(tx store.Tx) error {
		return c.accts.Lock(tx, id)
	})
}

// --- Notes ---

func (c *Client) GetInputNote(id common.NoteId) (common.InputNoteRecord, error) {
	var r common.InputNoteRecord
	err := c.store.View(func(tx store.Tx) error {
		var err error
		r, err = tx.InputNoteById(id)
		return err
	})
	return r, err
}

func (c *Client) GetInputNotes(filter store.InputNoteFilter) ([]common.InputNoteRecord, error) {
	var rs []common.InputNoteRecord
	err := c.store.View(func(tx store.Tx) error {
		var err error
		rs, err = tx.InputNotes(filter)
		return err
	})
	return rs, err
}

func (c *Client) GetOutputNote(id common.NoteId) (common.OutputNoteRecord, error) {
	var r common.OutputNoteRecord
	err := c.store.View(func(tx store.Tx) error {
		var err error
		r, err = tx.OutputNoteById(id)
		return err
	})
	return r, err
}

func (c *Client) GetOutputNotes(filter store.OutputNoteFilter) ([]common.OutputNoteRecord, error) {
	var rs []common.OutputNoteRecord
	err := c.store.View(func(tx store.Tx) error {
		var err error
		rs, err = tx.OutputNotes(filter)
		return err
	})
	return rs, err
}

// GetConsumableNotes enumerates notes this client could consume,
// optionally scoped to one account (spec.md §4.3 Consumability query).
// Script acceptance is delegated to accepts; nil accepts every
// candidate note, which is correct for the deterministic stand-in
// Executor this module ships (it has no real note-script interpreter to
// consult).
func (c *Client) GetConsumableNotes(account *common.AccountId, accepts notes.ScriptAccepts) ([]common.ConsumabilityEntry, error) {
	var out []common.ConsumabilityEntry
	err := c.store.View(func(tx store.Tx) error {
		var err error
		out, err = c.notes.Consumability(tx, account, accepts)
		return err
	})
	return out, err
}

// consumableInputStates are the input states a note must be in to be
// counted towards a consumable balance (spec.md §4.3).
var consumableInputStates = []common.InputState{
	common.InputStateCommitted,
	common.InputStateProcessingAuthenticated,
	common.InputStateProcessingUnauthenticated,
}

// GetConsumableBalance sums the fungible Amount of faucet's asset held
// across every note account could consume, widening into an
// amount.Amount so that summing many uint64 asset amounts can never
// silently wrap the way a running uint64 total could.
//
// Which notes account could consume is decided the same way as
// GetConsumableNotes/notes.Manager.Consumability: account is the
// candidate consumer, and accepts (nil accepting every candidate, the
// correct default for the deterministic stand-in Executor this module
// ships) is the script-acceptance check — never a comparison against
// Metadata.Sender, which only names who sent or minted the note, not
// who may spend it. A minted note's sender is the minting faucet
// itself, and a sent note's recipient is never its sender, so filtering
// on sender equality would wrongly zero out exactly the balances this
// call exists to report (spec.md §8 scenarios 1 and 2).
func (c *Client) GetConsumableBalance(account common.AccountId, faucet common.AccountId, accepts notes.ScriptAccepts) (amount.Amount, error) {
	var rs []common.InputNoteRecord
	err := c.store.View(func(tx store.Tx) error {
		var err error
		rs, err = tx.InputNotes(store.InputNoteFilter{States: consumableInputStates})
		return err
	})
	if err != nil {
		return amount.Amount{}, err
	}

	total := amount.New()
	for _, r := range rs {
		if r.Metadata == nil {
			continue
		}
		if accepts != nil && !accepts(r, account) {
			continue
		}
		for _, a := range r.Assets {
			if !a.Fungible || a.FaucetId != faucet {
				continue
			}
			total = amount.Add(total, amount.New(a.Amount))
		}
	}
	return total, nil
}

// ImportNote registers a note a counterparty shared out of band.
func (c *Client) ImportNote(r common.InputNoteRecord) error {
	return c.store.Update(func(tx store.Tx) error {
		return tx.UpsertInputNote(r)
	})
}

// NoteExportMode selects how much of a note's data export_note reveals.
type NoteExportMode int

const (
	// ExportId reveals only the note's identifier.
	ExportId NoteExportMode = iota
	// ExportPartial reveals everything but the inclusion proof and
	// consuming-transaction linkage, enough for a recipient to track
	// the note without exposing this client's spend history.
	ExportPartial
	// ExportFull reveals the complete local record.
	ExportFull
)

// ExportedNote is what export_note returns for a given mode.
type ExportedNote struct {
	Id     common.NoteId
	Record *common.InputNoteRecord
}

func (c *Client) ExportNote(id common.NoteId, mode NoteExportMode) (ExportedNote, error) {
	if mode == ExportId {
		return ExportedNote{Id: id}, nil
	}
	r, err := c.GetInputNote(id)
	if err != nil {
		return ExportedNote{}, err
	}
	if mode == ExportPartial {
		r.Proof = nil
		r.ConsumingTxId = nil
	}
	return ExportedNote{Id: id, Record: &r}, nil
}

// CompileNoteScript registers a note script keyed by its content hash.
func (c *Client) CompileNoteScript(code common.Blob) (common.NoteScript, error) {
	root := common.Keccak256(code)
	s := common.NoteScript{Root: root, Code: code}
	err := c.store.Update(func(tx store.Tx) error {
		return tx.UpsertNoteScript(s)
	})
	return s, err
}

// CompileTxScript registers a transaction script the same way
// CompileNoteScript does for note scripts; both are addressed by their
// content hash and deduplicated in the same NoteScript table (spec.md
// §9 Cyclic references: scripts are owned by the script table, never by
// the record referencing them).
func (c *Client) CompileTxScript(code common.Blob) (common.Hash, error) {
	s, err := c.CompileNoteScript(code)
	return s.Root, err
}

// --- Transactions ---

// NewMintTxRequest builds a request minting amount of a fungible asset
// from faucet to recipientDigest (spec.md §8 scenario 1).
func (c *Client) NewMintTxRequest(faucet common.AccountId, recipientDigest common.Hash, amount uint64) executor.TransactionRequest {
	return executor.TransactionRequest{
		AccountId: faucet,
		OwnOutputs: []executor.OutputSpec{{
			RecipientDigest: recipientDigest,
			Assets:          []common.Asset{{FaucetId: faucet, Amount: amount, Fungible: true}},
		}},
	}
}

// NewSendTxRequest builds a request moving assets from account to
// recipientDigest, recallable by the sender after recallAfter if it is
// non-nil (spec.md §8 scenario 2).
func (c *Client) NewSendTxRequest(account common.AccountId, recipientDigest common.Hash, assets []common.Asset, tag common.Tag, recallAfter *common.BlockNumber) executor.TransactionRequest {
	return executor.TransactionRequest{
		AccountId: account,
		OwnOutputs: []executor.OutputSpec{{
			RecipientDigest: recipientDigest,
			Assets:          assets,
			Metadata:        common.NoteMetadata{Sender: account, Tag: tag, ExecutionHint: common.ExecutionHint{RecallAfter: recallAfter}},
		}},
	}
}

// NewConsumeTxRequest builds a request consuming noteIds as
// authenticated inputs (already Committed) of account.
func (c *Client) NewConsumeTxRequest(account common.AccountId, noteIds []common.NoteId, args []common.Hash) executor.TransactionRequest {
	refs := make([]executor.InputRef, len(noteIds))
	for i, id := range noteIds {
		refs[i] = executor.InputRef{NoteId: id, Args: args}
	}
	return executor.TransactionRequest{AccountId: account, AuthenticatedInputs: refs}
}

// NewSwapTxRequest builds a request consuming the offered notes and
// producing one output carrying the requested assets for the
// counterparty named by recipientDigest — an atomic offer/ask swap.
func (c *Client) NewSwapTxRequest(account common.AccountId, offeredNoteIds []common.NoteId, requestedAssets []common.Asset, recipientDigest common.Hash, tag common.Tag) executor.TransactionRequest {
	req := c.NewConsumeTxRequest(account, offeredNoteIds, nil)
	req.OwnOutputs = []executor.OutputSpec{{
		RecipientDigest: recipientDigest,
		Assets:          requestedAssets,
		Metadata:        common.NoteMetadata{Sender: account, Tag: tag},
	}}
	return req
}

// NewTransaction runs the Request+Execution stages (spec.md §4.6):
// nothing is persisted until SubmitTransaction is called with the
// result.
func (c *Client) NewTransaction(ctx context.Context, req executor.TransactionRequest) (txpipeline.Result, error) {
	return c.pipe.Execute(ctx, req)
}

// SubmitTransaction runs the Proving+Submission stages on an already
// executed result. prv overrides the Client's configured prover when
// non-nil (e.g. the caller wants a specific remote proving service for
// this submission only).
func (c *Client) SubmitTransaction(ctx context.Context, result txpipeline.Result, prv prover.TxProver) (common.Hash, error) {
	return c.pipe.ProveAndSubmit(ctx, result, prv)
}

// GetTransactions lists locally recorded transactions matching filter.
func (c *Client) GetTransactions(filter store.TransactionFilter) ([]common.TransactionRecord, error) {
	var rs []common.TransactionRecord
	err := c.store.View(func(tx store.Tx) error {
		var err error
		rs, err = tx.Transactions(filter)
		return err
	})
	return rs, err
}

// --- Sync ---

// SyncState runs one SyncEngine pass (spec.md §4.5).
func (c *Client) SyncState(ctx context.Context) (sync.Summary, error) {
	return c.sync.Run(ctx)
}

func (c *Client) AddTag(tag common.Tag, source common.TagSource) error {
	return c.sync.AddTag(tag, source)
}

func (c *Client) RemoveTag(tag common.Tag) error {
	return c.sync.RemoveTag(tag)
}

func (c *Client) ListTags() []common.Tag {
	return c.sync.Tags()
}

// SetLogger attaches a logger that SyncState reports progress to.
func (c *Client) SetLogger(l *rlog.Log) {
	c.sync.SetLogger(l)
}

// --- Export / import ---

// ExportStore dumps the entire local Store as a portable blob.
func (c *Client) ExportStore() (store.Dump, error) {
	var d store.Dump
	err := c.store.View(func(tx store.Tx) error {
		var err error
		d, err = tx.Export()
		return err
	})
	return d, err
}

// ForceImportStore destructively replaces every table with d's content
// (spec.md §6 Persisted dump format).
func (c *Client) ForceImportStore(d store.Dump) error {
	err := c.store.Update(func(tx store.Tx) error {
		return tx.Import(d)
	})
	if err != nil {
		return err
	}
	return c.sync.RefreshTags()
}
