// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package sync implements SyncEngine (spec.md §4.5): fetches a delta from
// the node, validates and appends new chain headers through ChainView
// (each append is its own store transaction), then reconciles note and
// transaction state and advances the sync cursor in a single
// store.Update. Readers can see the appended headers before that Update
// commits; the reconciliation and the cursor advance become visible
// together. Concurrent runs are rejected with common.ErrSyncInProgress via a
// process-wide lock.
package sync

import (
	"context"
	"fmt"
	stdsync "sync"
	"time"

	"github.com/rollupkit/client/accounts"
	"github.com/rollupkit/client/chainview"
	"github.com/rollupkit/client/common"
	"github.com/rollupkit/client/common/ticker"
	"github.com/rollupkit/client/internal/metrics"
	"github.com/rollupkit/client/internal/rlog"
	"github.com/rollupkit/client/notes"
	"github.com/rollupkit/client/rpc"
	"github.com/rollupkit/client/store"
)

// Summary reports what one Run call changed, for callers that want to
// log or display sync progress.
type Summary struct {
	BlockNum              common.BlockNumber
	Empty                 bool
	CommittedNotes        int
	ConsumedNotes         int
	UpdatedAccounts       int
	CommittedTransactions int
	DiscardedTransactions int
}

// Engine is SyncEngine. It holds no store or rpc state of its own beyond
// what it was constructed with; the process-wide lock is the only piece
// of mutable state that outlives a single Run call.
type Engine struct {
	store  store.Store
	node   rpc.NodeClient
	chain  chainview.ChainView
	notes  notes.Manager
	accts  accounts.Manager

	mu stdsync.Mutex

	tagMu stdsync.RWMutex
	tags  map[common.Tag]common.TagSource

	log *rlog.Log
}

func New(s store.Store, node rpc.NodeClient, chain chainview.ChainView) *Engine {
	return &Engine{
		store: s,
		node:  node,
		chain: chain,
		notes: notes.New(),
		accts: accounts.New(),
		tags:  make(map[common.Tag]common.TagSource),
	}
}

// SetLogger attaches a logger that Run reports progress to. Without
// one, Run stays silent beyond whatever internal/metrics records.
func (e *Engine) SetLogger(l *rlog.Log) {
	e.log = l
}

// RefreshTags reloads the cached tag subscription set from the store.
// AddTag, RemoveTag and Client.ForceImportStore call it. New does not:
// the cache starts empty, and a subscription set already persisted in
// the store is not sent with sync requests until RefreshTags runs.
func (e *Engine) RefreshTags() error {
	return e.store.View(func(tx store.Tx) error {
		entries, err := tx.Tags()
		if err != nil {
			return err
		}
		e.tagMu.Lock()
		defer e.tagMu.Unlock()
		e.tags = make(map[common.Tag]common.TagSource, len(entries))
		for _, t := range entries {
			e.tags[t.Tag] = t.Source
		}
		return nil
	})
}

// AddTag subscribes to tag and refreshes the cache.
func (e *Engine) AddTag(tag common.Tag, source common.TagSource) error {
	if err := e.store.Update(func(tx store.Tx) error {
		return tx.AddTag(tag, source)
	}); err != nil {
		return err
	}
	return e.RefreshTags()
}

// RemoveTag unsubscribes from tag and refreshes the cache.
func (e *Engine) RemoveTag(tag common.Tag) error {
	if err := e.store.Update(func(tx store.Tx) error {
		return tx.RemoveTag(tag)
	}); err != nil {
		return err
	}
	return e.RefreshTags()
}

// Tags returns the currently cached tag subscription set.
func (e *Engine) Tags() []common.Tag {
	e.tagMu.RLock()
	defer e.tagMu.RUnlock()
	out := make([]common.Tag, 0, len(e.tags))
	for t := range e.tags {
		out = append(out, t)
	}
	return out
}

// Run performs one sync: request delta, validate, append, reconcile,
// advance cursor (spec.md §4.5). It holds the engine's process-wide lock
// for its whole duration; a concurrent call fails immediately with
// common.ErrSyncInProgress.
func (e *Engine) Run(ctx context.Context) (summary Summary, err error) {
	if !e.mu.TryLock() {
		metrics.SyncRunsTotal.WithLabelValues("busy").Inc()
		return Summary{}, common.ErrSyncInProgress
	}
	defer e.mu.Unlock()

	start := time.Now()
	defer func() {
		metrics.SyncRunDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.SyncRunsTotal.WithLabelValues("error").Inc()
			return
		}
		metrics.SyncRunsTotal.WithLabelValues("ok").Inc()
		if !summary.Empty {
			metrics.SyncTipBlock.Set(float64(summary.BlockNum))
		}
		metrics.TransactionsDiscardedTotal.Add(float64(summary.DiscardedTransactions))
	}()

	cursor, empty, err := e.cursorSnapshot()
	if err != nil {
		return Summary{}, err
	}
	delta, err := e.node.SyncState(ctx, cursor, e.Tags())
	if err != nil {
		return Summary{}, err
	}

	// Steps 2-3: validate continuity and append, block by block. ChainView
	// commits each Append as its own Store transaction and is idempotent
	// on BlockNum, so replaying this prefix after a later failure (e.g.
	// the reconciliation Update below fails) is always safe.
	newCursor, newEmpty := cursor, empty
	for _, hd := range delta.Headers {
		tip, tipEmpty := e.chain.Tip()
		var tipHeader common.BlockHeader
		if !tipEmpty {
			var err error
			tipHeader, err = e.chain.Header(tip)
			if err != nil {
				return Summary{}, err
			}
		}
		// A header at or below the tip was appended by an earlier run;
		// Append accepts it again only if it is identical.
		if tipEmpty || hd.Header.BlockNum > tip {
			if err := chainview.ValidateContinuity(tipHeader, tipEmpty, hd.Header); err != nil {
				return Summary{}, err
			}
		}
		nodes := make([]chainview.AuthNode, len(hd.NewNodes))
		for i, n := range hd.NewNodes {
			nodes[i] = chainview.AuthNode{Id: n.Id, Hash: n.Hash}
		}
		if err := e.chain.Append(chainview.AppendDelta{Header: hd.Header, NewNodes: nodes}); err != nil {
			return Summary{}, err
		}
		metrics.SyncHeadersAppliedTotal.Inc()
		newCursor = hd.Header.BlockNum
		newEmpty = false
	}

	// Steps 4-6: reconciliation and the cursor advance commit atomically;
	// no reader observes a partial sync run.
	var tracked []common.BlockNumber
	err = e.store.Update(func(tx store.Tx) error {
		notesTracked, err := e.reconcileNotes(tx, delta, &summary)
		if err != nil {
			return err
		}
		txTracked, err := e.reconcileTransactions(tx, delta, &summary)
		if err != nil {
			return err
		}
		tracked = append(notesTracked, txTracked...)
		if !newEmpty {
			if err := tx.SetSyncCursor(newCursor); err != nil {
				return err
			}
		}
		summary.BlockNum = newCursor
		summary.Empty = newEmpty
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	// MarkTracked is its own idempotent Store transaction (ChainView's
	// retention policy is monotone true, spec.md §4.2), applied only
	// once reconciliation has committed.
	for _, b := range tracked {
		if err := e.chain.MarkTracked(b); err != nil {
			return Summary{}, err
		}
	}
	if e.log != nil && !summary.Empty {
		e.log.Printf("synced to block %d (%d notes committed, %d consumed, %d tx discarded)",
			summary.BlockNum, summary.CommittedNotes, summary.ConsumedNotes, summary.DiscardedTransactions)
	}
	return summary, nil
}

// RunLoop calls Run once per tick of t until ctx is cancelled or a Run
// fails, reporting every non-empty Summary through onSummary. Errors
// from a single Run abort the loop rather than being swallowed, since a
// silently stuck sync engine is worse than a process that exits loudly.
// Taking a ticker.Ticker instead of a bare time.Duration lets tests
// drive the loop deterministically instead of waiting on real time.
func (e *Engine) RunLoop(ctx context.Context, t ticker.Ticker, onSummary func(Summary)) error {
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C():
			summary, err := e.Run(ctx)
			if err != nil {
				return err
			}
			if onSummary != nil && !summary.Empty {
				onSummary(summary)
			}
		}
	}
}

func (e *Engine) cursorSnapshot() (common.BlockNumber, bool, error) {
	var block common.BlockNumber
	var empty bool
	err := e.store.View(func(tx store.Tx) error {
		var err error
		block, empty, err = tx.SyncCursor()
		return err
	})
	return block, empty, err
}

// reconcileNotes applies step 4: inclusion-proof updates, then
// nullifiers, rejecting a delta that reports the same nullifier at two
// different blocks as a protocol violation (spec.md §4.3 tie-break). It
// returns the blocks that should be marked tracked once this
// transaction commits.
func (e *Engine) reconcileNotes(tx store.Tx, delta rpc.Delta, summary *Summary) ([]common.BlockNumber, error) {
	var tracked []common.BlockNumber
	for _, u := range delta.NoteUpdates {
		if u.Disproved {
			if err := e.notes.OnProofDisproved(tx, u.NoteId); err != nil {
				return nil, err
			}
			continue
		}
		if u.Metadata != nil {
			if err := e.notes.OnMetadataArrived(tx, u.NoteId, *u.Metadata, u.Nullifier); err != nil {
				return nil, err
			}
		}
		if err := e.notes.OnProofVerified(tx, u.NoteId, u.Block); err != nil {
			return nil, err
		}
		tracked = append(tracked, u.Block)
		summary.CommittedNotes++
	}

	firstBlockForNullifier := make(map[common.Nullifier]common.BlockNumber)
	for _, n := range delta.Nullifiers {
		if b, seen := firstBlockForNullifier[n.Nullifier]; seen {
			if n.Block != b {
				return nil, fmt.Errorf("%w: nullifier %s observed at both block %d and %d in one sync delta", common.ErrProtocolViolation, n.Nullifier, b, n.Block)
			}
			continue
		}
		firstBlockForNullifier[n.Nullifier] = n.Block
	}
	for _, n := range delta.Nullifiers {
		if n.Block != firstBlockForNullifier[n.Nullifier] {
			continue
		}
		ours := false
		if _, err := tx.Transaction(n.TxId); err == nil {
			ours = true
		}
		obs := notes.NullifierObservation{Nullifier: n.Nullifier, Block: n.Block, TxId: n.TxId}
		if err := e.notes.OnNullifierObserved(tx, obs, ours); err != nil {
			return nil, err
		}
		if ours {
			metrics.NotesConsumedTotal.WithLabelValues("true").Inc()
		} else {
			metrics.NotesConsumedTotal.WithLabelValues("false").Inc()
		}
		summary.ConsumedNotes++
	}
	return tracked, nil
}

// reconcileTransactions applies step 5: commit landed transactions and
// expire+roll back ones whose window passed and whose inputs were
// consumed by someone else. It returns the blocks that should be marked
// tracked once this transaction commits.
func (e *Engine) reconcileTransactions(tx store.Tx, delta rpc.Delta, summary *Summary) ([]common.BlockNumber, error) {
	var tracked []common.BlockNumber
	for _, c := range delta.TransactionCommitments {
		rec, err := tx.Transaction(c.TxId)
		if err != nil {
			continue
		}
		if err := tx.UpdateTransactionCommitHeight(c.TxId, c.Block); err != nil {
			return nil, err
		}
		tracked = append(tracked, c.Block)
		for _, n := range rec.OutputNotes {
			if err := e.notes.OnOutputCommitted(tx, n.Id); err != nil {
				return nil, err
			}
		}
		summary.CommittedTransactions++
	}

	tip, tipEmpty, err := tx.TipBlockNumber()
	if err != nil {
		return nil, err
	}
	if tipEmpty {
		return tracked, nil
	}
	records, err := tx.Transactions(store.TransactionFilter{OnlyUncommitted: true})
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.Discarded || rec.CommitHeight != nil {
			continue
		}
		// Discard is two independently sufficient conditions (spec.md
		// §3): the inputs were consumed by a different transaction (this
		// build lost the race and must roll back immediately, without
		// waiting for expiration), or the transaction's window simply
		// ran out without it landing (spec.md §8 Optimistic rollback: a
		// build that never lands, and whose notes nobody else ever
		// spends, must not strand the account's provisional commitment
		// forever).
		if tip < rec.ExpirationBlock && !e.inputsConsumedByOthers(tx, rec) {
			continue
		}
		if err := tx.MarkTransactionDiscarded(rec.Id); err != nil {
			return nil, err
		}
		if err := e.notes.OnTransactionDiscarded(tx, rec.Id); err != nil {
			return nil, err
		}
		if err := e.notes.OnOutputDiscarded(tx, rec.Id); err != nil {
			return nil, err
		}
		if err := e.accts.Rollback(tx, rec.AccountId, rec.PreviousAccountCommitment); err != nil {
			return nil, err
		}
		summary.DiscardedTransactions++
		summary.UpdatedAccounts++
	}
	return tracked, nil
}

// inputsConsumedByOthers reports whether every nullifier this
// transaction would have revealed is already consumed on-chain by a
// different transaction id, meaning this build lost the race.
func (e *Engine) inputsConsumedByOthers(tx store.Tx, rec common.TransactionRecord) bool {
	if len(rec.InputNullifiers) == 0 {
		return false
	}
	for _, n := range rec.InputNullifiers {
		note, err := tx.InputNoteByNullifier(n)
		if err != nil {
			return false
		}
		if note.State != common.InputStateConsumedExternal {
			return false
		}
	}
	return true
}
