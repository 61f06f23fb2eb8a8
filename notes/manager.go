// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package notes implements the input/output note lifecycle state machines
// (spec.md §4.3): metadata arrival, inclusion-proof reconciliation,
// nullifier observation, and the tag/nullifier-indexed consumability
// query. Every transition here runs inside a caller-supplied store.Tx; it
// is the caller's (sync.SyncEngine's) job to wrap a batch of them in one
// Store.Update.
package notes

import (
	"errors"
	"fmt"

	"github.com/rollupkit/client/common"
	"github.com/rollupkit/client/store"
)

// Manager applies §4.3 transitions against a store.Tx. It holds no state
// of its own; it exists to group the transition logic the way
// chainview.ChainView groups log operations.
type Manager struct{}

// New returns a Manager. There is nothing to construct; the zero value
// also works, but New matches the constructor idiom used elsewhere in
// this module.
func New() Manager {
	return Manager{}
}

func transitionErr(id common.NoteId, from common.InputState, event string) error {
	return fmt.Errorf("%w: input note %s cannot %s from state %s", common.ErrProtocolViolation, id, event, from)
}

func sameMetadata(a, b common.NoteMetadata) bool {
	if a.Sender != b.Sender || a.Tag != b.Tag {
		return false
	}
	ra, rb := a.ExecutionHint.RecallAfter, b.ExecutionHint.RecallAfter
	if (ra == nil) != (rb == nil) {
		return false
	}
	return ra == nil || *ra == *rb
}

// OnMetadataArrived moves an Expected note to Unverified once its sender,
// tag and execution hint are known. No-op if already past Expected with
// identical metadata (idempotent re-delivery).
func (Manager) OnMetadataArrived(tx store.Tx, id common.NoteId, meta common.NoteMetadata, nullifier *common.Nullifier) error {
	r, err := tx.InputNoteById(id)
	if err != nil {
		return err
	}
	if r.State != common.InputStateExpected {
		if r.Metadata != nil && sameMetadata(*r.Metadata, meta) {
			return nil
		}
		return transitionErr(id, r.State, "receive metadata")
	}
	r.Metadata = &meta
	r.Nullifier = nullifier
	r.State = common.InputStateUnverified
	return tx.UpsertInputNote(r)
}

// OnProofVerified moves Unverified (or an already-Committed note being
// re-anchored to a later block) to Committed.
func (Manager) OnProofVerified(tx store.Tx, id common.NoteId, block common.BlockNumber) error {
	r, err := tx.InputNoteById(id)
	if err != nil {
		return err
	}
	if r.State != common.InputStateUnverified && r.State != common.InputStateCommitted {
		return transitionErr(id, r.State, "verify inclusion proof")
	}
	r.State = common.InputStateCommitted
	r.Proof = &common.InclusionProofRef{Block: block}
	return tx.UpsertInputNote(r)
}

// OnProofDisproved moves an Unverified or Committed note to Invalid: the
// node claimed a position or note root that did not check out.
func (Manager) OnProofDisproved(tx store.Tx, id common.NoteId) error {
	r, err := tx.InputNoteById(id)
	if err != nil {
		return err
	}
	if r.State != common.InputStateUnverified && r.State != common.InputStateCommitted {
		return transitionErr(id, r.State, "disprove inclusion proof")
	}
	r.State = common.InputStateInvalid
	return tx.UpsertInputNote(r)
}

// OnSubmittedAuthenticated moves a Committed note into
// ProcessingAuthenticated, naming the locally built transaction
// consuming it.
func (Manager) OnSubmittedAuthenticated(tx store.Tx, id common.NoteId, txId common.Hash) error {
	r, err := tx.InputNoteById(id)
	if err != nil {
		return err
	}
	if r.State != common.InputStateCommitted {
		return transitionErr(id, r.State, "submit as authenticated input")
	}
	r.State = common.InputStateProcessingAuthenticated
	r.ConsumingTxId = &txId
	return tx.UpsertInputNote(r)
}

// OnSubmittedUnauthenticated moves an Expected or Unverified note into
// ProcessingUnauthenticated (consumption in anticipation of a note whose
// inclusion has not yet been verified).
func (Manager) OnSubmittedUnauthenticated(tx store.Tx, id common.NoteId, txId common.Hash) error {
	r, err := tx.InputNoteById(id)
	if err != nil {
		return err
	}
	if r.State != common.InputStateExpected && r.State != common.InputStateUnverified {
		return transitionErr(id, r.State, "submit as unauthenticated input")
	}
	r.State = common.InputStateProcessingUnauthenticated
	r.ConsumingTxId = &txId
	return tx.UpsertInputNote(r)
}

// NullifierObservation describes one nullifier seen in a sync delta.
type NullifierObservation struct {
	Nullifier common.Nullifier
	Block     common.BlockNumber
	// TxId is the on-chain transaction id the nullifier was revealed
	// in. The tie-break rule (spec.md §4.3) is applied by the caller
	// before this is invoked: only the earliest block's observation for
	// a given nullifier should ever reach OnNullifierObserved.
	TxId common.Hash
}

// OnNullifierObserved reconciles a nullifier seen on-chain against a
// tracked note, if any. ours reports whether TxId matches a transaction
// this client submitted; the on-chain transaction id is authoritative
// over local expectations when the two disagree (spec.md §4.3).
func (m Manager) OnNullifierObserved(tx store.Tx, obs NullifierObservation, ours bool) error {
	r, err := tx.InputNoteByNullifier(obs.Nullifier)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil
		}
		return err
	}
	if r.State.IsConsumed() {
		return nil
	}
	switch {
	case ours && r.State == common.InputStateProcessingAuthenticated:
		r.State = common.InputStateConsumedAuthenticatedLocal
	case ours && r.State == common.InputStateProcessingUnauthenticated:
		r.State = common.InputStateConsumedUnauthenticatedLocal
	default:
		r.State = common.InputStateConsumedExternal
	}
	r.ConsumingTxId = &obs.TxId
	return tx.UpsertInputNote(r)
}

// OnTransactionDiscarded rolls back every note a discarded transaction
// was processing, per spec.md §4.3's last row: Processing* reverts to
// whatever state preceded submission. Since the prior authenticated
// state is not retained verbatim, a note that was ProcessingAuthenticated
// (which only follows Committed) reverts to Committed; one that was
// ProcessingUnauthenticated reverts to Unverified if it has metadata, or
// Expected otherwise.
func (m Manager) OnTransactionDiscarded(tx store.Tx, txId common.Hash) error {
	notes, err := tx.InputNotes(store.InputNoteFilter{})
	if err != nil {
		return err
	}
	for _, r := range notes {
		if r.ConsumingTxId == nil || *r.ConsumingTxId != txId || !r.State.IsProcessing() {
			continue
		}
		switch r.State {
		case common.InputStateProcessingAuthenticated:
			r.State = common.InputStateCommitted
		case common.InputStateProcessingUnauthenticated:
			if r.Metadata != nil {
				r.State = common.InputStateUnverified
			} else {
				r.State = common.InputStateExpected
			}
		}
		r.ConsumingTxId = nil
		if err := tx.UpsertInputNote(r); err != nil {
			return err
		}
	}
	return nil
}

// --- Output notes ---

// OnOutputCommitted moves an Expected output note to Committed once its
// producing transaction lands on-chain.
func (Manager) OnOutputCommitted(tx store.Tx, id common.NoteId) error {
	r, err := tx.OutputNoteById(id)
	if err != nil {
		return err
	}
	if r.State != common.OutputStateExpected {
		return nil
	}
	r.State = common.OutputStateCommitted
	return tx.UpsertOutputNote(r)
}

// OnOutputConsumed moves a Committed output note to ConsumedLocal (this
// client consumed it as an input elsewhere) or ConsumedExternal.
func (Manager) OnOutputConsumed(tx store.Tx, id common.NoteId, local bool) error {
	r, err := tx.OutputNoteById(id)
	if err != nil {
		return err
	}
	if r.State != common.OutputStateCommitted {
		return nil
	}
	if local {
		r.State = common.OutputStateConsumedLocal
	} else {
		r.State = common.OutputStateConsumedExternal
	}
	return tx.UpsertOutputNote(r)
}

// OnOutputDiscarded moves every output note of a discarded producing
// transaction to Discarded.
func (m Manager) OnOutputDiscarded(tx store.Tx, txId common.Hash) error {
	notes, err := tx.OutputNotes(store.OutputNoteFilter{})
	if err != nil {
		return err
	}
	for _, r := range notes {
		if r.ProducingTxId != txId {
			continue
		}
		r.State = common.OutputStateDiscarded
		if err := tx.UpsertOutputNote(r); err != nil {
			return err
		}
	}
	return nil
}

// consumableStates are the input states a note must be in to be offered
// by a consumability query (spec.md §4.3).
var consumableStates = []common.InputState{
	common.InputStateCommitted,
	common.InputStateProcessingAuthenticated,
	common.InputStateProcessingUnauthenticated,
}

// ScriptAccepts reports whether a note's script would accept being
// consumed by the given account. Supplied by the caller (executor
// package) since NoteManager does not itself run note scripts.
type ScriptAccepts func(note common.InputNoteRecord, account common.AccountId) bool

// Consumability enumerates (account, consumable-after) pairs for notes
// this client could consume, optionally scoped to a single account.
func (m Manager) Consumability(tx store.Tx, account *common.AccountId, accepts ScriptAccepts) ([]common.ConsumabilityEntry, error) {
	rs, err := tx.InputNotes(store.InputNoteFilter{States: consumableStates})
	if err != nil {
		return nil, err
	}
	var out []common.ConsumabilityEntry
	for _, r := range rs {
		if r.Metadata == nil {
			continue
		}
		candidate := r.Metadata.Sender
		if account != nil {
			candidate = *account
		}
		if accepts != nil && !accepts(r, candidate) {
			continue
		}
		// The recall window only binds the sender reclaiming their own
		// send after it goes unspent; any other recipient can spend the
		// note as soon as it is otherwise consumable (spec.md §8
		// scenario 2).
		var consumableAfter *common.BlockNumber
		if candidate == r.Metadata.Sender {
			consumableAfter = r.Metadata.ExecutionHint.RecallAfter
		}
		out = append(out, common.ConsumabilityEntry{
			AccountId:       candidate,
			ConsumableAfter: consumableAfter,
		})
	}
	return out, nil
}
