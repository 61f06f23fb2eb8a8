// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package accounts implements AccountManager (spec.md §4.4): deterministic
// account creation from a seed, the provisional-commitment update cycle a
// locally built transaction goes through, and commit/rollback/lock
// reconciliation against what sync observes on-chain.
package accounts

import (
	"fmt"

	"github.com/rollupkit/client/common"
	"github.com/rollupkit/client/store"
)

// Manager applies §4.4 transitions against a store.Tx, mirroring
// notes.Manager's shape: stateless, operating entirely through the Tx it
// is handed.
type Manager struct{}

func New() Manager {
	return Manager{}
}

// Create derives a deterministic account from a 32-byte seed and inserts
// it as a new account (nonce 0). Registering an id that is already
// tracked fails with common.ErrAccountAlreadyTracked.
func (Manager) Create(tx store.Tx, id common.AccountId, seed common.Hash, mode common.StorageMode, typ common.AccountType, updatable bool, vaultRoot, storageRoot, codeRoot common.Hash) error {
	if _, err := tx.AccountHeader(id); err == nil {
		return fmt.Errorf("%w: account %s", common.ErrAccountAlreadyTracked, id)
	}
	h := common.AccountHeader{
		Id:          id,
		StorageMode: mode,
		Type:        typ,
		Updatable:   updatable,
		Nonce:       0,
		VaultRoot:   vaultRoot,
		StorageRoot: storageRoot,
		CodeRoot:    codeRoot,
		Seed:        &seed,
		Commitment:  common.CommitAccount(id, 0, vaultRoot, storageRoot, codeRoot),
	}
	return tx.UpsertAccountHeader(h)
}

// BeginUpdate records the optimistic commitment of a locally built
// transaction as the account's provisional commitment, retaining the
// prior confirmed commitment (spec.md §4.4 Updating). Fails if the
// account is locked.
func (Manager) BeginUpdate(tx store.Tx, id common.AccountId, provisional common.Hash) error {
	h, err := tx.AccountHeader(id)
	if err != nil {
		return err
	}
	if h.Locked {
		return fmt.Errorf("%w: account %s", common.ErrAccountLocked, id)
	}
	h.ProvisionalCommitment = &provisional
	return tx.UpsertAccountHeader(h)
}

// Reconcile applies the commit/rollback/lock rule (spec.md §4.4) once
// sync observes the account's on-chain commitment. observed is the
// commitment the node attests to as of the synced block; nonce is the
// on-chain nonce at that block.
func (Manager) Reconcile(tx store.Tx, id common.AccountId, observed common.Hash, nonce uint64) error {
	h, err := tx.AccountHeader(id)
	if err != nil {
		return err
	}
	switch {
	case h.ProvisionalCommitment != nil && *h.ProvisionalCommitment == observed:
		// Our transaction committed: the provisional commitment becomes
		// confirmed, the prior one is discarded.
		h.Commitment = observed
		h.Nonce = nonce
		h.ProvisionalCommitment = nil
	case h.Commitment == observed:
		// No change yet, or our transaction was discarded before
		// landing: drop any stale provisional commitment.
		h.ProvisionalCommitment = nil
	default:
		h.Locked = true
	}
	return tx.UpsertAccountHeader(h)
}

// Lock marks an account locked directly, without comparing commitments.
// Client.LockAccount and the CLI's accounts lock command call it;
// SyncEngine does not (a discarded transaction goes through Rollback, and
// a commitment conflict is locked by Reconcile).
func (Manager) Lock(tx store.Tx, id common.AccountId) error {
	return tx.MarkAccountLocked(id)
}

// Rollback reverts an account to its pre-transaction commitment when
// SyncEngine discards a transaction (spec.md §4.5 step 5, §8 Optimistic
// rollback): the commitment reverts to exactly the value it held before
// the discarded transaction was built, and any pending provisional
// commitment for that transaction is dropped.
func (Manager) Rollback(tx store.Tx, id common.AccountId, previousCommitment common.Hash) error {
	h, err := tx.AccountHeader(id)
	if err != nil {
		return err
	}
	h.Commitment = previousCommitment
	h.ProvisionalCommitment = nil
	return tx.UpsertAccountHeader(h)
}
