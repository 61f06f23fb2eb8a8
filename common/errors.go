// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

// Sentinel errors for the error taxonomy. Call sites wrap these with
// fmt.Errorf("...: %w", ErrX) to attach context; comparisons use errors.Is.
const (
	// ErrStore is returned for any backend persistence failure. It is
	// never recovered from locally.
	ErrStore = ConstError("store: backend failure")

	// ErrRpc is returned for a failed NodeClient call.
	ErrRpc = ConstError("rpc: request failed")

	// ErrTimeout is returned when an RPC or prover call exceeds its
	// configured deadline.
	ErrTimeout = ConstError("timeout: call deadline exceeded")

	// ErrProverUnavailable is returned when a remote prover could not be
	// reached or rejected the job for a transient reason.
	ErrProverUnavailable = ConstError("prover: service unavailable")

	// ErrChainDiscontinuity is returned when a sync delta's headers do
	// not chain from the client's current tip.
	ErrChainDiscontinuity = ConstError("sync: chain discontinuity")

	// ErrProtocolViolation is returned when the node returns data that
	// cannot be reconciled under the sync protocol's invariants.
	ErrProtocolViolation = ConstError("sync: protocol violation")

	// ErrMissingAuthData is returned when an inclusion proof is
	// requested for a block whose authentication nodes were never
	// fetched into the ChainView.
	ErrMissingAuthData = ConstError("chainview: missing authentication data")

	// ErrAccountAlreadyTracked is returned when registering an account
	// whose id is already present in the store.
	ErrAccountAlreadyTracked = ConstError("account: already tracked")

	// ErrAccountLocked is returned when a write is attempted against an
	// account whose on-chain commitment diverged from local state.
	ErrAccountLocked = ConstError("account: locked")

	// ErrNotFound is returned when a lookup by id finds nothing.
	ErrNotFound = ConstError("not found")

	// ErrExecutionError is returned when the Executor rejects a
	// transaction request.
	ErrExecutionError = ConstError("execution: rejected")

	// ErrProofError is returned when the Prover rejects an executed
	// transaction.
	ErrProofError = ConstError("prove: rejected")

	// ErrSyncInProgress is returned when a sync is requested while
	// another sync is already running.
	ErrSyncInProgress = ConstError("sync: already in progress")
)
