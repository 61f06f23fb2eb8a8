// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package metrics exposes Prometheus instrumentation for the sync loop
// and transaction pipeline, so an embedding process can scrape operator
// visibility without the core packages depending on an HTTP server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SyncRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rollup_client_sync_runs_total",
			Help: "Total number of SyncEngine.Run calls by outcome",
		},
		[]string{"outcome"},
	)

	SyncRunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rollup_client_sync_run_duration_seconds",
			Help:    "Time taken by one SyncEngine.Run call",
			Buckets: prometheus.DefBuckets,
		},
	)

	SyncHeadersAppliedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rollup_client_sync_headers_applied_total",
			Help: "Total number of block headers appended to ChainView",
		},
	)

	SyncTipBlock = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rollup_client_sync_tip_block",
			Help: "Block number of the last synced cursor",
		},
	)

	TransactionsDiscardedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rollup_client_transactions_discarded_total",
			Help: "Total number of locally built transactions discarded by sync",
		},
	)

	NotesConsumedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rollup_client_notes_consumed_total",
			Help: "Total number of input notes consumed, by whether this client's build won the race",
		},
		[]string{"ours"},
	)

	PipelineSubmitDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rollup_client_pipeline_submit_duration_seconds",
			Help:    "Time taken by one TxPipeline stage",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"stage"},
	)

	PipelineSubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rollup_client_pipeline_submissions_total",
			Help: "Total number of transactions submitted by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(SyncRunsTotal)
	prometheus.MustRegister(SyncRunDuration)
	prometheus.MustRegister(SyncHeadersAppliedTotal)
	prometheus.MustRegister(SyncTipBlock)
	prometheus.MustRegister(TransactionsDiscardedTotal)
	prometheus.MustRegister(NotesConsumedTotal)
	prometheus.MustRegister(PipelineSubmitDuration)
	prometheus.MustRegister(PipelineSubmissionsTotal)
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer is a helper for timing a single operation against a histogram.
type Timer struct {
	start time.Time
}

func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) ObserveDuration(histogram prometheus.Histogram) {
	histogram.Observe(time.Since(t.start).Seconds())
}

func (t *Timer) ObserveDurationVec(histogram prometheus.ObserverVec, labels ...string) {
	histogram.WithLabelValues(labels...).Observe(time.Since(t.start).Seconds())
}
