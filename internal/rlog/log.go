// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package rlog is the client's logging helper: every message is tagged
// with the time elapsed since the process started, which makes sync
// runs separated by long idle gaps easy to tell apart in a log file.
package rlog

import (
	"fmt"
	"log"
	"time"
)

// Log is a logger customised for long-running client processes.
type Log struct {
	start  time.Time
	logger *log.Logger
}

// New creates a new logger whose elapsed-time clock starts now.
func New() *Log {
	return &Log{start: time.Now(), logger: log.Default()}
}

// Print logs a message prefixed with the time elapsed since the logger
// was created.
func (l *Log) Print(msg string) {
	now := time.Now()
	t := uint64(now.Sub(l.start).Seconds())
	l.logger.Printf("[t=%4d:%02d] - %s\n", t/60, t%60, msg)
}

// Printf logs a formatted message the same way Print does.
func (l *Log) Printf(format string, v ...any) {
	l.Print(fmt.Sprintf(format, v...))
}

// ProgressLogger tracks progress of a long-running task (e.g. catching
// up sync over many blocks) and logs a rate at regular intervals.
type ProgressLogger struct {
	log            *Log
	start          time.Time
	format         string
	window         int
	counter, steps int
}

// NewProgressTracker creates a ProgressLogger that logs every time the
// step counter advances by window.
func (l *Log) NewProgressTracker(format string, window int) *ProgressLogger {
	return &ProgressLogger{log: l, start: time.Now(), format: format, window: window}
}

// Step advances the progress counter by increment, logging once enough
// steps have accumulated to cross the configured window.
func (p *ProgressLogger) Step(increment int) {
	p.counter += increment
	p.steps += increment

	if p.steps >= p.window {
		now := time.Now()

		count := p.counter / p.window * p.window
		p.log.Printf(p.format, count, float64(p.steps)/now.Sub(p.start).Seconds())

		p.steps = 0
		p.start = now
	}
}

// GetCounter returns the current value of the progress counter.
func (p *ProgressLogger) GetCounter() int {
	return p.counter
}
