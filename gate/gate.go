// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package gate

import (
	"sync/atomic"

	"github.com/stacklok/devlog/channel"
)

// DefaultVerbosity is the threshold used when none is configured.
const DefaultVerbosity = 5

// Source says which rule produced a decision.
type Source int

const (
	// SourceThreshold means the channel verbosity was compared to the threshold.
	SourceThreshold Source = iota
	// SourceOverride means an override decided.
	SourceOverride
)

// String implements fmt.Stringer.
func (s Source) String() string {
	if s == SourceOverride {
		return "override"
	}
	return "threshold"
}

// Decision is the explained outcome of a gate check.
type Decision struct {
	Enabled bool
	Source  Source
}

// Gate combines the global verbosity threshold with per-channel overrides.
type Gate struct {
	threshold atomic.Int64
	overrides *Overrides
}

// New creates a gate with the given threshold and no overrides.
func New(verbosity int) *Gate {
	g := &Gate{overrides: NewOverrides()}
	g.threshold.Store(int64(verbosity))
	return g
}

// Verbosity returns the current threshold.
func (g *Gate) Verbosity() int {
	return int(g.threshold.Load())
}

// SetVerbosity changes the threshold. Any integer is valid.
func (g *Gate) SetVerbosity(v int) {
	g.threshold.Store(int64(v))
}

// Overrides returns the gate's override map.
func (g *Gate) Overrides() *Overrides {
	return g.overrides
}

// ShouldEmit reports whether ch emits under the current state.
// A nil channel never emits.
func (g *Gate) ShouldEmit(ch *channel.Channel) bool {
	return g.Decide(ch).Enabled
}

// Decide is ShouldEmit with the reason attached.
func (g *Gate) Decide(ch *channel.Channel) Decision {
	if ch == nil {
		return Decision{}
	}
	if enabled, ok := g.overrides.Get(ch); ok {
		return Decision{Enabled: enabled, Source: SourceOverride}
	}
	return Decision{Enabled: ch.Verbosity() <= g.Verbosity(), Source: SourceThreshold}
}
