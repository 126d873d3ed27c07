// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package gate

import (
	"maps"
	"sync"

	"github.com/stacklok/devlog/channel"
)

// Overrides maps channels to a forced enabled/disabled state.
// It is safe for concurrent use from multiple goroutines.
type Overrides struct {
	mu sync.Mutex
	m  map[*channel.Channel]bool
}

// NewOverrides creates an empty override map.
func NewOverrides() *Overrides {
	return &Overrides{m: make(map[*channel.Channel]bool)}
}

// Set forces ch on (true) or off (false).
func (o *Overrides) Set(ch *channel.Channel, enabled bool) {
	if ch == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.m[ch] = enabled
}

// Clear removes the override for ch, if any.
func (o *Overrides) Clear(ch *channel.Channel) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.m, ch)
}

// Get returns the override for ch. ok is false when ch has none.
func (o *Overrides) Get(ch *channel.Channel) (enabled, ok bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	enabled, ok = o.m[ch]
	return enabled, ok
}

// Replace swaps the whole override set in one step, so readers never observe
// a half-applied configuration.
func (o *Overrides) Replace(m map[*channel.Channel]bool) {
	next := make(map[*channel.Channel]bool, len(m))
	for ch, enabled := range m {
		if ch != nil {
			next[ch] = enabled
		}
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.m = next
}

// Reset removes every override.
func (o *Overrides) Reset() {
	o.Replace(nil)
}

// Snapshot returns a copy of the current overrides.
func (o *Overrides) Snapshot() map[*channel.Channel]bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return maps.Clone(o.m)
}

// Len returns the number of overrides.
func (o *Overrides) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.m)
}
