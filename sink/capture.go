// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package sink

import "sync"

// Entry is one line received by a sink.
type Entry struct {
	Line string `json:"line"`
	Tag  string `json:"tag"`
}

// Capture records every line it receives. It is safe for concurrent use.
type Capture struct {
	mu      sync.Mutex
	entries []Entry
}

// Func returns the sink feeding the capture.
func (c *Capture) Func() Func {
	return func(line, tag string) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.entries = append(c.entries, Entry{Line: line, Tag: tag})
	}
}

// Entries returns a copy of the recorded entries in arrival order.
func (c *Capture) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lines returns the recorded lines in arrival order.
func (c *Capture) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Line
	}
	return out
}

// Len returns the number of recorded entries.
func (c *Capture) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Reset drops every recorded entry.
func (c *Capture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}
