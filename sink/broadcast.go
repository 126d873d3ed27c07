// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"sync"
	"sync/atomic"
)

// DefaultBuffer is the subscription buffer used when Subscribe is given a
// non-positive size.
const DefaultBuffer = 64

// Broadcast republishes lines to subscribers. Publishing never blocks: a
// subscriber whose buffer is full misses the line and the drop is counted.
type Broadcast struct {
	mu      sync.RWMutex
	subs    map[*subscription]struct{}
	dropped atomic.Uint64
}

type subscription struct {
	ch   chan Entry
	once sync.Once
}

// NewBroadcast creates a broadcast with no subscribers.
func NewBroadcast() *Broadcast {
	return &Broadcast{subs: make(map[*subscription]struct{})}
}

// Subscribe registers a subscriber. The returned cancel function removes
// the subscription and closes the channel; it may be called more than once.
func (b *Broadcast) Subscribe(buffer int) (<-chan Entry, func()) {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	s := &subscription{ch: make(chan Entry, buffer)}

	b.mu.Lock()
	b.subs[s] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		s.once.Do(func() {
			b.mu.Lock()
			delete(b.subs, s)
			close(s.ch)
			b.mu.Unlock()
		})
	}
	return s.ch, cancel
}

// Publish delivers a line to every subscriber with room for it.
func (b *Broadcast) Publish(line, tag string) {
	e := Entry{Line: line, Tag: tag}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for s := range b.subs {
		select {
		case s.ch <- e:
		default:
			b.dropped.Add(1)
		}
	}
}

// Func returns Publish as a sink.
func (b *Broadcast) Func() Func {
	return b.Publish
}

// Subscribers returns the number of active subscriptions.
func (b *Broadcast) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Dropped returns how many deliveries were skipped because a subscriber's
// buffer was full.
func (b *Broadcast) Dropped() uint64 {
	return b.dropped.Load()
}
