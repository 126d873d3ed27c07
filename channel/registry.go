// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package channel

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	namevalidation "github.com/stacklok/devlog/validation/channel"
)

var (
	// ErrDuplicateName is returned when a different channel already uses a name.
	ErrDuplicateName = errors.New("channel name already registered")

	// ErrUnknown is returned when a name does not resolve to a channel.
	ErrUnknown = errors.New("unknown channel")
)

// Registry maps channel names to channel identities.
// It is safe for concurrent use from multiple goroutines.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*Channel
}

// NewRegistry creates a registry holding the given channels.
func NewRegistry(chs ...*Channel) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Channel, len(chs))}
	if err := r.Register(chs...); err != nil {
		return nil, err
	}
	return r, nil
}

// Default is the process-wide registry. It starts with the built-in channels.
var Default = mustRegistry(Builtins()...)

func mustRegistry(chs ...*Channel) *Registry {
	r, err := NewRegistry(chs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Register adds channels to the registry. Registering the same channel twice
// is a no-op; registering a different channel under a taken name fails.
func (r *Registry) Register(chs ...*Channel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ch := range chs {
		if ch == nil {
			return fmt.Errorf("%w: nil channel", ErrUnknown)
		}
		if err := namevalidation.ValidateName(ch.name); err != nil {
			return err
		}
		if existing, ok := r.byName[ch.name]; ok {
			if existing == ch {
				continue
			}
			return fmt.Errorf("%w: %q", ErrDuplicateName, ch.name)
		}
		r.byName[ch.name] = ch
	}
	return nil
}

// Lookup returns the channel registered under name.
func (r *Registry) Lookup(name string) (*Channel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ch, ok := r.byName[name]
	return ch, ok
}

// Resolve is like Lookup but returns ErrUnknown for missing names.
func (r *Registry) Resolve(name string) (*Channel, error) {
	if ch, ok := r.Lookup(name); ok {
		return ch, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// All returns every registered channel ordered by verbosity, then name.
func (r *Registry) All() []*Channel {
	r.mu.RLock()
	out := make([]*Channel, 0, len(r.byName))
	for _, ch := range r.byName {
		out = append(out, ch)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b *Channel) int {
		if c := cmp.Compare(a.verbosity, b.verbosity); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})
	return out
}

// Register adds channels to the Default registry.
func Register(chs ...*Channel) error {
	return Default.Register(chs...)
}

// MustRegister is like Register but panics on error. Meant for init functions.
func MustRegister(chs ...*Channel) {
	if err := Register(chs...); err != nil {
		panic(err)
	}
}
