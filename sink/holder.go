// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package sink

import "sync/atomic"

// Holder stores the currently installed sink.
type Holder struct {
	current atomic.Pointer[Func]
}

// NewHolder creates a holder with fn installed.
func NewHolder(fn Func) *Holder {
	h := &Holder{}
	h.Install(fn)
	return h
}

// Install replaces the current sink and returns the previous one. A nil fn
// installs Discard.
func (h *Holder) Install(fn Func) Func {
	if fn == nil {
		fn = Discard
	}
	prev := h.current.Swap(&fn)
	if prev == nil {
		return nil
	}
	return *prev
}

// Load returns the current sink, Discard when none is installed.
func (h *Holder) Load() Func {
	if p := h.current.Load(); p != nil {
		return *p
	}
	return Discard
}

// Emit hands line to the current sink.
func (h *Holder) Emit(line, tag string) {
	h.Load()(line, tag)
}
