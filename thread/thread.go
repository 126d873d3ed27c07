// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package thread

import (
	"context"
	"runtime"
)

const (
	// Unknown is reported for threads that were never named.
	Unknown = "<unknown>"
	// MainName is the name of the main goroutine's handle.
	MainName = "main"
)

// Thread is the logging state of one goroutine. It must not be shared.
type Thread struct {
	name   string
	labels []string

	bound  bool
	osPrev string
}

// New creates a handle with the given display name.
func New(name string) *Thread {
	return &Thread{name: name}
}

var mainThread = New(MainName)

// Main returns the handle of the main goroutine. Only the main goroutine may use it.
func Main() *Thread {
	return mainThread
}

// Name returns the thread's display name.
func (t *Thread) Name() string {
	if t == nil {
		return Unknown
	}
	if t.bound {
		if name, err := osName(); err == nil && name != "" {
			return name
		}
	}
	if t.name == "" {
		return Unknown
	}
	return t.name
}

// SetName changes the display name. Later calls overwrite earlier ones.
// While bound, the OS thread is renamed too; failures there are ignored.
func (t *Thread) SetName(name string) {
	if t == nil {
		return
	}
	t.name = name
	if t.bound {
		_ = setOSName(name)
	}
}

// Bind locks the calling goroutine to its OS thread and names the OS thread
// after t. The goroutine calling Bind must be t's owner.
func (t *Thread) Bind() {
	if t == nil || t.bound {
		return
	}
	runtime.LockOSThread()
	t.bound = true
	t.osPrev, _ = osName()
	if t.name != "" {
		_ = setOSName(t.name)
	}
}

// Unbind restores the OS thread name seen by Bind and unlocks the goroutine.
func (t *Thread) Unbind() {
	if t == nil || !t.bound {
		return
	}
	if t.osPrev != "" {
		_ = setOSName(t.osPrev)
	}
	t.bound = false
	t.osPrev = ""
	runtime.UnlockOSThread()
}

// Bound reports whether t is locked to an OS thread.
func (t *Thread) Bound() bool {
	return t != nil && t.bound
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying t.
func NewContext(ctx context.Context, t *Thread) context.Context {
	return context.WithValue(ctx, contextKey{}, t)
}

// FromContext returns the thread carried by ctx, or nil.
// The nil handle is usable and reports Unknown.
func FromContext(ctx context.Context) *Thread {
	if ctx == nil {
		return nil
	}
	t, _ := ctx.Value(contextKey{}).(*Thread)
	return t
}
