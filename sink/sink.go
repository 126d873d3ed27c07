// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"io"
	"os"
	"runtime"
	"sync/atomic"
)

// Func receives one finished line and the name of its channel.
type Func func(line, tag string)

// Discard drops every line.
func Discard(string, string) {}

// SpinLock is a minimal busy-waiting lock. The critical sections it guards
// are a single Write call, so waiting goroutines yield instead of parking.
type SpinLock struct {
	held atomic.Bool
}

// Lock acquires the lock.
func (l *SpinLock) Lock() {
	for !l.held.CompareAndSwap(false, true) {
		runtime.Gosched()
	}
}

// TryLock acquires the lock if it is free.
func (l *SpinLock) TryLock() bool {
	return l.held.CompareAndSwap(false, true)
}

// Unlock releases the lock.
func (l *SpinLock) Unlock() {
	l.held.Store(false)
}

var (
	stderrLock SpinLock
	stderrOut  io.Writer = os.Stderr
)

// Stderr returns the default sink writing to os.Stderr. Every Stderr sink
// shares one process-wide lock.
func Stderr() Func {
	return writeTo(stderrOut, &stderrLock)
}

// Writer returns a sink writing newline-terminated lines to w. Lines are
// serialized by a lock owned by the returned sink.
func Writer(w io.Writer) Func {
	return writeTo(w, new(SpinLock))
}

type flusher interface {
	Flush() error
}

func writeTo(w io.Writer, lock *SpinLock) Func {
	f, canFlush := w.(flusher)
	return func(line, _ string) {
		buf := make([]byte, 0, len(line)+1)
		buf = append(buf, line...)
		buf = append(buf, '\n')

		lock.Lock()
		defer lock.Unlock()
		_, _ = w.Write(buf)
		if canFlush {
			_ = f.Flush()
		}
	}
}

// Safe wraps fn so that a panic inside it is swallowed. A nil fn yields
// Discard.
func Safe(fn Func) Func {
	if fn == nil {
		return Discard
	}
	return func(line, tag string) {
		defer func() {
			_ = recover()
		}()
		fn(line, tag)
	}
}

// Tee returns a sink handing every line to each of fns in order. Nil
// entries are skipped.
func Tee(fns ...Func) Func {
	targets := make([]Func, 0, len(fns))
	for _, fn := range fns {
		if fn != nil {
			targets = append(targets, fn)
		}
	}
	switch len(targets) {
	case 0:
		return Discard
	case 1:
		return targets[0]
	}
	return func(line, tag string) {
		for _, fn := range targets {
			fn(line, tag)
		}
	}
}
