// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"fmt"
	"strings"

	"github.com/stacklok/devlog/channel"
)

// disabledLine is returned for gated-off statements. It is never mutated.
var disabledLine = &Line{}

// Line is one in-flight log statement. It belongs to the goroutine that
// created it and reaches the sink at most once.
type Line struct {
	logger    *Logger
	ch        *channel.Channel
	buf       strings.Builder
	enabled   bool
	autospace bool
	flushed   bool
}

// Enabled reports whether the line will be emitted.
func (ln *Line) Enabled() bool {
	return ln.enabled
}

// Append writes each value in its default format. With auto-spacing on, a
// space is inserted before a value unless the line already ends in one.
func (ln *Line) Append(values ...any) *Line {
	if !ln.enabled {
		return ln
	}
	for _, v := range values {
		ln.space()
		fmt.Fprint(&ln.buf, v)
	}
	return ln
}

// Appendf writes a formatted value, spaced like Append.
func (ln *Line) Appendf(format string, args ...any) *Line {
	if !ln.enabled {
		return ln
	}
	ln.space()
	fmt.Fprintf(&ln.buf, format, args...)
	return ln
}

// Write appends p verbatim. It implements [io.Writer].
func (ln *Line) Write(p []byte) (int, error) {
	if ln.enabled {
		ln.buf.Write(p)
	}
	return len(p), nil
}

// WriteString appends s verbatim.
func (ln *Line) WriteString(s string) (int, error) {
	if ln.enabled {
		ln.buf.WriteString(s)
	}
	return len(s), nil
}

// String returns the line as rendered so far, prefix included.
func (ln *Line) String() string {
	return ln.buf.String()
}

// Flush hands the line to the sink. Only the first call has an effect.
func (ln *Line) Flush() {
	if !ln.enabled || ln.flushed {
		return
	}
	ln.flushed = true
	ln.logger.sinks.Emit(ln.buf.String(), ln.ch.Name())
}

func (ln *Line) space() {
	if !ln.autospace {
		return
	}
	if n := ln.buf.Len(); n > 0 && ln.buf.String()[n-1] != ' ' {
		ln.buf.WriteByte(' ')
	}
}
