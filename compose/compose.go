// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package compose

import (
	"runtime"
	"strings"
	"time"

	"github.com/stacklok/devlog/channel"
	"github.com/stacklok/devlog/style"
	"github.com/stacklok/devlog/thread"
)

// TimeLayout is the 24-hour wall-clock layout used in prefixes.
const TimeLayout = "15:04:05"

// Clock supplies the time stamped on each line.
type Clock func() time.Time

// Composer renders line prefixes. It is immutable after New and safe for
// concurrent use.
type Composer struct {
	clock   Clock
	palette *style.Palette
	unicode bool
}

// Option configures a Composer.
type Option func(*Composer)

// WithClock sets the time source.
func WithClock(clock Clock) Option {
	return func(c *Composer) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithPalette sets the palette used for tokens and frame colours.
func WithPalette(p *style.Palette) Option {
	return func(c *Composer) {
		if p != nil {
			c.palette = p
		}
	}
}

// WithUnicode selects unicode (true) or ASCII (false) channel tokens.
func WithUnicode(unicode bool) Option {
	return func(c *Composer) {
		c.unicode = unicode
	}
}

// New creates a Composer. By default it uses the local wall clock, a plain
// palette and the platform's token set.
func New(opts ...Option) *Composer {
	c := &Composer{
		clock:   time.Now,
		palette: style.Plain(),
		unicode: DefaultUnicode(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultUnicode reports whether the platform gets unicode tokens.
func DefaultUnicode() bool {
	return runtime.GOOS != "windows"
}

// Unicode reports whether the composer renders unicode tokens.
func (c *Composer) Unicode() bool {
	return c.unicode
}

// Palette returns the composer's palette.
func (c *Composer) Palette() *style.Palette {
	return c.palette
}

// FormatTime renders t with TimeLayout. The zero time renders as "".
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimeLayout)
}

// Prefix renders the prefix for a line on ch emitted by t.
func (c *Composer) Prefix(ch *channel.Channel, t *thread.Thread) string {
	f := c.palette.Frame()

	var b strings.Builder
	b.WriteString(c.palette.Token(ch, c.unicode))
	b.WriteString(f.Begin)
	b.WriteString(FormatTime(c.clock()))
	b.WriteString(f.ThreadSep)
	b.WriteString(t.Name())
	b.WriteString(t.Join(f.ContextSep))
	b.WriteString(f.End)
	return b.String()
}
