// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/stacklok/devlog/channel"
	"github.com/stacklok/devlog/compose"
	"github.com/stacklok/devlog/gate"
	"github.com/stacklok/devlog/sink"
	"github.com/stacklok/devlog/style"
	"github.com/stacklok/devlog/thread"
)

// config holds the resolved configuration for creating a logger.
type config struct {
	verbosity int
	sink      sink.Func
	output    io.Writer
	clock     compose.Clock
	palette   *style.Palette
	unicode   *bool
	autospace bool
	registry  *channel.Registry
}

// Option configures the logger created by [New].
type Option func(*config)

// WithVerbosity sets the initial verbosity threshold.
// The default is [gate.DefaultVerbosity].
func WithVerbosity(v int) Option {
	return func(c *config) {
		c.verbosity = v
	}
}

// WithSink sets the sink receiving finished lines. It takes precedence over
// [WithOutput].
func WithSink(fn sink.Func) Option {
	return func(c *config) {
		c.sink = fn
	}
}

// WithOutput writes lines to w through [sink.Writer].
// The default is [sink.Stderr].
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// WithClock sets the time source used for line prefixes.
func WithClock(clock compose.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithPalette sets the palette. Without it the palette is detected from the
// output writer, and is plain for custom sinks.
func WithPalette(p *style.Palette) Option {
	return func(c *config) {
		c.palette = p
	}
}

// WithUnicode selects unicode or ASCII channel tokens.
func WithUnicode(unicode bool) Option {
	return func(c *config) {
		c.unicode = &unicode
	}
}

// WithAutoSpacing controls whether consecutive Append values are separated
// by a space. The default is true.
func WithAutoSpacing(on bool) Option {
	return func(c *config) {
		c.autospace = on
	}
}

// WithRegistry sets the channel registry used to resolve channel names.
// The default is [channel.Default].
func WithRegistry(r *channel.Registry) Option {
	return func(c *config) {
		c.registry = r
	}
}

// Logger is the process-wide logging configuration object. All methods are
// safe for concurrent use.
type Logger struct {
	gate      *gate.Gate
	composer  *compose.Composer
	sinks     *sink.Holder
	registry  *channel.Registry
	autospace bool
}

// New creates a Logger.
func New(opts ...Option) *Logger {
	cfg := &config{
		verbosity: gate.DefaultVerbosity,
		autospace: true,
		registry:  channel.Default,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	fn := cfg.sink
	palette := cfg.palette
	switch {
	case fn != nil:
		if palette == nil {
			palette = style.Plain()
		}
	case cfg.output != nil:
		fn = sink.Writer(cfg.output)
		if palette == nil {
			palette = style.Detect(cfg.output)
		}
	default:
		fn = sink.Stderr()
		if palette == nil {
			palette = style.Detect(os.Stderr)
		}
	}

	composerOpts := []compose.Option{
		compose.WithPalette(palette),
		compose.WithClock(cfg.clock),
	}
	if cfg.unicode != nil {
		composerOpts = append(composerOpts, compose.WithUnicode(*cfg.unicode))
	}

	registry := cfg.registry
	if registry == nil {
		registry = channel.Default
	}

	return &Logger{
		gate:      gate.New(cfg.verbosity),
		composer:  compose.New(composerOpts...),
		sinks:     sink.NewHolder(sink.Safe(fn)),
		registry:  registry,
		autospace: cfg.autospace,
	}
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New())
}

// Default returns the process-wide logger.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger. A nil logger is ignored.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

// Verbosity returns the current threshold.
func (l *Logger) Verbosity() int {
	return l.gate.Verbosity()
}

// SetVerbosity changes the threshold. It is visible to all goroutines on
// their next emission.
func (l *Logger) SetVerbosity(v int) {
	l.gate.SetVerbosity(v)
}

// SetOverride forces ch on or off regardless of the threshold.
func (l *Logger) SetOverride(ch *channel.Channel, enabled bool) {
	l.gate.Overrides().Set(ch, enabled)
}

// ClearOverride returns ch to threshold comparison.
func (l *Logger) ClearOverride(ch *channel.Channel) {
	l.gate.Overrides().Clear(ch)
}

// Gate returns the logger's gate.
func (l *Logger) Gate() *gate.Gate {
	return l.gate
}

// Registry returns the registry used to resolve channel names.
func (l *Logger) Registry() *channel.Registry {
	return l.registry
}

// Composer returns the prefix composer.
func (l *Logger) Composer() *compose.Composer {
	return l.composer
}

// InstallSink replaces the sink and returns the previous one. Panics raised
// by fn never reach the emitting goroutine. Installing nil discards output.
func (l *Logger) InstallSink(fn sink.Func) sink.Func {
	return l.sinks.Install(sink.Safe(fn))
}

// Enabled reports whether a line on ch would currently be emitted.
func (l *Logger) Enabled(ch *channel.Channel) bool {
	return l.gate.ShouldEmit(ch)
}

// Line starts a line on ch for thread t. The gate is consulted once, here;
// a disabled line ignores everything written to it.
func (l *Logger) Line(t *thread.Thread, ch *channel.Channel) *Line {
	if !l.gate.ShouldEmit(ch) {
		return disabledLine
	}
	ln := &Line{logger: l, ch: ch, enabled: true, autospace: l.autospace}
	ln.buf.WriteString(l.composer.Prefix(ch, t))
	return ln
}

// Log emits args on ch for the thread carried by ctx.
func (l *Logger) Log(ctx context.Context, ch *channel.Channel, args ...any) {
	l.Line(thread.FromContext(ctx), ch).Append(args...).Flush()
}

// Logf emits a formatted line on ch for the thread carried by ctx.
func (l *Logger) Logf(ctx context.Context, ch *channel.Channel, format string, args ...any) {
	ln := l.Line(thread.FromContext(ctx), ch)
	if ln.enabled {
		fmt.Fprintf(&ln.buf, format, args...)
	}
	ln.Flush()
}

// Warnf emits on [channel.Warn].
func (l *Logger) Warnf(ctx context.Context, format string, args ...any) {
	l.Logf(ctx, channel.Warn, format, args...)
}

// Notef emits on [channel.Note].
func (l *Logger) Notef(ctx context.Context, format string, args ...any) {
	l.Logf(ctx, channel.Note, format, args...)
}

// Debugf emits on [channel.Debug].
func (l *Logger) Debugf(ctx context.Context, format string, args ...any) {
	l.Logf(ctx, channel.Debug, format, args...)
}

// Tracef emits on [channel.Trace].
func (l *Logger) Tracef(ctx context.Context, format string, args ...any) {
	l.Logf(ctx, channel.Trace, format, args...)
}
