// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/stacklok/devlog/channel"
	"github.com/stacklok/devlog/thread"
)

// Handler is a [log/slog.Handler] emitting records through a Logger.
// Warn and above go to [channel.Warn], Info to [channel.Note] and anything
// lower to [channel.Trace]. Attributes follow the message as " key=value".
// The record time is ignored; the Logger's clock stamps the line.
type Handler struct {
	logger *Logger
	attrs  string
	group  string
}

var _ slog.Handler = (*Handler)(nil)

// NewHandler creates a Handler for l.
func NewHandler(l *Logger) *Handler {
	return &Handler{logger: l}
}

// ChannelForLevel maps a slog level onto a channel.
func ChannelForLevel(level slog.Level) *channel.Channel {
	switch {
	case level >= slog.LevelWarn:
		return channel.Warn
	case level >= slog.LevelInfo:
		return channel.Note
	default:
		return channel.Trace
	}
}

// Enabled implements [log/slog.Handler].
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.Enabled(ChannelForLevel(level))
}

// Handle implements [log/slog.Handler].
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	ln := h.logger.Line(thread.FromContext(ctx), ChannelForLevel(r.Level))
	if !ln.Enabled() {
		return nil
	}

	var b strings.Builder
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.group, a)
		return true
	})
	_, _ = ln.WriteString(b.String())
	ln.Flush()
	return nil
}

// WithAttrs implements [log/slog.Handler].
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		writeAttr(&b, h.group, a)
	}
	return &Handler{logger: h.logger, attrs: b.String(), group: h.group}
}

// WithGroup implements [log/slog.Handler].
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &Handler{logger: h.logger, attrs: h.attrs, group: h.group + name + "."}
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		nested := prefix
		if a.Key != "" {
			nested = prefix + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			writeAttr(b, nested, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(quoteIfNeeded(formatValue(a.Value)))
}

func formatValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindTime:
		return v.Time().Format(time.RFC3339)
	case slog.KindDuration:
		return v.Duration().String()
	default:
		return v.String()
	}
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
