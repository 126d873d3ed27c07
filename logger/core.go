// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stacklok/devlog/channel"
	"github.com/stacklok/devlog/logging"
	"github.com/stacklok/devlog/thread"
)

const threadKey = "devlog.thread"

// Thread returns a field naming the thread an entry is emitted for. The
// field itself is never rendered.
func Thread(t *thread.Thread) zap.Field {
	return zap.Field{Key: threadKey, Type: zapcore.SkipType, Interface: t}
}

// ChannelForLevel maps a zap level onto a channel.
func ChannelForLevel(level zapcore.Level) *channel.Channel {
	switch {
	case level >= zapcore.WarnLevel:
		return channel.Warn
	case level >= zapcore.InfoLevel:
		return channel.Note
	default:
		return channel.Trace
	}
}

// Core is a zapcore.Core rendering entries as devlog lines.
type Core struct {
	logger *logging.Logger
	level  zapcore.LevelEnabler
	fields string
	thread *thread.Thread
}

var _ zapcore.Core = (*Core)(nil)

// NewCore creates a core emitting through l. Entries must pass both level
// and l's gate.
func NewCore(l *logging.Logger, level zapcore.LevelEnabler) *Core {
	return &Core{logger: l, level: level}
}

// Enabled implements zapcore.LevelEnabler.
func (c *Core) Enabled(level zapcore.Level) bool {
	return c.level.Enabled(level) && c.logger.Enabled(ChannelForLevel(level))
}

// With implements zapcore.Core.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	var b strings.Builder
	b.WriteString(c.fields)
	if t := writeFields(&b, fields); t != nil {
		clone.thread = t
	}
	clone.fields = b.String()
	return &clone
}

// Check implements zapcore.Core.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write implements zapcore.Core.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	var b strings.Builder
	if ent.LoggerName != "" {
		b.WriteString(ent.LoggerName)
		b.WriteString(": ")
	}
	b.WriteString(ent.Message)
	b.WriteString(c.fields)

	t := c.thread
	if ft := writeFields(&b, fields); ft != nil {
		t = ft
	}

	ln := c.logger.Line(t, ChannelForLevel(ent.Level))
	_, _ = ln.WriteString(b.String())
	ln.Flush()
	return nil
}

// Sync implements zapcore.Core.
func (*Core) Sync() error {
	return nil
}

// writeFields renders fields as " key=value" and returns the thread carried
// by a Thread field, if any.
func writeFields(b *strings.Builder, fields []zapcore.Field) *thread.Thread {
	var t *thread.Thread
	for _, f := range fields {
		if f.Key == threadKey {
			if ft, ok := f.Interface.(*thread.Thread); ok {
				t = ft
			}
			continue
		}

		enc := zapcore.NewMapObjectEncoder()
		f.AddTo(enc)
		keys := make([]string, 0, len(enc.Fields))
		for k := range enc.Fields {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			b.WriteByte(' ')
			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(quoteIfNeeded(fmt.Sprint(enc.Fields[k])))
		}
	}
	return t
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
