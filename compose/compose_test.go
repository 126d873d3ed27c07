// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package compose

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stacklok/devlog/channel"
	"github.com/stacklok/devlog/style"
	"github.com/stacklok/devlog/thread"
)

func fixedClock() time.Time {
	return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
}

func TestPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		channel *channel.Channel
		thread  func() *thread.Thread
		unicode bool
		want    string
	}{
		{
			name:    "no context",
			channel: channel.Note,
			thread:  func() *thread.Thread { return thread.New("main") },
			want:    "  i  09:26:53|main  ",
		},
		{
			name:    "nested context",
			channel: channel.Warn,
			thread: func() *thread.Thread {
				th := thread.New("worker")
				th.Push("a")
				th.Push("b")
				return th
			},
			want: "  X  09:26:53|worker|a|b  ",
		},
		{
			name:    "unicode token",
			channel: channel.Right,
			thread:  func() *thread.Thread { return thread.New("io") },
			unicode: true,
			want:    "▬▬▶  09:26:53|io  ",
		},
		{
			name:    "unnamed thread",
			channel: channel.Log,
			thread:  func() *thread.Thread { return nil },
			want:    "...  09:26:53|<unknown>  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := New(WithClock(fixedClock), WithPalette(style.Plain()), WithUnicode(tt.unicode))
			assert.Equal(t, tt.want, c.Prefix(tt.channel, tt.thread()))
		})
	}
}

func TestPrefix_ZeroTime(t *testing.T) {
	t.Parallel()

	c := New(WithClock(func() time.Time { return time.Time{} }), WithUnicode(false))
	assert.Equal(t, "...  |main  ", c.Prefix(channel.Log, thread.New("main")))
}

func TestPrefix_Colored(t *testing.T) {
	t.Parallel()

	th := thread.New("main")
	th.Push("ctx")

	c := New(WithClock(fixedClock), WithPalette(style.ANSI()), WithUnicode(false))
	got := c.Prefix(channel.Warn, th)

	assert.Contains(t, got, "\x1b[")
	assert.Contains(t, got, "09:26:53")
	assert.Contains(t, got, "main")
	assert.Contains(t, got, "ctx")
	assert.True(t, strings.HasSuffix(got, "\x1b[0m  "))
	assert.Less(t, strings.Index(got, "09:26:53"), strings.Index(got, "main"))
	assert.Less(t, strings.Index(got, "main"), strings.Index(got, "ctx"))
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	c := New(WithClock(nil), WithPalette(nil))
	assert.NotNil(t, c.clock)
	assert.True(t, c.Palette().Colorless())
	assert.Equal(t, DefaultUnicode(), c.Unicode())
}

func TestFormatTime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "23:05:09", FormatTime(time.Date(2024, 1, 1, 23, 5, 9, 0, time.Local)))
	assert.Empty(t, FormatTime(time.Time{}))
}
