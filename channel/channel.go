// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package channel

// Look describes how a channel's token is decorated on a colour terminal.
// Colours are ANSI codes ("1", "12", "244") or hex values ("#ff8800").
type Look struct {
	Foreground string
	Background string
	Bold       bool
}

// Channel is a static logging category.
type Channel struct {
	name      string
	verbosity int
	glyph     string
	ascii     string
	look      Look
}

// New creates a channel. The returned pointer is the channel's identity.
func New(name string, verbosity int, glyph, ascii string, look Look) *Channel {
	return &Channel{
		name:      name,
		verbosity: verbosity,
		glyph:     glyph,
		ascii:     ascii,
		look:      look,
	}
}

// Built-in channels.
var (
	Log   = New("log", 1, "···", "...", Look{Foreground: "7"})
	Left  = New("left", 1, "◀▬▬", "<--", Look{Foreground: "4"})
	Right = New("right", 1, "▬▬▶", "-->", Look{Foreground: "2"})
	Warn  = New("warn", 0, "  ✘", "  X", Look{Foreground: "0", Background: "1", Bold: true})
	Note  = New("note", 2, "  ℹ", "  i", Look{Foreground: "12"})
	Debug = New("debug", 0, "  ◇", "  D", Look{Foreground: "15"})
	Trace = New("trace", 7, "  ◌", "  .", Look{Foreground: "8"})
)

// Builtins returns the built-in channels.
func Builtins() []*Channel {
	return []*Channel{Log, Left, Right, Warn, Note, Debug, Trace}
}

// Name returns the channel name. It doubles as the sink tag.
func (c *Channel) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Verbosity returns the channel's fixed verbosity level.
func (c *Channel) Verbosity() int {
	if c == nil {
		return 0
	}
	return c.verbosity
}

// Look returns the channel's decoration.
func (c *Channel) Look() Look {
	if c == nil {
		return Look{}
	}
	return c.look
}

// Token returns the display token, unicode or plain ASCII.
func (c *Channel) Token(unicode bool) string {
	if c == nil {
		return ""
	}
	if unicode && c.glyph != "" {
		return c.glyph
	}
	return c.ascii
}

// String implements fmt.Stringer.
func (c *Channel) String() string {
	return c.Name()
}
