// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/stacklok/devlog/channel"
)

// Frame colours.
const (
	timeColor      = "5" // violet
	separatorColor = "8" // dark gray
	threadColor    = "4" // navy
	contextColor   = "6" // teal
)

// Frame holds the pre-rendered pieces placed between prefix fields.
type Frame struct {
	Begin      string // between token and time
	ThreadSep  string // between time and thread name
	ContextSep string // before every context label
	End        string // between prefix and body
}

// Palette renders tokens and frames for one colour profile.
type Palette struct {
	renderer *lipgloss.Renderer
	profile  termenv.Profile
	frame    Frame
}

// New creates a palette for the given colour profile.
func New(profile termenv.Profile) *Palette {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)

	p := &Palette{renderer: r, profile: profile}
	p.frame = Frame{
		Begin:      "  " + p.open(timeColor),
		ThreadSep:  p.Reset() + p.open(separatorColor) + "|" + p.open(threadColor),
		ContextSep: p.Reset() + p.open(separatorColor) + "|" + p.open(contextColor),
		End:        p.Reset() + "  ",
	}
	return p
}

// Plain returns a palette that emits no escape sequences.
func Plain() *Palette {
	return New(termenv.Ascii)
}

// ANSI returns a 256-colour palette regardless of the environment.
func ANSI() *Palette {
	return New(termenv.ANSI256)
}

// Detect returns a palette matching what w can display.
func Detect(w io.Writer) *Palette {
	return New(termenv.NewOutput(w).EnvColorProfile())
}

// Colorless reports whether the palette emits no escape sequences.
func (p *Palette) Colorless() bool {
	return p.profile == termenv.Ascii
}

// Frame returns the frame pieces.
func (p *Palette) Frame() Frame {
	return p.frame
}

// Reset returns the sequence that clears all styling.
func (p *Palette) Reset() string {
	if p.Colorless() {
		return ""
	}
	return termenv.CSI + termenv.ResetSeq + "m"
}

// Token renders a channel's display token with the channel's look.
func (p *Palette) Token(ch *channel.Channel, unicode bool) string {
	token := ch.Token(unicode)
	if p.Colorless() || token == "" {
		return token
	}

	look := ch.Look()
	s := p.renderer.NewStyle()
	if look.Foreground != "" {
		s = s.Foreground(lipgloss.Color(look.Foreground))
	}
	if look.Background != "" {
		s = s.Background(lipgloss.Color(look.Background))
	}
	if look.Bold {
		s = s.Bold(true)
	}
	return s.Render(token)
}

// open returns the raw sequence that starts a foreground colour. Unlike a
// lipgloss style it leaves the colour active for the text that follows.
func (p *Palette) open(color string) string {
	if p.Colorless() {
		return ""
	}
	c := p.profile.Color(color)
	if c == nil {
		return ""
	}
	seq := c.Sequence(false)
	if seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}
