// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package logging is the entry point of devlog: a channel-based developer
logger for multi-threaded programs.

A [Logger] ties together the verbosity gate, the prefix composer and the
installed sink. Every statement targets one channel and is emitted on
behalf of one thread handle; the finished line reaches the sink exactly
once, synchronously, on the calling goroutine.

# Defaults

  - Verbosity: 5 ([gate.DefaultVerbosity])
  - Sink: [sink.Stderr]
  - Palette: detected from the environment of [os.Stderr]
  - Tokens: unicode, ASCII on Windows
  - Auto-spacing: on

# Basic Usage

	l := logging.New()
	main := thread.Main()
	main.Push("startup")
	l.Line(main, channel.Note).Append("listening on", 8080).Flush()
	//   ℹ  14:03:07|main|startup  listening on 8080

Carry the thread handle in a context to use the shorthand helpers:

	ctx := thread.NewContext(context.Background(), thread.Main())
	l.Warnf(ctx, "retrying in %s", backoff)

# Configuration

Use functional options to customize the logger:

	l := logging.New(
		logging.WithVerbosity(7),
		logging.WithOutput(f),
		logging.WithUnicode(false),
	)

Verbosity and per-channel overrides may change at any time from any
goroutine:

	l.SetVerbosity(0)
	l.SetOverride(channel.Note, true)

# Testing

Install a capturing sink:

	var c sink.Capture
	l := logging.New(logging.WithSink(c.Func()), logging.WithPalette(style.Plain()))
	// inspect c.Lines()

# slog

[NewHandler] adapts a Logger to [log/slog]:

	slog.SetDefault(slog.New(logging.NewHandler(l)))
*/
package logging
