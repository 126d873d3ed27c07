// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package channel defines log channels: static logging categories with a fixed
verbosity level and a display token.

A channel's identity is its pointer. Channels are created once, at package
initialization, and live for the whole process, which makes *Channel a
stable, comparable key for override maps.

# Built-in Channels

	channel.Log    // verbosity 1, "···"
	channel.Left   // verbosity 1, "◀▬▬" (inbound traffic)
	channel.Right  // verbosity 1, "▬▬▶" (outbound traffic)
	channel.Warn   // verbosity 0, "  ✘"
	channel.Note   // verbosity 2, "  ℹ"
	channel.Debug  // verbosity 0, "  ◇"
	channel.Trace  // verbosity 7, "  ◌"

A channel emits by default when its verbosity is less than or equal to the
global threshold, so lower numbers are louder.

# Custom Channels

	var Sync = channel.New("sync", 4, "  ⟳", "  S", channel.Look{Foreground: "5"})

	func init() {
		channel.MustRegister(Sync)
	}

Registering a channel makes it addressable by name from configuration files,
environment variables and the admin API.
*/
package channel
