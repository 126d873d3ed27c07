// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package style renders the decoration around a log line prefix: the coloured
channel token and the coloured frame between time, thread name and context
labels.

Decoration is purely visual. A Plain palette renders the same structure with
no escape sequences at all, which is what tests and non-terminal sinks use:

	p := style.Plain()
	p.Token(channel.Warn, false) // "  X"

Detect picks a colour profile from the environment of a writer (NO_COLOR,
CLICOLOR_FORCE, TERM and whether it is a terminal):

	p := style.Detect(os.Stderr)
*/
package style
