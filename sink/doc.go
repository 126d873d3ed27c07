// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package sink defines where finished log lines go.

A sink is a plain function receiving one fully formatted line (no trailing
newline) and the name of the channel that produced it. Sinks never report
failures to the caller.

# Writers

Stderr is the default sink. It serializes every line behind one
process-wide spin lock and writes the line and its newline in a single
Write call, so lines from concurrent goroutines never interleave. Writer
does the same for an arbitrary io.Writer with its own lock:

	f, _ := os.Create("trace.log")
	fn := sink.Writer(f)

File wraps Writer around a size rotated file and strips color sequences
on the way in.

# Swapping

A Holder stores the currently installed sink. Install is last-write-wins:
emissions already in flight may still reach the previous sink.

# Composition

Tee fans a line out to several sinks, Safe shields the caller from a
panicking sink, Capture records lines for tests and Broadcast republishes
lines to any number of subscribers without ever blocking the emitter.
*/
package sink
