// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package gate decides whether a log channel emits.

A Gate holds two pieces of process-wide state: the global verbosity threshold
and a map of per-channel overrides. The decision for a channel is:

 1. if the channel has an override, the override wins (true forces emission
    even for very verbose channels, false silences the channel entirely);
 2. otherwise the channel emits when its verbosity is less than or equal to
    the threshold.

# Basic Usage

	g := gate.New(gate.DefaultVerbosity)

	g.ShouldEmit(channel.Note)             // 2 <= 5: true
	g.Overrides().Set(channel.Note, false) // force off
	g.ShouldEmit(channel.Note)             // false
	g.Overrides().Clear(channel.Note)      // back to threshold comparison

# Concurrency

The override map is guarded by a mutex; every read and write takes it for a
single map operation and never across I/O. The threshold is an atomic
integer, so a change made on one goroutine is visible to the next decision
on any other goroutine without locking.
*/
package gate
