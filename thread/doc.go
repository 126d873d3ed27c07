// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package thread holds the per-thread half of logging state: a display name and
a stack of context labels that is prefixed into every line.

Go has no goroutine-local storage, so a Thread is an explicit handle owned by
exactly one goroutine. The owner creates it, carries it through a
context.Context and is the only code allowed to touch it. Nothing in this
package is synchronized.

# Naming

	t := thread.New("worker-1")
	t.Name() // "worker-1"

thread.Main returns the handle for the main goroutine, named "main". A nil
*Thread, or one created with an empty name, reports "<unknown>".

A handle may be bound to the OS thread it runs on. While bound, SetName also
sets the OS-level thread name (visible to ps, top and debuggers on Linux) and
Name prefers the name the OS reports:

	t.Bind()
	defer t.Unbind()

# Context Labels

	defer t.Scope("request-42")()

	err := t.Do("sync", func() error {
		// every line logged here carries |request-42|sync
		return sync()
	})

Scope and Do restore the stack to exactly the depth it had on entry, on every
exit path including panics. Pop on an empty stack is a no-op.

# Carrying a Thread

	ctx = thread.NewContext(ctx, t)
	...
	t := thread.FromContext(ctx)
*/
package thread
