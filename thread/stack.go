// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package thread

import (
	"slices"
	"strings"
)

// Push appends a context label.
func (t *Thread) Push(label string) {
	if t == nil {
		return
	}
	t.labels = append(t.labels, label)
}

// Pop removes the most recently pushed label. On an empty stack it does
// nothing and returns false.
func (t *Thread) Pop() bool {
	if t == nil || len(t.labels) == 0 {
		return false
	}
	t.labels[len(t.labels)-1] = ""
	t.labels = t.labels[:len(t.labels)-1]
	return true
}

// Depth returns the number of labels on the stack.
func (t *Thread) Depth() int {
	if t == nil {
		return 0
	}
	return len(t.labels)
}

// Labels returns a copy of the stack, oldest first.
func (t *Thread) Labels() []string {
	if t == nil {
		return nil
	}
	return slices.Clone(t.labels)
}

// Join renders the stack oldest first, each label preceded by sep.
// An empty stack renders as "".
func (t *Thread) Join(sep string) string {
	if t == nil || len(t.labels) == 0 {
		return ""
	}
	var b strings.Builder
	for _, label := range t.labels {
		b.WriteString(sep)
		b.WriteString(label)
	}
	return b.String()
}

// Scope pushes label and returns a function that restores the stack to the
// depth it had before the push. The function is idempotent; call it with defer.
func (t *Thread) Scope(label string) (restore func()) {
	depth := t.Depth()
	t.Push(label)
	done := false
	return func() {
		if done {
			return
		}
		done = true
		t.truncate(depth)
	}
}

// Do runs fn with label pushed. The stack is restored however fn exits,
// including by panic, which keeps propagating.
func (t *Thread) Do(label string, fn func() error) error {
	defer t.Scope(label)()
	return fn()
}

func (t *Thread) truncate(depth int) {
	if t == nil || depth >= len(t.labels) {
		return
	}
	clear(t.labels[depth:])
	t.labels = t.labels[:depth]
}
