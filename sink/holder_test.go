// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHolder_Install(t *testing.T) {
	t.Parallel()

	var first, second Capture
	h := NewHolder(first.Func())

	h.Emit("a", "log")
	prev := h.Install(second.Func())
	h.Emit("b", "log")

	assert.Equal(t, []string{"a"}, first.Lines())
	assert.Equal(t, []string{"b"}, second.Lines())

	prev("c", "log")
	assert.Equal(t, []string{"a", "c"}, first.Lines(), "Install returns the previously installed sink")
}

func TestHolder_Nil(t *testing.T) {
	t.Parallel()

	var h Holder
	assert.NotPanics(t, func() { h.Emit("dropped", "log") })
	assert.Nil(t, h.Install(nil))
	assert.NotPanics(t, func() { h.Emit("dropped", "log") })
	assert.NotNil(t, h.Load())
}

func TestHolder_ConcurrentInstall(t *testing.T) {
	t.Parallel()

	var c Capture
	h := NewHolder(c.Func())

	var wg sync.WaitGroup
	for range 4 {
		wg.Go(func() {
			for range 100 {
				h.Install(c.Func())
			}
		})
		wg.Go(func() {
			for range 100 {
				h.Emit("line", "log")
			}
		})
	}
	wg.Wait()

	assert.Equal(t, 400, c.Len())
}
