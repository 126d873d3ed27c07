// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package gate

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stacklok/devlog/channel"
)

func TestGate_ShouldEmit_Threshold(t *testing.T) {
	t.Parallel()

	values := []int{math.MinInt32, -3, -1, 0, 1, 2, 5, 9, math.MaxInt32}

	for _, v := range values {
		for _, threshold := range values {
			t.Run(fmt.Sprintf("v=%d,t=%d", v, threshold), func(t *testing.T) {
				t.Parallel()
				g := New(threshold)
				ch := channel.New("probe", v, "", "?", channel.Look{})
				assert.Equal(t, v <= threshold, g.ShouldEmit(ch))
			})
		}
	}
}

func TestGate_ShouldEmit_Override(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		verbosity int
		threshold int
		override  bool
	}{
		{"force on above threshold", 9, 0, true},
		{"force on at minimum threshold", 1, math.MinInt32, true},
		{"force off below threshold", 0, 9, false},
		{"force off at very low verbosity", math.MinInt32, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := New(tt.threshold)
			ch := channel.New("probe", tt.verbosity, "", "?", channel.Look{})
			baseline := g.ShouldEmit(ch)

			g.Overrides().Set(ch, tt.override)
			assert.Equal(t, tt.override, g.ShouldEmit(ch))
			assert.Equal(t, SourceOverride, g.Decide(ch).Source)

			g.Overrides().Clear(ch)
			assert.Equal(t, baseline, g.ShouldEmit(ch), "clearing restores threshold behaviour")
			assert.Equal(t, SourceThreshold, g.Decide(ch).Source)
		})
	}
}

func TestGate_OverrideIsPerChannel(t *testing.T) {
	t.Parallel()

	g := New(DefaultVerbosity)
	g.Overrides().Set(channel.Note, false)

	assert.False(t, g.ShouldEmit(channel.Note))
	assert.True(t, g.ShouldEmit(channel.Log))
}

func TestGate_NilChannel(t *testing.T) {
	t.Parallel()

	g := New(math.MaxInt32)
	assert.False(t, g.ShouldEmit(nil))

	g.Overrides().Set(nil, true)
	assert.Zero(t, g.Overrides().Len())
}

func TestGate_SetVerbosity(t *testing.T) {
	t.Parallel()

	g := New(DefaultVerbosity)
	assert.Equal(t, DefaultVerbosity, g.Verbosity())
	assert.True(t, g.ShouldEmit(channel.Note))

	g.SetVerbosity(1)
	assert.Equal(t, 1, g.Verbosity())
	assert.False(t, g.ShouldEmit(channel.Note))
	assert.True(t, g.ShouldEmit(channel.Log))
}

func TestOverrides_ReplaceAndSnapshot(t *testing.T) {
	t.Parallel()

	o := NewOverrides()
	o.Set(channel.Warn, false)

	o.Replace(map[*channel.Channel]bool{channel.Note: true, nil: true})

	_, ok := o.Get(channel.Warn)
	assert.False(t, ok, "replace drops previous entries")

	snap := o.Snapshot()
	assert.Equal(t, map[*channel.Channel]bool{channel.Note: true}, snap)

	snap[channel.Debug] = true
	assert.Equal(t, 1, o.Len(), "snapshot is a copy")

	o.Reset()
	assert.Zero(t, o.Len())
}

func TestGate_Concurrent(t *testing.T) {
	t.Parallel()

	g := New(DefaultVerbosity)
	var wg sync.WaitGroup

	for i := range 8 {
		wg.Go(func() {
			for j := range 1000 {
				switch (i + j) % 4 {
				case 0:
					g.Overrides().Set(channel.Note, j%2 == 0)
				case 1:
					g.Overrides().Clear(channel.Note)
				case 2:
					g.SetVerbosity(j % 7)
				default:
					_ = g.ShouldEmit(channel.Note)
				}
			}
		})
	}
	wg.Wait()

	g.Overrides().Reset()
	g.SetVerbosity(2)
	assert.True(t, g.ShouldEmit(channel.Note))
}

func TestSource_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "override", SourceOverride.String())
	assert.Equal(t, "threshold", SourceThreshold.String())
}
