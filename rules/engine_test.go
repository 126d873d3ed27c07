// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package rules_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/devlog/channel"
	"github.com/stacklok/devlog/rules"
)

func TestEngine_Compile_ValidExpressions(t *testing.T) {
	t.Parallel()

	engine := rules.NewEngine()

	tests := []struct {
		name string
		expr string
		ch   *channel.Channel
		want bool
	}{
		{name: "name equality", expr: `name == "warn"`, ch: channel.Warn, want: true},
		{name: "name mismatch", expr: `name == "warn"`, ch: channel.Note, want: false},
		{name: "verbosity comparison", expr: `verbosity >= 2`, ch: channel.Trace, want: true},
		{name: "membership", expr: `name in ["left", "right"]`, ch: channel.Left, want: true},
		{name: "string function", expr: `name.startsWith("de")`, ch: channel.Debug, want: true},
		{name: "glyph", expr: `glyph == "▬▬▶"`, ch: channel.Right, want: true},
		{name: "boolean logic", expr: `verbosity == 1 && name != "log"`, ch: channel.Log, want: false},
		{name: "constant", expr: `true`, ch: channel.Log, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			expr, err := engine.Compile(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.expr, expr.Source())

			got, err := expr.Matches(tt.ch)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngine_Compile_ParseErrors(t *testing.T) {
	t.Parallel()

	engine := rules.NewEngine()

	for _, expr := range []string{`name ==`, `(verbosity > 1`, `name == "warn`} {
		t.Run(expr, func(t *testing.T) {
			t.Parallel()

			_, err := engine.Compile(expr)
			require.Error(t, err)

			var exprErr *rules.ExpressionError
			require.True(t, errors.As(err, &exprErr), "expected ExpressionError, got %T", err)
			assert.Equal(t, rules.StageParse, exprErr.Stage)
			assert.Equal(t, expr, exprErr.Source)
			assert.NotEmpty(t, exprErr.Issues)
			assert.ErrorIs(t, err, rules.ErrExpressionCheck)
		})
	}
}

func TestEngine_Compile_CheckErrors(t *testing.T) {
	t.Parallel()

	engine := rules.NewEngine()

	for _, expr := range []string{`level == 1`, `name > 3`, `verbosity.startsWith("x")`} {
		t.Run(expr, func(t *testing.T) {
			t.Parallel()

			_, err := engine.Compile(expr)
			require.Error(t, err)

			var exprErr *rules.ExpressionError
			require.True(t, errors.As(err, &exprErr), "expected ExpressionError, got %T", err)
			assert.Equal(t, rules.StageCheck, exprErr.Stage)
			assert.Contains(t, exprErr.AsJSON(), `"stage":"type"`)
			assert.ErrorIs(t, err, rules.ErrExpressionCheck)
		})
	}
}

func TestEngine_Compile_NonBoolean(t *testing.T) {
	t.Parallel()

	_, err := rules.NewEngine().Compile(`name + "x"`)
	assert.ErrorIs(t, err, rules.ErrInvalidResult)
}

func TestEngine_Compile_TooLong(t *testing.T) {
	t.Parallel()

	expr := `name == "` + strings.Repeat("a", rules.MaxExpressionLength) + `"`
	_, err := rules.NewEngine().Compile(expr)
	assert.ErrorIs(t, err, rules.ErrExpressionCheck)
}

func TestExpression_Matches_Errors(t *testing.T) {
	t.Parallel()

	engine := rules.NewEngine()

	t.Run("runtime error", func(t *testing.T) {
		t.Parallel()
		expr, err := engine.Compile(`10 / (verbosity - 1) > 0`)
		require.NoError(t, err)

		_, err = expr.Matches(channel.Log)
		assert.ErrorIs(t, err, rules.ErrEvaluation)
	})

	t.Run("dynamic non-bool result", func(t *testing.T) {
		t.Parallel()
		expr, err := engine.Compile(`dyn(name)`)
		require.NoError(t, err)

		_, err = expr.Matches(channel.Log)
		assert.ErrorIs(t, err, rules.ErrInvalidResult)
	})
}

func TestExpressionError(t *testing.T) {
	t.Parallel()

	_, err := rules.NewEngine().Compile(`name ==`)
	var exprErr *rules.ExpressionError
	require.True(t, errors.As(err, &exprErr))
	require.NotEmpty(t, exprErr.Issues)
	assert.Equal(t, 1, exprErr.Issues[0].Line)
	assert.Contains(t, exprErr.Error(), `syntax error in match expression "name =="`)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(exprErr.AsJSON()), &doc))
	assert.Equal(t, "syntax", doc["stage"])
	assert.Equal(t, "name ==", doc["source"])
	assert.NotEmpty(t, doc["issues"])
}
