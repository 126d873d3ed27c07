// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package rules

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/stacklok/devlog/channel"
)

const (
	// MaxExpressionLength is the maximum allowed length for a match expression.
	MaxExpressionLength = 1024

	// CostLimit is the runtime cost limit for evaluating one expression
	// against one channel.
	CostLimit = 10000
)

// Engine compiles match expressions over channel attributes. It is safe
// for concurrent use from multiple goroutines.
type Engine struct {
	once sync.Once
	env  *cel.Env
	err  error
}

// Expression is a compiled match expression.
type Expression struct {
	source  string
	program cel.Program
}

// Source returns the original expression source string.
func (x *Expression) Source() string {
	return x.source
}

// NewEngine creates an engine. The CEL environment is built on first use.
func NewEngine() *Engine {
	return &Engine{}
}

var defaultEngine = NewEngine()

func (e *Engine) getEnv() (*cel.Env, error) {
	e.once.Do(func() {
		e.env, e.err = cel.NewEnv(
			cel.Variable("name", cel.StringType),
			cel.Variable("verbosity", cel.IntType),
			cel.Variable("glyph", cel.StringType),
		)
	})
	return e.env, e.err
}

// Compile parses, type checks and plans expr.
//
// Expressions that are too long, fail to parse or fail to type check return
// errors wrapping ErrExpressionCheck, the latter two as *ExpressionError.
// A non-boolean expression returns an error wrapping ErrInvalidResult.
func (e *Engine) Compile(expr string) (*Expression, error) {
	if len(expr) > MaxExpressionLength {
		return nil, fmt.Errorf("%w: expression length %d exceeds maximum of %d",
			ErrExpressionCheck, len(expr), MaxExpressionLength)
	}

	env, err := e.getEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to get CEL environment: %w", err)
	}

	parsed, issues := env.Parse(expr)
	if issues.Err() != nil {
		return nil, newExpressionError(StageParse, expr, issues)
	}

	checked, issues := env.Check(parsed)
	if issues.Err() != nil {
		return nil, newExpressionError(StageCheck, expr, issues)
	}

	if out := checked.OutputType(); !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("%w: expression %q has type %s, expected bool",
			ErrInvalidResult, expr, out)
	}

	program, err := env.Program(checked, cel.CostLimit(CostLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL program for %q: %w", expr, err)
	}

	return &Expression{source: expr, program: program}, nil
}

// Matches evaluates the expression against ch.
func (x *Expression) Matches(ch *channel.Channel) (bool, error) {
	out, _, err := x.program.Eval(map[string]any{
		"name":      ch.Name(),
		"verbosity": int64(ch.Verbosity()),
		"glyph":     ch.Token(true),
	})
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrEvaluation, err)
	}

	matched, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: expected bool, got %T", ErrInvalidResult, out.Value())
	}
	return matched, nil
}
