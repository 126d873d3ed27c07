// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package rules

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
)

var (
	// ErrExpressionCheck is wrapped by every compile-time failure.
	ErrExpressionCheck = errors.New("match expression check failed")

	// ErrEvaluation is returned when a match expression fails on a channel.
	ErrEvaluation = errors.New("match expression evaluation failed")

	// ErrInvalidResult is returned when a match expression does not produce a bool.
	ErrInvalidResult = errors.New("match expression must produce a bool")
)

// Stage is the compile step that rejected an expression.
type Stage string

// Compile stages.
const (
	StageParse Stage = "syntax"
	StageCheck Stage = "type"
)

// Issue is one problem found in a match expression.
type Issue struct {
	Line int    `json:"line,omitempty"`
	Col  int    `json:"col,omitempty"`
	Msg  string `json:"msg,omitempty"`
}

// ExpressionError reports a match expression that failed to parse or type
// check, with the position of each problem.
type ExpressionError struct {
	Stage  Stage   `json:"stage"`
	Source string  `json:"source"`
	Issues []Issue `json:"issues,omitempty"`
	err    error
}

func newExpressionError(stage Stage, source string, issues *cel.Issues) *ExpressionError {
	e := &ExpressionError{
		Stage:  stage,
		Source: source,
		Issues: make([]Issue, 0, len(issues.Errors())),
		err:    issues.Err(),
	}
	for _, ie := range issues.Errors() {
		e.Issues = append(e.Issues, Issue{
			Line: ie.Location.Line(),
			Col:  ie.Location.Column(),
			Msg:  ie.Message,
		})
	}
	return e
}

func (e *ExpressionError) Error() string {
	return fmt.Sprintf("%s error in match expression %q: %v", e.Stage, e.Source, e.err)
}

// Unwrap exposes ErrExpressionCheck and the CEL error.
func (e *ExpressionError) Unwrap() []error {
	return []error{ErrExpressionCheck, e.err}
}

// AsJSON renders the error for API responses.
func (e *ExpressionError) AsJSON() string {
	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(b)
}
