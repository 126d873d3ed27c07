// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package rules selects channels with CEL expressions and turns the matches
into verbosity overrides.

Every expression is evaluated once per channel with three variables:

  - name (string): the channel name, e.g. "warn"
  - verbosity (int): the channel's fixed verbosity
  - glyph (string): the channel's unicode token

and must produce a bool.

# Basic Usage

	set, err := rules.Compile([]rules.Rule{
	    {Match: `verbosity >= 2`, Enabled: false},
	    {Match: `name == "note"`, Enabled: true},
	})
	if err != nil {
	    // handle compilation error
	}
	overrides, err := set.Resolve(channel.Default.All())
	// overrides[channel.Note] == true, overrides[channel.Trace] == false

When several rules match one channel the last one wins. Channels no rule
matches are absent from the result and keep comparing against the
threshold.

# Error Handling

Parse and type errors come back as *ExpressionError, carrying the stage
and the position of every issue:

	_, err := rules.Compile([]rules.Rule{{Match: `name ==`}})
	var exprErr *rules.ExpressionError
	if errors.As(err, &exprErr) {
	    fmt.Println(exprErr.Stage, exprErr.Issues[0].Col)
	}

An expression that type-checks to something other than bool is rejected
with ErrInvalidResult before it is ever evaluated.
*/
package rules
