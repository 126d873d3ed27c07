// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package rules

import (
	"fmt"

	"github.com/stacklok/devlog/channel"
)

// Rule forces every channel matched by Match on or off.
type Rule struct {
	Match   string `json:"match" yaml:"match" toml:"match" validate:"required"`
	Enabled bool   `json:"enabled" yaml:"enabled" toml:"enabled"`
}

type compiledRule struct {
	expr    *Expression
	enabled bool
}

// Set is an ordered list of compiled rules.
type Set struct {
	rules []compiledRule
}

// Compile compiles rules in order with the default engine.
func Compile(rs []Rule) (*Set, error) {
	return defaultEngine.CompileAll(rs)
}

// CompileAll compiles rules in order. The first failing rule aborts.
func (e *Engine) CompileAll(rs []Rule) (*Set, error) {
	s := &Set{rules: make([]compiledRule, 0, len(rs))}
	for i, r := range rs {
		expr, err := e.Compile(r.Match)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		s.rules = append(s.rules, compiledRule{expr: expr, enabled: r.Enabled})
	}
	return s, nil
}

// Len returns the number of rules.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}

// Resolve evaluates every rule against every channel and returns the
// override each matched channel ends up with. The last matching rule wins.
func (s *Set) Resolve(chs []*channel.Channel) (map[*channel.Channel]bool, error) {
	out := make(map[*channel.Channel]bool)
	if s == nil {
		return out, nil
	}
	for _, ch := range chs {
		if ch == nil {
			continue
		}
		for i, r := range s.rules {
			matched, err := r.expr.Matches(ch)
			if err != nil {
				return nil, fmt.Errorf("rule %d on channel %q: %w", i, ch.Name(), err)
			}
			if matched {
				out[ch] = r.enabled
			}
		}
	}
	return out, nil
}
