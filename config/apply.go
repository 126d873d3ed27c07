// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"maps"

	"github.com/stacklok/devlog/channel"
	"github.com/stacklok/devlog/logging"
	"github.com/stacklok/devlog/rules"
	"github.com/stacklok/devlog/style"
)

// Options translates the construction-time settings (colour, tokens,
// verbosity) into logger options.
func (c *Config) Options() []logging.Option {
	var opts []logging.Option
	if c.Verbosity != nil {
		opts = append(opts, logging.WithVerbosity(*c.Verbosity))
	}
	if c.Unicode != nil {
		opts = append(opts, logging.WithUnicode(*c.Unicode))
	}
	switch c.Color {
	case ColorAlways:
		opts = append(opts, logging.WithPalette(style.ANSI()))
	case ColorNever:
		opts = append(opts, logging.WithPalette(style.Plain()))
	}
	return opts
}

// Overrides resolves rules and channel entries against registry. Rules are
// applied first so that explicit channel entries win.
func (c *Config) Overrides(registry *channel.Registry) (map[*channel.Channel]bool, error) {
	out := make(map[*channel.Channel]bool)

	if len(c.Rules) > 0 {
		set, err := rules.Compile(c.Rules)
		if err != nil {
			return nil, err
		}
		matched, err := set.Resolve(registry.All())
		if err != nil {
			return nil, err
		}
		maps.Copy(out, matched)
	}

	var errs []error
	for name, enabled := range c.Channels {
		ch, err := registry.Resolve(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out[ch] = enabled
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("resolving channels: %w", errors.Join(errs...))
	}
	return out, nil
}

// Apply updates the runtime state of l: the verbosity threshold when set,
// and the complete override map. Overrides set earlier, by any means, are
// replaced. Nothing is changed when an error is returned.
func (c *Config) Apply(l *logging.Logger) error {
	overrides, err := c.Overrides(l.Registry())
	if err != nil {
		return err
	}
	if c.Verbosity != nil {
		l.SetVerbosity(*c.Verbosity)
	}
	l.Gate().Overrides().Replace(overrides)
	return nil
}
