// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/stacklok/devlog/env"
	namevalidation "github.com/stacklok/devlog/validation/channel"
)

// Environment variables read by FromEnv.
const (
	EnvVerbosity = "DEVLOG_VERBOSITY"
	EnvChannels  = "DEVLOG_CHANNELS"
	EnvColor     = "DEVLOG_COLOR"
	EnvUnicode   = "DEVLOG_UNICODE"
	EnvAdmin     = "DEVLOG_ADMIN"
	EnvConfig    = "DEVLOG_CONFIG"
)

// ErrInvalidChannelList is returned for malformed channel lists.
var ErrInvalidChannelList = errors.New("invalid channel list")

// FromEnv builds a config from DEVLOG_* variables. Unset variables leave
// the corresponding fields unset.
func FromEnv(r env.Reader) (*Config, error) {
	cfg := &Config{}

	if v, ok := r.LookupEnv(EnvVerbosity); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvVerbosity, err)
		}
		cfg.Verbosity = &n
	}

	if v, ok := r.LookupEnv(EnvChannels); ok {
		channels, err := ParseChannelList(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvChannels, err)
		}
		cfg.Channels = channels
	}

	cfg.Color = strings.ToLower(strings.TrimSpace(r.Getenv(EnvColor)))

	if v, ok := r.LookupEnv(EnvUnicode); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvUnicode, err)
		}
		cfg.Unicode = &b
	}

	cfg.Admin.Address = strings.TrimSpace(r.Getenv(EnvAdmin))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseChannelList parses a comma separated list of channel switches:
//
//	warn          enable warn
//	+warn         enable warn
//	-debug        disable debug
//	note=off      disable note (on/off, true/false, yes/no, 1/0)
//
// An empty list yields an empty map. Later entries win.
func ParseChannelList(s string) (map[string]bool, error) {
	out := make(map[string]bool)
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		name, enabled, err := parseChannelSwitch(item)
		if err != nil {
			return nil, err
		}
		if err := namevalidation.ValidateName(name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidChannelList, err)
		}
		out[name] = enabled
	}
	return out, nil
}

func parseChannelSwitch(item string) (string, bool, error) {
	if name, value, ok := strings.Cut(item, "="); ok {
		enabled, err := parseSwitch(strings.TrimSpace(value))
		if err != nil {
			return "", false, fmt.Errorf("%w: %q: %w", ErrInvalidChannelList, item, err)
		}
		return strings.TrimSpace(name), enabled, nil
	}
	switch item[0] {
	case '-':
		return strings.TrimSpace(item[1:]), false, nil
	case '+':
		return strings.TrimSpace(item[1:]), true, nil
	default:
		return item, true, nil
	}
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	default:
		return strconv.ParseBool(s)
	}
}

// FormatChannelList renders channel switches in the form ParseChannelList
// accepts, sorted by name.
func FormatChannelList(m map[string]bool) string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)

	items := make([]string, 0, len(names))
	for _, name := range names {
		if m[name] {
			items = append(items, name)
		} else {
			items = append(items, "-"+name)
		}
	}
	return strings.Join(items, ",")
}
