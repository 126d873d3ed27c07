// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/stacklok/devlog/rules"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Format is a config file encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat is returned for config files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config holds every devlog setting. Pointer and empty fields are unset and
// leave the corresponding setting alone.
type Config struct {
	Verbosity *int            `json:"verbosity,omitempty" yaml:"verbosity,omitempty" toml:"verbosity,omitempty" validate:"omitnil"`
	Color     string          `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty" validate:"omitempty,oneof=auto always never"`
	Unicode   *bool           `json:"unicode,omitempty" yaml:"unicode,omitempty" toml:"unicode,omitempty"`
	Channels  map[string]bool `json:"channels,omitempty" yaml:"channels,omitempty" toml:"channels,omitempty" validate:"dive,keys,channel_name,endkeys"`
	Rules     []rules.Rule    `json:"rules,omitempty" yaml:"rules,omitempty" toml:"rules,omitempty" validate:"dive"`
	Admin     Admin           `json:"admin,omitzero" yaml:"admin,omitempty" toml:"admin,omitempty"`
}

// Admin configures the admin API.
type Admin struct {
	Address string `json:"address,omitempty" yaml:"address,omitempty" toml:"address,omitempty" validate:"omitempty,hostname_port"`
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a config document.
func Parse(data []byte, format Format) (*Config, error) {
	var doc map[string]any
	if err := unmarshal(data, format, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s config: %w", format, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize config document: %w", err)
	}
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var cfg Config
	if err := unmarshal(data, format, &cfg); err != nil {
		return nil, fmt.Errorf("decoding %s config: %w", format, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func unmarshal(data []byte, format Format, v any) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	case FormatTOML:
		return toml.Unmarshal(data, v)
	case FormatJSON:
		if len(strings.TrimSpace(string(data))) == 0 {
			return nil
		}
		return json.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Merge combines layers in order. Set fields of later layers replace those
// of earlier ones, channel entries are merged key by key and rules are
// concatenated. Nil layers are skipped.
func Merge(layers ...*Config) *Config {
	out := &Config{}
	for _, c := range layers {
		if c == nil {
			continue
		}
		if c.Verbosity != nil {
			v := *c.Verbosity
			out.Verbosity = &v
		}
		if c.Color != "" {
			out.Color = c.Color
		}
		if c.Unicode != nil {
			u := *c.Unicode
			out.Unicode = &u
		}
		if len(c.Channels) > 0 {
			if out.Channels == nil {
				out.Channels = make(map[string]bool, len(c.Channels))
			}
			maps.Copy(out.Channels, c.Channels)
		}
		out.Rules = append(out.Rules, c.Rules...)
		if c.Admin.Address != "" {
			out.Admin.Address = c.Admin.Address
		}
	}
	return out
}
