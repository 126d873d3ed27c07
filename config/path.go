// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/stacklok/devlog/env"
)

// ErrNotFound is returned when no config file exists in any searched location.
var ErrNotFound = errors.New("no config file found")

// candidates are searched in order under every XDG config directory.
var candidates = []string{
	filepath.Join("devlog", "config.yaml"),
	filepath.Join("devlog", "config.yml"),
	filepath.Join("devlog", "config.toml"),
	filepath.Join("devlog", "config.json"),
}

// DefaultPath returns where a new config file would be created.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, candidates[0])
}

// Find returns the config file to load: DEVLOG_CONFIG when set, otherwise
// the first candidate found under the XDG config directories.
func Find(r env.Reader) (string, error) {
	if p := strings.TrimSpace(r.Getenv(EnvConfig)); p != "" {
		return p, nil
	}
	for _, rel := range candidates {
		if p, err := xdg.SearchConfigFile(rel); err == nil {
			return p, nil
		}
	}
	return "", ErrNotFound
}
