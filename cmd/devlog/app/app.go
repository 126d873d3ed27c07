// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package app holds the devlog command line.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/stacklok/devlog/config"
	"github.com/stacklok/devlog/env"
	"github.com/stacklok/devlog/logging"
	"github.com/stacklok/devlog/sink"
	"github.com/stacklok/devlog/style"
)

// Command returns the root command. Environment variables are read through r.
func Command(r env.Reader) *cli.Command {
	return &cli.Command{
		Name:  "devlog",
		Usage: "Channel based developer logging",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   fmt.Sprintf("Configuration file path (default: $%s or %s)", config.EnvConfig, config.DefaultPath()),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug entries from the zap bridge",
			},
			&cli.IntFlag{
				Name:    "verbosity",
				Aliases: []string{"v"},
				Usage:   "Verbosity threshold; channels at or below it emit",
			},
			&cli.StringSliceFlag{
				Name:  "enable",
				Usage: "Force channels on (repeatable or comma separated)",
			},
			&cli.StringSliceFlag{
				Name:  "disable",
				Usage: "Force channels off (repeatable or comma separated)",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Commands: []*cli.Command{
			runCommand(r),
			channelsCommand(r),
		},
	}
}

// settings is the resolved configuration together with the layers it was
// built from, so a reloaded file can be merged again.
type settings struct {
	path  string
	env   *config.Config
	flags *config.Config
	cfg   *config.Config
}

// reload merges a freshly loaded file with the env and flag layers.
func (s *settings) reload(file *config.Config) (*config.Config, error) {
	cfg := config.Merge(file, s.env, s.flags)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadSettings resolves file, environment and flag layers, later layers
// winning.
func loadSettings(cmd *cli.Command, r env.Reader) (*settings, error) {
	s := &settings{path: cmd.String("config")}
	if s.path == "" {
		p, err := config.Find(r)
		switch {
		case err == nil:
			s.path = p
		case !errors.Is(err, config.ErrNotFound):
			return nil, err
		}
	}

	var file *config.Config
	if s.path != "" {
		var err error
		if file, err = config.Load(s.path); err != nil {
			return nil, err
		}
	}

	var err error
	if s.env, err = config.FromEnv(r); err != nil {
		return nil, err
	}
	if s.flags, err = flagsConfig(cmd); err != nil {
		return nil, err
	}
	if s.cfg, err = s.reload(file); err != nil {
		return nil, err
	}
	return s, nil
}

// flagsConfig turns command line flags into a config layer.
func flagsConfig(cmd *cli.Command) (*config.Config, error) {
	cfg := &config.Config{}
	if cmd.IsSet("verbosity") {
		v := cmd.Int("verbosity")
		cfg.Verbosity = &v
	}
	if cmd.Bool("no-color") {
		cfg.Color = config.ColorNever
	}
	if cmd.IsSet("admin") {
		cfg.Admin.Address = cmd.String("admin")
	}

	var items []string
	for _, name := range cmd.StringSlice("enable") {
		items = append(items, "+"+strings.TrimSpace(name))
	}
	for _, name := range cmd.StringSlice("disable") {
		items = append(items, "-"+strings.TrimSpace(name))
	}
	if len(items) > 0 {
		channels, err := config.ParseChannelList(strings.Join(items, ","))
		if err != nil {
			return nil, err
		}
		cfg.Channels = channels
	}
	return cfg, nil
}

// newLogger builds a logger for cfg writing to w plus any extra sinks.
// Stderr goes through the process wide stderr sink.
func newLogger(cfg *config.Config, w io.Writer, extra ...sink.Func) (*logging.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	out := sink.Writer(w)
	if w == os.Stderr {
		out = sink.Stderr()
	}

	opts := []logging.Option{logging.WithPalette(style.Detect(w))}
	opts = append(opts, cfg.Options()...)
	opts = append(opts, logging.WithSink(sink.Tee(append([]sink.Func{out}, extra...)...)))

	l := logging.New(opts...)
	if err := cfg.Apply(l); err != nil {
		return nil, err
	}
	return l, nil
}
