// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/urfave/cli/v3"

	"github.com/stacklok/devlog/env"
	"github.com/stacklok/devlog/logging"
	"github.com/stacklok/devlog/sink"
)

func channelsCommand(r env.Reader) *cli.Command {
	return &cli.Command{
		Name:  "channels",
		Usage: "List channels and whether they emit under the current settings",
		Action: func(_ context.Context, c *cli.Command) error {
			s, err := loadSettings(c, r)
			if err != nil {
				return err
			}
			l, err := newLogger(s.cfg, nil)
			if err != nil {
				return err
			}
			l.InstallSink(sink.Discard)
			_, err = fmt.Fprintln(c.Root().Writer, channelTable(l))
			return err
		},
	}
}

// channelTable renders every registered channel of l.
func channelTable(l *logging.Logger) string {
	unicode := l.Composer().Unicode()
	all := l.Registry().All()
	rows := make([][]string, 0, len(all))
	for _, ch := range all {
		d := l.Gate().Decide(ch)
		state := "off"
		if d.Enabled {
			state = "on"
		}
		rows = append(rows, []string{
			ch.Name(),
			strconv.Itoa(ch.Verbosity()),
			ch.Token(unicode),
			state,
			d.Source.String(),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CHANNEL", "VERBOSITY", "TOKEN", "STATE", "SOURCE").
		Rows(rows...).
		String() + fmt.Sprintf("\nthreshold %d", l.Verbosity())
}
