// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/stacklok/devlog/admin"
	"github.com/stacklok/devlog/channel"
	"github.com/stacklok/devlog/config"
	"github.com/stacklok/devlog/env"
	"github.com/stacklok/devlog/logger"
	"github.com/stacklok/devlog/logging"
	"github.com/stacklok/devlog/sink"
	"github.com/stacklok/devlog/thread"
)

func runCommand(r env.Reader) *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run demo workers that log on every channel",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Number of worker threads",
				Value: 3,
			},
			&cli.IntFlag{
				Name:  "jobs",
				Usage: "Jobs per worker; 0 runs until interrupted",
				Value: 10,
			},
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "Pause between jobs",
				Value: 200 * time.Millisecond,
			},
			&cli.StringFlag{
				Name:  "admin",
				Usage: "Serve the admin API on this address (e.g. 127.0.0.1:7070)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Also append plain lines to this file, rotated by size",
			},
			&cli.IntFlag{
				Name:  "log-file-max-size",
				Usage: "Rotate the log file after this many megabytes",
				Value: 10,
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "Reload the configuration file when it changes",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			s, err := loadSettings(c, r)
			if err != nil {
				return err
			}
			return run(ctx, c, s)
		},
	}
}

type debugFlag bool

func (d debugFlag) IsDebug() bool { return bool(d) }

func run(ctx context.Context, c *cli.Command, s *settings) error {
	workers := c.Int("workers")
	if workers < 1 {
		return fmt.Errorf("--workers must be at least 1, got %d", workers)
	}

	hub := sink.NewBroadcast()
	extra := []sink.Func{hub.Func()}
	if path := c.String("log-file"); path != "" {
		file, closer, err := sink.File(sink.FileOptions{
			Path:       path,
			MaxSizeMB:  c.Int("log-file-max-size"),
			MaxBackups: 3,
		})
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer func() { _ = closer.Close() }()
		extra = append(extra, file)
	}

	l, err := newLogger(s.cfg, c.Root().ErrWriter, extra...)
	if err != nil {
		return err
	}
	logging.SetDefault(l)
	logger.InitializeWithDebug(debugFlag(c.Bool("debug")))
	slog.SetDefault(slog.New(logging.NewHandler(l)))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	mt := thread.Main()
	ctx = thread.NewContext(ctx, mt)
	restore := mt.Scope("run")
	defer restore()

	logger.Infow("starting", "workers", workers, "verbosity", l.Verbosity())

	var services sync.WaitGroup
	if addr := s.cfg.Admin.Address; addr != "" {
		srv := admin.New(l, hub)
		services.Go(func() {
			logger.NewLogr().WithName("admin").Info("listening", "address", addr)
			if err := srv.ListenAndServe(ctx, addr); err != nil {
				l.Warnf(ctx, "admin: %v", err)
			}
		})
	}
	if c.Bool("watch") {
		if s.path == "" {
			l.Warnf(ctx, "--watch given but no config file in use")
		} else {
			services.Go(func() { watch(ctx, l, s) })
		}
	}

	var wg sync.WaitGroup
	for id := 1; id <= workers; id++ {
		wg.Go(func() {
			work(ctx, l, id, c.Int("jobs"), c.Duration("interval"))
		})
	}
	wg.Wait()
	l.Notef(ctx, "workers done")

	if s.cfg.Admin.Address != "" && ctx.Err() == nil {
		l.Notef(ctx, "admin API still serving on %s, interrupt to exit", s.cfg.Admin.Address)
		<-ctx.Done()
	}
	stop()
	services.Wait()
	return nil
}

// watch reapplies the configuration every time the file changes.
func watch(ctx context.Context, l *logging.Logger, s *settings) {
	t := thread.New("config")
	ctx = thread.NewContext(ctx, t)

	err := config.Watch(ctx, s.path, func(file *config.Config, err error) {
		if err == nil {
			var cfg *config.Config
			if cfg, err = s.reload(file); err == nil {
				err = cfg.Apply(l)
			}
		}
		if err != nil {
			l.Warnf(ctx, "reload %s: %v", s.path, err)
			return
		}
		l.Notef(ctx, "reloaded %s, verbosity %d", s.path, l.Verbosity())
	})
	if err != nil {
		l.Warnf(ctx, "%v", err)
	}
}

// work is one demo worker. It owns its thread for its whole life.
func work(ctx context.Context, l *logging.Logger, id, jobs int, interval time.Duration) {
	t := thread.New(fmt.Sprintf("worker-%d", id))
	t.Bind()
	defer t.Unbind()
	ctx = thread.NewContext(ctx, t)

	slog.InfoContext(ctx, "worker started", "jobs", jobs)

	for n := 0; jobs == 0 || n < jobs; n++ {
		err := t.Do(fmt.Sprintf("job-%d", n), func() error {
			return job(ctx, l, t, n)
		})
		if err != nil {
			l.Warnf(ctx, "%v", err)
		}

		select {
		case <-ctx.Done():
			l.Debugf(ctx, "stopping after %d jobs", n+1)
			return
		case <-time.After(interval):
		}
	}
	l.Line(t, channel.Log).Append("finished", jobs, "jobs").Flush()
}

func job(ctx context.Context, l *logging.Logger, t *thread.Thread, n int) error {
	l.Log(ctx, channel.Left, "request", n)

	restore := t.Scope("decode")
	l.Tracef(ctx, "payload %d bytes", 64*(n+1))
	restore()

	ln := l.Line(t, channel.Debug)
	if ln.Enabled() {
		ln.Append("state").Appendf("depth=%d", t.Depth())
	}
	ln.Flush()

	if n%5 == 4 {
		return fmt.Errorf("job %d failed: simulated error", n)
	}
	l.Log(ctx, channel.Right, "response", n)
	return nil
}
