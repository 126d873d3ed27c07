// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/stacklok/devlog/logger"
)

// settleDelay lets writers finish before the file is read back.
const settleDelay = 100 * time.Millisecond

// Watch calls onChange with the result of Load every time the file at path
// changes, until ctx is done. The parent directory is watched so the file
// may be replaced by rename, or removed and created again later. Watch
// blocks; it returns an error only when the watch cannot be established.
func Watch(ctx context.Context, path string, onChange func(*Config, error)) error {
	path = filepath.Clean(path)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("watching config file %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating config watcher: %w", err)
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			logger.Warnf("failed to close config watcher: %v", err)
		}
	}()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching config file %s: %w", path, err)
	}
	logger.Debugw("watching config file", "path", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			logger.Debugw("config file changed", "path", event.Name, "op", event.Op.String())

			if !sleep(ctx, settleDelay) {
				return nil
			}

			if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				logger.Debugw("config file removed, waiting for it to return", "path", path)
				continue
			}

			onChange(Load(path))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onChange(nil, fmt.Errorf("config watcher: %w", err))
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
