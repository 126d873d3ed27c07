// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/x/ansi"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileOptions configures a rotating file sink. Zero values use the
// lumberjack defaults: 100 MB per file, no age limit, all backups kept.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// File returns a sink appending plain lines to a rotating file, and the
// closer releasing it. Color sequences are stripped before writing.
func File(opts FileOptions) (Func, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o750); err != nil {
		return nil, nil, err
	}
	lj := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
	}
	return StripANSI(Writer(lj)), lj, nil
}

// StripANSI wraps fn so it receives lines without escape sequences.
func StripANSI(fn Func) Func {
	return func(line, tag string) {
		fn(ansi.Strip(line), tag)
	}
}
