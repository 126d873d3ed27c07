// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"math"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stacklok/devlog/env"
	"github.com/stacklok/devlog/logging"
	"github.com/stacklok/devlog/thread"
)

// EnvDebug enables debug entries when set to a true value.
const EnvDebug = "DEVLOG_DEBUG"

// VerboseLevel is the lowest zap level. Debug mode admits entries down to
// it so every logr V-level reaches the trace channel.
const VerboseLevel = zapcore.Level(math.MinInt8)

// For returns the singleton sugared logger with every entry attributed to
// t, so the line carries t's name and context labels.
func For(t *thread.Thread) *zap.SugaredLogger {
	return zap.S().With(Thread(t))
}

// Debugw logs msg and key/value pairs on the trace channel.
func Debugw(msg string, keysAndValues ...any) {
	zap.S().Debugw(msg, keysAndValues...)
}

// Infow logs msg and key/value pairs on the note channel.
func Infow(msg string, keysAndValues ...any) {
	zap.S().Infow(msg, keysAndValues...)
}

// Warnf logs a formatted message on the warn channel.
func Warnf(msg string, args ...any) {
	zap.S().Warnf(msg, args...)
}

// Warnw logs msg and key/value pairs on the warn channel.
func Warnw(msg string, keysAndValues ...any) {
	zap.S().Warnw(msg, keysAndValues...)
}

// Errorw logs msg and key/value pairs on the warn channel. Errors have no
// channel of their own.
func Errorw(msg string, keysAndValues ...any) {
	zap.S().Errorw(msg, keysAndValues...)
}

// NewLogr returns the singleton as a [logr.Logger]. V(n) is emitted at zap
// level -n on the trace channel. Only V(0) passes at info level; debug mode
// admits every V-level.
func NewLogr() logr.Logger {
	return zapr.NewLogger(zap.L())
}

// DebugProvider reports whether debug entries were requested, typically by
// a command line flag.
type DebugProvider interface {
	IsDebug() bool
}

type defaultDebugProvider struct{}

func (*defaultDebugProvider) IsDebug() bool {
	return false
}

// Initialize routes the zap singleton through logging.Default. Debug
// entries are enabled when DEVLOG_DEBUG is true.
func Initialize() {
	InitializeWithOptions(&env.OSReader{}, &defaultDebugProvider{})
}

// InitializeWithDebug is Initialize with debug entries also enabled when
// debugProvider says so.
func InitializeWithDebug(debugProvider DebugProvider) {
	InitializeWithOptions(&env.OSReader{}, debugProvider)
}

// InitializeWithOptions routes the zap singleton through logging.Default at
// info level, or at VerboseLevel when either debugProvider or EnvDebug in
// envReader asks for debug entries.
func InitializeWithOptions(envReader env.Reader, debugProvider DebugProvider) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if debugProvider.IsDebug() || debugWithEnv(envReader) {
		level.SetLevel(VerboseLevel)
	}
	InitializeWithLogger(logging.Default(), level)
}

// InitializeWithLogger routes the zap singleton through l, admitting entries
// at or above level.
func InitializeWithLogger(l *logging.Logger, level zapcore.LevelEnabler) {
	zap.ReplaceGlobals(zap.New(NewCore(l, level)))
}

func debugWithEnv(envReader env.Reader) bool {
	debug, err := strconv.ParseBool(envReader.Getenv(EnvDebug))
	if err != nil {
		return false
	}
	return debug
}
