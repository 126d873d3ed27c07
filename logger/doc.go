// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package logger provides devlog's own process logging through the zap
singleton, with every entry rendered as a devlog line.

Initialize installs a zap logger whose core hands entries to a
[logging.Logger]. Levels map onto channels (Error and Warn to warn, Info to
note, Debug to trace), so zap entries obey the same verbosity threshold and
overrides as everything else:

	logger.Initialize()
	logger.Infof("listening on %s", addr)
	//   ℹ  14:03:07|<unknown>  listening on 127.0.0.1:7070

Structured fields follow the message as key=value pairs. Attach a thread
handle with Thread to name the emitting thread and show its context:

	logger.Debugw("tick", "n", 3, logger.Thread(t))

NewLogr exposes the same pipeline as a [logr.Logger].
*/
package logger
