// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package compose renders the prefix of a log line: the channel token, the
// wall-clock time, the thread name and the thread's context labels.
//
// With a plain palette a Warn line from thread "main" inside contexts "a"
// and "b" starts with the text below, followed by two spaces and the body:
//
//	  X  14:03:07|main|a|b
package compose
