// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package config loads devlog settings from files and the environment and
applies them to a [logging.Logger].

# File format

A config file is YAML (.yaml, .yml), TOML (.toml) or JSON (.json):

	verbosity: 3
	color: auto
	unicode: true
	channels:
	  note: true
	  debug: false
	rules:
	  - match: 'verbosity >= 7'
	    enabled: false
	admin:
	  address: 127.0.0.1:7070

The document is checked against an embedded JSON schema before it is
decoded, then the decoded struct is validated field by field.

# Environment

	DEVLOG_VERBOSITY=7
	DEVLOG_CHANNELS=warn,-debug,note=off
	DEVLOG_COLOR=never
	DEVLOG_UNICODE=false
	DEVLOG_ADMIN=127.0.0.1:7070
	DEVLOG_CONFIG=/etc/devlog.toml

# Precedence

Layers are combined with [Merge]; later layers win field by field and
channel by channel. Inside one config, explicit channel entries beat
rules, and among rules the last match wins.

# Reloading

[Watch] reports a freshly loaded config each time the file changes,
including editors that replace the file atomically.
*/
package config
