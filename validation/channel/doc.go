// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package channel provides validation functions for log channel names.

Channel names are how configuration files, environment variables, the CLI and
the admin API address a channel, so they follow one strict convention that is
safe to use as a map key, a URL path segment and a sink tag.

# Name Validation

	if err := channel.ValidateName("warn"); err != nil {
		// Handle invalid channel name
	}

Valid channel names must:
  - Be non-empty
  - Start with a lowercase letter
  - Contain only lowercase alphanumeric characters, underscores and dashes
  - Be at most 64 bytes long

# Examples

Valid names:

	"warn"
	"net-left"
	"sync_debug2"

Invalid names:

	""             // empty
	"Warn"         // uppercase
	"2fast"        // leading digit
	"net left"     // space
	"net/left"     // path separator
*/
package channel
