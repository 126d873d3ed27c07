// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package channel

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxNameLength is the longest channel name accepted by ValidateName.
const MaxNameLength = 64

var validNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_\-]*$`)

// ValidateName validates that a channel name only contains allowed characters:
// a leading lowercase letter followed by lowercase alphanumerics, underscores
// and dashes.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("channel name cannot be empty or consist only of whitespace")
	}

	if strings.Contains(name, "\x00") {
		return fmt.Errorf("channel name cannot contain null bytes")
	}

	if len(name) > MaxNameLength {
		return fmt.Errorf("channel name exceeds maximum length of %d bytes: %q", MaxNameLength, name)
	}

	if name != strings.ToLower(name) {
		return fmt.Errorf("channel name must be lowercase: %q", name)
	}

	if !validNameRegex.MatchString(name) {
		return fmt.Errorf("channel name must start with a letter and contain only lowercase alphanumeric characters, underscores and dashes: %q", name)
	}

	return nil
}
