// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/http/httpguts"
)

const (
	// MaxHeaderValueLength is the longest header value accepted.
	MaxHeaderValueLength = 8192
	// MaxRequestIDLength is the longest request id accepted by ValidateRequestID.
	MaxRequestIDLength = 128
)

// Validation failures, wrapped with detail by the validators.
var (
	ErrEmpty     = errors.New("empty value")
	ErrTooLong   = errors.New("value too long")
	ErrControl   = errors.New("value contains control characters")
	ErrSeparator = errors.New("value contains whitespace or '|'")
)

// ValidateHeaderValue checks value against the RFC 7230 field-value grammar
// (no CR, LF or other control characters except tab) and a length cap.
func ValidateHeaderValue(value string) error {
	switch {
	case value == "":
		return ErrEmpty
	case len(value) > MaxHeaderValueLength:
		return fmt.Errorf("%w: %d bytes, limit %d", ErrTooLong, len(value), MaxHeaderValueLength)
	case !httpguts.ValidHeaderFieldValue(value):
		return ErrControl
	}
	return nil
}

// ValidateRequestID checks a client supplied request id before it becomes
// a log context label. It must be a valid header value, at most
// MaxRequestIDLength bytes, and free of whitespace and the '|' label
// separator so it cannot forge extra labels.
func ValidateRequestID(id string) error {
	if err := ValidateHeaderValue(id); err != nil {
		return fmt.Errorf("request id: %w", err)
	}
	if len(id) > MaxRequestIDLength {
		return fmt.Errorf("request id: %w: %d bytes, limit %d", ErrTooLong, len(id), MaxRequestIDLength)
	}
	if strings.ContainsAny(id, " \t|") {
		return fmt.Errorf("request id: %w", ErrSeparator)
	}
	return nil
}
