// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package http validates values taken from HTTP requests before they reach a
log line.

A header value that ends up in a log prefix could otherwise inject line
breaks or fake context labels. ValidateHeaderValue applies the RFC 7230
field-value rules through golang.org/x/net/http/httpguts, and
ValidateRequestID adds the constraints of a context label:

	id := r.Header.Get("X-Request-Id")
	if err := http.ValidateRequestID(id); err != nil {
		id = uuid.NewString()[:8]
	}

Failures wrap ErrEmpty, ErrTooLong, ErrControl or ErrSeparator.
*/
package http
