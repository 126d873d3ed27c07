// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package recovery provides panic recovery middleware for HTTP handlers.
//
// The middleware recovers from panics in HTTP handlers, reports them
// through a devlog logger and returns a 500 Internal Server Error response
// to the client. This prevents a single panicking request from crashing the
// entire server.
//
// # Basic Usage
//
//	r := chi.NewRouter()
//	r.Use(recovery.Middleware(logging.Default()))
//	http.ListenAndServe(":8080", r)
package recovery
