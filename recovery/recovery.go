// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package recovery

import (
	"bufio"
	"bytes"
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/stacklok/devlog/channel"
	"github.com/stacklok/devlog/httperr"
	"github.com/stacklok/devlog/logging"
	"github.com/stacklok/devlog/thread"
)

// Middleware returns HTTP middleware that recovers from panics.
// The panic is reported on the warn channel of l, its stack trace on the
// trace channel one frame line at a time, and the client receives a 500
// Internal Server Error response. http.ErrAbortHandler is re-raised so the
// server can abort the connection as usual.
func Middleware(l *logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				p := recover()
				if p == nil {
					return
				}
				if err, ok := p.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(p)
				}

				t := thread.FromContext(r.Context())
				l.Line(t, channel.Warn).Appendf("panic serving %s %s: %v", r.Method, r.URL.Path, p).Flush()
				if l.Enabled(channel.Trace) {
					s := bufio.NewScanner(bytes.NewReader(debug.Stack()))
					for s.Scan() {
						l.Line(t, channel.Trace).Append(s.Text()).Flush()
					}
				}

				httperr.Write(w, httperr.New(http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
