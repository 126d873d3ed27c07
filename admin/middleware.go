// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package admin

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/stacklok/devlog/channel"
	"github.com/stacklok/devlog/thread"
	httpval "github.com/stacklok/devlog/validation/http"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-Id"

// requestThread attaches a fresh admin thread to the request context, labels
// it with the request id and logs the request and its outcome.
func (s *Server) requestThread(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := requestID(r)
		w.Header().Set(RequestIDHeader, id)

		t := thread.New(ThreadName)
		t.Push("request-" + id)
		ctx := thread.NewContext(r.Context(), t)

		s.logger.Logf(ctx, channel.Left, "%s %s", r.Method, r.URL.RequestURI())

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		switch {
		case status != 0:
		case websocket.IsWebSocketUpgrade(r):
			status = http.StatusSwitchingProtocols
		default:
			status = http.StatusOK
		}
		s.logger.Logf(ctx, channel.Right, "%d %s (%v)", status, http.StatusText(status), time.Since(start))
	})
}

// requestID returns the client supplied id when it is safe to use as a log
// label, otherwise a new short random one.
func requestID(r *http.Request) string {
	if id := r.Header.Get(RequestIDHeader); id != "" && httpval.ValidateRequestID(id) == nil {
		return id
	}
	return uuid.NewString()[:8]
}
