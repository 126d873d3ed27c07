// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package admin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/stacklok/devlog/logging"
	"github.com/stacklok/devlog/recovery"
	"github.com/stacklok/devlog/sink"
)

// ThreadName is the thread name used for admin requests.
const ThreadName = "admin"

const shutdownTimeout = 5 * time.Second

// Server is the admin HTTP API.
type Server struct {
	logger   *logging.Logger
	hub      *sink.Broadcast
	router   *chi.Mux
	upgrader websocket.Upgrader

	done      chan struct{}
	closeOnce sync.Once
}

// New creates an admin server for l. hub may be nil, in which case the tail
// endpoint is unavailable.
func New(l *logging.Logger, hub *sink.Broadcast) *Server {
	s := &Server{
		logger: l,
		hub:    hub,
		router: chi.NewRouter(),
		done:   make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(s.requestThread)
	s.router.Use(recovery.Middleware(s.logger))

	s.router.Route("/v1", func(r chi.Router) {
		r.Get("/verbosity", s.getVerbosity)
		r.Put("/verbosity", s.putVerbosity)

		r.Route("/channels", func(r chi.Router) {
			r.Get("/", s.listChannels)
			r.Get("/{name}", s.getChannel)
			r.Put("/{name}/override", s.putOverride)
			r.Delete("/{name}/override", s.deleteOverride)
		})

		r.Get("/tail", s.tail)
	})
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:        addr,
		Handler:     s.router,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
		// No WriteTimeout: tail connections are long lived.
	}
	srv.RegisterOnShutdown(s.Close)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("admin server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("admin server shutdown: %w", err)
	}
	return nil
}

// Close ends every open tail stream. The server keeps answering other
// requests.
func (s *Server) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}
