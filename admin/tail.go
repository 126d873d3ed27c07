// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package admin

import (
	"net/http"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/gorilla/websocket"

	"github.com/stacklok/devlog/channel"
	"github.com/stacklok/devlog/httperr"
)

const (
	tailBuffer   = 256
	writeWait    = 2 * time.Second
	pongWait     = 60 * time.Second
	pingInterval = pongWait * 9 / 10
)

// tail upgrades the request to a websocket and streams every line published
// on the hub as a JSON encoded [sink.Entry].
func (s *Server) tail(w http.ResponseWriter, r *http.Request) {
	if s.hub == nil {
		httperr.Write(w, httperr.New("tail is not enabled", http.StatusServiceUnavailable))
		return
	}

	q := r.URL.Query()
	var only *channel.Channel
	if name := q.Get("channel"); name != "" {
		ch, err := s.logger.Registry().Resolve(name)
		if err != nil {
			httperr.Write(w, httperr.NotFound(err))
			return
		}
		only = ch
	}
	plain := q.Get("plain") == "1" || q.Get("plain") == "true"

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		s.logger.Debugf(r.Context(), "tail upgrade: %v", err)
		return
	}
	defer func() { _ = conn.Close() }()

	entries, cancel := s.hub.Subscribe(tailBuffer)
	defer cancel()

	s.logger.Debugf(r.Context(), "tail started")
	defer s.logger.Debugf(r.Context(), "tail ended")

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			return
		case <-s.done:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(writeWait))
			return
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case e, ok := <-entries:
			if !ok {
				return
			}
			if only != nil && e.Tag != only.Name() {
				continue
			}
			if plain {
				e.Line = ansi.Strip(e.Line)
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(e); err != nil {
				return
			}
		}
	}
}
