// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/devlog/channel"
	"github.com/stacklok/devlog/httperr"
	"github.com/stacklok/devlog/logging"
	"github.com/stacklok/devlog/sink"
	"github.com/stacklok/devlog/style"
	"github.com/stacklok/devlog/thread"
)

type fixture struct {
	logger  *logging.Logger
	capture *sink.Capture
	hub     *sink.Broadcast
	server  *Server
}

func newFixture(t *testing.T, palette *style.Palette) *fixture {
	t.Helper()
	c := &sink.Capture{}
	hub := sink.NewBroadcast()
	l := logging.New(
		logging.WithSink(sink.Tee(c.Func(), hub.Func())),
		logging.WithPalette(palette),
		logging.WithUnicode(false),
		logging.WithVerbosity(5),
	)
	return &fixture{logger: l, capture: c, hub: hub, server: New(l, hub)}
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(w, r)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

func TestVerbosity(t *testing.T) {
	t.Parallel()
	f := newFixture(t, style.Plain())

	w := f.do(t, http.MethodGet, "/v1/verbosity", "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[Verbosity](t, w)
	require.NotNil(t, got.Verbosity)
	assert.Equal(t, 5, *got.Verbosity)

	w = f.do(t, http.MethodPut, "/v1/verbosity", `{"verbosity": 9}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 9, f.logger.Verbosity())
	assert.True(t, f.logger.Enabled(channel.Trace))

	found := false
	for _, line := range f.capture.Lines() {
		if strings.HasSuffix(line, "verbosity 5 -> 9") {
			found = true
		}
	}
	assert.True(t, found, "change should be logged: %q", f.capture.Lines())
}

func TestVerbosity_AnyInteger(t *testing.T) {
	t.Parallel()

	for _, v := range []int{100, -5, 1000, math.MaxInt32} {
		f := newFixture(t, style.Plain())

		w := f.do(t, http.MethodPut, "/v1/verbosity", fmt.Sprintf(`{"verbosity": %d}`, v))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, v, f.logger.Verbosity())
	}

	f := newFixture(t, style.Plain())
	f.do(t, http.MethodPut, "/v1/verbosity", `{"verbosity": -5}`)
	assert.False(t, f.logger.Enabled(channel.Warn))
	f.do(t, http.MethodPut, "/v1/verbosity", `{"verbosity": 100}`)
	assert.True(t, f.logger.Enabled(channel.Trace))
}

func TestVerbosity_BadRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "missing field", body: `{}`, want: "verbosity"},
		{name: "not a number", body: `{"verbosity": "high"}`, want: "invalid request body"},
		{name: "unknown field", body: `{"verbosity": 1, "level": 2}`, want: "invalid request body"},
		{name: "fraction", body: `{"verbosity": 1.5}`, want: "invalid request body"},
		{name: "empty", body: ` `, want: "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t, style.Plain())

			w := f.do(t, http.MethodPut, "/v1/verbosity", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decode[httperr.Response](t, w)
			assert.Contains(t, resp.Error, tt.want)
			assert.Equal(t, 5, f.logger.Verbosity())
		})
	}
}

func TestChannels(t *testing.T) {
	t.Parallel()
	f := newFixture(t, style.Plain())

	w := f.do(t, http.MethodGet, "/v1/channels", "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[[]Channel](t, w)

	byName := make(map[string]Channel, len(got))
	for _, ch := range got {
		byName[ch.Name] = ch
	}
	require.Contains(t, byName, "warn")
	require.Contains(t, byName, "trace")

	warn := byName["warn"]
	assert.Equal(t, 0, warn.Verbosity)
	assert.Equal(t, "  X", warn.Token)
	assert.True(t, warn.Enabled)
	assert.Equal(t, "threshold", warn.Source)
	assert.Nil(t, warn.Override)

	assert.False(t, byName["trace"].Enabled)
}

func TestChannel_Override(t *testing.T) {
	t.Parallel()
	f := newFixture(t, style.Plain())

	w := f.do(t, http.MethodPut, "/v1/channels/trace/override", `{"enabled": true}`)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[Channel](t, w)
	assert.True(t, got.Enabled)
	assert.Equal(t, "override", got.Source)
	require.NotNil(t, got.Override)
	assert.True(t, *got.Override)
	assert.True(t, f.logger.Enabled(channel.Trace))

	w = f.do(t, http.MethodPut, "/v1/channels/warn/override", `{"enabled": false}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, f.logger.Enabled(channel.Warn))

	w = f.do(t, http.MethodDelete, "/v1/channels/trace/override", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.False(t, f.logger.Enabled(channel.Trace))

	w = f.do(t, http.MethodGet, "/v1/channels/trace", "")
	require.Equal(t, http.StatusOK, w.Code)
	got = decode[Channel](t, w)
	assert.Nil(t, got.Override)
	assert.Equal(t, "threshold", got.Source)
}

func TestChannel_Errors(t *testing.T) {
	t.Parallel()
	f := newFixture(t, style.Plain())

	w := f.do(t, http.MethodGet, "/v1/channels/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decode[httperr.Response](t, w).Error, `"nope"`)

	w = f.do(t, http.MethodPut, "/v1/channels/nope/override", `{"enabled": true}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodPut, "/v1/channels/note/override", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPost, "/v1/verbosity", `{"verbosity": 1}`)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRequestThread(t *testing.T) {
	t.Parallel()
	f := newFixture(t, style.Plain())

	r := httptest.NewRequest(http.MethodGet, "/v1/verbosity", nil)
	r.Header.Set(RequestIDHeader, "abc123")
	w := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(w, r)

	assert.Equal(t, "abc123", w.Header().Get(RequestIDHeader))
	lines := f.capture.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "<--")
	assert.Contains(t, lines[0], "|admin|request-abc123  GET /v1/verbosity")
	assert.Contains(t, lines[1], "-->")
	assert.Contains(t, lines[1], "|admin|request-abc123  200 OK")
}

func TestRequestThread_RejectsUnsafeID(t *testing.T) {
	t.Parallel()
	f := newFixture(t, style.Plain())

	r := httptest.NewRequest(http.MethodGet, "/v1/verbosity", nil)
	r.Header.Set(RequestIDHeader, "a|b")
	w := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(w, r)

	id := w.Header().Get(RequestIDHeader)
	assert.Len(t, id, 8)
	assert.NotContains(t, id, "|")
}

func TestRecoveredPanic(t *testing.T) {
	t.Parallel()
	f := newFixture(t, style.Plain())
	f.server.router.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	w := f.do(t, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var warned bool
	for _, e := range f.capture.Entries() {
		if e.Tag == "warn" && strings.Contains(e.Line, "panic serving GET /boom: boom") {
			warned = true
			assert.Contains(t, e.Line, "|admin|request-")
		}
	}
	assert.True(t, warned)
}

func dialTail(t *testing.T, f *fixture, query string) *websocket.Conn {
	t.Helper()
	ts := httptest.NewServer(f.server.Handler())
	t.Cleanup(ts.Close)

	u, err := url.Parse(ts.URL)
	require.NoError(t, err)
	u.Scheme = "ws"
	u.Path = "/v1/tail"
	u.RawQuery = query

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool { return f.hub.Subscribers() == 1 },
		2*time.Second, 5*time.Millisecond)
	return conn
}

// readUntil reads entries until one contains want.
func readUntil(t *testing.T, conn *websocket.Conn, want string) sink.Entry {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for {
		var e sink.Entry
		require.NoError(t, conn.ReadJSON(&e))
		if strings.Contains(e.Line, want) {
			return e
		}
	}
}

func TestTail(t *testing.T) {
	t.Parallel()
	f := newFixture(t, style.Plain())
	conn := dialTail(t, f, "")

	ctx := thread.NewContext(context.Background(), thread.New("worker"))
	f.logger.Warnf(ctx, "disk almost full")

	e := readUntil(t, conn, "disk almost full")
	assert.Equal(t, "warn", e.Tag)
	assert.Contains(t, e.Line, "|worker  disk almost full")
}

func TestTail_ChannelFilter(t *testing.T) {
	t.Parallel()
	f := newFixture(t, style.Plain())
	conn := dialTail(t, f, "channel=warn")

	ctx := thread.NewContext(context.Background(), thread.New("worker"))
	f.logger.Notef(ctx, "skipped")
	f.logger.Warnf(ctx, "kept")

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var e sink.Entry
	require.NoError(t, conn.ReadJSON(&e))
	assert.Equal(t, "warn", e.Tag)
	assert.True(t, strings.HasSuffix(e.Line, "kept"))
}

func TestTail_Plain(t *testing.T) {
	t.Parallel()
	f := newFixture(t, style.ANSI())
	conn := dialTail(t, f, "plain=1")

	f.logger.Warnf(context.Background(), "colorless")

	e := readUntil(t, conn, "colorless")
	assert.NotContains(t, e.Line, "\x1b")
	assert.True(t, strings.HasPrefix(e.Line, "  X  "), "got %q", e.Line)
}

func TestTail_UnknownChannel(t *testing.T) {
	t.Parallel()
	f := newFixture(t, style.Plain())

	w := f.do(t, http.MethodGet, "/v1/tail?channel=nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTail_Disabled(t *testing.T) {
	t.Parallel()
	l := logging.New(logging.WithSink(sink.Discard))
	s := New(l, nil)

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/tail", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestTail_Close(t *testing.T) {
	t.Parallel()
	f := newFixture(t, style.Plain())
	conn := dialTail(t, f, "")

	f.server.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for {
		_, _, err := conn.ReadMessage()
		if err == nil {
			continue
		}
		assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
		break
	}
	require.Eventually(t, func() bool { return f.hub.Subscribers() == 0 },
		2*time.Second, 5*time.Millisecond)
}

func TestListenAndServe(t *testing.T) {
	t.Parallel()
	f := newFixture(t, style.Plain())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- f.server.ListenAndServe(ctx, "127.0.0.1:0") }()

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
