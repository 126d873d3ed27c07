// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package admin serves a small HTTP API for inspecting and adjusting a running
[logging.Logger].

The API is meant for local development: it lets a developer raise the
verbosity, flip individual channels on or off, and tail emitted lines over a
websocket without restarting the process.

# Routes

	GET    /v1/verbosity                 current threshold
	PUT    /v1/verbosity                 {"verbosity": n}
	GET    /v1/channels                  every registered channel with its state
	GET    /v1/channels/{name}           one channel
	PUT    /v1/channels/{name}/override  {"enabled": true|false}
	DELETE /v1/channels/{name}/override  remove the override
	GET    /v1/tail                      websocket stream of emitted lines

The tail endpoint accepts ?channel=name to receive a single channel and
?plain=1 to strip color sequences. Lines reach the stream only when the
[sink.Broadcast] passed to [New] is part of the logger's sink.

Every request runs on its own [thread.Thread] named "admin" carrying the
request id as context label, so the server's own logging can be told apart
from the application's. Errors are returned as JSON documents written by
[httperr.Write].
*/
package admin
