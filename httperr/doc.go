// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package httperr attaches HTTP statuses to errors and writes them as JSON.

Handlers return or build an error with the status it deserves and hand it
to Write at the edge:

	ch, err := registry.Resolve(name)
	if err != nil {
		httperr.Write(w, httperr.NotFound(err))
		return
	}

The status survives further wrapping; Status walks the chain:

	err = fmt.Errorf("override: %w", httperr.BadRequest(err))
	httperr.Status(err) // 400

The body carries the error text and the status:

	{"error":"unknown channel: \"nope\"","code":404}

An error without a status becomes a 500 whose text is only the status
text, so messages from unexpected failures are not sent to clients.
*/
package httperr
