// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Error carries the status an HTTP handler should answer err with.
type Error struct {
	err    error
	status int
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

// Status returns the HTTP status attached to e.
func (e *Error) Status() int {
	return e.status
}

// WithStatus attaches status to err. A nil err stays nil.
func WithStatus(err error, status int) error {
	if err == nil {
		return nil
	}
	return &Error{err: err, status: status}
}

// New is WithStatus(errors.New(message), status).
func New(message string, status int) error {
	return &Error{err: errors.New(message), status: status}
}

// BadRequest attaches http.StatusBadRequest to err.
func BadRequest(err error) error {
	return WithStatus(err, http.StatusBadRequest)
}

// NotFound attaches http.StatusNotFound to err.
func NotFound(err error) error {
	return WithStatus(err, http.StatusNotFound)
}

// Status finds the status attached anywhere in err's chain. A nil err is
// http.StatusOK and an err without status is http.StatusInternalServerError.
func Status(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.status
	}
	return http.StatusInternalServerError
}

// Response is the JSON body written by Write.
type Response struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// Write answers with err as a JSON [Response]. Errors without an attached
// status are reported as a bare 500 so internal details stay in the logs.
func Write(w http.ResponseWriter, err error) {
	status := Status(err)
	msg := http.StatusText(status)
	var e *Error
	if errors.As(err, &e) {
		msg = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{Error: msg, Code: status})
}
