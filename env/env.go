// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import "os"

// Reader reads environment variables.
type Reader interface {
	Getenv(key string) string
	LookupEnv(key string) (string, bool)
}

// OSReader reads the process environment.
type OSReader struct{}

// Getenv calls os.Getenv.
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// LookupEnv calls os.LookupEnv.
func (*OSReader) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapReader is a fixed environment. Absent keys are unset.
type MapReader map[string]string

// Getenv returns m[key].
func (m MapReader) Getenv(key string) string {
	return m[key]
}

// LookupEnv reports m[key] and whether key is present.
func (m MapReader) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
