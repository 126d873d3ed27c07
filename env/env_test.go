// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOSReader(t *testing.T) { //nolint:paralleltest // Modifies environment variables
	const testKey = "DEVLOG_TEST_ENV_VARIABLE"
	t.Setenv(testKey, "test_value_123")

	reader := &OSReader{}

	tests := []struct {
		name    string
		key     string
		want    string
		present bool
	}{
		{name: "existing environment variable", key: testKey, want: "test_value_123", present: true},
		{name: "non-existing environment variable", key: "DEVLOG_NONEXISTENT_ENV_VAR_12345"},
		{name: "empty key", key: ""},
	}

	for _, tt := range tests { //nolint:paralleltest // Test modifies environment variables
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reader.Getenv(tt.key))
			got, ok := reader.LookupEnv(tt.key)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.present, ok)
		})
	}
}

func TestOSReader_EmptyValue(t *testing.T) { //nolint:paralleltest // Modifies environment variables
	const testKey = "DEVLOG_TEST_EMPTY_VARIABLE"
	t.Setenv(testKey, "")

	got, ok := (&OSReader{}).LookupEnv(testKey)
	assert.True(t, ok, "set but empty variables are present")
	assert.Empty(t, got)
}

func TestMapReader(t *testing.T) {
	t.Parallel()

	r := MapReader{"A": "1", "EMPTY": ""}
	assert.Equal(t, "1", r.Getenv("A"))
	assert.Empty(t, r.Getenv("B"))

	v, ok := r.LookupEnv("EMPTY")
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = r.LookupEnv("B")
	assert.False(t, ok)
}

// TestReader_InterfaceCompliance ensures the readers implement the Reader interface
func TestReader_InterfaceCompliance(t *testing.T) {
	t.Parallel()
	var _ Reader = &OSReader{}
	var _ Reader = MapReader{}
}
