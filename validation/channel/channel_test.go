// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package channel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "simple", input: "warn"},
		{name: "dash", input: "net-left"},
		{name: "underscore and digit", input: "sync_debug2"},
		{name: "empty", input: "", wantErr: "empty"},
		{name: "whitespace only", input: "   ", wantErr: "empty"},
		{name: "null byte", input: "wa\x00rn", wantErr: "null bytes"},
		{name: "uppercase", input: "Warn", wantErr: "lowercase"},
		{name: "leading digit", input: "2fast", wantErr: "start with a letter"},
		{name: "space", input: "net left", wantErr: "start with a letter"},
		{name: "slash", input: "net/left", wantErr: "start with a letter"},
		{name: "too long", input: "a" + strings.Repeat("b", MaxNameLength), wantErr: "maximum length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateName(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
