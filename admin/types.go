// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package admin

// Verbosity is the body of the verbosity endpoints.
type Verbosity struct {
	Verbosity *int `json:"verbosity" validate:"required"`
}

// Override is the body of PUT /v1/channels/{name}/override.
type Override struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// Channel describes a registered channel and how the gate treats it.
type Channel struct {
	Name      string `json:"name"`
	Verbosity int    `json:"verbosity"`
	Token     string `json:"token"`
	// Override is nil when the channel follows the threshold.
	Override *bool  `json:"override,omitempty"`
	Enabled  bool   `json:"enabled"`
	Source   string `json:"source"`
}
