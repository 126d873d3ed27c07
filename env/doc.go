// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env abstracts environment lookups so the DEVLOG_* variables can be
supplied by tests without touching the process environment.

Code that reads settings takes a Reader. Production passes OSReader:

	cfg, err := config.FromEnv(&env.OSReader{})

Tests pass a MapReader, where a missing key is unset and an empty value is
set but empty:

	cfg, err := config.FromEnv(env.MapReader{"DEVLOG_VERBOSITY": "7"})

or the gomock MockReader from the mocks package when call expectations
matter:

	r := mocks.NewMockReader(gomock.NewController(t))
	r.EXPECT().LookupEnv("DEVLOG_VERBOSITY").Return("7", true)
*/
package env
