// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package thread

import "errors"

var errUnsupported = errors.New("thread naming is not supported on this platform")

func setOSName(string) error {
	return errUnsupported
}

func osName() (string, error) {
	return "", errUnsupported
}
