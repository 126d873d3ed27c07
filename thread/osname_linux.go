// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package thread

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// maxOSName is the kernel limit for a task name, excluding the terminator.
const maxOSName = 15

func setOSName(name string) error {
	var buf [maxOSName + 1]byte
	copy(buf[:maxOSName], name)
	return unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(&buf[0])), 0, 0, 0)
}

func osName() (string, error) {
	var buf [maxOSName + 1]byte
	if err := unix.Prctl(unix.PR_GET_NAME, uintptr(unsafe.Pointer(&buf[0])), 0, 0, 0); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(buf[:]), nil
}
