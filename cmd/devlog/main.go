// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Command devlog demonstrates the devlog channels with a handful of worker
// threads and exposes the admin API for poking at them.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/stacklok/devlog/cmd/devlog/app"
	"github.com/stacklok/devlog/env"
)

func main() {
	if err := app.Command(&env.OSReader{}).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "devlog:", err)
		os.Exit(1)
	}
}
