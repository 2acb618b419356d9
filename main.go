// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for walletconv.
//
// Usage:
//
//	go run . [command] [flags]
//	./walletconv convert --all backup.txt
//
// See --help for options.
package main

import (
	"os"

	"github.com/toeirei/walletconv/internal/logging"
	"github.com/toeirei/walletconv/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("walletconv: %v", err)
		os.Exit(1)
	}
}
