// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for walletconv using Cobra.
// It wires configuration, logging and localization, and provides commands that
// delegate to the `core` engine. CLI code should remain thin: classification,
// extraction and rendering live in the internal packages.
package cli
