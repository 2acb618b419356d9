// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package core wires the classifier, extractor, synthesizer and estimator
// into the facades used by UI layers. The engine packages underneath are
// pure; side effects such as writing bundles or printing progress go through
// the small interfaces declared here.
package core

import (
	"io"

	"github.com/toeirei/walletconv/internal/bundle"
)

// Reporter is used by facades to emit progress or human-readable messages.
// Implementations may write to stdout, logs, or test buffers.
type Reporter interface {
	Reportf(format string, args ...any)
}

// BundleWriter packages several named outputs into one archive.
type BundleWriter interface {
	Write(w io.Writer, files []bundle.File) error
}

// nopReporter discards all messages.
type nopReporter struct{}

func (nopReporter) Reportf(string, ...any) {}

func reporterOrNop(rep Reporter) Reporter {
	if rep == nil {
		return nopReporter{}
	}
	return rep
}
