// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package estimate predicts output sizes for display without rendering.
// The numbers are heuristics; they are not required to match the bytes
// synth actually produces.
package estimate

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"

	"github.com/toeirei/walletconv/internal/format"
)

const (
	// jsonWrapperOverhead is added for JSON input without a wallet_type field.
	jsonWrapperOverhead = 200
	// rawWrapperOverhead is added for non-JSON input.
	rawWrapperOverhead = 500
	// binaryOverheadPercent inflates estimates for binary formats.
	binaryOverheadPercent = 115
)

// Size returns the estimated output length in bytes of text rendered as id.
func Size(text string, id format.ID) int {
	n := baseSize(text)
	if format.MustLookup(id).Binary() {
		n = scaleUp(n, binaryOverheadPercent)
	}
	return n
}

func baseSize(text string) int {
	t := strings.TrimSpace(text)
	if t == "" || !gjson.Valid(t) {
		return len(text) + rawWrapperOverhead
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(t), "", "  "); err != nil {
		return len(text) + rawWrapperOverhead
	}
	n := buf.Len()
	if !gjson.Get(t, "wallet_type").Exists() {
		n += jsonWrapperOverhead
	}
	return n
}

// scaleUp computes ceil(n * percent / 100) without floating point error.
func scaleUp(n, percent int) int {
	return (n*percent + 99) / 100
}

// Human renders a byte count for display, e.g. "1.2 kB".
func Human(n int) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}
