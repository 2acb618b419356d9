// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/toeirei/walletconv/internal/format"
	"github.com/toeirei/walletconv/internal/model"
)

// DefaultBaseName is used when the input has no usable file name (stdin).
const DefaultBaseName = "converted"

// BaseName strips directory and extension from an input path.
func BaseName(path string) string {
	if path == "" || path == "-" {
		return DefaultBaseName
	}
	b := filepath.Base(path)
	b = strings.TrimSuffix(b, filepath.Ext(b))
	if b == "" || b == "." {
		return DefaultBaseName
	}
	return b
}

// OutputName names one output file. A single-entry input yields
// <base>_<format><ext>; otherwise the entry index is inserted so names
// never collide.
func OutputName(base string, e model.Entry, d format.Descriptor, total int) string {
	if base == "" {
		base = DefaultBaseName
	}
	if total <= 1 {
		return d.FileName(fmt.Sprintf("%s_%s", base, d.ID))
	}
	return d.FileName(fmt.Sprintf("%s_%d_%s", base, e.Index, d.ID))
}
