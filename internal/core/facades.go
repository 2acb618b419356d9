// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/toeirei/walletconv/internal/bundle"
	"github.com/toeirei/walletconv/internal/format"
	"github.com/toeirei/walletconv/internal/logging"
)

// Estimate pairs a format with its predicted output size.
type Estimate struct {
	Format format.Descriptor
	Size   int
}

// EstimateAll predicts output sizes for text in each of ids, in order.
func (e *Engine) EstimateAll(text string, ids []format.ID) []Estimate {
	out := make([]Estimate, 0, len(ids))
	for _, id := range ids {
		out = append(out, Estimate{Format: format.MustLookup(id), Size: e.EstimateSize(text, id)})
	}
	return out
}

// WriteOutputs saves each output as its own file under dir and returns the
// written paths. Files are created with 0600 since they carry key material.
func WriteOutputs(ctx context.Context, dir string, outs []NamedOutput, rep Reporter) ([]string, error) {
	rep = reporterOrNop(rep)
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	paths := make([]string, 0, len(outs))
	for _, o := range outs {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		p := filepath.Join(dir, o.Name)
		if err := os.WriteFile(p, o.Data, 0o600); err != nil {
			return paths, fmt.Errorf("write %s: %w", o.Name, err)
		}
		rep.Reportf("%s (%d bytes)", p, o.Size())
		paths = append(paths, p)
	}
	return paths, nil
}

// BundleFiles maps outputs to archive members.
func BundleFiles(outs []NamedOutput) []bundle.File {
	files := make([]bundle.File, 0, len(outs))
	for _, o := range outs {
		files = append(files, bundle.File{
			Name:     o.Name,
			Format:   string(o.Format.ID),
			MimeType: o.Format.MimeType,
			Data:     o.Data,
		})
	}
	return files
}

// WriteBundle packages outs with bw into w.
func WriteBundle(w io.Writer, bw BundleWriter, outs []NamedOutput) error {
	if err := bw.Write(w, BundleFiles(outs)); err != nil {
		return fmt.Errorf("write bundle: %w", err)
	}
	logging.Debugf("bundled %d outputs", len(outs))
	return nil
}
