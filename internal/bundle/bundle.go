// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package bundle packages several converted files into a single archive.
// Two kinds are supported: a plain zip archive and a zstd-compressed JSON
// manifest carrying every file inline.
package bundle

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
)

// Kind selects the archive layout.
type Kind string

const (
	KindZip Kind = "zip"
	KindZst Kind = "zst"
)

const manifestVersion = 1

var (
	// ErrUnknownKind is returned for bundle kinds other than zip and zst.
	ErrUnknownKind = errors.New("unknown bundle kind")
	// ErrChecksum is returned when a manifest entry does not match its digest.
	ErrChecksum = errors.New("bundle checksum mismatch")
)

// File is one member of a bundle.
type File struct {
	Name     string `json:"name"`
	Format   string `json:"format"`
	MimeType string `json:"mime"`
	Data     []byte `json:"data"`
}

// ParseKind accepts "zip" and "zst" case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindZip, KindZst:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// KindFromPath infers the bundle kind from a file name suffix.
func KindFromPath(path string) (Kind, error) {
	switch p := strings.ToLower(path); {
	case strings.HasSuffix(p, ".zst"):
		return KindZst, nil
	case strings.HasSuffix(p, ".zip"):
		return KindZip, nil
	default:
		return "", fmt.Errorf("%w: cannot tell from %q", ErrUnknownKind, path)
	}
}

// Extension returns the file suffix for archives of this kind.
func (k Kind) Extension() string {
	if k == KindZst {
		return ".json.zst"
	}
	return ".zip"
}

// Writer writes bundles of one kind.
type Writer struct {
	Kind Kind
}

// Write encodes files to w.
func (bw Writer) Write(w io.Writer, files []File) error {
	switch bw.Kind {
	case KindZip:
		return WriteZip(w, files)
	case KindZst:
		return WriteZst(w, files)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, bw.Kind)
	}
}

// WriteZip stores files as deflated zip members in the given order.
func WriteZip(w io.Writer, files []File) error {
	zw := zip.NewWriter(w)
	for _, f := range files {
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: f.Name, Method: zip.Deflate})
		if err != nil {
			_ = zw.Close()
			return fmt.Errorf("create zip entry %s: %w", f.Name, err)
		}
		if _, err := fw.Write(f.Data); err != nil {
			_ = zw.Close()
			return fmt.Errorf("write zip entry %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finish zip: %w", err)
	}
	return nil
}

type manifest struct {
	Version int             `json:"version"`
	ID      string          `json:"id"`
	Files   []manifestEntry `json:"files"`
}

type manifestEntry struct {
	File
	Size   int    `json:"size"`
	SHA256 string `json:"sha256"`
}

func digest(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// WriteZst writes a zstd-compressed JSON manifest holding every file.
func WriteZst(w io.Writer, files []File) error {
	m := manifest{Version: manifestVersion, ID: uuid.NewString(), Files: make([]manifestEntry, 0, len(files))}
	for _, f := range files {
		m.Files = append(m.Files, manifestEntry{File: f, Size: len(f.Data), SHA256: digest(f.Data)})
	}
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("create zstd writer: %w", err)
	}
	enc := json.NewEncoder(zw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		_ = zw.Close()
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finish zstd stream: %w", err)
	}
	return nil
}

// ReadZst decodes a manifest written by WriteZst and verifies each digest.
func ReadZst(r io.Reader) ([]File, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("create zstd reader: %w", err)
	}
	defer zr.Close()
	var m manifest
	if err := json.NewDecoder(zr).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	files := make([]File, 0, len(m.Files))
	for _, e := range m.Files {
		if e.SHA256 != digest(e.Data) {
			return nil, fmt.Errorf("%w: %s", ErrChecksum, e.Name)
		}
		files = append(files, e.File)
	}
	return files, nil
}

// ReadZip lists the members of a zip archive. Format and MIME type are not
// recorded in zip archives and come back empty.
func ReadZip(data []byte) ([]File, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	files := make([]File, 0, len(zr.File))
	for _, zf := range zr.File {
		rc, err := zf.Open()
		if err != nil {
			return nil, fmt.Errorf("open zip entry %s: %w", zf.Name, err)
		}
		b, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read zip entry %s: %w", zf.Name, err)
		}
		files = append(files, File{Name: zf.Name, Data: b})
	}
	return files, nil
}

// Read decodes a bundle of the given kind.
func Read(r io.Reader, kind Kind) ([]File, error) {
	switch kind {
	case KindZst:
		return ReadZst(r)
	case KindZip:
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read zip: %w", err)
		}
		return ReadZip(b)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
