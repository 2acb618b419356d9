// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package source reads input files and turns them into text for the engine.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/toeirei/walletconv/internal/logging"
	"github.com/toeirei/walletconv/internal/security"
)

// DefaultMaxBytes caps the size of a single input.
const DefaultMaxBytes int64 = 10 << 20

var (
	// ErrInputUnreadable is returned when the input cannot be read or is not text.
	ErrInputUnreadable = errors.New("input is not readable text")
	// ErrOversizeInput is returned when the input exceeds the configured limit.
	ErrOversizeInput = errors.New("input exceeds size limit")
)

// Reader reads inputs with a size limit. The zero value uses DefaultMaxBytes.
type Reader struct {
	MaxBytes int64
}

func (r Reader) limit() int64 {
	if r.MaxBytes <= 0 {
		return DefaultMaxBytes
	}
	return r.MaxBytes
}

// ReadText reads all of in and decodes it. A UTF-8 or UTF-16 byte order mark
// selects the encoding; without one the input must be valid UTF-8.
func (r Reader) ReadText(ctx context.Context, in io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	limit := r.limit()
	raw, err := io.ReadAll(io.LimitReader(in, limit+1))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInputUnreadable, err)
	}
	if int64(len(raw)) > limit {
		buf := security.Secret(raw)
		buf.Zero()
		return "", fmt.Errorf("%w: more than %d bytes", ErrOversizeInput, limit)
	}
	return decodeAndWipe(raw)
}

// decodeAndWipe decodes raw and then overwrites it with zeros. The returned
// string never shares memory with raw.
func decodeAndWipe(raw []byte) (string, error) {
	buf := security.Secret(raw)
	defer buf.Zero()
	var text string
	err := buf.Use(func(b []byte) error {
		var err error
		text, err = Decode(b)
		return err
	})
	return text, err
}

// ReadFile opens path and reads it. The path "-" reads standard input.
func (r Reader) ReadFile(ctx context.Context, path string) (string, error) {
	if path == "" || path == "-" {
		return r.ReadText(ctx, os.Stdin)
	}
	fi, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInputUnreadable, err)
	}
	if fi.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrInputUnreadable, path)
	}
	if fi.Size() > r.limit() {
		return "", fmt.Errorf("%w: %s is %d bytes", ErrOversizeInput, path, fi.Size())
	}
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInputUnreadable, err)
	}
	defer func() { _ = f.Close() }()
	logging.Debugf("reading %s (%d bytes)", path, fi.Size())
	return r.ReadText(ctx, f)
}

var (
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// Decode converts raw bytes into a string, honoring a leading BOM.
func Decode(raw []byte) (string, error) {
	if bytes.HasPrefix(raw, bomUTF16BE) || bytes.HasPrefix(raw, bomUTF16LE) {
		// BOMOverride picks the byte order from the mark and strips it.
		dec := unicode.BOMOverride(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder())
		out, _, err := transform.Bytes(dec, raw)
		if err != nil {
			return "", fmt.Errorf("%w: utf-16: %v", ErrInputUnreadable, err)
		}
		return string(out), nil
	}
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: invalid utf-8", ErrInputUnreadable)
	}
	return string(raw), nil
}
