// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/toeirei/walletconv/internal/bundle"
)

func TestBundleCmd_ListAndVerify(t *testing.T) {
	for _, kind := range []string{"zst", "zip"} {
		t.Run(kind, func(t *testing.T) {
			in := writeInput(t, "seed.txt", cliMnemonic)
			outDir := t.TempDir()
			if _, _, err := runCLI(t, "", "convert", "-f", "electrum,metamask", "-b", kind, "-o", outDir, in); err != nil {
				t.Fatalf("convert failed: %v", err)
			}
			name := filepath.Join(outDir, "seed"+bundle.Kind(kind).Extension())

			out, _, err := runCLI(t, "", "bundle", "list", name)
			if err != nil {
				t.Fatalf("bundle list failed: %v", err)
			}
			for _, want := range []string{"seed_electrum.wallet", "seed_metamask.json"} {
				if !strings.Contains(out, want) {
					t.Fatalf("list output missing %s:\n%s", want, out)
				}
			}
			if strings.Contains(out, "abandon") {
				t.Fatalf("list output leaks content:\n%s", out)
			}

			out, _, err = runCLI(t, "", "bundle", "verify", name)
			if err != nil {
				t.Fatalf("bundle verify failed: %v", err)
			}
			if !strings.Contains(out, "2 files OK") {
				t.Fatalf("unexpected verify output: %q", out)
			}
		})
	}
}

func TestBundleCmd_VerifyDetectsTampering(t *testing.T) {
	raw := []byte(`{"version":1,"id":"x","files":[{"name":"a.json","format":"json","mime":"application/json","data":"e30=","size":2,"sha256":"00"}]}`)
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatalf("zstd writer: %v", err)
	}
	if _, err := zw.Write(raw); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	p := filepath.Join(t.TempDir(), "broken.json.zst")
	if err := os.WriteFile(p, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("write bundle: %v", err)
	}

	if _, _, err := runCLI(t, "", "bundle", "verify", p); !errors.Is(err, bundle.ErrChecksum) {
		t.Fatalf("expected ErrChecksum, got %v", err)
	}
}

func TestBundleCmd_KindFlag(t *testing.T) {
	in := writeInput(t, "seed.txt", cliMnemonic)
	outDir := t.TempDir()
	if _, _, err := runCLI(t, "", "convert", "-f", "json", "-b", "zip", "-o", outDir, in); err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	renamed := filepath.Join(outDir, "seed.bin")
	if err := os.Rename(filepath.Join(outDir, "seed.zip"), renamed); err != nil {
		t.Fatalf("rename: %v", err)
	}

	if _, _, err := runCLI(t, "", "bundle", "verify", renamed); !errors.Is(err, bundle.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind without --kind, got %v", err)
	}
	if _, _, err := runCLI(t, "", "bundle", "verify", "--kind", "zip", renamed); err != nil {
		t.Fatalf("verify with --kind failed: %v", err)
	}
}
