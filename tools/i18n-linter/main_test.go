// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFlattenYAML(t *testing.T) {
	m := map[string]any{
		"top": map[string]any{
			"sub": "value",
			"arr": []any{"one", "two"},
		},
		"other": "v",
	}
	keys := make(map[string]struct{})
	flattenYAML("", m, keys)
	for _, want := range []string{"top.sub", "top.arr[0]", "top.arr[1]", "other"} {
		if _, ok := keys[want]; !ok {
			t.Fatalf("expected %s in %v", want, keys)
		}
	}
}

func TestLint(t *testing.T) {
	root := t.TempDir()
	locales := filepath.Join(root, "locales")
	writeFile(t, filepath.Join(locales, "en.yaml"), "a.used: \"A\"\nkind.table: \"K\"\nb.orphan: \"B\"\n")
	writeFile(t, filepath.Join(locales, "de.yaml"), "a.used: \"A\"\nb.orphan: \"B\"\n")
	writeFile(t, filepath.Join(root, "pkg", "x.go"), `package pkg
var ids = map[int]string{1: "kind.table"}
func f() { _ = i18n.T("a.used"); _ = i18n.T("c.undefined") }
`)
	writeFile(t, filepath.Join(root, "pkg", "x_test.go"), `package pkg
func g() { _ = i18n.T("b.orphan") }
`)

	r, err := lint(root, locales)
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if len(r.Undefined) != 1 || r.Undefined[0] != "c.undefined" {
		t.Fatalf("undefined=%v", r.Undefined)
	}
	if len(r.Orphaned) != 1 || r.Orphaned[0] != "b.orphan" {
		t.Fatalf("orphaned=%v", r.Orphaned)
	}
	if got := r.Missing["de.yaml"]; len(got) != 1 || got[0] != "kind.table" {
		t.Fatalf("missing=%v", r.Missing)
	}
	if !r.failed() {
		t.Fatalf("expected failure")
	}

	var buf bytes.Buffer
	printReport(&buf, r)
	if !strings.Contains(buf.String(), "Missing from de.yaml") {
		t.Fatalf("report missing section:\n%s", buf.String())
	}
}

func TestLintRepositoryLocales(t *testing.T) {
	root := filepath.Join("..", "..")
	r, err := lint(root, filepath.Join(root, localesDir))
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if r.failed() {
		var buf bytes.Buffer
		printReport(&buf, r)
		t.Fatalf("locale inconsistencies:\n%s", buf.String())
	}
}
