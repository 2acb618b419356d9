// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/toeirei/walletconv/internal/config"
)

// runCLI executes a fresh command tree with isolated config directories.
func runCLI(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	verbose = false
	showVersionFlag = false
	appConfig = config.Config{}

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return p
}

func TestGetConfigPathFromCli_FlagNotSet(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "config file")

	p, err := getConfigPathFromCli(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil path when flag not set, got %v", *p)
	}
}

func TestGetConfigPathFromCli_WithValidFile(t *testing.T) {
	file := writeInput(t, "wc.yaml", "language: de\n")

	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "config file")
	if err := cmd.Flags().Set("config", file); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}

	p, err := getConfigPathFromCli(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil || *p != file {
		t.Fatalf("expected path %s, got %v", file, p)
	}
}

func TestGetConfigPathFromCli_MissingFile(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "config file")
	_ = cmd.Flags().Set("config", filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := getConfigPathFromCli(cmd); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestSetup_ConfigFileApplied(t *testing.T) {
	cfgPath := writeInput(t, "wc.yaml", "language: de\nworkers: 2\ncache:\n  size: -1\n")
	out, _, err := runCLI(t, "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
		"--config", cfgPath, "detect")
	if err != nil {
		t.Fatalf("detect failed: %v", err)
	}
	if !strings.Contains(out, "Mnemonic-Phrase") {
		t.Fatalf("expected German label from config language, got:\n%s", out)
	}
	if appConfig.Workers != 2 || appConfig.Cache.Size != -1 {
		t.Fatalf("config not applied: %+v", appConfig)
	}
}
