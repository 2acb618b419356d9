// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cfg "github.com/toeirei/walletconv/internal/config"
)

func isNotFound(err error) bool {
	_, ok := err.(viper.ConfigFileNotFoundError)
	return ok
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if !isNotFound(err) {
		t.Fatalf("expected ConfigFileNotFoundError, got: %T %v", err, err)
	}
	if got.Language != "en" || got.Log.Level != "info" || got.Cache.Size != 256 {
		t.Fatalf("defaults not applied: %+v", got)
	}
	if got.Input.MaxBytes != 10<<20 {
		t.Fatalf("expected default max bytes, got %d", got.Input.MaxBytes)
	}
}

func TestLoadConfig_EmptyCandidate_TreatedAsNotFound(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	emptyPath := filepath.Join(tmp, "walletconv.yaml")
	if err := os.WriteFile(emptyPath, nil, 0o600); err != nil {
		t.Fatalf("create empty file: %v", err)
	}

	_, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &emptyPath)
	if !isNotFound(err) {
		t.Fatalf("expected ConfigFileNotFoundError, got: %T %v", err, err)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	file := filepath.Join(t.TempDir(), "cfg.yaml")
	body := "language: de\nworkers: 3\noutput:\n  dir: out\n  bundle: zst\ninput:\n  max_bytes: 2048\n"
	if err := os.WriteFile(file, []byte(body), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "de" || got.Workers != 3 {
		t.Fatalf("unexpected config: %+v", got)
	}
	if got.Output.Dir != "out" || got.Output.Bundle != "zst" {
		t.Fatalf("unexpected output section: %+v", got.Output)
	}
	if got.Input.MaxBytes != 2048 {
		t.Fatalf("expected 2048, got %d", got.Input.MaxBytes)
	}
	if got.Log.Level != "info" {
		t.Fatalf("default log level lost: %q", got.Log.Level)
	}
	if cfg.FileUsed() != file {
		t.Fatalf("FileUsed()=%q want %q", cfg.FileUsed(), file)
	}
}

func TestLoadConfig_EnvVarParsing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("WALLETCONV_LOG_LEVEL", "debug")
	t.Setenv("WALLETCONV_CACHE_SIZE", "12")

	got, _ := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if got.Log.Level != "debug" {
		t.Fatalf("expected debug from env, got %q", got.Log.Level)
	}
	if got.Cache.Size != 12 {
		t.Fatalf("expected 12 from env, got %d", got.Cache.Size)
	}
}

func TestLoadConfig_FlagBindingOverridesEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("WALLETCONV_LANGUAGE", "fr")

	cmd := &cobra.Command{}
	cmd.Flags().String("language", "", "language")
	if err := cmd.Flags().Set("language", "de"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}

	got, _ := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if got.Language != "de" {
		t.Fatalf("expected de from flag (not fr from env), got %q", got.Language)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "test.env")
	if err := os.WriteFile(file, []byte("WALLETCONV_TEST_DOTENV=loaded\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv("WALLETCONV_TEST_DOTENV") })

	if err := cfg.LoadDotEnv(filepath.Join(dir, "missing.env"), file); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("WALLETCONV_TEST_DOTENV"); got != "loaded" {
		t.Fatalf("expected loaded, got %q", got)
	}
	if err := cfg.LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("missing files must be ignored: %v", err)
	}
}

func TestWriteConfigFile_CreatesFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := cfg.Config{Language: "de", Workers: 2}
	c.Output.Bundle = "zip"
	path, err := cfg.WriteConfigFile(&c, false)
	if err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}
	if want, _ := cfg.GetConfigPath(false); path != want {
		t.Fatalf("WriteConfigFile wrote %s, want %s", path, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected config file at %s: %v", path, err)
	}
	for _, want := range []string{"language: de", "workers: 2", "bundle: zip"} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("config file missing %q:\n%s", want, data)
		}
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Language != "de" || got.Output.Bundle != "zip" {
		t.Fatalf("written config not picked up: %+v", got)
	}
}

func TestGetConfigPath_System(t *testing.T) {
	orig := cfg.RuntimeOS
	t.Cleanup(func() { cfg.RuntimeOS = orig })

	cfg.RuntimeOS = "linux"
	p, err := cfg.GetConfigPath(true)
	if err != nil || p != "/etc/walletconv/walletconv.yaml" {
		t.Fatalf("linux system path = %q, %v", p, err)
	}

	cfg.RuntimeOS = "windows"
	t.Setenv("ProgramData", "C:\\ProgramData")
	p, err = cfg.GetConfigPath(true)
	if err != nil || !strings.HasSuffix(p, "walletconv.yaml") || !strings.Contains(p, "Walletconv") {
		t.Fatalf("windows system path = %q, %v", p, err)
	}
}
