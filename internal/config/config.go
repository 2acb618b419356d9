// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads walletconv settings from defaults, config files,
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RuntimeOS is swapped by tests to exercise platform-specific paths.
var RuntimeOS = runtime.GOOS

const (
	appName = "walletconv"
	// EnvPrefix is prepended to every environment override, e.g. WALLETCONV_LOG_LEVEL.
	EnvPrefix = "WALLETCONV"
)

var fileUsed string

// FileUsed returns the config file read by the last LoadConfig, or "".
func FileUsed() string { return fileUsed }

// Config is the full set of user-tunable settings.
type Config struct {
	Language string       `mapstructure:"language" yaml:"language"`
	Log      LogConfig    `mapstructure:"log" yaml:"log"`
	Input    InputConfig  `mapstructure:"input" yaml:"input"`
	Output   OutputConfig `mapstructure:"output" yaml:"output"`
	Workers  int          `mapstructure:"workers" yaml:"workers"`
	Cache    CacheConfig  `mapstructure:"cache" yaml:"cache"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

type InputConfig struct {
	MaxBytes int64 `mapstructure:"max_bytes" yaml:"max_bytes"`
}

type OutputConfig struct {
	Dir    string `mapstructure:"dir" yaml:"dir"`
	Bundle string `mapstructure:"bundle" yaml:"bundle"`
}

type CacheConfig struct {
	Size int `mapstructure:"size" yaml:"size"`
}

// Defaults returns the built-in values for every key.
func Defaults() map[string]any {
	return map[string]any{
		"language":        "en",
		"log.level":       "info",
		"log.file":        "",
		"input.max_bytes": int64(10 << 20),
		"output.dir":      ".",
		"output.bundle":   "",
		"workers":         0,
		"cache.size":      256,
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch RuntimeOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Walletconv")
		default:
			configDir = "/etc/walletconv"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appName)
	}

	return filepath.Join(configDir, appName+".yaml"), nil
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" when none are
// named) into the process environment. Missing files are ignored and
// variables already set are left alone.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	if err := godotenv.Load(present...); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// LoadConfig merges defaults, config files, WALLETCONV_* variables and the
// flags of cmd into a T. A viper.ConfigFileNotFoundError is returned along
// with a usable value when no file was found.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(appName)
	v.SetConfigType("yaml")

	// An explicit --config file wins over the search path.
	if additionalConfigFilePath != nil {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	fileUsed = ""
	var readErr error
	if isEmptyConfigFile(additionalConfigFilePath) {
		readErr = viper.ConfigFileNotFoundError{}
	} else if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; the defaults still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		readErr = err
	} else {
		fileUsed = v.ConfigFileUsed()
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, readErr
}

// isEmptyConfigFile treats a zero-length explicit file like a missing one.
func isEmptyConfigFile(path *string) bool {
	if path == nil {
		return false
	}
	fi, err := os.Stat(*path)
	return err == nil && fi.Size() == 0
}

// Encode renders c as YAML.
func Encode[T any](c *T) ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteConfigFile stores c as YAML in the user or system config location and
// returns the path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := Encode(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
