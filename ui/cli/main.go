// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for walletconv using Cobra.
// It defines the root command, loads configuration and wires the engine
// that the subcommands (detect, extract, convert, estimate, formats) share.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/toeirei/walletconv/buildvars"
	"github.com/toeirei/walletconv/internal/config"
	"github.com/toeirei/walletconv/internal/core"
	"github.com/toeirei/walletconv/internal/i18n"
	"github.com/toeirei/walletconv/internal/logging"
	"github.com/toeirei/walletconv/internal/source"
)

const modulePath = "github.com/toeirei/walletconv"

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var (
	cfgFile         string
	verbose         bool
	showVersionFlag bool

	appConfig config.Config
	engine    *core.Engine
	reader    source.Reader
	logCloser io.Closer = io.NopCloser(nil)
)

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		logging.Warnf("%v", err)
	}

	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		logging.Debugf("no config file found, running on defaults")
	} else if err != nil {
		return errors.New(i18n.T("config.error_load", err))
	}

	if appConfig.Language == "" {
		appConfig.Language = "en"
	}
	i18n.Init(appConfig.Language)

	if err := logging.SetLevel(appConfig.Log.Level); err != nil {
		logging.Warnf("ignoring log level: %v", err)
	}
	if verbose {
		logging.SetDebug(true)
	}
	if appConfig.Log.File != "" {
		c, err := logging.SetFile(logging.FileOptions{Filename: appConfig.Log.File})
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logCloser = c
	}

	engine, err = core.NewEngine(core.Options{
		Workers:   appConfig.Workers,
		CacheSize: appConfig.Cache.Size,
	})
	if err != nil {
		return err
	}
	reader = source.Reader{MaxBytes: appConfig.Input.MaxBytes}
	return nil
}

// Execute runs the CLI entrypoint. The root main package calls this and
// handles process exit.
func Execute() error {
	defer func() { _ = logCloser.Close() }()
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}
		if path == "" {
			return nil, nil
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// compositeVersion joins version, commit and build date for display.
func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// NewRootCmd creates and configures a new root cobra command.
// Tests call it to get an isolated command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walletconv",
		Short: i18n.T("root.short"),
		Long: `walletconv reads wallet backups and exported keys (mnemonic phrases, WIF and
hex private keys, extended keys, wallet JSON) and rewrites them in the file
layout expected by other wallets.

Files with several credentials are split into entries and each entry is
converted on its own.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				fmt.Fprintln(cmd.OutOrStdout(), compositeVersion())
				os.Exit(0)
			}
			return setupDefaultServices(cmd, args)
		},
	}
	cmd.Version = compositeVersion()

	defaults := config.Defaults()
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", defaults["language"].(string), `Output language ("en", "de")`)
	cmd.PersistentFlags().String("log.level", defaults["log.level"].(string), "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log.file", "", "Also write logs to this file (rotated)")
	cmd.PersistentFlags().Int64("input.max_bytes", defaults["input.max_bytes"].(int64), "Refuse inputs larger than this many bytes")
	cmd.PersistentFlags().Int("workers", 0, "Parallel conversions (0 = number of CPUs)")
	cmd.PersistentFlags().Int("cache.size", defaults["cache.size"].(int), "Rendered outputs kept in memory (negative disables)")

	cmd.AddCommand(
		newDetectCmd(),
		newExtractCmd(),
		newConvertCmd(),
		newEstimateCmd(),
		newFormatsCmd(),
		newBundleCmd(),
		newConfigCmd(),
		newDebugCmd(),
		newVersionCmd(),
	)
	return cmd
}

// resolveBuildVersion computes the best-available version, commit and build
// date from link-time variables and the embedded build info.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	var ok bool
	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
			ok = true
		}
	} else {
		ok = true
	}

	if ok && info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Some build paths only record our version as a dependency.
		if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && info.Deps != nil {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
