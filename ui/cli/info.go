// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toeirei/walletconv/internal/config"
	"github.com/toeirei/walletconv/internal/format"
	"github.com/toeirei/walletconv/internal/i18n"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := [][]string{}
			for _, d := range format.All() {
				rows = append(rows, []string{string(d.ID), d.DisplayName, d.Extension, string(d.Category), d.MimeType})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{
				i18n.T("formats.header_id"),
				i18n.T("formats.header_name"),
				i18n.T("formats.header_ext"),
				i18n.T("formats.header_category"),
				i18n.T("formats.header_mime"),
			}, rows))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("version.line", compositeVersion()))
			return nil
		},
	}
}

// newConfigCmd groups commands that inspect or persist configuration.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialise the configuration file",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Encode(&appConfig)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	var system bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Long: `Writes the current settings (defaults merged with environment and flags) to
walletconv.yaml in the user config directory, or the system directory with
--system.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.WriteConfigFile(&appConfig, system)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.wrote_default", path))
			return nil
		},
	}
	initCmd.Flags().BoolVar(&system, "system", false, "Write the system-wide file instead")

	cmd.AddCommand(show, initCmd)
	return cmd
}
