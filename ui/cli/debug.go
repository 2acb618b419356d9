// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/toeirei/walletconv/internal/config"
	"github.com/toeirei/walletconv/internal/i18n"
)

// newDebugCmd dumps what configuration the CLI ended up with and where it
// came from. Useful when a setting from the environment or a file is not
// taking effect.
func newDebugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debug",
		Short: "Dump debug information about config, env, flags and settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "--- WALLETCONV DEBUG ---")
			fmt.Fprintf(out, "Version: %s\n", compositeVersion())

			used := config.FileUsed()
			if used == "" {
				used = "(none, running on defaults)"
			}
			fmt.Fprintf(out, "Config file used: %s\n", used)

			fmt.Fprintln(out, "-- effective config --")
			data, err := config.Encode(&appConfig)
			if err != nil {
				return err
			}
			_, _ = out.Write(data)

			fmt.Fprintf(out, "-- i18n: active %q, available %s --\n", i18n.Lang(), strings.Join(i18n.Languages(), ", "))

			fmt.Fprintln(out, "-- flags --")
			cmd.Flags().VisitAll(func(f *pflag.Flag) {
				mark := " "
				if f.Changed {
					mark = "*"
				}
				fmt.Fprintf(out, "%s %s = %s\n", mark, f.Name, f.Value.String())
			})

			fmt.Fprintf(out, "-- environment (%s_*) --\n", config.EnvPrefix)
			var env []string
			for _, e := range os.Environ() {
				if strings.HasPrefix(e, config.EnvPrefix+"_") {
					env = append(env, e)
				}
			}
			sort.Strings(env)
			for _, e := range env {
				fmt.Fprintln(out, e)
			}
			fmt.Fprintln(out, "--- END DEBUG ---")
			return nil
		},
	}
}
