// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/toeirei/walletconv/internal/estimate"
	"github.com/toeirei/walletconv/internal/i18n"
	"github.com/toeirei/walletconv/internal/security"
)

// newDetectCmd builds the 'detect' command.
// It prints the classification label for a whole input.
func newDetectCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "detect [file]",
		Short: "Report what kind of wallet material a file holds",
		Long: `Classifies the input as a whole. Recognised kinds are wallet JSON, WIF and hex
private keys, mnemonic phrases, extended keys and Ethereum addresses. A file
that is unknown as a whole but has recognisable lines is reported as holding
multiple credentials.

Reads standard input when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			res := engine.ClassifyContent(text)
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			name := path
			if name == "" {
				name = "-"
			}
			fmt.Fprintln(out, i18n.T("detect.result", name, i18n.T(res.Kind.MessageID())))
			if res.IsCrypto {
				fmt.Fprintln(out, i18n.T("detect.crypto_yes"))
			} else {
				fmt.Fprintln(out, i18n.T("detect.crypto_no"))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

// newExtractCmd builds the 'extract' command.
// It lists the entries an input splits into without printing their content,
// unless --json is given.
func newExtractCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "List the independent entries found in a file",
		Long: `Splits the input into entries the same way 'convert' does and lists them
with their type, size and a short fingerprint. Secret content is not shown.

--json prints the entries including their content.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			entries := engine.ExtractEntries(text)
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					strconv.Itoa(e.Index),
					string(e.Type),
					estimate.Human(len(e.Content)),
					security.FromString(e.Content).Fingerprint(),
				})
			}
			fmt.Fprintln(out, renderTable([]string{
				i18n.T("extract.header_index"),
				i18n.T("extract.header_type"),
				i18n.T("extract.header_size"),
				i18n.T("extract.header_fingerprint"),
			}, rows))
			fmt.Fprintln(out, i18n.T("extract.summary", len(entries)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print entries, including content, as JSON")
	return cmd
}

// newEstimateCmd builds the 'estimate' command.
func newEstimateCmd() *cobra.Command {
	var sel formatSelection
	cmd := &cobra.Command{
		Use:   "estimate [file]",
		Short: "Predict output sizes without converting",
		Long: `Prints the expected size of the whole input rendered in each selected format.
All formats are listed when none is selected.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := sel.resolve(true)
			if err != nil {
				return err
			}
			_, text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			rows := [][]string{}
			for _, est := range engine.EstimateAll(text, ids) {
				rows = append(rows, []string{
					est.Format.DisplayName + " (" + string(est.Format.ID) + ")",
					fmt.Sprintf("%s (%d B)", estimate.Human(est.Size), est.Size),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{
				i18n.T("estimate.header_format"),
				i18n.T("estimate.header_size"),
			}, rows))
			return nil
		},
	}
	sel.register(cmd)
	return cmd
}
