// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/toeirei/walletconv/internal/bundle"
	"github.com/toeirei/walletconv/internal/i18n"
	"github.com/toeirei/walletconv/internal/logging"
	"github.com/toeirei/walletconv/internal/security"
)

// newBundleCmd groups commands that open archives written by 'convert -b'.
func newBundleCmd() *cobra.Command {
	var kindName string
	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Inspect archives written by 'convert --output.bundle'",
	}
	cmd.PersistentFlags().StringVar(&kindName, "kind", "", `Archive kind ("zip" or "zst"); guessed from the file name when empty`)

	list := &cobra.Command{
		Use:   "list <file>",
		Short: "List the files in a bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := openBundle(args[0], kindName)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(files))
			for _, f := range files {
				rows = append(rows, []string{
					f.Name,
					f.Format,
					humanize.Bytes(uint64(len(f.Data))),
					security.FromBytes(f.Data).Fingerprint(),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{
				i18n.T("bundle.header_name"),
				i18n.T("bundle.header_format"),
				i18n.T("bundle.header_size"),
				i18n.T("extract.header_fingerprint"),
			}, rows))
			return nil
		},
	}

	verify := &cobra.Command{
		Use:   "verify <file>",
		Short: "Check that a bundle can be read and its digests match",
		Long: `Reads every member of the bundle. For zst bundles each file is checked
against the SHA-256 digest recorded in the manifest; zip archives are checked
by their own CRCs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := openBundle(args[0], kindName)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("bundle.verified", args[0], len(files)))
			return nil
		},
	}

	cmd.AddCommand(list, verify)
	return cmd
}

func openBundle(path, kindName string) ([]bundle.File, error) {
	var (
		kind bundle.Kind
		err  error
	)
	if kindName != "" {
		kind, err = bundle.ParseKind(kindName)
	} else {
		kind, err = bundle.KindFromPath(path)
	}
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bundle: %w", err)
	}
	defer func() { _ = f.Close() }()
	files, err := bundle.Read(f, kind)
	if err != nil {
		return nil, err
	}
	logging.Debugf("read %s bundle %s with %d files", kind, path, len(files))
	return files, nil
}
