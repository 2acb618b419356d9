// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/toeirei/walletconv/internal/bundle"
	"github.com/toeirei/walletconv/internal/core"
	"github.com/toeirei/walletconv/internal/format"
	"github.com/toeirei/walletconv/internal/i18n"
	"github.com/toeirei/walletconv/internal/logging"
)

// clipboardWrite is swapped in tests; headless CI has no clipboard.
var clipboardWrite = clipboard.WriteAll

// formatSelection holds the --format/--all flags shared by commands.
type formatSelection struct {
	names []string
	all   bool
}

func (s *formatSelection) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&s.names, "format", "f", nil, "Output format(s), comma separated (see 'walletconv formats')")
	cmd.Flags().BoolVar(&s.all, "all", false, "Select every supported format")
}

// resolve returns the selected formats. With fallbackAll an empty selection
// means every format.
func (s *formatSelection) resolve(fallbackAll bool) ([]format.ID, error) {
	if s.all || (fallbackAll && len(s.names) == 0) {
		return format.IDs(), nil
	}
	ids, err := format.ParseList(s.names)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, errors.New(i18n.T("convert.error_no_format"))
	}
	return ids, nil
}

// newConvertCmd builds the 'convert' command.
func newConvertCmd() *cobra.Command {
	var (
		sel      formatSelection
		toStdout bool
		copyOut  bool
	)
	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a wallet file into one or more formats",
		Long: `Splits the input into entries and renders every entry in every selected
format. By default each output is written as its own file into --output.dir,
named <input>_<format><ext> (or <input>_<index>_<format><ext> when the input
holds several entries).

--output.bundle zip|zst packs all outputs into one archive instead.
--stdout and --copy need exactly one output.

Examples:
  # Electrum and MetaMask files next to the input
  walletconv convert -f electrum,metamask backup.txt

  # Everything, zipped
  walletconv convert --all --output.bundle zip backup.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := sel.resolve(false)
			if err != nil {
				return err
			}
			path, text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			outs, err := engine.ConvertAll(cmd.Context(), text, ids, core.BaseName(path))
			if err != nil {
				return err
			}
			logging.Debugf("convert: %d outputs from %s", len(outs), core.BaseName(path))

			out := cmd.OutOrStdout()
			rep := cliReporter{w: cmd.ErrOrStderr()}
			switch {
			case copyOut:
				if len(outs) != 1 {
					return errors.New(i18n.T("convert.error_copy_multi", len(outs)))
				}
				if err := clipboardWrite(string(outs[0].Data)); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				rep.Reportf("%s", i18n.T("convert.copied", outs[0].Name, humanize.Bytes(uint64(outs[0].Size()))))
				return nil
			case toStdout:
				if len(outs) != 1 {
					return errors.New(i18n.T("convert.error_stdout_multi", len(outs)))
				}
				if outs[0].Format.Binary() && isTerminal(out) {
					return errors.New(i18n.T("convert.error_binary_tty", outs[0].Format.ID))
				}
				_, err := out.Write(outs[0].Data)
				return err
			}

			dir := appConfig.Output.Dir
			if appConfig.Output.Bundle != "" {
				kind, err := bundle.ParseKind(appConfig.Output.Bundle)
				if err != nil {
					return err
				}
				return writeBundleFile(dir, core.BaseName(path)+kind.Extension(), kind, outs, rep)
			}
			paths, err := core.WriteOutputs(cmd.Context(), dir, outs, rep)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, i18n.T("convert.written", len(paths), dir))
			return nil
		},
	}
	sel.register(cmd)
	cmd.Flags().StringP("output.dir", "o", ".", "Directory for converted files")
	cmd.Flags().StringP("output.bundle", "b", "", `Pack outputs into one archive ("zip" or "zst")`)
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Write the single output to standard output")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy the single output to the clipboard")
	cmd.MarkFlagsMutuallyExclusive("stdout", "copy")
	return cmd
}

func writeBundleFile(dir, name string, kind bundle.Kind, outs []core.NamedOutput, rep core.Reporter) error {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	p := filepath.Join(dir, name)
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create bundle: %w", err)
	}
	if err := core.WriteBundle(f, bundle.Writer{Kind: kind}, outs); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close bundle: %w", err)
	}
	size := ""
	if fi, err := os.Stat(p); err == nil {
		size = humanize.Bytes(uint64(fi.Size()))
	}
	rep.Reportf("%s", i18n.T("convert.bundle_written", p, size))
	return nil
}
