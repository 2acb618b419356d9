// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/toeirei/walletconv/internal/core"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// renderTable lays out rows under headers with a light border.
func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	return t.String()
}

// cliReporter prints facade progress lines to the command's output.
type cliReporter struct {
	w io.Writer
}

func (r cliReporter) Reportf(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

var _ core.Reporter = cliReporter{}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// readInput loads the single optional file argument, or stdin.
func readInput(cmd *cobra.Command, args []string) (path, text string, err error) {
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" || path == "-" {
		text, err = reader.ReadText(cmd.Context(), cmd.InOrStdin())
		return path, text, err
	}
	text, err = reader.ReadFile(cmd.Context(), path)
	return path, text, err
}
