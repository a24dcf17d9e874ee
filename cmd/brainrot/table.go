package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"brainrot/internal/diag"
	"brainrot/internal/subst"
)

var errTableProblems = errors.New("substitution table has problems")

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Show or validate the substitution table",
	Long: `Table prints the active substitution table (built-in, --table or the
manifest's [table].path). --check reports entries that make the reverse
translation lossy.`,
	Args: cobra.NoArgs,
	RunE: runTable,
}

func init() {
	tableCmd.Flags().String("format", "pretty", "output format (pretty|json|toml|yaml)")
	tableCmd.Flags().Bool("check", false, "validate the table and fail on problems")
}

type tableJSON struct {
	Origin      string        `json:"origin"`
	Digest      string        `json:"digest"`
	Reversible  bool          `json:"reversible"`
	Keywords    []subst.Entry `json:"keywords"`
	Identifiers []subst.Entry `json:"identifiers"`
}

func runTable(cmd *cobra.Command, _ []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	formatFlag, _ := cmd.Flags().GetString("format")
	check, _ := cmd.Flags().GetBool("check")

	bag := diag.NewBag(st.maxDiag)
	table, loadErr := st.loadTable(bag)
	if check || loadErr != nil {
		st.printDiagnostics(cmd.ErrOrStderr(), bag, nil, st.tableOrigin())
	}
	if loadErr != nil {
		return loadErr
	}
	if check {
		if !table.Reversible() {
			return fmt.Errorf("%w: %d found", errTableProblems, len(table.Problems()))
		}
		if !st.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d entries, reversible\n", table.Origin(), table.Len())
		}
		return nil
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(formatFlag) {
	case "pretty":
		renderTablePretty(out, table)
		return nil
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(tableJSON{
			Origin:      table.Origin(),
			Digest:      table.Digest(),
			Reversible:  table.Reversible(),
			Keywords:    table.Keywords(),
			Identifiers: table.Identifiers(),
		})
	default:
		f, err := subst.ParseFormat(formatFlag)
		if err != nil {
			return err
		}
		return table.Encode(out, f)
	}
}

func renderTablePretty(out io.Writer, table *subst.Table) {
	fmt.Fprintf(out, "table %s (%d entries)\n", table.Origin(), table.Len())
	renderEntries(out, "keywords", table.Keywords())
	renderEntries(out, "identifiers", table.Identifiers())
}

func renderEntries(out io.Writer, title string, entries []subst.Entry) {
	fmt.Fprintf(out, "\n%s:\n", title)
	width := 0
	for _, e := range entries {
		width = max(width, runewidth.StringWidth(e.From))
	}
	for _, e := range entries {
		fmt.Fprintf(out, "  %s  ->  %s\n", runewidth.FillRight(e.From, width), e.To)
	}
}
