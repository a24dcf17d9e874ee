package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"brainrot/internal/diagfmt"
	"brainrot/internal/driver"
	"brainrot/internal/source"
	"brainrot/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.c",
	Short: "Show how a C source file is classified",
	Long:  `Tokenize prints the classified tokens of a source file without rewriting it`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

var tokenFormats = map[string]func(io.Writer, []token.Token, *source.FileSet) error{
	"pretty": diagfmt.FormatTokensPretty,
	"json":   diagfmt.FormatTokensJSON,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("all", false, "include whitespace and comment tokens")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("format")
	render, ok := tokenFormats[name]
	if !ok {
		return fmt.Errorf("unknown format: %s", name)
	}
	all, _ := cmd.Flags().GetBool("all")
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	res, err := driver.Tokenize(args[0], st.maxDiag, !all)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	// диагностика в stderr, токены в stdout
	st.printDiagnostics(cmd.ErrOrStderr(), res.Bag, res.FileSet, args[0])
	return render(cmd.OutOrStdout(), res.Tokens, res.FileSet)
}
