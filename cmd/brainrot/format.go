package main

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"brainrot/internal/driver"
	"brainrot/internal/source"
)

var errNotFormatted = errors.New("some files are not formatted")

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] file.c...",
	Short: "Re-indent C sources without substituting anything",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().Bool("stdout", false, "print the result instead of rewriting files")
	fmtCmd.Flags().Bool("check", false, "list files whose layout would change and fail")
	fmtCmd.MarkFlagsMutuallyExclusive("stdout", "check")
}

func runFmt(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	toStdout, _ := cmd.Flags().GetBool("stdout")
	check, _ := cmd.Flags().GetBool("check")

	table, err := st.table(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	opts := driver.Options{
		Mode:           driver.ModeFormat,
		Table:          table,
		Format:         st.format,
		MaxDiagnostics: st.maxDiag,
	}

	changed := 0
	for _, path := range args {
		res, err := driver.Translate(cmd.Context(), path, opts)
		if err != nil {
			return err
		}
		st.printDiagnostics(cmd.ErrOrStderr(), res.Bag, res.FileSet, path)

		switch {
		case toStdout:
			fmt.Fprintln(cmd.OutOrStdout(), res.Output)
		case check:
			if needsFormat(res) {
				changed++
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
		default:
			if !needsFormat(res) {
				continue
			}
			if err := driver.WriteOutput(path, res.Output); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			if !st.quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "formatted %s\n", path)
			}
		}
		if st.timings {
			printTimings(cmd.ErrOrStderr(), path, res.Timing)
		}
	}
	if check && changed > 0 {
		return errNotFormatted
	}
	return nil
}

// needsFormat compares the rendering with the file as WriteOutput would
// store it.
func needsFormat(res *driver.Result) bool {
	want := []byte(res.Output)
	if len(want) > 0 {
		want = append(want, '\n')
	}
	return !bytes.Equal(res.File.Content, want) || res.File.Flags&(source.FileHadBOM|source.FileNormalizedCRLF) != 0
}
