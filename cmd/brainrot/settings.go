package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"brainrot/internal/diag"
	"brainrot/internal/diagfmt"
	"brainrot/internal/format"
	"brainrot/internal/project"
	"brainrot/internal/source"
	"brainrot/internal/subst"
)

// settings merges persistent flags with brainrot.toml. Flags win.
type settings struct {
	manifest *project.Manifest
	color    bool
	quiet    bool
	timings  bool
	maxDiag  int
	// diagJSON: диагностики в JSON вместо сниппетов
	diagJSON bool

	tablePath string
	strict    bool
	format    format.Options
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Root().PersistentFlags()

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	useColor, err := readColorMode(colorFlag)
	if err != nil {
		return nil, err
	}
	quiet, err := flags.GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	timings, err := flags.GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	maxDiag, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	diagFormat, err := flags.GetString("diagnostics-format")
	if err != nil {
		return nil, fmt.Errorf("failed to get diagnostics-format flag: %w", err)
	}
	if diagFormat != "pretty" && diagFormat != "json" {
		return nil, fmt.Errorf("unknown diagnostics format %q (want pretty or json)", diagFormat)
	}
	tablePath, err := flags.GetString("table")
	if err != nil {
		return nil, fmt.Errorf("failed to get table flag: %w", err)
	}
	strict, err := flags.GetBool("strict-table")
	if err != nil {
		return nil, fmt.Errorf("failed to get strict-table flag: %w", err)
	}

	s := &settings{
		color:     useColor,
		quiet:     quiet,
		timings:   timings,
		maxDiag:   maxDiag,
		diagJSON:  diagFormat == "json",
		tablePath: tablePath,
		strict:    strict,
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	manifest, ok, err := project.LoadFromDir(wd)
	if err != nil {
		return nil, err
	}
	if ok {
		s.manifest = manifest
		if s.tablePath == "" {
			s.tablePath = manifest.TablePath()
		}
		if !flags.Changed("strict-table") {
			s.strict = manifest.Config.Table.Strict
		}
		s.format.IndentWidth = manifest.Config.Format.Indent
		s.format.UseTabs = manifest.Config.Format.Tabs
	}
	return s, nil
}

func (s *settings) tableOrigin() string {
	if s.tablePath == "" {
		return subst.BuiltinOrigin
	}
	return s.tablePath
}

// loadTable builds the configured table. Validation problems go to bag
// when it is not nil.
func (s *settings) loadTable(bag *diag.Bag) (*subst.Table, error) {
	opts := subst.Options{Strict: s.strict}
	if bag != nil {
		opts.Reporter = diag.BagReporter{Bag: bag}
	}
	if s.tablePath == "" {
		return subst.DefaultWith(opts)
	}
	return subst.Load(s.tablePath, opts)
}

// table loads the table for translation. In strict mode its problems are
// printed before the error is returned.
func (s *settings) table(errOut io.Writer) (*subst.Table, error) {
	bag := diag.NewBag(s.maxDiag)
	t, err := s.loadTable(bag)
	if err != nil {
		s.printDiagnostics(errOut, bag, nil, s.tableOrigin())
		return nil, err
	}
	return t, nil
}

func (s *settings) printDiagnostics(out io.Writer, bag *diag.Bag, fs *source.FileSet, origin string) {
	if bag == nil || bag.Len() == 0 && bag.Dropped() == 0 {
		return
	}
	bag.Sort()
	if s.diagJSON {
		err := diagfmt.JSON(out, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
			Origin:           origin,
		})
		if err != nil {
			fmt.Fprintf(out, "failed to encode diagnostics: %v\n", err)
		}
		return
	}
	diagfmt.Pretty(out, bag, fs, diagfmt.PrettyOpts{
		Color:     s.color,
		Context:   1,
		ShowNotes: true,
		Origin:    origin,
	})
}
