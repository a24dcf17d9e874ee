package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"brainrot/internal/driver"
	"brainrot/internal/ui"
)

var (
	errNoMode          = errors.New("must specify either --transform or --reverse")
	errNeedOutDir      = errors.New("several inputs require --out-dir")
	errOutputAndOutDir = errors.New("-o cannot be combined with --out-dir")
	errHadErrors       = errors.New("translation finished with errors")
)

var translateCmd = &cobra.Command{
	Use:   "translate [flags] file.c...",
	Short: "Translate C sources to alternate spellings or back",
	Long: `Translate replaces keywords and well-known identifiers using the
substitution table (--transform) or restores them (--reverse). --auto picks
the direction per file from the spellings it contains.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranslate,
}

func init() {
	translateCmd.Flags().Bool("transform", false, "canonical C to alternate spellings")
	translateCmd.Flags().Bool("reverse", false, "alternate spellings back to canonical C")
	translateCmd.Flags().Bool("auto", false, "detect the direction per file")
	translateCmd.MarkFlagsMutuallyExclusive("transform", "reverse", "auto")
	translateCmd.Flags().StringP("output", "o", "", "output file for a single input (stdout when empty)")
	translateCmd.Flags().String("out-dir", "", "directory for translated files")
	translateCmd.Flags().Int("jobs", 0, "max parallel files (0=auto)")
	translateCmd.Flags().Bool("cache", false, "reuse rendered output from the disk cache")
	translateCmd.Flags().String("ui", "auto", "progress UI for batches (auto|on|off)")
}

// resolveMode picks the mode from flags, then from the manifest value.
func resolveMode(transform, reverse, auto bool, manifestMode string) (driver.Mode, error) {
	switch {
	case transform:
		return driver.ModeTransform, nil
	case reverse:
		return driver.ModeReverse, nil
	case auto:
		return driver.ModeAuto, nil
	case manifestMode != "":
		return driver.ParseMode(manifestMode)
	}
	return driver.ModeTransform, errNoMode
}

func runTranslate(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	transform, _ := flags.GetBool("transform")
	reverse, _ := flags.GetBool("reverse")
	auto, _ := flags.GetBool("auto")
	output, _ := flags.GetString("output")
	outDir, _ := flags.GetString("out-dir")
	jobs, _ := flags.GetInt("jobs")
	useCache, _ := flags.GetBool("cache")
	uiFlag, _ := flags.GetString("ui")

	manifestMode := ""
	if st.manifest != nil {
		cfg := st.manifest.Config.Translate
		manifestMode = cfg.Mode
		if outDir == "" && output == "" {
			outDir = st.manifest.OutDir()
		}
		if !flags.Changed("jobs") {
			jobs = cfg.Jobs
		}
		if !flags.Changed("cache") {
			useCache = cfg.Cache
		}
	}

	mode, err := resolveMode(transform, reverse, auto, manifestMode)
	if err != nil {
		return err
	}
	uiSetting, err := parseSwitch("ui", uiFlag)
	if err != nil {
		return err
	}
	if output != "" && outDir != "" {
		return errOutputAndOutDir
	}
	if len(args) > 1 && outDir == "" {
		return errNeedOutDir
	}

	table, err := st.table(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	opts := driver.Options{
		Mode:           mode,
		Table:          table,
		Format:         st.format,
		MaxDiagnostics: st.maxDiag,
		Jobs:           jobs,
		OutDir:         outDir,
		RunID:          runID,
	}
	if useCache {
		cache, cacheErr := driver.OpenDiskCache("brainrot")
		if cacheErr != nil {
			return fmt.Errorf("failed to open cache: %w", cacheErr)
		}
		opts.Cache = cache
	}

	if outDir == "" {
		return translateOne(cmd, st, args[0], output, opts)
	}
	return translateBatch(cmd, st, args, opts, uiSetting)
}

func translateOne(cmd *cobra.Command, st *settings, path, output string, opts driver.Options) error {
	res, err := driver.Translate(cmd.Context(), path, opts)
	if err != nil {
		return err
	}
	st.printDiagnostics(cmd.ErrOrStderr(), res.Bag, res.FileSet, path)

	if output == "" {
		if res.Output != "" {
			fmt.Fprintln(cmd.OutOrStdout(), res.Output)
		}
	} else if err := driver.WriteOutput(output, res.Output); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	if st.timings {
		printTimings(cmd.ErrOrStderr(), path, res.Timing)
	}
	if res.Bag.HasErrors() {
		return errHadErrors
	}
	return nil
}

func translateBatch(cmd *cobra.Command, st *settings, paths []string, opts driver.Options, mode switchMode) error {
	errOut := cmd.ErrOrStderr()

	var (
		batch *driver.Batch
		err   error
	)
	if !st.quiet && mode.on() {
		batch, err = translateWithUI(cmd, paths, opts, errOut)
	} else {
		batch, err = driver.TranslatePaths(cmd.Context(), paths, opts)
	}
	if err != nil {
		return err
	}

	for _, res := range batch.Results {
		st.printDiagnostics(errOut, res.Bag, batch.FileSet, res.Path)
		if !st.quiet && res.OutPath != "" {
			fmt.Fprintf(errOut, "%s -> %s (%d changed)\n", res.Path, res.OutPath, res.Changed)
		}
	}
	if st.timings {
		printBatchTimings(errOut, batch)
	}
	if batch.HasErrors() {
		return errHadErrors
	}
	return nil
}

func translateWithUI(cmd *cobra.Command, paths []string, opts driver.Options, out io.Writer) (*driver.Batch, error) {
	events := make(chan driver.Event, 64)
	uiDone := make(chan error, 1)
	go func() {
		uiDone <- ui.Run(out, "translate", paths, events)
	}()

	opts.Progress = driver.ChannelSink{Ch: events}
	batch, err := driver.TranslatePaths(cmd.Context(), paths, opts)
	close(events)
	if uiErr := <-uiDone; uiErr != nil && err == nil {
		return batch, fmt.Errorf("progress UI: %w", uiErr)
	}
	return batch, err
}

func printBatchTimings(out io.Writer, batch *driver.Batch) {
	cached := 0
	for _, res := range batch.Results {
		if res.Cached {
			cached++
		}
	}
	fmt.Fprintf(out, "run %s: %d file(s), %d from cache\n", batch.RunID, len(batch.Results), cached)
	printTimings(out, "", batch.Timing)
}
