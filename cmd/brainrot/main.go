package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"brainrot/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "brainrot",
	Short: "Reversible keyword substitution for C sources",
	Long: `brainrot rewrites C keywords and common library names into alternate
spellings and back, re-indenting the result.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := startProfiling(cmd); err != nil {
			return err
		}
		return startTracing(cmd, args)
	},
}

func init() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics per file (0 = no limit)")
	rootCmd.PersistentFlags().String("diagnostics-format", "pretty", "diagnostics output format (pretty|json)")
	rootCmd.PersistentFlags().String("table", "", "substitution table (.toml or .yaml); built-in when empty")
	rootCmd.PersistentFlags().Bool("strict-table", false, "reject tables that cannot be reversed without loss")
	rootCmd.PersistentFlags().String("trace", "", "write trace events to file (- for stderr, .ndjson for JSON lines)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to file")
}

// main executes the root command. Any error exits with status 1.
func main() {
	err := rootCmd.Execute()
	// трейсер и профили закрываем и при ошибке команды
	stopTracing(rootCmd.ErrOrStderr())
	stopProfiling(rootCmd.ErrOrStderr())
	if err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
