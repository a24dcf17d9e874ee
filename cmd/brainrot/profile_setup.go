package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"brainrot/internal/prof"
)

var activeProfile *prof.Session

// startProfiling enables the profilers named by the persistent flags.
func startProfiling(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	cpu, err := flags.GetString("cpu-profile")
	if err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	mem, err := flags.GetString("mem-profile")
	if err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	tracePath, err := flags.GetString("runtime-trace")
	if err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if cpu == "" && mem == "" && tracePath == "" {
		return nil
	}
	s, err := prof.Start(prof.Config{CPU: cpu, Mem: mem, Trace: tracePath})
	if err != nil {
		return err
	}
	activeProfile = s
	return nil
}

func stopProfiling(errOut io.Writer) {
	if err := activeProfile.Stop(); err != nil {
		fmt.Fprintf(errOut, "profile: %v\n", err)
	}
	activeProfile = nil
}
