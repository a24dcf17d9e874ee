package main

import (
	"fmt"
	"io"

	"brainrot/internal/observ"
)

func printTimings(out io.Writer, label string, report observ.Report) {
	if out == nil || len(report.Phases) == 0 {
		return
	}
	if label != "" {
		fmt.Fprintf(out, "%s ", label)
	}
	fmt.Fprint(out, report.Summary())
}
