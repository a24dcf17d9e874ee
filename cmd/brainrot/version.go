package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"brainrot/internal/version"
)

const versionTagline = "no cap, just C"

type versionOptions struct {
	showHash    bool
	showMessage bool
	showDate    bool
	color       bool
}

var versionFlags struct {
	format                    string
	hash, message, date, full bool
}

func init() {
	f := versionCmd.Flags()
	f.BoolVar(&versionFlags.hash, "hash", false, "include git commit hash")
	f.BoolVar(&versionFlags.message, "message", false, "include git commit message")
	f.BoolVar(&versionFlags.date, "date", false, "include build timestamp")
	f.BoolVar(&versionFlags.full, "full", false, "show every recorded bit of build metadata")
	f.StringVar(&versionFlags.format, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show brainrot build fingerprints",
	RunE: func(cmd *cobra.Command, _ []string) error {
		colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
		useColor, err := readColorMode(colorFlag)
		if err != nil {
			return err
		}
		vf := versionFlags
		opts := versionOptions{
			showHash:    vf.hash || vf.full,
			showMessage: vf.message || vf.full,
			showDate:    vf.date || vf.full,
			color:       useColor,
		}
		info := version.Current()
		info.Version = strings.TrimSpace(info.Version)
		if info.Version == "" {
			info.Version = "dev"
		}

		switch strings.ToLower(vf.format) {
		case "pretty":
			renderVersionPretty(cmd.OutOrStdout(), info, opts)
			return nil
		case "json":
			return renderVersionJSON(cmd.OutOrStdout(), info, opts)
		}
		return fmt.Errorf("unsupported format %q (must be pretty or json)", vf.format)
	},
}

// selected keeps only the fields asked for; missing ones read "unknown".
func (o versionOptions) selected(info version.Info) version.Info {
	pick := func(on bool, v string) string {
		switch {
		case !on:
			return ""
		case strings.TrimSpace(v) == "":
			return "unknown"
		}
		return strings.TrimSpace(v)
	}
	return version.Info{
		Version:    info.Version,
		GitCommit:  pick(o.showHash, info.GitCommit),
		GitMessage: pick(o.showMessage, info.GitMessage),
		BuildDate:  pick(o.showDate, info.BuildDate),
	}
}

func renderVersionPretty(out io.Writer, info version.Info, opts versionOptions) {
	info = opts.selected(info)
	v := info.Version
	if opts.color {
		// Pretty смотрит на глобальный color.NoColor
		prev := color.NoColor
		color.NoColor = false
		v = version.Pretty(v)
		color.NoColor = prev
	}
	fmt.Fprintf(out, "brainrot %s: %s\n", v, versionTagline)
	for _, row := range [][2]string{{"commit:", info.GitCommit}, {"message:", info.GitMessage}, {"built: ", info.BuildDate}} {
		if row[1] != "" {
			fmt.Fprintf(out, "%s %s\n", row[0], row[1])
		}
	}
	if !opts.showHash && !opts.showMessage && !opts.showDate {
		fmt.Fprintln(out, "set --hash, --message, --date, or --full for more build trivia")
	}
}

func renderVersionJSON(out io.Writer, info version.Info, opts versionOptions) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Tool    string `json:"tool"`
		Tagline string `json:"tagline"`
		version.Info
	}{"brainrot", versionTagline, opts.selected(info)})
}
