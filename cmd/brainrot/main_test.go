package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"brainrot/internal/diagfmt"
	"brainrot/internal/driver"
	"brainrot/internal/subst"
	"brainrot/internal/version"
)

func mustDefaultTable(t *testing.T) *subst.Table {
	t.Helper()
	table, err := subst.DefaultWith(subst.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name          string
		tr, rev, auto bool
		manifest      string
		want          driver.Mode
		wantErr       error
	}{
		{name: "transform", tr: true, want: driver.ModeTransform},
		{name: "reverse", rev: true, want: driver.ModeReverse},
		{name: "auto", auto: true, want: driver.ModeAuto},
		{name: "flag beats manifest", rev: true, manifest: "transform", want: driver.ModeReverse},
		{name: "manifest", manifest: "reverse", want: driver.ModeReverse},
		{name: "nothing", wantErr: errNoMode},
		{name: "bad manifest", manifest: "sideways", wantErr: driver.ErrUnknownMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveMode(tt.tr, tt.rev, tt.auto, tt.manifest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("resolveMode = %v, %v; want %v", got, err, tt.want)
			}
		})
	}
}

func TestNoModeMessage(t *testing.T) {
	if errNoMode.Error() != "must specify either --transform or --reverse" {
		t.Fatalf("message = %q", errNoMode.Error())
	}
}

func TestReadModes(t *testing.T) {
	if m, err := parseSwitch("ui", " ON "); err != nil || m != switchOn {
		t.Fatalf("parseSwitch = %v, %v", m, err)
	}
	if _, err := parseSwitch("ui", "sometimes"); err == nil {
		t.Fatalf("expected error for bad --ui")
	}
	if on, err := readColorMode("on"); err != nil || !on {
		t.Fatalf("readColorMode(on) = %v, %v", on, err)
	}
	if on, err := readColorMode("off"); err != nil || on {
		t.Fatalf("readColorMode(off) = %v, %v", on, err)
	}
	if _, err := readColorMode("purple"); err == nil {
		t.Fatalf("expected error for bad --color")
	}
	if !switchOn.on() || switchOff.on() {
		t.Fatalf("explicit ui modes ignored")
	}
}

func TestRenderEntriesAligns(t *testing.T) {
	var buf bytes.Buffer
	renderTablePretty(&buf, mustDefaultTable(t))
	out := buf.String()
	if !strings.Contains(out, "table <builtin> (50 entries)") {
		t.Fatalf("header missing:\n%s", out)
	}
	if !strings.Contains(out, "  if        ->  rizzing\n") {
		t.Fatalf("keyword column not aligned:\n%s", out)
	}
}

func TestRenderVersionJSON(t *testing.T) {
	var buf bytes.Buffer
	info := version.Info{Version: "1.2.3", GitCommit: "abc"}
	if err := renderVersionJSON(&buf, info, versionOptions{showHash: true}); err != nil {
		t.Fatal(err)
	}
	var got map[string]string
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got["tool"] != "brainrot" || got["version"] != "1.2.3" || got["git_commit"] != "abc" {
		t.Fatalf("payload = %v", got)
	}
	if _, ok := got["build_date"]; ok {
		t.Fatalf("build_date leaked without --date")
	}
}

func TestNeedsFormat(t *testing.T) {
	dir := t.TempDir()
	clean := filepath.Join(dir, "clean.c")
	messy := filepath.Join(dir, "messy.c")
	if err := os.WriteFile(clean, []byte("int x;\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(messy, []byte("int   x ;"), 0o600); err != nil {
		t.Fatal(err)
	}
	for path, want := range map[string]bool{clean: false, messy: true} {
		res, err := driver.Translate(t.Context(), path, driver.Options{Mode: driver.ModeFormat})
		if err != nil {
			t.Fatal(err)
		}
		if got := needsFormat(res); got != want {
			t.Fatalf("needsFormat(%s) = %v, want %v", filepath.Base(path), got, want)
		}
	}
}

func TestTranslateCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "main.c")
	if err := os.WriteFile(in, []byte("int main(){return 0;}"), 0o600); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"translate", "--transform", "--color", "off", in})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		_ = translateCmd.Flags().Set("transform", "false")
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v\n%s", err, errOut.String())
	}
	if got := out.String(); got != "omega main() {\n    mew 0;\n}\n" {
		t.Fatalf("stdout = %q", got)
	}
}

func TestTranslateDiagnosticsAsJSON(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.c")
	if err := os.WriteFile(in, []byte("int x @ 5;"), 0o600); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"translate", "--transform", "--diagnostics-format", "json", in})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		_ = translateCmd.Flags().Set("transform", "false")
		_ = rootCmd.PersistentFlags().Set("diagnostics-format", "pretty")
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v\n%s", err, errOut.String())
	}
	var report diagfmt.Report
	if err := json.Unmarshal(errOut.Bytes(), &report); err != nil {
		t.Fatalf("stderr is not JSON: %v\n%s", err, errOut.String())
	}
	if report.Count != 1 || report.Diagnostics[0].Code != "LEX1001" || report.Diagnostics[0].Location.StartCol != 7 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if got := out.String(); got != "omega x@5;\n" {
		t.Fatalf("stdout = %q", got)
	}
}

func TestRenderVersionPretty(t *testing.T) {
	tests := []struct {
		opts versionOptions
		want string
	}{
		{versionOptions{showHash: true}, "brainrot 1.2.3: no cap, just C\ncommit: unknown\n"},
		{versionOptions{}, "brainrot 1.2.3: no cap, just C\nset --hash, --message, --date, or --full for more build trivia\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		renderVersionPretty(&buf, version.Info{Version: "1.2.3"}, tt.opts)
		if buf.String() != tt.want {
			t.Errorf("opts %+v: got %q, want %q", tt.opts, buf.String(), tt.want)
		}
	}
}
