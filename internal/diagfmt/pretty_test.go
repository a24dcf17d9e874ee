package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"brainrot/internal/diag"
	"brainrot/internal/source"
)

func singleDiag(t *testing.T, content string, d diag.Diagnostic) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	fs.AddVirtual("prog.c", []byte(content))
	bag := diag.NewBag(10)
	bag.Add(d)
	return bag, fs
}

func TestPrettyCaretUnderSpan(t *testing.T) {
	d := diag.New(diag.SevWarning, diag.LexUnknownChar, source.Span{Start: 6, End: 7}, "unknown character '@'")
	bag, fs := singleDiag(t, "int x @ 5;\n", d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})

	want := "prog.c:1:7: WARNING LEX1001: unknown character '@'\n" +
		"1 | int x @ 5;\n" +
		"  |       ^\n"
	if got := buf.String(); got != want {
		t.Fatalf("pretty output mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestPrettyUnderlineWidth(t *testing.T) {
	d := diag.New(diag.SevError, diag.LexUnterminatedString, source.Span{Start: 4, End: 8}, "unterminated string")
	bag, fs := singleDiag(t, "x = \"abc\n", d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if !strings.Contains(buf.String(), "  |     ^~~~\n") {
		t.Fatalf("expected four-column underline, got:\n%s", buf.String())
	}
}

func TestPrettyKeepsTabsInPadding(t *testing.T) {
	d := diag.New(diag.SevWarning, diag.LexUnknownChar, source.Span{Start: 2, End: 3}, "unknown character '@'")
	bag, fs := singleDiag(t, "\tx@;\n", d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if !strings.Contains(buf.String(), "  | \t ^\n") {
		t.Fatalf("tab not preserved in caret line:\n%q", buf.String())
	}
}

func TestPrettyWideRunes(t *testing.T) {
	// "日" занимает три байта и две колонки
	d := diag.New(diag.SevWarning, diag.LexUnknownChar, source.Span{Start: 3, End: 4}, "unknown character '@'")
	bag, fs := singleDiag(t, "日@\n", d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if !strings.Contains(buf.String(), "  |   ^\n") {
		t.Fatalf("caret not shifted by display width:\n%q", buf.String())
	}
}

func TestPrettyContextLines(t *testing.T) {
	d := diag.New(diag.SevWarning, diag.LexUnknownChar, source.Span{Start: 7, End: 8}, "bad")
	bag, fs := singleDiag(t, "a;\nb;\nc@;\nd;\ne;\n", d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1})
	got := buf.String()
	for _, want := range []string{"2 | b;\n", "3 | c@;\n", "  |  ^\n", "4 | d;\n"} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "1 | a;") || strings.Contains(got, "5 | e;") {
		t.Fatalf("context wider than requested:\n%s", got)
	}
}

func TestPrettyOriginForDetachedSpan(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevWarning, diag.TblDuplicateAlternate, source.Span{File: 7}, "alternate \"sigma\" is used twice"))

	var buf bytes.Buffer
	Pretty(&buf, bag, nil, PrettyOpts{Origin: "<builtin>"})

	want := "<builtin>: WARNING TBL5001: alternate \"sigma\" is used twice\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrettyNotes(t *testing.T) {
	d := diag.New(diag.SevWarning, diag.DlcMixed, source.Span{Start: 0, End: 3}, "mixed dialect").
		WithNote(source.Span{Start: 4, End: 8}, "alternate spelling here")
	bag, fs := singleDiag(t, "int mew 0;\n", d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true})
	if !strings.Contains(buf.String(), "  note: prog.c:1:5: alternate spelling here\n") {
		t.Fatalf("note missing:\n%s", buf.String())
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{})
	if strings.Contains(buf.String(), "note:") {
		t.Fatalf("notes printed without ShowNotes:\n%s", buf.String())
	}
}

func TestPrettyColor(t *testing.T) {
	d := diag.New(diag.SevError, diag.IOLoadFileError, source.Span{}, "boom")
	bag, fs := singleDiag(t, "x\n", d)

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})
	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatalf("escape codes without Color: %q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatalf("no escape codes with Color: %q", colored.String())
	}
}

func TestPrettyDroppedFooter(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("prog.c", []byte("@@\n"))
	bag := diag.NewBag(1)
	bag.Add(diag.New(diag.SevWarning, diag.LexUnknownChar, source.Span{Start: 0, End: 1}, "a"))
	bag.Add(diag.New(diag.SevWarning, diag.LexUnknownChar, source.Span{Start: 1, End: 2}, "b"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if !strings.HasSuffix(buf.String(), "... 1 more diagnostic(s) not shown\n") {
		t.Fatalf("missing dropped footer:\n%s", buf.String())
	}
}
