package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"brainrot/internal/diag"
	"brainrot/internal/source"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

type palette struct {
	err, warn, info, note, code, gutter, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		note:   color.New(color.FgBlue),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgHiBlack),
		caret:  color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.code, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts, pal)
	}
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "... %d more diagnostic(s) not shown\n", n)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	pos := locate(fs, d.Primary, opts.Origin)
	if pos.file != nil {
		fmt.Fprintf(w, "%s:%d:%d: ", pos.path, pos.start.Line, pos.start.Col)
	} else {
		fmt.Fprintf(w, "%s: ", pos.path)
	}
	fmt.Fprintf(w, "%s %s: %s\n",
		pal.severity(d.Severity).Sprint(d.Severity.String()),
		pal.code.Sprint(d.Code.ID()),
		d.Message)

	if pos.file != nil {
		writeSnippet(w, pos, opts.Context, pal)
	}

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		npos := locate(fs, n.Span, opts.Origin)
		if npos.file != nil {
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", pal.note.Sprint("note:"), npos.path, npos.start.Line, npos.start.Col, n.Msg)
		} else {
			fmt.Fprintf(w, "  %s %s\n", pal.note.Sprint("note:"), n.Msg)
		}
	}
}

func writeSnippet(w io.Writer, pos position, context int, pal palette) {
	line := pos.start.Line
	ctx := uint32(max(context, 0))
	first := uint32(1)
	if line > ctx {
		first = line - ctx
	}
	total := uint32(pos.file.LineCount())
	last := min(line+ctx, total)

	width := len(fmt.Sprint(last))
	for n := first; n <= last; n++ {
		text := pos.file.Line(int(n))
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", width, n), text)
		if n == line {
			pad, marks := caretLine(text, pos)
			fmt.Fprintf(w, "%s %s%s\n", pal.gutter.Sprintf("%*s |", width, ""), pad, pal.caret.Sprint(marks))
		}
	}
}

// caretLine builds the indentation and ^~~ marks under the span. Tabs in
// the prefix are copied so the caret lines up in any terminal; other runes
// contribute their display width.
func caretLine(text string, pos position) (pad, marks string) {
	startCol := int(pos.start.Col)
	if startCol < 1 {
		startCol = 1
	}
	startCol = min(startCol-1, len(text))
	prefix := text[:startCol]

	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	endCol := len(text)
	if pos.end.Line == pos.start.Line {
		endCol = min(max(int(pos.end.Col)-1, startCol), len(text))
	}
	n := max(runewidth.StringWidth(text[startCol:endCol]), 1)
	return sb.String(), "^" + strings.Repeat("~", n-1)
}
