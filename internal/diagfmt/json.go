package diagfmt

import (
	"encoding/json"
	"io"

	"brainrot/internal/diag"
	"brainrot/internal/source"
)

// Location: байты есть всегда, строки и колонки только с IncludePositions.
type Location struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

type NoteEntry struct {
	Message  string   `json:"message"`
	Location Location `json:"location"`
}

// Entry is one diagnostic in machine-readable form.
type Entry struct {
	Severity string      `json:"severity"`
	Code     string      `json:"code"`
	Title    string      `json:"title"`
	Message  string      `json:"message"`
	Location Location    `json:"location"`
	Notes    []NoteEntry `json:"notes,omitempty"`
}

// Report is the document written by JSON. Dropped counts both what the
// bag refused and what Max cut off.
type Report struct {
	Diagnostics []Entry `json:"diagnostics"`
	Count       int     `json:"count"`
	Dropped     int     `json:"dropped,omitempty"`
}

// BuildReport converts bag without serializing it.
func BuildReport(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) Report {
	where := func(sp source.Span) Location {
		pos := locate(fs, sp, opts.Origin)
		loc := Location{File: pos.path}
		if pos.file == nil {
			return loc
		}
		loc.StartByte, loc.EndByte = sp.Start, sp.End
		if opts.IncludePositions {
			loc.StartLine, loc.StartCol = pos.start.Line, pos.start.Col
			loc.EndLine, loc.EndCol = pos.end.Line, pos.end.Col
		}
		return loc
	}

	items := bag.Items()
	shown := items
	if opts.Max > 0 && opts.Max < len(items) {
		shown = items[:opts.Max]
	}
	r := Report{
		Diagnostics: make([]Entry, len(shown)),
		Count:       len(shown),
		Dropped:     bag.Dropped() + len(items) - len(shown),
	}
	for i, d := range shown {
		e := Entry{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Title:    d.Code.Title(),
			Message:  d.Message,
			Location: where(d.Primary),
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				e.Notes = append(e.Notes, NoteEntry{Message: n.Msg, Location: where(n.Span)})
			}
		}
		r.Diagnostics[i] = e
	}
	return r
}

// JSON writes bag as one indented document.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildReport(bag, fs, opts))
}
