package diagfmt

import "brainrot/internal/source"

// position is a span resolved for display. file is nil when the span points
// into no file; path then holds the origin (the table a finding came from).
type position struct {
	path       string
	start, end source.LineCol
	file       *source.File
}

func locate(fs *source.FileSet, span source.Span, origin string) position {
	if fs == nil || int(span.File) >= fs.Len() {
		if origin == "" {
			origin = "<unknown>"
		}
		return position{path: origin}
	}
	f := fs.Get(span.File)
	start, end := fs.Resolve(span)
	return position{path: f.Path, start: start, end: end, file: f}
}
