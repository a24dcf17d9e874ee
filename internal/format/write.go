package format

import "bytes"

// lineWriter builds the output line by line. Indent is emitted lazily, in
// front of the first text on a line, so no line carries trailing blanks
// and repeated newlines collapse.
type lineWriter struct {
	out   []byte
	unit  []byte // one indent step
	depth int
	fresh bool // next text starts a line
}

func newLineWriter(opt Options, hint int) *lineWriter {
	unit := bytes.Repeat([]byte{' '}, opt.IndentWidth)
	if opt.UseTabs {
		unit = []byte{'\t'}
	}
	return &lineWriter{out: make([]byte, 0, hint), unit: unit}
}

func (w *lineWriter) Bytes() []byte { return w.out }

func (w *lineWriter) last() byte {
	if len(w.out) == 0 {
		return 0
	}
	return w.out[len(w.out)-1]
}

// WriteString writes s after the pending indent.
func (w *lineWriter) WriteString(s string) {
	if s == "" {
		return
	}
	if w.fresh {
		for range w.depth {
			w.out = append(w.out, w.unit...)
		}
	}
	w.WriteRaw(s)
}

// WriteRaw writes s as is, preprocessor lines keep their own layout.
func (w *lineWriter) WriteRaw(s string) {
	if s == "" {
		return
	}
	w.out = append(w.out, s...)
	w.fresh = s[len(s)-1] == '\n'
}

// Space separates two tokens unless a blank is already there.
func (w *lineWriter) Space() {
	switch w.last() {
	case 0, ' ', '\t', '\n':
		return
	}
	w.out = append(w.out, ' ')
}

// Newline never produces an empty line.
func (w *lineWriter) Newline() {
	switch w.last() {
	case 0:
		return
	case '\n':
	default:
		w.out = append(w.out, '\n')
	}
	w.fresh = true
}

func (w *lineWriter) IndentPush() { w.depth++ }

func (w *lineWriter) IndentPop() { w.depth = max(w.depth-1, 0) }
