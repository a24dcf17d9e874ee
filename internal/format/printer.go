package format

import (
	"strings"

	"brainrot/internal/token"
)

// Printer renders token sequences. It is not safe for concurrent use; each
// Print call starts from a fresh State.
type Printer struct {
	opt Options
	w   *lineWriter
	st  State
}

// NewPrinter creates a printer with the given options.
func NewPrinter(opt Options) *Printer {
	return &Printer{opt: opt.withDefaults()}
}

// Render is a shortcut for NewPrinter(opt).Print(toks).
func Render(toks []token.Token, opt Options) string {
	return NewPrinter(opt).Print(toks)
}

// Print renders toks. Whitespace and comment tokens are skipped.
func (p *Printer) Print(toks []token.Token) string {
	sig := make([]token.Token, 0, len(toks))
	size := 0
	for _, t := range toks {
		if !t.IsTrivia() {
			sig = append(sig, t)
			size += len(t.Text) + 1
		}
	}

	p.st = State{}
	p.w = newLineWriter(p.opt, size)
	for i := range sig {
		var next *token.Token
		if i+1 < len(sig) {
			next = &sig[i+1]
		}
		p.step(sig[i], next)
		prev := sig[i]
		p.st.Prev = &prev
	}
	return strings.TrimSpace(string(p.w.Bytes()))
}

// Depth is the block depth after the last Print. Zero for balanced input.
func (p *Printer) Depth() int {
	return p.st.Indent
}

// State returns the heuristic state after the last Print.
func (p *Printer) State() State {
	return p.st
}

func (p *Printer) step(cur token.Token, next *token.Token) {
	st := &p.st
	w := p.w

	if st.statementBoundary(cur, next) {
		w.Newline()
	} else if st.WasTypedef {
		w.Space()
	}
	st.WasTypedef = false

	st.trackParens(cur)
	st.trackTypedef(cur, p.opt.Cues)

	if cur.Kind == token.Punctuator {
		switch cur.Text {
		case "{":
			w.Space()
			w.WriteString("{")
			st.Indent++
			w.IndentPush()
			w.Newline()
			return
		case "}":
			if st.Indent > 0 {
				st.Indent--
			}
			w.IndentPop()
			w.Newline()
			w.WriteString("}")
			return
		case ":":
			w.WriteString(":")
			w.Newline()
			return
		}
	}

	// директивы всегда на отдельной строке и без отступа
	if cur.Kind == token.Preprocessor {
		w.Newline()
		w.WriteRaw(cur.Text)
		w.Newline()
		return
	}

	if st.needSpace(cur, next, p.opt.Cues) {
		w.Space()
	}
	w.WriteString(cur.Text)
}
