package lexer

import (
	"brainrot/internal/source"
	"brainrot/internal/token"
)

// Lexer splits a source file into classified tokens. Every byte of the
// input lands in exactly one token, so concatenating the texts of All()
// reproduces the content.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	done   bool
}

// New creates a lexer over file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// matcher tries one token class at the cursor. It advances the cursor on
// success; on failure Next rewinds to the start mark.
type matcher struct {
	kind  token.Kind
	match func(lx *Lexer) bool
}

// Порядок важен: первый совпавший класс выигрывает.
var matchers = [...]matcher{
	{token.Preprocessor, (*Lexer).scanDirective},
	{token.Comment, (*Lexer).scanComment},
	{token.Keyword, (*Lexer).scanKeyword},
	{token.Number, (*Lexer).scanNumber},
	{token.Identifier, (*Lexer).scanIdentifier},
	{token.String, func(lx *Lexer) bool { return lx.scanQuoted('"') }},
	{token.Char, func(lx *Lexer) bool { return lx.scanQuoted('\'') }},
	{token.Operator, (*Lexer).scanOperator},
	{token.Punctuator, (*Lexer).scanPunct},
	{token.Whitespace, (*Lexer).scanWhitespace},
}

// Next returns the next token, trivia included. ok is false at EOF.
func (lx *Lexer) Next() (tok token.Token, ok bool) {
	if lx.done || lx.cursor.EOF() {
		lx.done = true
		return token.Token{}, false
	}
	start := lx.cursor.Mark()
	for _, m := range matchers {
		if m.match(lx) && lx.cursor.Off > uint32(start) {
			return lx.emit(m.kind, start), true
		}
		lx.cursor.Reset(start)
	}
	return lx.scanMismatch(start), true
}

// All drains the lexer.
func (lx *Lexer) All() []token.Token {
	var out []token.Token
	for {
		tok, ok := lx.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

// Significant drains the lexer and drops whitespace and comments.
func (lx *Lexer) Significant() []token.Token {
	return Significant(lx.All())
}

// Significant filters out trivia tokens, keeping order.
func Significant(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if !t.IsTrivia() {
			out = append(out, t)
		}
	}
	return out
}

// Tokenize is a convenience wrapper for New(file, opts).All().
func Tokenize(file *source.File, opts Options) []token.Token {
	return New(file, opts).All()
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
