package token

import (
	"brainrot/internal/source"
)

// Token represents a single classified source fragment.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsTrivia reports whether the token is whitespace or a comment.
func (t Token) IsTrivia() bool { return t.Kind.IsTrivia() }

// IsPunct reports whether the token is the punctuator with the given text.
func (t Token) IsPunct(text string) bool {
	return t.Kind == Punctuator && t.Text == text
}

// WithText returns a copy of t carrying a new spelling and kind.
// The span still points at the original source fragment.
func (t Token) WithText(kind Kind, text string) Token {
	t.Kind = kind
	t.Text = text
	return t
}

// Texts returns the spellings of toks in order.
func Texts(toks []Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text
	}
	return out
}
