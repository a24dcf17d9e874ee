// Package rewrite substitutes keyword and identifier spellings in a token
// sequence using a subst.Table. Sequence length and order never change.
package rewrite

import (
	"brainrot/internal/subst"
	"brainrot/internal/token"
)

// Apply returns a new sequence with the table applied in direction dir.
// The input slice is left untouched.
func Apply(toks []token.Token, table *subst.Table, dir Direction) []token.Token {
	out := make([]token.Token, len(toks))
	for i, tok := range toks {
		out[i] = applyOne(tok, table, dir)
	}
	return out
}

// ForwardAll is Apply(toks, table, Forward).
func ForwardAll(toks []token.Token, table *subst.Table) []token.Token {
	return Apply(toks, table, Forward)
}

// BackwardAll is Apply(toks, table, Backward).
func BackwardAll(toks []token.Token, table *subst.Table) []token.Token {
	return Apply(toks, table, Backward)
}

func applyOne(tok token.Token, table *subst.Table, dir Direction) token.Token {
	switch tok.Kind {
	case token.Keyword, token.Identifier:
	default:
		return tok
	}
	if dir == Forward {
		return forwardOne(tok, table)
	}
	return backwardOne(tok, table)
}

func forwardOne(tok token.Token, table *subst.Table) token.Token {
	switch tok.Kind {
	case token.Keyword:
		if alt, ok := table.Keyword(tok.Text); ok {
			return tok.WithText(token.Keyword, alt)
		}
	case token.Identifier:
		if alt, ok := table.Identifier(tok.Text); ok {
			return tok.WithText(token.Identifier, alt)
		}
	}
	return tok
}

// Keyword-токен ищем только в карте ключевых слов. Идентификатор сначала
// ищем в своей карте; альтернативы ключевых слов лексятся как
// идентификаторы, поэтому при промахе пробуем карту ключевых слов и
// возвращаем токену вид Keyword.
func backwardOne(tok token.Token, table *subst.Table) token.Token {
	if tok.Kind == token.Identifier {
		if name, ok := table.IdentifierOf(tok.Text); ok {
			return tok.WithText(token.Identifier, name)
		}
	}
	if word, ok := table.KeywordOf(tok.Text); ok {
		return tok.WithText(token.Keyword, word)
	}
	return tok
}

// Changed counts positions whose text differs between a and b.
func Changed(a, b []token.Token) int {
	n := 0
	for i := range a {
		if i < len(b) && a[i].Text != b[i].Text {
			n++
		}
	}
	return n
}
