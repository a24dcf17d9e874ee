package dialect

import (
	"brainrot/internal/source"
	"brainrot/internal/subst"
	"brainrot/internal/token"
)

// Веса: ключевые слова надёжнее идентификаторов.
const (
	keywordScore    = 2
	identifierScore = 1
)

// Hint is one token that points at a spelling.
type Hint struct {
	Dialect Kind
	Score   int
	Reason  string
	Span    source.Span
}

// Evidence is the ordered list of hints for one file.
type Evidence struct {
	hints []Hint
}

// First returns the earliest hint for k.
func (e *Evidence) First(k Kind) (Hint, bool) {
	if e != nil {
		for _, h := range e.hints {
			if h.Dialect == k {
				return h, true
			}
		}
	}
	return Hint{}, false
}

// Collect scores every keyword and identifier against the table.
// A spelling that is both a canonical entry and an alternate counts for
// neither side.
func Collect(toks []token.Token, table *subst.Table) *Evidence {
	ev := &Evidence{}
	add := func(k Kind, score int, reason string, tok token.Token) {
		ev.hints = append(ev.hints, Hint{Dialect: k, Score: score, Reason: reason + " " + tok.Text, Span: tok.Span})
	}
	for _, tok := range toks {
		switch tok.Kind {
		case token.Keyword:
			if _, ok := table.Keyword(tok.Text); ok {
				add(Canonical, keywordScore, "keyword", tok)
			}
		case token.Identifier:
			_, canon := table.Identifier(tok.Text)
			_, altKw := table.KeywordOf(tok.Text)
			_, altID := table.IdentifierOf(tok.Text)
			switch {
			case canon && (altKw || altID):
				// неоднозначно
			case altKw:
				add(Alternate, keywordScore, "alternate keyword", tok)
			case altID:
				add(Alternate, identifierScore, "alternate identifier", tok)
			case canon:
				add(Canonical, identifierScore, "identifier", tok)
			}
		}
	}
	return ev
}
