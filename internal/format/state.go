package format

import (
	"unicode"
	"unicode/utf8"

	"brainrot/internal/token"
)

// State is the heuristic context carried between tokens during one render.
type State struct {
	// Indent is the current block depth.
	Indent int
	// InTypedef is set by a typedef keyword until its body closes.
	InTypedef bool
	// TypedefIndent is the block depth where the pending typedef started.
	TypedefIndent int
	// WasTypedef is set for exactly one token after a typedef body closes.
	WasTypedef bool
	// ParenDepth counts unclosed '('.
	ParenDepth int
	// Prev is the previously rendered token, nil before the first one.
	Prev *token.Token
}

func isPunctIn(t *token.Token, set string) bool {
	if t == nil || t.Kind != token.Punctuator || len(t.Text) != 1 {
		return false
	}
	for i := 0; i < len(set); i++ {
		if set[i] == t.Text[0] {
			return true
		}
	}
	return false
}

// spaced reports kinds that need a separator when adjacent.
func spaced(k token.Kind) bool {
	return k == token.Keyword || k == token.Identifier || k == token.Number
}

// letterMismatch reports a stray character that the lexer treats as part of
// a word. Glued to a keyword or identifier it would re-lex differently.
func letterMismatch(t *token.Token) bool {
	if t.Kind != token.Mismatch {
		return false
	}
	r, _ := utf8.DecodeRuneInString(t.Text)
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isWordKind(k token.Kind) bool {
	return k == token.Keyword || k == token.Identifier
}

// statementBoundary: предыдущий токен закрыл оператор или блок, и cur
// начинает новую строку. Если следом идёт `;` или токенов больше нет,
// cur остаётся на той же строке.
func (st *State) statementBoundary(cur token.Token, next *token.Token) bool {
	if !isPunctIn(st.Prev, ";{}") {
		return false
	}
	if st.Prev.Text == "}" && cur.IsPunct(";") {
		return false
	}
	if st.ParenDepth > 0 || st.WasTypedef {
		return false
	}
	return next != nil && !next.IsPunct(";")
}

func (st *State) trackParens(cur token.Token) {
	switch {
	case cur.IsPunct("("):
		st.ParenDepth++
	case cur.IsPunct(")"):
		if st.ParenDepth > 0 {
			st.ParenDepth--
		}
	}
}

func (st *State) trackTypedef(cur token.Token, cues Cues) {
	switch {
	case st.InTypedef && cur.IsPunct("}") && st.Indent == st.TypedefIndent+1:
		st.WasTypedef = true
		st.InTypedef = false
	case st.InTypedef && cur.IsPunct(";") && st.Indent == st.TypedefIndent && st.ParenDepth == 0:
		// typedef без тела
		st.InTypedef = false
	}
	if cur.Kind == token.Keyword && has(cues.Typedef, cur.Text) {
		st.InTypedef = true
		st.TypedefIndent = st.Indent
	}
}

func (st *State) needSpace(cur token.Token, next *token.Token, cues Cues) bool {
	prev := st.Prev
	switch {
	case prev == nil:
		return false
	case isPunctIn(prev, "{};"):
		return false
	case prev.Kind == token.Preprocessor:
		return false
	case isPunctIn(&cur, ",;})"):
		return false
	case prev.IsPunct("("):
		return false
	case cur.Kind == token.Operator || prev.Kind == token.Operator:
		return true
	case isWordKind(prev.Kind) && letterMismatch(&cur),
		letterMismatch(prev) && isWordKind(cur.Kind):
		return true
	case prev.Kind == token.Keyword && has(cues.Return, prev.Text):
		return true
	case spaced(prev.Kind) && spaced(cur.Kind):
		return true
	case next != nil && cur.Kind == token.Keyword && has(cues.IntType, cur.Text) && next.Kind == token.Identifier:
		return true
	}
	return false
}
