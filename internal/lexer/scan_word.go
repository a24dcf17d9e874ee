package lexer

import (
	"unicode"

	"brainrot/internal/token"
)

// isWordRune matches the regex notion of a word character.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func (lx *Lexer) atWordBoundaryBefore() bool {
	r, sz := lx.cursor.PrevRune()
	return sz == 0 || !isWordRune(r)
}

func (lx *Lexer) atWordBoundaryAfter() bool {
	r, sz := lx.cursor.PeekRune()
	return sz == 0 || !isWordRune(r)
}

// scanWord consumes [A-Za-z_][A-Za-z0-9_]* bounded by non-word characters
// on both sides. Boundaries are Unicode-aware, the word itself is ASCII:
// "naïve" is not a word at all and falls through to Mismatch.
func (lx *Lexer) scanWord() (string, bool) {
	if !lx.atWordBoundaryBefore() || !isIdentStart(lx.cursor.Peek()) {
		return "", false
	}
	start := lx.cursor.Off
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if !lx.atWordBoundaryAfter() {
		return "", false
	}
	return string(lx.file.Content[start:lx.cursor.Off]), true
}

func (lx *Lexer) scanKeyword() bool {
	w, ok := lx.scanWord()
	return ok && token.IsKeyword(w)
}

func (lx *Lexer) scanIdentifier() bool {
	_, ok := lx.scanWord()
	return ok
}
