package lexer

import (
	"fmt"
	"unicode"

	"brainrot/internal/diag"
	"brainrot/internal/token"
)

// scanComment: `// ...` до конца строки (без '\n') или `/* ... */`.
// Незакрытый блочный комментарий не считается комментарием.
func (lx *Lexer) scanComment() bool {
	c := &lx.cursor
	if c.Peek() != '/' {
		return false
	}
	switch c.PeekAt(1) {
	case '/':
		for !c.EOF() && c.Peek() != '\n' {
			c.BumpRune()
		}
		return true
	case '*':
		c.Bump()
		c.Bump()
		for !c.EOF() {
			if c.Peek() == '*' && c.PeekAt(1) == '/' {
				c.Bump()
				c.Bump()
				return true
			}
			c.BumpRune()
		}
		return false
	}
	return false
}

func (lx *Lexer) scanWhitespace() bool {
	c := &lx.cursor
	n := 0
	for !c.EOF() {
		r, _ := c.PeekRune()
		if !unicode.IsSpace(r) {
			break
		}
		c.BumpRune()
		n++
	}
	return n > 0
}

// scanMismatch consumes a single character no class accepts and reports it.
func (lx *Lexer) scanMismatch(start Mark) token.Token {
	lx.cursor.BumpRune()
	tok := lx.emit(token.Mismatch, start)
	switch tok.Text {
	case `"`:
		lx.warnLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	case "'":
		lx.warnLex(diag.LexUnterminatedChar, tok.Span, "unterminated character literal")
	default:
		lx.warnLex(diag.LexUnknownChar, tok.Span, fmt.Sprintf("unknown character '%s'", tok.Text))
	}
	return tok
}
