package lexer

import "unicode"

// scanDirective recognises `#include <path>` anywhere (whitespace, newlines
// included, may separate the parts) and, for a '#' that starts a line, any
// other directive up to the end of the line. A backslash right before the
// newline continues the directive.
func (lx *Lexer) scanDirective() bool {
	start := lx.cursor.Mark()
	if lx.scanInclude() {
		return true
	}
	lx.cursor.Reset(start)
	return lx.scanLineDirective()
}

func (lx *Lexer) scanInclude() bool {
	c := &lx.cursor
	if !c.Eat('#') {
		return false
	}
	lx.skipSpaces(true)
	if !c.EatString("include") {
		return false
	}
	lx.skipSpaces(true)
	if !c.Eat('<') {
		return false
	}
	n := 0
	for !c.EOF() && c.Peek() != '>' {
		c.BumpRune()
		n++
	}
	if n == 0 {
		return false
	}
	return c.Eat('>')
}

func (lx *Lexer) scanLineDirective() bool {
	c := &lx.cursor
	if !lx.atLineStart() || !c.Eat('#') {
		return false
	}
	lx.skipSpaces(false)
	if !isIdentStart(c.Peek()) {
		return false
	}
	for !c.EOF() {
		b := c.Peek()
		if b == '\n' {
			break
		}
		if b == '\\' && c.PeekAt(1) == '\n' {
			c.Bump()
			c.Bump()
			continue
		}
		if b == '\\' && c.PeekAt(1) == '\r' && c.PeekAt(2) == '\n' {
			c.Bump()
			c.Bump()
			c.Bump()
			continue
		}
		c.BumpRune()
	}
	return true
}

// atLineStart reports whether only spaces or tabs separate the cursor from
// the previous newline (or the start of the file).
func (lx *Lexer) atLineStart() bool {
	content := lx.cursor.Behind()
	for i := len(content) - 1; i >= 0; i-- {
		switch content[i] {
		case ' ', '\t':
			continue
		case '\n':
			return true
		default:
			return false
		}
	}
	return true
}

func (lx *Lexer) skipSpaces(newlines bool) {
	c := &lx.cursor
	for !c.EOF() {
		r, _ := c.PeekRune()
		if r == '\n' && !newlines {
			return
		}
		if !unicode.IsSpace(r) {
			return
		}
		c.BumpRune()
	}
}
