package lexer

// scanQuoted consumes a string or char literal delimited by q.
// A backslash escapes any following byte except a newline; raw newlines
// inside the literal are accepted.
func (lx *Lexer) scanQuoted(q byte) bool {
	c := &lx.cursor
	if !c.Eat(q) {
		return false
	}
	for !c.EOF() {
		switch c.Peek() {
		case q:
			c.Bump()
			return true
		case '\\':
			c.Bump()
			if c.EOF() || c.Peek() == '\n' {
				return false
			}
			c.BumpRune()
		default:
			c.BumpRune()
		}
	}
	return false
}
