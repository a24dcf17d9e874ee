package lexer

// scanNumber: [+-]? (digits ('.' digits*)? | '.' digits).
// Суффиксы, экспоненты и hex не поддерживаются.
func (lx *Lexer) scanNumber() bool {
	c := &lx.cursor
	if b := c.Peek(); b == '+' || b == '-' {
		c.Bump()
	}
	if isDigit(c.Peek()) {
		for isDigit(c.Peek()) {
			c.Bump()
		}
		if c.Eat('.') {
			for isDigit(c.Peek()) {
				c.Bump()
			}
		}
		return true
	}
	if c.Peek() == '.' && isDigit(c.PeekAt(1)) {
		c.Bump()
		for isDigit(c.Peek()) {
			c.Bump()
		}
		return true
	}
	return false
}
