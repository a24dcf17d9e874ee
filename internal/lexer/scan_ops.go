package lexer

import "strings"

// Длинные формы раньше коротких.
var operators = []string{
	"<<=", ">>=",
	"++", "--", "&&", "||", "<<", ">>", "->",
	"+=", "-=", "*=", "/=", "%=", "==", "&=", "|=", "^=", "<=", ">=", "!=", "~=",
	"+", "-", "*", "/", "%", "=", "&", "|", "^", "<", ">", "!", "~", "?",
}

const punctuators = "{}()[],.;:"

func (lx *Lexer) scanOperator() bool {
	for _, op := range operators {
		if lx.cursor.EatString(op) {
			return true
		}
	}
	return false
}

func (lx *Lexer) scanPunct() bool {
	b := lx.cursor.Peek()
	if b == 0 || !strings.ContainsRune(punctuators, rune(b)) {
		return false
	}
	lx.cursor.Bump()
	return true
}
