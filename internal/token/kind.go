package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid is the zero value and never produced by the lexer.
	Invalid Kind = iota
	// Preprocessor is an include (or other directive) line.
	Preprocessor
	// Comment is a line or block comment.
	Comment
	// Keyword is a reserved C word.
	Keyword
	// Number is an integer or decimal literal with an optional sign.
	Number
	// Identifier is a name that is not a reserved word.
	Identifier
	// String is a double-quoted literal.
	String
	// Char is a single-quoted literal.
	Char
	// Operator is an arithmetic, comparison, logical or assignment symbol.
	Operator
	// Punctuator is one structural character.
	Punctuator
	// Whitespace is a run of blanks.
	Whitespace
	// Mismatch is a single character no other pattern accepted.
	Mismatch

	kindCount
)

var kindNames = [kindCount]string{
	Invalid:      "INVALID",
	Preprocessor: "PREPROCESSOR",
	Comment:      "COMMENT",
	Keyword:      "KEYWORD",
	Number:       "NUMBER",
	Identifier:   "IDENTIFIER",
	String:       "STRING",
	Char:         "CHAR",
	Operator:     "OPERATOR",
	Punctuator:   "PUNCTUATOR",
	Whitespace:   "WHITESPACE",
	Mismatch:     "MISMATCH",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k := Invalid; k < kindCount; k++ {
		if kindNames[k] == s {
			return k, true
		}
	}
	return Invalid, false
}

// IsTrivia reports whether tokens of this kind are dropped after classification.
func (k Kind) IsTrivia() bool {
	return k == Whitespace || k == Comment
}

// IsWord reports whether the kind is one of the substitution candidates.
func (k Kind) IsWord() bool {
	return k == Keyword || k == Identifier
}
