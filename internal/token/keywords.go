package token

import "sort"

var keywords = map[string]struct{}{
	"auto":     {},
	"break":    {},
	"case":     {},
	"char":     {},
	"const":    {},
	"continue": {},
	"default":  {},
	"do":       {},
	"double":   {},
	"else":     {},
	"enum":     {},
	"extern":   {},
	"float":    {},
	"for":      {},
	"goto":     {},
	"if":       {},
	"inline":   {},
	"int":      {},
	"long":     {},
	"register": {},
	"restrict": {},
	"return":   {},
	"short":    {},
	"signed":   {},
	"sizeof":   {},
	"static":   {},
	"struct":   {},
	"switch":   {},
	"typedef":  {},
	"union":    {},
	"unsigned": {},
	"void":     {},
	"volatile": {},
	"while":    {},
}

// IsKeyword reports whether word is a reserved C keyword.
// Keywords are case-sensitive.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// Keywords returns the reserved words in lexical order.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for k := range keywords {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// IsIdentifierSpelling reports whether s matches [A-Za-z_][A-Za-z0-9_]*.
func IsIdentifierSpelling(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b == '_', b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		case b >= '0' && b <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
