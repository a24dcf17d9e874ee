package testkit

import (
	"strings"
	"testing"

	"brainrot/internal/source"
	"brainrot/internal/token"
)

func file(content string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("t.c", []byte(content)))
}

func TestCheckTokenInvariants(t *testing.T) {
	sf := file("int x;")
	good := []token.Token{
		{Kind: token.Keyword, Span: source.Span{Start: 0, End: 3}, Text: "int"},
		{Kind: token.Whitespace, Span: source.Span{Start: 3, End: 4}, Text: " "},
		{Kind: token.Identifier, Span: source.Span{Start: 4, End: 5}, Text: "x"},
		{Kind: token.Punctuator, Span: source.Span{Start: 5, End: 6}, Text: ";"},
	}
	if err := CheckTokenInvariants(good, sf); err != nil {
		t.Fatalf("valid stream rejected: %v", err)
	}

	tests := []struct {
		name string
		toks []token.Token
		want string
	}{
		{"gap", []token.Token{good[0], good[2], good[3]}, "starts at 4"},
		{"short", good[:3], "cover 5 of 6"},
		{"text", append(append([]token.Token(nil), good[:3]...), token.Token{Kind: token.Punctuator, Span: source.Span{Start: 5, End: 6}, Text: ","}), "does not match"},
		{"kind", append([]token.Token{{Kind: token.Invalid, Span: source.Span{Start: 0, End: 3}, Text: "int"}}, good[1:]...), "bad kind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTokenInvariants(tt.toks, sf)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
		})
	}
}
