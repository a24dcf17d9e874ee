package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"brainrot/internal/diag"
	"brainrot/internal/lexer"
	"brainrot/internal/source"
	"brainrot/internal/testkit"
	"brainrot/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) messages() []string {
	out := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return out
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.c", []byte(input))
	reporter := &testReporter{}
	return lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter}), reporter
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

type kt struct {
	kind token.Kind
	text string
}

func expectTokens(t *testing.T, input string, significant bool, expected []kt) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	var toks []token.Token
	if significant {
		toks = lx.Significant()
	} else {
		toks = lx.All()
	}
	if len(toks) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %s\ndiags: %v",
			len(expected), len(toks), input, tokensToString(toks), reporter.messages())
	}
	for i, tok := range toks {
		if tok.Kind != expected[i].kind || tok.Text != expected[i].text {
			t.Errorf("token %d: expected %v(%q), got %v(%q)",
				i, expected[i].kind, expected[i].text, tok.Kind, tok.Text)
		}
	}
}

func expectSingleToken(t *testing.T, input string, kind token.Kind) {
	t.Helper()
	expectTokens(t, input, false, []kt{{kind, input}})
}

func TestMismatchEmitsOneDiagnostic(t *testing.T) {
	lx, reporter := makeTestLexer("int x @ 5;")
	toks := lx.Significant()
	want := []kt{
		{token.Keyword, "int"},
		{token.Identifier, "x"},
		{token.Mismatch, "@"},
		{token.Number, "5"},
		{token.Punctuator, ";"},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %s", tokensToString(toks))
	}
	for i, tok := range toks {
		if tok.Kind != want[i].kind || tok.Text != want[i].text {
			t.Errorf("token %d: got %v(%q)", i, tok.Kind, tok.Text)
		}
	}
	if len(reporter.diagnostics) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %v", reporter.messages())
	}
	d := reporter.diagnostics[0]
	if d.Code != diag.LexUnknownChar || d.Severity != diag.SevWarning {
		t.Errorf("unexpected diagnostic %v", reporter.messages())
	}
	if d.Primary.Start != 6 || d.Primary.End != 7 {
		t.Errorf("diagnostic span = %v", d.Primary)
	}
	if !strings.Contains(d.Message, "'@'") {
		t.Errorf("message should name the character: %q", d.Message)
	}
}

func TestCoverageReproducesInput(t *testing.T) {
	inputs := []string{
		"",
		"#include <stdio.h>\nint main() { printf(\"hi\\n\"); return 0; }\n",
		"/* block\ncomment */ x = y // tail\n",
		"a @ $ ` é 1int \"open\n",
		"#define MAX(a, b) \\\n  ((a) > (b) ? (a) : (b))\nint z;",
		"for (i = 0; i <= 10; i++) { s += .5 - 3.; }",
		"/* never closed",
	}
	for _, in := range inputs {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("test.c", []byte(in)))
		toks := lexer.New(file, lexer.Options{}).All()
		if err := testkit.CheckTokenInvariants(toks, file); err != nil {
			t.Errorf("%q: %v", in, err)
		}
	}
}

func TestKeywordVersusIdentifier(t *testing.T) {
	expectSingleToken(t, "int", token.Keyword)
	expectSingleToken(t, "sizeof", token.Keyword)
	expectSingleToken(t, "integer", token.Identifier)
	expectSingleToken(t, "_int", token.Identifier)
	expectSingleToken(t, "printf", token.Identifier)
	expectTokens(t, "int_t", false, []kt{{token.Identifier, "int_t"}})
}

func TestNonASCIIWordIsMismatch(t *testing.T) {
	expectTokens(t, "x é y", true, []kt{
		{token.Identifier, "x"},
		{token.Mismatch, "é"},
		{token.Identifier, "y"},
	})
	// граница слова юникодная, поэтому ни "na", ни "ve" не идентификаторы
	expectTokens(t, "naïve", true, []kt{
		{token.Mismatch, "n"},
		{token.Mismatch, "a"},
		{token.Mismatch, "ï"},
		{token.Mismatch, "v"},
		{token.Mismatch, "e"},
	})
}

func TestWordBoundaryAfterNumber(t *testing.T) {
	lx, reporter := makeTestLexer("1int")
	toks := lx.All()
	want := []kt{
		{token.Number, "1"},
		{token.Mismatch, "i"},
		{token.Mismatch, "n"},
		{token.Mismatch, "t"},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %s", tokensToString(toks))
	}
	for i, tok := range toks {
		if tok.Kind != want[i].kind || tok.Text != want[i].text {
			t.Errorf("token %d: got %v(%q)", i, tok.Kind, tok.Text)
		}
	}
	if len(reporter.diagnostics) != 3 {
		t.Errorf("expected one diagnostic per stray character, got %v", reporter.messages())
	}
}

func TestNumbers(t *testing.T) {
	for _, in := range []string{"0", "42", "3.14", "5.", ".5", "+7", "-2.5", "-.25"} {
		expectSingleToken(t, in, token.Number)
	}
	expectTokens(t, "x-1", false, []kt{
		{token.Identifier, "x"},
		{token.Number, "-1"},
	})
	expectTokens(t, "a - b", false, []kt{
		{token.Identifier, "a"},
		{token.Whitespace, " "},
		{token.Operator, "-"},
		{token.Whitespace, " "},
		{token.Identifier, "b"},
	})
	expectTokens(t, "s.x", false, []kt{
		{token.Identifier, "s"},
		{token.Punctuator, "."},
		{token.Identifier, "x"},
	})
}

func TestStringsAndChars(t *testing.T) {
	expectSingleToken(t, `"hello"`, token.String)
	expectSingleToken(t, `"say \"hi\""`, token.String)
	expectSingleToken(t, `"a\\"`, token.String)
	expectSingleToken(t, "\"two\nlines\"", token.String)
	expectSingleToken(t, `'a'`, token.Char)
	expectSingleToken(t, `'\''`, token.Char)
	expectSingleToken(t, `'\n'`, token.Char)
	// комментарий внутри строки остаётся строкой
	expectSingleToken(t, `"// not a comment"`, token.String)
}

func TestUnterminatedLiteral(t *testing.T) {
	lx, reporter := makeTestLexer("\"abc")
	toks := lx.All()
	if len(toks) == 0 || toks[0].Kind != token.Mismatch || toks[0].Text != `"` {
		t.Fatalf("got %s", tokensToString(toks))
	}
	if toks[1].Kind != token.Identifier || toks[1].Text != "abc" {
		t.Errorf("got %s", tokensToString(toks))
	}
	if len(reporter.diagnostics) != 1 || reporter.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Errorf("diags: %v", reporter.messages())
	}

	lx, reporter = makeTestLexer("'\\\n'")
	toks = lx.All()
	if toks[0].Kind != token.Mismatch || reporter.diagnostics[0].Code != diag.LexUnterminatedChar {
		t.Errorf("escaped newline must not close a char literal: %s", tokensToString(toks))
	}
}

func TestOperatorsAndPunctuators(t *testing.T) {
	ops := []string{
		"++", "--", "&&", "||", "<<", ">>", "->", "<<=", ">>=",
		"+=", "-=", "*=", "/=", "%=", "==", "&=", "|=", "^=", "<=", ">=", "!=",
		"+", "*", "/", "%", "=", "&", "|", "^", "<", ">", "!", "~", "?",
	}
	for _, op := range ops {
		expectSingleToken(t, op, token.Operator)
	}
	for _, p := range strings.Split("{ } ( ) [ ] , . ; :", " ") {
		expectSingleToken(t, p, token.Punctuator)
	}
	expectTokens(t, "a&&b", false, []kt{
		{token.Identifier, "a"},
		{token.Operator, "&&"},
		{token.Identifier, "b"},
	})
	expectTokens(t, "i++;", false, []kt{
		{token.Identifier, "i"},
		{token.Operator, "++"},
		{token.Punctuator, ";"},
	})
}

func TestComments(t *testing.T) {
	expectTokens(t, "x // hi\ny", false, []kt{
		{token.Identifier, "x"},
		{token.Whitespace, " "},
		{token.Comment, "// hi"},
		{token.Whitespace, "\n"},
		{token.Identifier, "y"},
	})
	expectSingleToken(t, "/* a\n * b */", token.Comment)
	expectTokens(t, "a /= b", true, []kt{
		{token.Identifier, "a"},
		{token.Operator, "/="},
		{token.Identifier, "b"},
	})
}

func TestPreprocessor(t *testing.T) {
	expectSingleToken(t, "#include <stdio.h>", token.Preprocessor)
	expectSingleToken(t, "# include<stdlib.h>", token.Preprocessor)
	expectSingleToken(t, "#define N 10", token.Preprocessor)
	expectSingleToken(t, "#define F(x) \\\n  (x * 2)", token.Preprocessor)
	expectSingleToken(t, `#include "local.h"`, token.Preprocessor)
	expectTokens(t, "  #ifdef DEBUG\nint x;", true, []kt{
		{token.Preprocessor, "#ifdef DEBUG"},
		{token.Keyword, "int"},
		{token.Identifier, "x"},
		{token.Punctuator, ";"},
	})
	// '#' в середине строки не директива
	lx, reporter := makeTestLexer("x #define")
	toks := lx.Significant()
	if toks[1].Kind != token.Mismatch || toks[1].Text != "#" || len(reporter.diagnostics) != 1 {
		t.Errorf("got %s", tokensToString(toks))
	}
}

func TestProgramSignificant(t *testing.T) {
	expectTokens(t, "#include <stdio.h>\nint main(){return 0;}", true, []kt{
		{token.Preprocessor, "#include <stdio.h>"},
		{token.Keyword, "int"},
		{token.Identifier, "main"},
		{token.Punctuator, "("},
		{token.Punctuator, ")"},
		{token.Punctuator, "{"},
		{token.Keyword, "return"},
		{token.Number, "0"},
		{token.Punctuator, ";"},
		{token.Punctuator, "}"},
	})
}

func TestSpansResolve(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("prog.c", []byte("int a;\n  float b;"))
	toks := lexer.New(fs.Get(id), lexer.Options{}).Significant()
	start, _ := fs.Resolve(toks[3].Span)
	if toks[3].Text != "float" || start.Line != 2 || start.Col != 3 {
		t.Errorf("float at %v (%q)", start, toks[3].Text)
	}
}

func TestNilReporter(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x.c", []byte("@@"))
	toks := lexer.Tokenize(fs.Get(id), lexer.Options{})
	if len(toks) != 2 || toks[0].Kind != token.Mismatch {
		t.Errorf("got %s", tokensToString(toks))
	}
}
