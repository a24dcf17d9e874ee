package rewrite_test

import (
	"strings"
	"testing"

	"brainrot/internal/lexer"
	"brainrot/internal/rewrite"
	"brainrot/internal/source"
	"brainrot/internal/subst"
	"brainrot/internal/token"
)

func lex(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.c", []byte(src))
	return lexer.New(fs.Get(id), lexer.Options{}).Significant()
}

func TestForwardScenario(t *testing.T) {
	toks := rewrite.ForwardAll(lex(t, "int main(){return 0;}"), subst.Default())
	want := []string{"omega", "main", "(", ")", "{", "mew", "0", ";", "}"}
	got := token.Texts(toks)
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Fatalf("forward = %v, want %v", got, want)
	}
	if toks[0].Kind != token.Keyword {
		t.Errorf("forward keeps the token kind, got %v", toks[0].Kind)
	}
}

func TestBackwardScenario(t *testing.T) {
	in := lex(t, "omega main() {\n    mew 0;\n}")
	if in[0].Kind != token.Identifier {
		t.Fatalf("alternate spelling should lex as identifier, got %v", in[0].Kind)
	}
	toks := rewrite.BackwardAll(in, subst.Default())
	got := strings.Join(token.Texts(toks), " ")
	if got != "int main ( ) { return 0 ; }" {
		t.Fatalf("backward = %q", got)
	}
	if toks[0].Kind != token.Keyword || toks[5].Kind != token.Keyword {
		t.Errorf("restored keywords must carry Keyword kind: %v %v", toks[0].Kind, toks[5].Kind)
	}
	if toks[1].Kind != token.Identifier {
		t.Errorf("main kind = %v", toks[1].Kind)
	}
}

func TestRoundTripOnUniqueEntries(t *testing.T) {
	src := `int main(void) { char *s = "int"; unsigned long n = strlen(s);
	for (i = 0; i < n; i++) { if (s[i]) printf("%c", s[i]); else continue; }
	while (1) break; return sizeof(n); }`
	table := subst.Default()
	orig := lex(t, src)

	fwd := rewrite.ForwardAll(orig, table)
	// рендер и повторный лексинг: альтернативы превращаются в идентификаторы
	relexed := lex(t, strings.Join(token.Texts(fwd), " "))
	back := rewrite.BackwardAll(relexed, table)

	if len(back) != len(orig) {
		t.Fatalf("length changed: %d -> %d", len(orig), len(back))
	}
	for i := range orig {
		if back[i].Text != orig[i].Text || back[i].Kind != orig[i].Kind {
			t.Errorf("token %d: %v(%q) -> %v(%q)", i, orig[i].Kind, orig[i].Text, back[i].Kind, back[i].Text)
		}
	}
}

func TestPassthrough(t *testing.T) {
	table := subst.Default()
	toks := lex(t, `main(argc, "return", 'c', 3.5, x->y) @`)
	for _, dir := range []rewrite.Direction{rewrite.Forward, rewrite.Backward} {
		got := rewrite.Apply(toks, table, dir)
		if rewrite.Changed(toks, got) != 0 {
			t.Errorf("%v changed non-table tokens: %v", dir, token.Texts(got))
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	toks := lex(t, "return;")
	_ = rewrite.ForwardAll(toks, subst.Default())
	if toks[0].Text != "return" {
		t.Fatalf("input mutated: %q", toks[0].Text)
	}
}

func TestAmbiguousBackward(t *testing.T) {
	table := subst.Default()
	tests := []struct {
		in   string
		want string
		kind token.Kind
	}{
		{"sigma", "switch", token.Keyword}, // switch и auto: первый ключ
		{"swag", "j", token.Identifier},    // своя карта раньше карты ключевых слов
		{"drip", "k", token.Identifier},
		{"omega", "int", token.Keyword},
		{"rizz", "i", token.Identifier},
	}
	for _, tt := range tests {
		got := rewrite.BackwardAll(lex(t, tt.in), table)[0]
		if got.Text != tt.want || got.Kind != tt.kind {
			t.Errorf("%q -> %v(%q), want %v(%q)", tt.in, got.Kind, got.Text, tt.kind, tt.want)
		}
	}
}

func uniqueValues(entries []subst.Entry) []subst.Entry {
	seen := make(map[string]int, len(entries))
	for _, e := range entries {
		seen[e.To]++
	}
	out := entries[:0:0]
	for _, e := range entries {
		if seen[e.To] == 1 {
			out = append(out, e)
		}
	}
	return out
}

func TestRoundTripEveryUniqueKey(t *testing.T) {
	table := subst.Default()
	check := func(kind token.Kind, entries []subst.Entry) {
		for _, e := range uniqueValues(entries) {
			in := []token.Token{{Kind: kind, Text: e.From}}
			back := rewrite.BackwardAll(rewrite.ForwardAll(in, table), table)
			if back[0].Text != e.From || back[0].Kind != kind {
				t.Errorf("%v %q -> %v(%q)", kind, e.From, back[0].Kind, back[0].Text)
			}
		}
	}
	check(token.Keyword, table.Keywords())
	check(token.Identifier, table.Identifiers())
}

func TestIdentifierAlternateIsNotAKeyword(t *testing.T) {
	tbl, err := subst.New(
		[]subst.Entry{{From: "int", To: "omega"}},
		[]subst.Entry{{From: "printf", To: "yap"}},
		subst.Options{Strict: true},
	)
	if err != nil {
		t.Fatal(err)
	}
	// ключевое слово с тем же текстом, что у идентификатора-альтернативы, не трогаем
	toks := []token.Token{{Kind: token.Keyword, Text: "yap"}}
	if got := rewrite.BackwardAll(toks, tbl); got[0].Text != "yap" {
		t.Errorf("keyword token rewritten through identifier map: %q", got[0].Text)
	}
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]rewrite.Direction{
		"transform": rewrite.Forward,
		"forward":   rewrite.Forward,
		"Reverse":   rewrite.Backward,
		"backward":  rewrite.Backward,
	} {
		got, err := rewrite.ParseDirection(in)
		if err != nil || got != want {
			t.Errorf("ParseDirection(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := rewrite.ParseDirection("sideways"); err == nil {
		t.Error("expected an error")
	}
	if rewrite.Forward.Reverse() != rewrite.Backward {
		t.Error("Reverse")
	}
}
