package fuzztests

import (
	"context"
	"testing"

	"brainrot/internal/diag"
	"brainrot/internal/driver"
	"brainrot/internal/lexer"
	"brainrot/internal/rewrite"
	"brainrot/internal/source"
	"brainrot/internal/subst"
	"brainrot/internal/testkit"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func FuzzLexerCoverage(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.c", input))

		bag := diag.NewBag(64)
		toks := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}}).All()

		if err := testkit.CheckTokenInvariants(toks, file); err != nil {
			t.Fatalf("%v\ninput: %q", err, input)
		}

		// rewrite never changes the number or the spans of tokens
		out := rewrite.ForwardAll(toks, subst.Default())
		if len(out) != len(toks) {
			t.Fatalf("forward changed token count: %d -> %d", len(toks), len(out))
		}
		for i := range out {
			if out[i].Span != toks[i].Span {
				t.Fatalf("forward moved token %d", i)
			}
		}
	})
}

func FuzzTranslate(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		for _, mode := range []driver.Mode{driver.ModeTransform, driver.ModeReverse, driver.ModeAuto, driver.ModeFormat} {
			first, err := driver.TranslateSource(context.Background(), "fuzz.c", input, driver.Options{Mode: mode})
			if err != nil {
				t.Fatalf("%s: %v", mode, err)
			}
			second, err := driver.TranslateSource(context.Background(), "fuzz.c", input, driver.Options{Mode: mode})
			if err != nil {
				t.Fatalf("%s: %v", mode, err)
			}
			if first.Output != second.Output {
				t.Fatalf("%s: output is not deterministic", mode)
			}
		}
	})
}
