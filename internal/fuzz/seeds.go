package fuzztests

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB на семя

var builtinSeeds = []string{
	"",
	"int main(){return 0;}",
	"omega main(){mew 0;}",
	"#include <stdio.h>\nint main(){printf(\"hi\\n\");return 0;}",
	"#define MAX(a,b) \\\n  ((a)>(b)?(a):(b))\n",
	"typedef struct { int x; } P; P p;",
	"/* block */ // line\nx<<=1; y>>=2; z~=3;",
	"char c='\\''; char *s=\"a\\\"b\";",
	"int x @ 5;",
	"x-1; 1int; .5; -3.25;",
	"\"unterminated\n'",
	"café = naïve;",
	"\xff\xfe\x00",
}

// addCorpusSeeds feeds the builtin seeds plus the printer goldens,
// each capped at maxSeedBytes.
func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	goldens, _ := filepath.Glob(filepath.Join("..", "format", "testdata", "*.c"))
	for _, path := range goldens {
		// #nosec G304 -- repository testdata
		src, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f.Add(bytes.Clone(src[:min(len(src), maxSeedBytes)]))
	}
}
