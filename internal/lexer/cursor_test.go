package lexer

import (
	"testing"

	"brainrot/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.c", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))
	for _, want := range []byte("a\nb") {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Bump(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
	if !cursor.EOF() {
		t.Error("expected EOF")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Error("reading past EOF should yield 0")
	}
}

func TestMarkReset(t *testing.T) {
	cursor := NewCursor(createFile("abcdef"))
	cursor.Bump()
	m := cursor.Mark()
	cursor.Bump()
	cursor.Bump()
	sp := cursor.SpanFrom(m)
	if sp.Start != 1 || sp.End != 3 {
		t.Errorf("span = %v", sp)
	}
	cursor.Reset(m)
	if cursor.Peek() != 'b' {
		t.Errorf("reset: peek = %q", cursor.Peek())
	}
	if !cursor.EatString("bcd") || cursor.Peek() != 'e' {
		t.Error("EatString should consume bcd")
	}
	if cursor.EatString("efg") {
		t.Error("EatString must fail past the limit")
	}
}

func TestRunes(t *testing.T) {
	cursor := NewCursor(createFile("é1"))
	r, sz := cursor.PeekRune()
	if r != 'é' || sz != 2 {
		t.Errorf("PeekRune = %q/%d", r, sz)
	}
	cursor.BumpRune()
	if cursor.Off != 2 {
		t.Errorf("off = %d", cursor.Off)
	}
	prev, _ := cursor.PrevRune()
	if prev != 'é' {
		t.Errorf("PrevRune = %q", prev)
	}
	if cursor.PeekAt(0) != '1' || cursor.PeekAt(5) != 0 {
		t.Error("PeekAt")
	}
}
