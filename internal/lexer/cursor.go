package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"brainrot/internal/source"
)

// Cursor walks the bytes of one file. Off never passes len(src).
type Cursor struct {
	src  []byte
	file source.FileID
	Off  uint32
}

func NewCursor(f *source.File) Cursor {
	if _, err := safecast.Conv[uint32](len(f.Content)); err != nil {
		panic(fmt.Errorf("file %s too large for a cursor: %w", f.Path, err))
	}
	return Cursor{src: f.Content, file: f.ID}
}

func (c *Cursor) EOF() bool { return int(c.Off) >= len(c.src) }

// PeekAt returns the byte n positions ahead, 0 past the end.
func (c *Cursor) PeekAt(n uint32) byte {
	if i := int(c.Off) + int(n); i < len(c.src) {
		return c.src[i]
	}
	return 0
}

func (c *Cursor) Peek() byte { return c.PeekAt(0) }

// Bump consumes one byte; 0 at EOF.
func (c *Cursor) Bump() byte {
	b := c.Peek()
	if !c.EOF() {
		c.Off++
	}
	return b
}

// Eat consumes b if it is next.
func (c *Cursor) Eat(b byte) bool {
	if c.EOF() || c.src[c.Off] != b {
		return false
	}
	c.Off++
	return true
}

// EatString consumes s if the input continues with it.
func (c *Cursor) EatString(s string) bool {
	end := int(c.Off) + len(s)
	if end > len(c.src) || string(c.src[c.Off:end]) != s {
		return false
	}
	c.Off = uint32(end) // #nosec G115 -- end <= len(src), checked in NewCursor
	return true
}

// PeekRune decodes the rune under the cursor; size 0 means EOF.
// Invalid UTF-8 decodes as RuneError of size 1.
func (c *Cursor) PeekRune() (rune, int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	if b := c.src[c.Off]; b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(c.src[c.Off:])
}

// PrevRune decodes the rune just behind the cursor.
func (c *Cursor) PrevRune() (rune, int) {
	if c.Off == 0 {
		return utf8.RuneError, 0
	}
	return utf8.DecodeLastRune(c.src[:c.Off])
}

func (c *Cursor) BumpRune() {
	_, n := c.PeekRune()
	c.Off += uint32(n) // #nosec G115 -- n <= utf8.UTFMax
}

// Mark remembers an offset for SpanFrom and Reset.
type Mark uint32

func (c *Cursor) Mark() Mark { return Mark(c.Off) }

func (c *Cursor) Reset(m Mark) { c.Off = uint32(m) }

// SpanFrom covers the bytes consumed since m.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.file, Start: uint32(m), End: c.Off}
}

// Behind returns the bytes already consumed.
func (c *Cursor) Behind() []byte { return c.src[:c.Off] }
