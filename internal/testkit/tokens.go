// Package testkit holds invariant checks shared by tests and fuzz targets.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"brainrot/internal/source"
	"brainrot/internal/token"
)

// CheckTokenInvariants runs the classifier invariants on a token stream:
// 1) every token is non-empty, belongs to sf and has a known kind
// 2) tokens are contiguous: each starts where the previous one ended
// 3) the stream covers sf.Content exactly and Text matches the spanned bytes
func CheckTokenInvariants(toks []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var off uint32
	for i, tok := range toks {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d: span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if tok.Kind == token.Invalid || tok.Kind.String() == "UNKNOWN" {
			return fmt.Errorf("token %d: bad kind %d", i, tok.Kind)
		}
		if sp.End <= sp.Start {
			return fmt.Errorf("token %d: empty span %v", i, sp)
		}
		if sp.Start != off {
			return fmt.Errorf("token %d: starts at %d, previous ended at %d", i, sp.Start, off)
		}
		if sp.End > lenContent {
			return fmt.Errorf("token %d: span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if got := string(sf.Content[sp.Start:sp.End]); got != tok.Text {
			return fmt.Errorf("token %d: text %q does not match source %q", i, tok.Text, got)
		}
		off = sp.End
	}
	if off != lenContent {
		return fmt.Errorf("tokens cover %d of %d bytes", off, lenContent)
	}
	return nil
}
