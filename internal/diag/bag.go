package diag

import (
	"cmp"
	"slices"
)

// Bag collects the diagnostics of one file or one table load. A positive
// limit caps how many are kept; the rest are only counted.
type Bag struct {
	items   []Diagnostic
	limit   int
	dropped int
}

// NewBag creates a bag keeping at most limit diagnostics; limit <= 0 keeps
// all of them.
func NewBag(limit int) *Bag {
	return &Bag{limit: max(limit, 0)}
}

// Add reports false when the limit rejected d.
func (b *Bag) Add(d Diagnostic) bool {
	if b.limit > 0 && len(b.items) >= b.limit {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Len() int { return len(b.items) }

// Dropped is the number of diagnostics rejected by the limit.
func (b *Bag) Dropped() int { return b.dropped }

// Items returns the kept diagnostics. Callers must not modify the slice.
func (b *Bag) Items() []Diagnostic { return b.items }

func (b *Bag) HasErrors() bool { return b.worst() >= SevError }

func (b *Bag) HasWarnings() bool { return b.worst() >= SevWarning }

func (b *Bag) worst() Severity {
	var w Severity
	for i := range b.items {
		w = max(w, b.items[i].Severity)
	}
	return w
}

// Count returns how many kept diagnostics carry code.
func (b *Bag) Count(code Code) int {
	n := 0
	for i := range b.items {
		if b.items[i].Code == code {
			n++
		}
	}
	return n
}

// Sort orders by position in the file, then errors before warnings, then
// code.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Start, y.Primary.Start),
			cmp.Compare(x.Primary.End, y.Primary.End),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}
