package subst

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"brainrot/internal/diag"
	"brainrot/internal/source"
)

// ErrAmbiguous is returned by New in strict mode when the table cannot be
// reversed without loss.
var ErrAmbiguous = errors.New("substitution table is not reversible")

// Entry maps a canonical spelling to its alternate.
type Entry struct {
	From string `toml:"from" yaml:"from" json:"from"`
	To   string `toml:"to" yaml:"to" json:"to"`
}

// Options controls table construction.
type Options struct {
	// Strict turns validation problems into errors.
	Strict bool
	// Reporter receives one diagnostic per validation problem. May be nil.
	Reporter diag.Reporter
	// Origin names the table in diagnostics ("<builtin>", a file path).
	Origin string
}

// Table is an immutable pair of ordered substitution maps.
type Table struct {
	keywords    []Entry
	identifiers []Entry

	kwForward map[string]string
	idForward map[string]string
	kwBack    map[string]string
	idBack    map[string]string

	problems []Problem
	origin   string
	digest   string
}

// New validates the entries and builds the lookup indexes.
func New(keywords, identifiers []Entry, opts Options) (*Table, error) {
	problems := Validate(keywords, identifiers)
	sev := diag.TableSeverity(opts.Strict)
	for _, p := range problems {
		diag.NewReportBuilder(opts.Reporter, sev, p.Code, source.Span{}, p.Message).Emit()
	}
	if opts.Strict && len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrAmbiguous, problems[0].Message)
	}

	t := &Table{
		keywords:    append([]Entry(nil), keywords...),
		identifiers: append([]Entry(nil), identifiers...),
		problems:    problems,
		origin:      opts.Origin,
	}
	t.kwForward = forwardIndex(t.keywords)
	t.idForward = forwardIndex(t.identifiers)
	t.kwBack = backwardIndex(t.keywords)
	t.idBack = backwardIndex(t.identifiers)
	t.digest = digestOf(t.keywords, t.identifiers)
	return t, nil
}

// первое вхождение выигрывает
func forwardIndex(entries []Entry) map[string]string {
	idx := make(map[string]string, len(entries))
	for _, e := range entries {
		if _, ok := idx[e.From]; !ok {
			idx[e.From] = e.To
		}
	}
	return idx
}

func backwardIndex(entries []Entry) map[string]string {
	idx := make(map[string]string, len(entries))
	for _, e := range entries {
		if _, ok := idx[e.To]; !ok {
			idx[e.To] = e.From
		}
	}
	return idx
}

func digestOf(keywords, identifiers []Entry) string {
	h := sha256.New()
	write := func(tag string, entries []Entry) {
		for _, e := range entries {
			fmt.Fprintf(h, "%s\x00%s\x00%s\n", tag, e.From, e.To)
		}
	}
	write("k", keywords)
	write("i", identifiers)
	return hex.EncodeToString(h.Sum(nil))
}

// Keyword returns the alternate spelling of a C keyword.
func (t *Table) Keyword(word string) (string, bool) {
	alt, ok := t.kwForward[word]
	return alt, ok
}

// Identifier returns the alternate spelling of an identifier.
func (t *Table) Identifier(name string) (string, bool) {
	alt, ok := t.idForward[name]
	return alt, ok
}

// KeywordOf returns the first keyword whose alternate is alt.
func (t *Table) KeywordOf(alt string) (string, bool) {
	word, ok := t.kwBack[alt]
	return word, ok
}

// IdentifierOf returns the first identifier whose alternate is alt.
func (t *Table) IdentifierOf(alt string) (string, bool) {
	name, ok := t.idBack[alt]
	return name, ok
}

// Keywords returns a copy of the keyword entries in declaration order.
func (t *Table) Keywords() []Entry { return append([]Entry(nil), t.keywords...) }

// Identifiers returns a copy of the identifier entries in declaration order.
func (t *Table) Identifiers() []Entry { return append([]Entry(nil), t.identifiers...) }

// Len returns the total number of entries.
func (t *Table) Len() int { return len(t.keywords) + len(t.identifiers) }

// Problems returns the validation problems found at construction.
func (t *Table) Problems() []Problem { return append([]Problem(nil), t.problems...) }

// Reversible reports whether every alternate maps back to exactly one source.
func (t *Table) Reversible() bool { return len(t.problems) == 0 }

// Origin names where the table came from.
func (t *Table) Origin() string { return t.origin }

// Digest is a stable hash of the entries, used as a cache key component.
func (t *Table) Digest() string { return t.digest }
