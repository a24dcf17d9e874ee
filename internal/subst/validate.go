package subst

import (
	"fmt"

	"brainrot/internal/diag"
	"brainrot/internal/token"
)

// Problem describes one reason a table is not losslessly reversible.
type Problem struct {
	Code    diag.Code
	Message string
}

func (p Problem) String() string {
	return p.Code.ID() + " " + p.Message
}

// Validate checks entries for collisions that break the backward direction.
// Problems come out in declaration order.
func Validate(keywords, identifiers []Entry) []Problem {
	var out []Problem
	add := func(code diag.Code, format string, args ...any) {
		out = append(out, Problem{Code: code, Message: fmt.Sprintf(format, args...)})
	}

	type owner struct {
		from  string
		group string
	}
	alternates := make(map[string]owner)

	check := func(group string, entries []Entry, sourceOK func(string) bool) {
		sources := make(map[string]struct{}, len(entries))
		for _, e := range entries {
			if !sourceOK(e.From) {
				add(diag.TblBadSource, "%s source %q is not a valid %s spelling", group, e.From, group)
			}
			if _, dup := sources[e.From]; dup {
				add(diag.TblDuplicateSource, "%s %q is mapped more than once; the first entry wins", group, e.From)
			}
			sources[e.From] = struct{}{}

			switch {
			case !token.IsIdentifierSpelling(e.To):
				add(diag.TblAlternateNotIdentifier, "alternate %q for %q does not lex as a single identifier", e.To, e.From)
			case token.IsKeyword(e.To):
				add(diag.TblAlternateIsKeyword, "alternate %q for %q is a C keyword", e.To, e.From)
			}

			if prev, ok := alternates[e.To]; ok && prev.from != e.From {
				if prev.group == group {
					add(diag.TblDuplicateAlternate, "alternate %q is reused by %s %q and %q; %q wins on reverse",
						e.To, group, prev.from, e.From, prev.from)
				} else {
					add(diag.TblSharedAlternate, "alternate %q is shared by %s %q and %s %q; re-lexed text restores the identifier",
						e.To, prev.group, prev.from, group, e.From)
				}
				continue
			}
			if _, ok := alternates[e.To]; !ok {
				alternates[e.To] = owner{from: e.From, group: group}
			}
		}
	}

	check("keyword", keywords, token.IsKeyword)
	check("identifier", identifiers, func(s string) bool {
		return token.IsIdentifierSpelling(s) && !token.IsKeyword(s)
	})
	return out
}
