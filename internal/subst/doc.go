// Package subst holds the substitution table: two ordered lists of
// canonical-to-alternate spellings, one for C keywords and one for
// identifiers.
//
// A Table is immutable after construction. Forward lookups take the first
// entry for a source spelling; backward lookups take the first entry, in
// declaration order, whose alternate matches. Tables whose alternates
// collide are accepted with warnings unless Options.Strict is set.
package subst
