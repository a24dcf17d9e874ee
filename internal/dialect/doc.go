// Package dialect guesses which spelling a C-like file is written in:
// canonical C or the alternate spellings of a substitution table.
//
// Evidence collection only reads tokens; it never changes them. The result
// picks the direction for `translate --auto`.
package dialect
