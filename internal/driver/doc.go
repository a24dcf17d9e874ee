// Package driver wires the lexer, the substitution table, the rewriter and
// the printer into per-file and batch translation.
//
// Every translated file gets its own diagnostics bag, timer and printer, so
// batch workers share nothing but the read-only table and FileSet.
package driver
