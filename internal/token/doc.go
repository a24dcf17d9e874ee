// Package token defines the lexical classes produced by the classifier.
// Invariants:
//   - Token.Text is the exact matched substring (quotes and angle brackets included).
//   - Token.Span matches Text exactly (Start..End).
//   - Kind is decided only by which classification pattern matched first at
//     Span.Start; the set of kinds is closed.
//   - Whitespace and Comment are trivia: they are produced by the classifier and
//     dropped before substitution and rendering.
package token
