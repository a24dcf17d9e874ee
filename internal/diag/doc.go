// Package diag defines the diagnostic model shared by all pipeline stages.
//
// # Purpose
//
//   - Provide deterministic data structures that capture findings produced by
//     the classifier, the substitution-table validator and the driver.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting.
//
// # Scope
//
// Package diag does not perform terminal formatting or IO. Rendering lives in
// internal/diagfmt.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning, Error.
//   - Code – compact numeric identifier (see codes.go) with a stable string ID.
//   - Message – short, actionable text.
//   - Primary – source.Span pointing at the issue (zero span for file-less
//     findings such as table problems).
//   - Notes – optional secondary spans/messages.
//
// Stages should emit through a Reporter. BagReporter collects into a Bag,
// which supports sorting and an optional limit.
package diag
