// Package trace records what a brainrot run did as a stream of events.
//
// A driver span wraps each command, file spans wrap each input and stage
// spans wrap lex, rewrite and format. Output is text or NDJSON, to stderr
// or a file:
//
//	brainrot translate --transform --trace=run.ndjson --trace-level=detail prog.c
//
// Spans nest through the context:
//
//	ctx = trace.WithTracer(ctx, t)
//	ctx, span := trace.Start(ctx, trace.ScopeFile, "translate")
//	defer span.End("")
package trace
