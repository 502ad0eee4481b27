// Package trace records what the layec driver is doing while it lexes.
//
// Spans mark the driver run, each lexing pass and each file; the lexer
// itself never traces. Events go to a StreamTracer (text or NDJSON), a
// RingTracer kept in memory for crash dumps, or both through Tee.
//
//	layec tokenize --trace=- --trace-level=file src/
//
// The tracer and the current span travel in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span, ctx := trace.Start(ctx, trace.ScopePass, "lex")
//	defer span.End("")
//	trace.Mark(ctx, trace.ScopeDetail, "cache-hit", path)
package trace
