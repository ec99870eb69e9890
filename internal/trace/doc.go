// Package trace records what the compiler pipeline is doing.
//
// A Tracer travels through the pipeline inside context.Context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
//
// The driver opens one ScopeDriver span per compilation, one ScopeFile span
// per source file and one ScopePass span per phase (load, parse, analyze).
// Enable it from the command line:
//
//	talpa check --trace=- --trace-level=detail main.tp
//
// Stream tracers write every event as it happens (text or ndjson); ring
// tracers keep the last N events in memory so the CLI can dump them after a
// crash.
package trace
