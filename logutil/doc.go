// Package logutil provides structured logging built on log/slog.
//
// The library is silent by default: resolution and parsing paths emit only
// debug-level traces, enabled either programmatically via SetupLogger or by
// setting EXECCORE_DEBUG=true in the environment. Output goes to stderr in
// text format unless structured (JSON) output is requested.
package logutil
