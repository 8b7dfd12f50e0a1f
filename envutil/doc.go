// Package envutil provides an immutable environment view for injection into
// resolution calls.
//
// The resolver packages never read the process environment directly; they
// take an Environ value so tests can supply a deterministic PATH/PATHEXT
// and concurrent callers never race on process-global state. FromOS adapts
// the real process environment at the outermost call site.
package envutil
