// Package shebang parses interpreter lines from the first bytes of script
// files.
//
// A shebang is the "#!" marker at the start of a file followed by an
// interpreter invocation, e.g. "#!/usr/bin/env python". Parse extracts the
// invocation as a token vector:
//
//	shebang.Parse([]byte("#!/usr/bin/python"))     // ["/usr/bin/python"]
//	shebang.Parse([]byte("#!/usr/bin/env python")) // ["python"]
//	shebang.Parse([]byte("echo hi"))               // nil
//
// Every failure mode - missing marker, undecodable bytes, unreadable or
// non-executable file - yields a nil vector rather than an error. Callers
// treat "this file has no usable shebang" as a normal branch, so the
// distinction is deliberately not surfaced.
package shebang
