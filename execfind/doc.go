// Package execfind resolves command names to absolute executable paths
// using PATH search semantics, and normalizes command vectors by splicing
// in shebang interpreters.
//
// # Lookup
//
// Find performs a PATH search against an injected environment view:
//
//	env := envutil.FromOS()
//	path := execfind.Find("python", env) // "" when not found
//
// A name containing a path separator bypasses the search and is verified
// directly. On environments that define PATHEXT (Windows), each PATH
// directory is probed with the name plus each listed extension in order,
// then the bare name; otherwise only the bare name is tried. The first hit
// in PATH order wins, so a directory prepended to PATH shadows later ones.
//
// # Normalization
//
// NormalizeCommand rewrites a command vector so its head is a real
// executable the OS can spawn directly, working around platforms that do
// not honor shebangs themselves:
//
//	execfind.NormalizeCommand([]string{"hook.py", "--fix"}, env)
//	// ["/usr/bin/python3", "/repo/hook.py", "--fix"]
//
// Shebangs are followed exactly one level: the interpreter named by a
// script's shebang is assumed to be a real executable, not itself a script.
// An interpreter that does carry its own shebang is not expanded further.
//
// Misses from Find are plain empty strings; Normalize and NormalizeCommand
// instead fail with *NotFoundError carrying the unresolvable name.
package execfind
