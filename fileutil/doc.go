// Package fileutil provides the low-level file primitives shared by the
// shebang parser and the executable resolver.
//
// It covers exactly two concerns:
//
//   - Reading a bounded prefix of a file (ReadPrefix), so shebang detection
//     stays safe on arbitrary binary files.
//   - Deciding whether a path is a runnable executable (IsExecutableFile),
//     which is the platform-specific part of PATH searching.
//
// # Cross-Platform Behavior
//
// On Unix, "marked executable" means a regular file with any execute
// permission bit set. On Windows there is no execute bit; any regular file
// is presumed runnable and executable selection is instead driven by the
// PATHEXT extension list (handled by the execfind package).
package fileutil
