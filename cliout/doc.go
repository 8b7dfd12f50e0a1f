// Package cliout provides output formatting for the commands this module
// exports to host CLIs. It supports human-readable text with ANSI styling
// and a JSON mode for scripting, switchable at runtime.
package cliout
