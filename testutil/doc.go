// Package testutil provides common helpers for this module's tests:
// creating executable fixture scripts, deriving PATH-modified environment
// views, and capturing stdout from command implementations.
package testutil
