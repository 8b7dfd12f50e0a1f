// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cliout

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m"
)

var (
	formatMu      sync.RWMutex
	currentFormat = FormatDefault
)

// SetFormat sets the global output format.
// This function is safe for concurrent use.
func SetFormat(f Format) {
	formatMu.Lock()
	defer formatMu.Unlock()
	currentFormat = f
}

// CurrentFormat returns the active output format.
func CurrentFormat() Format {
	formatMu.RLock()
	defer formatMu.RUnlock()
	return currentFormat
}

// IsJSON reports whether JSON output is active.
func IsJSON() bool {
	return CurrentFormat() == FormatJSON
}

// colorEnabled reports whether ANSI styling should be emitted.
// NO_COLOR is honored per https://no-color.org.
func colorEnabled() bool {
	return os.Getenv("NO_COLOR") == ""
}

func colorize(color, s string) string {
	if !colorEnabled() {
		return s
	}
	return color + s + Reset
}

// Header prints a bold section header.
func Header(text string) {
	fmt.Println(colorize(Bold, text))
}

// Label prints an aligned "key: value" line.
func Label(key, value string) {
	fmt.Printf("  %s %s\n", colorize(Cyan, key+":"), value)
}

// Success prints a success line with a check mark.
func Success(format string, args ...any) {
	fmt.Printf("%s %s\n", colorize(Green, "✓"), fmt.Sprintf(format, args...))
}

// Errorf prints an error line with a cross mark to stderr.
func Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", colorize(Red, "✗"), fmt.Sprintf(format, args...))
}

// Item prints a bulleted list item.
func Item(format string, args ...any) {
	fmt.Printf("  %s %s\n", colorize(Gray, "•"), fmt.Sprintf(format, args...))
}

// PrintJSON marshals v with indentation and prints it, regardless of the
// active format. Commands call it when JSON output was requested.
func PrintJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
