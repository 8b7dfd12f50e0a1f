// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package shebang

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/jongio/exec-core/fileutil"
)

const (
	// marker is the two-byte sequence that opens a shebang line.
	marker = "#!"

	// readLimit caps how much of a file is inspected. Only the first line
	// matters; the cap keeps ParseFile safe on arbitrary binary files.
	readLimit = 512

	// envInterpreter is the indirection prefix in "#!/usr/bin/env python"
	// style shebangs. It is dropped from the parsed vector so the remaining
	// head token can be resolved through PATH like any bare name.
	envInterpreter = "/usr/bin/env"
)

// Parse extracts the interpreter invocation from a file prefix.
//
// It returns nil when prefix does not open with "#!", when the first line
// is not printable text, or when nothing follows the marker. Otherwise the
// first line is split on runs of whitespace and returned as a token vector.
// A leading /usr/bin/env token is dropped (see envInterpreter).
func Parse(prefix []byte) []string {
	if !bytes.HasPrefix(prefix, []byte(marker)) {
		return nil
	}

	line := prefix[len(marker):]
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if !isPrintableText(line) {
		return nil
	}

	tokens := strings.Fields(string(line))
	if len(tokens) > 0 && tokens[0] == envInterpreter {
		tokens = tokens[1:]
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// ParseFile reads the shebang from the file at path.
//
// Nonexistent, unreadable, and non-executable files all yield nil, the same
// outcome as a file without a shebang. The not-executable and not-found
// cases are merged on purpose; no caller needs them apart.
func ParseFile(path string) []string {
	if !fileutil.IsExecutableFile(path) {
		return nil
	}
	prefix, err := fileutil.ReadPrefix(path, readLimit)
	if err != nil {
		return nil
	}
	return Parse(prefix)
}

// isPrintableText reports whether line decodes as printable text: valid
// UTF-8 consisting of printable ASCII plus tab, CR, VT and FF. Control and
// non-ASCII bytes mark the file as binary, so no shebang is reported even
// when the marker happened to match.
func isPrintableText(line []byte) bool {
	if !utf8.Valid(line) {
		return false
	}
	for _, r := range string(line) {
		switch r {
		case '\t', '\r', '\v', '\f':
			continue
		}
		if r < ' ' || r > '~' {
			return false
		}
	}
	return true
}
