// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"io"
	"os"

	"github.com/jongio/exec-core/logutil"
)

// ReadPrefix reads up to limit bytes from the start of the file at path.
// It returns fewer bytes when the file is shorter than limit. The file
// handle is released on every exit path; close errors are debug-logged,
// never surfaced, because the bytes already read remain valid.
func ReadPrefix(path string, limit int) ([]byte, error) {
	file, err := os.Open(path) // #nosec G304 - path is validated by caller
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logutil.Debug("failed to close file after prefix read", "path", path, "error", closeErr)
		}
	}()

	buf := make([]byte, limit)
	n, err := io.ReadFull(file, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return buf[:n], nil
}

// IsExecutableFile reports whether path refers to a regular file marked
// executable for the current process. It returns false for directories,
// missing paths, and paths that cannot be inspected; callers treat all of
// those identically as "not a usable executable".
func IsExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return isExecutableMode(info)
}
