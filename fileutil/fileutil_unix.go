//go:build !windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import "os"

// isExecutableMode performs the Unix executability check: a regular file
// with any execute permission bit set.
func isExecutableMode(info os.FileInfo) bool {
	mode := info.Mode()
	return mode.IsRegular() && mode&0o111 != 0
}
