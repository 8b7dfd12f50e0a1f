//go:build windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import "os"

// isExecutableMode performs the Windows executability check. Windows has no
// execute permission bit, so every regular file is presumed runnable;
// extension-based filtering happens during PATH candidate generation.
func isExecutableMode(info os.FileInfo) bool {
	return info.Mode().IsRegular()
}
