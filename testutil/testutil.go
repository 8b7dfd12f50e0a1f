// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jongio/exec-core/envutil"
)

// WriteScript creates an executable script named name in dir whose first
// line is "#!" followed by shebangLine, and returns its absolute path.
//
// Example:
//
//	path := testutil.WriteScript(t, t.TempDir(), "run", "/usr/bin/env sh")
func WriteScript(t *testing.T, dir, name, shebangLine string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!"+shebangLine+"\n"), 0o644); err != nil {
		t.Fatalf("Failed to write script %s: %v", name, err)
	}
	MakeExecutable(t, path)

	abs, err := filepath.Abs(path)
	if err != nil {
		t.Fatalf("Failed to resolve script path: %v", err)
	}
	return abs
}

// WriteExecutable creates an executable file with arbitrary (non-script)
// content, standing in for a real binary in PATH-search tests. Returns its
// absolute path.
func WriteExecutable(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("binary stand-in\n"), 0o644); err != nil {
		t.Fatalf("Failed to write executable %s: %v", name, err)
	}
	MakeExecutable(t, path)

	abs, err := filepath.Abs(path)
	if err != nil {
		t.Fatalf("Failed to resolve executable path: %v", err)
	}
	return abs
}

// MakeExecutable marks the file at path executable. On Windows the chmod is
// effectively a no-op; executability there comes from PATHEXT instead.
func MakeExecutable(t *testing.T, path string) {
	t.Helper()

	if err := os.Chmod(path, 0o755); err != nil {
		t.Fatalf("Failed to chmod %s: %v", path, err)
	}
}

// PrependPath returns a copy of env with dir prepended to its PATH,
// mirroring how a host tool puts its own bin directory ahead of the
// system's.
func PrependPath(env envutil.Environ, dir string) envutil.Environ {
	path := env.Get("PATH")
	if path == "" {
		return env.With("PATH", dir)
	}
	return env.With("PATH", dir+string(os.PathListSeparator)+path)
}

// CaptureOutput captures stdout during function execution.
// It redirects os.Stdout to a pipe, executes the function, and returns the
// captured output. The original stdout is always restored, even if the
// function returns an error.
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	os.Stdout = w

	outCh := make(chan string, 1)
	go func() {
		var output strings.Builder
		buf := make([]byte, 1024)
		for {
			n, readErr := r.Read(buf)
			if n > 0 {
				output.Write(buf[:n])
			}
			if readErr != nil {
				break
			}
		}
		outCh <- output.String()
	}()

	fnErr := fn()

	if err := w.Close(); err != nil {
		t.Logf("Failed to close pipe writer: %v", err)
	}
	os.Stdout = origStdout

	output := <-outCh

	if fnErr != nil {
		t.Logf("Command error: %v", fnErr)
	}

	return output
}
