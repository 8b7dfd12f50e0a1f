// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jongio/exec-core/envutil"
)

func TestWriteScript(t *testing.T) {
	path := WriteScript(t, t.TempDir(), "run", "/usr/bin/env sh")

	if !filepath.IsAbs(path) {
		t.Errorf("WriteScript path = %q, want absolute", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(content), "#!/usr/bin/env sh") {
		t.Errorf("script content = %q, want shebang prefix", content)
	}
}

func TestPrependPath(t *testing.T) {
	env := envutil.Environ{"PATH": "/usr/bin"}

	got := PrependPath(env, "/opt/bin")
	want := "/opt/bin" + string(os.PathListSeparator) + "/usr/bin"
	if got.Get("PATH") != want {
		t.Errorf("PrependPath PATH = %q, want %q", got.Get("PATH"), want)
	}
	if env.Get("PATH") != "/usr/bin" {
		t.Error("PrependPath mutated the input view")
	}
}

func TestPrependPathEmpty(t *testing.T) {
	got := PrependPath(envutil.Environ{}, "/opt/bin")
	if got.Get("PATH") != "/opt/bin" {
		t.Errorf("PrependPath on empty PATH = %q, want /opt/bin", got.Get("PATH"))
	}
}

func TestCaptureOutput(t *testing.T) {
	out := CaptureOutput(t, func() error {
		fmt.Println("test output")
		return nil
	})
	if !strings.Contains(out, "test output") {
		t.Errorf("CaptureOutput = %q, want to contain printed text", out)
	}
}
