// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package version

import (
	"strings"
	"testing"

	"github.com/jongio/exec-core/testutil"
)

func TestNewDefaults(t *testing.T) {
	info := New("hookd")

	if info.Version != "0.0.0-dev" {
		t.Errorf("Version = %q, want 0.0.0-dev", info.Version)
	}
	if info.Name != "hookd" {
		t.Errorf("Name = %q, want hookd", info.Name)
	}
}

func TestString(t *testing.T) {
	info := &Info{Version: "1.2.3", BuildDate: "2026-08-27", GitCommit: "abc1234", Name: "hookd"}

	got := info.String()
	want := "hookd version 1.2.3 (commit: abc1234, built: 2026-08-27)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCommandQuiet(t *testing.T) {
	info := &Info{Version: "1.2.3", Name: "hookd"}
	cmd := NewCommand(info, nil)
	cmd.SetArgs([]string{"--quiet"})

	out := testutil.CaptureOutput(t, func() error {
		return cmd.Execute()
	})
	if strings.TrimSpace(out) != "1.2.3" {
		t.Errorf("quiet output = %q, want bare version", out)
	}
}

func TestCommandJSON(t *testing.T) {
	info := &Info{Version: "1.2.3", Name: "hookd"}
	format := "json"
	cmd := NewCommand(info, &format)
	cmd.SetArgs([]string{})

	out := testutil.CaptureOutput(t, func() error {
		return cmd.Execute()
	})
	if !strings.Contains(out, `"version": "1.2.3"`) {
		t.Errorf("json output = %q, want version field", out)
	}
}
