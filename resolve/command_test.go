// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package resolve

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jongio/exec-core/testutil"
)

func TestResolvePositionalArgs(t *testing.T) {
	bindir := t.TempDir()
	exe := testutil.WriteExecutable(t, bindir, "tool")
	t.Setenv("PATH", bindir)

	cmd := NewCommand(nil)
	cmd.SetArgs([]string{"tool", "--version"})

	out := testutil.CaptureOutput(t, func() error {
		return cmd.Execute()
	})
	assert.Contains(t, out, exe+" --version")
}

func TestResolveTargetFlagsPassThrough(t *testing.T) {
	bindir := t.TempDir()
	exe := testutil.WriteExecutable(t, bindir, "tool")
	t.Setenv("PATH", bindir)

	// Flag parsing stops at the command name, so target flags survive even
	// when they collide with the resolve command's own (-c).
	cmd := NewCommand(nil)
	cmd.SetArgs([]string{"tool", "--version", "-c", "cfg"})

	out := testutil.CaptureOutput(t, func() error {
		return cmd.Execute()
	})
	assert.Contains(t, out, exe+" --version -c cfg")
}

func TestResolveCommandString(t *testing.T) {
	bindir := t.TempDir()
	interpreter := testutil.WriteExecutable(t, bindir, "py")
	script := testutil.WriteScript(t, bindir, "hook", "/usr/bin/env py")
	t.Setenv("PATH", bindir)

	cmd := NewCommand(nil)
	cmd.SetArgs([]string{"-c", "hook 'with arg'"})

	out := testutil.CaptureOutput(t, func() error {
		return cmd.Execute()
	})
	assert.Contains(t, out, interpreter)
	assert.Contains(t, out, script)
	assert.Contains(t, out, "with arg")
}

func TestResolveJSONOutput(t *testing.T) {
	bindir := t.TempDir()
	exe := testutil.WriteExecutable(t, bindir, "tool")
	t.Setenv("PATH", bindir)

	format := "json"
	cmd := NewCommand(&format)
	cmd.SetArgs([]string{"tool"})

	out := testutil.CaptureOutput(t, func() error {
		return cmd.Execute()
	})
	assert.Contains(t, out, `"executable"`)
	assert.Contains(t, out, exe)
}

func TestResolveNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	cmd := NewCommand(nil)
	cmd.SetArgs([]string{"i-dont-exist-lol"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	require.Error(t, err)
	assert.EqualError(t, err, "executable i-dont-exist-lol not found")
}

func TestResolveNotFoundReportedOnlyViaReturnedError(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	origStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w

	cmd := NewCommand(nil)
	cmd.SetArgs([]string{"i-dont-exist-lol"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	execErr := cmd.Execute()

	require.NoError(t, w.Close())
	os.Stderr = origStderr
	captured, readErr := io.ReadAll(r)
	require.NoError(t, readErr)

	require.Error(t, execErr)
	assert.Empty(t, string(captured), "the command itself should not write the failure to stderr")
}

func TestResolveRejectsMixedInput(t *testing.T) {
	cmd := NewCommand(nil)
	cmd.SetArgs([]string{"-c", "tool", "extra"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not both")
}

func TestResolveNoCommand(t *testing.T) {
	cmd := NewCommand(nil)
	cmd.SetArgs([]string{})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command given")
}
