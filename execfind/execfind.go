// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package execfind

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jongio/exec-core/envutil"
	"github.com/jongio/exec-core/fileutil"
	"github.com/jongio/exec-core/logutil"
	"github.com/jongio/exec-core/shebang"
)

// Environment variable names consulted during PATH search.
const (
	// EnvPath is the ordered list of directories searched for executables.
	EnvPath = "PATH"

	// EnvPathExt lists filename extensions appended to a bare name during
	// search. Its presence in the environment view, not the platform,
	// switches the extension logic on; Windows defines it by default.
	EnvPathExt = "PATHEXT"
)

// NotFoundError is returned when a name could not be resolved to an
// executable and the caller required a hard resolution.
type NotFoundError struct {
	// Name is the requested executable name, kept verbatim for diagnostics.
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("executable %s not found", e.Name)
}

// Find locates an executable named name using the given environment view.
// It returns the absolute path of the first match, or "" when no match
// exists. A miss is a normal outcome, never an error.
//
// A name containing a path separator is treated as a path: it is verified
// to exist and be executable and returned in absolute form. Bare names are
// searched through env's PATH, directory by directory, with PATHEXT-derived
// candidates when that variable is present.
func Find(name string, env envutil.Environ) string {
	if containsPathSeparator(name) {
		if !fileutil.IsExecutableFile(name) {
			return ""
		}
		return absolute(name)
	}

	candidates := candidateNames(name, env)
	for _, dir := range filepath.SplitList(env.Get(EnvPath)) {
		if dir == "" {
			// Shell semantics: an empty PATH entry means the current directory.
			dir = "."
		}
		for _, candidate := range candidates {
			probe := filepath.Join(dir, candidate)
			if fileutil.IsExecutableFile(probe) {
				resolved := absolute(probe)
				logutil.Debug("resolved executable", "name", name, "path", resolved)
				return resolved
			}
		}
	}

	logutil.Debug("executable not found in path", "name", name)
	return ""
}

// FindPath is Find against the current process environment.
func FindPath(name string) string {
	return Find(name, envutil.FromOS())
}

// Normalize resolves name like Find but fails with *NotFoundError when no
// match exists, for callers that require a hard resolution.
func Normalize(name string, env envutil.Environ) (string, error) {
	if path := Find(name, env); path != "" {
		return path, nil
	}
	return "", &NotFoundError{Name: name}
}

// NormalizeCommand resolves cmd's head to an absolute executable path and
// splices in the interpreter from its shebang, if any.
//
// For a script whose shebang names an interpreter, the result is the
// resolved interpreter path, any further shebang arguments, the resolved
// script path, then the command's remaining arguments. For a plain
// executable the head is simply replaced by its resolved path. Shebangs are
// followed one level only.
func NormalizeCommand(cmd []string, env envutil.Environ) ([]string, error) {
	if len(cmd) == 0 {
		return nil, errors.New("empty command")
	}

	exe, err := Normalize(cmd[0], env)
	if err != nil {
		return nil, err
	}

	interpreter := shebang.ParseFile(exe)
	if len(interpreter) == 0 {
		return append([]string{exe}, cmd[1:]...), nil
	}

	head, err := Normalize(interpreter[0], env)
	if err != nil {
		return nil, err
	}

	normalized := make([]string, 0, len(interpreter)+len(cmd)+1)
	normalized = append(normalized, head)
	normalized = append(normalized, interpreter[1:]...)
	normalized = append(normalized, exe)
	normalized = append(normalized, cmd[1:]...)

	logutil.Debug("spliced shebang interpreter", "script", exe, "interpreter", head)
	return normalized, nil
}

// candidateNames generates the file names probed in each PATH directory.
// With PATHEXT present, extensions are tried in list order ahead of the
// bare name; extension matching is normalized to lower case.
func candidateNames(name string, env envutil.Environ) []string {
	pathext, ok := env.Lookup(EnvPathExt)
	if !ok {
		return []string{name}
	}

	exts := filepath.SplitList(pathext)
	candidates := make([]string, 0, len(exts)+1)
	for _, ext := range exts {
		if ext == "" {
			continue
		}
		candidates = append(candidates, name+strings.ToLower(ext))
	}
	return append(candidates, name)
}

// containsPathSeparator reports whether name should bypass PATH search.
// os.IsPathSeparator accepts both slash forms on Windows.
func containsPathSeparator(name string) bool {
	for i := 0; i < len(name); i++ {
		if os.IsPathSeparator(name[i]) {
			return true
		}
	}
	return false
}

// absolute converts path to absolute form. Resolution of the working
// directory can only fail if it was deleted out from under the process; the
// cleaned input is the best remaining answer in that case.
func absolute(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
