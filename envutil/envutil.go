// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package envutil

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Environ is a view of environment variables keyed by name. Consumers treat
// it as immutable: resolution functions only read from it, and helpers that
// derive a modified environment return a copy.
type Environ map[string]string

// FromOS captures the current process environment.
func FromOS() Environ {
	return FromSlice(os.Environ())
}

// FromSlice converts KEY=VALUE entries into an Environ, skipping malformed rows.
func FromSlice(entries []string) Environ {
	env := make(Environ, len(entries))
	for _, entry := range entries {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		env[parts[0]] = parts[1]
	}
	return env
}

// ToSlice converts the view into sorted KEY=VALUE entries, suitable for
// exec.Cmd.Env.
func (e Environ) ToSlice() []string {
	result := make([]string, 0, len(e))
	for k, v := range e {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(result)
	return result
}

// Get returns the value for key, or "" when unset.
func (e Environ) Get(key string) string {
	return e[key]
}

// Lookup returns the value for key and whether it is set. The distinction
// matters to callers that treat presence itself as a signal (PATHEXT).
func (e Environ) Lookup(key string) (string, bool) {
	value, ok := e[key]
	return value, ok
}

// With returns a copy of the view with key set to value. The receiver is
// left unmodified.
func (e Environ) With(key, value string) Environ {
	out := make(Environ, len(e)+1)
	for k, v := range e {
		out[k] = v
	}
	out[key] = value
	return out
}
