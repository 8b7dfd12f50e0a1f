// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package resolve provides a reusable cobra command that resolves a command
// vector to its normalized executable invocation, for embedding in host CLIs.
package resolve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/jongio/exec-core/cliout"
	"github.com/jongio/exec-core/envutil"
	"github.com/jongio/exec-core/execfind"
)

// result is the JSON shape emitted when JSON output is requested.
type result struct {
	Command    []string `json:"command"`
	Normalized []string `json:"normalized"`
	Executable string   `json:"executable"`
}

// NewCommand creates a resolve command.
//
// The command to resolve is given either as positional arguments or as a
// single shell-quoted string via --command. The process environment
// supplies PATH and PATHEXT.
func NewCommand(outputFormat *string) *cobra.Command {
	var commandString string

	cmd := &cobra.Command{
		Use:   "resolve [-- command [args...]]",
		Short: "Resolve a command to its normalized executable invocation",
		Long: "Resolve a command name to an absolute executable path using PATH search,\n" +
			"splicing in the interpreter from the target's shebang when it is a script.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			words := args
			if commandString != "" {
				if len(args) > 0 {
					return errors.New("pass either --command or positional arguments, not both")
				}
				split, err := shlex.Split(commandString)
				if err != nil {
					return fmt.Errorf("parsing command string: %w", err)
				}
				words = split
			}
			if len(words) == 0 {
				return errors.New("no command given")
			}

			normalized, err := execfind.NormalizeCommand(words, envutil.FromOS())
			if err != nil {
				// Reporting is the host CLI's job; returning the error twice
				// over stderr is not.
				return err
			}

			format := ""
			if outputFormat != nil {
				format = *outputFormat
			}
			if format == "json" {
				return cliout.PrintJSON(result{
					Command:    words,
					Normalized: normalized,
					Executable: normalized[0],
				})
			}

			fmt.Println(strings.Join(normalized, " "))
			return nil
		},
	}

	cmd.Flags().StringVarP(&commandString, "command", "c", "", "Shell-quoted command string to resolve")
	// Flag parsing must stop at the target command name so its own flags
	// ("resolve tool --version") pass through as arguments.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
