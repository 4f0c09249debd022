// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-regc/pkg/util/source"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	errorStyle     = pterm.NewStyle(pterm.FgRed, pterm.Bold)
	highlightColor = pterm.FgLightRed
)

// GetFlag gets an expected flag, or exit if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exit if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer, or exit if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Determine whether output should be coloured.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func printError(err error) {
	fmt.Println(formatError(err, isTerminal()))
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	fmt.Print(formatSyntaxError(err, isTerminal()))
}

func formatError(err error, colour bool) string {
	if colour {
		return errorStyle.Sprint("error:") + " " + err.Error()
	}
	//
	return "error: " + err.Error()
}

func formatSyntaxError(err *source.SyntaxError, colour bool) string {
	var (
		builder    strings.Builder
		span       = err.Span()
		line       = err.FirstEnclosingLine()
		lineOffset = span.Start() - line.Start()
		// Calculate length (ensures don't overflow line)
		length = max(1, min(line.Length()-lineOffset, span.Length()))
		header = fmt.Sprintf("%s:%d:%d-%d %s", err.SourceFile().Filename(),
			line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
		highlight = strings.Repeat("^", length)
	)
	//
	if colour {
		header = errorStyle.Sprint(header)
		highlight = highlightColor.Sprint(highlight)
	}
	// Print error + line number
	builder.WriteString(header)
	builder.WriteString("\n\n")
	// Print line
	builder.WriteString(line.String())
	builder.WriteString("\n")
	// Print indent (todo: account for tabs)
	builder.WriteString(strings.Repeat(" ", lineOffset))
	// Print highlight
	builder.WriteString(highlight)
	builder.WriteString("\n")
	//
	return builder.String()
}
