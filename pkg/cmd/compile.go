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

	"github.com/consensys/go-regc/pkg/regc/compiler"
	"github.com/consensys/go-regc/pkg/regc/compiler/codegen"
	"github.com/consensys/go-regc/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] file.rgc",
	Short: "compile a source file into assembly.",
	Long: `Compile a given source file into assembly for the register machine.  The
assembly is written to standard output, unless an output file is given.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config, err := ResolveConfig(cmd)
		//
		if err != nil {
			printError(err)
			os.Exit(2)
		}
		//
		srcfile := readSourceFile(args[0])
		// Compile source file, or print errors
		lines, errs, err := compiler.Compile(srcfile, config.Options()...)
		//
		if len(errs) != 0 {
			for _, e := range errs {
				printSyntaxError(&e)
			}
			//
			os.Exit(4)
		} else if err != nil {
			printError(err)
			os.Exit(5)
		}
		//
		writeAssembly(lines, config.Output.File)
	},
}

func writeAssembly(lines []string, filename string) {
	var text = strings.Join(lines, "\n") + "\n"
	//
	if filename == "" {
		fmt.Print(text)
		return
	}
	//
	log.Debugf("writing %d line(s) to %s", len(lines), filename)
	//
	if err := os.WriteFile(filename, []byte(text), 0644); err != nil {
		printError(err)
		os.Exit(3)
	}
}

// Read a given source file, or exit if this is not possible.
func readSourceFile(filename string) *source.File {
	log.Debug(fmt.Sprintf("reading source file %s", filename))
	//
	srcfile, err := source.ReadFile(filename)
	// Sanity check for errors
	if err != nil {
		printError(err)
		os.Exit(3)
	}
	//
	return srcfile
}

// Add flags which control compilation to a given command.
func addCompileFlags(cmd *cobra.Command) {
	cmd.Flags().UintP("registers", "r", codegen.DEFAULT_REGISTERS, "number of registers available")
	cmd.Flags().Bool("reclaim", false, "free the source register of an assignment")
	cmd.Flags().StringP("output", "o", "", "write assembly to a given file")
}

func init() {
	rootCmd.AddCommand(compileCmd)
	addCompileFlags(compileCmd)
}
