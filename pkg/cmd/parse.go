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

	"github.com/consensys/go-regc/pkg/regc/compiler/ast"
	"github.com/consensys/go-regc/pkg/regc/compiler/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.rgc",
	Short: "parse a source file and print it.",
	Long: `Parse a given source file and print the resulting program, either as
(normalised) source or as a syntax tree.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		srcfile := readSourceFile(args[0])
		//
		program, errs := parser.Parse(srcfile)
		//
		if len(errs) != 0 {
			for _, e := range errs {
				printSyntaxError(&e)
			}
			//
			os.Exit(4)
		}
		//
		if GetFlag(cmd, "tree") {
			fmt.Print(ast.Dump(program))
		} else {
			fmt.Println(program.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolP("tree", "t", false, "print the syntax tree")
}
