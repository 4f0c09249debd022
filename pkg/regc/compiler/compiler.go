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
package compiler

import (
	"github.com/consensys/go-regc/pkg/regc/compiler/ast"
	"github.com/consensys/go-regc/pkg/regc/compiler/codegen"
	"github.com/consensys/go-regc/pkg/regc/compiler/parser"
	"github.com/consensys/go-regc/pkg/util/source"
)

// Compile parses a given source file and lowers it into a sequence of assembly
// lines.  Syntax errors are reported separately from code generation errors,
// since only the former are associated with a position in the source file.
// When either is returned, no assembly lines are returned.
func Compile(srcfile *source.File, options ...codegen.Option) ([]string, []source.SyntaxError, error) {
	program, errs := parser.Parse(srcfile)
	// Syntax check
	if len(errs) != 0 {
		return nil, errs, nil
	}
	//
	lines, err := Generate(program, options...)
	//
	return lines, nil, err
}

// Generate lowers an already parsed program into a sequence of assembly lines,
// using a fresh code generator.
func Generate(program *ast.Program, options ...codegen.Option) ([]string, error) {
	return codegen.NewCompiler(options...).Compile(program)
}
