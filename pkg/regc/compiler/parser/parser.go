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
package parser

import (
	"github.com/consensys/go-regc/pkg/regc/compiler/ast"
	"github.com/consensys/go-regc/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// Parse accepts a given source file and parses it into a program.  Parsing
// either consumes the entire file (modulo trailing whitespace), or fails with a
// syntax error identifying the first position which could not be matched.  In
// the latter case, no program is returned.
func Parse(srcfile *source.File) (*ast.Program, []source.SyntaxError) {
	var (
		contents          = srcfile.Contents()
		program, rest, ok = Program(contents)
	)
	//
	if !ok {
		_, rest, _ = Multispace0(contents)
		//
		if len(rest) == 0 {
			return nil, syntaxErrors(srcfile, rest, "expected statement")
		}
		//
		return nil, syntaxErrors(srcfile, rest, "unexpected input")
	}
	// Trailing whitespace is permitted
	if _, rest, _ = Multispace0(rest); len(rest) != 0 {
		return nil, syntaxErrors(srcfile, rest, "unexpected input")
	}
	//
	log.Debugf("parsed %d statement(s) from %s", len(program.Statements), srcfile.Filename())
	//
	return program, nil
}

// ParseString is a convenience for parsing a program held in a string.
func ParseString(text string) (*ast.Program, []source.SyntaxError) {
	return Parse(source.NewSourceFile("<string>", []byte(text)))
}

// Construct a syntax error which starts at a given remainder of the file, and
// extends to the end of that line.
func syntaxErrors(srcfile *source.File, rest []rune, msg string) []source.SyntaxError {
	var (
		start = srcfile.OffsetOf(rest)
		end   = start
	)
	//
	for end < len(srcfile.Contents()) && srcfile.Contents()[end] != '\n' {
		end++
	}
	//
	return []source.SyntaxError{*srcfile.SyntaxError(source.NewSpan(start, end), msg)}
}
