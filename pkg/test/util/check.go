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
package util

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/consensys/go-regc/pkg/regc/compiler"
	"github.com/consensys/go-regc/pkg/regc/compiler/codegen"
	"github.com/consensys/go-regc/pkg/util/source"
)

// CheckConformance runs every test case of a given conformance file, each as a
// separate subtest.
func CheckConformance(t *testing.T, test string) {
	var filename = fmt.Sprintf("%s/%s.yaml", TestDir, test)
	// Enable testing each file in parallel
	t.Parallel()
	//
	suite, err := LoadSuite(filename)
	if err != nil {
		t.Fatal(err)
	} else if len(suite.Tests) == 0 {
		t.Fatalf("missing any tests for %s", test)
	}
	//
	for _, tc := range suite.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			checkTestCase(t, filename, tc)
		})
	}
}

func checkTestCase(t *testing.T, filename string, tc TestCase) {
	var (
		srcfile = source.NewSourceFile(fmt.Sprintf("%s#%s", filename, tc.Name), []byte(tc.Source))
		options = []codegen.Option{codegen.WithReclaim(tc.Reclaim)}
	)
	//
	if tc.Registers != 0 {
		options = append(options, codegen.WithRegisters(tc.Registers))
	}
	//
	lines, errs, err := compiler.Compile(srcfile, options...)
	//
	switch tc.Expect.Error {
	case "":
		if len(errs) != 0 {
			t.Fatalf("unexpected syntax error %s", errorToString(errs[0]))
		} else if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		//
		checkAssembly(t, tc.Expect.Asm, lines)
	case SYNTAX_ERROR:
		expected := expectedSyntaxErrors(srcfile, tc.Expect)
		checkExpectedErrors(t, srcfile, errs, expected)
	case UNSUPPORTED_ERROR:
		var unsupported *codegen.UnsupportedConstructError
		//
		if !errors.As(err, &unsupported) {
			t.Fatalf("expected unsupported construct, got %v (%d syntax errors)", err, len(errs))
		}
	case EXHAUSTED_ERROR:
		if !errors.Is(err, codegen.ErrRegisterExhaustion) {
			t.Fatalf("expected register exhaustion, got %v (%d syntax errors)", err, len(errs))
		}
	default:
		t.Fatalf("unknown error kind \"%s\"", tc.Expect.Error)
	}
}

func checkAssembly(t *testing.T, expected, actual []string) {
	for i := 0; i < max(len(expected), len(actual)); i++ {
		if i >= len(expected) || i >= len(actual) || expected[i] != actual[i] {
			t.Fatalf("assembly differs at line %d\nexpected:\n%s\nactual:\n%s", i+1,
				strings.Join(expected, "\n"), strings.Join(actual, "\n"))
		}
	}
}

// Construct the expected syntax error (if given).  When no message and span
// are given, any syntax error is accepted.
func expectedSyntaxErrors(srcfile *source.File, expect Expectation) []source.SyntaxError {
	if expect.Span == nil {
		return nil
	}
	//
	span := source.NewSpan(expect.Span[0], expect.Span[1])
	//
	return []source.SyntaxError{*srcfile.SyntaxError(span, expect.Message)}
}
