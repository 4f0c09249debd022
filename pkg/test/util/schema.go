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

// Suite represents a single conformance file, holding a number of related test
// cases.
type Suite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents one program, along with the options it is compiled with
// and the expected outcome.
type TestCase struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	// Size of register pool (zero means default)
	Registers uint        `yaml:"registers,omitempty"`
	Reclaim   bool        `yaml:"reclaim,omitempty"`
	Expect    Expectation `yaml:"expect"`
}

// Expectation defines the outcome of compiling a test case.  Exactly one of Asm
// or Error should be given.
type Expectation struct {
	// Expected assembly lines
	Asm []string `yaml:"asm,omitempty"`
	// Expected error (syntax, unsupported or exhausted)
	Error string `yaml:"error,omitempty"`
	// Expected syntax error message (optional)
	Message string `yaml:"message,omitempty"`
	// Expected syntax error span as [start, end] (optional)
	Span []int `yaml:"span,omitempty"`
}

// Kinds of expected error
const (
	SYNTAX_ERROR      = "syntax"
	UNSUPPORTED_ERROR = "unsupported"
	EXHAUSTED_ERROR   = "exhausted"
)
