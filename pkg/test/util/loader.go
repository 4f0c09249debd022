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
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// TestDir determines the (relative) location of the test directory.  That is
// where the conformance files are found.
const TestDir = "../../testdata"

// LoadSuite reads a conformance file from disk.
func LoadSuite(filename string) (*Suite, error) {
	var suite Suite
	//
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	for _, test := range suite.Tests {
		if err := test.validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
	}
	//
	return &suite, nil
}

// ListSuites returns the names of all conformance files in a given directory
// (relative to the test directory), sorted alphabetically.
func ListSuites(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(TestDir, dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	//
	names := make([]string, len(matches))
	//
	for i, m := range matches {
		base := filepath.Base(m)
		names[i] = filepath.Join(dir, base[:len(base)-len(filepath.Ext(base))])
	}
	//
	slices.Sort(names)
	//
	return names, nil
}

func (p *TestCase) validate() error {
	switch {
	case p.Name == "":
		return fmt.Errorf("test case missing name")
	case p.Expect.Error == "" && p.Expect.Asm == nil:
		return fmt.Errorf("test case %s has no expectation", p.Name)
	case p.Expect.Error != "" && p.Expect.Asm != nil:
		return fmt.Errorf("test case %s expects both assembly and an error", p.Name)
	case p.Expect.Span != nil && len(p.Expect.Span) != 2:
		return fmt.Errorf("test case %s has malformed span %v", p.Name, p.Expect.Span)
	case (p.Expect.Message == "") != (p.Expect.Span == nil):
		return fmt.Errorf("test case %s must give both message and span, or neither", p.Name)
	}
	//
	return nil
}
