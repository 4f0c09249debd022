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
package ast

import "strings"

// Program is the root of the tree, representing one or more statements in
// the order they appear.
type Program struct {
	Statements []Node
}

// NewProgram constructs a new program from one or more statements.
func NewProgram(statements ...Node) *Program {
	if len(statements) == 0 {
		panic("one or more statements required")
	}
	//
	return &Program{statements}
}

// Equals implementation for the Node interface.
func (p *Program) Equals(n Node) bool {
	if n, ok := n.(*Program); ok {
		return EqualsAll(p.Statements, n.Statements)
	}
	//
	return false
}

func (p *Program) String() string {
	var builder strings.Builder
	//
	for i, s := range p.Statements {
		if i != 0 {
			builder.WriteString("\n")
		}
		//
		builder.WriteString(s.String())
		builder.WriteString(";")
	}
	//
	return builder.String()
}
