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

import "strconv"

// Integer represents a signed 64-bit integer literal.
type Integer struct {
	Value int64
}

// NewInteger constructs a new integer literal.
func NewInteger(value int64) *Integer {
	return &Integer{value}
}

// Equals implementation for the Node interface.
func (p *Integer) Equals(n Node) bool {
	if n, ok := n.(*Integer); ok {
		return p.Value == n.Value
	}
	//
	return false
}

func (p *Integer) String() string {
	return strconv.FormatInt(p.Value, 10)
}

// Identifier represents a variable, either as the target of an assignment or
// as a reference within an expression.
type Identifier struct {
	Name string
}

// NewIdentifier constructs a new identifier with the given name.
func NewIdentifier(name string) *Identifier {
	return &Identifier{name}
}

// Equals implementation for the Node interface.
func (p *Identifier) Equals(n Node) bool {
	if n, ok := n.(*Identifier); ok {
		return p.Name == n.Name
	}
	//
	return false
}

func (p *Identifier) String() string {
	return p.Name
}
