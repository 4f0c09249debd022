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

import (
	"slices"
	"strings"
)

// FunctionArgs represents the (ordered) parameter names of a function
// declaration.
type FunctionArgs struct {
	Names []string
}

// Equals implementation for the Node interface.
func (p *FunctionArgs) Equals(n Node) bool {
	if n, ok := n.(*FunctionArgs); ok {
		return slices.Equal(p.Names, n.Names)
	}
	//
	return false
}

func (p *FunctionArgs) String() string {
	return "(" + strings.Join(p.Names, ", ") + ")"
}

// FunctionBody represents the statements making up the body of a function.
type FunctionBody struct {
	Statements []Node
}

// Equals implementation for the Node interface.
func (p *FunctionBody) Equals(n Node) bool {
	if n, ok := n.(*FunctionBody); ok {
		return EqualsAll(p.Statements, n.Statements)
	}
	//
	return false
}

func (p *FunctionBody) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for _, s := range p.Statements {
		builder.WriteString(" ")
		builder.WriteString(s.String())
		builder.WriteString(";")
	}
	//
	builder.WriteString(" }")
	//
	return builder.String()
}

// Function represents a function declaration.  Functions may be anonymous, in
// which case Name is nil.
type Function struct {
	Name *string
	Args *FunctionArgs
	Body *FunctionBody
}

// NewFunction constructs a new function declaration.
func NewFunction(name *string, args []string, body []Node) *Function {
	return &Function{name, &FunctionArgs{args}, &FunctionBody{body}}
}

// Equals implementation for the Node interface.
func (p *Function) Equals(n Node) bool {
	if n, ok := n.(*Function); ok {
		if (p.Name == nil) != (n.Name == nil) {
			return false
		} else if p.Name != nil && *p.Name != *n.Name {
			return false
		}
		//
		return p.Args.Equals(n.Args) && p.Body.Equals(n.Body)
	}
	//
	return false
}

func (p *Function) String() string {
	var name string
	//
	if p.Name != nil {
		name = *p.Name
	}
	//
	return "fn " + name + p.Args.String() + " " + p.Body.String()
}

// FunctionCall represents the invocation of a named function.  This is
// reserved for future use, as the grammar does not currently produce it.
type FunctionCall struct {
	Name string
	Args Node
}

// Equals implementation for the Node interface.
func (p *FunctionCall) Equals(n Node) bool {
	if n, ok := n.(*FunctionCall); ok {
		return p.Name == n.Name && p.Args.Equals(n.Args)
	}
	//
	return false
}

func (p *FunctionCall) String() string {
	return p.Name + "(" + p.Args.String() + ")"
}
