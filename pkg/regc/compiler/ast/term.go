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

// Term represents a flat chain of operands joined by operators of equal
// precedence.  Elements are stored in the order the parser produces them,
// where each subsequent operand precedes the operator which joins it to
// the chain:
//
// o0 op0 o1 op1 o2 ==> [o0, o1, op0, o2, op1]
//
// The code generator consumes elements in exactly this order.
type Term struct {
	Elements []Node
}

// NewTerm constructs a term from its (already interleaved) elements.
func NewTerm(elements ...Node) *Term {
	if len(elements) == 0 {
		panic("one or more elements required")
	}
	//
	return &Term{elements}
}

// Operands returns the operands of this term in source order.
func (p *Term) Operands() []Node {
	var operands = []Node{p.Elements[0]}
	//
	for i := 1; i < len(p.Elements); i += 2 {
		operands = append(operands, p.Elements[i])
	}
	//
	return operands
}

// Operators returns the operators of this term in source order.
func (p *Term) Operators() []Operator {
	var operators []Operator
	//
	for i := 2; i < len(p.Elements); i += 2 {
		if op, ok := p.Elements[i].(Operator); ok {
			operators = append(operators, op)
		}
	}
	//
	return operators
}

// Equals implementation for the Node interface.
func (p *Term) Equals(n Node) bool {
	if n, ok := n.(*Term); ok {
		return EqualsAll(p.Elements, n.Elements)
	}
	//
	return false
}

func (p *Term) String() string {
	var (
		builder   strings.Builder
		operands  = p.Operands()
		operators = p.Operators()
	)
	//
	for i, e := range operands {
		if i != 0 {
			builder.WriteString(" ")
			builder.WriteString(operators[i-1].String())
			builder.WriteString(" ")
		}
		//
		if _, ok := e.(*Expression); ok {
			builder.WriteString("(")
			builder.WriteString(e.String())
			builder.WriteString(")")
		} else {
			builder.WriteString(e.String())
		}
	}
	//
	return builder.String()
}

// Expression is a thin wrapper unifying functions, assignments and terms into
// a single kind of node.  An expression always has exactly one element.
type Expression struct {
	Elements []Node
}

// NewExpression wraps a given node as an expression.
func NewExpression(element Node) *Expression {
	return &Expression{[]Node{element}}
}

// Inner returns the wrapped node.
func (p *Expression) Inner() Node {
	return p.Elements[0]
}

// Equals implementation for the Node interface.
func (p *Expression) Equals(n Node) bool {
	if n, ok := n.(*Expression); ok {
		return EqualsAll(p.Elements, n.Elements)
	}
	//
	return false
}

func (p *Expression) String() string {
	return p.Inner().String()
}

// Assignment represents a statement of the form "x = e".
type Assignment struct {
	Target *Identifier
	Value  Node
}

// NewAssignment constructs a new assignment of a given value to a given target.
func NewAssignment(target *Identifier, value Node) *Assignment {
	return &Assignment{target, value}
}

// Equals implementation for the Node interface.
func (p *Assignment) Equals(n Node) bool {
	if n, ok := n.(*Assignment); ok {
		return p.Target.Equals(n.Target) && p.Value.Equals(n.Value)
	}
	//
	return false
}

func (p *Assignment) String() string {
	return p.Target.String() + " = " + p.Value.String()
}
