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

import "fmt"

// Operator is a payload-free marker appearing within the flattened element
// chain of a term.  Only the four arithmetic operators are produced by the
// parser; the remainder are reserved.
type Operator uint8

const (
	// ADDITION represents "+"
	ADDITION Operator = iota
	// SUBTRACTION represents "-"
	SUBTRACTION
	// MULTIPLICATION represents "*"
	MULTIPLICATION
	// DIVISION represents "/"
	DIVISION
	// NEGATION is reserved.
	NEGATION
	// GREATER_THAN is reserved.
	GREATER_THAN
	// GREATER_THAN_OR_EQUAL is reserved.
	GREATER_THAN_OR_EQUAL
	// LESS_THAN is reserved.
	LESS_THAN
	// LESS_THAN_OR_EQUAL is reserved.
	LESS_THAN_OR_EQUAL
	// LOGICAL_OR is reserved.
	LOGICAL_OR
	// LOGICAL_AND is reserved.
	LOGICAL_AND
	// LOGICAL_NOT is reserved.
	LOGICAL_NOT
	// LOGICAL_EQUAL is reserved.
	LOGICAL_EQUAL
)

var operatorSymbols = []string{
	"+", "-", "*", "/", "~", ">", ">=", "<", "<=", "||", "&&", "!", "==",
}

// IsArithmetic checks whether this is one of the four operators produced by
// the parser.
func (p Operator) IsArithmetic() bool {
	return p <= DIVISION
}

// Equals implementation for the Node interface.
func (p Operator) Equals(n Node) bool {
	if n, ok := n.(Operator); ok {
		return p == n
	}
	//
	return false
}

func (p Operator) String() string {
	if int(p) < len(operatorSymbols) {
		return operatorSymbols[p]
	}
	//
	return fmt.Sprintf("op(%d)", uint8(p))
}
