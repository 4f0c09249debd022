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

// Node represents an arbitrary node in the abstract syntax tree produced by
// the parser.  Composite nodes exclusively own their children, and a tree is
// never modified once constructed.
type Node interface {
	// Equals checks whether two nodes are structurally equivalent.
	Equals(n Node) bool
	// String renders this node back into source form.
	String() string
}

// EqualsAll determines whether all of the nodes on the left-hand side match
// those on the right-hand side.  The number of nodes on both sides must also
// match.
func EqualsAll(lhs []Node, rhs []Node) bool {
	if len(lhs) == len(rhs) {
		for i := range len(lhs) {
			if !lhs[i].Equals(rhs[i]) {
				return false
			}
		}
		//
		return true
	}
	//
	return false
}

// IsFunctionConstruct checks whether a given node is one of the function
// constructs (declaration, arguments, body or call).
func IsFunctionConstruct(n Node) bool {
	switch n.(type) {
	case *Function, *FunctionArgs, *FunctionBody, *FunctionCall:
		return true
	default:
		return false
	}
}
