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
package codegen

import (
	"errors"
	"fmt"

	"github.com/consensys/go-regc/pkg/regc/compiler/ast"
)

// ErrRegisterExhaustion signals an allocation was attempted when no register
// was free.
var ErrRegisterExhaustion = errors.New("register pool exhausted")

// ErrValueStackUnderflow signals an operator or assignment required more
// values than had been produced.  This cannot arise from a parsed program, only
// from a malformed tree.
var ErrValueStackUnderflow = errors.New("value stack underflow")

// ErrOutermostScope signals an attempt to close the program-level scope.
var ErrOutermostScope = errors.New("cannot close outermost scope")

// UnsupportedConstructError signals the code generator was given a node which
// it does not know how to lower (for example, a function declaration).
type UnsupportedConstructError struct {
	Node ast.Node
}

func (p *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("construct not implemented: %s", constructName(p.Node))
}

func constructName(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Function:
		if n.Name != nil {
			return fmt.Sprintf("function %s", *n.Name)
		}
		//
		return "anonymous function"
	case *ast.FunctionArgs:
		return "function arguments"
	case *ast.FunctionBody:
		return "function body"
	case *ast.FunctionCall:
		return fmt.Sprintf("call to %s", n.Name)
	case ast.Operator:
		return fmt.Sprintf("operator %s", n.String())
	default:
		return fmt.Sprintf("%T", node)
	}
}
