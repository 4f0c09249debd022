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
	"fmt"
	"strings"
)

// Dump produces an indented, multi-line description of a tree which exposes
// its precise shape (including the interleaved order of term elements).  This
// is intended for debugging the parser.
func Dump(n Node) string {
	var builder strings.Builder
	//
	dump(&builder, n, 0)
	//
	return builder.String()
}

func dump(builder *strings.Builder, n Node, indent int) {
	builder.WriteString(strings.Repeat("  ", indent))
	//
	switch n := n.(type) {
	case *Integer:
		builder.WriteString(fmt.Sprintf("Integer %d\n", n.Value))
	case *Identifier:
		builder.WriteString(fmt.Sprintf("Identifier %s\n", n.Name))
	case Operator:
		builder.WriteString(fmt.Sprintf("Operator %s\n", n.String()))
	case *Term:
		dumpAll(builder, "Term", n.Elements, indent)
	case *Expression:
		dumpAll(builder, "Expression", n.Elements, indent)
	case *Assignment:
		builder.WriteString("Assignment\n")
		dump(builder, n.Target, indent+1)
		dump(builder, n.Value, indent+1)
	case *Function:
		if n.Name != nil {
			builder.WriteString(fmt.Sprintf("Function %s\n", *n.Name))
		} else {
			builder.WriteString("Function\n")
		}
		//
		dump(builder, n.Args, indent+1)
		dump(builder, n.Body, indent+1)
	case *FunctionArgs:
		builder.WriteString(fmt.Sprintf("FunctionArgs %s\n", strings.Join(n.Names, " ")))
	case *FunctionBody:
		dumpAll(builder, "FunctionBody", n.Statements, indent)
	case *FunctionCall:
		builder.WriteString(fmt.Sprintf("FunctionCall %s\n", n.Name))
		dump(builder, n.Args, indent+1)
	case *Program:
		dumpAll(builder, "Program", n.Statements, indent)
	default:
		builder.WriteString(fmt.Sprintf("Unknown %T\n", n))
	}
}

func dumpAll(builder *strings.Builder, label string, nodes []Node, indent int) {
	builder.WriteString(label)
	builder.WriteString("\n")
	//
	for _, e := range nodes {
		dump(builder, e, indent+1)
	}
}
