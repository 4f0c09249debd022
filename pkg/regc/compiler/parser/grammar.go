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
package parser

import (
	"strconv"

	"github.com/consensys/go-regc/pkg/regc/compiler/ast"
)

// ============================================================================
// Statements
// ============================================================================

// Program matches one or more expressions, each terminated by a semi-colon.
//
// program := (expression ";")+
func Program(input []rune) (*ast.Program, []rune, bool) {
	statements, rest, ok := Many1(Terminated(Expression, Tag(";")))(input)
	//
	if !ok {
		return nil, input, false
	}
	//
	return ast.NewProgram(statements...), rest, true
}

// Expression matches a function declaration, an assignment or a term (tried
// in that order), wrapping the result as an expression.
//
// expression := ws (function | assignment | term)
func Expression(input []rune) (ast.Node, []rune, bool) {
	var inner = Alt(functionNode, assignmentNode, termNode)
	//
	if node, rest, ok := Preceded(Multispace0, inner)(input); ok {
		return ast.NewExpression(node), rest, true
	}
	//
	return nil, input, false
}

// Assignment matches an identifier followed by "=" and an expression.
//
// assignment := ws identifier "=" expression
func Assignment(input []rune) (*ast.Assignment, []rune, bool) {
	var (
		target *ast.Identifier
		value  ast.Node
		rest   []rune
		ok     bool
	)
	//
	if target, rest, ok = Preceded(Multispace0, Identifier)(input); !ok {
		return nil, input, false
	} else if _, rest, ok = Delimited(Space0, Tag("="), Space0)(rest); !ok {
		return nil, input, false
	} else if value, rest, ok = Expression(rest); !ok {
		return nil, input, false
	}
	//
	return ast.NewAssignment(target, value), rest, true
}

// ============================================================================
// Terms
// ============================================================================

// Term matches a flat chain of factors joined by operators.  All operators
// have the same precedence, so grouping is only possible through parentheses.
// Each subsequent factor is placed *before* the operator joining it to the
// chain (see ast.Term).
//
// term := ws factor (operator factor)*
func Term(input []rune) (*ast.Term, []rune, bool) {
	var (
		first ast.Node
		pairs [][]ast.Node
		rest  []rune
		ok    bool
	)
	//
	if first, rest, ok = Preceded(Multispace0, Factor)(input); !ok {
		return nil, input, false
	}
	// Always succeeds
	pairs, rest, _ = Many0(operatorFactor)(rest)
	//
	elements := []ast.Node{first}
	//
	for _, pair := range pairs {
		elements = append(elements, pair...)
	}
	//
	return ast.NewTerm(elements...), rest, true
}

// Factor matches the smallest unit of an expression.
//
// factor := integer | identifier | "(" expression ")"
func Factor(input []rune) (ast.Node, []rune, bool) {
	return Alt(integerNode, identifierNode, Subexpression)(input)
}

// Subexpression matches a parenthesised expression.  Since this delegates to
// the full expression rule, assignments and functions are permitted here as
// well.
func Subexpression(input []rune) (ast.Node, []rune, bool) {
	return Delimited(Tag("("), Expression, Tag(")"))(input)
}

// Operator matches one of the arithmetic operators, along with any surrounding
// whitespace.
//
// operator := "+" | "-" | "/" | "*"
func Operator(input []rune) (ast.Operator, []rune, bool) {
	var symbols = Alt(
		operatorTag("+", ast.ADDITION),
		operatorTag("-", ast.SUBTRACTION),
		operatorTag("/", ast.DIVISION),
		operatorTag("*", ast.MULTIPLICATION),
	)
	//
	return Delimited(Multispace0, symbols, Multispace0)(input)
}

// ============================================================================
// Literals
// ============================================================================

// Integer matches an optionally negated sequence of digits which fits within
// a signed 64-bit integer.
//
// integer := ws "-"? digit+ ws
func Integer(input []rune) (*ast.Integer, []rune, bool) {
	var (
		sign   *string
		digits string
		rest   []rune
		ok     bool
	)
	//
	_, rest, _ = Multispace0(input)
	sign, rest, _ = Opt(Tag("-"))(rest)
	//
	if digits, rest, ok = Digit1(rest); !ok {
		return nil, input, false
	}
	//
	if sign != nil {
		digits = "-" + digits
	}
	//
	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return nil, input, false
	}
	//
	_, rest, _ = Multispace0(rest)
	//
	return ast.NewInteger(value), rest, true
}

// Identifier matches a letter followed by zero or more letters or digits.
// Surrounding spaces (but not line breaks) are absorbed.
//
// identifier := ws letter (letter|digit)* ws
func Identifier(input []rune) (*ast.Identifier, []rune, bool) {
	var (
		head, tail string
		rest       []rune
		ok         bool
	)
	//
	_, rest, _ = Space0(input)
	//
	if head, rest, ok = Alpha1(rest); !ok {
		return nil, input, false
	}
	//
	tail, rest, _ = Alphanumeric0(rest)
	_, rest, _ = Space0(rest)
	//
	return ast.NewIdentifier(head + tail), rest, true
}

// ============================================================================
// Functions
// ============================================================================

// Function matches a function declaration, whose name is optional.
//
// function := "fn" ws1 identifier? "(" fn_args fn_body
func Function(input []rune) (*ast.Function, []rune, bool) {
	var (
		name *string
		args []string
		body []ast.Node
		rest []rune
		ok   bool
	)
	//
	if name, rest, ok = functionName(input); !ok {
		return nil, input, false
	} else if args, rest, ok = functionArgs(rest); !ok {
		return nil, input, false
	} else if body, rest, ok = functionBody(rest); !ok {
		return nil, input, false
	}
	//
	return ast.NewFunction(name, args, body), rest, true
}

func functionName(input []rune) (*string, []rune, bool) {
	var (
		id   **ast.Identifier
		rest []rune
		ok   bool
	)
	//
	_, rest, _ = Multispace0(input)
	//
	if _, rest, ok = Tag("fn")(rest); !ok {
		return nil, input, false
	} else if _, rest, ok = Space1(rest); !ok {
		return nil, input, false
	}
	// Always succeeds
	id, rest, _ = Opt(Identifier)(rest)
	//
	if _, rest, ok = Tag("(")(rest); !ok {
		return nil, input, false
	} else if id == nil {
		return nil, rest, true
	}
	//
	return &(*id).Name, rest, true
}

// fn_args := (identifier ","?)* ")"
func functionArgs(input []rune) ([]string, []rune, bool) {
	var arg = Terminated(Identifier, Opt(Tag(",")))
	//
	_, rest, _ := Multispace0(input)
	ids, rest, _ := Many0(arg)(rest)
	//
	if _, rest, ok := Tag(")")(rest); ok {
		names := make([]string, len(ids))
		//
		for i, id := range ids {
			names[i] = id.Name
		}
		//
		return names, rest, true
	}
	//
	return nil, input, false
}

// fn_body := "{" (expression ";")* ws "}"
func functionBody(input []rune) ([]ast.Node, []rune, bool) {
	var (
		statements []ast.Node
		rest       []rune
		ok         bool
	)
	//
	_, rest, _ = Multispace0(input)
	//
	if _, rest, ok = Tag("{")(rest); !ok {
		return nil, input, false
	}
	//
	statements, rest, _ = Many0(Terminated(Expression, Tag(";")))(rest)
	_, rest, _ = Multispace0(rest)
	//
	if _, rest, ok = Tag("}")(rest); !ok {
		return nil, input, false
	}
	//
	return statements, rest, true
}

// ============================================================================
// Helpers
// ============================================================================

func operatorFactor(input []rune) ([]ast.Node, []rune, bool) {
	if op, rest, ok := Operator(input); !ok {
		return nil, input, false
	} else if factor, rest, ok := Factor(rest); ok {
		// NOTE: factor is pushed before the operator.
		return []ast.Node{factor, op}, rest, true
	}
	//
	return nil, input, false
}

func operatorTag(symbol string, op ast.Operator) Parser[ast.Operator] {
	return Map(Tag(symbol), func(string) (ast.Operator, bool) { return op, true })
}

func functionNode(input []rune) (ast.Node, []rune, bool) {
	if node, rest, ok := Function(input); ok {
		return node, rest, true
	}
	//
	return nil, input, false
}

func assignmentNode(input []rune) (ast.Node, []rune, bool) {
	if node, rest, ok := Assignment(input); ok {
		return node, rest, true
	}
	//
	return nil, input, false
}

func termNode(input []rune) (ast.Node, []rune, bool) {
	if node, rest, ok := Term(input); ok {
		return node, rest, true
	}
	//
	return nil, input, false
}

func integerNode(input []rune) (ast.Node, []rune, bool) {
	if node, rest, ok := Integer(input); ok {
		return node, rest, true
	}
	//
	return nil, input, false
}

func identifierNode(input []rune) (ast.Node, []rune, bool) {
	if node, rest, ok := Identifier(input); ok {
		return node, rest, true
	}
	//
	return nil, input, false
}
