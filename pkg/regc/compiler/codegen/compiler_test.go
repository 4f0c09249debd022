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
	"strings"
	"testing"

	"github.com/consensys/go-regc/pkg/regc/compiler/ast"
	"github.com/consensys/go-regc/pkg/regc/compiler/parser"
	"github.com/consensys/go-regc/pkg/util/assert"
)

// ===================================================================
// Exact Output
// ===================================================================

func Test_Compile_01(t *testing.T) {
	checkCompile(t, "x=(3+2)*(1+1);\ny=x;\ny = y+ 2;",
		".data",
		".code",
		"LOAD $1 #3",
		"LOAD $2 #2",
		"ADD $2 $1 $2",
		"LOAD $1 #1",
		"LOAD $3 #1",
		"ADD $3 $1 $3",
		"MUL $3 $2 $3",
		"MOV $0 $3",
		"MOV $1 $0",
		"LOAD $2 #2",
		"ADD $2 $1 $2",
		"MOV $1 $2",
		"HLT")
}

func Test_Compile_02(t *testing.T) {
	// Second operand written first for non-commutative operators.
	checkCompile(t, "5-3;", ".data", ".code", "LOAD $0 #5", "LOAD $1 #3", "SUB $1 $0 $1", "HLT")
	checkCompile(t, "8/2;", ".data", ".code", "LOAD $0 #8", "LOAD $1 #2", "DIV $1 $0 $1", "HLT")
}

func Test_Compile_03(t *testing.T) {
	// Freed register is handed out again
	checkCompile(t, "1+2;3;", ".data", ".code", "LOAD $0 #1", "LOAD $1 #2", "ADD $1 $0 $1", "LOAD $0 #3", "HLT")
}

func Test_Compile_04(t *testing.T) {
	// Literals are truncated to 16 bits
	checkCompile(t, "x = -1;", ".data", ".code", "LOAD $1 #65535", "MOV $0 $1", "HLT")
}

func Test_Compile_05(t *testing.T) {
	// Implicit declaration on first use.
	checkCompile(t, "y = z + 1;", ".data", ".code", "LOAD $2 #1", "ADD $2 $1 $2", "MOV $0 $2", "HLT")
}

func Test_Compile_06(t *testing.T) {
	// A chain with no precedence evaluates strictly left-to-right
	checkCompile(t, "1+2*3;",
		".data", ".code",
		"LOAD $0 #1", "LOAD $1 #2", "ADD $1 $0 $1",
		"LOAD $0 #3", "MUL $0 $1 $0",
		"HLT")
}

func Test_Compile_07(t *testing.T) {
	// Repeated operands share one value stack entry
	checkCompile(t, "x = 1; y = x + x;",
		".data", ".code",
		"LOAD $1 #1", "MOV $0 $1",
		"ADD $0 $2 $0", "MOV $2 $0",
		"HLT")
}

func Test_Compile_08(t *testing.T) {
	// Chained assignment
	checkCompile(t, "a = b = 7;", ".data", ".code", "LOAD $2 #7", "MOV $1 $2", "MOV $0 $1", "HLT")
}

func Test_Compile_09(t *testing.T) {
	// A variable parsed second is the destination, and is overwritten
	checkCompile(t, "y = 1; z = 2 + y;",
		".data", ".code",
		"LOAD $1 #1", "MOV $0 $1",
		"LOAD $3 #2", "ADD $0 $3 $0", "MOV $2 $0",
		"HLT")
}

// ===================================================================
// Properties
// ===================================================================

var validPrograms = []string{
	"x=3;",
	"(3+4)+2;",
	"x=(3+2)*(1+1);y=x;y=y+2;",
	"a = 1; b = 2; c = a - b; d = c / (a * b);",
	"a = b = c = 3 + 4 - 5;",
	"x = (y = 2) + (z = 3); w = x * y * z;",
	"q = -4; r = q - -4; r = (r + (q * (r - 1)));",
}

func Test_Property_Counts_01(t *testing.T) {
	for _, input := range validPrograms {
		program := parse(t, input)
		lines := compile(t, NewCompiler(), program)
		//
		integers, assignments := countNodes(program)
		loads, moves := countPrefix(lines, "LOAD "), countPrefix(lines, "MOV ")
		//
		assert.Equal(t, integers, loads, "LOAD count for %q", input)
		assert.Equal(t, assignments, moves, "MOV count for %q", input)
	}
}

func Test_Property_Structure_01(t *testing.T) {
	for _, input := range validPrograms {
		lines := compile(t, NewCompiler(), parse(t, input))
		//
		assert.Equal(t, ".data", lines[0])
		assert.Equal(t, ".code", lines[1])
		assert.Equal(t, "HLT", lines[len(lines)-1])
		assert.Equal(t, 1, countPrefix(lines, "HLT"), "HLT count for %q", input)
	}
}

func Test_Property_Disjoint_01(t *testing.T) {
	for _, input := range validPrograms {
		compiler := NewCompiler()
		program := parse(t, input)
		//
		assert.NoError(t, compiler.visit(program))
		checkDisjoint(t, compiler, input)
	}
}

func Test_Property_Disjoint_02(t *testing.T) {
	// Check after every statement
	compiler := NewCompiler()
	program := parse(t, "a = 1; b = a + 2; c = b - a; a = c * (d = 4); e = d;")
	//
	for _, stmt := range program.Statements {
		assert.NoError(t, compiler.visit(stmt))
		checkDisjoint(t, compiler, stmt.String())
	}
}

func Test_Property_Realloc_01(t *testing.T) {
	compiler := NewCompiler()
	//
	reg, err := compiler.allocate()
	assert.NoError(t, err)
	assert.Equal(t, Register(0), reg)
	//
	compiler.release(reg)
	//
	again, err := compiler.allocate()
	assert.NoError(t, err)
	assert.Equal(t, reg, again)
}

func Test_Property_Realloc_02(t *testing.T) {
	compiler := NewCompiler()
	// Allocate 0, 1, 2 then free 1
	for range 3 {
		_, err := compiler.allocate()
		assert.NoError(t, err)
	}
	//
	compiler.release(1)
	//
	reg, _ := compiler.allocate()
	assert.Equal(t, Register(1), reg)
	reg, _ = compiler.allocate()
	assert.Equal(t, Register(3), reg)
}

// ===================================================================
// Failures
// ===================================================================

func Test_Unsupported_01(t *testing.T) {
	program := parse(t, "x = 1; fn f(a) { a + 1; };")
	lines, err := NewCompiler().Compile(program)
	//
	var unsupported *UnsupportedConstructError
	//
	assert.True(t, errors.As(err, &unsupported), "unexpected error %v", err)
	assert.Equal(t, "construct not implemented: function f", err.Error())
	assert.True(t, lines == nil)
}

func Test_Unsupported_02(t *testing.T) {
	// Inside a subexpression, and anonymous
	program := parse(t, "y = (fn (){}) + 1;")
	_, err := NewCompiler().Compile(program)
	//
	var unsupported *UnsupportedConstructError
	//
	assert.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "construct not implemented: anonymous function", err.Error())
}

func Test_Unsupported_03(t *testing.T) {
	call := &ast.FunctionCall{Name: "f", Args: ast.NewInteger(1)}
	_, err := NewCompiler().Compile(ast.NewProgram(ast.NewExpression(call)))
	//
	var unsupported *UnsupportedConstructError
	//
	assert.True(t, errors.As(err, &unsupported))
	assert.True(t, unsupported.Node == ast.Node(call))
}

func Test_Exhaustion_01(t *testing.T) {
	program := parse(t, "1;2;3;")
	_, err := NewCompiler(WithRegisters(2)).Compile(program)
	//
	assert.ErrorIs(t, err, ErrRegisterExhaustion)
}

func Test_Exhaustion_02(t *testing.T) {
	// Each bare literal keeps its register
	_, err := NewCompiler().Compile(parse(t, strings.Repeat("1;", DEFAULT_REGISTERS)))
	assert.NoError(t, err)
	//
	_, err = NewCompiler().Compile(parse(t, strings.Repeat("1;", DEFAULT_REGISTERS+1)))
	assert.ErrorIs(t, err, ErrRegisterExhaustion)
}

func Test_Underflow_01(t *testing.T) {
	term := ast.NewTerm(ast.NewInteger(1), ast.ADDITION)
	_, err := NewCompiler().Compile(ast.NewProgram(ast.NewExpression(term)))
	//
	assert.ErrorIs(t, err, ErrValueStackUnderflow)
}

func Test_ReservedOperator_01(t *testing.T) {
	term := ast.NewTerm(ast.NewInteger(1), ast.NewInteger(2), ast.GREATER_THAN)
	lines := compile(t, NewCompiler(), ast.NewProgram(ast.NewExpression(term)))
	//
	assert.Equal(t, "GT $1 $0 $1", lines[4])
}

// ===================================================================
// Options & Scopes
// ===================================================================

func Test_Reclaim_01(t *testing.T) {
	program := parse(t, "x=1;y=2;")
	//
	assert.Equal(t, []string{".data", ".code", "LOAD $1 #1", "MOV $0 $1", "LOAD $3 #2", "MOV $2 $3", "HLT"},
		compile(t, NewCompiler(), program))
	assert.Equal(t, []string{".data", ".code", "LOAD $1 #1", "MOV $0 $1", "LOAD $2 #2", "MOV $1 $2", "HLT"},
		compile(t, NewCompiler(WithReclaim(true)), program))
}

func Test_Reclaim_02(t *testing.T) {
	// Sustained compilation within a small pool
	input := strings.Repeat("x = x + 1;", 100)
	//
	_, err := NewCompiler(WithRegisters(4)).Compile(parse(t, input))
	assert.ErrorIs(t, err, ErrRegisterExhaustion)
	//
	_, err = NewCompiler(WithRegisters(4), WithReclaim(true)).Compile(parse(t, input))
	assert.NoError(t, err)
}

func Test_PopScope_01(t *testing.T) {
	compiler := NewCompiler()
	//
	assert.ErrorIs(t, compiler.PopScope(), ErrOutermostScope)
}

func Test_PopScope_02(t *testing.T) {
	compiler := NewCompiler()
	compiler.PushScope()
	// z bound in the inner scope
	assert.NoError(t, compiler.visit(statement(t, "z = 1")))
	reg, _ := compiler.Lookup("z")
	assert.Equal(t, Register(0), reg)
	assert.False(t, contains(compiler.Free(), reg))
	//
	assert.NoError(t, compiler.PopScope())
	//
	_, ok := compiler.Lookup("z")
	assert.False(t, ok)
	assert.True(t, contains(compiler.Free(), reg))
	assert.False(t, contains(compiler.Values(), reg))
	// And reused
	assert.NoError(t, compiler.visit(statement(t, "w = 2")))
	reg, _ = compiler.Lookup("w")
	assert.Equal(t, Register(0), reg)
}

func Test_PopScope_03(t *testing.T) {
	compiler := NewCompiler()
	assert.NoError(t, compiler.visit(statement(t, "x = 1")))
	outer, _ := compiler.Lookup("x")
	// x resolves to the outer register, and becomes bound in the inner scope.
	compiler.PushScope()
	assert.NoError(t, compiler.visit(statement(t, "x + 2")))
	//
	scopes := compiler.Scopes()
	inner, ok := scopes[1].Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, outer, inner)
	// Closing the inner scope keeps the outer binding alive.
	assert.NoError(t, compiler.PopScope())
	assert.False(t, contains(compiler.Free(), outer))
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkCompile(t *testing.T, input string, expected ...string) {
	t.Helper()
	//
	lines := compile(t, NewCompiler(), parse(t, input))
	//
	assert.Equal(t, expected, lines, "compiling %q\n%s", input, strings.Join(lines, "\n"))
}

func parse(t *testing.T, input string) *ast.Program {
	t.Helper()
	//
	program, errs := parser.ParseString(input)
	if len(errs) != 0 {
		t.Fatalf("failed parsing %q: %s", input, errs[0].Message())
	}
	//
	return program
}

func statement(t *testing.T, input string) ast.Node {
	t.Helper()
	//
	return parse(t, input+";").Statements[0]
}

func compile(t *testing.T, compiler *Compiler, program *ast.Program) []string {
	t.Helper()
	//
	lines, err := compiler.Compile(program)
	if err != nil {
		t.Fatalf("failed compiling %s: %v", program.String(), err)
	}
	//
	return lines
}

// Distinct variables across all open scopes must never share a register.
func checkDisjoint(t *testing.T, compiler *Compiler, context string) {
	t.Helper()
	//
	var owners = make(map[Register]string)
	//
	for _, scope := range compiler.Scopes() {
		for _, name := range scope.Names() {
			reg, _ := scope.Lookup(name)
			//
			if owner, ok := owners[reg]; ok && owner != name {
				t.Fatalf("%s and %s share register %d after %q", owner, name, reg, context)
			}
			//
			owners[reg] = name
		}
	}
	// No bound register is free
	for reg := range owners {
		if contains(compiler.Free(), reg) {
			t.Fatalf("bound register %d is free after %q", reg, context)
		}
	}
}

func countNodes(node ast.Node) (integers int, assignments int) {
	switch n := node.(type) {
	case *ast.Integer:
		return 1, 0
	case *ast.Assignment:
		i, a := countNodes(n.Value)
		return i, a + 1
	case *ast.Term:
		return countAll(n.Elements)
	case *ast.Expression:
		return countAll(n.Elements)
	case *ast.Program:
		return countAll(n.Statements)
	default:
		return 0, 0
	}
}

func countAll(nodes []ast.Node) (int, int) {
	var integers, assignments int
	//
	for _, n := range nodes {
		i, a := countNodes(n)
		integers += i
		assignments += a
	}
	//
	return integers, assignments
}

func countPrefix(lines []string, prefix string) int {
	var count int
	//
	for _, line := range lines {
		if strings.HasPrefix(line, prefix) || line == strings.TrimSpace(prefix) {
			count++
		}
	}
	//
	return count
}

func contains(regs []Register, reg Register) bool {
	for _, r := range regs {
		if r == reg {
			return true
		}
	}
	//
	return false
}
