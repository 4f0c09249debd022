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
package instruction

import (
	"fmt"

	"github.com/consensys/go-regc/pkg/regc/compiler/ast"
)

// Opcode identifies an instruction of the target virtual machine.  Only the
// textual mnemonic is of concern here, since execution happens elsewhere.
type Opcode uint8

const (
	// LOAD an immediate into a register.
	LOAD Opcode = iota
	// MOV copies one register into another.
	MOV
	// ADD two registers.
	ADD
	// SUB subtracts two registers.
	SUB
	// MUL multiplies two registers.
	MUL
	// DIV divides two registers.
	DIV
	// NEG is reserved.
	NEG
	// GT is reserved.
	GT
	// GEQ is reserved.
	GEQ
	// LT is reserved.
	LT
	// LEQ is reserved.
	LEQ
	// OR is reserved.
	OR
	// AND is reserved.
	AND
	// NOT is reserved.
	NOT
	// EQ is reserved.
	EQ
	// HLT halts the machine.
	HLT
)

var mnemonics = []string{
	"LOAD", "MOV", "ADD", "SUB", "MUL", "DIV", "NEG", "GT", "GEQ", "LT", "LEQ", "OR", "AND", "NOT", "EQ", "HLT",
}

func (p Opcode) String() string {
	if int(p) < len(mnemonics) {
		return mnemonics[p]
	}
	//
	return fmt.Sprintf("OP%d", uint8(p))
}

// Lookup the opcode used to lower a given operator marker.
var operatorOpcodes = map[ast.Operator]Opcode{
	ast.ADDITION:              ADD,
	ast.SUBTRACTION:           SUB,
	ast.MULTIPLICATION:        MUL,
	ast.DIVISION:              DIV,
	ast.NEGATION:              NEG,
	ast.GREATER_THAN:          GT,
	ast.GREATER_THAN_OR_EQUAL: GEQ,
	ast.LESS_THAN:             LT,
	ast.LESS_THAN_OR_EQUAL:    LEQ,
	ast.LOGICAL_OR:            OR,
	ast.LOGICAL_AND:           AND,
	ast.LOGICAL_NOT:           NOT,
	ast.LOGICAL_EQUAL:         EQ,
}

// OperatorOpcode determines the opcode corresponding to a given operator
// marker, returning false if there is none.
func OperatorOpcode(op ast.Operator) (Opcode, bool) {
	opcode, ok := operatorOpcodes[op]
	return opcode, ok
}
