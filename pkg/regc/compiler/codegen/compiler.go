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
	"fmt"
	"slices"

	"github.com/consensys/go-regc/pkg/regc/compiler/ast"
	"github.com/consensys/go-regc/pkg/regc/vm/instruction"
	"github.com/consensys/go-regc/pkg/util/collection/bit"
	"github.com/consensys/go-regc/pkg/util/collection/stack"
	log "github.com/sirupsen/logrus"
)

// DEFAULT_REGISTERS is the number of registers available on the target
// machine.
const DEFAULT_REGISTERS = 32

// MAX_REGISTERS is the largest register pool which can be configured.
const MAX_REGISTERS = 256

// Option configures a compiler at construction.
type Option func(*Compiler)

// WithRegisters sets the size of the register pool, such that registers
// 0..n-1 are available.
func WithRegisters(n uint) Option {
	if n == 0 || n > MAX_REGISTERS {
		panic(fmt.Sprintf("invalid register count %d", n))
	}
	//
	return func(p *Compiler) {
		p.registers = n
	}
}

// WithReclaim determines whether the source register of an assignment is
// returned to the free pool (provided it holds no variable).  This is off by
// default, in which case such registers remain allocated for the remainder of
// the compilation.
func WithReclaim(reclaim bool) Option {
	return func(p *Compiler) {
		p.reclaim = reclaim
	}
}

// Compiler walks a program, allocating registers and emitting one line of
// assembly at a time.  A compiler holds the state of exactly one compilation,
// and is not safe for concurrent use.
type Compiler struct {
	// Registers which are currently free.  The lowest numbered free register
	// is always allocated first.
	free bit.Set
	// Registers in the order their values were produced, most recent on top.
	values *stack.Stack[Register]
	// Open scopes, innermost on top.  The bottom (program) scope is never
	// closed.
	scopes *stack.Stack[*Scope]
	// Assembly emitted so far.
	lines []string
	// Size of register pool.
	registers uint
	// Whether to free assignment sources.
	reclaim bool
}

// NewCompiler constructs a fresh compiler with all registers free and a single
// (program-level) scope open.
func NewCompiler(options ...Option) *Compiler {
	p := &Compiler{
		values:    stack.NewStack[Register](),
		scopes:    stack.NewStack[*Scope](),
		registers: DEFAULT_REGISTERS,
	}
	//
	for _, option := range options {
		option(p)
	}
	//
	for r := range p.registers {
		p.free.Insert(r)
	}
	//
	p.scopes.Push(NewScope())
	//
	return p
}

// Compile a given program into a sequence of assembly lines.  This fails if a
// construct is encountered which cannot be lowered (e.g. a function), or if the
// register pool is exhausted.  No lines are returned on failure.
func (p *Compiler) Compile(program *ast.Program) ([]string, error) {
	if err := p.visit(program); err != nil {
		return nil, err
	}
	//
	log.Debugf("generated %d line(s) using %d of %d register(s)", len(p.lines),
		p.registers-p.free.Count(), p.registers)
	//
	return p.Lines(), nil
}

// Lines returns the assembly emitted so far.
func (p *Compiler) Lines() []string {
	return slices.Clone(p.lines)
}

// Free returns the registers currently in the free pool, in ascending order.
func (p *Compiler) Free() []Register {
	var regs []Register
	//
	for _, r := range p.free.Elements() {
		regs = append(regs, Register(r))
	}
	//
	return regs
}

// Values returns the value stack from bottom to top.
func (p *Compiler) Values() []Register {
	return p.values.Items()
}

// Scopes returns the open scopes from outermost to innermost.
func (p *Compiler) Scopes() []*Scope {
	return p.scopes.Items()
}

// Lookup the register bound to a given variable, searching from the innermost
// scope outwards.
func (p *Compiler) Lookup(name string) (Register, bool) {
	for i := range p.scopes.Len() {
		if reg, ok := p.scopes.Peek(i).Lookup(name); ok {
			return reg, true
		}
	}
	//
	return 0, false
}

// PushScope opens a new (innermost) scope.
func (p *Compiler) PushScope() {
	p.scopes.Push(NewScope())
	//
	log.Debugf("opened scope %d", p.scopes.Len()-1)
}

// PopScope closes the innermost scope, returning its registers to the free
// pool.  A register which remains bound in an enclosing scope is kept.
func (p *Compiler) PopScope() error {
	if p.scopes.Len() == 1 {
		return ErrOutermostScope
	}
	//
	var (
		scope    = p.scopes.Pop()
		released []Register
	)
	//
	for _, reg := range scope.Registers() {
		if !p.isBound(reg) {
			p.release(reg)
			p.values.DeleteFunc(func(r Register) bool { return r == reg })
			released = append(released, reg)
		}
	}
	//
	log.Debugf("closed scope %d releasing %v", p.scopes.Len(), released)
	//
	return nil
}

// ============================================================================
// Visitors
// ============================================================================

func (p *Compiler) visit(node ast.Node) error {
	switch n := node.(type) {
	case *ast.Program:
		return p.visitProgram(n)
	case *ast.Expression:
		return p.visitAll(n.Elements)
	case *ast.Term:
		return p.visitAll(n.Elements)
	case *ast.Assignment:
		return p.visitAssignment(n)
	case *ast.Identifier:
		return p.visitIdentifier(n)
	case *ast.Integer:
		return p.visitInteger(n)
	case ast.Operator:
		return p.visitOperator(n)
	default:
		// Includes all function constructs
		return &UnsupportedConstructError{node}
	}
}

func (p *Compiler) visitAll(nodes []ast.Node) error {
	for _, n := range nodes {
		if err := p.visit(n); err != nil {
			return err
		}
	}
	//
	return nil
}

func (p *Compiler) visitProgram(program *ast.Program) error {
	p.emit(instruction.DATA)
	p.emit(instruction.CODE)
	//
	if err := p.visitAll(program.Statements); err != nil {
		return err
	}
	//
	p.emit(instruction.Halt())
	//
	return nil
}

func (p *Compiler) visitInteger(literal *ast.Integer) error {
	reg, err := p.allocate()
	if err != nil {
		return err
	}
	//
	p.emit(instruction.Load(uint(reg), literal.Value))
	p.current().Use(reg)
	p.values.Push(reg)
	//
	return nil
}

// An identifier seen for the first time is implicitly declared, by allocating
// a fresh register for it.  Either way, the identifier's register becomes the
// most recently produced value.
func (p *Compiler) visitIdentifier(id *ast.Identifier) error {
	reg, ok := p.Lookup(id.Name)
	//
	if ok {
		p.promote(reg)
	} else {
		var err error
		//
		if reg, err = p.allocate(); err != nil {
			return err
		}
		//
		p.values.Push(reg)
	}
	//
	p.current().Bind(id.Name, reg)
	//
	return nil
}

func (p *Compiler) visitAssignment(assign *ast.Assignment) error {
	if err := p.visitIdentifier(assign.Target); err != nil {
		return err
	} else if err := p.visit(assign.Value); err != nil {
		return err
	}
	//
	dst, _ := p.Lookup(assign.Target.Name)
	src, ok := p.values.TryPop()
	//
	if !ok {
		return fmt.Errorf("assignment to %s: %w", assign.Target.Name, ErrValueStackUnderflow)
	}
	//
	p.emit(instruction.Move(uint(dst), uint(src)))
	//
	if p.reclaim && src != dst && !p.isBound(src) {
		p.release(src)
	}
	//
	p.promote(dst)
	//
	return nil
}

// Lower a binary operator by combining the two most recent values.  The first
// value popped (i.e. the operand parsed second) is both the left-hand operand
// and the destination.  For the non-commutative operators this reverses the
// order in which they were written, which is retained for compatibility with
// existing output.
func (p *Compiler) visitOperator(op ast.Operator) error {
	opcode, ok := instruction.OperatorOpcode(op)
	//
	if !ok {
		return &UnsupportedConstructError{op}
	}
	//
	a, ok1 := p.values.TryPop()
	b, ok2 := p.values.TryPop()
	//
	if !ok1 || !ok2 {
		return fmt.Errorf("operator %s: %w", op.String(), ErrValueStackUnderflow)
	}
	//
	p.emit(instruction.Binary(opcode, uint(a), uint(b), uint(a)))
	// Variables must keep their register
	if !p.isBound(b) {
		p.release(b)
	}
	//
	p.values.Push(a)
	//
	return nil
}

// ============================================================================
// Helpers
// ============================================================================

func (p *Compiler) emit(line string) {
	p.lines = append(p.lines, line)
}

func (p *Compiler) current() *Scope {
	return p.scopes.Peek(0)
}

func (p *Compiler) allocate() (Register, error) {
	reg, ok := p.free.First()
	//
	if !ok {
		return 0, fmt.Errorf("%w (%d registers)", ErrRegisterExhaustion, p.registers)
	}
	//
	p.free.Remove(reg)
	//
	return Register(reg), nil
}

func (p *Compiler) release(reg Register) {
	p.free.Insert(uint(reg))
}

// Move a given register to the top of the value stack.
func (p *Compiler) promote(reg Register) {
	p.values.DeleteFunc(func(r Register) bool { return r == reg })
	p.values.Push(reg)
}

// Check whether a given register is bound to a variable in any open scope.
func (p *Compiler) isBound(reg Register) bool {
	for _, scope := range p.scopes.Items() {
		if scope.Binds(reg) {
			return true
		}
	}
	//
	return false
}
