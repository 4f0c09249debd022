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
	"maps"
	"slices"
)

// Register identifies a register of the target machine.
type Register uint

// Scope records the variable bindings of one lexical block, mapping each
// variable name onto the register holding it.  Lookups are local, and do not
// consider enclosing scopes.
type Scope struct {
	vars map[string]Register
	// Registers allocated for literals whilst this scope was current.
	temporaries []Register
}

// NewScope constructs an empty scope.
func NewScope() *Scope {
	return &Scope{make(map[string]Register), nil}
}

// Has checks whether a given variable is bound in this scope.
func (p *Scope) Has(name string) bool {
	_, ok := p.vars[name]
	return ok
}

// Bind a given variable to a given register, overwriting any existing binding.
func (p *Scope) Bind(name string, reg Register) {
	p.vars[name] = reg
}

// Lookup the register bound to a given variable in this scope (if any).
func (p *Scope) Lookup(name string) (Register, bool) {
	reg, ok := p.vars[name]
	return reg, ok
}

// Names returns the variables bound in this scope, sorted alphabetically.
func (p *Scope) Names() []string {
	return slices.Sorted(maps.Keys(p.vars))
}

// Registers returns the (unique) registers bound in this scope in ascending
// order.  These are returned to the free pool when the scope is closed.
func (p *Scope) Registers() []Register {
	regs := slices.Sorted(maps.Values(p.vars))
	//
	return slices.Compact(regs)
}

// Binds checks whether any variable in this scope is bound to a given
// register.
func (p *Scope) Binds(reg Register) bool {
	for _, r := range p.vars {
		if r == reg {
			return true
		}
	}
	//
	return false
}

// Use records that a given register was allocated to hold a literal whilst
// this scope was current.
func (p *Scope) Use(reg Register) {
	p.temporaries = append(p.temporaries, reg)
}

// Temporaries returns the registers recorded via Use, in allocation order.
func (p *Scope) Temporaries() []Register {
	return slices.Clone(p.temporaries)
}
