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

import "fmt"

// DATA marks the start of the data section.
const DATA = ".data"

// CODE marks the start of the code section.
const CODE = ".code"

// Load constructs "LOAD $reg #imm", where the immediate is the low 16 bits of
// the given value (i.e. negative values appear in two's complement form).
func Load(reg uint, value int64) string {
	return fmt.Sprintf("%s $%d #%d", LOAD, reg, uint16(value))
}

// Move constructs "MOV $dst $src".
func Move(dst uint, src uint) string {
	return fmt.Sprintf("%s $%d $%d", MOV, dst, src)
}

// Binary constructs "OP $lhs $rhs $dst".
func Binary(op Opcode, lhs uint, rhs uint, dst uint) string {
	return fmt.Sprintf("%s $%d $%d $%d", op, lhs, rhs, dst)
}

// Halt constructs "HLT".
func Halt() string {
	return HLT.String()
}
