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
package bit

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"
)

// Set provides a straightforward bitset implementation. That is, a set of
// (unsigned) integer values implemented as an array of bits.
type Set struct {
	words []uint64
}

// NewSet creates a Set with capacity for values 0..size-1, none of which is
// initially present.
func NewSet(size uint) *Set {
	return &Set{make([]uint64, (size+63)/64)}
}

// Clone creates a true copy of this bitset which ensures no aliasing between
// this set and the result.
func (p *Set) Clone() Set {
	return Set{slices.Clone(p.words)}
}

// Insert a given value into this set.
func (p *Set) Insert(val uint) {
	word := val / 64
	bit := val % 64
	//
	for uint(len(p.words)) <= word {
		p.words = append(p.words, 0)
	}
	// Set bit
	mask := uint64(1) << bit
	p.words[word] = p.words[word] | mask
}

// InsertAll inserts zero or more elements into this bitset.
func (p *Set) InsertAll(vals ...uint) {
	for _, v := range vals {
		p.Insert(v)
	}
}

// Remove a given value from this set.
func (p *Set) Remove(val uint) {
	word := val / 64
	bit := val % 64
	// Check whether we need to do anything.
	if uint(len(p.words)) > word {
		mask := uint64(1) << bit
		p.words[word] = p.words[word] & ^mask
	}
}

// Union inserts all elements from a given bitset into this bitset, return true
// if there is some change.
func (p *Set) Union(other Set) bool {
	changed := false
	//
	for len(p.words) < len(other.words) {
		p.words = append(p.words, 0)
	}
	//
	for w := range other.words {
		tmp := p.words[w] | other.words[w]
		changed = changed || tmp != p.words[w]
		p.words[w] = tmp
	}
	//
	return changed
}

// Contains checks whether a given value is contained, or not.
func (p *Set) Contains(val uint) bool {
	word := val / 64
	bit := val % 64
	//
	if uint(len(p.words)) <= word {
		return false
	}
	//
	mask := uint64(1) << bit
	//
	return (p.words[word] & mask) != 0
}

// Count returns the number of bits in the bitset which are set to one.
func (p *Set) Count() uint {
	count := 0
	//
	for _, word := range p.words {
		count += bits.OnesCount64(word)
	}
	//
	return uint(count)
}

// First returns the smallest value in this set, or false if the set is empty.
func (p *Set) First() (uint, bool) {
	for i, word := range p.words {
		if word != 0 {
			return uint(i*64 + bits.TrailingZeros64(word)), true
		}
	}
	//
	return 0, false
}

// Elements returns the values in this set in ascending order.
func (p *Set) Elements() []uint {
	var elements []uint
	//
	for i, word := range p.words {
		for word != 0 {
			bit := bits.TrailingZeros64(word)
			elements = append(elements, uint(i*64+bit))
			// clear lowest set bit
			word &= word - 1
		}
	}
	//
	return elements
}

func (p *Set) String() string {
	var builder strings.Builder
	//
	builder.WriteString("[")
	//
	for i, value := range p.Elements() {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(fmt.Sprintf("%d", value))
	}
	//
	builder.WriteString("]")
	//
	return builder.String()
}
