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
	"testing"

	"github.com/consensys/go-regc/pkg/util/assert"
)

func Test_Tag_01(t *testing.T) {
	item, rest, ok := Tag("fn")([]rune("fn x"))
	//
	assert.True(t, ok)
	assert.Equal(t, "fn", item)
	assert.Equal(t, " x", string(rest))
}

func Test_Tag_02(t *testing.T) {
	for _, input := range []string{"", "f", "fx", " fn"} {
		_, rest, ok := Tag("fn")([]rune(input))
		//
		assert.False(t, ok, "matched %q", input)
		assert.Equal(t, input, string(rest))
	}
}

func Test_While_01(t *testing.T) {
	_, rest, ok := Space1([]rune("x"))
	assert.False(t, ok)
	assert.Equal(t, "x", string(rest))
	//
	item, rest, ok := Space0([]rune("x"))
	assert.True(t, ok)
	assert.Equal(t, "", item)
	assert.Equal(t, "x", string(rest))
	//
	item, rest, ok = Multispace0([]rune(" \t\r\nx"))
	assert.True(t, ok)
	assert.Equal(t, " \t\r\n", item)
	assert.Equal(t, "x", string(rest))
	// Line breaks are not plain spaces
	item, _, _ = Space0([]rune(" \nx"))
	assert.Equal(t, " ", item)
}

func Test_Opt_01(t *testing.T) {
	item, rest, ok := Opt(Tag("-"))([]rune("-1"))
	assert.True(t, ok)
	assert.True(t, item != nil && *item == "-")
	assert.Equal(t, "1", string(rest))
	//
	item, rest, ok = Opt(Tag("-"))([]rune("1"))
	assert.True(t, ok)
	assert.True(t, item == nil)
	assert.Equal(t, "1", string(rest))
}

func Test_Many_01(t *testing.T) {
	items, rest, ok := Many0(Tag("a"))([]rune("aaab"))
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "a", "a"}, items)
	assert.Equal(t, "b", string(rest))
	//
	_, rest, ok = Many1(Tag("a"))([]rune("bbb"))
	assert.False(t, ok)
	assert.Equal(t, "bbb", string(rest))
}

func Test_Many_02(t *testing.T) {
	// Parser which never consumes must not loop forever
	items, rest, ok := Many0(Space0)([]rune("x"))
	assert.True(t, ok)
	assert.Equal(t, 0, len(items))
	assert.Equal(t, "x", string(rest))
}

func Test_Alt_01(t *testing.T) {
	parser := Alt(Tag("ab"), Tag("a"))
	//
	item, rest, ok := parser([]rune("abc"))
	assert.True(t, ok)
	assert.Equal(t, "ab", item)
	assert.Equal(t, "c", string(rest))
	//
	item, _, ok = parser([]rune("ac"))
	assert.True(t, ok)
	assert.Equal(t, "a", item)
	//
	_, rest, ok = parser([]rune("c"))
	assert.False(t, ok)
	assert.Equal(t, "c", string(rest))
}

func Test_Delimited_01(t *testing.T) {
	parser := Delimited(Tag("("), Alpha1, Tag(")"))
	//
	item, rest, ok := parser([]rune("(abc);"))
	assert.True(t, ok)
	assert.Equal(t, "abc", item)
	assert.Equal(t, ";", string(rest))
	// No input consumed on failure
	_, rest, ok = parser([]rune("(abc;"))
	assert.False(t, ok)
	assert.Equal(t, "(abc;", string(rest))
}

func Test_Map_01(t *testing.T) {
	parser := Map(Digit1, func(s string) (int, bool) { return len(s), len(s) < 3 })
	//
	item, _, ok := parser([]rune("12x"))
	assert.True(t, ok)
	assert.Equal(t, 2, item)
	//
	_, rest, ok := parser([]rune("123"))
	assert.False(t, ok)
	assert.Equal(t, "123", string(rest))
}
