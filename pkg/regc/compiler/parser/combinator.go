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

// Parser is a function which attempts to match a prefix of the given input.
// On success, it returns the matched item along with the unconsumed remainder.
// On failure, it returns false and the input is considered untouched, such that
// the caller is free to try an alternative.
type Parser[T any] func(input []rune) (T, []rune, bool)

// Tag matches exactly the given string.
func Tag(tag string) Parser[string] {
	var chars = []rune(tag)
	//
	return func(input []rune) (string, []rune, bool) {
		if len(input) < len(chars) {
			return "", input, false
		}
		//
		for i, c := range chars {
			if input[i] != c {
				// fail
				return "", input, false
			}
		}
		//
		return tag, input[len(chars):], true
	}
}

// While matches the longest prefix of characters accepted by a given
// predicate, which must be at least atLeast characters long.
func While(atLeast int, accept func(rune) bool) Parser[string] {
	return func(input []rune) (string, []rune, bool) {
		var n = 0
		//
		for n < len(input) && accept(input[n]) {
			n++
		}
		//
		if n < atLeast {
			return "", input, false
		}
		//
		return string(input[:n]), input[n:], true
	}
}

// Space0 matches zero or more spaces or tabs.
func Space0(input []rune) (string, []rune, bool) {
	return While(0, isSpace)(input)
}

// Space1 matches one or more spaces or tabs.
func Space1(input []rune) (string, []rune, bool) {
	return While(1, isSpace)(input)
}

// Multispace0 matches zero or more spaces, tabs, carriage returns or line
// feeds.
func Multispace0(input []rune) (string, []rune, bool) {
	return While(0, isMultispace)(input)
}

// Alpha1 matches one or more ASCII letters.
func Alpha1(input []rune) (string, []rune, bool) {
	return While(1, isAlpha)(input)
}

// Alphanumeric0 matches zero or more ASCII letters or digits.
func Alphanumeric0(input []rune) (string, []rune, bool) {
	return While(0, func(c rune) bool { return isAlpha(c) || isDigit(c) })(input)
}

// Digit1 matches one or more ASCII digits.
func Digit1(input []rune) (string, []rune, bool) {
	return While(1, isDigit)(input)
}

// Opt makes a given parser optional.  This always succeeds, returning nil when
// the underlying parser did not match.
func Opt[T any](parser Parser[T]) Parser[*T] {
	return func(input []rune) (*T, []rune, bool) {
		if item, rest, ok := parser(input); ok {
			return &item, rest, true
		}
		//
		return nil, input, true
	}
}

// Many0 applies a given parser repeatedly until it fails, collecting zero or
// more items.  Matching stops early if the parser succeeds without consuming
// anything, since it would otherwise loop forever.
func Many0[T any](parser Parser[T]) Parser[[]T] {
	return func(input []rune) ([]T, []rune, bool) {
		var items []T
		//
		for {
			item, rest, ok := parser(input)
			//
			if !ok || len(rest) == len(input) {
				return items, input, true
			}
			//
			items = append(items, item)
			input = rest
		}
	}
}

// Many1 is like Many0, except that at least one item must be matched.
func Many1[T any](parser Parser[T]) Parser[[]T] {
	return func(input []rune) ([]T, []rune, bool) {
		items, rest, _ := Many0(parser)(input)
		//
		if len(items) == 0 {
			return nil, input, false
		}
		//
		return items, rest, true
	}
}

// Alt tries each of the given parsers in turn, returning the result of the
// first which matches.  Observe, therefore, there is an implicit left-to-right
// order of evaluation.
func Alt[T any](parsers ...Parser[T]) Parser[T] {
	return func(input []rune) (T, []rune, bool) {
		for _, parser := range parsers {
			if item, rest, ok := parser(input); ok {
				return item, rest, true
			}
		}
		// fail
		var empty T
		//
		return empty, input, false
	}
}

// Map transforms the item produced by a given parser.  The transformation may
// itself reject the item, in which case the parser fails.
func Map[S any, T any](parser Parser[S], fn func(S) (T, bool)) Parser[T] {
	return func(input []rune) (T, []rune, bool) {
		var empty T
		//
		if item, rest, ok := parser(input); !ok {
			return empty, input, false
		} else if mapped, ok := fn(item); ok {
			return mapped, rest, true
		}
		//
		return empty, input, false
	}
}

// Preceded matches a prefix followed by the given parser, discarding the
// prefix.
func Preceded[S any, T any](prefix Parser[S], parser Parser[T]) Parser[T] {
	return func(input []rune) (T, []rune, bool) {
		var empty T
		//
		if _, rest, ok := prefix(input); !ok {
			return empty, input, false
		} else if item, rest, ok := parser(rest); ok {
			return item, rest, true
		}
		//
		return empty, input, false
	}
}

// Terminated matches the given parser followed by a suffix, discarding the
// suffix.
func Terminated[T any, S any](parser Parser[T], suffix Parser[S]) Parser[T] {
	return func(input []rune) (T, []rune, bool) {
		var empty T
		//
		if item, rest, ok := parser(input); !ok {
			return empty, input, false
		} else if _, rest, ok := suffix(rest); ok {
			return item, rest, true
		}
		//
		return empty, input, false
	}
}

// Delimited matches the given parser surrounded by a prefix and suffix, both
// of which are discarded.
func Delimited[S any, T any, U any](prefix Parser[S], parser Parser[T], suffix Parser[U]) Parser[T] {
	return Preceded(prefix, Terminated(parser, suffix))
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t'
}

func isMultispace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isAlpha(c rune) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
