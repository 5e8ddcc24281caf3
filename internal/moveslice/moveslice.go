/*
 * CastorGo - a chess board representation and legal move generation library in GO
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package moveslice provides helper functionality for slices
// of type Move (chess moves).
package moveslice

import (
	"strings"

	. "github.com/frankkopp/CastorGo/internal/types"
)

// MoveSlice represents a data structure (go slice) for Move.
type MoveSlice []Move

// NewMoveSlice creates a new move slice with the given capacity
// and 0 elements.
// Is identical to MoveSlice(make([]Move, 0, cap))
func NewMoveSlice(cap int) MoveSlice {
	return make([]Move, 0, cap)
}

// Len returns the number of moves currently stored in the slice.
// Equivalent to len(ms)
func (ms MoveSlice) Len() int {
	return len(ms)
}

// PushBack appends an element at the end of the slice
func (ms *MoveSlice) PushBack(m Move) {
	*ms = append(*ms, m)
}

// At returns the move at index i
func (ms MoveSlice) At(i int) Move {
	return ms[i]
}

// Contains checks if the given move is in the slice.
// Move values are comparable so simple equality is used.
func (ms MoveSlice) Contains(m Move) bool {
	for _, mv := range ms {
		if mv == m {
			return true
		}
	}
	return false
}

// Filter returns a new slice with all moves for which the given
// predicate returned true
func (ms MoveSlice) Filter(keep func(m Move) bool) MoveSlice {
	dest := make([]Move, 0, len(ms))
	for _, mv := range ms {
		if keep(mv) {
			dest = append(dest, mv)
		}
	}
	return dest
}

// Clone returns a shallow copy of the slice
func (ms MoveSlice) Clone() MoveSlice {
	dest := make([]Move, len(ms))
	copy(dest, ms)
	return dest
}

// Equal checks if the slices contain the same moves ignoring
// the order of the moves
func (ms MoveSlice) Equal(other MoveSlice) bool {
	if len(ms) != len(other) {
		return false
	}
	for _, mv := range ms {
		if !other.Contains(mv) {
			return false
		}
	}
	return true
}

// StringUci returns a string with all moves of the slice
// in UCI notation separated by spaces
func (ms MoveSlice) StringUci() string {
	var os strings.Builder
	for i, m := range ms {
		if i > 0 {
			os.WriteString(" ")
		}
		os.WriteString(m.StringUci())
	}
	return os.String()
}

// String returns a string representation of the slice
func (ms MoveSlice) String() string {
	var os strings.Builder
	for i, m := range ms {
		if i > 0 {
			os.WriteString(", ")
		}
		os.WriteString(m.String())
	}
	return os.String()
}
