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

package types

// PieceType is a set of constants for piece types in chess.
// The order reflects the conventional value order of the piece
// types which the static exchange evaluation relies on.
type PieceType uint8

// Constants for piece types
const (
	PtNone PieceType = iota // 0
	Pawn                    // 1
	Knight                  // 2
	Bishop                  // 3
	Rook                    // 4
	Queen                   // 5
	King                    // 6
)

// IsValid checks if pt is a valid piece type
func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt <= King
}

// IsSliding returns true for bishop, rook and queen
func (pt PieceType) IsSliding() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

// array of letters for piece types indexed by PieceType
var ptToString = "-PNBRQK"

// MakePieceTypeFromChar returns the piece type for the given
// upper case letter (PNBRQK) or PtNone
func MakePieceTypeFromChar(c byte) PieceType {
	for pt := Pawn; pt <= King; pt++ {
		if ptToString[pt] == c {
			return pt
		}
	}
	return PtNone
}

// String returns the upper case letter of the piece type
func (pt PieceType) String() string {
	return string(ptToString[pt])
}

// Char returns the lower case letter of the piece type as
// used in UCI promotion encoding
func (pt PieceType) Char() string {
	return string(ptToString[pt] + ('a' - 'A'))
}
