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

// Package types contains the foundational data types and pre-computed
// tables for the chess board representation: squares, files, ranks,
// directions, colors, pieces, bitboards, the attack tables for all piece
// types (magic bitboards for the sliders) and the move types.
//
// All tables are computed once on package initialization and are
// immutable afterwards. Readers therefore need no synchronization.
package types

// Various constants describing the data types' value ranges
const (
	// SqLength number of squares on a chess board
	SqLength int = 64
	// ColorLength number of colors (sides)
	ColorLength int = 2
	// PtLength number of piece types incl. the none type
	PtLength int = 7
	// MaxMoves the maximum number of moves in a chess position
	// which seems to be feasible
	MaxMoves int = 256
)

// initialization of all pre computed data structures of the
// types package. Order is relevant.
func init() {
	initSquares()
	initBb()
	initMagicBitboards()
	initAttacks()
	initCords()
}
