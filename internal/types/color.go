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

// Color represents constants for each chess color White and Black
type Color uint8

// Constants for each color
const (
	White Color = 0
	Black Color = 1
)

// Flip returns the opposite color
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid checks if f represents a valid color
func (c Color) IsValid() bool {
	return c < 2
}

// PawnDir returns the direction of pawn moves for the color
func (c Color) PawnDir() Direction {
	if c == White {
		return North
	}
	return South
}

// PawnHomeRank returns a Bb of the rank the color's pawns start
// the game on (rank 2 resp. rank 7)
func (c Color) PawnHomeRank() Bitboard {
	if c == White {
		return Rank2_Bb
	}
	return Rank7_Bb
}

// PawnDoubleRank returns a Bb of the rank a pawn of the color
// reaches with its double step move (rank 4 resp. rank 5)
func (c Color) PawnDoubleRank() Bitboard {
	if c == White {
		return Rank4_Bb
	}
	return Rank5_Bb
}

// PromotionFromRank returns a Bb of the rank the color's pawns
// promote from (rank 7 resp. rank 2)
func (c Color) PromotionFromRank() Bitboard {
	if c == White {
		return Rank7_Bb
	}
	return Rank2_Bb
}

// PromotionRank returns a Bb of the rank the color's pawns
// promote on (rank 8 resp. rank 1)
func (c Color) PromotionRank() Bitboard {
	if c == White {
		return Rank8_Bb
	}
	return Rank1_Bb
}

// String returns a string representation of color as "w" or "b"
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	}
	panic("Invalid color")
}
