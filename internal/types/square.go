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

// Square represents exactly one square on a chess board.
// The index convention is H1=0, G1=1, ..., A1=7, H2=8, ..., A8=63.
// Within a rank the order of the squares is H to A.
type Square uint8

//noinspection GoUnusedConst
const (
	SqH1 Square = iota // 0
	SqG1               // 1
	SqF1               // 2
	SqE1
	SqD1
	SqC1
	SqB1
	SqA1
	SqH2
	SqG2
	SqF2
	SqE2
	SqD2
	SqC2
	SqB2
	SqA2
	SqH3
	SqG3
	SqF3
	SqE3
	SqD3
	SqC3
	SqB3
	SqA3
	SqH4
	SqG4
	SqF4
	SqE4
	SqD4
	SqC4
	SqB4
	SqA4
	SqH5
	SqG5
	SqF5
	SqE5
	SqD5
	SqC5
	SqB5
	SqA5
	SqH6
	SqG6
	SqF6
	SqE6
	SqD6
	SqC6
	SqB6
	SqA6
	SqH7
	SqG7
	SqF7
	SqE7
	SqD7
	SqC7
	SqB7
	SqA7
	SqH8
	SqG8
	SqF8
	SqE8
	SqD8
	SqC8
	SqB8
	SqA8   // 63
	SqNone // 64
)

// IsValid checks a value of type square if it represents a valid
// square on a chess board (e.g. sq < 64).
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of the square
func (sq Square) FileOf() File {
	return File(7 - (sq & 7))
}

// RankOf returns the rank of the square
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// Flip returns the square reflected on the horizontal middle
// axis of the board - rank 1 becomes rank 8 etc. while the
// file is preserved.
func (sq Square) Flip() Square {
	return sq ^ 56
}

// SquareOf returns a square from file and rank
// Returns SqNone for invalid files or ranks
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square((int(r) << 3) + 7 - int(f))
}

// MakeSquare returns a square based on the string given or SqNone if
// no valid square could be read from the string
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	file := MakeFile(s[0])
	rank := MakeRank(s[1])
	if !file.IsValid() || !rank.IsValid() {
		return SqNone
	}
	return SquareOf(file, rank)
}

// To returns the square on the chess board in the given ray direction
// or SqNone when the board edge is crossed
func (sq Square) To(d Direction) Square {
	if !sq.IsValid() {
		return SqNone
	}
	// order: North, East, South, West, Northeast, Southeast, Southwest, Northwest
	switch d {
	case North:
		return sqTo[sq][0]
	case East:
		return sqTo[sq][1]
	case South:
		return sqTo[sq][2]
	case West:
		return sqTo[sq][3]
	case Northeast:
		return sqTo[sq][4]
	case Southeast:
		return sqTo[sq][5]
	case Southwest:
		return sqTo[sq][6]
	case Northwest:
		return sqTo[sq][7]
	default:
		return sq.toPreCompute(d)
	}
}

// String returns a string of the file letter and rank number (e.g. e5)
// if the sq is not a valid square returns "-"
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// FileDistance returns the absolute distance in squares between two files
func FileDistance(f1 File, f2 File) int {
	if int(f2) > int(f1) {
		return int(f2) - int(f1)
	}
	return int(f1) - int(f2)
}

// RankDistance returns the absolute distance in squares between two ranks
func RankDistance(r1 Rank, r2 Rank) int {
	if int(r2) > int(r1) {
		return int(r2) - int(r1)
	}
	return int(r1) - int(r2)
}

// SquareDistance returns the absolute distance in king moves
// between two squares
func SquareDistance(s1 Square, s2 Square) int {
	if !s1.IsValid() || !s2.IsValid() || s1 == s2 {
		return 0
	}
	fd := FileDistance(s1.FileOf(), s2.FileOf())
	rd := RankDistance(s1.RankOf(), s2.RankOf())
	if fd > rd {
		return fd
	}
	return rd
}

// ///////////////////////////////////////
// Initialization
// ///////////////////////////////////////

var sqTo [SqLength][8]Square

func initSquares() {
	for sq := SqH1; sq < SqNone; sq++ {
		for i, dir := range Directions {
			sqTo[sq][i] = sq.toPreCompute(dir)
		}
	}
}

// toPreCompute determines the target square in the given direction
// including knight jumps. Wrap arounds over the board edges are
// detected via the file distance of origin and target.
func (sq Square) toPreCompute(d Direction) Square {
	if !sq.IsValid() {
		return SqNone
	}
	to := int(sq) + int(d)
	if to < 0 || to > 63 {
		return SqNone
	}
	if FileDistance(sq.FileOf(), Square(to).FileOf()) > 2 {
		return SqNone
	}
	return Square(to)
}
