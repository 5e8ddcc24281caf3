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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareConvention(t *testing.T) {
	assert.Equal(t, Square(0), SqH1)
	assert.Equal(t, Square(1), SqG1)
	assert.Equal(t, Square(7), SqA1)
	assert.Equal(t, Square(8), SqH2)
	assert.Equal(t, Square(56), SqH8)
	assert.Equal(t, Square(63), SqA8)
	assert.Equal(t, Square(64), SqNone)
}

func TestSquareFileRank(t *testing.T) {
	tests := []struct {
		sq   Square
		file File
		rank Rank
	}{
		{SqH1, FileH, Rank1},
		{SqA1, FileA, Rank1},
		{SqE4, FileE, Rank4},
		{SqD5, FileD, Rank5},
		{SqA8, FileA, Rank8},
		{SqH8, FileH, Rank8},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.file, tt.sq.FileOf(), "file of %s", tt.sq.String())
		assert.Equal(t, tt.rank, tt.sq.RankOf(), "rank of %s", tt.sq.String())
		assert.Equal(t, tt.sq, SquareOf(tt.file, tt.rank))
	}
}

func TestMakeSquare(t *testing.T) {
	assert.Equal(t, SqA1, MakeSquare("a1"))
	assert.Equal(t, SqH8, MakeSquare("h8"))
	assert.Equal(t, SqE4, MakeSquare("e4"))
	assert.Equal(t, SqNone, MakeSquare("i1"))
	assert.Equal(t, SqNone, MakeSquare("a9"))
	assert.Equal(t, SqNone, MakeSquare("aa1"))
	assert.Equal(t, SqNone, MakeSquare(""))
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "e4", SqE4.String())
	assert.Equal(t, "a1", SqA1.String())
	assert.Equal(t, "h8", SqH8.String())
	assert.Equal(t, "-", SqNone.String())
}

func TestSquareFlip(t *testing.T) {
	assert.Equal(t, SqE7, SqE2.Flip())
	assert.Equal(t, SqA8, SqA1.Flip())
	assert.Equal(t, SqH1, SqH8.Flip())
	assert.Equal(t, SqD4, SqD5.Flip())
	for sq := SqH1; sq < SqNone; sq++ {
		assert.Equal(t, sq, sq.Flip().Flip())
		assert.Equal(t, sq.FileOf(), sq.Flip().FileOf())
	}
}

func TestSquareTo(t *testing.T) {
	assert.Equal(t, SqE5, SqE4.To(North))
	assert.Equal(t, SqE3, SqE4.To(South))
	assert.Equal(t, SqF4, SqE4.To(East))
	assert.Equal(t, SqD4, SqE4.To(West))
	assert.Equal(t, SqF5, SqE4.To(Northeast))
	assert.Equal(t, SqD3, SqE4.To(Southwest))

	// board edges
	assert.Equal(t, SqNone, SqA4.To(West))
	assert.Equal(t, SqNone, SqH4.To(East))
	assert.Equal(t, SqNone, SqE8.To(North))
	assert.Equal(t, SqNone, SqE1.To(South))
	assert.Equal(t, SqNone, SqA1.To(Southwest))
	assert.Equal(t, SqNone, SqH8.To(Northeast))

	// knight jumps
	assert.Equal(t, SqF6, SqE4.To(NNE))
	assert.Equal(t, SqD6, SqE4.To(NNW))
	assert.Equal(t, SqG5, SqE4.To(ENE))
	assert.Equal(t, SqC3, SqE4.To(WSW))
	assert.Equal(t, SqNone, SqG1.To(ENE).To(ENE))
	assert.Equal(t, SqNone, SqA1.To(SSW))
}

func TestSquareDistance(t *testing.T) {
	assert.Equal(t, 0, SquareDistance(SqE4, SqE4))
	assert.Equal(t, 1, SquareDistance(SqE4, SqE5))
	assert.Equal(t, 7, SquareDistance(SqA1, SqH8))
	assert.Equal(t, 4, SquareDistance(SqE4, SqA4))
}
