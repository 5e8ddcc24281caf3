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

// sqs is a small helper to build a bitboard from squares
func sqs(squares ...Square) Bitboard {
	b := BbZero
	for _, sq := range squares {
		b.PushSquare(sq)
	}
	return b
}

func TestBitboardBasics(t *testing.T) {
	assert.Equal(t, Bitboard(1), SqH1.Bb())
	assert.Equal(t, Bitboard(0x80), SqA1.Bb())
	assert.Equal(t, Bitboard(1)<<63, SqA8.Bb())

	b := BbZero
	b.PushSquare(SqE4)
	assert.True(t, b.Has(SqE4))
	assert.False(t, b.Has(SqE5))
	assert.Equal(t, 1, b.PopCount())
	b.PopSquare(SqE4)
	assert.Equal(t, BbZero, b)
}

func TestBitboardFileRankBb(t *testing.T) {
	assert.Equal(t, 8, FileA_Bb.PopCount())
	assert.True(t, FileA_Bb.Has(SqA1))
	assert.True(t, FileA_Bb.Has(SqA8))
	assert.False(t, FileA_Bb.Has(SqB4))
	assert.True(t, FileH_Bb.Has(SqH5))
	assert.True(t, Rank4_Bb.Has(SqE4))
	assert.False(t, Rank4_Bb.Has(SqE5))
	assert.Equal(t, FileC_Bb, FileC.Bb())
	assert.Equal(t, Rank7_Bb, Rank7.Bb())
}

func TestBitboardLsbPop(t *testing.T) {
	b := sqs(SqA1, SqE4, SqH8)
	// SqA1=7 < SqE4=27 < SqH8=56
	assert.Equal(t, SqA1, b.Lsb())
	assert.Equal(t, SqA1, b.PopLsb())
	assert.Equal(t, SqE4, b.PopLsb())
	assert.Equal(t, SqH8, b.PopLsb())
	assert.Equal(t, SqNone, b.PopLsb())
	assert.Equal(t, BbZero, b)
}

func TestBitboardLeastSetBit(t *testing.T) {
	b := sqs(SqE4, SqH8)
	assert.Equal(t, SqE4.Bb(), b.LeastSetBit())
	assert.Equal(t, BbZero, BbZero.LeastSetBit())
}

func TestCord(t *testing.T) {
	assert.Equal(t, sqs(SqH1, SqH2, SqH3), Cord(SqH1, SqH3))
	assert.Equal(t, sqs(SqH1, SqH2, SqH3), Cord(SqH3, SqH1))
	assert.Equal(t, sqs(SqC3, SqD3, SqE3, SqF3), Cord(SqC3, SqF3))
	assert.Equal(t, sqs(SqD5, SqE6, SqF7), Cord(SqD5, SqF7))
	assert.Equal(t, sqs(SqA8, SqB7), Cord(SqA8, SqB7))
	assert.Equal(t, sqs(SqB8, SqA8), Cord(SqB8, SqA8))
	assert.Equal(t, sqs(SqE1, SqE8), Cord(SqE1, SqE8)&(Rank1_Bb|Rank8_Bb))
	// not aligned
	assert.Equal(t, BbZero, Cord(SqA1, SqB3))
	assert.Equal(t, BbZero, Cord(SqE4, SqF6))
}

func TestPawnAttacks(t *testing.T) {
	assert.Equal(t, sqs(SqD5, SqF5), GetPawnAttacks(White, SqE4))
	assert.Equal(t, sqs(SqD3, SqF3), GetPawnAttacks(Black, SqE4))
	assert.Equal(t, sqs(SqB3), GetPawnAttacks(White, SqA2))
	assert.Equal(t, sqs(SqG6), GetPawnAttacks(Black, SqH7))
}

func TestPawnMoves(t *testing.T) {
	pawn := MakePiece(White, Pawn)
	// single and double push from the home rank
	assert.Equal(t, sqs(SqE3, SqE4), GetMoves(pawn, SqE2, BbZero, BbZero))
	// blocked directly
	assert.Equal(t, BbZero, GetMoves(pawn, SqE2, BbZero, sqs(SqE3)))
	// double push blocked
	assert.Equal(t, sqs(SqE3), GetMoves(pawn, SqE2, BbZero, sqs(SqE4)))
	// captures
	assert.Equal(t, sqs(SqE5, SqD5), GetMoves(pawn, SqE4, BbZero, sqs(SqD5)))
	// own piece is no capture target
	assert.Equal(t, sqs(SqE5), GetMoves(pawn, SqE4, sqs(SqD5), BbZero))

	blackPawn := MakePiece(Black, Pawn)
	assert.Equal(t, sqs(SqE6, SqE5), GetMoves(blackPawn, SqE7, BbZero, BbZero))
	assert.Equal(t, sqs(SqD4), GetMoves(blackPawn, SqE5, BbZero, sqs(SqE4, SqD4)))
}

func TestKnightKingAttacks(t *testing.T) {
	assert.Equal(t, sqs(SqA3, SqC3, SqD2), GetAttacksBb(Knight, SqB1, BbZero))
	assert.Equal(t, 8, GetAttacksBb(Knight, SqE4, BbZero).PopCount())
	assert.Equal(t, sqs(SqD1, SqD2, SqE2, SqF2, SqF1), GetAttacksBb(King, SqE1, BbZero))
	assert.Equal(t, 3, GetAttacksBb(King, SqA1, BbZero).PopCount())
}

func TestSliderAttacks(t *testing.T) {
	// rook on an empty board
	assert.Equal(t, (FileA_Bb|Rank1_Bb)&^SqA1.Bb(), GetAttacksBb(Rook, SqA1, BbZero))

	// rook with blockers - the blocker square is included
	expected := sqs(SqE5, SqE6, SqE3, SqE2, SqE1, SqF4, SqG4, SqH4, SqD4, SqC4, SqB4, SqA4)
	assert.Equal(t, expected, GetAttacksBb(Rook, SqE4, sqs(SqE6, SqE1)))

	// bishop in the corner
	assert.Equal(t, sqs(SqB2, SqC3, SqD4, SqE5, SqF6, SqG7, SqH8), GetAttacksBb(Bishop, SqA1, BbZero))

	// bishop with blocker
	assert.Equal(t, sqs(SqB2, SqC3), GetAttacksBb(Bishop, SqA1, sqs(SqC3)))

	// queen is the union of bishop and rook
	occ := sqs(SqE6, SqC3, SqG2)
	assert.Equal(t,
		GetAttacksBb(Rook, SqE4, occ)|GetAttacksBb(Bishop, SqE4, occ),
		GetAttacksBb(Queen, SqE4, occ))
}

func TestSliderAttacksAllOccupancies(t *testing.T) {
	// verify the magic lookup against the slow ray walk for a
	// sample of occupancies on every square
	s := uint64(99)
	rand64 := func() uint64 {
		s ^= s >> 12
		s ^= s << 25
		s ^= s >> 27
		return s * 2685821657736338717
	}
	for sq := SqH1; sq < SqNone; sq++ {
		for i := 0; i < 100; i++ {
			occ := Bitboard(rand64() & rand64())
			assert.Equal(t, slidingAttack(&rookDirections, sq, occ), GetAttacksBb(Rook, sq, occ),
				"rook on %s occ %s", sq.String(), occ.String())
			assert.Equal(t, slidingAttack(&bishopDirections, sq, occ), GetAttacksBb(Bishop, sq, occ),
				"bishop on %s occ %s", sq.String(), occ.String())
		}
	}
}

func TestGetMovesRemovesOwnPieces(t *testing.T) {
	rook := MakePiece(White, Rook)
	own := sqs(SqE6)
	opp := sqs(SqE2)
	moves := GetMoves(rook, SqE4, own, opp)
	assert.False(t, moves.Has(SqE6), "own piece square must not be a move target")
	assert.True(t, moves.Has(SqE5))
	assert.True(t, moves.Has(SqE2), "opposing piece can be captured")
	assert.False(t, moves.Has(SqE1), "squares behind a blocker are not reachable")
}
