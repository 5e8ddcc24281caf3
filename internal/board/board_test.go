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

package board

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/CastorGo/internal/config"
	myLogging "github.com/frankkopp/CastorGo/internal/logging"
	. "github.com/frankkopp/CastorGo/internal/types"
)

// Setup the tests
func TestMain(m *testing.M) {
	config.Setup()
	log = myLogging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestBoardCreation(t *testing.T) {
	b := New()
	assert.Equal(t, SqA1.Bb()|SqH1.Bb()|SqA8.Bb()|SqH8.Bb(), b.PiecesBb(White, Rook)|b.PiecesBb(Black, Rook))
	assert.Equal(t, SqB1.Bb()|SqG1.Bb()|SqB8.Bb()|SqG8.Bb(), b.PiecesBb(White, Knight)|b.PiecesBb(Black, Knight))
	assert.Equal(t, SqC1.Bb()|SqF1.Bb()|SqC8.Bb()|SqF8.Bb(), b.PiecesBb(White, Bishop)|b.PiecesBb(Black, Bishop))
	assert.Equal(t, SqD1.Bb()|SqD8.Bb(), b.PiecesBb(White, Queen)|b.PiecesBb(Black, Queen))
	assert.Equal(t, SqE1.Bb()|SqE8.Bb(), b.PiecesBb(White, King)|b.PiecesBb(Black, King))
	assert.Equal(t, Rank2_Bb|Rank7_Bb, b.PiecesBb(White, Pawn)|b.PiecesBb(Black, Pawn))
	assert.Equal(t, White, b.Active())
	assert.Equal(t, CastlingAny, b.CastlingRights())
	assert.Equal(t, SqNone, b.EnPassant())
	assert.Equal(t, 0, b.HalfMoveClock())
	assert.Equal(t, SqE1, b.KingSquare(White))
	assert.Equal(t, SqE8, b.KingSquare(Black))
	assert.Equal(t, 1, b.PositionCount())
	assert.Equal(t, StartFen, b.StringFen())
	assert.False(t, b.InCheck())
}

func TestBoardPositionsInvariants(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14",
		"r1br2k1/1pq1npb1/p2pp1pp/8/2PNP3/P1N5/1P1QBPPP/3R1RK1 w - - 3 19",
	}
	for _, fen := range fens {
		b, err := NewFen(fen)
		assert.NoError(t, err)

		// side boards are the union of the class boards
		for c := White; c <= Black; c++ {
			union := BbZero
			for pt := Pawn; pt <= King; pt++ {
				union |= b.PiecesBb(c, pt)
			}
			assert.Equal(t, b.OccupiedBb(c), union)
		}
		// no square holds two pieces
		assert.Equal(t, BbZero, b.OccupiedBb(White)&b.OccupiedBb(Black))
		// square map agrees with the bitboards
		for sq := SqH1; sq < SqNone; sq++ {
			piece := b.PieceOn(sq)
			if piece == PieceNone {
				assert.False(t, b.OccupiedAll().Has(sq))
			} else {
				assert.True(t, b.PiecesBb(piece.ColorOf(), piece.TypeOf()).Has(sq))
			}
		}
		// exactly one king per side
		assert.Equal(t, 1, b.PiecesBb(White, King).PopCount())
		assert.Equal(t, 1, b.PiecesBb(Black, King).PopCount())
	}
}

func TestBoardHashIncremental(t *testing.T) {
	b := New()
	assert.Equal(t, b.pieces.recomputeHash(), b.pieces.hash)

	moves, err := b.ParseUciMoves("e2e4 c7c5 g1f3 d7d6 f1b5 c8d7 e1g1")
	assert.NoError(t, err)
	for _, m := range moves {
		b.DoMove(m)
		assert.Equal(t, b.pieces.recomputeHash(), b.pieces.hash, "after %s", m.StringUci())
	}
	for range moves {
		_, err := b.UndoMove()
		assert.NoError(t, err)
		assert.Equal(t, b.pieces.recomputeHash(), b.pieces.hash)
	}
}

func TestBoardHashComponents(t *testing.T) {
	b := New()
	startHash := b.Hash()

	// different position - different hash
	mv, err := b.ParseUci("e2e4")
	assert.NoError(t, err)
	b.DoMove(mv)
	assert.NotEqual(t, startHash, b.Hash())

	// a transposition back to the start position has the same hash
	b = New()
	assert.NoError(t, b.PlayPgn("1. Nf3 Nf6 2. Ng1 Ng8"))
	assert.Equal(t, startHash, b.Hash())

	// en passant file and side to move are part of the hash
	b1, _ := NewFen("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	b2, _ := NewFen("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	assert.NotEqual(t, b1.Hash(), b2.Hash())
	b3, _ := NewFen("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2")
	assert.NotEqual(t, b2.Hash(), b3.Hash())

	// castling rights are part of the hash
	b4, _ := NewFen("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w Qkq - 0 2")
	assert.NotEqual(t, b2.Hash(), b4.Hash())
}

func TestBoardRepetition(t *testing.T) {
	b := New()
	assert.Equal(t, 1, b.RepetitionCount())

	assert.NoError(t, b.PlayPgn("1. Nf3 Nf6 2. Ng1 Ng8"))
	assert.Equal(t, 2, b.RepetitionCount())

	assert.NoError(t, b.PlayPgn("3. Nf3 Nf6 4. Ng1 Ng8"))
	assert.Equal(t, 3, b.RepetitionCount())

	// the historical hashes are reported in chronological order
	var hashes []Key
	b.HistoricalPositions(func(k Key) bool {
		hashes = append(hashes, k)
		return true
	})
	assert.Equal(t, b.PositionCount(), len(hashes))
	assert.Equal(t, b.Hash(), hashes[len(hashes)-1])
	assert.Equal(t, hashes[0], hashes[len(hashes)-1])
}

func TestBoardPositionCount(t *testing.T) {
	b := New()
	assert.Equal(t, 1, b.PositionCount())
	assert.NoError(t, b.PlayPgn("1. e4 e5"))
	assert.Equal(t, 3, b.PositionCount())

	b, _ = NewFen("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14")
	// emitting the fen reproduces the move number
	assert.Equal(t, "14", b.StringFenParts(FenMoveCount))
}

func TestBoardCopy(t *testing.T) {
	b := New()
	assert.NoError(t, b.PlayPgn("1. e4 e5 2. Nf3"))
	c := b.Copy()
	assert.Equal(t, b.StringFen(), c.StringFen())
	assert.Equal(t, b.Hash(), c.Hash())
	assert.Equal(t, b.PositionCount(), c.PositionCount())

	// further moves on the copy do not affect the original
	mv, err := c.ParseSAN("Nc6")
	assert.NoError(t, err)
	c.DoMove(mv)
	assert.NotEqual(t, b.StringFen(), c.StringFen())

	// undo on the copy works through the copied history
	_, err = c.UndoMove()
	assert.NoError(t, err)
	assert.Equal(t, b.StringFen(), c.StringFen())
	assert.Equal(t, b.Hash(), c.Hash())
}

func TestBoardInCheck(t *testing.T) {
	b, _ := NewFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.True(t, b.InCheck())

	b, _ = NewFen("rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2")
	assert.False(t, b.InCheck())
}

func TestBoardReflect(t *testing.T) {
	b, _ := NewFen("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14")
	r := b.Reflect()
	assert.Equal(t, White, r.Active())
	assert.Equal(t, CastlingWhite, r.CastlingRights())
	assert.Equal(t, SqE6, r.EnPassant())
	assert.Equal(t, b.PieceOn(SqE5).Flip(), r.PieceOn(SqE4))
	// reflection is its own inverse
	assert.Equal(t, b.StringFen(), r.Reflect().StringFen())
}
