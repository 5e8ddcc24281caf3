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
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/CastorGo/internal/types"
)

func TestParseSANSingleMoves(t *testing.T) {
	tests := []struct {
		fen      string
		san      string
		expected Move
	}{
		{
			"rn1qkbnr/pp2pppp/2p5/3p4/4P1b1/2N2N1P/PPPP1PP1/R1BQKB1R b KQkq - 0 4",
			"Bxf3",
			Normal{Moving: BlackBishop, From: SqG4, Dest: SqF3, Capture: WhiteKnight},
		},
		{
			"r2qkbnr/pp1np1pp/2p5/3pPp2/8/2N2Q1P/PPPP1PP1/R1B1KB1R w KQkq f6 0 7",
			"exf6",
			Enpassant{Side: White, From: SqE5, Dest: SqF6, Capture: SqF5},
		},
		{
			"r2q1bnr/pp1nkPpp/2p1p3/3p4/8/2N2Q1P/PPPP1PP1/R1B1KB1R w KQ - 1 9",
			"fxg8=N",
			Promote{From: SqF7, Dest: SqG8, Promoted: WhiteKnight, Capture: BlackKnight},
		},
		{
			"r2q1bnr/pp1nkPpp/2p1p3/3p4/8/2N2Q1P/PPPP1PP1/R1B1KB1R w KQ - 1 9",
			"fxg8=Q",
			Promote{From: SqF7, Dest: SqG8, Promoted: WhiteQueen, Capture: BlackKnight},
		},
		{
			"r5r1/ppqkb1pp/2p1pn2/3p2B1/3P4/2NB1Q1P/PPP2PP1/4RRK1 b - - 8 14",
			"Rae8",
			Normal{Moving: BlackRook, From: SqA8, Dest: SqE8, Capture: PieceNone},
		},
		{
			"4rr2/ppqkb1p1/2p1p2p/3p4/3Pn2B/2NBRQ1P/PPP2PP1/4R1K1 w - - 2 18",
			"R1e2",
			Normal{Moving: WhiteRook, From: SqE1, Dest: SqE2, Capture: PieceNone},
		},
		{
			"5r2/ppqkb1p1/2p1pB1p/3p4/3Pn2P/2NBRr2/PPP1RPP1/6K1 b - - 0 20",
			"R3xf6",
			Normal{Moving: BlackRook, From: SqF3, Dest: SqF6, Capture: WhiteBishop},
		},
		{
			"5r2/ppqkb1p1/2p1pr1p/3p4/3Pn2P/2NBR3/PPP1RPP1/7K b - - 1 21",
			"Nxf2+",
			Normal{Moving: BlackKnight, From: SqE4, Dest: SqF2, Capture: WhitePawn},
		},
		{
			"5r2/ppqkb1p1/2p1p2p/3p4/P2P3P/2N1R3/1PP3P1/5B1K b - - 0 24",
			"Rf8xf1#",
			Normal{Moving: BlackRook, From: SqF8, Dest: SqF1, Capture: WhiteBishop},
		},
		{
			"r3k2r/pp1q1ppp/n1p2n2/4p3/3pP2P/3P1QP1/PPPN1PB1/R3K2R w KQkq - 1 13",
			"O-O",
			Castle{Corner: WhiteKingside},
		},
		{
			"r3k2r/pp1q1ppp/n1p2n2/4p3/3pP2P/3P1QP1/PPPN1PB1/R4RK1 b kq - 2 13",
			"O-O-O",
			Castle{Corner: BlackQueenside},
		},
		{
			"rnbq1rk1/p4pPp/2pbp3/8/3P4/8/Pp2BPPP/R1BQK1NR w KQ - 0 12",
			"gxf8=Q+",
			Promote{From: SqG7, Dest: SqF8, Promoted: WhiteQueen, Capture: BlackRook},
		},
		{
			"rnbq1Qk1/p4p1p/2pbp3/8/3P4/8/Pp2BPPP/R1BQK1NR b KQ - 0 12",
			"Qxf8",
			Normal{Moving: BlackQueen, From: SqD8, Dest: SqF8, Capture: WhiteQueen},
		},
	}
	for _, tt := range tests {
		b, err := NewFen(tt.fen)
		assert.NoError(t, err, tt.fen)
		mv, err := b.ParseSAN(tt.san)
		assert.NoError(t, err, "%s on %s", tt.san, tt.fen)
		assert.Equal(t, tt.expected, mv, "%s on %s", tt.san, tt.fen)
	}
}

func TestParseSANErrors(t *testing.T) {
	b := New()

	// unparseable token
	_, err := b.ParseSAN("xyz")
	assert.Error(t, err)

	// no legal move matches
	_, err = b.ParseSAN("Qd4")
	assert.Error(t, err)

	// castling not available
	_, err = b.ParseSAN("O-O")
	assert.Error(t, err)

	// ambiguous - both rooks can reach e2
	b, _ = NewFen("4rr2/ppqkb1p1/2p1p2p/3p4/3Pn2B/2NBRQ1P/PPP2PP1/4R1K1 w - - 2 18")
	_, err = b.ParseSAN("Re2")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestParseSANCheckMarkersIgnored(t *testing.T) {
	b, _ := NewFen("rn1qkbnr/pp2pppp/2p5/3p4/4P1b1/2N2N1P/PPPP1PP1/R1BQKB1R b KQkq - 0 4")
	m1, err1 := b.ParseSAN("Bxf3")
	m2, err2 := b.ParseSAN("Bxf3+")
	m3, err3 := b.ParseSAN("Bxf3#")
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.NoError(t, err3)
	assert.Equal(t, m1, m2)
	assert.Equal(t, m1, m3)
}

func TestParsePgnMovetext(t *testing.T) {
	b := New()
	moves, err := b.ParsePgn("1. e4 Nf6 2. Nf3 Rg8 3. Rg1 h6 4. e5 d5")
	assert.NoError(t, err)
	assert.Equal(t, 8, moves.Len())
	// the board itself is unchanged
	assert.Equal(t, StartFen, b.StringFen())
}

func TestPlayPgn(t *testing.T) {
	b := New()
	assert.NoError(t, b.PlayPgn("1. e4 Nf6 2. Nf3 Rg8 3. Rg1 h6 4. e5 d5"))
	assert.Equal(t, "rnbqkbr1/ppp1ppp1/5n1p/3pP3/8/5N2/PPPP1PPP/RNBQKBR1 w Qq d6 0 5", b.StringFen())

	b = New()
	assert.NoError(t, b.PlayPgn("1. e4 Nf6 2. Nf3 Rg8 3. Rg1 h6 4. e5 d5 5. Ke2 Kd7 6. Rh1"))
	assert.Equal(t, "rnbq1br1/pppkppp1/5n1p/3pP3/8/5N2/PPPPKPPP/RNBQ1B1R b - - 3 6", b.StringFen())
}

func TestPlayPgnWithTagsAndResult(t *testing.T) {
	pgn := `
		[Event "Test Match"]
		[Result "1/2-1/2"]

		1. d4 d5 2. c4 c6 3. Nf3 Nf6 4. e3 Bf5 1/2-1/2
	`
	b := New()
	assert.NoError(t, b.PlayPgn(pgn))
	assert.Equal(t, "rn1qkb1r/pp2pppp/2p2n2/3p1b2/2PP4/4PN2/PP3PPP/RNBQKB1R w KQkq - 1 5", b.StringFen())
}

func TestPlayPgnError(t *testing.T) {
	b := New()
	err := b.PlayPgn("1. e4 e5 2. Ke3")
	assert.Error(t, err, "the king cannot reach e3")
}
