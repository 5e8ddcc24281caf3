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

func TestParseUci(t *testing.T) {
	b := New()
	mv, err := b.ParseUci("e2e4")
	assert.NoError(t, err)
	assert.Equal(t, Move(Normal{Moving: WhitePawn, From: SqE2, Dest: SqE4, Capture: PieceNone}), mv)

	// promotion
	b, _ = NewFen("5rk1/5pPp/8/8/8/8/8/4K3 w - - 0 11")
	mv, err = b.ParseUci("g7f8q")
	assert.NoError(t, err)
	assert.Equal(t, Move(Promote{From: SqG7, Dest: SqF8, Promoted: WhiteQueen, Capture: BlackRook}), mv)

	// castling is encoded as the king move
	b, _ = NewFen("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	mv, err = b.ParseUci("e1g1")
	assert.NoError(t, err)
	assert.Equal(t, Move(Castle{Corner: WhiteKingside}), mv)
	mv, err = b.ParseUci("e1c1")
	assert.NoError(t, err)
	assert.Equal(t, Move(Castle{Corner: WhiteQueenside}), mv)

	// en passant
	b, _ = NewFen("8/1p3B2/1n6/p3Pkp1/3P1pPp/1K3P1P/8/8 b - g3 0 41")
	mv, err = b.ParseUci("f4g3")
	assert.NoError(t, err)
	assert.Equal(t, Move(Enpassant{Side: Black, From: SqF4, Dest: SqG3, Capture: SqG4}), mv)
}

func TestParseUciErrors(t *testing.T) {
	b := New()

	// malformed tokens
	for _, token := range []string{"", "e2", "e2e9", "i2i4", "e2e4x", "00", "e7e8q1"} {
		_, err := b.ParseUci(token)
		assert.Error(t, err, "expected error for %q", token)
	}

	// legal form but no legal move
	_, err := b.ParseUci("e2e5")
	assert.Error(t, err)
	_, err = b.ParseUci("e1g1")
	assert.Error(t, err)

	// promotion char on a non promotion move
	_, err = b.ParseUci("e2e4q")
	assert.Error(t, err)
}

func TestParseUciRoundTrip(t *testing.T) {
	// parse_uci(m.uci_format()) == m for every generated move
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"5rk1/5pPp/8/8/8/8/8/4K3 w - - 0 11",
		"8/1p3B2/1n6/p3Pkp1/3P1pPp/1K3P1P/8/8 b - g3 0 41",
		"r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14",
	}
	for _, fen := range fens {
		b, err := NewFen(fen)
		assert.NoError(t, err)
		for _, m := range b.GenerateMoves(GenAll) {
			parsed, err := b.ParseUci(m.StringUci())
			assert.NoError(t, err, "%s in %s", m.StringUci(), fen)
			assert.Equal(t, m, parsed, "%s in %s", m.StringUci(), fen)
		}
	}
}

func TestParseUciMoves(t *testing.T) {
	b := New()
	moves, err := b.ParseUciMoves("e2e4 e7e5 g1f3 b8c6 f1b5 a7a6")
	assert.NoError(t, err)
	assert.Equal(t, 6, moves.Len())
	// the board itself is unchanged
	assert.Equal(t, StartFen, b.StringFen())

	// applying the moves yields the expected position
	for _, m := range moves {
		b.DoMove(m)
	}
	assert.Equal(t, "r1bqkbnr/1ppp1ppp/p1n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 4", b.StringFen())

	_, err = b.ParseUciMoves("e1g1 h7h6 a2a3")
	assert.NoError(t, err)

	_, err = b.ParseUciMoves("e2e4")
	assert.Error(t, err, "e2 is empty by now")
}
