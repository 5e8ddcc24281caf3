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
	"errors"

	"github.com/frankkopp/CastorGo/internal/assert"
	. "github.com/frankkopp/CastorGo/internal/types"
)

// ErrEmptyHistory is returned by UndoMove when no move has been
// made on the board
var ErrEmptyHistory = errors.New("undo move: history is empty")

// DoMove commits a move to the board. The caller is contractually
// required to pass a move which is legal in the current position -
// the behavior for illegal moves is undefined. Moves produced by
// GenerateMoves for the current position are always legal.
func (b *Board) DoMove(m Move) {
	if assert.DEBUG {
		assert.Assert(m != nil, "DoMove: move is nil")
		assert.Assert(m.MovingSide() == b.active, "DoMove: move %s of side %s on board with %s to move",
			m.String(), m.MovingSide().String(), b.active.String())
		assert.Assert(b.GenerateMoves(GenAll).Contains(m), "DoMove: illegal move %s on %s", m.String(), b.StringFen())
	}

	// preserve the state which the move destroys
	b.history = append(b.history, frame{
		move:      m,
		rights:    b.rights,
		enPassant: b.enPassant,
		clock:     b.halfMoveClock,
		hash:      b.Hash(),
	})

	switch mv := m.(type) {
	case Normal:
		b.doNormal(mv)
	case Castle:
		b.doCastle(mv)
	case Enpassant:
		b.doEnpassant(mv)
	case Promote:
		b.doPromote(mv)
	}

	b.active = b.active.Flip()
	b.cache.clear()
}

func (b *Board) doNormal(m Normal) {
	b.pieces.removePiece(m.From)
	if m.Capture != PieceNone {
		b.pieces.removePiece(m.Dest)
	}
	b.pieces.putPiece(m.Moving, m.Dest)
	// a king or rook leaving its home square or a capture landing
	// on a rook home square strips the rights passing through it
	b.rights.RemoveAll(GetCastlingRights(m.From) | GetCastlingRights(m.Dest))
	b.enPassant = computeEnPassant(m.From, m.Dest, m.Moving)
	if m.Capture != PieceNone || m.Moving.TypeOf() == Pawn {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}
}

func (b *Board) doCastle(m Castle) {
	kingFrom, kingTo := m.Corner.KingCastleSquares()
	rookFrom, rookTo := m.Corner.RookCastleSquares()
	b.pieces.movePiece(kingFrom, kingTo)
	b.pieces.movePiece(rookFrom, rookTo)
	if m.Corner.ColorOf() == White {
		b.rights.RemoveAll(CastlingWhite)
	} else {
		b.rights.RemoveAll(CastlingBlack)
	}
	b.enPassant = SqNone
	b.halfMoveClock++
}

func (b *Board) doEnpassant(m Enpassant) {
	b.pieces.movePiece(m.From, m.Dest)
	b.pieces.removePiece(m.Capture)
	b.enPassant = SqNone
	b.halfMoveClock = 0
}

func (b *Board) doPromote(m Promote) {
	b.pieces.removePiece(m.From)
	if m.Capture != PieceNone {
		b.pieces.removePiece(m.Dest)
	}
	b.pieces.putPiece(m.Promoted, m.Dest)
	// a capture on a rook home square still strips that right
	b.rights.RemoveAll(GetCastlingRights(m.From) | GetCastlingRights(m.Dest))
	b.enPassant = SqNone
	b.halfMoveClock = 0
}

// UndoMove resets the board to the state before the last move was
// made restoring rights, en passant target, half move clock, hash
// and active side bit for bit. It returns the move which has been
// taken back or ErrEmptyHistory if no move had been made.
func (b *Board) UndoMove() (Move, error) {
	if len(b.history) == 0 {
		return nil, ErrEmptyHistory
	}
	last := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	switch mv := last.move.(type) {
	case Normal:
		b.pieces.movePiece(mv.Dest, mv.From)
		if mv.Capture != PieceNone {
			b.pieces.putPiece(mv.Capture, mv.Dest)
		}
	case Castle:
		kingFrom, kingTo := mv.Corner.KingCastleSquares()
		rookFrom, rookTo := mv.Corner.RookCastleSquares()
		b.pieces.movePiece(kingTo, kingFrom)
		b.pieces.movePiece(rookTo, rookFrom)
	case Enpassant:
		b.pieces.movePiece(mv.Dest, mv.From)
		b.pieces.putPiece(MakePiece(mv.Side.Flip(), Pawn), mv.Capture)
	case Promote:
		b.pieces.removePiece(mv.Dest)
		b.pieces.putPiece(MakePiece(mv.Promoted.ColorOf(), Pawn), mv.From)
		if mv.Capture != PieceNone {
			b.pieces.putPiece(mv.Capture, mv.Dest)
		}
	}

	b.rights = last.rights
	b.enPassant = last.enPassant
	b.halfMoveClock = last.clock
	b.active = b.active.Flip()
	b.cache.clear()
	return last.move, nil
}

// computeEnPassant determines the en passant target square for the
// next board state: the square passed over by a pawn double push.
func computeEnPassant(from Square, dest Square, piece Piece) Square {
	if piece.TypeOf() != Pawn {
		return SqNone
	}
	side := piece.ColorOf()
	if side.PawnHomeRank().Has(from) && side.PawnDoubleRank().Has(dest) {
		return from.To(side.PawnDir())
	}
	return SqNone
}
