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
	"github.com/frankkopp/CastorGo/internal/moveslice"
	. "github.com/frankkopp/CastorGo/internal/types"
)

// promotion targets in the order the moves are emitted
var promotionTargets = [4]PieceType{Queen, Rook, Bishop, Knight}

// GenerateMoves returns the legal moves of the position for the
// given generation mode as an unordered list. The result for mode
// GenAll is cached until the next mutation of the board. Callers
// must not modify the returned slice.
func (b *Board) GenerateMoves(mode GenMode) moveslice.MoveSlice {
	if mode == GenAll && b.cache.movesAll != nil {
		return b.cache.movesAll
	}
	constraints := b.constraints(mode)
	moves := moveslice.NewMoveSlice(64)
	b.generatePawnMoves(constraints, &moves)
	b.generatePieceMoves(constraints, &moves)
	if mode == GenAll {
		b.generateCastling(constraints, &moves)
		b.cache.movesAll = moves
	}
	return moves
}

// HasLegalMoves returns true when the active side has at least one
// legal move. Together with InCheck this distinguishes checkmate
// from stalemate.
func (b *Board) HasLegalMoves() bool {
	return len(b.GenerateMoves(GenAll)) > 0
}

// generatePawnMoves emits all legal pawn moves. The active pawns are
// partitioned into pawns with only standard moves, pawns which can
// capture en passant and pawns on the promotion rank.
func (b *Board) generatePawnMoves(constraints *moveConstraints, moves *moveslice.MoveSlice) {
	pawn := MakePiece(b.active, Pawn)
	own := b.pieces.occupiedBb[b.active]
	opp := b.pieces.occupiedBb[b.active.Flip()]
	pawns := b.pieces.piecesBb[b.active][Pawn]

	epSources := b.enPassantSources() & pawns
	promoting := pawns & b.active.PromotionFromRank()

	// standard moves - pawns which can capture en passant have
	// their standard moves as well
	for locs := pawns &^ promoting; locs != BbZero; {
		loc := locs.PopLsb()
		targets := GetMoves(pawn, loc, own, opp) & constraints.get(loc)
		for targets != BbZero {
			dest := targets.PopLsb()
			moves.PushBack(Normal{Moving: pawn, From: loc, Dest: dest, Capture: b.PieceOn(dest)})
		}
	}

	// en passant captures. The constraint check runs against the
	// square of the captured pawn: capturing the checking pawn is
	// the only way an en passant move can resolve a check and a
	// pinned pawn must not leave its ray.
	for locs := epSources; locs != BbZero; {
		from := locs.PopLsb()
		dest := b.enPassant
		capture := dest.To(b.active.Flip().PawnDir())
		if constraints.get(from).Has(capture) && b.enPassantSafe(from) {
			moves.PushBack(Enpassant{Side: b.active, From: from, Dest: dest, Capture: capture})
		}
	}

	// promotions - one move per target piece type
	for locs := promoting; locs != BbZero; {
		loc := locs.PopLsb()
		targets := GetMoves(pawn, loc, own, opp) & constraints.get(loc)
		for targets != BbZero {
			dest := targets.PopLsb()
			capture := b.PieceOn(dest)
			for _, pt := range promotionTargets {
				moves.PushBack(Promote{From: loc, Dest: dest, Promoted: MakePiece(b.active, pt), Capture: capture})
			}
		}
	}
}

// generatePieceMoves emits the moves of knights, bishops, rooks,
// queens and the king
func (b *Board) generatePieceMoves(constraints *moveConstraints, moves *moveslice.MoveSlice) {
	own := b.pieces.occupiedBb[b.active]
	opp := b.pieces.occupiedBb[b.active.Flip()]
	for pt := Knight; pt <= King; pt++ {
		piece := MakePiece(b.active, pt)
		for locs := b.pieces.piecesBb[b.active][pt]; locs != BbZero; {
			loc := locs.PopLsb()
			targets := GetMoves(piece, loc, own, opp) & constraints.get(loc)
			for targets != BbZero {
				dest := targets.PopLsb()
				moves.PushBack(Normal{Moving: piece, From: loc, Dest: dest, Capture: b.PieceOn(dest)})
			}
		}
	}
}

// generateCastling emits the legal castling moves. The king's path
// incl. its start square must be free of passive control, the
// squares between king and rook must be empty and both pieces must
// sit on their home squares.
func (b *Board) generateCastling(constraints *moveConstraints, moves *moveslice.MoveSlice) {
	kingConstraint := constraints.get(b.pieces.king(b.active))
	occ := b.OccupiedAll()
	for _, flank := range [2]Flank{Kingside, Queenside} {
		corner := CornerOf(b.active, flank)
		if !b.rights.Has(corner) {
			continue
		}
		if corner.UncontrolledRequired()&^kingConstraint != BbZero {
			continue
		}
		if occ&corner.UnoccupiedRequired() != BbZero {
			continue
		}
		kingFrom, _ := corner.KingCastleSquares()
		rookFrom, _ := corner.RookCastleSquares()
		if b.PieceOn(kingFrom) != MakePiece(b.active, King) ||
			b.PieceOn(rookFrom) != MakePiece(b.active, Rook) {
			continue
		}
		moves.PushBack(Castle{Corner: corner})
	}
}

// enPassantSources returns the squares a pawn capturing on the
// current en passant target would come from: the adjacent files of
// the target on the passive side's double push rank.
func (b *Board) enPassantSources() Bitboard {
	if b.enPassant == SqNone {
		return BbZero
	}
	f := b.enPassant.FileOf()
	adjacent := BbZero
	if f > FileA {
		adjacent |= (f - 1).Bb()
	}
	if f < FileH {
		adjacent |= (f + 1).Bb()
	}
	return adjacent & b.active.Flip().PawnDoubleRank()
}

// enPassantSafe guards the edge case where an en passant capture
// removes both the capturing and the captured pawn from the rank of
// the active king at once discovering an attack by a passive rook
// or queen.
func (b *Board) enPassantSafe(from Square) bool {
	kingSq := b.pieces.king(b.active)
	rank := b.active.Flip().PawnDoubleRank()
	if !rank.Has(kingSq) {
		return true
	}
	passive := b.active.Flip()
	attackers := (b.pieces.piecesBb[passive][Rook] | b.pieces.piecesBb[passive][Queen]) & rank
	all := b.OccupiedAll()
	for attackers != BbZero {
		loc := attackers.PopLsb()
		onCord := Cord(loc, kingSq) & all
		// exactly the attacker, the king and the two pawns on the
		// cord means the rank opens up after the capture
		if onCord.PopCount() == 4 && onCord.Has(from) &&
			onCord&b.pieces.piecesBb[passive][Pawn] != BbZero {
			return false
		}
	}
	return true
}
