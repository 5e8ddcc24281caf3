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
	. "github.com/frankkopp/CastorGo/internal/types"
)

// GenMode determines which subset of the legal moves the move
// generation computes
type GenMode uint8

// Generation modes. When the active king is in check every mode
// generates all legal evasions, not only captures or checks.
const (
	// GenAll generates all legal moves
	GenAll GenMode = iota
	// GenAttacks generates legal captures (incl. en passant)
	GenAttacks
	// GenAttacksChecks generates legal captures and checking moves
	GenAttacksChecks
)

// moveConstraints maps each square to a Bb of the allowed
// destination squares for the piece sitting on it. Move generation
// intersects each piece's move set with its constraint.
type moveConstraints struct {
	data [SqLength]Bitboard
}

func constraintsAll(bb Bitboard) *moveConstraints {
	mc := &moveConstraints{}
	for i := range mc.data {
		mc.data[i] = bb
	}
	return mc
}

func (mc *moveConstraints) get(sq Square) Bitboard {
	return mc.data[sq]
}

func (mc *moveConstraints) set(sq Square, bb Bitboard) {
	mc.data[sq] = bb
}

func (mc *moveConstraints) intersect(sq Square, bb Bitboard) {
	mc.data[sq] &= bb
}

func (mc *moveConstraints) intersectPins(pinned *raySet) {
	for i := range pinned.rays {
		mc.intersect(pinned.rays[i].loc, pinned.rays[i].ray)
	}
}

// constraints computes (or returns the cached) move constraints for
// the given generation mode
func (b *Board) constraints(mode GenMode) *moveConstraints {
	if mode == GenAll {
		if b.cache.constraintsAll == nil {
			b.cache.constraintsAll = b.computeConstraints(mode)
		}
		return b.cache.constraintsAll
	}
	return b.computeConstraints(mode)
}

func (b *Board) computeConstraints(mode GenMode) *moveConstraints {
	passiveControl := b.passiveControl()
	pinned := b.pinnedSet()
	if passiveControl.Has(b.pieces.king(b.active)) {
		return b.checkConstraints(passiveControl, pinned)
	}
	switch mode {
	case GenAttacks:
		return b.attackConstraints(passiveControl, pinned, false)
	case GenAttacksChecks:
		return b.attackConstraints(passiveControl, pinned, true)
	default:
		return b.anyConstraints(passiveControl, pinned)
	}
}

// anyConstraints builds the constraints for mode GenAll assuming
// the king is not in check: every piece may move anywhere except
// pinned pieces which stay on their pin ray and the king which
// must avoid the passive control zone.
func (b *Board) anyConstraints(passiveControl Bitboard, pinned *raySet) *moveConstraints {
	constraints := constraintsAll(BbAll)
	constraints.set(b.pieces.king(b.active), ^passiveControl)
	constraints.intersectPins(pinned)
	return constraints
}

// attackConstraints builds the constraints for the capture modes
// assuming the king is not in check. Destinations are restricted to
// the passive side's occupancy (for pawns also the en passant
// target). With checks additionally all squares are allowed from
// which the moved piece would attack the passive king, plus any
// move off a discovery ray, plus promotions delivering check.
func (b *Board) attackConstraints(passiveControl Bitboard, pinned *raySet, checks bool) *moveConstraints {
	constraints := constraintsAll(BbAll)
	constraints.intersectPins(pinned)

	passive := b.active.Flip()
	passiveLocs := b.pieces.occupiedBb[passive]
	occ := b.OccupiedAll()

	enPassantSet := BbZero
	if b.enPassant != SqNone {
		enPassantSet = b.enPassant.Bb()
	}

	if !checks {
		for pt := Pawn; pt <= King; pt++ {
			enPassant := BbZero
			if pt == Pawn {
				enPassant = enPassantSet
			}
			for locs := b.pieces.piecesBb[b.active][pt]; locs != BbZero; {
				constraints.intersect(locs.PopLsb(), passiveLocs|enPassant)
			}
		}
	} else {
		discoveries := b.discoveries()
		passiveKing := b.pieces.king(passive)
		// squares from which a promoted queen resp. knight would
		// check the passive king restricted to the promotion rank
		promotionChecks := (GetAttacksBb(Queen, passiveKing, occ) | GetPseudoAttacks(Knight, passiveKing)) &
			b.active.PromotionRank()

		for pt := Pawn; pt <= King; pt++ {
			enPassant := BbZero
			promotion := BbZero
			var checkSquares Bitboard
			if pt == Pawn {
				enPassant = enPassantSet
				promotion = promotionChecks
				// a passive pawn on the passive king square would
				// attack exactly the squares our pawns check from
				checkSquares = GetPawnAttacks(passive, passiveKing)
			} else {
				checkSquares = GetAttacksBb(pt, passiveKing, occ)
			}
			for locs := b.pieces.piecesBb[b.active][pt]; locs != BbZero; {
				loc := locs.PopLsb()
				discov := BbZero
				if ray, ok := discoveries.ray(loc); ok {
					discov = ^ray
				}
				constraints.intersect(loc, passiveLocs|checkSquares|enPassant|discov|promotion)
			}
		}
	}

	// the king can't move into check
	constraints.intersect(b.pieces.king(b.active), ^passiveControl)
	return constraints
}

// checkConstraints builds the constraints when the king is in
// check. With a single attacker all non king pieces may only move
// onto the cord between attacker and king (capturing the attacker
// or blocking the check - a knight check can only be captured).
// With multiple attackers only king moves are possible.
func (b *Board) checkConstraints(passiveControl Bitboard, pinned *raySet) *moveConstraints {
	kingSq := b.pieces.king(b.active)
	attackers := b.kingAttackers()
	if len(attackers) == 1 {
		attacker := attackers[0]
		var blockingSquares Bitboard
		if attacker.piece.TypeOf() == Knight {
			blockingSquares = attacker.loc.Bb()
		} else {
			blockingSquares = Cord(attacker.loc, kingSq)
		}
		constraints := constraintsAll(blockingSquares)
		constraints.intersectPins(pinned)
		constraints.set(kingSq, ^passiveControl)
		return constraints
	}
	constraints := constraintsAll(BbZero)
	constraints.set(kingSq, ^passiveControl)
	return constraints
}
