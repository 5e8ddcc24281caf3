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

// Package see implements a static exchange evaluator over the
// attack set machinery of the types package: the material outcome
// of a hypothetical capture and recapture sequence on a single
// square assuming both sides always take with their least valuable
// attacker.
package see

import (
	"github.com/frankkopp/CastorGo/internal/board"
	. "github.com/frankkopp/CastorGo/internal/types"
)

// ExchangeValue computes the material outcome of a capture sequence
// on the target square started by the piece on the source square.
// The board must have a piece on both squares and they must belong
// to opposing sides - otherwise the result is undefined. The result
// is relative to the side of the first attacker, positive means a
// good exchange. The piece values are indexed by piece type in the
// order P, N, B, R, Q, K.
func ExchangeValue(b *board.Board, source Square, target Square, pieceValues [6]int) int {
	value := func(p Piece) int {
		return pieceValues[p.TypeOf()-1]
	}

	var gain [32]int
	d := 0
	gain[0] = value(b.PieceOn(target))

	attacker := b.PieceOn(source)
	active := attacker.ColorOf()
	src := source.Bb()
	removed := BbZero
	attadef, xray := piecesInvolved(b, target)

	for {
		d++
		// speculative gain if the exchange stops here
		gain[d] = value(attacker) - gain[d-1]

		attadef &^= src
		removed |= src
		// removing a knight never opens a line to the target
		if attacker.TypeOf() != Knight {
			attadef, xray = updateXray(b, target, removed, attadef, xray)
		}
		active = active.Flip()
		src = leastValuablePiece(b, attadef, active)
		if src == BbZero {
			break
		}
		attacker = b.PieceOn(src.Lsb())
	}

	// back propagate the gains with the negamax min rule
	d--
	for d > 0 {
		gain[d-1] = -max(-gain[d-1], gain[d])
		d--
	}
	return gain[0]
}

// piecesInvolved partitions the pieces into the direct attackers
// and defenders of the target square and the x-ray candidates:
// sliders whose empty board control contains the target but are
// currently blocked.
func piecesInvolved(b *board.Board, target Square) (attadef Bitboard, xray Bitboard) {
	occ := b.OccupiedAll()
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for locs := b.PiecesBb(c, pt); locs != BbZero; {
				loc := locs.PopLsb()
				if GetControl(MakePiece(c, pt), loc, occ).Has(target) {
					attadef.PushSquare(loc)
				} else if pt.IsSliding() && GetPseudoAttacks(pt, loc).Has(target) {
					xray.PushSquare(loc)
				}
			}
		}
	}
	return
}

// updateXray migrates x-ray sliders which became unblocked by the
// removed pieces into the attacker and defender set
func updateXray(b *board.Board, target Square, removed Bitboard, attadef Bitboard, xray Bitboard) (Bitboard, Bitboard) {
	if xray == BbZero {
		return attadef, xray
	}
	occ := b.OccupiedAll() &^ removed
	for candidates := xray; candidates != BbZero; {
		loc := candidates.PopLsb()
		piece := b.PieceOn(loc)
		if GetControl(piece, loc, occ).Has(target) {
			xray.PopSquare(loc)
			attadef.PushSquare(loc)
		}
	}
	return attadef, xray
}

// leastValuablePiece returns a one square Bb of the least valuable
// piece of the given side in the given set - ties are broken by the
// least significant bit - or the empty Bb.
func leastValuablePiece(b *board.Board, options Bitboard, side Color) Bitboard {
	for pt := Pawn; pt <= King; pt++ {
		if candidates := b.PiecesBb(side, pt) & options; candidates != BbZero {
			return candidates.LeastSetBit()
		}
	}
	return BbZero
}

func max(x, y int) int {
	if x > y {
		return x
	}
	return y
}
