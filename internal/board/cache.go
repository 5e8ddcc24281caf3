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

// raySet is a set of squares each carrying a constraint ray - used
// for pinned pieces and for discovered check candidates.
type raySet struct {
	points Bitboard
	rays   []pointRay
}

type pointRay struct {
	loc Square
	ray Bitboard
}

// ray returns the ray of the given square and whether the square
// is part of the set
func (rs *raySet) ray(sq Square) (Bitboard, bool) {
	if !rs.points.Has(sq) {
		return BbZero, false
	}
	for i := range rs.rays {
		if rs.rays[i].loc == sq {
			return rs.rays[i].ray, true
		}
	}
	return BbZero, false
}

func (rs *raySet) add(loc Square, ray Bitboard) {
	rs.points.PushSquare(loc)
	rs.rays = append(rs.rays, pointRay{loc: loc, ray: ray})
}

// passiveControl returns the union of the control sets of all
// pieces of the passive side. This is the set of squares the active
// king may not step onto.
// The active king is removed from the occupancy so that sliders
// control the squares behind a checked king as well - otherwise the
// king could retreat along the checking ray.
func (b *Board) passiveControl() Bitboard {
	if !b.cache.hasPassiveControl {
		occ := b.OccupiedAll() &^ b.pieces.king(b.active).Bb()
		b.cache.passiveControl = b.computeControl(b.active.Flip(), occ)
		b.cache.hasPassiveControl = true
	}
	return b.cache.passiveControl
}

// computeControl returns the union of the control sets of all
// pieces of the given side using the given occupancy for the
// sliding pieces.
func (b *Board) computeControl(side Color, occupied Bitboard) Bitboard {
	control := BbZero
	for pawns := b.pieces.piecesBb[side][Pawn]; pawns != BbZero; {
		control |= GetPawnAttacks(side, pawns.PopLsb())
	}
	for pt := Knight; pt <= King; pt++ {
		for locs := b.pieces.piecesBb[side][pt]; locs != BbZero; {
			control |= GetAttacksBb(pt, locs.PopLsb(), occupied)
		}
	}
	return control
}

// pinnedSet computes the set of all active pieces which are pinned
// to their king, i.e. have their movement constrained to the ray
// between the king and the pinning slider.
func (b *Board) pinnedSet() *raySet {
	if b.cache.pinned != nil {
		return b.cache.pinned
	}
	rs := &raySet{}
	kingSq := b.pieces.king(b.active)
	activeOcc := b.pieces.occupiedBb[b.active]
	passiveOcc := b.pieces.occupiedBb[b.active.Flip()]
	for pinners := b.potentialXrayers(b.active.Flip(), kingSq); pinners != BbZero; {
		pinnerSq := pinners.PopLsb()
		cord := Cord(kingSq, pinnerSq)
		// two active pieces (king + pinned) and one passive piece
		// (the slider) on the cord
		if (cord&activeOcc).PopCount() == 2 && (cord&passiveOcc).PopCount() == 1 {
			pinnedLoc := ((cord & activeOcc) &^ kingSq.Bb()).Lsb()
			rs.add(pinnedLoc, cord)
		}
	}
	b.cache.pinned = rs
	return rs
}

// discoveries computes the set of all active pieces which would
// uncover a check on the passive king by a friendly slider when
// moving off their ray.
func (b *Board) discoveries() *raySet {
	rs := &raySet{}
	kingSq := b.pieces.king(b.active.Flip())
	activeOcc := b.pieces.occupiedBb[b.active]
	passiveOcc := b.pieces.occupiedBb[b.active.Flip()]
	for xrayers := b.potentialXrayers(b.active, kingSq); xrayers != BbZero; {
		xrayerSq := xrayers.PopLsb()
		cord := Cord(kingSq, xrayerSq)
		// two active pieces (slider + discoverer) and one passive
		// piece (the king) on the cord
		if (cord&activeOcc).PopCount() == 2 && (cord&passiveOcc).PopCount() == 1 {
			discovLoc := ((cord & activeOcc) &^ xrayerSq.Bb()).Lsb()
			rs.add(discovLoc, cord)
		}
	}
	return rs
}

// potentialXrayers returns all sliders of the given side whose
// empty board control contains the given square
func (b *Board) potentialXrayers(side Color, sq Square) Bitboard {
	pieces := &b.pieces
	return (GetPseudoAttacks(Bishop, sq) & (pieces.piecesBb[side][Bishop] | pieces.piecesBb[side][Queen])) |
		(GetPseudoAttacks(Rook, sq) & (pieces.piecesBb[side][Rook] | pieces.piecesBb[side][Queen]))
}

// kingAttacker describes a passive piece giving check
type kingAttacker struct {
	piece Piece
	loc   Square
}

// kingAttackers returns all passive pieces whose control contains
// the active king square
func (b *Board) kingAttackers() []kingAttacker {
	kingSq := b.pieces.king(b.active)
	passive := b.active.Flip()
	occ := b.OccupiedAll()
	attackers := make([]kingAttacker, 0, 2)

	collect := func(locs Bitboard, pt PieceType) {
		for locs != BbZero {
			attackers = append(attackers, kingAttacker{piece: MakePiece(passive, pt), loc: locs.PopLsb()})
		}
	}

	// reverse lookups: the squares from which a passive piece of the
	// type would attack the king are the squares a piece of the same
	// type attacks from the king square
	collect(GetPawnAttacks(b.active, kingSq)&b.pieces.piecesBb[passive][Pawn], Pawn)
	collect(GetPseudoAttacks(Knight, kingSq)&b.pieces.piecesBb[passive][Knight], Knight)
	collect(GetAttacksBb(Bishop, kingSq, occ)&b.pieces.piecesBb[passive][Bishop], Bishop)
	collect(GetAttacksBb(Rook, kingSq, occ)&b.pieces.piecesBb[passive][Rook], Rook)
	collect(GetAttacksBb(Queen, kingSq, occ)&b.pieces.piecesBb[passive][Queen], Queen)
	return attackers
}
