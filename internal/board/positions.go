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

// positions holds the piece placement part of a chess position:
// 12 per piece bitboards, 2 per side bitboards, a 64 square piece
// map and the incrementally maintained piece-square hash.
// Invariants:
//  - the per piece bitboards partition the occupied squares
//  - the side bitboards equal the union of the side's piece boards
//  - the square to piece map agrees with the bitboards
//  - hash is the XOR of the piece-square features of all occupied squares
type positions struct {
	piecesBb   [ColorLength][PtLength]Bitboard
	occupiedBb [ColorLength]Bitboard
	board      [SqLength]Piece
	kingSquare [ColorLength]Square
	hash       Key
}

// putPiece places the piece on the (empty) square and updates
// bitboards and hash incrementally
func (p *positions) putPiece(piece Piece, sq Square) {
	c := piece.ColorOf()
	pt := piece.TypeOf()
	p.piecesBb[c][pt].PushSquare(sq)
	p.occupiedBb[c].PushSquare(sq)
	p.board[sq] = piece
	if pt == King {
		p.kingSquare[c] = sq
	}
	p.hash ^= pieceKey(piece, sq)
}

// removePiece removes the piece from the square and updates
// bitboards and hash incrementally
func (p *positions) removePiece(sq Square) Piece {
	piece := p.board[sq]
	c := piece.ColorOf()
	pt := piece.TypeOf()
	p.piecesBb[c][pt].PopSquare(sq)
	p.occupiedBb[c].PopSquare(sq)
	p.board[sq] = PieceNone
	p.hash ^= pieceKey(piece, sq)
	return piece
}

// movePiece moves a piece from one square to another (empty) square
func (p *positions) movePiece(from Square, to Square) {
	p.putPiece(p.removePiece(from), to)
}

// pieceOn returns the piece on the given square or PieceNone
func (p *positions) pieceOn(sq Square) Piece {
	return p.board[sq]
}

// king returns the king square of the given color
func (p *positions) king(c Color) Square {
	return p.kingSquare[c]
}

// occupiedAll returns a Bb of all occupied squares
func (p *positions) occupiedAll() Bitboard {
	return p.occupiedBb[White] | p.occupiedBb[Black]
}

// recomputeHash calculates the piece-square hash from scratch.
// Used in tests to verify the incremental updates.
func (p *positions) recomputeHash() Key {
	var k Key
	for sq := SqH1; sq < SqNone; sq++ {
		if p.board[sq] != PieceNone {
			k ^= pieceKey(p.board[sq], sq)
		}
	}
	return k
}
