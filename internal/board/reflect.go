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

// Reflect returns a new board with the position mirrored on the
// horizontal middle axis and the colors swapped. Generating the
// moves of the reflected board yields exactly the reflection of
// the moves of the original board. The history is not carried over.
func (b *Board) Reflect() *Board {
	r := &Board{
		active:        b.active.Flip(),
		rights:        b.rights.Flip(),
		enPassant:     SqNone,
		halfMoveClock: b.halfMoveClock,
	}
	if b.enPassant != SqNone {
		r.enPassant = b.enPassant.Flip()
	}
	for sq := SqH1; sq < SqNone; sq++ {
		piece := b.pieces.pieceOn(sq)
		if piece != PieceNone {
			r.pieces.putPiece(piece.Flip(), sq.Flip())
		}
	}
	// keep the move number the reflected board would emit
	moveNumber := (b.PositionCount()-1)/2 + 1
	r.priorPositions = 2*(moveNumber-1) + int(r.active)
	return r
}
