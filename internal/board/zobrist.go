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

// Key is used for zobrist keys in chess positions.
// Zobrist keys need all 64 bits for distribution
type Key uint64

// helper data structure for the zobrist feature vector of chess positions.
// The features are 12 x 64 piece-square keys, 8 en passant file keys,
// 4 castling corner keys and one key for black to move. White to move
// has no feature (key zero).
type zobrist struct {
	pieces        [12][SqLength]Key
	enPassantFile [8]Key
	corners       [CornerLength]Key
	blackToMove   Key
}

var zobristBase = zobrist{}

// Zobrist key initialization - seeded deterministically so that
// hashes are stable between runs.
func initZobrist() {
	r := newRandom(1070372)
	for pc := 0; pc < 12; pc++ {
		for sq := SqH1; sq <= SqA8; sq++ {
			zobristBase.pieces[pc][sq] = Key(r.rand64())
		}
	}
	for f := FileA; f <= FileH; f++ {
		zobristBase.enPassantFile[f] = Key(r.rand64())
	}
	for c := WhiteKingside; c < CornerLength; c++ {
		zobristBase.corners[c] = Key(r.rand64())
	}
	zobristBase.blackToMove = Key(r.rand64())
}

// pieceKey returns the feature key of the given piece sat on the
// given square
func pieceKey(p Piece, sq Square) Key {
	return zobristBase.pieces[int(p.ColorOf())*6+int(p.TypeOf())-1][sq]
}

// sideKey returns the feature key of the given side to move
func sideKey(c Color) Key {
	if c == Black {
		return zobristBase.blackToMove
	}
	return 0
}

// enPassantKey returns the feature key for an en passant target
// on the file of the given square
func enPassantKey(sq Square) Key {
	return zobristBase.enPassantFile[sq.FileOf()]
}

// cornerKey returns the feature key of the given castling corner
func cornerKey(c Corner) Key {
	return zobristBase.corners[c]
}

// rightsKey returns the combined feature keys of all corners in
// the given castling rights
func rightsKey(cr CastlingRights) Key {
	var k Key
	for c := WhiteKingside; c < CornerLength; c++ {
		if cr.Has(c) {
			k ^= zobristBase.corners[c]
		}
	}
	return k
}
