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

package types

// Piece is a set of constants for pieces in chess.
// Can be used with masks:
//  No Piece = 0
//  White Piece is a non zero value with piece & 0b1000 == 0
//  Black Piece is a non zero value with piece & 0b1000 != 0
//  PieceNone   = 0b0000
//  WhitePawn   = 0b0001
//  WhiteKnight = 0b0010
//  WhiteBishop = 0b0011
//  WhiteRook   = 0b0100
//  WhiteQueen  = 0b0101
//  WhiteKing   = 0b0110
//  BlackPawn   = 0b1001
//  ...
//  BlackKing   = 0b1110
type Piece int8

// Pieces are a set of constants to represent the different pieces
// of a chess game.
const (
	PieceNone   Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6
	BlackPawn   Piece = 9
	BlackKnight Piece = 10
	BlackBishop Piece = 11
	BlackRook   Piece = 12
	BlackQueen  Piece = 13
	BlackKing   Piece = 14
	PieceLength Piece = 16
)

// MakePiece creates the piece given by color and piece type
func MakePiece(c Color, pt PieceType) Piece {
	return Piece((int(c) << 3) + int(pt))
}

// ColorOf returns the color of the given piece
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type of the given piece
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// IsValid returns true if the piece is one of the 12 valid pieces
func (p Piece) IsValid() bool {
	return p.TypeOf().IsValid() && p.ColorOf().IsValid()
}

// Flip returns the same piece type of the opposite color
func (p Piece) Flip() Piece {
	if p == PieceNone {
		return PieceNone
	}
	return MakePiece(p.ColorOf().Flip(), p.TypeOf())
}

// array of string labels for pieces - the letters are the FEN encoding
var pieceToString = " PNBRQK- pnbrqk-"

// PieceFromChar returns the Piece corresponding to the given character.
// If s contains not exactly one character or if the character is invalid this
// will return PieceNone
func PieceFromChar(s string) Piece {
	if len(s) != 1 || s == " " || s == "-" {
		return PieceNone
	}
	for i := 1; i < len(pieceToString); i++ {
		if pieceToString[i] == s[0] && pieceToString[i] != '-' && pieceToString[i] != ' ' {
			return Piece(i)
		}
	}
	return PieceNone
}

// String returns the FEN letter of the piece
func (p Piece) String() string {
	return string(pieceToString[p])
}
