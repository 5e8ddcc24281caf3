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

import "strings"

// Flank is one of the two sides of the board a castling move can
// take place on - the king side or the queen side
type Flank uint8

// Constants for flanks
const (
	Kingside  Flank = 0
	Queenside Flank = 1
)

// Corner is one of the four areas of the board where a castling
// move can take place. It combines a Color and a Flank.
type Corner uint8

// Constants for the four corners
const (
	WhiteKingside  Corner = 0
	WhiteQueenside Corner = 1
	BlackKingside  Corner = 2
	BlackQueenside Corner = 3
	CornerLength   Corner = 4
)

// CornerOf creates the corner for the given color and flank
func CornerOf(c Color, f Flank) Corner {
	return Corner(uint8(c)<<1 | uint8(f))
}

// ColorOf returns the color of the corner
func (c Corner) ColorOf() Color {
	return Color(c >> 1)
}

// FlankOf returns the flank of the corner
func (c Corner) FlankOf() Flank {
	return Flank(c & 1)
}

// Flip returns the same flank corner of the opposite color
func (c Corner) Flip() Corner {
	return c ^ 2
}

// KingCastleSquares returns the from and to squares of the king
// for a castling move in this corner
func (c Corner) KingCastleSquares() (from Square, to Square) {
	return castleKingFrom[c], castleKingTo[c]
}

// RookCastleSquares returns the from and to squares of the rook
// for a castling move in this corner
func (c Corner) RookCastleSquares() (from Square, to Square) {
	return castleRookFrom[c], castleRookTo[c]
}

// UnoccupiedRequired returns the squares between king and rook
// which must be empty for the castling move to be legal
func (c Corner) UnoccupiedRequired() Bitboard {
	return castleUnoccupied[c]
}

// UncontrolledRequired returns the path of the king (incl. its
// start square) which must not be controlled by the opponent for
// the castling move to be legal
func (c Corner) UncontrolledRequired() Bitboard {
	return castleUncontrolled[c]
}

// String returns the FEN letter of the corner (KQkq)
func (c Corner) String() string {
	return string(cornerToString[c])
}

var cornerToString = "KQkq"

var (
	castleKingFrom = [CornerLength]Square{SqE1, SqE1, SqE8, SqE8}
	castleKingTo   = [CornerLength]Square{SqG1, SqC1, SqG8, SqC8}
	castleRookFrom = [CornerLength]Square{SqH1, SqA1, SqH8, SqA8}
	castleRookTo   = [CornerLength]Square{SqF1, SqD1, SqF8, SqD8}

	// initialized in initBb as square bitboards are needed
	castleUnoccupied   [CornerLength]Bitboard
	castleUncontrolled [CornerLength]Bitboard
)

// CastlingRights encodes the remaining castling rights of both
// sides as a set of corners
type CastlingRights uint8

// Constants for castling rights
const (
	CastlingNone         CastlingRights = 0                                  // no castling
	CastlingWhiteOO      CastlingRights = 1 << uint8(WhiteKingside)          // white king side
	CastlingWhiteOOO                    = CastlingWhiteOO << 1               // white queen side
	CastlingWhite                       = CastlingWhiteOO | CastlingWhiteOOO // white both sides
	CastlingBlackOO                     = CastlingWhiteOO << 2               // black king side
	CastlingBlackOOO                    = CastlingBlackOO << 1               // black queen side
	CastlingBlack                       = CastlingBlackOO | CastlingBlackOOO // black both sides
	CastlingAny                         = CastlingWhite | CastlingBlack      // all castlings
	CastlingRightsLength                = CastlingAny + 1
)

// Has checks if the right for the given corner is set
func (cr CastlingRights) Has(c Corner) bool {
	return cr&(1<<uint8(c)) != 0
}

// Add adds the right for the given corner
func (cr *CastlingRights) Add(c Corner) {
	*cr |= 1 << uint8(c)
}

// Remove removes the right for the given corner
func (cr *CastlingRights) Remove(c Corner) {
	*cr &^= 1 << uint8(c)
}

// RemoveAll removes the given set of rights
func (cr *CastlingRights) RemoveAll(rights CastlingRights) {
	*cr &^= rights
}

// Flip returns the rights with the sides swapped
func (cr CastlingRights) Flip() CastlingRights {
	return cr>>2 | cr<<2&CastlingAny
}

// String returns the FEN representation of the castling
// rights (e.g. "KQkq", "Kq" or "-")
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var os strings.Builder
	for c := WhiteKingside; c < CornerLength; c++ {
		if cr.Has(c) {
			os.WriteString(c.String())
		}
	}
	return os.String()
}

// GetCastlingRights returns the rights which are lost when the
// given square is either vacated or captured on
func GetCastlingRights(sq Square) CastlingRights {
	return castlingRights[sq]
}

// array to store all possible CastlingRights for squares which impact castlings
var castlingRights [SqLength]CastlingRights

func initCastlingRights() {
	castlingRights[SqE1] = CastlingWhite
	castlingRights[SqH1] = CastlingWhiteOO
	castlingRights[SqA1] = CastlingWhiteOOO
	castlingRights[SqE8] = CastlingBlack
	castlingRights[SqH8] = CastlingBlackOO
	castlingRights[SqA8] = CastlingBlackOOO
}
