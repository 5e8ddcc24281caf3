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

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit unsigned int with 1 bit for each square on the board
type Bitboard uint64

// Various constant bitboards.
// Because of the square convention H1=0, ..., A1=7 the h-file
// occupies the least significant bit of each rank byte.
const (
	BbZero Bitboard = Bitboard(0)
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = Bitboard(1)

	FileH_Bb Bitboard = 0x0101010101010101
	FileG_Bb Bitboard = FileH_Bb << 1
	FileF_Bb Bitboard = FileH_Bb << 2
	FileE_Bb Bitboard = FileH_Bb << 3
	FileD_Bb Bitboard = FileH_Bb << 4
	FileC_Bb Bitboard = FileH_Bb << 5
	FileB_Bb Bitboard = FileH_Bb << 6
	FileA_Bb Bitboard = FileH_Bb << 7

	Rank1_Bb Bitboard = 0xFF
	Rank2_Bb Bitboard = Rank1_Bb << (8 * 1)
	Rank3_Bb Bitboard = Rank1_Bb << (8 * 2)
	Rank4_Bb Bitboard = Rank1_Bb << (8 * 3)
	Rank5_Bb Bitboard = Rank1_Bb << (8 * 4)
	Rank6_Bb Bitboard = Rank1_Bb << (8 * 5)
	Rank7_Bb Bitboard = Rank1_Bb << (8 * 6)
	Rank8_Bb Bitboard = Rank1_Bb << (8 * 7)
)

// Bb returns a Bitboard of the square by accessing the pre calculated
// square to bitboard array.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// PushSquare sets the corresponding bit of the bitboard for the square
func (b *Bitboard) PushSquare(s Square) Bitboard {
	*b |= s.Bb()
	return *b
}

// PopSquare removes the corresponding bit of the bitboard for the square
func (b *Bitboard) PopSquare(s Square) Bitboard {
	*b = *b &^ s.Bb()
	return *b
}

// Has tests if a square (bit) is set
func (b Bitboard) Has(s Square) bool {
	return b&sqBb[s] != 0
}

// Lsb returns the least significant bit of the 64-bit Bb.
// This translates directly to the Square which is returned.
// If the bitboard is empty SqNone will be returned.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the Lsb square and removes it from the bitboard.
// The given bitboard is changed directly. Iterating a bitboard
// with PopLsb visits the squares in LSB to MSB order.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b = *b & (*b - 1)
	return lsb
}

// LeastSetBit returns a Bb holding only the least significant
// set bit of the given Bb
func (b Bitboard) LeastSetBit() Bitboard {
	return b & -b
}

// PopCount returns the number of one bits ("population count") in b.
// This equals the number of squares set in a Bitboard
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// String returns a string representation of the 64 bits
func (b Bitboard) String() string {
	return fmt.Sprintf("%-0.64b", b)
}

// StringBoard returns a string representation of the Bb
// as a board off 8x8 squares
func (b Bitboard) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8 + 1; r > Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r-1)) {
				os.WriteString("| X ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

// StringGrouped returns a string representation of the 64 bits grouped in 8.
// Order is LSB to MSB ==> H1 G1 ... B8 A8
func (b Bitboard) StringGrouped() string {
	var os strings.Builder
	for i := 0; i < 64; i++ {
		if i > 0 && i%8 == 0 {
			os.WriteString(".")
		}
		if (b & (BbOne << uint(i))) != 0 {
			os.WriteString("1")
		} else {
			os.WriteString("0")
		}
	}
	os.WriteString(fmt.Sprintf(" (%d)", b))
	return os.String()
}

// Cord returns the inclusive straight line segment between two
// squares when they share a rank, file or diagonal. For non
// aligned squares the empty Bb is returned.
func Cord(a Square, b Square) Bitboard {
	return cord[a][b]
}

// ////////////////////
// Pre computed tables
// ////////////////////

var (
	// Internal pre computed square to square bitboard array.
	sqBb [SqLength]Bitboard

	// Internal pre computed rank bitboard array.
	rankBb [8]Bitboard

	// Internal pre computed file bitboard array.
	fileBb [8]Bitboard

	// Internal pre computed inclusive line segments between
	// aligned squares ("cords")
	cord [SqLength][SqLength]Bitboard

	// Internal Bb for pawn attacks for each color for each square
	pawnAttacks [ColorLength][SqLength]Bitboard

	// Internal Bb for attacks for each piece type on an empty
	// board for each square
	pseudoAttacks [PtLength][SqLength]Bitboard
)

// ///////////////////////////////////////
// Initialization
// ///////////////////////////////////////

// Pre computes various bitboards to avoid runtime calculation
func initBb() {
	for sq := SqH1; sq < SqNone; sq++ {
		sqBb[sq] = BbOne << sq
	}
	for r := Rank1; r <= Rank8; r++ {
		rankBb[r] = Rank1_Bb << (8 * r)
	}
	for f := FileA; f <= FileH; f++ {
		fileBb[f] = FileH_Bb << (7 - f)
	}

	castleUnoccupied[WhiteKingside] = SqF1.Bb() | SqG1.Bb()
	castleUnoccupied[WhiteQueenside] = SqB1.Bb() | SqC1.Bb() | SqD1.Bb()
	castleUnoccupied[BlackKingside] = SqF8.Bb() | SqG8.Bb()
	castleUnoccupied[BlackQueenside] = SqB8.Bb() | SqC8.Bb() | SqD8.Bb()

	castleUncontrolled[WhiteKingside] = SqE1.Bb() | SqF1.Bb() | SqG1.Bb()
	castleUncontrolled[WhiteQueenside] = SqC1.Bb() | SqD1.Bb() | SqE1.Bb()
	castleUncontrolled[BlackKingside] = SqE8.Bb() | SqF8.Bb() | SqG8.Bb()
	castleUncontrolled[BlackQueenside] = SqC8.Bb() | SqD8.Bb() | SqE8.Bb()

	initCastlingRights()
}

// pre computes all attack boards for non sliding pieces and the
// pseudo (empty board) attacks for the sliding pieces.
// Requires the magic bitboards to be initialized beforehand.
func initAttacks() {
	for sq := SqH1; sq < SqNone; sq++ {
		// pawns
		for _, d := range [2]Direction{Northeast, Northwest} {
			if to := sq.toPreCompute(d); to != SqNone {
				pawnAttacks[White][sq] |= to.Bb()
			}
		}
		for _, d := range [2]Direction{Southeast, Southwest} {
			if to := sq.toPreCompute(d); to != SqNone {
				pawnAttacks[Black][sq] |= to.Bb()
			}
		}
		// knights
		for _, d := range KnightDirections {
			if to := sq.toPreCompute(d); to != SqNone {
				pseudoAttacks[Knight][sq] |= to.Bb()
			}
		}
		// kings
		for _, d := range Directions {
			if to := sq.toPreCompute(d); to != SqNone {
				pseudoAttacks[King][sq] |= to.Bb()
			}
		}
		// sliders on an empty board
		pseudoAttacks[Bishop][sq] = slidingAttack(&bishopDirections, sq, BbZero)
		pseudoAttacks[Rook][sq] = slidingAttack(&rookDirections, sq, BbZero)
		pseudoAttacks[Queen][sq] = pseudoAttacks[Bishop][sq] | pseudoAttacks[Rook][sq]
	}
}

// pre computes the inclusive line segments between all pairs of
// aligned squares
func initCords() {
	for sq := SqH1; sq < SqNone; sq++ {
		cord[sq][sq] = sq.Bb()
		for _, d := range Directions {
			segment := sq.Bb()
			for to := sq.To(d); to != SqNone; to = to.To(d) {
				segment |= to.Bb()
				cord[sq][to] = segment
			}
		}
	}
}

// ////////////////////
// Attack lookups
// ////////////////////

// GetAttacksBb returns a bitboard representing all the squares attacked by a
// piece of the given type pt (not pawn) placed on 'sq'.
// For sliding pieces this uses the pre-computed Magic Bitboard Attack arrays.
// For Knight and King the occupied Bitboard is ignored (can be BbZero)
// as for these non sliders the pre-computed pseudo attacks are used.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)]
	case Rook:
		return rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	case Queen:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)] |
			rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	case Knight, King:
		return pseudoAttacks[pt][sq]
	default:
		panic(fmt.Sprintf("GetAttacksBb called with invalid piece type %d", pt))
	}
}

// GetPseudoAttacks returns a Bb of possible attacks of a piece
// type as if on an empty board
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// GetPawnAttacks returns a Bb of possible attacks of a pawn
// of the given color
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// GetControl returns the control (attack) set of the given piece
// on the given square with the given total board occupancy.
func GetControl(pc Piece, sq Square, occupied Bitboard) Bitboard {
	if pc.TypeOf() == Pawn {
		return pawnAttacks[pc.ColorOf()][sq]
	}
	return GetAttacksBb(pc.TypeOf(), sq, occupied)
}

// GetMoves returns a bitboard of the pseudo legal moves (ignoring
// checks against the own king) of the given piece on the given
// square: the piece's control minus the own side's occupancy. Pawn
// moves consist of the single push, the double push from the home
// rank and captures of opposing pieces. En passant captures are not
// included here - the move generator handles those separately.
func GetMoves(pc Piece, sq Square, own Bitboard, opp Bitboard) Bitboard {
	if pc.TypeOf() == Pawn {
		return pawnMoves(pc.ColorOf(), sq, own, opp)
	}
	return GetAttacksBb(pc.TypeOf(), sq, own|opp) &^ own
}

func pawnMoves(c Color, sq Square, own Bitboard, opp Bitboard) Bitboard {
	moves := pawnAttacks[c][sq] & opp
	occupied := own | opp
	one := sq.To(c.PawnDir())
	if one != SqNone && !occupied.Has(one) {
		moves |= one.Bb()
		if c.PawnHomeRank().Has(sq) {
			two := one.To(c.PawnDir())
			if two != SqNone && !occupied.Has(two) {
				moves |= two.Bb()
			}
		}
	}
	return moves
}
