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
	"fmt"
	"strconv"
	"strings"

	. "github.com/frankkopp/CastorGo/internal/types"
	"github.com/frankkopp/CastorGo/internal/util"
)

// FenPart identifies one of the six fields of a fen string for
// the partial fen emitters
type FenPart uint8

// Constants for the fen fields
const (
	FenBoard FenPart = iota
	FenActive
	FenCastlingRights
	FenEnPassant
	FenHalfMoveClock
	FenMoveCount
)

// setupBoard sets up a board from the given full fen string. A full
// fen requires all six fields. Errors are returned for any malformed
// field.
func (b *Board) setupBoard(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) != 6 {
		return fmt.Errorf("fen must have 6 fields, has %d: %q", len(fields), fen)
	}

	b.enPassant = SqNone

	// piece placement from rank 8 to rank 1, files a to h
	rankFields := strings.Split(fields[0], "/")
	if len(rankFields) != 8 {
		return fmt.Errorf("fen piece placement must have 8 ranks: %q", fields[0])
	}
	for i, rankField := range rankFields {
		r := Rank(7 - i)
		f := FileA
		for j := 0; j < len(rankField); j++ {
			ch := rankField[j]
			if ch >= '1' && ch <= '8' {
				f += File(ch - '0')
				continue
			}
			piece := PieceFromChar(string(ch))
			if piece == PieceNone {
				return fmt.Errorf("fen piece placement has invalid character %q: %q", string(ch), fields[0])
			}
			if f > FileH {
				return fmt.Errorf("fen piece placement rank %s is too long: %q", r.String(), fields[0])
			}
			b.pieces.putPiece(piece, SquareOf(f, r))
			f++
		}
		if f != FileH+1 {
			return fmt.Errorf("fen piece placement rank %s does not have 8 squares: %q", r.String(), fields[0])
		}
	}
	if b.pieces.piecesBb[White][King].PopCount() != 1 ||
		b.pieces.piecesBb[Black][King].PopCount() != 1 {
		return fmt.Errorf("fen requires exactly one king per side: %q", fields[0])
	}

	// active side
	switch fields[1] {
	case "w":
		b.active = White
	case "b":
		b.active = Black
	default:
		return fmt.Errorf("fen has invalid active side %q", fields[1])
	}

	// castling rights
	b.rights = CastlingNone
	if fields[2] != "-" {
		for j := 0; j < len(fields[2]); j++ {
			switch fields[2][j] {
			case 'K':
				b.rights.Add(WhiteKingside)
			case 'Q':
				b.rights.Add(WhiteQueenside)
			case 'k':
				b.rights.Add(BlackKingside)
			case 'q':
				b.rights.Add(BlackQueenside)
			default:
				return fmt.Errorf("fen has invalid castling rights %q", fields[2])
			}
		}
	}

	// en passant target square
	if fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if sq == SqNone || (sq.RankOf() != Rank3 && sq.RankOf() != Rank6) {
			return fmt.Errorf("fen has invalid en passant square %q", fields[3])
		}
		b.enPassant = sq
	}

	// half move clock
	clock, err := strconv.Atoi(fields[4])
	if err != nil || clock < 0 {
		return fmt.Errorf("fen has invalid half move clock %q", fields[4])
	}
	b.halfMoveClock = clock

	// full move number - seeds the position count so emitting the
	// fen again reproduces the number
	moveNumber, err := strconv.Atoi(fields[5])
	if err != nil || moveNumber < 0 {
		return fmt.Errorf("fen has invalid move number %q", fields[5])
	}
	b.priorPositions = 2*(util.Max(moveNumber, 1)-1) + int(b.active)

	return nil
}

// StringFen returns the full fen notation of the current board
func (b *Board) StringFen() string {
	return b.StringFenParts(FenBoard, FenActive, FenCastlingRights, FenEnPassant, FenHalfMoveClock, FenMoveCount)
}

// StringFenParts returns a partial fen string containing the given
// fields in the given order joined by spaces
func (b *Board) StringFenParts(parts ...FenPart) string {
	encoded := make([]string, 0, len(parts))
	for _, p := range parts {
		switch p {
		case FenBoard:
			encoded = append(encoded, b.fenBoard())
		case FenActive:
			encoded = append(encoded, b.active.String())
		case FenCastlingRights:
			encoded = append(encoded, b.rights.String())
		case FenEnPassant:
			encoded = append(encoded, b.enPassant.String())
		case FenHalfMoveClock:
			encoded = append(encoded, strconv.Itoa(b.halfMoveClock))
		case FenMoveCount:
			encoded = append(encoded, strconv.Itoa((b.PositionCount()-1)/2+1))
		}
	}
	return strings.Join(encoded, " ")
}

func (b *Board) fenBoard() string {
	var os strings.Builder
	for i := 0; i < 8; i++ {
		r := Rank(7 - i)
		emptyCount := 0
		for f := FileA; f <= FileH; f++ {
			piece := b.pieces.pieceOn(SquareOf(f, r))
			if piece == PieceNone {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				os.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			os.WriteString(piece.String())
		}
		if emptyCount > 0 {
			os.WriteString(strconv.Itoa(emptyCount))
		}
		if i != 7 {
			os.WriteString("/")
		}
	}
	return os.String()
}
