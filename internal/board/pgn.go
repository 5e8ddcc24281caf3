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
	"regexp"
	"strings"

	"github.com/frankkopp/CastorGo/internal/moveslice"
	. "github.com/frankkopp/CastorGo/internal/types"
)

var (
	pgnMovePattern = regexp.MustCompile(`(O-O-O|O-O|[PNBRQK]?[a-h]?[1-8]?x?[a-h][1-8](=[NBRQ])?)[+#]?`)
	squarePattern  = regexp.MustCompile(`[a-h][1-8]`)
	filePattern    = regexp.MustCompile(`[a-h]`)
	rankPattern    = regexp.MustCompile(`[1-8]`)
	piecePattern   = regexp.MustCompile(`[PNBRQK]`)
)

// ParseSAN parses a single move in standard algebraic notation
// (e.g. "Nf3", "exd5", "R1e2", "fxg8=Q+", "O-O") and returns the
// matching legal move of the current position. An error is returned
// when the token is not recognized, matches no legal move or is
// ambiguous.
func (b *Board) ParseSAN(token string) (Move, error) {
	token = strings.TrimRight(strings.TrimSpace(token), "+#")
	legal := b.GenerateMoves(GenAll)

	// castling tokens can be resolved directly
	if token == "O-O" || token == "O-O-O" {
		flank := Kingside
		if token == "O-O-O" {
			flank = Queenside
		}
		castle := Castle{Corner: CornerOf(b.active, flank)}
		if !legal.Contains(castle) {
			return nil, fmt.Errorf("castling %s not available", token)
		}
		return castle, nil
	}

	// the target square is the last square in the token
	squares := squarePattern.FindAllString(token, -1)
	if len(squares) == 0 {
		return nil, fmt.Errorf("unparseable san move %q", token)
	}
	target := MakeSquare(squares[len(squares)-1])

	// the moving piece type (default pawn) and the promotion type
	movingType, promoteType := sanPieceTypes(token)

	// optional disambiguating file and/or rank - a single file or
	// rank occurrence belongs to the target square
	disambigFile := sanDifferentiator(token, filePattern)
	disambigRank := sanDifferentiator(token, rankPattern)
	matchesFrom := func(from Square) bool {
		if disambigFile != 0 && from.FileOf().String() != string(disambigFile) {
			return false
		}
		if disambigRank != 0 && from.RankOf().String() != string(disambigRank) {
			return false
		}
		return true
	}

	matching := legal.Filter(func(m Move) bool {
		switch mv := m.(type) {
		case Normal:
			return mv.Moving.TypeOf() == movingType && mv.Dest == target && matchesFrom(mv.From)
		case Enpassant:
			return movingType == Pawn && target == b.enPassant && matchesFrom(mv.From)
		case Promote:
			return movingType == Pawn && mv.Dest == target && matchesFrom(mv.From) &&
				mv.Promoted.TypeOf() == promoteType
		default:
			return false
		}
	})

	switch len(matching) {
	case 0:
		return nil, fmt.Errorf("no legal move matching %q", token)
	case 1:
		return matching[0], nil
	default:
		return nil, fmt.Errorf("ambiguous san move %q matches %s", token, matching.StringUci())
	}
}

// ParsePgn extracts all moves encoded in standard pgn movetext
// (tags, move numbers, comments markers and results are skipped)
// starting from the current position. The board itself is not
// changed - the moves are validated and applied on a copy.
func (b *Board) ParsePgn(text string) (moveslice.MoveSlice, error) {
	scratch := b.Copy()
	dest := moveslice.NewMoveSlice(32)
	for _, token := range pgnMovePattern.FindAllString(text, -1) {
		mv, err := scratch.ParseSAN(token)
		if err != nil {
			return nil, fmt.Errorf("pgn failed at %q: %v", token, err)
		}
		dest.PushBack(mv)
		scratch.DoMove(mv)
	}
	return dest, nil
}

// PlayPgn parses the given pgn movetext and applies all moves to
// the board itself
func (b *Board) PlayPgn(text string) error {
	moves, err := b.ParsePgn(text)
	if err != nil {
		return err
	}
	for _, m := range moves {
		b.DoMove(m)
	}
	return nil
}

// sanPieceTypes extracts the moving piece type (default pawn) and
// the promotion piece type (PtNone when the token is no promotion)
func sanPieceTypes(token string) (moving PieceType, promote PieceType) {
	moving = Pawn
	promote = PtNone
	letters := piecePattern.FindAllString(token, -1)
	if len(letters) == 0 {
		return
	}
	if strings.Contains(token, "=") {
		promote = MakePieceTypeFromChar(letters[len(letters)-1][0])
		return
	}
	moving = MakePieceTypeFromChar(letters[0][0])
	return
}

// sanDifferentiator returns the disambiguating file or rank
// character of the token or 0. With only one occurrence the file or
// rank belongs to the target square and no disambiguation is given.
func sanDifferentiator(token string, pattern *regexp.Regexp) byte {
	all := pattern.FindAllString(token, -1)
	if len(all) < 2 {
		return 0
	}
	return all[0][0]
}
