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

var uciMovePattern = regexp.MustCompile(`^([a-h][1-8])([a-h][1-8])([nbrq]?)$`)

// ParseUci parses a move in UCI long algebraic notation (e.g.
// "e2e4", "e7e8q", castling as the king move "e1g1") and returns
// the matching legal move of the current position.
func (b *Board) ParseUci(token string) (Move, error) {
	matches := uciMovePattern.FindStringSubmatch(strings.TrimSpace(token))
	if matches == nil {
		return nil, fmt.Errorf("unparseable uci move %q", token)
	}
	from := MakeSquare(matches[1])
	dest := MakeSquare(matches[2])
	promo := PtNone
	if matches[3] != "" {
		promo = MakePieceTypeFromChar(matches[3][0] - ('a' - 'A'))
	}

	for _, m := range b.GenerateMoves(GenAll) {
		switch mv := m.(type) {
		case Normal:
			if promo == PtNone && mv.From == from && mv.Dest == dest {
				return m, nil
			}
		case Enpassant:
			if promo == PtNone && mv.From == from && mv.Dest == dest {
				return m, nil
			}
		case Promote:
			if promo != PtNone && mv.From == from && mv.Dest == dest &&
				mv.Promoted.TypeOf() == promo {
				return m, nil
			}
		case Castle:
			kingFrom, kingTo := mv.Corner.KingCastleSquares()
			if promo == PtNone && from == kingFrom && dest == kingTo {
				return m, nil
			}
		}
	}
	return nil, fmt.Errorf("no legal move matching %q", token)
}

// ParseUciMoves parses a whitespace separated list of UCI moves
// (e.g. the payload of a "position ... moves ..." command) starting
// from the current position. The board itself is not changed - the
// moves are validated and applied on a copy.
func (b *Board) ParseUciMoves(text string) (moveslice.MoveSlice, error) {
	scratch := b.Copy()
	dest := moveslice.NewMoveSlice(32)
	for _, token := range strings.Fields(text) {
		mv, err := scratch.ParseUci(token)
		if err != nil {
			return nil, fmt.Errorf("uci moves failed at %q: %v", token, err)
		}
		dest.PushBack(mv)
		scratch.DoMove(mv)
	}
	return dest, nil
}
