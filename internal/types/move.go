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

import "fmt"

// Move is a chess move in one of its four shapes: a normal move, an
// en passant capture, a promotion or a castling move. Modelling the
// variants as distinct types keeps invariants like "a promotion
// always starts on the promotion-from rank" enforceable which a flat
// struct with optional fields would not.
//
// Move values are immutable and comparable - two moves are equal iff
// all their fields are equal.
type Move interface {
	// StringUci returns the move in UCI long algebraic notation
	// (e.g. e2e4, e7e8q, castling as the king move e1g1)
	StringUci() string
	// MovingSide returns the color of the side making the move
	MovingSide() Color
	// Reflect returns the move mirrored on the horizontal middle
	// axis of the board with the colors swapped
	Reflect() Move
	// String returns a human readable representation of the move
	String() string
}

// Normal is a standard move of a piece to a destination square with
// an optional capture. Capture is PieceNone when the move does not
// capture.
type Normal struct {
	Moving  Piece
	From    Square
	Dest    Square
	Capture Piece
}

// Enpassant is an en passant capture. Dest is the en passant target
// square and Capture the square of the captured pawn behind it.
type Enpassant struct {
	Side    Color
	From    Square
	Dest    Square
	Capture Square
}

// Promote is a pawn move to the promotion rank converting the pawn
// into Promoted. Capture is PieceNone when the move does not capture.
type Promote struct {
	From     Square
	Dest     Square
	Promoted Piece
	Capture  Piece
}

// Castle is a castling move in the given corner.
type Castle struct {
	Corner Corner
}

// StringUci returns the move in UCI long algebraic notation
func (m Normal) StringUci() string {
	return m.From.String() + m.Dest.String()
}

// StringUci returns the move in UCI long algebraic notation
func (m Enpassant) StringUci() string {
	return m.From.String() + m.Dest.String()
}

// StringUci returns the move in UCI long algebraic notation
// including the lower case letter of the promoted piece type
func (m Promote) StringUci() string {
	return m.From.String() + m.Dest.String() + m.Promoted.TypeOf().Char()
}

// StringUci returns the castling move encoded as the king's
// source and destination square
func (m Castle) StringUci() string {
	from, to := m.Corner.KingCastleSquares()
	return from.String() + to.String()
}

// MovingSide returns the color of the side making the move
func (m Normal) MovingSide() Color {
	return m.Moving.ColorOf()
}

// MovingSide returns the color of the side making the move
func (m Enpassant) MovingSide() Color {
	return m.Side
}

// MovingSide returns the color of the side making the move
func (m Promote) MovingSide() Color {
	return m.Promoted.ColorOf()
}

// MovingSide returns the color of the side making the move
func (m Castle) MovingSide() Color {
	return m.Corner.ColorOf()
}

// Reflect returns the move mirrored with the colors swapped
func (m Normal) Reflect() Move {
	return Normal{
		Moving:  m.Moving.Flip(),
		From:    m.From.Flip(),
		Dest:    m.Dest.Flip(),
		Capture: m.Capture.Flip(),
	}
}

// Reflect returns the move mirrored with the colors swapped
func (m Enpassant) Reflect() Move {
	return Enpassant{
		Side:    m.Side.Flip(),
		From:    m.From.Flip(),
		Dest:    m.Dest.Flip(),
		Capture: m.Capture.Flip(),
	}
}

// Reflect returns the move mirrored with the colors swapped
func (m Promote) Reflect() Move {
	return Promote{
		From:     m.From.Flip(),
		Dest:     m.Dest.Flip(),
		Promoted: m.Promoted.Flip(),
		Capture:  m.Capture.Flip(),
	}
}

// Reflect returns the move mirrored with the colors swapped
func (m Castle) Reflect() Move {
	return Castle{Corner: m.Corner.Flip()}
}

func (m Normal) String() string {
	if m.Capture != PieceNone {
		return fmt.Sprintf("Normal{ %s %s x%s %s }", m.Moving.String(), m.From.String(), m.Capture.String(), m.Dest.String())
	}
	return fmt.Sprintf("Normal{ %s %s %s }", m.Moving.String(), m.From.String(), m.Dest.String())
}

func (m Enpassant) String() string {
	return fmt.Sprintf("Enpassant{ %s %s %s x%s }", m.Side.String(), m.From.String(), m.Dest.String(), m.Capture.String())
}

func (m Promote) String() string {
	if m.Capture != PieceNone {
		return fmt.Sprintf("Promote{ %s x%s %s =%s }", m.From.String(), m.Capture.String(), m.Dest.String(), m.Promoted.String())
	}
	return fmt.Sprintf("Promote{ %s %s =%s }", m.From.String(), m.Dest.String(), m.Promoted.String())
}

func (m Castle) String() string {
	if m.Corner.FlankOf() == Kingside {
		return fmt.Sprintf("Castle{ %s O-O }", m.Corner.ColorOf().String())
	}
	return fmt.Sprintf("Castle{ %s O-O-O }", m.Corner.ColorOf().String())
}
