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

// Package board represents data structures and functions for a chess board
// and its position. It uses bitboards for the piece placement, maintains
// the zobrist key incrementally, keeps a stack of made moves for undo and
// repetition detection and implements the legal move generation with its
// FEN, PGN (SAN) and UCI parsers.
//
// A Board is not safe for concurrent use. Callers wanting parallelism
// take a Copy() per goroutine - the pre computed tables of the types
// package are immutable and shared safely.
//
// Create a new instance with New() for the standard chess start position
// or with NewFen(fen) for an arbitrary position.
package board

import (
	"github.com/op/go-logging"

	myLogging "github.com/frankkopp/CastorGo/internal/logging"
	"github.com/frankkopp/CastorGo/internal/moveslice"
	. "github.com/frankkopp/CastorGo/internal/types"
)

var log *logging.Logger

var initialized = false

// initialize package
func init() {
	if !initialized {
		initZobrist()
		initialized = true
	}
}

func getLog() *logging.Logger {
	if log == nil {
		log = myLogging.GetLog()
	}
	return log
}

const (
	// StartFen is a string with the fen position for a standard chess game
	StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Board represents a chess position with all state needed to generate
// legal moves, make and unmake them and detect repetitions.
type Board struct {
	pieces        positions
	rights        CastlingRights
	active        Color
	enPassant     Square // SqNone when not set
	halfMoveClock int

	// prior position count from the full move number of a parsed fen -
	// needed to emit the same move number again
	priorPositions int

	// history information for undo and repetition detection
	history []frame

	// cache of derived quantities - invalidated on every mutation
	cache boardCache
}

// frame keeps a made move together with the state which is
// irrecoverably discarded by making it
type frame struct {
	move      Move
	rights    CastlingRights
	enPassant Square
	clock     int
	hash      Key // board hash before the move
}

// boardCache holds lazily computed derived state of the current
// position. It is owned by the board and cleared on every make
// or unmake of a move.
type boardCache struct {
	passiveControl    Bitboard
	hasPassiveControl bool
	pinned            *raySet
	constraintsAll    *moveConstraints
	movesAll          moveslice.MoveSlice
}

func (c *boardCache) clear() {
	c.hasPassiveControl = false
	c.pinned = nil
	c.constraintsAll = nil
	c.movesAll = nil
}

// New creates a board with the standard chess start position
func New() *Board {
	b, _ := NewFen(StartFen)
	return b
}

// NewFen creates a new board with the position given by the fen string.
// It returns nil and an error if the fen was invalid.
func NewFen(fen string) (*Board, error) {
	b := &Board{}
	if e := b.setupBoard(fen); e != nil {
		getLog().Errorf("fen for board setup not valid: %s", e)
		return nil, e
	}
	return b, nil
}

// Copy returns a value copy of the board with its own history.
// The derived cache is discarded.
func (b *Board) Copy() *Board {
	c := &Board{
		pieces:         b.pieces,
		rights:         b.rights,
		active:         b.active,
		enPassant:      b.enPassant,
		halfMoveClock:  b.halfMoveClock,
		priorPositions: b.priorPositions,
		history:        make([]frame, len(b.history)),
	}
	copy(c.history, b.history)
	return c
}

// Active returns the next player as color
func (b *Board) Active() Color {
	return b.active
}

// EnPassant returns the en passant target square or SqNone
func (b *Board) EnPassant() Square {
	return b.enPassant
}

// HalfMoveClock returns the number of half moves since the last
// pawn move or capture
func (b *Board) HalfMoveClock() int {
	return b.halfMoveClock
}

// CastlingRights returns the remaining castling rights
func (b *Board) CastlingRights() CastlingRights {
	return b.rights
}

// PieceOn returns the piece on the given square or PieceNone
func (b *Board) PieceOn(sq Square) Piece {
	return b.pieces.pieceOn(sq)
}

// KingSquare returns the square of the king of the given color
func (b *Board) KingSquare(c Color) Square {
	return b.pieces.king(c)
}

// PiecesBb returns the Bb of the piece type of the given color
func (b *Board) PiecesBb(c Color, pt PieceType) Bitboard {
	return b.pieces.piecesBb[c][pt]
}

// OccupiedBb returns the Bb of all pieces of the given color
func (b *Board) OccupiedBb(c Color) Bitboard {
	return b.pieces.occupiedBb[c]
}

// OccupiedAll returns the Bb of all occupied squares
func (b *Board) OccupiedAll() Bitboard {
	return b.pieces.occupiedAll()
}

// Hash returns the zobrist key of the position assembled from the
// incrementally maintained piece-square hash and the features for
// side to move, en passant file and castling rights.
func (b *Board) Hash() Key {
	k := b.pieces.hash ^ sideKey(b.active) ^ rightsKey(b.rights)
	if b.enPassant != SqNone {
		k ^= enPassantKey(b.enPassant)
	}
	return k
}

// PositionCount returns the number of positions this game has
// seen including the current one. For boards created from a fen
// the count is seeded from the full move number.
func (b *Board) PositionCount() int {
	return b.priorPositions + len(b.history) + 1
}

// HistoricalPositions visits the hashes of all positions of this
// game in chronological order ending with the current position.
// The visit function returns false to stop the iteration early.
func (b *Board) HistoricalPositions(visit func(Key) bool) {
	for i := range b.history {
		if !visit(b.history[i].hash) {
			return
		}
	}
	visit(b.Hash())
}

// RepetitionCount returns how often the current position has
// occurred in the game history including the current occurrence
func (b *Board) RepetitionCount() int {
	current := b.Hash()
	count := 0
	b.HistoricalPositions(func(k Key) bool {
		if k == current {
			count++
		}
		return true
	})
	return count
}

// LastMove returns the last move made on the board or nil if no
// move has been made
func (b *Board) LastMove() Move {
	if len(b.history) == 0 {
		return nil
	}
	return b.history[len(b.history)-1].move
}

// InCheck returns true if the king of the next player is attacked
func (b *Board) InCheck() bool {
	return b.passiveControl().Has(b.pieces.king(b.active))
}

// String returns the full fen notation of the board
func (b *Board) String() string {
	return b.StringFen()
}
