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

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/CastorGo/internal/types"
)

var (
	m1 = Move(Normal{Moving: WhitePawn, From: SqE2, Dest: SqE4})
	m2 = Move(Normal{Moving: WhiteKnight, From: SqG1, Dest: SqF3})
	m3 = Move(Castle{Corner: WhiteKingside})
)

func TestMoveSliceBasics(t *testing.T) {
	ms := NewMoveSlice(8)
	assert.Equal(t, 0, ms.Len())
	ms.PushBack(m1)
	ms.PushBack(m2)
	assert.Equal(t, 2, ms.Len())
	assert.Equal(t, m1, ms.At(0))
	assert.True(t, ms.Contains(m1))
	assert.False(t, ms.Contains(m3))
}

func TestMoveSliceFilter(t *testing.T) {
	ms := MoveSlice{m1, m2, m3}
	pawnMoves := ms.Filter(func(m Move) bool {
		n, ok := m.(Normal)
		return ok && n.Moving.TypeOf() == Pawn
	})
	assert.Equal(t, 1, pawnMoves.Len())
	assert.Equal(t, m1, pawnMoves.At(0))
	// the original slice is unchanged
	assert.Equal(t, 3, ms.Len())
}

func TestMoveSliceEqual(t *testing.T) {
	ms := MoveSlice{m1, m2, m3}
	assert.True(t, ms.Equal(MoveSlice{m3, m1, m2}), "order does not matter")
	assert.False(t, ms.Equal(MoveSlice{m1, m2}))
	assert.True(t, ms.Equal(ms.Clone()))
}

func TestMoveSliceStrings(t *testing.T) {
	ms := MoveSlice{m1, m3}
	assert.Equal(t, "e2e4 e1g1", ms.StringUci())
	assert.Equal(t, "", NewMoveSlice(0).StringUci())
}
