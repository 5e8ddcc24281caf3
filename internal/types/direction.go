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

// Direction is a point of the compass for moving on the chess board.
// The values are the deltas on the square indexes. Squares are indexed
// H1=0, G1=1, ..., A1=7, H2=8, ..., A8=63 so moving west (towards the
// a-file) increases the index within a rank.
type Direction int8

// Constants for the 8 rays and the 8 knight jumps
const (
	North     Direction = 8
	East      Direction = -1
	South     Direction = -8
	West      Direction = 1
	Northeast Direction = 7
	Southeast Direction = -9
	Southwest Direction = -7
	Northwest Direction = 9

	// knight jumps - named after their dominant compass points
	NNE Direction = 15
	ENE Direction = 6
	ESE Direction = -10
	SSE Direction = -17
	SSW Direction = -15
	WSW Direction = -6
	WNW Direction = 10
	NNW Direction = 17
)

// Directions are the 8 rays in the order used for pre computed tables
var Directions = [8]Direction{North, East, South, West, Northeast, Southeast, Southwest, Northwest}

// KnightDirections are the 8 knight jumps
var KnightDirections = [8]Direction{NNE, ENE, ESE, SSE, SSW, WSW, WNW, NNW}
