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

// Magic holds all magic bitboards relevant for a single square.
// We use the so called "fancy" approach where each square has its
// own table sized to the number of relevant occupancy bits.
// As a reference see https://www.chessprogramming.org/Magic_Bitboards
type Magic struct {
	Mask    Bitboard
	Magic   Bitboard
	Attacks []Bitboard
	Shift   uint
}

// index calculates the index into the attack table for the
// given board occupancy.
//  occ      &= mask
//  occ      *= magic   (overflow mod 2^64 intended)
//  occ     >>= shift
func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Magic
	occ >>= m.Shift
	return uint(occ)
}

var (
	rookDirections   = [4]Direction{North, East, South, West}
	bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}

	// magic bitboards - rook attacks
	rookTable  []Bitboard
	rookMagics [SqLength]Magic

	// magic bitboards - bishop attacks
	bishopTable  []Bitboard
	bishopMagics [SqLength]Magic
)

// initMagicBitboards builds the attack tables for rooks and bishops.
// The magic numbers themselves are not searched at startup - they are
// embedded as pre determined constants. Only the per index attack
// tables are filled here by enumerating all subsets of each square's
// relevant occupancy mask with the Carry-Rippler trick.
// https://www.chessprogramming.org/Traversing_Subsets_of_a_Set
func initMagicBitboards() {
	rookTable = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)
	fillMagics(rookTable, &rookMagics, &rookDirections, &rookMagicNumbers)
	fillMagics(bishopTable, &bishopMagics, &bishopDirections, &bishopMagicNumbers)
}

func fillMagics(table []Bitboard, magics *[SqLength]Magic, directions *[4]Direction, numbers *[SqLength]Bitboard) {
	offset := 0
	for sq := SqH1; sq < SqNone; sq++ {
		// board edges are not considered in the relevant occupancies
		edges := ((Rank1_Bb | Rank8_Bb) &^ sq.RankOf().Bb()) | ((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())

		m := &magics[sq]
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.Magic = numbers[sq]
		m.Shift = uint(64 - m.Mask.PopCount())

		size := 1 << uint(m.Mask.PopCount())
		m.Attacks = table[offset : offset+size]
		offset += size

		// Enumerate all subsets of the mask and store the attack set
		// under the magic index. Index collisions are only permitted
		// when both occupancies produce the identical attack set. A
		// violated check here means a broken magic constant which is
		// a programmer error - we abort.
		b := BbZero
		for {
			reference := slidingAttack(directions, sq, b)
			idx := m.index(b)
			// an attack set is never empty so zero means unused
			if m.Attacks[idx] != BbZero && m.Attacks[idx] != reference {
				panic(fmt.Sprintf("magic index conflict on square %s", sq.String()))
			}
			m.Attacks[idx] = reference
			b = (b - m.Mask) & m.Mask
			if b == BbZero {
				break
			}
		}
	}
	if offset != len(table) {
		panic(fmt.Sprintf("magic table size mismatch: %d != %d", offset, len(table)))
	}
}

// slidingAttack calculates sliding attacks along the given directions for the
// given square and the given board occupation. Uses a loop in a loop and is
// not very efficient. Doesn't matter for pre-computing but should not be used
// during move generation.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for i := 0; i < 4; i++ {
		for s := sq.To(directions[i]); s != SqNone; s = s.To(directions[i]) {
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// Pre determined magic numbers for the fancy magic bitboard scheme.
// These depend only on the relevant occupancy mask bit patterns of
// each square index and are therefore ordinary constants.
var bishopMagicNumbers = [SqLength]Bitboard{
	0x11410121040100,
	0x2084820928010,
	0xa010208481080040,
	0x214240082000610,
	0x4d104000400480,
	0x1012010804408,
	0x42044101452000c,
	0x2844804050104880,
	0x814204290a0a00,
	0x10280688224500,
	0x1080410101010084,
	0x10020a108408004,
	0x2482020210c80080,
	0x480104a0040400,
	0x411006404200810,
	0x1024010908024292,
	0x1004401001011a,
	0x810006081220080,
	0x1040404206004100,
	0x58080000820041ce,
	0x3406000422010890,
	0x1a004100520210,
	0x202a000048040400,
	0x225004441180110,
	0x8064240102240,
	0x1424200404010402,
	0x1041100041024200,
	0x8082002012008200,
	0x1010008104000,
	0x8808004000806000,
	0x380a000080c400,
	0x31040100042d0101,
	0x110109008082220,
	0x4010880204201,
	0x4006462082100300,
	0x4002010040140041,
	0x40090200250880,
	0x2010100c40c08040,
	0x12800ac01910104,
	0x10b20051020100,
	0x210894104828c000,
	0x50440220004800,
	0x1002011044180800,
	0x4220404010410204,
	0x1002204a2020401,
	0x21021001000210,
	0x4880081009402,
	0xc208088c088e0040,
	0x4188464200080,
	0x3810440618022200,
	0xc020310401040420,
	0x2000008208800e0,
	0x4c910240020,
	0x425100a8602a0,
	0x20c4206a0c030510,
	0x4c10010801184000,
	0x200202020a026200,
	0x6000004400841080,
	0xc14004121082200,
	0x400324804208800,
	0x1802200040504100,
	0x1820000848488820,
	0x8620682a908400,
	0x8010600084204240,
}

var rookMagicNumbers = [SqLength]Bitboard{
	0x2080008040002010,
	0x40200010004000,
	0x100090010200040,
	0x2080080010000480,
	0x880040080080102,
	0x8200106200042108,
	0x410041000408b200,
	0x100009a00402100,
	0x5800800020804000,
	0x848404010002000,
	0x101001820010041,
	0x10a0040100420080,
	0x8a02002006001008,
	0x926000844110200,
	0x8000800200800100,
	0x28060001008c2042,
	0x10818002204000,
	0x10004020004001,
	0x110002008002400,
	0x11a020010082040,
	0x2001010008000410,
	0x42010100080400,
	0x4004040008020110,
	0x820000840041,
	0x400080208000,
	0x2080200040005000,
	0x8000200080100080,
	0x4400080180500080,
	0x4900080080040080,
	0x4004004480020080,
	0x8006000200040108,
	0xc481000100006396,
	0x1000400080800020,
	0x201004400040,
	0x10008010802000,
	0x204012000a00,
	0x800400800802,
	0x284000200800480,
	0x3000403000200,
	0x840a6000514,
	0x4080c000228012,
	0x10002000444010,
	0x620001000808020,
	0xc210010010009,
	0x100c001008010100,
	0xc10020004008080,
	0x20100802040001,
	0x808008305420014,
	0xc010800840043080,
	0x208401020890100,
	0x10b0081020028280,
	0x6087001001220900,
	0xc080011000500,
	0x9810200040080,
	0x2000010882100400,
	0x2000050880540200,
	0x800020104200810a,
	0x6220250242008016,
	0x9180402202900a,
	0x40210500100009,
	0x6000814102026,
	0x410100080a040013,
	0x10405008022d1184,
	0x1000009400410822,
}
