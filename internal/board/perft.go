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
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/CastorGo/internal/util"
)

var out = message.NewPrinter(language.German)

// Perft is a move generation test driver counting the leaf nodes
// of the legal move tree to a given depth. It is the standard
// instrument to verify the correctness of the move generator.
type Perft struct {
	Nodes uint64
}

// StartPerft runs perft on the given position to the given depth
// and returns the node count. With log output enabled the result
// and the nodes per second are printed.
func (p *Perft) StartPerft(fen string, depth int, logOut bool) uint64 {
	b, err := NewFen(fen)
	if err != nil {
		getLog().Errorf("perft: %s", err)
		return 0
	}
	start := time.Now()
	p.Nodes = perft(b, depth)
	elapsed := time.Since(start)
	if logOut {
		out.Printf("Perft depth %d: %d nodes in %d ms (%d nps)\n",
			depth, p.Nodes, elapsed.Milliseconds(), util.Nps(p.Nodes, elapsed))
	}
	return p.Nodes
}

// StartPerftParallel runs perft with the root moves split onto one
// goroutine each. Every goroutine works on its own copy of the
// board - the boards share only the immutable pre computed tables.
func (p *Perft) StartPerftParallel(fen string, depth int, logOut bool) uint64 {
	b, err := NewFen(fen)
	if err != nil {
		getLog().Errorf("perft: %s", err)
		return 0
	}
	if depth < 2 {
		return p.StartPerft(fen, depth, logOut)
	}
	start := time.Now()
	var nodes uint64
	var g errgroup.Group
	for _, m := range b.GenerateMoves(GenAll) {
		move := m
		root := b.Copy()
		g.Go(func() error {
			root.DoMove(move)
			atomic.AddUint64(&nodes, perft(root, depth-1))
			return nil
		})
	}
	_ = g.Wait()
	p.Nodes = nodes
	elapsed := time.Since(start)
	if logOut {
		out.Printf("Perft (parallel) depth %d: %d nodes in %d ms (%d nps)\n",
			depth, p.Nodes, elapsed.Milliseconds(), util.Nps(p.Nodes, elapsed))
	}
	return p.Nodes
}

func perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateMoves(GenAll)
	if depth == 1 {
		return uint64(moves.Len())
	}
	var nodes uint64
	for _, m := range moves {
		b.DoMove(m)
		nodes += perft(b, depth-1)
		_, _ = b.UndoMove()
	}
	return nodes
}
