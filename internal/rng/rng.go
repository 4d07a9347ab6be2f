//
// samegame-solver
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package rng reproduces the game's 16-bit board-generation generator
// bit-exactly, and builds the resulting 48-piece board.
package rng

import (
	"fmt"

	"github.com/kurotori/samegame-solver/internal/board"
	. "github.com/kurotori/samegame-solver/internal/types"
)

// GameRng is the in-game 16-bit generator. It takes an external 8-bit
// counter at every draw rather than carrying one internally.
type GameRng struct {
	state uint16
}

// New returns a generator seeded at the given 16-bit state.
func New(state uint16) GameRng {
	return GameRng{state: state}
}

// State returns the current 16-bit internal state.
func (g GameRng) State() uint16 {
	return g.state
}

// Gen advances the generator with external counter c and returns the next
// 8-bit pseudorandom output.
func (g *GameRng) Gen(c uint8) uint8 {
	bit := uint16((g.state>>14)^g.state) & 1
	g.state ^= (g.state << 8) | uint16(c)
	g.state = (g.state << 1) | bit
	return uint8(g.state ^ (g.state >> 8))
}

// GenPiece draws one piece color using counter c.
func (g *GameRng) GenPiece(c uint8) Piece {
	b := g.Gen(c)
	return Piece(1 + (5*uint16(b))>>8)
}

// GenBoard reproduces the game's board-construction procedure for
// parameters (state0, counter, incTiming): incTiming pieces are drawn with
// counter C=counter, then the remaining 48-incTiming pieces are drawn with
// counter C=counter+1 (wrapping), filling the 48 squares row by row from
// the bottom row up, columns left to right within each row. ok is false if
// the resulting arrangement fails the game's re-roll predicate.
func GenBoard(state0 uint16, counter uint8, incTiming int) (b board.Board, pieces [NumSquares]Piece, ok bool, err error) {
	if incTiming < 0 || incTiming > NumSquares {
		return board.Board{}, pieces, false, fmt.Errorf("rng: inc_timing %d out of range 0..%d", incTiming, NumSquares)
	}

	g := New(state0)
	idx := 0
	for ; idx < incTiming; idx++ {
		pieces[idx] = g.GenPiece(counter)
	}
	c2 := counter + 1
	for ; idx < NumSquares; idx++ {
		pieces[idx] = g.GenPiece(c2)
	}

	text := renderPieces(pieces)
	b, perr := board.ParseBoard(text)
	if perr != nil {
		// A failure here is exactly the game's re-roll predicate: the
		// row-major draw order failed to produce a board the column
		// invariants accept.
		return board.Board{}, pieces, false, nil
	}
	return b, pieces, true, nil
}

// renderPieces lays out a fully-drawn 48-piece sequence into board text:
// draw index 0 is row 1 column 1, index 7 is row 1 column 8, index 8 is row
// 2 column 1, and so on; board text itself is printed top row first.
func renderPieces(pieces [NumSquares]Piece) string {
	var grid [NumRows + 1][NumCols + 1]Piece
	idx := 0
	for r := Row(1); r <= NumRows; r++ {
		for c := Col(1); c <= NumCols; c++ {
			grid[r][c] = pieces[idx]
			idx++
		}
	}

	buf := make([]byte, 0, NumRows*(NumCols+1))
	for r := Row(NumRows); r >= 1; r-- {
		for c := Col(1); c <= NumCols; c++ {
			buf = append(buf, byte('0'+grid[r][c]))
		}
		if r > 1 {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}
