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

// Package position combines a board with its Zobrist key and per-color
// piece counts, and implements move generation and application.
package position

import (
	"github.com/kurotori/samegame-solver/internal/board"
	. "github.com/kurotori/samegame-solver/internal/types"
)

// Position is an immutable value: a board, its Zobrist key, and per-color
// piece counts, kept consistent by construction.
type Position struct {
	board  board.Board
	key    Key
	counts [NumPieces + 1]int
}

// NewPosition builds a Position from a board, computing its key and counts
// from scratch.
func NewPosition(b board.Board) Position {
	pos := Position{board: b}
	for p := Piece(1); p <= NumPieces; p++ {
		mask := b.PieceMask(p)
		pos.counts[p] = mask.PopCount()
		for _, sq := range mask.Squares() {
			pos.key ^= zobristOf(p, sq)
		}
	}
	return pos
}

// Board returns the underlying board.
func (pos Position) Board() board.Board {
	return pos.board
}

// Key returns the Zobrist key.
func (pos Position) Key() Key {
	return pos.key
}

// PieceCount returns the number of remaining pieces of color p.
func (pos Position) PieceCount(p Piece) int {
	return pos.counts[p]
}

// IsEmpty reports whether the board has no pieces left.
func (pos Position) IsEmpty() bool {
	return pos.board.IsEmpty()
}

// Actions returns every legal capture: one per maximal same-color component
// of size >= 2. Order is deterministic (ascending color, then ascending
// least square), matching Board.PieceComponents.
func (pos Position) Actions() []Action {
	comps := pos.board.PieceComponents()
	actions := make([]Action, 0, len(comps))
	for _, c := range comps {
		if c.Mask.PopCount() >= 2 {
			actions = append(actions, Action{Piece: c.Piece, Mask: c.Mask})
		}
	}
	return actions
}

// HasAction reports whether any legal capture exists.
func (pos Position) HasAction() bool {
	for p := Piece(1); p <= NumPieces; p++ {
		mask := pos.board.PieceMask(p)
		for !mask.IsEmpty() {
			seed := mask.LeastSquare()
			region := mask.FloodFill(seed)
			if region.PopCount() >= 2 {
				return true
			}
			mask &^= region
		}
	}
	return false
}

// DoAction applies action, returning the resulting Position. The Zobrist
// key is updated incrementally over every square whose occupant changed.
// Gravity and column compaction can move a different-colored piece into a
// square that was, and remains, occupied (a squares's occupancy bit alone
// does not reveal this), so every square in a column touched by the
// capture is compared old-versus-new rather than relying on an occupancy
// mask diff. Column compaction can also shift an entire column's worth of
// squares left by one or more columns, so every column from the capture's
// leftmost column to the board's last column is checked.
func (pos Position) DoAction(a Action) Position {
	newBoard := pos.board.Erase(a.Mask)

	next := Position{board: newBoard, key: pos.key, counts: pos.counts}
	next.counts[a.Piece] -= a.Size()

	leftmost := Col(NumCols)
	for _, sq := range a.Mask.Squares() {
		if sq.Col() < leftmost {
			leftmost = sq.Col()
		}
	}
	for c := leftmost; c <= NumCols; c++ {
		for r := Row(1); r <= NumRows; r++ {
			sq := NewSquare(c, r)
			oldP := pos.board.Get(sq)
			newP := newBoard.Get(sq)
			if oldP == newP {
				continue
			}
			if oldP != PieceNone {
				next.key ^= zobristOf(oldP, sq)
			}
			if newP != PieceNone {
				next.key ^= zobristOf(newP, sq)
			}
		}
	}
	return next
}
