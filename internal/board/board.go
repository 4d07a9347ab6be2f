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

// Package board implements the 8x6 puzzle grid: per-color bitboard masks,
// the erase/gravity/compaction transform, and connected-component
// enumeration.
package board

import (
	"fmt"
	"strings"

	. "github.com/kurotori/samegame-solver/internal/types"
)

// Board holds five disjoint per-color masks over the 48 squares. Index 0 of
// colors is unused; colors are 1..NumPieces.
type Board struct {
	colors [NumPieces + 1]MaskBoard
}

// Empty is the board with no pieces.
var Empty = Board{}

// Component pairs a piece color with one maximal connected region of that
// color.
type Component struct {
	Piece Piece
	Mask  MaskBoard
}

// Get returns the piece occupying sq, or PieceNone if sq is empty.
func (b Board) Get(sq Square) Piece {
	for p := Piece(1); p <= NumPieces; p++ {
		if b.colors[p].Has(sq) {
			return p
		}
	}
	return PieceNone
}

// PieceMask returns the mask of squares occupied by p.
func (b Board) PieceMask(p Piece) MaskBoard {
	return b.colors[p]
}

// PieceCount returns the number of squares occupied by p.
func (b Board) PieceCount(p Piece) int {
	return b.colors[p].PopCount()
}

// Occupancy returns the union of all color masks.
func (b Board) Occupancy() MaskBoard {
	var occ MaskBoard
	for p := Piece(1); p <= NumPieces; p++ {
		occ |= b.colors[p]
	}
	return occ
}

// IsEmpty reports whether the board has no pieces.
func (b Board) IsEmpty() bool {
	return b.Occupancy().IsEmpty()
}

// XorMask returns the symmetric difference of b's and other's occupancy.
func (b Board) XorMask(other Board) MaskBoard {
	return b.Occupancy() ^ other.Occupancy()
}

// PieceComponents enumerates every maximal same-color connected region on
// the board, including singletons. Order is by ascending color, then by the
// ascending least square of each component first encountered.
func (b Board) PieceComponents() []Component {
	var comps []Component
	for p := Piece(1); p <= NumPieces; p++ {
		remaining := b.colors[p]
		for !remaining.IsEmpty() {
			seed := remaining.LeastSquare()
			region := remaining.FloodFill(seed)
			comps = append(comps, Component{Piece: p, Mask: region})
			remaining &^= region
		}
	}
	return comps
}

// Erase removes every square in mask, then applies gravity (pack each
// column's survivors down to row 1) and column compaction (shift surviving
// columns left to close any gap left by a now-empty column).
func (b Board) Erase(mask MaskBoard) Board {
	var columns [NumCols + 1][]Piece // index 1..NumCols, bottom-to-top survivors

	for c := Col(1); c <= NumCols; c++ {
		col := make([]Piece, 0, NumRows)
		for r := Row(1); r <= NumRows; r++ {
			sq := NewSquare(c, r)
			if mask.Has(sq) {
				continue
			}
			if p := b.Get(sq); p != PieceNone {
				col = append(col, p)
			}
		}
		columns[c] = col
	}

	var out Board
	destCol := Col(1)
	for c := Col(1); c <= NumCols; c++ {
		col := columns[c]
		if len(col) == 0 {
			continue
		}
		for i, p := range col {
			out.colors[p] = out.colors[p].PushSquare(NewSquare(destCol, Row(i+1)))
		}
		destCol++
	}
	return out
}

// ParseBoard parses the six-line board text format (top row first, '.' for
// empty, '1'..'5' for colors) into a Board.
func ParseBoard(text string) (Board, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != NumRows {
		return Board{}, fmt.Errorf("board text: expected %d lines, got %d", NumRows, len(lines))
	}

	var b Board
	for i, line := range lines {
		row := Row(NumRows - i)
		if len(line) != NumCols {
			return Board{}, fmt.Errorf("board text: line %d has %d columns, want %d", i+1, len(line), NumCols)
		}
		for j, ch := range line {
			col := Col(j + 1)
			switch {
			case ch == '.':
				// empty, nothing to set
			case ch >= '1' && ch <= '5':
				p := Piece(ch - '0')
				b.colors[p] = b.colors[p].PushSquare(NewSquare(col, row))
			default:
				return Board{}, fmt.Errorf("board text: invalid character %q at line %d col %d", ch, i+1, j+1)
			}
		}
	}

	if err := b.validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// validate checks the bottom-anchored-contiguity invariant for every column.
func (b Board) validate() error {
	occ := b.Occupancy()
	for c := Col(1); c <= NumCols; c++ {
		seenGap := false
		for r := Row(1); r <= NumRows; r++ {
			present := occ.Has(NewSquare(c, r))
			if !present {
				seenGap = true
			} else if seenGap {
				return fmt.Errorf("board: column %d has a floating piece above an empty row", c)
			}
		}
	}
	return nil
}

// String renders the board in the six-line board text format, one line per
// row terminated by '\n' (including the last), matching the line-oriented
// format ParseBoard and the CLI output both document.
func (b Board) String() string {
	var sb strings.Builder
	for r := Row(NumRows); r >= 1; r-- {
		for c := Col(1); c <= NumCols; c++ {
			sb.WriteString(b.Get(NewSquare(c, r)).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
