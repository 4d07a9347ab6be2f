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

package types

import (
	"math/bits"
	"strings"
)

// MaskBoard is a 48-bit subset of the board's squares, one bit per square
// using the same column-major indexing as Square (bit sq-1 for square sq).
type MaskBoard uint64

const (
	// FullMask covers all 48 squares.
	FullMask MaskBoard = (1 << NumSquares) - 1

	// row1Mask has a bit set for every square in row 1 (the bottom row).
	row1Mask MaskBoard = 0x041041041041 & FullMask
	// rowTopMask has a bit set for every square in the top row.
	rowTopMask = row1Mask << (NumRows - 1)
)

// direction identifies one of the four 4-adjacency neighbor shifts.
type direction int8

const (
	north direction = iota
	south
	east
	west
)

// PushSquare sets the bit for sq.
func (m MaskBoard) PushSquare(sq Square) MaskBoard {
	return m | bitOf(sq)
}

// PopSquare clears the bit for sq.
func (m MaskBoard) PopSquare(sq Square) MaskBoard {
	return m &^ bitOf(sq)
}

// Has reports whether sq is a member of m.
func (m MaskBoard) Has(sq Square) bool {
	return m&bitOf(sq) != 0
}

// PopCount returns the number of squares in m.
func (m MaskBoard) PopCount() int {
	return bits.OnesCount64(uint64(m))
}

// IsEmpty reports whether m has no squares.
func (m MaskBoard) IsEmpty() bool {
	return m == 0
}

// IsSingle reports whether m has exactly one square.
func (m MaskBoard) IsSingle() bool {
	return m != 0 && m&(m-1) == 0
}

// LeastSquare returns the numerically smallest square in m. The result is
// undefined if m is empty.
func (m MaskBoard) LeastSquare() Square {
	return Square(bits.TrailingZeros64(uint64(m)) + 1)
}

// Squares returns the members of m in ascending square order.
func (m MaskBoard) Squares() []Square {
	sqs := make([]Square, 0, m.PopCount())
	for b := m; b != 0; {
		sq := b.LeastSquare()
		sqs = append(sqs, sq)
		b = b.PopSquare(sq)
	}
	return sqs
}

// shift moves every bit of m one square in the given direction, discarding
// bits that would wrap to an unrelated column.
func (m MaskBoard) shift(d direction) MaskBoard {
	switch d {
	case north:
		return (m &^ rowTopMask) << 1
	case south:
		return (m &^ row1Mask) >> 1
	case east:
		return (m << NumRows) & FullMask
	case west:
		return m >> NumRows
	default:
		return 0
	}
}

// neighbors returns the set of squares 4-adjacent to any square in m.
func (m MaskBoard) neighbors() MaskBoard {
	return m.shift(north) | m.shift(south) | m.shift(east) | m.shift(west)
}

// FloodFill returns the maximal subset of m that is connected to seed under
// 4-adjacency, computed as a shift-and-mask fixed point.
func (m MaskBoard) FloodFill(seed Square) MaskBoard {
	frontier := bitOf(seed) & m
	for {
		next := (frontier | frontier.neighbors()) & m
		if next == frontier {
			return frontier
		}
		frontier = next
	}
}

// String renders m as a 48-character grid, top row first, '.' for absent
// and 'x' for present, matching the board text layout without color info.
func (m MaskBoard) String() string {
	var sb strings.Builder
	for r := Row(NumRows); r >= 1; r-- {
		for c := Col(1); c <= NumCols; c++ {
			if m.Has(NewSquare(c, r)) {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('.')
			}
		}
		if r > 1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func bitOf(sq Square) MaskBoard {
	return 1 << (sq - 1)
}
