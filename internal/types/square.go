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

// Package types holds the small value types shared across the board, position
// and search packages: columns, rows, squares and pieces.
package types

import "fmt"

// Col is a board column, 1..NumCols. Zero means "absent".
type Col uint8

// Row is a board row, 1..NumRows, counted bottom-up. Zero means "absent".
type Row uint8

// Square is a board square, 1..NumSquares. Zero means "absent".
type Square uint8

const (
	// NumCols is the board width.
	NumCols = 8
	// NumRows is the board height.
	NumRows = 6
	// NumSquares is the total number of squares on the board.
	NumSquares = NumCols * NumRows

	// SquareNone represents an absent square.
	SquareNone Square = 0
)

// NewSquare packs a 1-based (col, row) pair into its column-major square
// index: sq = NumRows*(col-1) + (row-1) + 1, so squares run 1..NumSquares.
func NewSquare(col Col, row Row) Square {
	return Square(int(NumRows)*(int(col)-1) + int(row))
}

// Col returns the column of the square, 1-based.
func (s Square) Col() Col {
	return Col((int(s)-1)/NumRows + 1)
}

// Row returns the row of the square, 1-based, bottom-up.
func (s Square) Row() Row {
	return Row((int(s)-1)%NumRows + 1)
}

// IsValid reports whether s is a legal, non-absent square.
func (s Square) IsValid() bool {
	return s >= 1 && s <= NumSquares
}

func (c Col) String() string { return fmt.Sprintf("%d", uint8(c)) }
func (r Row) String() string { return fmt.Sprintf("%d", uint8(r)) }

// String renders a square in "col,row" form, matching the action-history
// text format.
func (s Square) String() string {
	return fmt.Sprintf("%d,%d", uint8(s.Col()), uint8(s.Row()))
}
