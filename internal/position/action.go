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

package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kurotori/samegame-solver/internal/board"
	. "github.com/kurotori/samegame-solver/internal/types"
)

// MaxHistory is the maximum number of captures in one game: each capture
// removes at least 2 of the board's 48 pieces.
const MaxHistory = NumSquares / 2

// Action is a single legal capture: a piece color and the connected
// component of that color being removed.
type Action struct {
	Piece Piece
	Mask  MaskBoard
}

// NewAction builds an Action, panicking if mask does not describe a legal
// capture (size < 2). Callers are expected to only construct actions from
// Position.Actions, which never violates this.
func NewAction(p Piece, mask MaskBoard) Action {
	if mask.PopCount() < 2 {
		panic(fmt.Sprintf("action: component of size %d is not capturable", mask.PopCount()))
	}
	return Action{Piece: p, Mask: mask}
}

// Size returns the number of squares captured.
func (a Action) Size() int {
	return a.Mask.PopCount()
}

// LeastSquare returns the move encoding: the numerically smallest square of
// the captured component.
func (a Action) LeastSquare() Square {
	return a.Mask.LeastSquare()
}

// ActionFromSquare reconstructs the Action that would be played by
// capturing the component containing sq on b.
func ActionFromSquare(b board.Board, sq Square) Action {
	p := b.Get(sq)
	return NewAction(p, b.PieceMask(p).FloodFill(sq))
}

// ActionHistory is the ordered sequence of move-encoding squares played so
// far, at most MaxHistory entries.
type ActionHistory struct {
	squares []Square
}

// NewActionHistory returns an empty history.
func NewActionHistory() ActionHistory {
	return ActionHistory{squares: make([]Square, 0, MaxHistory)}
}

// Push appends the least-square encoding of a played action.
func (h *ActionHistory) Push(sq Square) {
	h.squares = append(h.squares, sq)
}

// RemoveLast drops the most recently pushed entry.
func (h *ActionHistory) RemoveLast() {
	h.squares = h.squares[:len(h.squares)-1]
}

// Len returns the number of recorded moves.
func (h ActionHistory) Len() int {
	return len(h.squares)
}

// Squares returns the recorded move-encoding squares in play order.
func (h ActionHistory) Squares() []Square {
	return h.squares
}

// Clone returns a copy that shares no backing array with h.
func (h ActionHistory) Clone() ActionHistory {
	out := NewActionHistory()
	out.squares = append(out.squares, h.squares...)
	return out
}

// String renders the history as whitespace-separated "col,row" tokens.
func (h ActionHistory) String() string {
	parts := make([]string, len(h.squares))
	for i, sq := range h.squares {
		parts[i] = sq.String()
	}
	return strings.Join(parts, " ")
}

// ParseActionHistory parses the whitespace-separated "col,row" text format.
func ParseActionHistory(text string) (ActionHistory, error) {
	h := NewActionHistory()
	text = strings.TrimSpace(text)
	if text == "" {
		return h, nil
	}
	for _, tok := range strings.Fields(text) {
		sq, err := parseSquareToken(tok)
		if err != nil {
			return ActionHistory{}, err
		}
		if h.Len() >= MaxHistory {
			return ActionHistory{}, fmt.Errorf("action history: more than %d moves", MaxHistory)
		}
		h.Push(sq)
	}
	return h, nil
}

func parseSquareToken(tok string) (Square, error) {
	parts := strings.SplitN(tok, ",", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("action history: malformed token %q", tok)
	}
	col, err := strconv.Atoi(parts[0])
	if err != nil || col < 1 || col > NumCols {
		return 0, fmt.Errorf("action history: invalid column in %q", tok)
	}
	row, err := strconv.Atoi(parts[1])
	if err != nil || row < 1 || row > NumRows {
		return 0, fmt.Errorf("action history: invalid row in %q", tok)
	}
	return NewSquare(Col(col), Row(row)), nil
}
