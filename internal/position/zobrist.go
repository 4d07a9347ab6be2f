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
	. "github.com/kurotori/samegame-solver/internal/types"
)

// Key is a 64-bit Zobrist hash of a board's occupied (piece, square) pairs.
type Key uint64

// zobristTable holds a fixed 5x48 table of random 64-bit constants, one per
// (piece, square) pair. Index 0 of the piece dimension is unused.
type zobristTable struct {
	pieces [NumPieces + 1][NumSquares + 1]Key
}

var zobristBase = zobristTable{}

func init() {
	r := newKeyRandom(1070372)
	for p := Piece(1); p <= NumPieces; p++ {
		for sq := Square(1); sq <= NumSquares; sq++ {
			zobristBase.pieces[p][sq] = Key(r.rand64())
		}
	}
}

func zobristOf(p Piece, sq Square) Key {
	return zobristBase.pieces[p][sq]
}
