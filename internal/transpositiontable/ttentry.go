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

package transpositiontable

// entry is the 64-bit packed word for one slot: a 16-bit generation tag in
// the low bits, a 14-bit score field next, and the top 34 bits holding the
// part of the Zobrist key not used to compute the slot index.
//
// The score field always stores 1+value, so a live entry is never the
// all-zero word even when generation and key-hi happen to both be zero.
// That makes "slot unused" exactly the all-zero word, with no separate
// presence bit needed.
type entry uint64

const (
	generationBits = 16
	scoreBits      = 14
	scoreShift     = generationBits
	keyHiShift     = generationBits + scoreBits // 30

	generationMask = entry(1<<generationBits) - 1
	scoreMask      = entry(1<<scoreBits) - 1
)

func packEntry(generation uint16, score int, keyHi uint64) entry {
	return entry(generation) |
		(entry(score+1)&scoreMask)<<scoreShift |
		entry(keyHi)<<keyHiShift
}

func (e entry) generation() uint16 {
	return uint16(e & generationMask)
}

// score returns the stored value, undoing the +1 encoding. Only meaningful
// when e != 0.
func (e entry) score() int {
	return int((e>>scoreShift)&scoreMask) - 1
}

func (e entry) keyHi() uint64 {
	return uint64(e >> keyHiShift)
}
