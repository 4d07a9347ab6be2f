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

// keyRandom is a xorshift64star generator used only to seed the fixed
// Zobrist constant table at package init. It is not the in-game RNG and
// carries no bit-exactness requirement of its own.
type keyRandom struct{ s uint64 }

func newKeyRandom(seed uint64) *keyRandom {
	if seed == 0 {
		panic("keyRandom: seed must not be zero")
	}
	return &keyRandom{s: seed}
}

func (r *keyRandom) rand64() uint64 {
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	r.s ^= r.s >> 12
	return r.s * 2685821657736338717
}
