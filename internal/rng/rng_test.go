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

package rng

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kurotori/samegame-solver/internal/types"
)

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}

// Gen's exact output for a given (state, counter) pair is only meaningful
// compared against the game's own ROM or a reference corpus snapshot -
// neither of which this repository can execute against - so these tests
// check the properties spec.md actually requires: determinism, output
// range, and that inputs the generator is supposed to be sensitive to
// really do change its output. They deliberately do not assert a specific
// magic output byte.

func TestGenIsDeterministic(t *testing.T) {
	g1 := New(0x1234)
	g2 := New(0x1234)
	for i := 0; i < 64; i++ {
		c := uint8(i)
		assert.Equal(t, g1.Gen(c), g2.Gen(c))
	}
}

func TestGenPieceAlwaysInRange(t *testing.T) {
	g := New(0xBEEF)
	for i := 0; i < 1000; i++ {
		p := g.GenPiece(uint8(i))
		assert.True(t, p.IsValid(), "piece %d out of 1..%d range", p, NumPieces)
	}
}

func TestGenRespondsToCounter(t *testing.T) {
	// Two generators with the same seed fed different counters at the very
	// first draw must diverge in internal state (the counter is XORed
	// directly into the state before the output byte is derived).
	g1 := New(0x0001)
	g2 := New(0x0001)
	g1.Gen(0x00)
	g2.Gen(0xFF)
	assert.NotEqual(t, g1.State(), g2.State())
}

func TestGenBoardReproducible(t *testing.T) {
	b1, pieces1, ok1, err1 := GenBoard(0x1234, 0x56, 40)
	b2, pieces2, ok2, err2 := GenBoard(0x1234, 0x56, 40)
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, pieces1, pieces2)
	assert.Equal(t, b1, b2)
}

func TestGenBoardRejectsOutOfRangeIncTiming(t *testing.T) {
	_, _, ok, err := GenBoard(0, 0, NumSquares+1)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestGenBoardEitherRejectsOrProducesValidBoard(t *testing.T) {
	// Sweep a handful of seeds through the re-roll predicate: whatever the
	// outcome, a successful draw must be a board ParseBoard itself accepts
	// (GenBoard routes through board.ParseBoard for exactly this reason).
	for state := 0; state < 256; state++ {
		b, pieces, ok, err := GenBoard(uint16(state), 0x00, 40)
		assert.NoError(t, err)
		if !ok {
			continue
		}
		for _, p := range pieces {
			assert.True(t, p.IsValid())
		}
		assert.Equal(t, NumSquares, b.Occupancy().PopCount(),
			"an accepted draw fills every square - the generator never leaves gaps")
	}
}
