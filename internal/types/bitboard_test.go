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
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
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

func TestPushPopHas(t *testing.T) {
	var m MaskBoard
	sq := NewSquare(3, 4)
	assert.False(t, m.Has(sq))
	m = m.PushSquare(sq)
	assert.True(t, m.Has(sq))
	assert.Equal(t, 1, m.PopCount())
	m = m.PopSquare(sq)
	assert.True(t, m.IsEmpty())
}

func TestLeastSquareAndSquares(t *testing.T) {
	var m MaskBoard
	m = m.PushSquare(NewSquare(2, 1))
	m = m.PushSquare(NewSquare(1, 1))
	m = m.PushSquare(NewSquare(1, 3))
	assert.Equal(t, NewSquare(1, 1), m.LeastSquare())
	assert.Equal(t, 3, m.PopCount())
	assert.Equal(t, []Square{NewSquare(1, 1), NewSquare(1, 3), NewSquare(2, 1)}, m.Squares())
}

func TestIsSingle(t *testing.T) {
	var m MaskBoard
	assert.False(t, m.IsSingle())
	m = m.PushSquare(NewSquare(1, 1))
	assert.True(t, m.IsSingle())
	m = m.PushSquare(NewSquare(1, 2))
	assert.False(t, m.IsSingle())
}

func TestFloodFillWithinColumn(t *testing.T) {
	var m MaskBoard
	m = m.PushSquare(NewSquare(1, 1))
	m = m.PushSquare(NewSquare(1, 2))
	m = m.PushSquare(NewSquare(1, 4)) // gap at row 3: disconnected from the first two
	region := m.FloodFill(NewSquare(1, 1))
	assert.Equal(t, 2, region.PopCount())
	assert.True(t, region.Has(NewSquare(1, 1)))
	assert.True(t, region.Has(NewSquare(1, 2)))
	assert.False(t, region.Has(NewSquare(1, 4)))
}

func TestFloodFillAcrossColumns(t *testing.T) {
	var m MaskBoard
	m = m.PushSquare(NewSquare(1, 1))
	m = m.PushSquare(NewSquare(2, 1))
	m = m.PushSquare(NewSquare(3, 1))
	region := m.FloodFill(NewSquare(2, 1))
	assert.Equal(t, m, region)
}

func TestShiftDoesNotWrapColumns(t *testing.T) {
	var m MaskBoard
	m = m.PushSquare(NewSquare(1, NumRows)) // top of column 1
	north := m.shift(north)
	assert.True(t, north.IsEmpty(), "shifting the top row north must not wrap into column 2's bottom row")
}

func TestFullMaskPopCount(t *testing.T) {
	assert.Equal(t, NumSquares, FullMask.PopCount())
}
