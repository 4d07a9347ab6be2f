/*
 * samegame-solver
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package transpositiontable

import (
	"os"
	"path"
	"runtime"
	"testing"
	"unsafe"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/kurotori/samegame-solver/internal/config"
	"github.com/kurotori/samegame-solver/internal/logging"
	"github.com/kurotori/samegame-solver/internal/position"
)

var logTest *logging2.Logger

// make tests run in the project's root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestEntrySize(t *testing.T) {
	var e entry
	assert.EqualValues(t, 8, unsafe.Sizeof(e))
	logTest.Debugf("Size of entry %d bytes", unsafe.Sizeof(e))
}

func TestNewTable(t *testing.T) {
	tt := NewTable(2)
	assert.Equal(t, uint64(262_144), tt.maxEntries)
	assert.Equal(t, 262_144, cap(tt.data))
	logTest.Debug(tt.String())

	tt = NewTable(64)
	assert.Equal(t, uint64(8_388_608), tt.maxEntries)
	assert.Equal(t, 8_388_608, cap(tt.data))

	tt = NewTable(100)
	assert.Equal(t, uint64(8_388_608), tt.maxEntries)

	tt = NewTable(MaxSizeInMB + 1)
	assert.Equal(t, uint64(MaxSizeInMB)*MB/entrySize, tt.maxEntries)
}

func TestProbeMissThenHit(t *testing.T) {
	tt := NewTable(4)

	key := position.Key(0xDEADBEEF)
	r := tt.Probe(key)
	assert.False(t, r.Found)
	assert.EqualValues(t, 1, tt.Len())

	tt.SetScore(r.Index, 42)

	r2 := tt.Probe(key)
	assert.True(t, r2.Found)
	assert.Equal(t, 42, r2.Score)
}

func TestProbeDistinctKeysDoNotCollideSilently(t *testing.T) {
	tt := NewTable(1)

	k1 := position.Key(1)
	k2 := position.Key(1 + 1<<keyHiShift) // same index bits, different keyHi

	r1 := tt.Probe(k1)
	assert.False(t, r1.Found)
	tt.SetScore(r1.Index, 10)

	r2 := tt.Probe(k2)
	assert.False(t, r2.Found)
	assert.NotEqual(t, r1.Index, r2.Index)
	tt.SetScore(r2.Index, 20)

	got1 := tt.Probe(k1)
	assert.True(t, got1.Found)
	assert.Equal(t, 10, got1.Score)

	got2 := tt.Probe(k2)
	assert.True(t, got2.Found)
	assert.Equal(t, 20, got2.Score)
}

func TestNegativeScoreRoundTrips(t *testing.T) {
	tt := NewTable(1)
	key := position.Key(7)
	r := tt.Probe(key)
	tt.SetScore(r.Index, -1)
	got := tt.Probe(key)
	assert.True(t, got.Found)
	assert.Equal(t, -1, got.Score)
}

func TestNextGenerationInvalidatesOldEntries(t *testing.T) {
	tt := NewTable(1)
	key := position.Key(99)

	r := tt.Probe(key)
	tt.SetScore(r.Index, 7)
	assert.True(t, tt.Probe(key).Found)

	tt.NextGeneration()

	miss := tt.Probe(key)
	assert.False(t, miss.Found)
}

func TestClearResetsTable(t *testing.T) {
	tt := NewTable(1)
	key := position.Key(55)
	r := tt.Probe(key)
	tt.SetScore(r.Index, 3)
	assert.EqualValues(t, 1, tt.Len())

	tt.Clear()

	assert.EqualValues(t, 0, tt.Len())
	assert.False(t, tt.Probe(key).Found)
}

func TestHashfull(t *testing.T) {
	tt := NewTable(1)
	assert.Equal(t, 0, tt.Hashfull())

	for i := 0; i < 1000; i++ {
		tt.Probe(position.Key(i))
	}
	assert.Greater(t, tt.Hashfull(), 0)
}

func TestZeroSizeTableIsInert(t *testing.T) {
	tt := NewTable(0)
	assert.Equal(t, uint64(0), tt.maxEntries)
	r := tt.Probe(position.Key(1))
	assert.False(t, r.Found)
	assert.Equal(t, 0, tt.Hashfull())
}
