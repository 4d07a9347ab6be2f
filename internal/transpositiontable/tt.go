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

// Package transpositiontable implements the fixed-size, open-addressed,
// generation-tagged hash table both solve modes use to memoize subgame
// results keyed by Zobrist key. Table is not thread safe; Clear and
// NextGeneration must not run concurrently with Probe/SetScore.
package transpositiontable

import (
	"math"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/kurotori/samegame-solver/internal/logging"
	"github.com/kurotori/samegame-solver/internal/position"
)

var out = message.NewPrinter(language.German)

const (
	// MB is one megabyte in bytes.
	MB uint64 = 1024 * 1024
	// MaxSizeInMB caps the requested allocation; 2^30 entries at 8 bytes each is 8192MB.
	MaxSizeInMB = 8192
	// entrySize is the size in bytes of one packed entry.
	entrySize = 8
)

// Result is the outcome of a Probe call. Index always identifies the slot
// that now holds (or will hold) this key's entry, whether or not Found.
type Result struct {
	Found bool
	Score int
	Index uint64
}

// Table is the transposition table. Entries are interpreted by callers as
// either an exact memoized gain or a pruning upper bound depending on the
// search mode; the table itself only implements packing, probing, and
// generational invalidation.
type Table struct {
	log             *logging.Logger
	data            []entry
	sizeInByte      uint64
	indexMask       uint64
	maxEntries      uint64
	numberOfEntries uint64
	generation      uint16
	Stats           Stats
}

// Stats holds usage counters for diagnostics.
type Stats struct {
	numberOfProbes uint64
	numberOfHits   uint64
	numberOfMisses uint64
	numberOfWrites uint64
}

// NewTable creates a Table sized to the largest power of two of entries
// fitting in sizeInMByte.
func NewTable(sizeInMByte int) *Table {
	tt := &Table{
		log:        myLogging.GetLog(),
		generation: 1,
	}
	tt.resize(sizeInMByte)
	return tt
}

func (tt *Table) resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Warning(out.Sprintf("Requested TT size %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}
	if sizeInMByte < 0 {
		sizeInMByte = 0
	}

	tt.sizeInByte = uint64(sizeInMByte) * MB
	tt.maxEntries = 0
	if tt.sizeInByte >= entrySize {
		tt.maxEntries = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/entrySize))))
	}
	tt.indexMask = tt.maxEntries - 1
	tt.sizeInByte = tt.maxEntries * entrySize

	tt.data = make([]entry, tt.maxEntries)
	tt.numberOfEntries = 0
	tt.generation = 1
	tt.Stats = Stats{}

	tt.log.Info(out.Sprintf("TT size %d MByte, capacity %d entries (%d Byte each, requested %d MByte)",
		tt.sizeInByte/MB, tt.maxEntries, unsafe.Sizeof(entry(0)), sizeInMByte))
}

func (tt *Table) index(key position.Key) uint64 {
	return uint64(key) & tt.indexMask
}

func (tt *Table) keyHi(key position.Key) uint64 {
	return uint64(key) >> keyHiShift
}

// Probe walks the linear probe chain starting at key's low bits. A slot is
// treated as vacant, and immediately reserved with a placeholder score of
// 0 under the current generation and this key's high bits, whenever it is
// the all-zero word or carries a stale generation. The caller overwrites
// the placeholder with the real score via SetScore once it has one.
func (tt *Table) Probe(key position.Key) Result {
	tt.Stats.numberOfProbes++
	if tt.maxEntries == 0 {
		return Result{Found: false}
	}

	hi := tt.keyHi(key)
	for idx := tt.index(key); ; idx = (idx + 1) & tt.indexMask {
		e := tt.data[idx]
		if e == 0 || e.generation() != tt.generation {
			tt.data[idx] = packEntry(tt.generation, 0, hi)
			tt.numberOfEntries++
			tt.Stats.numberOfMisses++
			return Result{Found: false, Index: idx}
		}
		if e.keyHi() == hi {
			tt.Stats.numberOfHits++
			return Result{Found: true, Score: e.score(), Index: idx}
		}
	}
}

// SetScore overwrites the score field of the entry at index, preserving
// its generation and key-hi bits.
func (tt *Table) SetScore(index uint64, score int) {
	tt.Stats.numberOfWrites++
	e := tt.data[index]
	tt.data[index] = packEntry(e.generation(), score, e.keyHi())
}

// NextGeneration advances the generation tag, lazily invalidating every
// entry from the previous generation on their next Probe. Wrapping from
// 65535 back to 0 forces an eager full Clear since the 16-bit field can no
// longer distinguish "current" from "very old".
func (tt *Table) NextGeneration() {
	tt.generation++
	tt.numberOfEntries = 0
	if tt.generation == 0 {
		tt.Clear()
		tt.generation = 1
	}
}

// Clear zeroes every entry and resets the generation and statistics.
func (tt *Table) Clear() {
	tt.data = make([]entry, tt.maxEntries)
	tt.numberOfEntries = 0
	tt.generation = 1
	tt.Stats = Stats{}
}

// Hashfull returns how full the table is, in permille.
func (tt *Table) Hashfull() int {
	if tt.maxEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / tt.maxEntries)
}

// Len returns the number of entries written since the last Clear or
// NextGeneration.
func (tt *Table) Len() uint64 {
	return tt.numberOfEntries
}

// String returns a usage summary, logged after each solved board.
func (tt *Table) String() string {
	return out.Sprintf("TT: size %d MB max entries %d entries %d (%d%%) probes %d hits %d (%d%%) misses %d writes %d",
		tt.sizeInByte/MB, tt.maxEntries, tt.numberOfEntries, tt.Hashfull()/10,
		tt.Stats.numberOfProbes, tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, tt.Stats.numberOfWrites)
}
