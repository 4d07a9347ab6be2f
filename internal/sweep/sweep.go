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

// Package sweep drives the exhaustive search over a Cartesian product of
// RNG parameters: for every (state, counter, inc_timing) triple it
// regenerates the candidate board, builds a Position, and asks a shared
// search.SweepSolver whether this board beats the best score found so far
// in the sweep.
package sweep

import (
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/kurotori/samegame-solver/internal/logging"
	"github.com/kurotori/samegame-solver/internal/position"
	"github.com/kurotori/samegame-solver/internal/rng"
	"github.com/kurotori/samegame-solver/internal/search"
	"github.com/kurotori/samegame-solver/internal/transpositiontable"
	"github.com/kurotori/samegame-solver/internal/util"
)

var log = myLogging.GetLog()
var out = message.NewPrinter(language.German)

// Params bounds the sweep: inclusive ranges for the RNG state, the
// external counter, and the inc_timing parameter, plus the initial score
// threshold below which no answer is reported.
type Params struct {
	StateMin, StateMax         int
	CounterMin, CounterMax     int
	IncTimingMin, IncTimingMax int
	BestScoreIni               int
}

// Answer is the best (state, counter, inc_timing) triple found, and its
// score and solution. Found is false if nothing in the swept range beat
// BestScoreIni.
type Answer struct {
	Found     bool
	State     int
	Counter   int
	IncTiming int
	Score     int
	Solution  position.ActionHistory
}

// Driver runs one sweep at a time over a transposition table it does not
// own, guarding re-entrant Run calls the way the teacher's Search guards
// StartSearch/StopSearch against overlapping invocations of a shared
// mutable resource.
type Driver struct {
	tt      *transpositiontable.Table
	guard   *semaphore.Weighted
	running *util.Bool
}

// NewDriver returns a Driver that reuses tt across every problem in a
// sweep, clearing it once per (counter, inc_timing) pair.
func NewDriver(tt *transpositiontable.Table) *Driver {
	return &Driver{tt: tt, guard: semaphore.NewWeighted(1), running: util.NewBool(false)}
}

// IsRunning reports whether a sweep is currently in progress, the way the
// teacher's Search exposes isRunning alongside its own start/stop guard.
func (d *Driver) IsRunning() bool {
	return d.running.Load()
}

// Run performs the sweep described by p, iterating triples in the
// lexicographic order (counter, inc_timing, state). The transposition
// table is cleared at the start of every (counter, inc_timing) pair: that
// pair spans up to 65 536 states, exactly one generation cycle, so a
// clear there is never wasted work the generation counter would have
// forced anyway.
func (d *Driver) Run(p Params) Answer {
	if !d.guard.TryAcquire(1) {
		log.Error("sweep: Run called while a sweep is already in progress")
		return Answer{}
	}
	d.running.Store(true)
	defer d.running.Store(false)
	defer d.guard.Release(1)

	solver := search.NewSweepSolver(d.tt, p.BestScoreIni)
	var best Answer

	for counter := p.CounterMin; counter <= p.CounterMax; counter++ {
		for incTiming := p.IncTimingMin; incTiming <= p.IncTimingMax; incTiming++ {
			d.tt.Clear()

			for state := p.StateMin; state <= p.StateMax; state++ {
				b, _, ok, err := rng.GenBoard(uint16(state), uint8(counter), incTiming)
				if err != nil {
					log.Errorf("sweep: gen_board(state=0x%04X, counter=0x%02X, inc_timing=%d): %s",
						state, counter, incTiming, err)
					continue
				}
				if !ok {
					log.Debugf("Regen: state=0x%04X counter=0x%02X inc_timing=%d", state, counter, incTiming)
					continue
				}

				pos := position.NewPosition(b)
				score, solution, improved := solver.Solve(pos)
				d.tt.NextGeneration()

				if improved {
					best = Answer{
						Found:     true,
						State:     state,
						Counter:   counter,
						IncTiming: incTiming,
						Score:     score,
						Solution:  solution,
					}
					log.Info(out.Sprintf("Found %d: state=0x%04X counter=0x%02X inc_timing=%d solution=%s",
						score, state, counter, incTiming, solution))
				}
			}
		}
	}

	return best
}
