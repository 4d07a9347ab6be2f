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

package search

import (
	"github.com/kurotori/samegame-solver/internal/assert"
	myLogging "github.com/kurotori/samegame-solver/internal/logging"
	"github.com/kurotori/samegame-solver/internal/position"
	"github.com/kurotori/samegame-solver/internal/transpositiontable"
)

var log = myLogging.GetSearchLog()

// Solver finds the exact maximum-score clearing sequence for a single
// board, memoizing subgame results in a transposition table it owns but
// does not allocate. A fresh Solver (or a table just Cleared) is expected
// per board: unlike SweepSolver, Solver never treats a stored value as
// anything but the exact remaining gain from that position.
type Solver struct {
	tt *transpositiontable.Table
}

// NewSolver returns a Solver backed by tt. Callers that reuse tt across
// multiple boards must Clear it between unrelated solves: this solver's
// entries are only ever exact, never upper bounds, so stale cross-board
// scores here would be silently wrong rather than merely loose.
func NewSolver(tt *transpositiontable.Table) *Solver {
	return &Solver{tt: tt}
}

// Solve returns the maximum achievable score from pos and the move
// sequence that achieves it.
func (s *Solver) Solve(pos position.Position) (int, position.ActionHistory) {
	score := s.dfs(pos)
	log.Debug(s.tt.String())
	return score, s.reconstruct(pos)
}

// dfs returns the maximum additional score obtainable from pos.
func (s *Solver) dfs(pos position.Position) int {
	if pos.IsEmpty() {
		return PerfectClearBonus
	}

	r := s.tt.Probe(pos.Key())
	if r.Found {
		return r.Score
	}

	best := 0
	for _, a := range pos.Actions() {
		child := pos.DoAction(a)
		gain := StepGain(a.Size()) + s.dfs(child)
		if gain > best {
			best = gain
		}
	}

	// best == 0 iff pos is terminal and non-empty (no legal action scores
	// more than not playing at all); leave the provisional zero entry in
	// place rather than finalizing it, matching the exact-memo encoding.
	if best == 0 {
		return 0
	}

	s.tt.SetScore(r.Index, best)
	return best
}

// reconstruct replays the path of best moves from root, reading each
// child's exact remaining gain back out of the now-fully-populated table.
// Ties are broken in favor of the last action considered, matching
// actions()'s deterministic order applied under a stable "last wins"
// comparison.
func (s *Solver) reconstruct(root position.Position) position.ActionHistory {
	history := position.NewActionHistory()
	cur := root
	for {
		actions := cur.Actions()
		if len(actions) == 0 {
			break
		}
		var best position.Action
		bestGain := -1
		for _, a := range actions {
			child := cur.DoAction(a)
			gain := StepGain(a.Size()) + s.childGain(child)
			if gain >= bestGain {
				bestGain = gain
				best = a
			}
		}
		history.Push(best.LeastSquare())
		cur = cur.DoAction(best)
	}
	return history
}

// childGain looks up the exact remaining gain from a position reached
// during reconstruction. The empty board is never stored in the table
// (see internal/transpositiontable), so it is special-cased here; every
// other child must already carry an entry because dfs visited it.
func (s *Solver) childGain(pos position.Position) int {
	if pos.IsEmpty() {
		return PerfectClearBonus
	}
	r := s.tt.Probe(pos.Key())
	assert.Assert(r.Found, "search: reconstruction found no transposition entry for a position dfs must have visited")
	return r.Score
}
