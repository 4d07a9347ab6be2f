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
	"github.com/kurotori/samegame-solver/internal/config"
	"github.com/kurotori/samegame-solver/internal/position"
	"github.com/kurotori/samegame-solver/internal/transpositiontable"
	. "github.com/kurotori/samegame-solver/internal/types"
	"github.com/kurotori/samegame-solver/internal/util"
)

// SweepSolver finds, across a succession of candidate root positions that
// share one transposition table, any board whose true maximum score beats
// a running threshold, raising that threshold as it goes. Table entries
// store an upper bound on remaining gain rather than an exact value - the
// bound only tightens as global-best pruning cuts subtrees short - so
// reconstruction cannot be read back out of the table the way Solver's
// can. Instead the winning move path is threaded through the DFS itself
// and snapshotted the instant a new best is proven.
type SweepSolver struct {
	tt        *transpositiontable.Table
	bestScore int

	// useGlobalPruning and maxProbeDepth come from
	// config.Settings.Search at construction time: the former toggles the
	// per-node accumulated-score cutoff in dfs, the latter bounds how many
	// plies the root-level shallow probe runs before a full DFS.
	useGlobalPruning bool
	maxProbeDepth    int

	history  position.ActionHistory
	solution position.ActionHistory
	improved bool
}

// NewSweepSolver creates a solver that only reports boards scoring
// strictly higher than bestScoreIni.
func NewSweepSolver(tt *transpositiontable.Table, bestScoreIni int) *SweepSolver {
	return &SweepSolver{
		tt:               tt,
		bestScore:        bestScoreIni,
		useGlobalPruning: config.Settings.Search.UseGlobalPruning,
		maxProbeDepth:    config.Settings.Search.ShallowProbeMaxDepth,
	}
}

// BestScore returns the current score threshold.
func (s *SweepSolver) BestScore() int {
	return s.bestScore
}

// Solve searches pos for a clearing sequence scoring higher than the
// solver's current threshold. ok is false when the shallow probe proves
// none exists, or the exhaustive search finds none; in both cases score
// and history are zero-valued. On success the threshold, score and
// history all refer to the same new best.
func (s *SweepSolver) Solve(pos position.Position) (score int, history position.ActionHistory, ok bool) {
	for depth := 0; depth <= s.maxProbeDepth; depth++ {
		if shallowUpperBound(pos, depth) <= s.bestScore {
			return 0, position.ActionHistory{}, false
		}
	}

	s.improved = false
	s.history = position.NewActionHistory()
	s.dfs(pos, 0)

	if !s.improved {
		return 0, position.ActionHistory{}, false
	}
	return s.bestScore, s.solution, true
}

// tryImprove raises the threshold and snapshots the current move path
// whenever score beats it, matching the "last strictly better result
// wins" semantics of repeatedly maximizing a running best.
func (s *SweepSolver) tryImprove(score int) {
	if score > s.bestScore {
		s.bestScore = score
		s.solution = s.history.Clone()
		s.improved = true
	}
}

// dfs returns an upper bound on the additional score obtainable from pos,
// given score already banked getting from the sweep root down to pos.
// Every position it visits is checked against the running threshold
// before recursing; a subtree that cannot possibly beat the threshold
// even under its loosest bound is pruned without being explored.
func (s *SweepSolver) dfs(pos position.Position, score int) int {
	if pos.IsEmpty() {
		s.tryImprove(score + PerfectClearBonus)
		return PerfectClearBonus
	}

	r := s.tt.Probe(pos.Key())
	var gainUB int
	if r.Found {
		gainUB = r.Score
	} else {
		gainUB = shallowUpperBoundLeaf(pos)
		if gainUB == 0 || !pos.HasAction() {
			s.tryImprove(score)
			return 0
		}
		// Materialize the provisional entry with the leaf bound before the
		// prune check below, so a later transposition reaching this node
		// always reads a valid upper bound rather than a stale zero.
		s.tt.SetScore(r.Index, gainUB)
	}

	if s.useGlobalPruning && score+gainUB <= s.bestScore {
		return gainUB
	}

	newUB := 0
	for _, a := range pos.Actions() {
		s.history.Push(a.LeastSquare())
		child := pos.DoAction(a)
		gain := StepGain(a.Size())
		childUB := s.dfs(child, score+gain)
		newUB = util.Max(newUB, gain+childUB)
		s.history.RemoveLast()
	}

	s.tt.SetScore(r.Index, newUB)
	return newUB
}

// shallowUpperBound estimates, without memoization, an upper bound on the
// additional score obtainable from pos by exploring depthRemain plies of
// real moves and then falling back to the one-stroke-per-color leaf bound.
func shallowUpperBound(pos position.Position, depthRemain int) int {
	if depthRemain == 0 {
		return shallowUpperBoundLeaf(pos)
	}

	best := 0
	for _, a := range pos.Actions() {
		child := pos.DoAction(a)
		gain := StepGain(a.Size()) + shallowUpperBound(child, depthRemain-1)
		best = util.Max(best, gain)
	}
	if best == 0 {
		if pos.IsEmpty() {
			return PerfectClearBonus
		}
		return 0
	}
	return best
}

// shallowUpperBoundLeaf bounds the remaining score by assuming every color
// with at least 2 pieces left is cleared in a single stroke, adding the
// perfect-clear bonus unless some color has exactly one piece stranded.
func shallowUpperBoundLeaf(pos position.Position) int {
	res := 0
	perfect := true
	for p := Piece(1); p <= NumPieces; p++ {
		switch count := pos.PieceCount(p); {
		case count == 0:
		case count == 1:
			perfect = false
		default:
			res += StepGain(count)
		}
	}
	if perfect {
		res += PerfectClearBonus
	}
	return res
}
