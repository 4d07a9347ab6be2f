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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurotori/samegame-solver/internal/config"
	"github.com/kurotori/samegame-solver/internal/position"
)

func TestSweepSolverRejectsBelowThreshold(t *testing.T) {
	pos := mustParse(t, "........\n........\n........\n........\n........\n111.....")
	solver := NewSweepSolver(newTable(t), 300) // 300 > the best this board can score (204)
	score, history, ok := solver.Solve(pos)
	assert.False(t, ok)
	assert.Equal(t, 0, score)
	assert.Equal(t, 0, history.Len())
	assert.Equal(t, 300, solver.BestScore(), "a rejected candidate must not move the threshold")
}

func TestSweepSolverAcceptsAboveThreshold(t *testing.T) {
	pos := mustParse(t, "........\n........\n........\n........\n........\n111.....")
	solver := NewSweepSolver(newTable(t), 0)
	score, history, ok := solver.Solve(pos)
	assert.True(t, ok)
	assert.Equal(t, 204, score)
	assert.Equal(t, 204, solver.BestScore())
	assert.Equal(t, replayScore(t, pos, history), score)
}

func TestSweepSolverThresholdPersistsAcrossCalls(t *testing.T) {
	tt := newTable(t)
	solver := NewSweepSolver(tt, 0)

	weak := mustParse(t, "........\n........\n........\n........\n........\n11......")
	_, _, ok := solver.Solve(weak)
	assert.True(t, ok)
	firstBest := solver.BestScore()

	tt.Clear()
	strong := mustParse(t, "........\n........\n........\n........\n........\n111.....")
	score, _, ok := solver.Solve(strong)
	assert.True(t, ok)
	assert.Greater(t, score, firstBest)
	assert.Equal(t, score, solver.BestScore())
}

func TestShallowUpperBoundLeafMatchesOneStrokePerColorBound(t *testing.T) {
	pos := mustParse(t, "........\n........\n........\n........\n........\n111.....")
	// single color, 3 pieces, fully cleared by one stroke: StepGain(3)+bonus.
	assert.Equal(t, StepGain(3)+PerfectClearBonus, shallowUpperBoundLeaf(pos))
}

func TestShallowUpperBoundLeafNotPerfectWithStragglerSingleton(t *testing.T) {
	pos := mustParse(t, "........\n........\n........\n........\n2.......\n21......")
	// color 2 clears for StepGain(2); color 1's lone piece strands, so no bonus.
	bound := shallowUpperBoundLeaf(pos)
	assert.Equal(t, StepGain(2), bound)
}

func TestDfsWritesProvisionalLeafBoundBeforePruning(t *testing.T) {
	// One component left: a 3-piece run of color 2. Its leaf bound is
	// StepGain(3)+PerfectClearBonus = 204.
	pos := mustParse(t, "........\n........\n........\n..2.....\n..2.....\n..2.....")
	tt := newTable(t)
	solver := NewSweepSolver(tt, 205)
	solver.history = position.NewActionHistory()

	// score=1 simulates having already banked a StepGain(2) capture on the
	// path down to pos; 1+204 <= bestScore(205) prunes this node on first
	// visit, before any of its children are explored.
	ub := solver.dfs(pos, 1)
	assert.Equal(t, StepGain(3)+PerfectClearBonus, ub, "a pruned node must still return its leaf bound")

	r := tt.Probe(pos.Key())
	require.True(t, r.Found)
	assert.Equal(t, StepGain(3)+PerfectClearBonus, r.Score,
		"the provisional entry must store the leaf bound, not a stale zero, even when pruned on first visit")
}

func TestNewSweepSolverReadsPruningConfig(t *testing.T) {
	solver := NewSweepSolver(newTable(t), 0)
	assert.Equal(t, config.Settings.Search.UseGlobalPruning, solver.useGlobalPruning)
	assert.Equal(t, config.Settings.Search.ShallowProbeMaxDepth, solver.maxProbeDepth)
}

func TestSweepSolverWithGlobalPruningDisabledStillFindsTrueMax(t *testing.T) {
	pos := mustParse(t, "........\n........\n........\n........\n........\n111.....")
	solver := NewSweepSolver(newTable(t), 0)
	solver.useGlobalPruning = false

	score, history, ok := solver.Solve(pos)
	assert.True(t, ok)
	assert.Equal(t, StepGain(3)+PerfectClearBonus, score)
	assert.Equal(t, replayScore(t, pos, history), score)
}

func TestShallowUpperBoundNeverUnderestimatesReachableScore(t *testing.T) {
	pos := mustParse(t, "1......2\n155....2\n111.4..2\n12144..1\n12133.51\n12135551")
	bound := shallowUpperBound(pos, 0)
	score, _ := NewSolver(newTable(t)).Solve(pos)
	assert.GreaterOrEqual(t, bound, score,
		"the leaf bound must never be lower than an actually achievable score")
}
