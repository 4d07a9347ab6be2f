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

// Package batch runs the single-board solver over every board-text file
// named in a manifest, in the shape of the teacher's EPD test-suite
// runner: read a file of cases, run the search on each, print a tabular
// per-case result, then a summary block.
package batch

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/kurotori/samegame-solver/internal/logging"

	"github.com/kurotori/samegame-solver/internal/board"
	"github.com/kurotori/samegame-solver/internal/position"
	"github.com/kurotori/samegame-solver/internal/search"
	"github.com/kurotori/samegame-solver/internal/transpositiontable"
)

var out = message.NewPrinter(language.German)
var log = myLogging.GetLog()

// Case is one solved (or failed-to-solve) manifest entry.
type Case struct {
	Path         string
	Score        int
	Solution     position.ActionHistory
	PerfectClear bool
	Err          error
}

// Summary totals a batch run.
type Summary struct {
	Cases        []Case
	Solved       int
	PerfectClear int
	Elapsed      time.Duration
}

// Run reads manifestPath (one board-text file path per line, blank lines
// and "#"-prefixed lines ignored), solves each board, and returns a
// Summary. tt is reused for every case and Cleared before each one, since
// each board's solve has no relationship to its neighbors' subgame results.
func Run(manifestPath string, tt *transpositiontable.Table) (Summary, error) {
	f, err := os.Open(manifestPath)
	if err != nil {
		return Summary{}, fmt.Errorf("batch: opening manifest %s: %w", manifestPath, err)
	}
	defer f.Close()

	start := time.Now()
	var summary Summary

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		path := strings.TrimSpace(scanner.Text())
		if path == "" || strings.HasPrefix(path, "#") {
			continue
		}
		summary.Cases = append(summary.Cases, runOne(path, tt))
	}
	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("batch: reading manifest %s: %w", manifestPath, err)
	}

	for _, c := range summary.Cases {
		if c.Err != nil {
			continue
		}
		summary.Solved++
		if c.PerfectClear {
			summary.PerfectClear++
		}
	}
	summary.Elapsed = time.Since(start)
	return summary, nil
}

func runOne(path string, tt *transpositiontable.Table) Case {
	text, err := os.ReadFile(path)
	if err != nil {
		log.Warningf("batch: %s: %s", path, err)
		return Case{Path: path, Err: err}
	}

	b, err := board.ParseBoard(string(text))
	if err != nil {
		log.Warningf("batch: %s: %s", path, err)
		return Case{Path: path, Err: err}
	}

	tt.Clear()
	solver := search.NewSolver(tt)
	root := position.NewPosition(b)
	score, solution := solver.Solve(root)

	return Case{
		Path:         path,
		Score:        score,
		Solution:     solution,
		PerfectClear: replayIsEmpty(root, solution),
	}
}

// replayIsEmpty replays solution from root and reports whether the board
// reached is empty, i.e. whether score included the perfect-clear bonus.
func replayIsEmpty(root position.Position, solution position.ActionHistory) bool {
	cur := root
	for _, sq := range solution.Squares() {
		a := position.ActionFromSquare(cur.Board(), sq)
		cur = cur.DoAction(a)
	}
	return cur.IsEmpty()
}

// Print writes the per-case table and summary block to stdout, matching
// the teacher's EPD test-suite report layout.
func (s Summary) Print() {
	out.Printf("====================================================================================================\n")
	out.Printf(" %-4s | %-6s | %-7s | %s\n", "Nr.", "Score", "Perfect", "Path / Error")
	out.Printf("====================================================================================================\n")
	for i, c := range s.Cases {
		if c.Err != nil {
			out.Printf(" %-4d | %-6s | %-7s | %s: %s\n", i+1, "-", "-", c.Path, c.Err)
			continue
		}
		perfect := "no"
		if c.PerfectClear {
			perfect = "yes"
		}
		// Score is a result field, not locale-formatted prose: print it with
		// plain fmt so a score >= 1000 is never digit-grouped.
		fmt.Printf(" %-4d | %-6d | %-7s | %s\t%s\n", i+1, c.Score, perfect, c.Path, c.Solution)
	}
	out.Printf("====================================================================================================\n")
	total := len(s.Cases)
	out.Printf("Solved:       %d/%d\n", s.Solved, total)
	out.Printf("Perfect clear: %d/%d\n", s.PerfectClear, total)
	out.Printf("Elapsed: %d ms\n", s.Elapsed.Milliseconds())
}
