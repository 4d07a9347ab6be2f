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

// Command solve finds the maximum-score clearing sequence for a single
// board read from a text file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kurotori/samegame-solver/internal/board"
	"github.com/kurotori/samegame-solver/internal/config"
	"github.com/kurotori/samegame-solver/internal/logging"
	"github.com/kurotori/samegame-solver/internal/position"
	"github.com/kurotori/samegame-solver/internal/search"
	"github.com/kurotori/samegame-solver/internal/transpositiontable"
)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	ttSizeMB := flag.Int("ttsize", 0, "transposition table size in MB (0 = use config default)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: solve [flags] <board-file>")
		os.Exit(2)
	}

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchLogLvl]; found {
		config.SearchLogLevel = lvl
	}
	log := logging.GetLog()
	logging.GetSearchLog()

	if *ttSizeMB > 0 {
		config.Settings.Search.TTSizeMB = *ttSizeMB
	}

	text, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Errorf("solve: %s", err)
		os.Exit(1)
	}

	b, err := board.ParseBoard(string(text))
	if err != nil {
		log.Errorf("solve: %s", err)
		os.Exit(1)
	}

	tt := transpositiontable.NewTable(config.Settings.Search.TTSizeMB)
	solver := search.NewSolver(tt)
	score, solution := solver.Solve(position.NewPosition(b))

	// The result record is a machine-readable protocol line, not a log
	// message: use plain fmt so scores >= 1000 are never digit-grouped.
	fmt.Printf("%d\t%s\n", score, solution)
}
