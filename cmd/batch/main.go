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

// Command batch runs the single-board solver over every board-text file
// named in a manifest and prints a tabular report.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kurotori/samegame-solver/internal/batch"
	"github.com/kurotori/samegame-solver/internal/config"
	"github.com/kurotori/samegame-solver/internal/logging"
	"github.com/kurotori/samegame-solver/internal/transpositiontable"
)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	ttSizeMB := flag.Int("ttsize", 0, "transposition table size in MB (0 = use config default)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: batch [flags] <manifest-file>")
		os.Exit(2)
	}

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	log := logging.GetLog()

	if *ttSizeMB > 0 {
		config.Settings.Search.TTSizeMB = *ttSizeMB
	}

	tt := transpositiontable.NewTable(config.Settings.Search.TTSizeMB)
	summary, err := batch.Run(flag.Arg(0), tt)
	if err != nil {
		log.Errorf("batch: %s", err)
		os.Exit(1)
	}

	summary.Print()
}
