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

// Command sweep searches the Cartesian product of RNG parameters for the
// board whose optimal clearing sequence scores highest.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kurotori/samegame-solver/internal/config"
	"github.com/kurotori/samegame-solver/internal/logging"
	"github.com/kurotori/samegame-solver/internal/sweep"
	"github.com/kurotori/samegame-solver/internal/transpositiontable"
	"github.com/kurotori/samegame-solver/internal/util"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	ttSizeMB := flag.Int("ttsize", 0, "transposition table size in MB (0 = use config default)")

	stateMin := flag.Int("state-min", -1, "lower bound of the RNG state range (-1 = use config default)")
	stateMax := flag.Int("state-max", -1, "upper bound of the RNG state range (-1 = use config default)")
	counterMin := flag.Int("counter-min", -1, "lower bound of the external counter range (-1 = use config default)")
	counterMax := flag.Int("counter-max", -1, "upper bound of the external counter range (-1 = use config default)")
	incMin := flag.Int("inc-timing-min", -1, "lower bound of the inc_timing range (-1 = use config default)")
	incMax := flag.Int("inc-timing-max", -1, "upper bound of the inc_timing range (-1 = use config default)")
	bestIni := flag.Int("best-ini", -1, "initial score threshold (-1 = use config default)")

	cpuProfile := flag.Bool("profile", false, "write a CPU profile of the sweep to the working directory")
	flag.Parse()

	defer util.TimeTrack(time.Now(), "sweep: total run")

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	log := logging.GetLog()

	if *ttSizeMB > 0 {
		config.Settings.Search.TTSizeMB = *ttSizeMB
	}

	p := sweep.Params{
		StateMin:     config.Settings.Generator.StateMin,
		StateMax:     config.Settings.Generator.StateMax,
		CounterMin:   config.Settings.Generator.CounterMin,
		CounterMax:   config.Settings.Generator.CounterMax,
		IncTimingMin: config.Settings.Generator.IncTimingMin,
		IncTimingMax: config.Settings.Generator.IncTimingMax,
		BestScoreIni: config.Settings.Generator.BestScoreIni,
	}
	if *stateMin >= 0 {
		p.StateMin = *stateMin
	}
	if *stateMax >= 0 {
		p.StateMax = *stateMax
	}
	if *counterMin >= 0 {
		p.CounterMin = *counterMin
	}
	if *counterMax >= 0 {
		p.CounterMax = *counterMax
	}
	if *incMin >= 0 {
		p.IncTimingMin = *incMin
	}
	if *incMax >= 0 {
		p.IncTimingMax = *incMax
	}
	if *bestIni >= 0 {
		p.BestScoreIni = *bestIni
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		log.Info(out.Sprintf("before sweep: %s", util.MemStat()))
	}

	log.Info(out.Sprintf("sweep: state=[0x%04X..0x%04X] counter=[0x%02X..0x%02X] inc_timing=[%d..%d] best_ini=%d",
		p.StateMin, p.StateMax, p.CounterMin, p.CounterMax, p.IncTimingMin, p.IncTimingMax, p.BestScoreIni))

	tt := transpositiontable.NewTable(config.Settings.Search.TTSizeMB)
	driver := sweep.NewDriver(tt)

	start := time.Now()
	answer := driver.Run(p)
	elapsed := time.Since(start)

	triples := uint64(p.StateMax-p.StateMin+1) *
		uint64(p.CounterMax-p.CounterMin+1) *
		uint64(p.IncTimingMax-p.IncTimingMin+1)
	log.Info(out.Sprintf("sweep covered %d triples in %s (%d boards/s)",
		triples, elapsed, util.Nps(triples, elapsed)))

	if *cpuProfile {
		log.Info(out.Sprintf("after sweep: %s", util.GcWithStats()))
	}

	if !answer.Found {
		fmt.Println("no board beat the initial threshold")
		os.Exit(1)
	}

	// The result record is a machine-readable protocol line, not a log
	// message: use plain fmt so scores >= 1000 are never digit-grouped.
	fmt.Printf("%d\t0x%04X\t0x%02X\t%d\t%s\n",
		answer.Score, answer.State, answer.Counter, answer.IncTiming, answer.Solution)
}
