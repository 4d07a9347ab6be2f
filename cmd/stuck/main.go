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

// Command stuck scans a range of RNG parameters for boards that start
// with no legal action at all (every color's run is a singleton), i.e.
// boards the game itself would never be able to let a player play.
package main

import (
	"flag"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kurotori/samegame-solver/internal/position"
	"github.com/kurotori/samegame-solver/internal/rng"
)

var out = message.NewPrinter(language.German)

func main() {
	stateMin := flag.Int("state-min", 0x0000, "lower bound of the RNG state range")
	stateMax := flag.Int("state-max", 0xFFFF, "upper bound of the RNG state range")
	counterMin := flag.Int("counter-min", 0x00, "lower bound of the external counter range")
	counterMax := flag.Int("counter-max", 0xFF, "upper bound of the external counter range")
	incMin := flag.Int("inc-timing-min", 0, "lower bound of the inc_timing range")
	incMax := flag.Int("inc-timing-max", 48, "upper bound of the inc_timing range")
	flag.Parse()

	found := 0
	for counter := *counterMin; counter <= *counterMax; counter++ {
		for incTiming := *incMin; incTiming <= *incMax; incTiming++ {
			for state := *stateMin; state <= *stateMax; state++ {
				b, _, ok, err := rng.GenBoard(uint16(state), uint8(counter), incTiming)
				if err != nil || !ok {
					continue
				}
				pos := position.NewPosition(b)
				if !pos.HasAction() {
					out.Printf("0x%04X\t0x%02X\t%d\n", state, counter, incTiming)
					found++
				}
			}
		}
	}

	out.Printf("found %d stuck board(s)\n", found)
}
