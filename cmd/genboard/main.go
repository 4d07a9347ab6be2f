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

// Command genboard reproduces a single board from its RNG parameters and
// prints it, or reports that those parameters re-roll.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kurotori/samegame-solver/internal/rng"
)

func main() {
	state := flag.Int("state", 0, "16-bit RNG seed state")
	counter := flag.Int("counter", 0, "8-bit external counter value")
	incTiming := flag.Int("inc-timing", 0, "inc_timing parameter")
	flag.Parse()

	b, _, ok, err := rng.GenBoard(uint16(*state), uint8(*counter), *incTiming)
	if err != nil {
		fmt.Fprintf(os.Stderr, "genboard: %s\n", err)
		os.Exit(1)
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "genboard: state=0x%04X counter=0x%02X inc_timing=%d re-rolls\n",
			*state, *counter, *incTiming)
		os.Exit(1)
	}

	fmt.Print(b.String())
}
