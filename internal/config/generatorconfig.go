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

package config

// generatorConfiguration holds the default RNG parameter ranges used by the
// sweep driver when the CLI does not override them.
type generatorConfiguration struct {
	StateMin     int
	StateMax     int
	CounterMin   int
	CounterMax   int
	IncTimingMin int
	IncTimingMax int
	BestScoreIni int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Generator.StateMin = 0
	Settings.Generator.StateMax = 0xFFFF
	Settings.Generator.CounterMin = 0
	Settings.Generator.CounterMax = 0xFF
	Settings.Generator.IncTimingMin = 0
	Settings.Generator.IncTimingMax = 48
	Settings.Generator.BestScoreIni = 0
}

// setupGenerator runs after the config file is read. It changes nothing:
// init already set every default, and fields the file omits keep those values.
func setupGenerator() {
}
