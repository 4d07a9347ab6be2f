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

// searchConfiguration holds the tunables for the transposition table and
// for the search's pruning behavior.
type searchConfiguration struct {
	// Transposition table
	TTSizeMB int

	// Sweep-mode pruning
	UseGlobalPruning bool
	ShallowProbeMaxDepth int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.TTSizeMB = 8192

	Settings.Search.UseGlobalPruning = true
	Settings.Search.ShallowProbeMaxDepth = 3
}

// setupSearch runs after the config file is read. It changes nothing: init
// already set every default, and fields the file omits keep those values.
func setupSearch() {
}
