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

// Package logging is a helper for the "github.com/op/go-logging" package
// to reduce the lines of code within each go file to one line. The
// functions return Logger instances preconfigured with the necessary
// backends and formatters.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/kurotori/samegame-solver/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	testLog     *logging.Logger

	standardFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	testLog = logging.MustGetLogger("test")
}

// GetLog returns an instance of a standard Logger preconfigured with an
// os.Stdout backend and a "normal" logging format (time - file - level).
func GetLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatter := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatter)
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetSearchLog returns an instance of a Logger preconfigured the same way
// as GetLog but dedicated to the DFS driver so it can be filtered
// separately.
func GetSearchLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatter := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatter)
	leveled.SetLevel(logging.Level(config.SearchLogLevel), "")
	searchLog.SetBackend(leveled)
	return searchLog
}

// GetTestLog returns an instance of a Logger preconfigured for test output.
func GetTestLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatter := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatter)
	leveled.SetLevel(logging.Level(config.TestLogLevel), "")
	testLog.SetBackend(leveled)
	return testLog
}
