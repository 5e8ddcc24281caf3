/*
 * CastorGo - a chess board representation and legal move generation library in GO
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// CastorGo is a chess board representation and legal move generation
// library. This command is a small driver around it mainly to run
// perft tests and to profile the move generation.
package main

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/CastorGo/internal/board"
	"github.com/frankkopp/CastorGo/internal/config"
	"github.com/frankkopp/CastorGo/internal/logging"
)

var out = message.NewPrinter(language.German)

const version = "v1.0.0"

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", board.StartFen, "fen for the perft position")
	perftDepth := flag.Int("perft", 0, "runs perft from depth 1 up to the given depth on the -fen position")
	parallel := flag.Bool("parallel", false, "splits the perft root moves onto goroutines")
	cpuProfile := flag.Bool("cpuprofile", false, "write a cpu profile to the working directory")
	memProfile := flag.Bool("memprofile", false, "write a memory profile to the working directory")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	// this needs to be set before config.Setup() is called -
	// otherwise the default will be used
	config.ConfFile = *configFile
	config.Setup()

	// set log level from cmd line options overwriting config file or defaults
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if *parallel {
		config.Settings.Perft.Parallel = true
	}

	// resetting log level of the standard log - required as packages
	// initialize their loggers with the default level before main()
	// is called
	logging.GetLog()

	switch {
	case *cpuProfile:
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case *memProfile:
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	if *perftDepth > 0 {
		var perft board.Perft
		for depth := 1; depth <= *perftDepth; depth++ {
			if config.Settings.Perft.Parallel {
				perft.StartPerftParallel(*fen, depth, true)
			} else {
				perft.StartPerft(*fen, depth, true)
			}
		}
		return
	}

	flag.Usage()
}

func printVersionInfo() {
	out.Println("CastorGo ", version)
	fmt.Println("Environment:")
	fmt.Println("  Using GO version", runtime.Version())
	fmt.Println("  Running on", runtime.GOOS, runtime.GOARCH)
}
