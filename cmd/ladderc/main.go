/*
 * ladderc - Main process.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package main

import (
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/openplc-tools/ladderc/ladder"
	"github.com/openplc-tools/ladderc/loader"
	"github.com/openplc-tools/ladderc/repl"
	"github.com/openplc-tools/ladderc/util/debugtrace"
	"github.com/openplc-tools/ladderc/util/logger"
)

var Logger *slog.Logger

func main() {
	optProgram := getopt.StringLong("program", 'p', "", "Textual ladder program to lower")
	optOut := getopt.StringLong("out", 'o', "", "Listing output path (default stdout)")
	optTrace := getopt.StringLong("trace", 't', "", "Trace file for lowering internals")
	optBrowse := getopt.BoolLong("browse", 'b', "Open the interactive listing browser instead of printing")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	Logger = slog.New(logger.NewHandler(nil, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(Logger)

	if *optProgram == "" {
		Logger.Error("Please specify a program file with --program")
		os.Exit(1)
	}

	program, err := loader.Load(*optProgram)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}

	var trace *debugtrace.Trace
	if *optTrace != "" {
		trace, err = debugtrace.Open(*optTrace)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		defer trace.Close()
	}

	buf, err := ladder.Lower(program, ladder.WithTrace(trace))
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}

	if *optBrowse {
		if err := repl.Run(os.Stdout, buf); err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		return
	}

	if *optOut != "" {
		if err := buf.PrintFile(*optOut); err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		return
	}

	if err := buf.Print(os.Stdout); err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}
}
