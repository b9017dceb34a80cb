// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"boolsynth/internal/ast"
	"boolsynth/internal/errors"
	"boolsynth/internal/parser"
	"boolsynth/internal/spec"
	"boolsynth/internal/synth"
)

func main() {
	format := flag.String("format", "", "input format: sygus or tt (default: by file extension)")
	verbosity := flag.Int("v", 0, "log verbosity (0 = quiet, 1 = iterations, 2 = passes)")
	iterations := flag.Int("iters", synth.DefaultMaxIterations, "counterexample iteration budget")
	positional := flag.Bool("positional", false, "print variables positionally (x0, x1, ...) instead of by name")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("Usage: boolsynth-cli [flags] <input file>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	commonlog.Configure(*verbosity, nil)

	path := flag.Arg(0)
	source, err := os.ReadFile(path)
	if err != nil {
		color.Red("Failed to read file: %s", err)
		os.Exit(1)
	}

	problem, err := parseInput(path, string(source), *format)
	if err != nil {
		reportError(path, string(source), err)
		os.Exit(1)
	}

	circuit, err := synth.Solve(problem, *iterations)
	if err != nil {
		reportError(path, string(source), err)
		os.Exit(1)
	}

	if *positional {
		fmt.Println(circuit.String())
	} else {
		fmt.Println(ast.Format(circuit, problem.VarNames))
	}
	color.Green("✅ Synthesized a circuit for %s", path)
}

func parseInput(path, source, format string) (*spec.Spec, error) {
	switch {
	case format == "sygus", format == "" && strings.HasSuffix(path, ".sl"):
		return parser.ParseSyGuS(path, source)
	case format == "tt", format == "":
		return parser.ParseTruthTable(path, source)
	default:
		return nil, fmt.Errorf("unknown format %q, want sygus or tt", format)
	}
}

// reportError prints structured tool errors with their full context and
// everything else plainly.
func reportError(path, source string, err error) {
	if toolErr, ok := err.(errors.ToolError); ok {
		reporter := errors.NewErrorReporter(path, source)
		fmt.Fprint(os.Stderr, reporter.FormatError(toolErr))
		return
	}
	color.Red("%s", err)
}
