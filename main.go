// SPDX-License-Identifier: Apache-2.0
package main

import (
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
	if len(os.Args) < 2 {
		fmt.Println("Usage: boolsynth <file.sl | file.tt>")
		os.Exit(1)
	}

	commonlog.Configure(0, nil)

	path := os.Args[1]
	source, err := os.ReadFile(path)
	if err != nil {
		color.Red("Failed to read file: %s", err)
		os.Exit(1)
	}

	var problem *spec.Spec
	if strings.HasSuffix(path, ".sl") {
		problem, err = parser.ParseSyGuS(path, string(source))
	} else {
		problem, err = parser.ParseTruthTable(path, string(source))
	}
	if err != nil {
		reportError(path, string(source), err)
		os.Exit(1)
	}

	circuit, err := synth.Solve(problem, synth.DefaultMaxIterations)
	if err != nil {
		reportError(path, string(source), err)
		os.Exit(1)
	}

	fmt.Println(ast.Format(circuit, problem.VarNames))
	color.Green("✅ Synthesized a circuit for %s", path)
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
