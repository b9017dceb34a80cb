// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"boolsynth/grammar"
	"boolsynth/internal/ast"
	"boolsynth/internal/parser"
	"boolsynth/internal/synth"
)

const PROMPT = ">> "

// Start reads `<height> <circuit>` lines and resynthesizes each circuit
// within the given height budget, e.g. `2 (or (and a b) c)`.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		heightText, circuitText, ok := strings.Cut(line, " ")
		if !ok {
			fmt.Fprintln(out, "expected: <height> <circuit>")
			continue
		}
		height, err := strconv.Atoi(heightText)
		if err != nil {
			fmt.Fprintf(out, "bad height %q\n", heightText)
			continue
		}

		circuit, err := grammar.ParseCircuit("repl", circuitText)
		if err != nil {
			fmt.Fprintf(out, "parse error: %s\n", err)
			continue
		}

		varNames := circuit.Vars()
		problem, err := parser.FromCircuit(circuit, varNames, height)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		result, err := synth.Solve(problem, synth.DefaultMaxIterations)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		fmt.Fprintln(out, ast.Format(result, varNames))
	}
}
