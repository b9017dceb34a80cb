package parser

import (
	"fmt"
	"os"
	"strings"

	"boolsynth/grammar"
	"boolsynth/internal/errors"
	"boolsynth/internal/spec"
)

// ParseSyGuSFile reads and parses a SyGuS-style input file.
func ParseSyGuSFile(path string) (*spec.Spec, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseSyGuS(path, string(source))
}

// ParseSyGuS extracts the reference circuit and the grammar block from a
// SyGuS-style file. The `define-fun origCir` (or `define-fun Spec`) marker
// puts the circuit s-expression on the following line; `synth-fun` opens the
// grammar block, inside which each `(depth` line descends one level, bare
// identifier lines declare variables at the current level, and a lone `)`
// closes the block.
//
// Grammar depths are flipped into weights, so variables nested deepest get
// the smallest heights: height = maxDepth - depth.
func ParseSyGuS(filename, source string) (*spec.Spec, error) {
	var (
		varNames   []string
		varDepths  []int
		circuitSrc string
		circuitAt  int
	)

	startedGrammar := false
	finishedGrammar := false
	circuitNext := false
	depth := 0

	for lineNumber, raw := range strings.Split(source, "\n") {
		line := strings.TrimSpace(raw)
		lineNo := lineNumber + 1

		switch {
		case strings.HasPrefix(line, ";"):
			// comment
			continue
		case circuitNext:
			circuitNext = false
			circuitSrc = line
			circuitAt = lineNo
		case strings.Contains(line, "define-fun origCir") || strings.Contains(line, "define-fun Spec"):
			circuitNext = true
		case strings.Contains(line, "synth-fun"):
			startedGrammar = true
			continue
		}

		if startedGrammar && !finishedGrammar {
			switch {
			case line == ")":
				finishedGrammar = true
			case strings.Contains(line, "(depth"):
				depth++
			case line != "" && !strings.ContainsAny(line, "()"):
				varNames = append(varNames, line)
				varDepths = append(varDepths, depth)
			}
		}
	}

	if circuitSrc == "" {
		return nil, errors.NewError(errors.ErrorMissingSection,
			"no reference circuit: expected a define-fun origCir or define-fun Spec block").Build()
	}
	if len(varNames) == 0 {
		return nil, errors.NewError(errors.ErrorMissingSection,
			"no grammar block: expected a synth-fun block declaring the variables").Build()
	}

	maxDepth := depth
	varHeights := make([]int, len(varDepths))
	for i, d := range varDepths {
		varHeights[i] = maxDepth - d
	}

	circuit, err := grammar.ParseCircuit(filename, circuitSrc)
	if err != nil {
		return nil, errors.SyntaxError(circuitAt, fmt.Sprintf("bad reference circuit: %s", err))
	}

	declared := make(map[string]bool, len(varNames))
	for _, name := range varNames {
		declared[name] = true
	}
	for _, name := range circuit.Vars() {
		if !declared[name] {
			toolErr := errors.UnknownVariable(name, varNames)
			toolErr.Line = circuitAt
			return nil, toolErr
		}
	}

	// Tabulating 2^n rows: refuse oversized grammars before allocating.
	if len(varNames) > 31 {
		return nil, errors.MalformedSpec(
			fmt.Sprintf("%d variables, at most 31 are supported", len(varNames)))
	}

	allInputs, allSols, err := tabulate(circuit, varNames)
	if err != nil {
		return nil, errors.SyntaxError(circuitAt, err.Error())
	}

	return spec.New(varNames, varHeights, maxDepth, allInputs, allSols)
}

// FromCircuit builds a problem statement directly from a parsed circuit,
// giving every variable weight zero. The REPL feeds ad-hoc circuits through
// this without a surrounding input file.
func FromCircuit(circuit *grammar.Circuit, varNames []string, solHeight int) (*spec.Spec, error) {
	if len(varNames) > 31 {
		return nil, errors.MalformedSpec(
			fmt.Sprintf("%d variables, at most 31 are supported", len(varNames)))
	}

	allInputs, allSols, err := tabulate(circuit, varNames)
	if err != nil {
		return nil, errors.SyntaxError(0, err.Error())
	}

	return spec.New(varNames, make([]int, len(varNames)), solHeight, allInputs, allSols)
}

// tabulate evaluates the reference circuit on every assignment, producing the
// full truth table in natural row order: bit i of the row index is variable
// i's value.
func tabulate(circuit *grammar.Circuit, varNames []string) ([][]bool, []bool, error) {
	rows := 1 << len(varNames)
	allInputs := make([][]bool, rows)
	allSols := make([]bool, rows)

	values := make(map[string]bool, len(varNames))
	for k := 0; k < rows; k++ {
		row := make([]bool, len(varNames))
		for i, name := range varNames {
			row[i] = (k>>i)&1 == 1
			values[name] = row[i]
		}

		out, err := circuit.Eval(values)
		if err != nil {
			return nil, nil, err
		}
		allInputs[k] = row
		allSols[k] = out
	}

	return allInputs, allSols, nil
}
