package parser

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"boolsynth/internal/errors"
	"boolsynth/internal/spec"
)

// fileSection tracks which block of a truth-table file we are inside.
type fileSection int

const (
	sectionNone fileSection = iota
	sectionDepth
	sectionVariables
	sectionInputOutput
)

// ParseTruthTableFile reads and parses a truth-table format file.
func ParseTruthTableFile(path string) (*spec.Spec, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseTruthTable(path, string(source))
}

// ParseTruthTable parses the truth-table input format: a `max-depth:` section
// holding the height budget, a `variables:` section of `name weight` lines,
// and an `input/output:` section with one `<bits> <bit>` line per truth table
// row. Each section is terminated by `done`.
func ParseTruthTable(filename, source string) (*spec.Spec, error) {
	var (
		maxDepth   int
		varNames   []string
		varHeights []int
		allInputs  [][]bool
		allSols    []bool
	)

	section := sectionNone
	sawDepth := false

	for lineNumber, raw := range strings.Split(source, "\n") {
		line := strings.TrimSpace(raw)
		lineNo := lineNumber + 1

		switch {
		case line == "" || strings.HasPrefix(line, ";"):
			continue
		case line == "done":
			section = sectionNone
		case section == sectionDepth:
			depth, err := strconv.Atoi(line)
			if err != nil {
				return nil, errors.SyntaxError(lineNo, fmt.Sprintf("expected an integer height budget, got %q", line))
			}
			maxDepth = depth
			sawDepth = true
		case section == sectionVariables:
			name, weightText, ok := strings.Cut(line, " ")
			if !ok {
				return nil, errors.SyntaxError(lineNo, fmt.Sprintf("expected 'name weight', got %q", line))
			}
			weight, err := strconv.Atoi(strings.TrimSpace(weightText))
			if err != nil {
				return nil, errors.SyntaxError(lineNo, fmt.Sprintf("expected an integer weight, got %q", weightText))
			}
			varNames = append(varNames, name)
			varHeights = append(varHeights, weight)
		case section == sectionInputOutput:
			bits, outText, ok := strings.Cut(line, " ")
			if !ok {
				return nil, errors.SyntaxError(lineNo, fmt.Sprintf("expected '<bits> <bit>', got %q", line))
			}
			row, err := parseBits(bits, len(varNames))
			if err != nil {
				return nil, errors.SyntaxError(lineNo, err.Error())
			}
			out, err := parseBit(strings.TrimSpace(outText))
			if err != nil {
				return nil, errors.SyntaxError(lineNo, err.Error())
			}
			allInputs = append(allInputs, row)
			allSols = append(allSols, out)
		case strings.Contains(line, "max-depth:"):
			section = sectionDepth
		case strings.Contains(line, "variables:"):
			section = sectionVariables
		case strings.Contains(line, "input/output:"):
			section = sectionInputOutput
		default:
			return nil, errors.SyntaxError(lineNo, fmt.Sprintf("unexpected line %q outside any section", line))
		}
	}

	if !sawDepth {
		return nil, errors.NewError(errors.ErrorMissingSection, "no max-depth: section").Build()
	}
	if len(varNames) == 0 {
		return nil, errors.NewError(errors.ErrorMissingSection, "no variables: section").Build()
	}
	if len(allInputs) == 0 {
		return nil, errors.NewError(errors.ErrorMissingSection, "no input/output: section").Build()
	}

	return spec.New(varNames, varHeights, maxDepth, allInputs, allSols)
}

// parseBits decodes a row of 0/1 characters, one per variable in declaration
// order.
func parseBits(bits string, numVars int) ([]bool, error) {
	if len(bits) != numVars {
		return nil, fmt.Errorf("row %q has %d bits, want one per variable (%d)", bits, len(bits), numVars)
	}
	row := make([]bool, numVars)
	for i, c := range bits {
		switch c {
		case '0':
			row[i] = false
		case '1':
			row[i] = true
		default:
			return nil, fmt.Errorf("row %q contains %q, want 0 or 1", bits, c)
		}
	}
	return row, nil
}

func parseBit(text string) (bool, error) {
	switch text {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, fmt.Errorf("expected 0 or 1, got %q", text)
	}
}
