package spec

import (
	"fmt"

	"boolsynth/internal/ast"
	"boolsynth/internal/errors"
)

// None is returned by Counterexample and AdvanceCEGISIteration when the
// candidate agrees with the full truth table.
const None = -1

// MaxExamples is the number of input rows a working example set can hold.
// Signatures are packed into a 32-bit word, one bit per example.
const MaxExamples = 32

// Spec is a complete problem statement: the variables with their weights, the
// height budget, the full truth table, and the working example set the
// enumerator actually runs against. Example columns are bit-packed: bit j of
// VarValues[i] is variable i's value in example j, and bit j of SolResult is
// the target output there.
type Spec struct {
	NumVars     int
	NumExamples int

	VarNames   []string
	VarHeights []int
	VarValues  []uint32

	SolResult uint32
	SolHeight int

	// The full truth table, one row per assignment, and its target outputs.
	AllInputs [][]bool
	AllSols   []bool

	// ExampleIter is the example column the next counterexample will evict,
	// advancing round-robin.
	ExampleIter int
}

// New builds a Spec from variable declarations and a full truth table,
// loading an initial working example set of at most MaxExamples rows.
func New(varNames []string, varHeights []int, solHeight int, allInputs [][]bool, allSols []bool) (*Spec, error) {
	numVars := len(varNames)
	if numVars == 0 {
		return nil, errors.MalformedSpec("no variables declared")
	}
	if len(varHeights) != numVars {
		return nil, errors.MalformedSpec(
			fmt.Sprintf("%d variables but %d weights", numVars, len(varHeights)))
	}
	if solHeight < 0 {
		return nil, errors.MalformedSpec(fmt.Sprintf("negative height budget %d", solHeight))
	}
	for i, h := range varHeights {
		if h < 0 || h > solHeight {
			return nil, errors.MalformedSpec(
				fmt.Sprintf("variable %s has weight %d outside the budget [0, %d]",
					varNames[i], h, solHeight))
		}
	}
	if numVars > 31 {
		return nil, errors.MalformedSpec(
			fmt.Sprintf("%d variables, at most 31 are supported", numVars))
	}
	if len(allInputs) != 1<<numVars {
		return nil, errors.MalformedSpec(
			fmt.Sprintf("truth table has %d rows, want %d", len(allInputs), 1<<numVars))
	}
	if len(allSols) != len(allInputs) {
		return nil, errors.MalformedSpec(
			fmt.Sprintf("%d truth table rows but %d outputs", len(allInputs), len(allSols)))
	}
	for k, row := range allInputs {
		if len(row) != numVars {
			return nil, errors.MalformedSpec(
				fmt.Sprintf("truth table row %d has %d values, want %d", k, len(row), numVars))
		}
	}

	s := &Spec{
		NumVars:    numVars,
		VarNames:   varNames,
		VarHeights: varHeights,
		VarValues:  make([]uint32, numVars),
		SolHeight:  solHeight,
		AllInputs:  allInputs,
		AllSols:    allSols,
	}
	s.loadInitialExamples()
	return s, nil
}

// loadInitialExamples fills the working example set by striding across the
// truth table rather than taking a prefix of it.
func (s *Spec) loadInitialExamples() {
	rows := len(s.AllInputs)
	s.NumExamples = rows
	if s.NumExamples > MaxExamples {
		s.NumExamples = MaxExamples
	}

	stride := 1 + rows/MaxExamples
	for j := 0; j < s.NumExamples; j++ {
		s.setExampleColumn(j, (stride*j)%rows)
	}
}

// setExampleColumn overwrites example column j with truth table row k.
func (s *Spec) setExampleColumn(j, k int) {
	bit := uint32(1) << j
	for i := 0; i < s.NumVars; i++ {
		if s.AllInputs[k][i] {
			s.VarValues[i] |= bit
		} else {
			s.VarValues[i] &^= bit
		}
	}
	if s.AllSols[k] {
		s.SolResult |= bit
	} else {
		s.SolResult &^= bit
	}
}

// SolMask is all ones over the low NumExamples bits; term signatures and
// SolResult are always masked to it.
func (s *Spec) SolMask() uint32 {
	if s.NumExamples >= MaxExamples {
		return ^uint32(0)
	}
	return (uint32(1) << s.NumExamples) - 1
}

// ExampleVars reconstructs the variable assignment of example column j.
func (s *Spec) ExampleVars(j int) []bool {
	vars := make([]bool, s.NumVars)
	for i := 0; i < s.NumVars; i++ {
		vars[i] = (s.VarValues[i]>>j)&1 == 1
	}
	return vars
}

// Validate checks a candidate against the height budget and every example in
// the working set. Failures indicate an enumerator defect, not a bad input.
func (s *Spec) Validate(e ast.Expr) error {
	if h := e.Height(s.VarHeights); h > s.SolHeight {
		return errors.HeightViolation(h, s.SolHeight)
	}
	for j := 0; j < s.NumExamples; j++ {
		want := (s.SolResult>>j)&1 == 1
		if got := e.Eval(s.ExampleVars(j)); got != want {
			return errors.ValidationMismatch(j, got, want)
		}
	}
	return nil
}

// Counterexample returns the first truth table row where the candidate
// disagrees with the target, or None.
func (s *Spec) Counterexample(e ast.Expr) int {
	for k, row := range s.AllInputs {
		if e.Eval(row) != s.AllSols[k] {
			return k
		}
	}
	return None
}

// AdvanceCEGISIteration looks for a counterexample and, if one exists,
// rotates it into the working example set, evicting the oldest column.
// Returns the absorbed row index, or None when the candidate is final.
func (s *Spec) AdvanceCEGISIteration(e ast.Expr) int {
	k := s.Counterexample(e)
	if k == None {
		return None
	}

	s.setExampleColumn(s.ExampleIter, k)
	s.ExampleIter = (s.ExampleIter + 1) % MaxExamples
	return k
}
