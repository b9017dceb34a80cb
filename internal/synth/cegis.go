package synth

import (
	"fmt"

	"boolsynth/internal/ast"
	"boolsynth/internal/spec"
)

// ErrUnsatWithinBound is returned when no circuit within the height budget
// matches the working example set. The caller may retry with a larger budget.
var ErrUnsatWithinBound = fmt.Errorf("synth: no circuit within the height budget")

// ErrIterationBudget is returned when the counterexample loop fails to
// converge within its iteration budget.
var ErrIterationBudget = fmt.Errorf("synth: counterexample iteration budget exceeded")

// DefaultMaxIterations bounds the counterexample loop. The working example
// set holds 32 rows, so a loop that has not converged after this many
// absorbed rows is cycling through evictions.
const DefaultMaxIterations = 64

// Solve runs the counterexample-guided loop: enumerate a candidate against
// the working example set, check it against the full truth table, and absorb
// the first disagreeing row before retrying. Derived state (bank, signature
// set) is rebuilt from scratch every iteration, because rotating a column
// changes what every stored signature means.
func Solve(s *spec.Spec, maxIterations int) (ast.Expr, error) {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	for iteration := 0; iteration < maxIterations; iteration++ {
		log.Debugf("iteration %d: %s", iteration, s)

		synthesizer := NewSynthesizer(s)
		solIndex := synthesizer.Run()
		if solIndex == NotFound {
			return nil, ErrUnsatWithinBound
		}

		candidate := synthesizer.Reconstruct(solIndex)
		if err := s.Validate(candidate); err != nil {
			return nil, err
		}

		row := s.AdvanceCEGISIteration(candidate)
		if row == spec.None {
			log.Infof("converged after %d iteration(s): %s", iteration+1, candidate)
			return candidate, nil
		}
		log.Infof("iteration %d: candidate %s fails on row %d", iteration, candidate, row)
	}

	return nil, ErrIterationBudget
}
