package spec

import (
	"fmt"
	"strings"
)

// String renders the working example set for debug logging.
func (s *Spec) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "num_vars: %d, num_examples: %d, sol_height: %d", s.NumVars, s.NumExamples, s.SolHeight)

	sb.WriteString(", vars:")
	for i, name := range s.VarNames {
		fmt.Fprintf(&sb, " %s(w%d)=%032b", name, s.VarHeights[i], s.VarValues[i])
	}

	fmt.Fprintf(&sb, ", sol_result: %032b", s.SolResult)
	return sb.String()
}
