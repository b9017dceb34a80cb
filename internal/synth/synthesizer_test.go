package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boolsynth/internal/spec"
)

// buildSpec constructs a problem from a target function over a naturally
// ordered truth table: bit i of the row index is variable i's value.
func buildSpec(t *testing.T, varNames []string, varHeights []int, solHeight int, target func([]bool) bool) *spec.Spec {
	t.Helper()

	numVars := len(varNames)
	rows := 1 << numVars
	inputs := make([][]bool, rows)
	sols := make([]bool, rows)
	for k := 0; k < rows; k++ {
		row := make([]bool, numVars)
		for i := 0; i < numVars; i++ {
			row[i] = (k>>i)&1 == 1
		}
		inputs[k] = row
		sols[k] = target(row)
	}

	s, err := spec.New(varNames, varHeights, solHeight, inputs, sols)
	require.NoError(t, err)
	return s
}

func parity(vars []bool) bool {
	result := false
	for _, v := range vars {
		result = result != v
	}
	return result
}

// checkAgainstTable asserts the winning term evaluates like the target on
// every truth table row.
func checkAgainstTable(t *testing.T, s *spec.Spec, syn *Synthesizer, solIndex int) {
	t.Helper()

	require.NotEqual(t, NotFound, solIndex)
	expr := syn.Reconstruct(solIndex)
	require.NoError(t, s.Validate(expr))
	assert.Equal(t, spec.None, s.Counterexample(expr))
}

func TestSynthesizeXor(t *testing.T) {
	s := buildSpec(t, []string{"a", "b"}, []int{0, 0}, 1, func(vars []bool) bool {
		return vars[0] != vars[1]
	})

	syn := NewSynthesizer(s)
	solIndex := syn.Run()
	checkAgainstTable(t, s, syn, solIndex)

	// The hit comes from the Xor pass at height 1.
	record := syn.bank.passAt(solIndex)
	assert.Equal(t, PassXor, record.kind)
	assert.Equal(t, 1, record.height)
}

func TestSynthesizeNot(t *testing.T) {
	s := buildSpec(t, []string{"a"}, []int{0}, 1, func(vars []bool) bool {
		return !vars[0]
	})

	syn := NewSynthesizer(s)
	solIndex := syn.Run()
	checkAgainstTable(t, s, syn, solIndex)

	expr := syn.Reconstruct(solIndex)
	assert.Equal(t, "!x0", expr.String())
}

func TestSynthesizeAndOr(t *testing.T) {
	s := buildSpec(t, []string{"a", "b", "c"}, []int{0, 0, 0}, 2, func(vars []bool) bool {
		return (vars[0] && vars[1]) || vars[2]
	})

	syn := NewSynthesizer(s)
	solIndex := syn.Run()
	checkAgainstTable(t, s, syn, solIndex)

	// Height 1 cannot express the target, so the hit comes from a height-2
	// pass. Which binary pass wins depends on the fixed pass order: And runs
	// first and reaches the target as (c||b) && (c||a).
	record := syn.bank.passAt(solIndex)
	assert.Equal(t, 2, record.height)
}

func TestSynthesizeConstantZero(t *testing.T) {
	s := buildSpec(t, []string{"a", "b"}, []int{0, 0}, 1, func(vars []bool) bool {
		return false
	})

	syn := NewSynthesizer(s)
	solIndex := syn.Run()
	checkAgainstTable(t, s, syn, solIndex)

	// The zero signature comes from xoring a term with itself.
	record := syn.bank.passAt(solIndex)
	assert.Equal(t, PassXor, record.kind)
	expr := syn.Reconstruct(solIndex)
	assert.Equal(t, "(x0 ^ x0)", expr.String())
}

func TestSynthesizeWeightedVariables(t *testing.T) {
	// a carries weight 1, so a && b tops out at height 2.
	s := buildSpec(t, []string{"a", "b"}, []int{1, 0}, 2, func(vars []bool) bool {
		return vars[0] && vars[1]
	})

	syn := NewSynthesizer(s)
	solIndex := syn.Run()
	checkAgainstTable(t, s, syn, solIndex)

	record := syn.bank.passAt(solIndex)
	assert.Equal(t, PassAnd, record.kind)
	assert.Equal(t, 2, record.height)
}

func TestUnsatWithinBound(t *testing.T) {
	// Parity of four inputs cannot fit in a height-1 circuit.
	s := buildSpec(t, []string{"a", "b", "c", "d"}, []int{0, 0, 0, 0}, 1, parity)

	syn := NewSynthesizer(s)
	assert.Equal(t, NotFound, syn.Run())
}

func TestDedupInvariant(t *testing.T) {
	// Exhaustive run with no early exit.
	s := buildSpec(t, []string{"a", "b", "c", "d"}, []int{0, 0, 0, 0}, 1, parity)
	syn := NewSynthesizer(s)
	syn.Run()

	// No two bank terms share a signature.
	seen := make(map[uint32]int)
	for index, result := range syn.bank.results {
		prev, dup := seen[result]
		assert.False(t, dup, "terms %d and %d share signature %032b", prev, index, result)
		seen[result] = index
	}

	// The signature set agrees with the bank exactly.
	for _, result := range syn.bank.results {
		assert.True(t, syn.seen.contains(result))
	}
	assert.Equal(t, uint(syn.bank.size()), syn.seen.bits.Count())
}

func TestHeightMonotonicityInvariant(t *testing.T) {
	s := buildSpec(t, []string{"a", "b", "c"}, []int{0, 0, 0}, 2, func(vars []bool) bool {
		return (vars[0] && vars[1]) || vars[2]
	})
	syn := NewSynthesizer(s)
	syn.Run()

	for index := 0; index < syn.bank.size(); index++ {
		record := syn.bank.passAt(index)
		switch record.kind {
		case PassAnd, PassOr, PassXor:
			left := syn.bank.passAt(int(syn.bank.lefts[index]))
			right := syn.bank.passAt(int(syn.bank.rights[index]))
			assert.Equal(t, record.height-1, left.height, "term %d left child", index)
			assert.LessOrEqual(t, right.height, record.height-1, "term %d right child", index)
		}
	}
}

func TestSignaturesMatchEvaluation(t *testing.T) {
	s := buildSpec(t, []string{"a", "b", "c"}, []int{0, 0, 0}, 2, func(vars []bool) bool {
		return (vars[0] && vars[1]) || vars[2]
	})
	syn := NewSynthesizer(s)
	syn.Run()

	// Every bank term's signature is exactly its reconstruction's evaluation
	// on the working examples.
	for index := 0; index < syn.bank.size(); index++ {
		expr := syn.Reconstruct(index)
		for j := 0; j < s.NumExamples; j++ {
			want := (syn.bank.results[index]>>j)&1 == 1
			assert.Equal(t, want, expr.Eval(s.ExampleVars(j)),
				"term %d, example %d", index, j)
		}
	}
}

func TestReconstructIdempotent(t *testing.T) {
	s := buildSpec(t, []string{"a", "b", "c"}, []int{0, 0, 0}, 2, func(vars []bool) bool {
		return (vars[0] && vars[1]) || vars[2]
	})
	syn := NewSynthesizer(s)
	solIndex := syn.Run()
	require.NotEqual(t, NotFound, solIndex)

	first := syn.Reconstruct(solIndex)
	second := syn.Reconstruct(solIndex)
	assert.Equal(t, first, second)
}

func TestEmptyHeightRange(t *testing.T) {
	var b bank
	b.recordPass(PassVariable, 0)

	assert.Equal(t, b.heightStart(1), b.heightEnd(1))
	assert.Equal(t, 0, b.heightEnd(1)-b.heightStart(1))
}
