package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boolsynth/internal/errors"
)

const truthTableSource = `max-depth:
1
done
variables:
a 0
b 0
done
input/output:
00 0
10 1
01 1
11 0
done
`

func TestParseTruthTable(t *testing.T) {
	s, err := ParseTruthTable("xor.tt", truthTableSource)
	require.NoError(t, err)

	assert.Equal(t, 2, s.NumVars)
	assert.Equal(t, []string{"a", "b"}, s.VarNames)
	assert.Equal(t, []int{0, 0}, s.VarHeights)
	assert.Equal(t, 1, s.SolHeight)
	assert.Equal(t, 4, s.NumExamples)

	// Rows are `<bits> <bit>` with bit i belonging to variable i.
	assert.Equal(t, []bool{true, false}, s.AllInputs[1])
	assert.Equal(t, []bool{false, true, true, false}, s.AllSols)
}

func TestParseTruthTableComments(t *testing.T) {
	source := "; xor example\n" + truthTableSource
	_, err := ParseTruthTable("xor.tt", source)
	assert.NoError(t, err)
}

func TestParseTruthTableErrors(t *testing.T) {
	cases := []struct {
		name   string
		source string
		code   string
	}{
		{"bad depth", "max-depth:\nhigh\ndone\n", errors.ErrorSyntax},
		{"bad weight", "max-depth:\n1\ndone\nvariables:\na zero\ndone\n", errors.ErrorSyntax},
		{"missing weight", "max-depth:\n1\ndone\nvariables:\na\ndone\n", errors.ErrorSyntax},
		{"bad row width", "max-depth:\n1\ndone\nvariables:\na 0\ndone\ninput/output:\n00 1\ndone\n", errors.ErrorSyntax},
		{"bad row bit", "max-depth:\n1\ndone\nvariables:\na 0\ndone\ninput/output:\nx 1\ndone\n", errors.ErrorSyntax},
		{"bad output bit", "max-depth:\n1\ndone\nvariables:\na 0\ndone\ninput/output:\n0 2\ndone\n", errors.ErrorSyntax},
		{"stray line", "hello\n", errors.ErrorSyntax},
		{"no depth", "variables:\na 0\ndone\ninput/output:\n0 0\n1 1\ndone\n", errors.ErrorMissingSection},
		{"no variables", "max-depth:\n1\ndone\n", errors.ErrorMissingSection},
		{"no rows", "max-depth:\n1\ndone\nvariables:\na 0\ndone\n", errors.ErrorMissingSection},
		{"row count mismatch", "max-depth:\n1\ndone\nvariables:\na 0\ndone\ninput/output:\n0 0\ndone\n", errors.ErrorMalformedSpec},
		{"weight over budget", "max-depth:\n1\ndone\nvariables:\na 2\ndone\ninput/output:\n0 0\n1 1\ndone\n", errors.ErrorMalformedSpec},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseTruthTable("bad.tt", tc.source)
			require.Error(t, err)
			toolErr, ok := err.(errors.ToolError)
			require.True(t, ok, "want a ToolError, got %T", err)
			assert.Equal(t, tc.code, toolErr.Code)
		})
	}
}

const sygusSource = `; synthesize (xor b1 b2) at depth 1
(set-logic BV)
(define-fun origCir ((b1 Bool) (b2 Bool)) Bool
(xor b1 b2)
)
(synth-fun skel ((b1 Bool) (b2 Bool)) Bool
((Start Bool (
(depth1
b1
b2
)))
)
)
(check-synth)
`

func TestParseSyGuS(t *testing.T) {
	s, err := ParseSyGuS("xor.sl", sygusSource)
	require.NoError(t, err)

	assert.Equal(t, []string{"b1", "b2"}, s.VarNames)
	assert.Equal(t, 1, s.SolHeight)
	// Depth-1 variables get weight maxDepth - depth = 0.
	assert.Equal(t, []int{0, 0}, s.VarHeights)

	// xor truth table in natural row order.
	assert.Equal(t, []bool{false, true, true, false}, s.AllSols)
}

func TestParseSyGuSDepths(t *testing.T) {
	source := `(define-fun Spec ((a Bool) (b Bool)) Bool
(and a b)
)
(synth-fun skel ((a Bool) (b Bool)) Bool
((Start Bool (
(depth1
a
(depth2
b
)))
)
)
)
`
	s, err := ParseSyGuS("weighted.sl", source)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, s.VarNames)
	assert.Equal(t, 2, s.SolHeight)
	// a sits at depth 1, b at depth 2: deeper means lighter.
	assert.Equal(t, []int{1, 0}, s.VarHeights)
}

func TestParseSyGuSErrors(t *testing.T) {
	t.Run("no circuit", func(t *testing.T) {
		_, err := ParseSyGuS("bad.sl", "(synth-fun skel () Bool\n((Start Bool (\n(depth1\na\n)))\n)\n)\n")
		require.Error(t, err)
		assert.Equal(t, errors.ErrorMissingSection, err.(errors.ToolError).Code)
	})

	t.Run("no grammar", func(t *testing.T) {
		_, err := ParseSyGuS("bad.sl", "(define-fun origCir ((a Bool)) Bool\n(not a)\n)\n")
		require.Error(t, err)
		assert.Equal(t, errors.ErrorMissingSection, err.(errors.ToolError).Code)
	})

	t.Run("bad circuit", func(t *testing.T) {
		source := "(define-fun origCir ((a Bool)) Bool\n(not a\n)\n(synth-fun skel ((a Bool)) Bool\n((Start Bool (\n(depth1\na\n)))\n)\n)\n"
		_, err := ParseSyGuS("bad.sl", source)
		require.Error(t, err)
		assert.Equal(t, errors.ErrorSyntax, err.(errors.ToolError).Code)
	})

	t.Run("undeclared variable", func(t *testing.T) {
		source := "(define-fun origCir ((a Bool)) Bool\n(and a ghost)\n)\n(synth-fun skel ((a Bool)) Bool\n((Start Bool (\n(depth1\na\n)))\n)\n)\n"
		_, err := ParseSyGuS("bad.sl", source)
		require.Error(t, err)
		assert.Equal(t, errors.ErrorUnknownVariable, err.(errors.ToolError).Code)
	})
}
