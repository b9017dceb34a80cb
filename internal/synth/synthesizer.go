package synth

import (
	"time"

	"github.com/tliron/commonlog"

	"boolsynth/internal/spec"
)

var log = commonlog.GetLogger("boolsynth.synth")

// Synthesizer owns the term bank, the signature set, and the pass metadata
// for the duration of one enumeration. It is single-threaded; iteration order
// inside every pass is fixed, so the first term produced for a signature is
// the representative that survives, which in turn fixes the shape of the
// reconstructed circuit.
type Synthesizer struct {
	spec *spec.Spec
	bank bank
	seen *seenSet
	mask uint32
}

func NewSynthesizer(s *spec.Spec) *Synthesizer {
	return &Synthesizer{
		spec: s,
		seen: newSeenSet(s.NumExamples),
		mask: s.SolMask(),
	}
}

// Run enumerates terms height by height until some pass produces a term whose
// signature equals the target column. Returns that term's bank index, or
// NotFound when the height budget is exhausted.
func (s *Synthesizer) Run() int {
	start := time.Now()
	solIndex := NotFound

	for height := 0; height <= s.spec.SolHeight; height++ {
		if solIndex = s.doPass(PassVariable, height); solIndex != NotFound {
			break
		}

		if height == 0 {
			continue
		}

		if solIndex = s.doPass(PassNot, height); solIndex != NotFound {
			break
		}
		if solIndex = s.doPass(PassAnd, height); solIndex != NotFound {
			break
		}
		if solIndex = s.doPass(PassOr, height); solIndex != NotFound {
			break
		}
		solIndex = s.doPass(PassXor, height)
		if solIndex != NotFound {
			break
		}
	}

	log.Infof("enumeration finished in %v with %d terms", time.Since(start), s.bank.size())
	return solIndex
}

// doPass dispatches one pass, records it, and logs its cost. Passes are
// recorded even when they hit, so reconstruction can decode the winning term.
func (s *Synthesizer) doPass(kind PassKind, height int) int {
	prevTerms := s.bank.size()
	passStart := time.Now()

	var solIndex int
	switch kind {
	case PassVariable:
		solIndex = s.passVariable(height)
	case PassNot:
		solIndex = s.passNot()
	case PassAnd:
		solIndex = s.passBinary(height, func(l, r uint32) uint32 { return l & r }, false)
	case PassOr:
		solIndex = s.passBinary(height, func(l, r uint32) uint32 { return l | r }, false)
	case PassXor:
		solIndex = s.passBinary(height, func(l, r uint32) uint32 { return l ^ r }, true)
	}

	s.bank.recordPass(kind, height)

	log.Debugf("height %d, %s pass: %v, %d new term(s), %d total",
		height, kind, time.Since(passStart), s.bank.size()-prevTerms, s.bank.size())
	return solIndex
}

// passVariable adds every variable whose weight equals the current height.
func (s *Synthesizer) passVariable(height int) int {
	for i := 0; i < s.spec.NumVars; i++ {
		if s.spec.VarHeights[i] != height {
			continue
		}

		result := s.mask & s.spec.VarValues[i]
		if s.seen.testAndSet(result) {
			continue
		}

		s.bank.addUnary(result, int32(i))

		if result == s.spec.SolResult {
			return s.bank.size() - 1
		}
	}

	return NotFound
}

// passNot negates every term added since the preceding Not pass. Negation
// does not open a new level, so the pass ignores heights entirely.
func (s *Synthesizer) passNot() int {
	leftsStart := s.bank.lastNotEnd()
	leftsEnd := s.bank.size()

	for left := leftsStart; left < leftsEnd; left++ {
		result := s.mask & ^s.bank.results[left]
		if s.seen.testAndSet(result) {
			continue
		}

		s.bank.addUnary(result, int32(left))

		if result == s.spec.SolResult {
			return s.bank.size() - 1
		}
	}

	return NotFound
}

// passBinary combines every term from the previous height level, as the left
// operand, with every earlier bank term, as the right operand. The right
// operand is not limited to the previous level, so a gate can pair a tall
// left child with a short right one. includeDiagonal admits left==right: combining a term with itself is useless
// for And and Or, but for Xor it yields the zero signature, which can be a
// new constant.
func (s *Synthesizer) passBinary(height int, combine func(l, r uint32) uint32, includeDiagonal bool) int {
	leftsStart := s.bank.heightStart(height - 1)
	leftsEnd := s.bank.heightEnd(height - 1)

	for left := leftsStart; left < leftsEnd; left++ {
		rightEnd := left
		if includeDiagonal {
			rightEnd = left + 1
		}

		for right := 0; right < rightEnd; right++ {
			result := s.mask & combine(s.bank.results[left], s.bank.results[right])
			if s.seen.testAndSet(result) {
				continue
			}

			s.bank.addBinary(result, int32(left), int32(right))

			if result == s.spec.SolResult {
				return s.bank.size() - 1
			}
		}
	}

	return NotFound
}
