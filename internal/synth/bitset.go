package synth

import (
	"github.com/willf/bitset"
)

// seenSet tracks which evaluation signatures already have a representative in
// the bank. It is the single source of truth for deduplication: a bit is set
// iff some bank term carries that signature.
type seenSet struct {
	bits *bitset.BitSet
}

// newSeenSet sizes the set for every possible signature over numExamples
// working examples: 2^E bits.
func newSeenSet(numExamples int) *seenSet {
	return &seenSet{bits: bitset.New(uint(1) << numExamples)}
}

func (s *seenSet) contains(sig uint32) bool {
	return s.bits.Test(uint(sig))
}

// testAndSet reports whether sig was already present, marking it either way.
// This is the dedup hot path.
func (s *seenSet) testAndSet(sig uint32) bool {
	if s.bits.Test(uint(sig)) {
		return true
	}
	s.bits.Set(uint(sig))
	return false
}
