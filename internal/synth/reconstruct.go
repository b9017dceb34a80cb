package synth

import (
	"boolsynth/internal/ast"
)

// Reconstruct builds the expression tree for a bank term. The pass that
// introduced the term tells us how to decode its row; children always have
// strictly smaller indices, so the walk terminates.
func (s *Synthesizer) Reconstruct(index int) ast.Expr {
	switch s.bank.passAt(index).kind {
	case PassVariable:
		return ast.Var(int(s.bank.lefts[index]))
	case PassNot:
		return ast.Not(s.Reconstruct(int(s.bank.lefts[index])))
	case PassAnd:
		return ast.And(
			s.Reconstruct(int(s.bank.lefts[index])),
			s.Reconstruct(int(s.bank.rights[index])))
	case PassOr:
		return ast.Or(
			s.Reconstruct(int(s.bank.lefts[index])),
			s.Reconstruct(int(s.bank.rights[index])))
	default:
		return ast.Xor(
			s.Reconstruct(int(s.bank.lefts[index])),
			s.Reconstruct(int(s.bank.rights[index])))
	}
}
