package ast

import (
	"fmt"
	"strings"
)

// String renders the tree with positional variable names (x0, x1, ...).
// Every binary gate is parenthesized so precedence never has to be guessed.
func (v *VarExpr) String() string {
	return fmt.Sprintf("x%d", v.Index)
}

func (n *NotExpr) String() string {
	return "!" + n.Child.String()
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op.symbol(), b.Right.String())
}

func (op GateOp) symbol() string {
	switch op {
	case GateAnd:
		return "&&"
	case GateOr:
		return "||"
	default:
		return "^"
	}
}

// Format renders the tree using the given variable name table.
func Format(e Expr, varNames []string) string {
	var sb strings.Builder
	writeNamed(&sb, e, varNames)
	return sb.String()
}

func writeNamed(sb *strings.Builder, e Expr, varNames []string) {
	switch node := e.(type) {
	case *VarExpr:
		sb.WriteString(varNames[node.Index])
	case *NotExpr:
		sb.WriteByte('!')
		writeNamed(sb, node.Child, varNames)
	case *BinaryExpr:
		sb.WriteByte('(')
		writeNamed(sb, node.Left, varNames)
		sb.WriteString(" " + node.Op.symbol() + " ")
		writeNamed(sb, node.Right, varNames)
		sb.WriteByte(')')
	}
}
