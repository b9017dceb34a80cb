package grammar

import (
	"fmt"
)

// Eval computes the circuit's value under the given variable assignment.
// Gates with bad arity and variables missing from the assignment are errors;
// both indicate a malformed input file rather than a programming mistake here.
func (c *Circuit) Eval(values map[string]bool) (bool, error) {
	switch {
	case c.Lit != nil:
		return bool(*c.Lit), nil
	case c.Var != nil:
		value, ok := values[*c.Var]
		if !ok {
			return false, fmt.Errorf("unbound variable %q", *c.Var)
		}
		return value, nil
	default:
		return c.Gate.eval(values)
	}
}

func (g *Gate) eval(values map[string]bool) (bool, error) {
	if g.Op == "not" {
		if len(g.Args) != 1 {
			return false, fmt.Errorf("not takes one argument, got %d", len(g.Args))
		}
		value, err := g.Args[0].Eval(values)
		return !value, err
	}

	if len(g.Args) < 2 {
		return false, fmt.Errorf("%s takes at least two arguments, got %d", g.Op, len(g.Args))
	}

	result, err := g.Args[0].Eval(values)
	if err != nil {
		return false, err
	}
	for _, arg := range g.Args[1:] {
		value, err := arg.Eval(values)
		if err != nil {
			return false, err
		}
		switch g.Op {
		case "and":
			result = result && value
		case "or":
			result = result || value
		case "xor":
			result = result != value
		}
	}
	return result, nil
}

// Vars lists the variables referenced by the circuit, deduplicated, in order
// of first appearance.
func (c *Circuit) Vars() []string {
	seen := make(map[string]bool)
	var names []string
	c.collectVars(seen, &names)
	return names
}

func (c *Circuit) collectVars(seen map[string]bool, names *[]string) {
	switch {
	case c.Var != nil:
		if !seen[*c.Var] {
			seen[*c.Var] = true
			*names = append(*names, *c.Var)
		}
	case c.Gate != nil:
		for _, arg := range c.Gate.Args {
			arg.collectVars(seen, names)
		}
	}
}
