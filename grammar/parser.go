package grammar

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

var circuitParser = buildParser()

func buildParser() *participle.Parser[Circuit] {
	p, err := participle.Build[Circuit](
		participle.Lexer(CircuitLexer),
		participle.Elide("Whitespace", "Comment"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to build circuit parser: %w", err))
	}

	return p
}

// ParseCircuit parses a reference-circuit s-expression.
func ParseCircuit(sourceName string, source string) (*Circuit, error) {
	return circuitParser.ParseString(sourceName, source)
}
