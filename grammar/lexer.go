package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var CircuitLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// SyGuS line comments
		{"Comment", `;[^\n]*`, nil},

		// Gate names, variable names, boolean constants
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		// S-expression punctuation
		{"Punctuation", `[()]`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
