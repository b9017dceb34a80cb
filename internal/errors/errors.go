package errors

import (
	"fmt"
	"strings"
)

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
)

// ToolError represents a structured error with suggestions and context
type ToolError struct {
	Level       ErrorLevel
	Code        string   // Error code like E0001
	Message     string   // Primary error message
	Line        int      // 1-based input line, 0 when not tied to an input file
	Suggestions []string // Suggested fixes
	Notes       []string // Additional context notes
	HelpText    string   // Help text for the error
}

func (e ToolError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s[%s]: %s (line %d)", e.Level, e.Code, e.Message, e.Line)
	}
	return fmt.Sprintf("%s[%s]: %s", e.Level, e.Code, e.Message)
}

// ErrorBuilder provides a fluent interface for creating tool errors with suggestions
type ErrorBuilder struct {
	err ToolError
}

// NewError creates a new error builder
func NewError(code, message string) *ErrorBuilder {
	return &ErrorBuilder{
		err: ToolError{
			Level:   Error,
			Code:    code,
			Message: message,
		},
	}
}

// WithLine records the 1-based input line the error refers to
func (b *ErrorBuilder) WithLine(line int) *ErrorBuilder {
	b.err.Line = line
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *ErrorBuilder) WithSuggestion(message string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, message)
	return b
}

// WithNote adds a note to the error
func (b *ErrorBuilder) WithNote(note string) *ErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *ErrorBuilder) WithHelp(help string) *ErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed tool error
func (b *ErrorBuilder) Build() ToolError {
	return b.err
}

// Common error constructors

// MalformedSpec creates an error for an inconsistent problem statement
func MalformedSpec(detail string) ToolError {
	return NewError(ErrorMalformedSpec, detail).
		WithHelp("the problem statement must declare at least one variable, matching vector sizes, and per-variable weights within the height budget").
		Build()
}

// HeightViolation creates an error for a circuit that overflows the budget
func HeightViolation(got, budget int) ToolError {
	return NewError(ErrorHeightViolation,
		fmt.Sprintf("synthesized circuit has height %d, budget is %d", got, budget)).
		WithNote("the enumerator should never emit a term over the budget").
		Build()
}

// ValidationMismatch creates an error for a circuit that fails its own examples
func ValidationMismatch(example int, got, want bool) ToolError {
	return NewError(ErrorValidationMismatch,
		fmt.Sprintf("circuit evaluates to %t on example %d, expected %t", got, example, want)).
		WithNote("term signatures and circuit evaluation should always agree").
		Build()
}

// SyntaxError creates a generic input syntax error
func SyntaxError(line int, detail string) ToolError {
	return NewError(ErrorSyntax, detail).WithLine(line).Build()
}

// UnknownVariable creates an error for a reference circuit that names an
// undeclared variable, suggesting declared names when there are any
func UnknownVariable(name string, declared []string) ToolError {
	builder := NewError(ErrorUnknownVariable, fmt.Sprintf("undeclared variable '%s'", name))
	if len(declared) > 0 {
		builder = builder.WithSuggestion(
			fmt.Sprintf("declared variables are: '%s'", strings.Join(declared, "', '")))
	} else {
		builder = builder.WithNote("the grammar block declares no variables at all")
	}
	return builder.Build()
}
