// Package schemeerr defines the closed error taxonomy spec.md §7 requires.
//
// Each kind is its own Go type implementing the error interface, the
// idiomatic Go analogue of the Rust `EvalErr` enum this taxonomy is
// grounded on (original_source/src/error.rs). Every rendered message is
// prefixed with "ERROR:" as spec.md §7 ("Display") specifies; callers that
// need to distinguish kinds use errors.As rather than string matching.
package schemeerr

import (
	"fmt"
	"strings"
)

// MalformedToken is raised when the lexer recognizes the start of a token
// shape (a number, a boolean) but cannot finish reading it validly.
type MalformedToken struct {
	Reason string
}

func (e *MalformedToken) Error() string {
	return fmt.Sprintf("ERROR: %s", e.Reason)
}

// UnexpectedChar is raised when the lexer encounters a byte that cannot
// begin any recognized token.
type UnexpectedChar struct {
	Ch byte
}

func (e *UnexpectedChar) Error() string {
	return fmt.Sprintf("ERROR: unexpected character %q", e.Ch)
}

// UnterminatedString is raised when a `"` is never matched by a closing
// quote before the source ends.
type UnterminatedString struct{}

func (e *UnterminatedString) Error() string {
	return "ERROR: unterminated string literal"
}

// LexingFailures aggregates every lexing error encountered across an entire
// source; the lexer does not stop at the first failure (spec.md §4.1).
type LexingFailures struct {
	Errors []error
}

func (e *LexingFailures) Error() string {
	var b strings.Builder
	b.WriteString("ERROR: could not tokenize source:")
	for _, sub := range e.Errors {
		b.WriteString("\n-- ")
		b.WriteString(strings.TrimPrefix(sub.Error(), "ERROR: "))
	}
	return b.String()
}

// UnexpectedToken is raised by the parser when a token appears where the
// grammar does not permit it.
type UnexpectedToken struct {
	Printable string
}

func (e *UnexpectedToken) Error() string {
	return fmt.Sprintf("ERROR: unexpected token %s", e.Printable)
}

// UnexpectedEnd is raised when the token stream runs out mid-expression.
type UnexpectedEnd struct{}

func (e *UnexpectedEnd) Error() string {
	return "ERROR: unexpected end of expression"
}

// InvalidArgs is raised for malformed special forms, wrong-arity calls, and
// apply's non-list-argument case.
type InvalidArgs struct {
	Message string
}

func (e *InvalidArgs) Error() string {
	return fmt.Sprintf("ERROR: invalid argument, %s", e.Message)
}

// TypeError is raised when a value has the wrong shape for an operation.
// Got is the printed representation of the offending value, not its value,
// to avoid this leaf package depending on the ast package.
type TypeError struct {
	Expected string
	Got      string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("ERROR: expected %s, got %s", e.Expected, e.Got)
}

// UnboundVar is raised when an identifier lookup or set! fails to find a
// binding anywhere in the environment chain.
type UnboundVar struct {
	Name string
}

func (e *UnboundVar) Error() string {
	return fmt.Sprintf("ERROR: accessing unbound variable %s", e.Name)
}

// RuntimeException is raised by user code via (error msg).
type RuntimeException struct {
	Message string
}

func (e *RuntimeException) Error() string {
	return fmt.Sprintf("ERROR: %s", e.Message)
}
