package interpreter

import (
	"fmt"

	"github.com/wick-lang/wick/internal/compiler/ast"
)

// RuntimeError is a diagnostic raised while executing a program: undefined
// identifier, assign-to-constant, arity mismatch, division/mod by zero,
// type mismatch, invalid operator, inheritance-from-non-prototype,
// property-private, property-not-found, set-on-non-prototype. The first
// one raised at top level aborts the remaining top-level statements.
type RuntimeError struct {
	Message string
	Loc     ast.SourceLocation
	Lexeme  string
}

// Error implements the reporter's formatted-message contract, matching the
// lexer's and parser's diagnostic shape: `On line <L>, column <C> [<lexeme>]: <message>`.
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("On line %d, column %d [%s]: %s", e.Loc.Line, e.Loc.Column, e.Lexeme, e.Message)
}

func runtimeErrorf(loc ast.SourceLocation, lexeme string, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...), Loc: loc, Lexeme: lexeme}
}
