// Package parser implements Wick's recursive-descent parser: one-token
// lookahead over a lexer.Token stream, producing an ast.Program, with
// panic-mode recovery so multiple diagnostics can be collected per parse.
package parser

import (
	"fmt"

	"github.com/wick-lang/wick/internal/compiler/ast"
	"github.com/wick-lang/wick/internal/compiler/lexer"
)

// ParseError represents one diagnostic encountered during parsing.
type ParseError struct {
	Message  string
	Location ast.SourceLocation
	Token    lexer.Token
}

// Error implements the error interface and the reporter's formatted-message
// contract: `On line <L>, column <C> [<lexeme>]: <message>`.
func (e *ParseError) Error() string {
	return fmt.Sprintf("On line %d, column %d [%s]: %s",
		e.Location.Line, e.Location.Column, e.Token.Lexeme, e.Message)
}

// NewParseError builds a ParseError anchored at token.
func NewParseError(message string, token lexer.Token) ParseError {
	return ParseError{
		Message:  message,
		Location: ast.SourceLocation{Line: token.Line, Column: token.Column},
		Token:    token,
	}
}
