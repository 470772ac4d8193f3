// Package diagnostics implements the error-reporter sink the lexer and
// parser report into. Its contract is intentionally small: the compiler
// phases only ever need to record a diagnostic and later ask whether any
// were recorded -- everything past that (formatting, coloring, where it's
// written) is a CLI/REPL concern, not the reporter's.
package diagnostics

import "fmt"

// Diagnostic is one recorded lex/parse/runtime problem, formatted the way
// every phase of Wick reports diagnostics: `On line <L>, column <C>
// [<lexeme>]: <message>`.
type Diagnostic struct {
	Line    int
	Column  int
	Lexeme  string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("On line %d, column %d [%s]: %s", d.Line, d.Column, d.Lexeme, d.Message)
}

// Reporter collects diagnostics as the lexer and parser produce them. The
// interpreter never depends on anything beyond HadError -- per spec, its
// recovery policy is "skip the interpret phase if any diagnostic was
// already recorded", not "ask the reporter what it recorded".
type Reporter struct {
	diagnostics []Diagnostic
}

// New creates an empty Reporter.
func New() *Reporter {
	return &Reporter{}
}

// Report records a diagnostic anchored at an explicit line/column, with no
// lexeme attached.
func (r *Reporter) Report(line, column int, message string) {
	r.diagnostics = append(r.diagnostics, Diagnostic{Line: line, Column: column, Message: message})
}

// ReportToken records a diagnostic anchored at a token's position and
// lexeme; both CollectLexErrors and CollectParseErrors report through it.
func (r *Reporter) ReportToken(line, column int, lexeme, message string) {
	r.diagnostics = append(r.diagnostics, Diagnostic{Line: line, Column: column, Lexeme: lexeme, Message: message})
}

// HadError reports whether any diagnostic has been recorded.
func (r *Reporter) HadError() bool {
	return len(r.diagnostics) > 0
}

// Diagnostics returns every diagnostic recorded so far, in report order.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diagnostics
}
