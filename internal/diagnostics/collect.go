package diagnostics

import (
	"github.com/wick-lang/wick/internal/compiler/lexer"
	"github.com/wick-lang/wick/internal/compiler/parser"
)

// CollectLexErrors records every lexer diagnostic into r. The lexer itself
// stays self-contained (it returns its own []LexError, matching the
// teacher's error-collecting scanner idiom); this adapter is where that
// phase's diagnostics meet the reporter contract spec.md describes as an
// external collaborator.
func CollectLexErrors(r *Reporter, errs []lexer.LexError) {
	for _, e := range errs {
		r.ReportToken(e.Line, e.Column, e.Lexeme, e.Message)
	}
}

// CollectParseErrors records every parser diagnostic into r.
func CollectParseErrors(r *Reporter, errs []parser.ParseError) {
	for _, e := range errs {
		r.ReportToken(e.Location.Line, e.Location.Column, e.Token.Lexeme, e.Message)
	}
}
