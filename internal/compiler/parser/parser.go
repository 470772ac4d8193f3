package parser

import (
	"github.com/wick-lang/wick/internal/compiler/ast"
	"github.com/wick-lang/wick/internal/compiler/lexer"
)

// Parser is a recursive-descent parser over a fixed token slice, with
// panic-mode recovery so a single parse can collect multiple diagnostics.
type Parser struct {
	tokens  []lexer.Token
	current int
	errors  []ParseError
}

// New creates a Parser over tokens (the lexer's full output, including the
// trailing EOF token).
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// parseBailout unwinds the call stack back to declaration()'s recover,
// mirroring the panic-mode strategy of throwing a sentinel exception up to
// the nearest synchronization point (the same technique the Go standard
// library's own parser uses for the same reason: every production would
// otherwise have to thread an error return through every caller).
type parseBailout struct{}

// Parse runs the parser to completion and returns the resulting program
// plus every diagnostic collected along the way.
func (p *Parser) Parse() (*ast.Program, []ParseError) {
	var statements []ast.StmtNode
	for !p.isAtEnd() {
		if stmt := p.declaration(true); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return &ast.Program{Statements: statements}, p.errors
}

// declaration parses one top-level-or-scope production: a subroutine,
// prototype, or variable/constant declaration, or (if allowStatements) a
// plain statement. A parse error anywhere inside is caught here and
// triggers synchronize, matching the reference's try/catch-per-declaration
// loop body.
func (p *Parser) declaration(allowStatements bool) (stmt ast.StmtNode) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseBailout); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	switch {
	case p.match(lexer.Subroutine):
		return p.subroutineDecl()
	case p.match(lexer.Prototype):
		return p.prototypeDecl()
	case p.match(lexer.Variable):
		return p.variableDecl(false)
	case p.match(lexer.Constant):
		return p.variableDecl(true)
	case allowStatements:
		return p.statement()
	default:
		p.error(p.peek(), "statement not allowed here")
		return nil
	}
}

func (p *Parser) subroutineDecl() ast.StmtNode {
	loc := ast.TokenLocation(p.previous())
	name := p.consume(lexer.Identifier, "expected a subroutine name")
	name.Constant = false
	definition := p.lambda()
	return &ast.VariableDecl{Name: name, Initializer: definition, Loc: loc}
}

func (p *Parser) prototypeDecl() ast.StmtNode {
	loc := ast.TokenLocation(p.previous())
	name := p.consume(lexer.Identifier, "expected a prototype name")
	definition := p.anonymousPrototype()
	return &ast.VariableDecl{Name: name, Initializer: definition, Loc: loc}
}

func (p *Parser) variableDecl(constant bool) ast.StmtNode {
	name := p.consume(lexer.Identifier, "expected a variable name")
	name.Constant = constant
	loc := ast.TokenLocation(name)
	var initializer ast.ExprNode
	if p.match(lexer.Equal) {
		initializer = p.expression()
	}
	p.consume(lexer.Semicolon, "expected ';' after variable declaration")
	return &ast.VariableDecl{Name: name, Initializer: initializer, Loc: loc}
}

func (p *Parser) statement() ast.StmtNode {
	switch {
	case p.match(lexer.For):
		return p.forStmt()
	case p.match(lexer.While):
		return p.whileStmt()
	case p.match(lexer.If):
		return p.ifStmt()
	case p.match(lexer.LeftBrace):
		return p.scope()
	case p.match(lexer.Return):
		return p.returnStmt()
	default:
		return p.expressionStatement(true)
	}
}

// forStmt requires an initializer clause, matching the reference grammar's
// forStmt production (variableDecl is never optional here; see DESIGN.md).
func (p *Parser) forStmt() ast.StmtNode {
	loc := ast.TokenLocation(p.previous())
	p.consume(lexer.Variable, "expected a variable declaration after 'for'")
	initializer := p.variableDecl(false)
	condition := p.expression()
	p.consume(lexer.Semicolon, "expected ';' after loop condition")
	update := p.expressionStatement(false).(*ast.ExpressionStmt).Expr
	p.consume(lexer.LeftBrace, "expected '{' after for statement")
	body := p.scope().(*ast.Scope)
	return &ast.For{Init: initializer, Condition: condition, Body: body, Update: update, Loc: loc}
}

func (p *Parser) whileStmt() ast.StmtNode {
	loc := ast.TokenLocation(p.previous())
	condition := p.expression()
	p.consume(lexer.LeftBrace, "expected '{' after while statement")
	body := p.scope().(*ast.Scope)
	return &ast.For{Init: nil, Condition: condition, Body: body, Update: nil, Loc: loc}
}

func (p *Parser) ifStmt() ast.StmtNode {
	loc := ast.TokenLocation(p.previous())
	condition := p.expression()
	p.consume(lexer.LeftBrace, "expected '{' after if statement")
	then := p.scope().(*ast.Scope)
	var elseStmt ast.StmtNode
	if p.match(lexer.Else) {
		if p.match(lexer.If) {
			elseStmt = p.ifStmt()
		} else {
			p.consume(lexer.LeftBrace, "expected '{' after else statement")
			elseStmt = p.scope()
		}
	}
	return &ast.If{Condition: condition, Then: then, Else: elseStmt, Loc: loc}
}

func (p *Parser) scope() ast.StmtNode {
	loc := ast.TokenLocation(p.previous())
	var statements []ast.StmtNode
	for !p.check(lexer.RightBrace) && !p.isAtEnd() {
		if stmt := p.declaration(true); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.consume(lexer.RightBrace, "expected '}' after scope")
	return &ast.Scope{Statements: statements, Loc: loc}
}

func (p *Parser) returnStmt() ast.StmtNode {
	keyword := p.previous()
	loc := ast.TokenLocation(keyword)
	var expr ast.ExprNode
	if !p.check(lexer.Semicolon) {
		expr = p.expression()
	}
	p.consume(lexer.Semicolon, "expected ';' after return statement")
	return &ast.Return{Keyword: keyword, Expr: expr, Loc: loc}
}

func (p *Parser) expressionStatement(expectSemicolon bool) ast.StmtNode {
	expr := p.expression()
	loc := expr.Location()
	if expectSemicolon {
		p.consume(lexer.Semicolon, "expected ';' after statement")
	}
	return &ast.ExpressionStmt{Expr: expr, Loc: loc}
}

// Helper methods.

func (p *Parser) peek() lexer.Token {
	if p.current >= len(p.tokens) {
		return lexer.Token{Kind: lexer.EOF}
	}
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	if p.current == 0 {
		return lexer.Token{Kind: lexer.EOF}
	}
	return p.tokens[p.current-1]
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind lexer.TokenKind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...lexer.TokenKind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind lexer.TokenKind, message string) lexer.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.error(p.peek(), message)
	return lexer.Token{Kind: lexer.Error}
}

func (p *Parser) isAtEnd() bool {
	return p.current >= len(p.tokens) || p.tokens[p.current].Kind == lexer.EOF
}

// error records a diagnostic and unwinds to the nearest declaration()
// frame via parseBailout, mirroring the reference's thrown ParserException.
func (p *Parser) error(token lexer.Token, message string) {
	p.errors = append(p.errors, NewParseError(message, token))
	panic(parseBailout{})
}

// synchronize implements panic-mode recovery: advance one token, then
// consume until either the last consumed token was ';' or the current
// token begins a declaration/statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == lexer.Semicolon {
			return
		}
		switch p.peek().Kind {
		case lexer.Subroutine, lexer.Variable, lexer.If, lexer.While:
			return
		}
		p.advance()
	}
}
