// Package ast defines the Abstract Syntax Tree node types for the Wick
// scripting language: a sum of expression nodes (expressions.go) and
// statement nodes (this file), plus the Program root.
package ast

import "github.com/wick-lang/wick/internal/compiler/lexer"

// SourceLocation tracks the position of an AST node in source code.
type SourceLocation struct {
	Line   int
	Column int
}

// Node is the base interface implemented by every AST node.
type Node interface {
	Location() SourceLocation
	node()
}

// Program is the root node of the AST: the top-level statement list
// produced by one parse.
type Program struct {
	Statements []StmtNode
}

func (p *Program) node() {}

// Location returns the location of the first statement, or (1,1) if empty.
func (p *Program) Location() SourceLocation {
	if len(p.Statements) > 0 {
		return p.Statements[0].Location()
	}
	return SourceLocation{Line: 1, Column: 1}
}

// StmtNode is implemented by every statement AST node.
type StmtNode interface {
	Node
	stmtNode()
}

// TokenLocation converts a lexer.Token's position into a SourceLocation.
func TokenLocation(token lexer.Token) SourceLocation {
	return SourceLocation{Line: token.Line, Column: token.Column}
}

// ExpressionStmt wraps an expression evaluated for side effects only; its
// value is discarded.
type ExpressionStmt struct {
	Expr ExprNode
	Loc  SourceLocation
}

func (s *ExpressionStmt) node()     {}
func (s *ExpressionStmt) stmtNode() {}
func (s *ExpressionStmt) Location() SourceLocation { return s.Loc }

// VariableDecl declares a name, optionally initialized. It backs both
// `variable` and `constant` declarations -- the distinguishing bit lives on
// Name.Constant.
type VariableDecl struct {
	Name        lexer.Token
	Initializer ExprNode // nil if absent
	Loc         SourceLocation
}

func (s *VariableDecl) node()     {}
func (s *VariableDecl) stmtNode() {}
func (s *VariableDecl) Location() SourceLocation { return s.Loc }

// Scope is a `{ ... }` block introducing a new child lexical environment.
type Scope struct {
	Statements []StmtNode
	Loc        SourceLocation
}

func (s *Scope) node()     {}
func (s *Scope) stmtNode() {}
func (s *Scope) Location() SourceLocation { return s.Loc }

// If is a conditional statement; Else is nil when absent. `else if` is
// represented as Else holding the nested If directly, exactly mirroring the
// recursive-descent grammar that builds it.
type If struct {
	Condition ExprNode
	Then       *Scope
	Else       StmtNode // *Scope or *If, nil if absent
	Loc        SourceLocation
}

func (s *If) node()     {}
func (s *If) stmtNode() {}
func (s *If) Location() SourceLocation { return s.Loc }

// For represents both `for` and `while` loops. `while cond { ... }` is
// lowered to For{Init: nil, Condition: cond, Body: ..., Update: nil}.
type For struct {
	Init      StmtNode // *VariableDecl, nil for while-loops
	Condition ExprNode
	Body      *Scope
	Update    ExprNode // nil for while-loops
	Loc       SourceLocation
}

func (s *For) node()     {}
func (s *For) stmtNode() {}
func (s *For) Location() SourceLocation { return s.Loc }

// Return unwinds out of the nearest enclosing Callable body. Expr is nil
// for a bare `return;`.
type Return struct {
	Keyword lexer.Token
	Expr    ExprNode
	Loc     SourceLocation
}

func (s *Return) node()     {}
func (s *Return) stmtNode() {}
func (s *Return) Location() SourceLocation { return s.Loc }
