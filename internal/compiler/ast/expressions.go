package ast

import "github.com/wick-lang/wick/internal/compiler/lexer"

// ExprNode is implemented by every expression AST node.
type ExprNode interface {
	Node
	exprNode()
}

// Literal is a literal value: number, string, or boolean.
type Literal struct {
	Value interface{}
	Loc   SourceLocation
}

func (l *Literal) node()     {}
func (l *Literal) exprNode() {}
func (l *Literal) Location() SourceLocation { return l.Loc }

// Variable references a bound name.
type Variable struct {
	Name lexer.Token
	Loc  SourceLocation
}

func (v *Variable) node()     {}
func (v *Variable) exprNode() {}
func (v *Variable) Location() SourceLocation { return v.Loc }

// Unary applies `!` or `-` to a single operand. Per the grammar, the
// operand is always a `primary` -- unary does not chain recursively.
type Unary struct {
	Operator lexer.Token
	Right    ExprNode
	Loc      SourceLocation
}

func (u *Unary) node()     {}
func (u *Unary) exprNode() {}
func (u *Unary) Location() SourceLocation { return u.Loc }

// Binary applies a binary operator to two operands.
type Binary struct {
	Left     ExprNode
	Operator lexer.Token
	Right    ExprNode
	Loc      SourceLocation
}

func (b *Binary) node()     {}
func (b *Binary) exprNode() {}
func (b *Binary) Location() SourceLocation { return b.Loc }

// Group is a parenthesized sub-expression.
type Group struct {
	Expr ExprNode
	Loc  SourceLocation
}

func (g *Group) node()     {}
func (g *Group) exprNode() {}
func (g *Group) Location() SourceLocation { return g.Loc }

// Ternary evaluates Condition, then exactly one of Then/Else.
// Surface syntax is `then_expr if condition else else_expr`.
type Ternary struct {
	Then      ExprNode
	Condition ExprNode
	Else      ExprNode
	Loc       SourceLocation
}

func (t *Ternary) node()     {}
func (t *Ternary) exprNode() {}
func (t *Ternary) Location() SourceLocation { return t.Loc }

// Assignment assigns Value to the variable named Name.
type Assignment struct {
	Name  lexer.Token
	Value ExprNode
	Loc   SourceLocation
}

func (a *Assignment) node()     {}
func (a *Assignment) exprNode() {}
func (a *Assignment) Location() SourceLocation { return a.Loc }

// Call invokes Callee with Args. ClosingParen anchors runtime-error
// locations at the call site.
type Call struct {
	Callee       ExprNode
	Args         []ExprNode
	ClosingParen lexer.Token
	Loc          SourceLocation
}

func (c *Call) node()     {}
func (c *Call) exprNode() {}
func (c *Call) Location() SourceLocation { return c.Loc }

// DefaultParam pairs a default parameter's name with the expression that
// produces its value when the corresponding argument is omitted.
type DefaultParam struct {
	Name lexer.Token
	Expr ExprNode
}

// Lambda is a first-class function literal: zero or more required
// parameters, followed by zero or more defaulted parameters, then a body.
type Lambda struct {
	Params        []lexer.Token
	DefaultParams []DefaultParam
	Body          *Scope
	Loc           SourceLocation
}

func (l *Lambda) node()     {}
func (l *Lambda) exprNode() {}
func (l *Lambda) Location() SourceLocation { return l.Loc }

// Prototype is an (optionally anonymous, optionally inheriting) object
// literal: an optional constructor lambda, an optional parent name, and
// the statements that populate the public and private property
// environments.
type Prototype struct {
	Constructor       ExprNode // *Lambda, nil if absent
	Parent            *lexer.Token // nil if no `from` clause
	PublicProperties  []StmtNode
	PrivateProperties []StmtNode
	Loc               SourceLocation
}

func (p *Prototype) node()     {}
func (p *Prototype) exprNode() {}
func (p *Prototype) Location() SourceLocation { return p.Loc }

// Get reads Property off Object, which must evaluate to a Prototype.
type Get struct {
	Object   ExprNode
	Property lexer.Token
	Loc      SourceLocation
}

func (g *Get) node()     {}
func (g *Get) exprNode() {}
func (g *Get) Location() SourceLocation { return g.Loc }

// Set writes Value to Property on Object, which must evaluate to a
// Prototype and must expose Property publicly.
type Set struct {
	Object   ExprNode
	Property lexer.Token
	Value    ExprNode
	Loc      SourceLocation
}

func (s *Set) node()     {}
func (s *Set) exprNode() {}
func (s *Set) Location() SourceLocation { return s.Loc }
