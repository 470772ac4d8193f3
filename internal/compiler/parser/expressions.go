package parser

import (
	"strconv"

	"github.com/wick-lang/wick/internal/compiler/ast"
	"github.com/wick-lang/wick/internal/compiler/lexer"
)

// expression is the entry point: ternary sits outermost, binding the
// loosest of any operator. `else` re-enters expression recursively, which
// is what makes the else-branch right-associative.
func (p *Parser) expression() ast.ExprNode {
	thenExpr := p.simpleExpression()
	if p.match(lexer.If) {
		loc := thenExpr.Location()
		condition := p.expression()
		p.consume(lexer.Else, `expected "else" after ternary condition`)
		elseExpr := p.expression()
		return &ast.Ternary{Then: thenExpr, Condition: condition, Else: elseExpr, Loc: loc}
	}
	return thenExpr
}

// simpleExpression dispatches to the two expression-level declarations that
// are not themselves operators before falling through to assignment.
func (p *Parser) simpleExpression() ast.ExprNode {
	switch {
	case p.match(lexer.Lambda):
		return p.lambda()
	case p.match(lexer.Prototype):
		return p.anonymousPrototype()
	default:
		return p.assignment()
	}
}

func (p *Parser) lambda() ast.ExprNode {
	loc := ast.TokenLocation(p.previous())
	p.consume(lexer.LeftParen, "expected '(' before parameters")

	var params []lexer.Token
	var defaultParams []ast.DefaultParam
	if !p.check(lexer.RightParen) {
		seenDefault := false
		for {
			identifier := p.consume(lexer.Identifier, "expected an identifier for parameter")
			switch {
			case p.match(lexer.Equal):
				seenDefault = true
				defaultParams = append(defaultParams, ast.DefaultParam{Name: identifier, Expr: p.expression()})
			case !seenDefault:
				params = append(params, identifier)
			default:
				p.error(identifier, "non-default parameters must come before default parameters")
			}
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	p.consume(lexer.RightParen, "expected ')' after parameters")
	p.consume(lexer.LeftBrace, "expected '{' before lambda body")
	body := p.scope().(*ast.Scope)
	return &ast.Lambda{Params: params, DefaultParams: defaultParams, Body: body, Loc: loc}
}

func (p *Parser) anonymousPrototype() ast.ExprNode {
	loc := ast.TokenLocation(p.previous())
	var parent *lexer.Token
	if p.match(lexer.From) {
		t := p.consume(lexer.Identifier, "expected a prototype to inherit from")
		parent = &t
	}
	p.consume(lexer.LeftBrace, "expected '{' after prototype declaration")

	var constructor ast.ExprNode
	if p.check(lexer.Identifier) && p.peek().Lexeme == "constructor" {
		p.advance()
		p.consume(lexer.Lambda, "expected a lambda for the constructor body")
		constructor = p.lambda()
	}

	var publicProperties []ast.StmtNode
	if p.match(lexer.Public) {
		p.consume(lexer.Colon, `expected ':' after "public"`)
		for !p.check(lexer.Private) && !p.check(lexer.RightBrace) && !p.isAtEnd() {
			if stmt := p.declaration(false); stmt != nil {
				publicProperties = append(publicProperties, stmt)
			}
		}
	}

	var privateProperties []ast.StmtNode
	if p.match(lexer.Private) {
		p.consume(lexer.Colon, `expected ':' after "private"`)
		for !p.check(lexer.RightBrace) && !p.isAtEnd() {
			if stmt := p.declaration(false); stmt != nil {
				privateProperties = append(privateProperties, stmt)
			}
		}
	}
	p.consume(lexer.RightBrace, "expected '}' after prototype definition")
	return &ast.Prototype{
		Constructor:       constructor,
		Parent:            parent,
		PublicProperties:  publicProperties,
		PrivateProperties: privateProperties,
		Loc:               loc,
	}
}

// assignment lowers the parsed left-hand side by its AST tag rather than an
// unchecked cast: a Variable becomes an Assignment, a Get becomes a Set
// (moving its Object field across), and anything else is a parse error
// anchored at the '=' token.
func (p *Parser) assignment() ast.ExprNode {
	expr := p.equality()
	if p.match(lexer.Equal) {
		equalToken := p.previous()
		value := p.assignment()
		switch e := expr.(type) {
		case *ast.Variable:
			return &ast.Assignment{Name: e.Name, Value: value, Loc: e.Loc}
		case *ast.Get:
			return &ast.Set{Object: e.Object, Property: e.Property, Value: value, Loc: e.Loc}
		default:
			p.error(equalToken, "invalid assignment target")
			return expr
		}
	}
	return expr
}

func (p *Parser) equality() ast.ExprNode {
	left := p.andExpr()
	for p.match(lexer.BangEqual, lexer.EqualEqual) {
		op := p.previous()
		right := p.andExpr()
		left = &ast.Binary{Left: left, Operator: op, Right: right, Loc: left.Location()}
	}
	return left
}

// andExpr and orExpr sit between equality and comparison in Wick's
// precedence cascade; both operators are eager (non-short-circuiting),
// which the interpreter enforces by evaluating both sides unconditionally.
func (p *Parser) andExpr() ast.ExprNode {
	left := p.orExpr()
	for p.match(lexer.And) {
		op := p.previous()
		right := p.orExpr()
		left = &ast.Binary{Left: left, Operator: op, Right: right, Loc: left.Location()}
	}
	return left
}

func (p *Parser) orExpr() ast.ExprNode {
	left := p.comparison()
	for p.match(lexer.Or) {
		op := p.previous()
		right := p.comparison()
		left = &ast.Binary{Left: left, Operator: op, Right: right, Loc: left.Location()}
	}
	return left
}

func (p *Parser) comparison() ast.ExprNode {
	left := p.term()
	for p.match(lexer.Less, lexer.LessEqual, lexer.Greater, lexer.GreaterEqual) {
		op := p.previous()
		right := p.term()
		left = &ast.Binary{Left: left, Operator: op, Right: right, Loc: left.Location()}
	}
	return left
}

func (p *Parser) term() ast.ExprNode {
	left := p.factor()
	for p.match(lexer.Plus, lexer.Minus) {
		op := p.previous()
		right := p.factor()
		left = &ast.Binary{Left: left, Operator: op, Right: right, Loc: left.Location()}
	}
	return left
}

func (p *Parser) factor() ast.ExprNode {
	left := p.unary()
	for p.match(lexer.Star, lexer.Slash, lexer.Mod) {
		op := p.previous()
		right := p.unary()
		left = &ast.Binary{Left: left, Operator: op, Right: right, Loc: left.Location()}
	}
	return left
}

// unary wraps primary directly rather than recursing into itself, so `!!x`
// and `--x` are parse errors, not double-negations; this matches the
// reference grammar exactly (see DESIGN.md).
func (p *Parser) unary() ast.ExprNode {
	if p.match(lexer.Bang, lexer.Minus) {
		op := p.previous()
		right := p.primary()
		return &ast.Unary{Operator: op, Right: right, Loc: ast.TokenLocation(op)}
	}
	return p.call()
}

func (p *Parser) call() ast.ExprNode {
	expr := p.primary()
	for {
		switch {
		case p.match(lexer.LeftParen):
			var args []ast.ExprNode
			if !p.check(lexer.RightParen) {
				for {
					args = append(args, p.expression())
					if !p.match(lexer.Comma) {
						break
					}
				}
			}
			closingParen := p.consume(lexer.RightParen, "expected ')' after arguments")
			expr = &ast.Call{Callee: expr, Args: args, ClosingParen: closingParen, Loc: expr.Location()}
		case p.match(lexer.Dot):
			property := p.consume(lexer.Identifier, "expected a property name after '.'")
			expr = &ast.Get{Object: expr, Property: property, Loc: expr.Location()}
		default:
			return expr
		}
	}
}

// primary always wraps a parenthesized expression in a Group node, per the
// data model's explicit Group variant; see DESIGN.md for why this departs
// from the reference parser, which returns the inner expression bare.
func (p *Parser) primary() ast.ExprNode {
	switch {
	case p.match(lexer.True):
		return &ast.Literal{Value: true, Loc: ast.TokenLocation(p.previous())}
	case p.match(lexer.False):
		return &ast.Literal{Value: false, Loc: ast.TokenLocation(p.previous())}
	case p.match(lexer.Number):
		tok := p.previous()
		n, _ := strconv.ParseFloat(tok.Lexeme, 64)
		return &ast.Literal{Value: n, Loc: ast.TokenLocation(tok)}
	case p.match(lexer.String):
		tok := p.previous()
		return &ast.Literal{Value: tok.Literal, Loc: ast.TokenLocation(tok)}
	case p.match(lexer.Identifier):
		tok := p.previous()
		return &ast.Variable{Name: tok, Loc: ast.TokenLocation(tok)}
	case p.match(lexer.LeftParen):
		loc := ast.TokenLocation(p.previous())
		inner := p.expression()
		p.consume(lexer.RightParen, "expected ')' after expression")
		return &ast.Group{Expr: inner, Loc: loc}
	default:
		p.error(p.peek(), "expected an expression")
		return nil
	}
}
