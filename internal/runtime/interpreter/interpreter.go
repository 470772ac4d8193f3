// Package interpreter tree-walks a parsed Program, evaluating expressions
// to environment.Value and executing statements for their side effects. It
// threads an explicit *environment.Environment through every call, mirroring
// the reference's double-dispatch visitor with plain Go type switches.
package interpreter

import (
	"io"

	"github.com/wick-lang/wick/internal/compiler/ast"
	"github.com/wick-lang/wick/internal/compiler/lexer"
	"github.com/wick-lang/wick/internal/compiler/stdlib"
	"github.com/wick-lang/wick/internal/runtime/environment"
)

// Interpreter owns the global environment and drives top-level execution.
type Interpreter struct {
	Global *environment.Environment
}

// New builds an Interpreter with the native builtins registered into a
// fresh global environment, reading from in and writing to out.
func New(out io.Writer, in io.Reader) *Interpreter {
	global := environment.New()
	stdlib.Register(global, out, in)
	return &Interpreter{Global: global}
}

// Run executes every top-level statement in order. The first runtime error
// aborts the remaining top-level statements and is returned; a bare
// top-level `return` likewise halts the program (there is no enclosing
// call to receive it) but is not itself an error.
func (it *Interpreter) Run(program *ast.Program) error {
	for _, stmt := range program.Statements {
		cf, err := it.exec(stmt, it.Global)
		if err != nil {
			return err
		}
		if cf.returning {
			return nil
		}
	}
	return nil
}

// controlFlow is the non-local signal produced by a `return` statement. It
// propagates upward through exec calls (not via panic/recover, since this
// is ordinary, expected control flow rather than an exceptional condition)
// until it reaches the Callable frame that invoked the body.
type controlFlow struct {
	returning bool
	value     environment.Value
}

// thisToken and parentToken are the synthetic, constant-tagged bindings
// installed into a prototype's surrounding/method environment.
func thisToken() lexer.Token {
	return lexer.Token{Kind: lexer.Identifier, Lexeme: "this", Constant: true}
}

func parentToken() lexer.Token {
	return lexer.Token{Kind: lexer.Identifier, Lexeme: "parent", Constant: true}
}

// exec executes one statement, returning a control-flow signal (set only by
// Return, and propagated unmodified by Scope/If/For) and/or a runtime error.
func (it *Interpreter) exec(stmt ast.StmtNode, env *environment.Environment) (controlFlow, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := it.eval(s.Expr, env)
		return controlFlow{}, err

	case *ast.VariableDecl:
		return controlFlow{}, it.execVariableDecl(s, env)

	case *ast.Scope:
		return it.execScope(s, env)

	case *ast.If:
		return it.execIf(s, env)

	case *ast.For:
		return it.execFor(s, env)

	case *ast.Return:
		return it.execReturn(s, env)

	default:
		return controlFlow{}, runtimeErrorf(stmt.Location(), "", "unrecognized statement node %T", stmt)
	}
}

// execVariableDecl evaluates the initializer (if any) and binds it. If the
// bound value is a Callable, the same binding is additionally installed
// inside the Callable's own captured environment, so a subroutine can call
// itself by name -- the trick that makes recursion possible without a
// forward-declaration pass.
func (it *Interpreter) execVariableDecl(decl *ast.VariableDecl, env *environment.Environment) error {
	value := environment.NilValue
	if decl.Initializer != nil {
		v, err := it.eval(decl.Initializer, env)
		if err != nil {
			return err
		}
		value = v
	}
	if value.Kind == environment.CallableKind {
		_ = value.Callable.CapturedEnv.Define(decl.Name, value)
	}
	if err := env.Define(decl.Name, value); err != nil {
		return runtimeErrorf(decl.Loc, decl.Name.Lexeme, "%s", err.Error())
	}
	return nil
}

func (it *Interpreter) execScope(scope *ast.Scope, env *environment.Environment) (controlFlow, error) {
	child := environment.NewChild(env)
	for _, stmt := range scope.Statements {
		cf, err := it.exec(stmt, child)
		if err != nil {
			return controlFlow{}, err
		}
		if cf.returning {
			return cf, nil
		}
	}
	return controlFlow{}, nil
}

func (it *Interpreter) execIf(s *ast.If, env *environment.Environment) (controlFlow, error) {
	cond, err := it.eval(s.Condition, env)
	if err != nil {
		return controlFlow{}, err
	}
	if cond.Truthy() {
		return it.exec(s.Then, env)
	}
	if s.Else != nil {
		return it.exec(s.Else, env)
	}
	return controlFlow{}, nil
}

func (it *Interpreter) execFor(s *ast.For, env *environment.Environment) (controlFlow, error) {
	forEnv := environment.NewChild(env)
	if s.Init != nil {
		if _, err := it.exec(s.Init, forEnv); err != nil {
			return controlFlow{}, err
		}
	}
	for {
		cond, err := it.eval(s.Condition, forEnv)
		if err != nil {
			return controlFlow{}, err
		}
		if !cond.Truthy() {
			return controlFlow{}, nil
		}
		cf, err := it.exec(s.Body, forEnv)
		if err != nil {
			return controlFlow{}, err
		}
		if cf.returning {
			return cf, nil
		}
		if s.Update != nil {
			if _, err := it.eval(s.Update, forEnv); err != nil {
				return controlFlow{}, err
			}
		}
	}
}

func (it *Interpreter) execReturn(s *ast.Return, env *environment.Environment) (controlFlow, error) {
	value := environment.NilValue
	if s.Expr != nil {
		v, err := it.eval(s.Expr, env)
		if err != nil {
			return controlFlow{}, err
		}
		value = v
	}
	return controlFlow{returning: true, value: value}, nil
}

// eval evaluates one expression to a Value.
func (it *Interpreter) eval(expr ast.ExprNode, env *environment.Environment) (environment.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e), nil

	case *ast.Variable:
		v, err := env.Get(e.Name)
		if err != nil {
			return environment.NilValue, runtimeErrorf(e.Loc, e.Name.Lexeme, "%s", err.Error())
		}
		return v, nil

	case *ast.Unary:
		return it.evalUnary(e, env)

	case *ast.Binary:
		return it.evalBinary(e, env)

	case *ast.Group:
		return it.eval(e.Expr, env)

	case *ast.Ternary:
		cond, err := it.eval(e.Condition, env)
		if err != nil {
			return environment.NilValue, err
		}
		if cond.Truthy() {
			return it.eval(e.Then, env)
		}
		return it.eval(e.Else, env)

	case *ast.Assignment:
		value, err := it.eval(e.Value, env)
		if err != nil {
			return environment.NilValue, err
		}
		if err := env.Assign(e.Name, value); err != nil {
			return environment.NilValue, runtimeErrorf(e.Loc, e.Name.Lexeme, "%s", err.Error())
		}
		return value, nil

	case *ast.Call:
		return it.evalCall(e, env)

	case *ast.Lambda:
		return it.evalLambda(e, env), nil

	case *ast.Prototype:
		return it.evalPrototype(e, env)

	case *ast.Get:
		return it.evalGet(e, env)

	case *ast.Set:
		return it.evalSet(e, env)

	default:
		return environment.NilValue, runtimeErrorf(expr.Location(), "", "unrecognized expression node %T", expr)
	}
}

func literalValue(lit *ast.Literal) environment.Value {
	switch v := lit.Value.(type) {
	case bool:
		return environment.BooleanValue(v)
	case float64:
		return environment.NumberValue(v)
	case string:
		return environment.StringValue(v)
	default:
		return environment.NilValue
	}
}

func (it *Interpreter) evalUnary(u *ast.Unary, env *environment.Environment) (environment.Value, error) {
	right, err := it.eval(u.Right, env)
	if err != nil {
		return environment.NilValue, err
	}
	switch u.Operator.Kind {
	case lexer.Bang:
		if right.Kind != environment.Boolean {
			return environment.NilValue, runtimeErrorf(u.Loc, u.Operator.Lexeme, "type mismatch: '!' requires a boolean operand")
		}
		return environment.BooleanValue(!right.Boolean), nil
	case lexer.Minus:
		if right.Kind != environment.Number {
			return environment.NilValue, runtimeErrorf(u.Loc, u.Operator.Lexeme, "type mismatch: unary '-' requires a number operand")
		}
		return environment.NumberValue(-right.Number), nil
	default:
		return environment.NilValue, runtimeErrorf(u.Loc, u.Operator.Lexeme, "not a supported unary operator")
	}
}

func (it *Interpreter) evalBinary(b *ast.Binary, env *environment.Environment) (environment.Value, error) {
	left, err := it.eval(b.Left, env)
	if err != nil {
		return environment.NilValue, err
	}
	right, err := it.eval(b.Right, env)
	if err != nil {
		return environment.NilValue, err
	}

	switch left.Kind {
	case environment.String:
		if right.Kind != environment.String {
			return environment.NilValue, runtimeErrorf(b.Loc, b.Operator.Lexeme, "type mismatch between operator operands")
		}
		return stringOperation(left.String, b, right.String)
	case environment.Boolean:
		if right.Kind != environment.Boolean {
			return environment.NilValue, runtimeErrorf(b.Loc, b.Operator.Lexeme, "type mismatch between operator operands")
		}
		return booleanOperation(left.Boolean, b, right.Boolean)
	case environment.Number:
		if right.Kind != environment.Number {
			return environment.NilValue, runtimeErrorf(b.Loc, b.Operator.Lexeme, "type mismatch between operator operands")
		}
		return numericOperation(left.Number, b, right.Number)
	default:
		return environment.NilValue, runtimeErrorf(b.Loc, b.Operator.Lexeme, "type mismatch: operands are not strings, booleans, or numbers")
	}
}
