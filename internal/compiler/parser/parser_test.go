package parser

import (
	"testing"

	"github.com/wick-lang/wick/internal/compiler/ast"
	"github.com/wick-lang/wick/internal/compiler/lexer"
)

// parseSource lexes and parses source, failing the test on any lex error.
func parseSource(t *testing.T, source string) (*ast.Program, []ParseError) {
	t.Helper()

	lex := lexer.New(source)
	tokens, lexErrors := lex.ScanTokens()
	if len(lexErrors) > 0 {
		t.Fatalf("unexpected lex errors: %v", lexErrors)
	}

	p := New(tokens)
	return p.Parse()
}

func singleExprStmt(t *testing.T, program *ast.Program) ast.ExprNode {
	t.Helper()
	if len(program.Statements) != 1 {
		t.Fatalf("expected exactly 1 statement, got %d", len(program.Statements))
	}
	stmt, ok := program.Statements[0].(*ast.ExpressionStmt)
	if !ok {
		t.Fatalf("expected an ExpressionStmt, got %T", program.Statements[0])
	}
	return stmt.Expr
}

func TestParser_ArithmeticPrecedence(t *testing.T) {
	program, errs := parseSource(t, "1 + 2 * 3;")
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	expr := singleExprStmt(t, program)
	bin, ok := expr.(*ast.Binary)
	if !ok {
		t.Fatalf("expected top-level Binary(+), got %T", expr)
	}
	if bin.Operator.Kind != lexer.Plus {
		t.Fatalf("expected '+' at top, got %s", bin.Operator.Kind)
	}
	right, ok := bin.Right.(*ast.Binary)
	if !ok || right.Operator.Kind != lexer.Star {
		t.Fatalf("expected '*' to bind tighter on the right, got %#v", bin.Right)
	}
}

func TestParser_AndOrSitBetweenEqualityAndComparison(t *testing.T) {
	// `1 < 2 and 3 == 3` should parse as ((1 < 2) and 3) == 3, confirming
	// `and`/`or` bind looser than comparison but tighter than equality.
	program, errs := parseSource(t, "1 < 2 and 3 == 3;")
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	expr := singleExprStmt(t, program)
	top, ok := expr.(*ast.Binary)
	if !ok || top.Operator.Kind != lexer.EqualEqual {
		t.Fatalf("expected '==' at the very top (equality is outermost), got %#v", expr)
	}
	leftAnd, ok := top.Left.(*ast.Binary)
	if !ok || leftAnd.Operator.Kind != lexer.And {
		t.Fatalf("expected 'and' directly under '==', got %#v", top.Left)
	}
	cmp, ok := leftAnd.Left.(*ast.Binary)
	if !ok || cmp.Operator.Kind != lexer.Less {
		t.Fatalf("expected '<' under 'and', got %#v", leftAnd.Left)
	}
}

func TestParser_TernaryIsRightAssociativeOnElse(t *testing.T) {
	program, errs := parseSource(t, "1 if true else 2 if false else 3;")
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	expr := singleExprStmt(t, program)
	outer, ok := expr.(*ast.Ternary)
	if !ok {
		t.Fatalf("expected Ternary, got %T", expr)
	}
	if _, ok := outer.Else.(*ast.Ternary); !ok {
		t.Fatalf("expected outer ternary's Else to itself be a Ternary (right-associative), got %#v", outer.Else)
	}
}

func TestParser_UnaryDoesNotChain(t *testing.T) {
	// `- -1` is unary(-) over primary(-1 cannot be, since primary doesn't
	// consume '-'); so the second '-' must fail to be absorbed by unary and
	// instead surfaces as a parse error, since primary has no unary case.
	_, errs := parseSource(t, "variable x = --1;")
	if len(errs) == 0 {
		t.Fatalf("expected a parse error for chained unary minus, got none")
	}
}

func TestParser_AssignmentToVariableBuildsAssignment(t *testing.T) {
	program, errs := parseSource(t, "x = 1;")
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	expr := singleExprStmt(t, program)
	assign, ok := expr.(*ast.Assignment)
	if !ok {
		t.Fatalf("expected Assignment, got %T", expr)
	}
	if assign.Name.Lexeme != "x" {
		t.Fatalf("expected target 'x', got %q", assign.Name.Lexeme)
	}
}

func TestParser_AssignmentToPropertyBuildsSet(t *testing.T) {
	program, errs := parseSource(t, "obj.field = 1;")
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	expr := singleExprStmt(t, program)
	set, ok := expr.(*ast.Set)
	if !ok {
		t.Fatalf("expected Set, got %T", expr)
	}
	if set.Property.Lexeme != "field" {
		t.Fatalf("expected property 'field', got %q", set.Property.Lexeme)
	}
}

func TestParser_InvalidAssignmentTargetRecordsError(t *testing.T) {
	_, errs := parseSource(t, "1 + 2 = 3;")
	if len(errs) == 0 {
		t.Fatalf("expected a parse error for an invalid assignment target")
	}
}

func TestParser_LambdaDefaultParamsMustFollowRequired(t *testing.T) {
	_, errs := parseSource(t, "variable f = lambda(x = 1, y) { return x; };")
	if len(errs) == 0 {
		t.Fatalf("expected a parse error when a required parameter follows a default one")
	}
}

func TestParser_LambdaParsesRequiredAndDefaultParams(t *testing.T) {
	program, errs := parseSource(t, "variable f = lambda(x, y = 2) { return x; };")
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	decl, ok := program.Statements[0].(*ast.VariableDecl)
	if !ok {
		t.Fatalf("expected VariableDecl, got %T", program.Statements[0])
	}
	lambda, ok := decl.Initializer.(*ast.Lambda)
	if !ok {
		t.Fatalf("expected Lambda initializer, got %T", decl.Initializer)
	}
	if len(lambda.Params) != 1 || lambda.Params[0].Lexeme != "x" {
		t.Fatalf("expected one required param 'x', got %#v", lambda.Params)
	}
	if len(lambda.DefaultParams) != 1 || lambda.DefaultParams[0].Name.Lexeme != "y" {
		t.Fatalf("expected one default param 'y', got %#v", lambda.DefaultParams)
	}
}

func TestParser_PrototypeWithConstructorParentAndVisibility(t *testing.T) {
	source := `prototype Dog from Animal {
		constructor lambda(name) {
			this.name = name;
		}
		public:
			variable name = "";
		private:
			variable age = 0;
	}`
	program, errs := parseSource(t, source)
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	decl, ok := program.Statements[0].(*ast.VariableDecl)
	if !ok {
		t.Fatalf("expected VariableDecl, got %T", program.Statements[0])
	}
	proto, ok := decl.Initializer.(*ast.Prototype)
	if !ok {
		t.Fatalf("expected Prototype, got %T", decl.Initializer)
	}
	if proto.Parent == nil || proto.Parent.Lexeme != "Animal" {
		t.Fatalf("expected parent 'Animal', got %#v", proto.Parent)
	}
	if proto.Constructor == nil {
		t.Fatalf("expected a constructor")
	}
	if len(proto.PublicProperties) != 1 {
		t.Fatalf("expected 1 public property, got %d", len(proto.PublicProperties))
	}
	if len(proto.PrivateProperties) != 1 {
		t.Fatalf("expected 1 private property, got %d", len(proto.PrivateProperties))
	}
}

func TestParser_ForLoopRequiresInitializer(t *testing.T) {
	program, errs := parseSource(t, "for variable i = 0; i < 10; i = i + 1 { }")
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	forStmt, ok := program.Statements[0].(*ast.For)
	if !ok {
		t.Fatalf("expected For, got %T", program.Statements[0])
	}
	if forStmt.Init == nil {
		t.Fatalf("expected a non-nil initializer")
	}
	if forStmt.Update == nil {
		t.Fatalf("expected a non-nil update expression")
	}
}

func TestParser_WhileLowersToForWithNilInitAndUpdate(t *testing.T) {
	program, errs := parseSource(t, "while true { }")
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	forStmt, ok := program.Statements[0].(*ast.For)
	if !ok {
		t.Fatalf("expected While to lower to For, got %T", program.Statements[0])
	}
	if forStmt.Init != nil || forStmt.Update != nil {
		t.Fatalf("expected nil Init and Update for a while-loop, got %#v / %#v", forStmt.Init, forStmt.Update)
	}
}

func TestParser_ElseIfChainsAsNestedIf(t *testing.T) {
	program, errs := parseSource(t, "if true { } else if false { } else { }")
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	ifStmt, ok := program.Statements[0].(*ast.If)
	if !ok {
		t.Fatalf("expected If, got %T", program.Statements[0])
	}
	elseIf, ok := ifStmt.Else.(*ast.If)
	if !ok {
		t.Fatalf("expected else-if to be a nested If, got %T", ifStmt.Else)
	}
	if _, ok := elseIf.Else.(*ast.Scope); !ok {
		t.Fatalf("expected the final else to be a Scope, got %T", elseIf.Else)
	}
}

func TestParser_SynchronizeRecoversAfterSemicolon(t *testing.T) {
	// The first statement is malformed (invalid assignment target); after
	// synchronize advances past its trailing ';', the second statement
	// should still parse cleanly, demonstrating multi-error collection.
	program, errs := parseSource(t, "1 = 2; variable x = 3;")
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 collected parse error, got %d: %v", len(errs), errs)
	}
	if len(program.Statements) != 1 {
		t.Fatalf("expected the recovered statement to still be parsed, got %d statements", len(program.Statements))
	}
	decl, ok := program.Statements[0].(*ast.VariableDecl)
	if !ok || decl.Name.Lexeme != "x" {
		t.Fatalf("expected recovered VariableDecl for 'x', got %#v", program.Statements[0])
	}
}

func TestParser_GroupWrapsParenthesizedExpression(t *testing.T) {
	program, errs := parseSource(t, "(1 + 2) * 3;")
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	expr := singleExprStmt(t, program)
	bin, ok := expr.(*ast.Binary)
	if !ok || bin.Operator.Kind != lexer.Star {
		t.Fatalf("expected top-level '*', got %#v", expr)
	}
	if _, ok := bin.Left.(*ast.Group); !ok {
		t.Fatalf("expected parenthesized left operand to be wrapped in Group, got %T", bin.Left)
	}
}

func TestParser_CallAndGetChain(t *testing.T) {
	program, errs := parseSource(t, "a.b(1, 2).c;")
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	expr := singleExprStmt(t, program)
	get, ok := expr.(*ast.Get)
	if !ok || get.Property.Lexeme != "c" {
		t.Fatalf("expected outer Get for 'c', got %#v", expr)
	}
	call, ok := get.Object.(*ast.Call)
	if !ok || len(call.Args) != 2 {
		t.Fatalf("expected a Call with 2 args under the outer Get, got %#v", get.Object)
	}
}
