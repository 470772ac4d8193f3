package interpreter

import (
	"math"

	"github.com/wick-lang/wick/internal/compiler/ast"
	"github.com/wick-lang/wick/internal/compiler/lexer"
	"github.com/wick-lang/wick/internal/runtime/environment"
)

func stringOperation(left string, b *ast.Binary, right string) (environment.Value, error) {
	switch b.Operator.Kind {
	case lexer.Plus:
		return environment.StringValue(left + right), nil
	case lexer.EqualEqual:
		return environment.BooleanValue(left == right), nil
	case lexer.BangEqual:
		return environment.BooleanValue(left != right), nil
	case lexer.Less:
		return environment.BooleanValue(left < right), nil
	case lexer.LessEqual:
		return environment.BooleanValue(left <= right), nil
	case lexer.Greater:
		return environment.BooleanValue(left > right), nil
	case lexer.GreaterEqual:
		return environment.BooleanValue(left >= right), nil
	default:
		return environment.NilValue, runtimeErrorf(b.Loc, b.Operator.Lexeme, "not a supported string operator")
	}
}

func booleanOperation(left bool, b *ast.Binary, right bool) (environment.Value, error) {
	switch b.Operator.Kind {
	case lexer.And:
		return environment.BooleanValue(left && right), nil
	case lexer.Or:
		return environment.BooleanValue(left || right), nil
	case lexer.EqualEqual:
		return environment.BooleanValue(left == right), nil
	case lexer.BangEqual:
		return environment.BooleanValue(left != right), nil
	default:
		return environment.NilValue, runtimeErrorf(b.Loc, b.Operator.Lexeme, "not a supported boolean operator")
	}
}

func numericOperation(left float64, b *ast.Binary, right float64) (environment.Value, error) {
	switch b.Operator.Kind {
	case lexer.EqualEqual:
		return environment.BooleanValue(left == right), nil
	case lexer.BangEqual:
		return environment.BooleanValue(left != right), nil
	case lexer.Less:
		return environment.BooleanValue(left < right), nil
	case lexer.LessEqual:
		return environment.BooleanValue(left <= right), nil
	case lexer.Greater:
		return environment.BooleanValue(left > right), nil
	case lexer.GreaterEqual:
		return environment.BooleanValue(left >= right), nil
	case lexer.Star:
		return environment.NumberValue(left * right), nil
	case lexer.Plus:
		return environment.NumberValue(left + right), nil
	case lexer.Minus:
		return environment.NumberValue(left - right), nil
	case lexer.Slash:
		if right == 0 {
			return environment.NilValue, runtimeErrorf(b.Loc, b.Operator.Lexeme, "attempted to divide by zero")
		}
		return environment.NumberValue(left / right), nil
	case lexer.Mod:
		if right == 0 {
			return environment.NilValue, runtimeErrorf(b.Loc, b.Operator.Lexeme, "attempted to take remainder of division by zero")
		}
		return environment.NumberValue(math.Mod(left, right)), nil
	default:
		return environment.NilValue, runtimeErrorf(b.Loc, b.Operator.Lexeme, "not a supported numeric operator")
	}
}
