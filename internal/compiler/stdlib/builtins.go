// Package stdlib registers Wick's native (built-in) callables and constants
// into a global environment: I/O (print/input), time, and the math library
// surface the reference interpreter wires up in its constructor.
package stdlib

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wick-lang/wick/internal/compiler/lexer"
	"github.com/wick-lang/wick/internal/runtime/environment"
)

// Register binds every native callable and constant into global, with
// print/input wired to out/in instead of the process's real stdio, so both
// the CLI and REPL (and tests) can redirect them freely.
func Register(global *environment.Environment, out io.Writer, in io.Reader) {
	reader := bufio.NewReader(in)

	define := func(name string, v environment.Value) {
		_ = global.Define(identifier(name), v)
	}
	defineCallable := func(name string, minArity, maxArity int, proc environment.Procedure) {
		define(name, environment.CallableValue(&environment.Callable{
			MinArity:    minArity,
			MaxArity:    maxArity,
			Procedure:   proc,
			CapturedEnv: global,
		}))
	}
	define1 := func(name string, f func(float64) float64) {
		defineCallable(name, 1, 1, func(args []environment.Value, _ *environment.Environment) (environment.Value, error) {
			x, err := numArg(args, 0)
			if err != nil {
				return environment.NilValue, err
			}
			return environment.NumberValue(f(x)), nil
		})
	}
	define2 := func(name string, f func(a, b float64) float64) {
		defineCallable(name, 2, 2, func(args []environment.Value, _ *environment.Environment) (environment.Value, error) {
			a, err := numArg(args, 0)
			if err != nil {
				return environment.NilValue, err
			}
			b, err := numArg(args, 1)
			if err != nil {
				return environment.NilValue, err
			}
			return environment.NumberValue(f(a, b)), nil
		})
	}

	defineCallable("doNothing", 0, 0, func(args []environment.Value, _ *environment.Environment) (environment.Value, error) {
		return environment.NilValue, nil
	})
	defineCallable("print", 1, 1, func(args []environment.Value, _ *environment.Environment) (environment.Value, error) {
		printValue(out, args[0])
		return environment.NilValue, nil
	})
	defineCallable("input", 0, 1, func(args []environment.Value, _ *environment.Environment) (environment.Value, error) {
		if len(args) > 0 {
			printValue(out, args[0])
		}
		line, _ := reader.ReadString('\n')
		return environment.StringValue(strings.TrimRight(line, "\r\n")), nil
	})
	defineCallable("time", 0, 0, func(args []environment.Value, _ *environment.Environment) (environment.Value, error) {
		return environment.NumberValue(float64(time.Now().Unix())), nil
	})
	defineCallable("uuid", 0, 0, func(args []environment.Value, _ *environment.Environment) (environment.Value, error) {
		return environment.StringValue(uuid.NewString()), nil
	})

	define2("min", math.Min)
	define2("max", math.Max)
	define1("abs", math.Abs)
	define1("round", math.Round)
	define1("floor", math.Floor)
	define1("ceil", math.Ceil)
	define1("truncate", math.Trunc)
	define2("pow", math.Pow)
	define1("exp", math.Exp)
	define1("sqrt", math.Sqrt)
	define1("cbrt", math.Cbrt)

	defineCallable("hypotenuse", 2, 3, func(args []environment.Value, _ *environment.Environment) (environment.Value, error) {
		a, err := numArg(args, 0)
		if err != nil {
			return environment.NilValue, err
		}
		b, err := numArg(args, 1)
		if err != nil {
			return environment.NilValue, err
		}
		if len(args) == 2 {
			return environment.NumberValue(math.Hypot(a, b)), nil
		}
		c, err := numArg(args, 2)
		if err != nil {
			return environment.NilValue, err
		}
		return environment.NumberValue(math.Sqrt(a*a + b*b + c*c)), nil
	})

	define1("log", math.Log10)
	define1("lg", math.Log2)
	define1("ln", math.Log)

	define1("sin", math.Sin)
	define1("cos", math.Cos)
	define1("tan", math.Tan)
	define1("sinh", math.Sinh)
	define1("cosh", math.Cosh)
	define1("tanh", math.Tanh)
	define1("arcsin", math.Asin)
	define1("arccos", math.Acos)
	define1("arcsinh", math.Asinh)
	define1("arccosh", math.Acosh)
	define1("arctanh", math.Atanh)

	defineCallable("arctan", 1, 2, func(args []environment.Value, _ *environment.Environment) (environment.Value, error) {
		y, err := numArg(args, 0)
		if err != nil {
			return environment.NilValue, err
		}
		if len(args) == 1 {
			return environment.NumberValue(math.Atan(y)), nil
		}
		x, err := numArg(args, 1)
		if err != nil {
			return environment.NilValue, err
		}
		return environment.NumberValue(math.Atan2(y, x)), nil
	})

	defineCallable("isnan", 1, 1, func(args []environment.Value, _ *environment.Environment) (environment.Value, error) {
		x, err := numArg(args, 0)
		if err != nil {
			return environment.NilValue, err
		}
		return environment.BooleanValue(math.IsNaN(x)), nil
	})

	define("PI", environment.NumberValue(math.Pi))
	define("E_V", environment.NumberValue(math.E))
	define("MIN_VALUE", environment.NumberValue(math.SmallestNonzeroFloat64))
	define("MAX_VALUE", environment.NumberValue(math.MaxFloat64))
	define("NaN", environment.NumberValue(math.NaN()))
}

func identifier(name string) lexer.Token {
	return lexer.Token{Kind: lexer.Identifier, Lexeme: name}
}

func numArg(args []environment.Value, i int) (float64, error) {
	if args[i].Kind != environment.Number {
		return 0, fmt.Errorf("expected a number argument, got %s", args[i].Kind)
	}
	return args[i].Number, nil
}

// printValue mirrors the reference native print: only string, boolean, and
// number values are ever written; any other kind (absent, callable,
// prototype) produces no output at all.
func printValue(out io.Writer, v environment.Value) {
	switch v.Kind {
	case environment.String, environment.Boolean, environment.Number:
		fmt.Fprintln(out, v.Render())
	}
}
