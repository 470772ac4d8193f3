package interpreter

import (
	"github.com/wick-lang/wick/internal/compiler/ast"
	"github.com/wick-lang/wick/internal/runtime/environment"
)

// evalCall evaluates the callee and every argument left-to-right, then
// dispatches on the callee's dynamic kind: a Callable is invoked directly;
// a Prototype is copied and its constructor invoked against the copy, and
// the copy itself becomes the call's result.
func (it *Interpreter) evalCall(c *ast.Call, env *environment.Environment) (environment.Value, error) {
	callee, err := it.eval(c.Callee, env)
	if err != nil {
		return environment.NilValue, err
	}
	args := make([]environment.Value, len(c.Args))
	for i, a := range c.Args {
		v, err := it.eval(a, env)
		if err != nil {
			return environment.NilValue, err
		}
		args[i] = v
	}

	switch callee.Kind {
	case environment.CallableKind:
		callable := callee.Callable
		if len(args) < callable.MinArity || len(args) > callable.MaxArity {
			return environment.NilValue, runtimeErrorf(c.Loc, c.ClosingParen.Lexeme,
				"expected at least %d arguments, at most %d arguments, and received %d arguments",
				callable.MinArity, callable.MaxArity, len(args))
		}
		return callable.Procedure(args, callable.CapturedEnv)

	case environment.PrototypeKind:
		instance := callee.Prototype.Copy()
		ctor := instance.Constructor
		if len(args) < ctor.MinArity || len(args) > ctor.MaxArity {
			return environment.NilValue, runtimeErrorf(c.Loc, c.ClosingParen.Lexeme,
				"constructor expected at least %d arguments, at most %d arguments, and received %d arguments",
				ctor.MinArity, ctor.MaxArity, len(args))
		}
		if _, err := ctor.Procedure(args, instance.MethodEnv); err != nil {
			return environment.NilValue, err
		}
		return environment.PrototypeValue(instance), nil

	default:
		return environment.NilValue, runtimeErrorf(c.Loc, c.ClosingParen.Lexeme, "only functions and prototypes may be called")
	}
}

// evalLambda builds a Callable closing over a persisted snapshot of the
// defining environment, so later definitions in that scope cannot leak in,
// while assignments to names that already existed there still propagate
// through the persistent map's shared entries.
func (it *Interpreter) evalLambda(l *ast.Lambda, env *environment.Environment) environment.Value {
	captured := environment.NewPersistedChild(env)
	required := len(l.Params)
	total := required + len(l.DefaultParams)

	procedure := func(args []environment.Value, fnEnv *environment.Environment) (environment.Value, error) {
		scoped := environment.NewChild(fnEnv)
		for i := 0; i < total; i++ {
			switch {
			case i < required:
				if err := scoped.Define(l.Params[i], args[i]); err != nil {
					return environment.NilValue, runtimeErrorf(l.Loc, l.Params[i].Lexeme, "%s", err.Error())
				}
			case i < len(args):
				dp := l.DefaultParams[i-required]
				if err := scoped.Define(dp.Name, args[i]); err != nil {
					return environment.NilValue, runtimeErrorf(l.Loc, dp.Name.Lexeme, "%s", err.Error())
				}
			default:
				dp := l.DefaultParams[i-required]
				v, err := it.eval(dp.Expr, scoped)
				if err != nil {
					return environment.NilValue, err
				}
				if err := scoped.Define(dp.Name, v); err != nil {
					return environment.NilValue, runtimeErrorf(l.Loc, dp.Name.Lexeme, "%s", err.Error())
				}
			}
		}
		cf, err := it.execScope(l.Body, scoped)
		if err != nil {
			return environment.NilValue, err
		}
		if cf.returning {
			return cf.value, nil
		}
		return environment.NilValue, nil
	}

	return environment.CallableValue(&environment.Callable{
		MinArity:    required,
		MaxArity:    total,
		Procedure:   procedure,
		CapturedEnv: captured,
	})
}

// evalPrototype builds an object literal: a persisted surrounding
// environment, fresh public/private environments (optionally seeded from a
// parent), a precomputed method environment union, and a constructor
// (do-nothing unless overridden).
func (it *Interpreter) evalPrototype(p *ast.Prototype, env *environment.Environment) (environment.Value, error) {
	surrounding := environment.NewPersistedChild(env)
	public := environment.New()
	private := environment.New()

	if p.Parent != nil {
		parentValue, err := env.Get(*p.Parent)
		if err != nil || parentValue.Kind != environment.PrototypeKind {
			return environment.NilValue, runtimeErrorf(p.Loc, p.Parent.Lexeme, "can only inherit from other prototypes")
		}
		parent := parentValue.Prototype
		private.CopyOver(parent.PrivateEnv)
		public.CopyOver(parent.PublicEnv)
		if err := surrounding.Define(parentToken(), parentValue); err != nil {
			return environment.NilValue, runtimeErrorf(p.Loc, "parent", "%s", err.Error())
		}
	}

	for _, stmt := range p.PublicProperties {
		if _, err := it.exec(stmt, public); err != nil {
			return environment.NilValue, err
		}
	}
	for _, stmt := range p.PrivateProperties {
		if _, err := it.exec(stmt, private); err != nil {
			return environment.NilValue, err
		}
	}

	instance := &environment.Prototype{
		Constructor:    doNothingConstructor(surrounding),
		SurroundingEnv: surrounding,
		PublicEnv:      public,
		PrivateEnv:     private,
	}
	instance.MethodEnv = environment.Unionize([]*environment.Environment{surrounding, public, private})

	if p.Constructor != nil {
		ctorValue, err := it.eval(p.Constructor, instance.MethodEnv)
		if err != nil {
			return environment.NilValue, err
		}
		if ctorValue.Kind != environment.CallableKind {
			return environment.NilValue, runtimeErrorf(p.Loc, "constructor", "constructor must evaluate to a callable")
		}
		instance.Constructor = ctorValue.Callable
	}

	if err := instance.MethodEnv.Define(thisToken(), environment.PrototypeValue(instance)); err != nil {
		return environment.NilValue, runtimeErrorf(p.Loc, "this", "%s", err.Error())
	}
	return environment.PrototypeValue(instance), nil
}

func doNothingConstructor(env *environment.Environment) *environment.Callable {
	return &environment.Callable{
		MinArity: 0,
		MaxArity: 0,
		Procedure: func(args []environment.Value, fnEnv *environment.Environment) (environment.Value, error) {
			return environment.NilValue, nil
		},
		CapturedEnv: env,
	}
}

// evalGet reads a property off a Prototype. A Callable read off the public
// environment has its captured environment rebound to the prototype's
// method environment, so the method body sees `this` when later invoked.
func (it *Interpreter) evalGet(g *ast.Get, env *environment.Environment) (environment.Value, error) {
	object, err := it.eval(g.Object, env)
	if err != nil {
		return environment.NilValue, err
	}
	if object.Kind != environment.PrototypeKind {
		return environment.NilValue, runtimeErrorf(g.Loc, g.Property.Lexeme, "can only receive properties from prototypes")
	}
	proto := object.Prototype
	value, err := proto.PublicEnv.Get(g.Property)
	if err == nil {
		if value.Kind == environment.CallableKind {
			rebound := *value.Callable
			rebound.CapturedEnv = proto.MethodEnv
			return environment.CallableValue(&rebound), nil
		}
		return value, nil
	}
	if _, privateErr := proto.PrivateEnv.Get(g.Property); privateErr == nil {
		return environment.NilValue, runtimeErrorf(g.Loc, g.Property.Lexeme, "requested property is private")
	}
	return environment.NilValue, runtimeErrorf(g.Loc, g.Property.Lexeme, "property not found in prototype")
}

// evalSet writes a property on a Prototype's public environment only.
// Unlike Assignment, Set evaluates to the absent value on success.
func (it *Interpreter) evalSet(s *ast.Set, env *environment.Environment) (environment.Value, error) {
	object, err := it.eval(s.Object, env)
	if err != nil {
		return environment.NilValue, err
	}
	if object.Kind != environment.PrototypeKind {
		return environment.NilValue, runtimeErrorf(s.Loc, s.Property.Lexeme, "can only set properties of prototypes")
	}
	value, err := it.eval(s.Value, env)
	if err != nil {
		return environment.NilValue, err
	}
	proto := object.Prototype
	if err := proto.PublicEnv.Assign(s.Property, value); err != nil {
		if _, privateErr := proto.PrivateEnv.Get(s.Property); privateErr == nil {
			return environment.NilValue, runtimeErrorf(s.Loc, s.Property.Lexeme, "requested property is private")
		}
		return environment.NilValue, runtimeErrorf(s.Loc, s.Property.Lexeme, "property not found in prototype")
	}
	return environment.NilValue, nil
}
