// Package environment implements Wick's runtime value model and the
// lexical environment (persistent-map-backed scope chain) that binds names
// to values. Value, Callable, Environment, and Prototype are grounded
// together because the language's data model and its scoping model are
// mutually referential by design: a Callable carries a captured
// Environment, and a Prototype owns three of them.
package environment

import (
	"fmt"

	"github.com/wick-lang/wick/internal/compiler/lexer"
)

// Kind tags the closed set of runtime value variants.
type Kind int

const (
	Nil Kind = iota
	Number
	Boolean
	String
	CallableKind
	PrototypeKind
)

func (k Kind) String() string {
	switch k {
	case Nil:
		return "nil"
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	case String:
		return "string"
	case CallableKind:
		return "callable"
	case PrototypeKind:
		return "prototype"
	default:
		return "unknown"
	}
}

// Value is Wick's tagged runtime value. Exactly one of the typed fields is
// meaningful, selected by Kind; the zero Value is Nil.
type Value struct {
	Kind      Kind
	Number    float64
	Boolean   bool
	String    string
	Callable  *Callable
	Prototype *Prototype
}

// NilValue is the absent/void value.
var NilValue = Value{Kind: Nil}

func NumberValue(n float64) Value  { return Value{Kind: Number, Number: n} }
func BooleanValue(b bool) Value    { return Value{Kind: Boolean, Boolean: b} }
func StringValue(s string) Value   { return Value{Kind: String, String: s} }
func CallableValue(c *Callable) Value   { return Value{Kind: CallableKind, Callable: c} }
func PrototypeValue(p *Prototype) Value { return Value{Kind: PrototypeKind, Prototype: p} }

// IsNil reports whether v is the absent value.
func (v Value) IsNil() bool { return v.Kind == Nil }

// Truthy implements the language's truthiness rule: booleans by value,
// numbers truthy iff non-zero, strings truthy iff non-empty, absent false.
func (v Value) Truthy() bool {
	switch v.Kind {
	case Boolean:
		return v.Boolean
	case Number:
		return v.Number != 0
	case String:
		return v.String != ""
	case Nil:
		return false
	default:
		return true
	}
}

// Render is the string-ish rendering used by the `print` builtin.
func (v Value) Render() string {
	switch v.Kind {
	case Nil:
		return "nil"
	case Number:
		return fmt.Sprintf("%.18f", v.Number)
	case Boolean:
		if v.Boolean {
			return "true"
		}
		return "false"
	case String:
		return v.String
	case CallableKind:
		return "<callable>"
	case PrototypeKind:
		return "<prototype>"
	default:
		return ""
	}
}

// Procedure is the Go shape of a Callable's native or user-defined body.
type Procedure func(args []Value, env *Environment) (Value, error)

// Callable is a first-class function value: an arity range, the procedure
// to run, and the environment it closes over.
type Callable struct {
	MinArity    int
	MaxArity    int
	Procedure   Procedure
	CapturedEnv *Environment
}

// Prototype is Wick's object model: a constructor plus three property
// environments and their precomputed union.
//
// Invariant: MethodEnv is the union of SurroundingEnv, PublicEnv, and
// PrivateEnv, and contains a constant `this` binding to the Prototype
// itself. PublicEnv is the only surface visible to external Get/Set.
type Prototype struct {
	Constructor    *Callable
	SurroundingEnv *Environment
	PublicEnv      *Environment
	PrivateEnv     *Environment
	MethodEnv      *Environment
}

// Copy builds a fresh instance of the prototype for construction: each of
// the three property environments is re-seeded via CopyOver from the
// original (so later mutation of one instance's properties cannot leak
// into another), the method environment is rebuilt as their union with a
// constant `this` bound to the copy, and the constructor carries over
// unchanged.
func (p *Prototype) Copy() *Prototype {
	surrounding := New()
	surrounding.CopyOver(p.SurroundingEnv)
	public := New()
	public.CopyOver(p.PublicEnv)
	private := New()
	private.CopyOver(p.PrivateEnv)
	instance := &Prototype{
		Constructor:    p.Constructor,
		SurroundingEnv: surrounding,
		PublicEnv:      public,
		PrivateEnv:     private,
		MethodEnv:      Unionize([]*Environment{surrounding, public, private}),
	}
	this := lexer.Token{Kind: lexer.Identifier, Lexeme: "this", Constant: true}
	instance.MethodEnv.table = instance.MethodEnv.table.Insert(this, PrototypeValue(instance))
	return instance
}
