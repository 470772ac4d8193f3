package environment

import (
	"fmt"

	"github.com/wick-lang/wick/internal/compiler/lexer"
	"github.com/wick-lang/wick/internal/runtime/persistentmap"
)

// SymbolTable is the persistent map backing one Environment's bindings.
type SymbolTable = persistentmap.Map[Value]

// constantAssignError and undefinedVariableError are distinguished so that
// Define can fall back to inserting only when a name is genuinely absent,
// not when it exists but is read-only -- this re-implementation narrows the
// reference's define() (which catches and shadows over *any* runtime_error,
// including a failed constant write).
type constantAssignError struct{ name string }

func (e *constantAssignError) Error() string {
	return fmt.Sprintf("cannot assign to constant %s", e.name)
}

type undefinedVariableError struct{ name string }

func (e *undefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable %s", e.name)
}

// Environment is a lexical scope: an optional outer pointer plus a
// persistent-map table of name -> Value bindings.
type Environment struct {
	outer *Environment
	table SymbolTable
}

// New creates an empty, outer-less environment (the global scope).
func New() *Environment {
	return &Environment{}
}

// NewFromTable creates an environment pre-populated with table.
func NewFromTable(table SymbolTable) *Environment {
	return &Environment{table: table}
}

// NewChild creates a new child scope of outer: an ordinary nested block.
func NewChild(outer *Environment) *Environment {
	return &Environment{outer: outer}
}

// NewPersistedChild creates a child scope whose table is flattened to a
// snapshot of outer's table, and whose own outer pointer is rewired to
// outer's outer (the grandparent). This is the "persist" flavor used when
// capturing an environment into a closure or a prototype, so later
// mutations to bindings that did not exist at capture time do not leak
// into the capture, while mutations to bindings that did exist still
// propagate through shared persistent-map entries.
func NewPersistedChild(outer *Environment) *Environment {
	return &Environment{outer: outer.outer, table: outer.table}
}

// Define binds variable to value in the local scope. It first tries
// Assign (so redefinition of a name that already exists anywhere up the
// chain updates that binding in place); if the name is undefined anywhere
// in the chain, it falls back to inserting a fresh local binding. A
// constant-violation from Assign is returned rather than silently
// swallowed and shadowed.
func (e *Environment) Define(variable lexer.Token, value Value) error {
	err := e.Assign(variable, value)
	if err == nil {
		return nil
	}
	if _, ok := err.(*undefinedVariableError); ok {
		e.table = e.table.Insert(variable, value)
		return nil
	}
	return err
}

// Assign looks up variable via GetEntry in the local table first. If found
// and constant, it fails. If found and mutable, the local table is
// updated. If absent locally, it delegates to the outer environment. If
// absent with no outer, it fails as undefined.
func (e *Environment) Assign(variable lexer.Token, value Value) error {
	if entry := e.table.GetEntry(variable); entry != nil {
		if entry.Key.Constant {
			return &constantAssignError{name: variable.Lexeme}
		}
		table, ok := e.table.Assign(variable, value)
		if !ok {
			// entry existed via GetEntry but Assign disagrees: unreachable
			// under correct bucket hashing, but fail safe rather than panic.
			return &undefinedVariableError{name: variable.Lexeme}
		}
		e.table = table
		return nil
	}
	if e.outer != nil {
		return e.outer.Assign(variable, value)
	}
	return &undefinedVariableError{name: variable.Lexeme}
}

// Get looks up variable locally, then delegates to the outer chain.
func (e *Environment) Get(variable lexer.Token) (Value, error) {
	if v, ok := e.table.Get(variable); ok {
		return v, nil
	}
	if e.outer != nil {
		return e.outer.Get(variable)
	}
	return NilValue, &undefinedVariableError{name: variable.Lexeme}
}

// CopyOver merges other's table on top of e's, shadowing entries with the
// same key.
func (e *Environment) CopyOver(other *Environment) {
	e.table = e.table.CopyOver(other.table)
}

// Unionize builds a fresh environment whose table is the bucket-wise union
// of envs' tables, in order. Used to build a prototype's method_env from
// its surrounding/public/private environments.
func Unionize(envs []*Environment) *Environment {
	tables := make([]SymbolTable, len(envs))
	for i, e := range envs {
		tables[i] = e.table
	}
	return NewFromTable(persistentmap.Unionize(tables))
}

// IsConstantAssignError reports whether err is a constant-violation
// failure from Assign/Define.
func IsConstantAssignError(err error) bool {
	_, ok := err.(*constantAssignError)
	return ok
}

// IsUndefinedVariableError reports whether err is an undefined-name
// failure from Assign/Get.
func IsUndefinedVariableError(err error) bool {
	_, ok := err.(*undefinedVariableError)
	return ok
}
