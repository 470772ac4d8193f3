package persistentmap

import (
	"testing"

	"github.com/wick-lang/wick/internal/compiler/lexer"
)

func tok(lexeme string) lexer.Token {
	return lexer.Token{Kind: lexer.Identifier, Lexeme: lexeme}
}

func TestInsertThenGet(t *testing.T) {
	var m Map[int]
	m = m.Insert(tok("x"), 1)
	v, ok := m.Get(tok("x"))
	if !ok || v != 1 {
		t.Fatalf("expected (1, true), got (%v, %v)", v, ok)
	}
}

func TestInsertDoesNotAliasOtherKeys(t *testing.T) {
	var m Map[int]
	m = m.Insert(tok("x"), 1)
	m2 := m.Insert(tok("y"), 2)
	if _, ok := m.Get(tok("y")); ok {
		t.Fatalf("original map should not see y")
	}
	if v, ok := m2.Get(tok("x")); !ok || v != 1 {
		t.Fatalf("expected x still visible in m2, got (%v, %v)", v, ok)
	}
}

func TestAssignAbsentKeyFails(t *testing.T) {
	var m Map[int]
	_, ok := m.Assign(tok("x"), 5)
	if ok {
		t.Fatalf("expected Assign on absent key to fail")
	}
}

func TestAssignUpdatesPresentKey(t *testing.T) {
	var m Map[int]
	m = m.Insert(tok("x"), 1)
	m2, ok := m.Assign(tok("x"), 2)
	if !ok {
		t.Fatalf("expected Assign to succeed")
	}
	if v, _ := m2.Get(tok("x")); v != 2 {
		t.Fatalf("expected 2, got %v", v)
	}
}

func TestAssignMutationIsVisibleThroughSharedEntry(t *testing.T) {
	var m Map[int]
	m = m.Insert(tok("x"), 1)
	alias := m // shares the same entry handle for "x"
	_, ok := m.Assign(tok("x"), 99)
	if !ok {
		t.Fatalf("expected Assign to succeed")
	}
	// Assign mutates the shared entry in place; the alias observes it too.
	v, _ := alias.Get(tok("x"))
	if v != 99 {
		t.Fatalf("expected alias to observe mutation, got %v", v)
	}
}

func TestUnionizeScansFirstMapFirst(t *testing.T) {
	var a, b Map[int]
	a = a.Insert(tok("x"), 1)
	b = b.Insert(tok("x"), 2)
	u := Unionize([]Map[int]{a, b})
	v, ok := u.Get(tok("x"))
	if !ok || v != 1 {
		t.Fatalf("expected first match from a (1), got (%v, %v)", v, ok)
	}
}

func TestCopyOverShadowsEarlierEntries(t *testing.T) {
	var a, b Map[int]
	a = a.Insert(tok("x"), 1)
	b = b.Insert(tok("x"), 2)
	merged := a.CopyOver(b)
	v, _ := merged.Get(tok("x"))
	if v != 2 {
		t.Fatalf("expected copyOver's source to shadow, got %v", v)
	}
}

func TestGetEntryReturnsSharedHandle(t *testing.T) {
	var m Map[int]
	m = m.Insert(tok("x"), 1)
	e := m.GetEntry(tok("x"))
	if e == nil {
		t.Fatalf("expected entry to be found")
	}
	if e.Value != 1 {
		t.Fatalf("expected entry value 1, got %v", e.Value)
	}
}
