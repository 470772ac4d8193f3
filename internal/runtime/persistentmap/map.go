// Package persistentmap implements the bucketed copy-on-write hash table
// that backs Wick's lexical environments: a fixed-width array of buckets,
// each an ordered list of shared entry handles, so that two map values can
// point at the same entry until one of them needs to change its value.
package persistentmap

import (
	"hash/fnv"

	"github.com/wick-lang/wick/internal/compiler/lexer"
)

// BucketCount is the fixed bucket-array width, matching the reference
// implementation's default.
const BucketCount = 1024

// Entry is a shared (key, value) handle. Two Map values that both hold a
// pointer to the same Entry observe each other's Assign calls -- this is
// the channel through which environment assignment propagates into
// closures that captured the same original scope.
type Entry[V any] struct {
	Key   lexer.Token
	Value V
}

// Map is a bucketed, copy-on-write hash table keyed by lexer.Token (hashed
// and compared by lexeme only, per the token model).
type Map[V any] struct {
	buckets [BucketCount][]*Entry[V]
}

func bucketIndex(key lexer.Token) int {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key.Lexeme))
	return int(h.Sum64() % BucketCount)
}

// Insert returns a new Map with a fresh entry placed at the front of key's
// bucket. Prior entries for the same key, if any, are not removed; Get finds
// the first match scanning forward, so a later Insert shadows an earlier one.
func (m Map[V]) Insert(key lexer.Token, value V) Map[V] {
	out := m
	idx := bucketIndex(key)
	bucket := make([]*Entry[V], 0, len(m.buckets[idx])+1)
	bucket = append(bucket, &Entry[V]{Key: key, Value: value})
	out.buckets[idx] = append(bucket, m.buckets[idx]...)
	return out
}

// Assign returns a new Map whose matching entry's value has been updated
// in place, and ok=true. Structural sharing keeps the entry handle's
// identity, so any other Map holding that same handle observes the new
// value. If key is absent, Assign returns the zero Map and ok=false.
func (m Map[V]) Assign(key lexer.Token, value V) (Map[V], bool) {
	idx := bucketIndex(key)
	for _, e := range m.buckets[idx] {
		if e.Key.Lexeme == key.Lexeme {
			e.Value = value
			return m, true
		}
	}
	var zero Map[V]
	return zero, false
}

// Get returns the value of the first matching entry in key's bucket, or
// ok=false if no entry matches.
func (m Map[V]) Get(key lexer.Token) (V, bool) {
	idx := bucketIndex(key)
	for _, e := range m.buckets[idx] {
		if e.Key.Lexeme == key.Lexeme {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// GetEntry returns the shared entry handle for key, or nil if absent. This
// is how Environment.Assign distinguishes "absent" from "present but
// const" without a second lookup.
func (m Map[V]) GetEntry(key lexer.Token) *Entry[V] {
	idx := bucketIndex(key)
	for _, e := range m.buckets[idx] {
		if e.Key.Lexeme == key.Lexeme {
			return e
		}
	}
	return nil
}

// CopyOver returns a Map built by re-inserting every entry of other on top
// of m, each bucket's list from back to front so that other's own shadowing
// order is kept; the re-inserted entries shadow m's entries with the same key.
func (m Map[V]) CopyOver(other Map[V]) Map[V] {
	out := m
	for _, bucket := range other.buckets {
		for i := len(bucket) - 1; i >= 0; i-- {
			out = out.Insert(bucket[i].Key, bucket[i].Value)
		}
	}
	return out
}

// Unionize produces a Map whose bucket i is the concatenation of bucket i
// across all input maps, preserving order.
func Unionize[V any](maps []Map[V]) Map[V] {
	var out Map[V]
	for i := 0; i < BucketCount; i++ {
		var bucket []*Entry[V]
		for _, m := range maps {
			bucket = append(bucket, m.buckets[i]...)
		}
		out.buckets[i] = bucket
	}
	return out
}
