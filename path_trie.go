// Package pathtrie maps paths of keys to values using a trie.
package pathtrie

import (
	"iter"
	"slices"
)

const defaultChildHint = 4

// Trie stores values against key paths and looks them up by exact path.
// The zero value is an empty trie ready to use.
//
// A Trie is not safe for concurrent use; callers that share one between
// goroutines must serialize Insert and Get themselves.
type Trie[K comparable, V any] struct {
	root      *pathNode[K, V]
	clone     func(V) V
	childHint uint32
}

type Option[K comparable, V any] func(*Trie[K, V])

// WithClone sets the function used to copy a stored value before Get
// returns it. Use it when V holds references (slices, maps, pointers).
func WithClone[K comparable, V any](clone func(V) V) Option[K, V] {
	return func(t *Trie[K, V]) {
		t.clone = clone
	}
}

// WithChildHint sets the initial capacity of the child index allocated
// for a node when it gains its first child.
func WithChildHint[K comparable, V any](hint uint32) Option[K, V] {
	return func(t *Trie[K, V]) {
		t.childHint = hint
	}
}

func New[K comparable, V any](options ...Option[K, V]) *Trie[K, V] {
	t := &Trie[K, V]{
		root:      newPathNode[K, V](),
		childHint: defaultChildHint,
	}
	for _, option := range options {
		option(t)
	}
	return t
}

// Entry is a path and the value to store at it.
type Entry[K comparable, V any] struct {
	Path  []K
	Value V
}

// Of builds a trie from entries, inserted in order. A later entry replaces
// an earlier one with the same path.
func Of[K comparable, V any](entries ...Entry[K, V]) *Trie[K, V] {
	t := New[K, V]()
	t.InsertAll(entries...)
	return t
}

// IsEmpty reports whether the root has no children. A value stored at the
// empty path does not make the trie non-empty.
func (t *Trie[K, V]) IsEmpty() bool {
	if t.root == nil {
		return true
	}
	return t.root.IsEmpty()
}

// Insert stores value at path, replacing any value already there. An empty
// path addresses the root.
func (t *Trie[K, V]) Insert(path []K, value V) {
	t.InsertSeq(slices.Values(path), value)
}

func (t *Trie[K, V]) InsertSeq(path iter.Seq[K], value V) {
	if t.root == nil {
		t.root = newPathNode[K, V]()
	}
	hint := t.childHint
	if hint == 0 {
		hint = defaultChildHint
	}
	node := t.root
	for part := range path {
		child, ok := node.Get(part)
		if !ok {
			child = newPathNode[K, V]()
			node.Set(part, child, hint)
		}
		node = child
	}
	node.SetValue(value)
}

func (t *Trie[K, V]) InsertAll(entries ...Entry[K, V]) {
	for _, e := range entries {
		t.Insert(e.Path, e.Value)
	}
}

// Get returns the value stored at exactly path. Paths that are a strict
// prefix or extension of a stored path report false.
func (t *Trie[K, V]) Get(path []K) (V, bool) {
	return t.GetSeq(slices.Values(path))
}

func (t *Trie[K, V]) GetSeq(path iter.Seq[K]) (V, bool) {
	node := t.findNode(path)
	if node == nil || !node.HasValue() {
		var empty V
		return empty, false
	}
	if t.clone != nil {
		return t.clone(node.Value()), true
	}
	return node.Value(), true
}

func (t *Trie[K, V]) findNode(path iter.Seq[K]) *pathNode[K, V] {
	node := t.root
	if node == nil {
		return nil
	}
	for part := range path {
		child, found := node.Get(part)
		if !found {
			return nil
		}
		node = child
	}
	return node
}
