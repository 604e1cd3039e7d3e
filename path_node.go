package pathtrie

import "github.com/dolthub/swiss"

type pathNode[K comparable, V any] struct {
	children *swiss.Map[K, *pathNode[K, V]]
	value    V
	hasValue bool
}

func newPathNode[K comparable, V any]() *pathNode[K, V] {
	return &pathNode[K, V]{}
}

// IsEmpty reports whether the node has no children. The node's own value
// is not taken into account.
func (n *pathNode[K, V]) IsEmpty() bool {
	return n.children == nil || n.children.Count() == 0
}

func (n *pathNode[K, V]) HasValue() bool {
	return n.hasValue
}

func (n *pathNode[K, V]) Value() V {
	return n.value
}

func (n *pathNode[K, V]) SetValue(value V) {
	n.value = value
	n.hasValue = true
}

func (n *pathNode[K, V]) Get(k K) (*pathNode[K, V], bool) {
	if n.children == nil {
		return nil, false
	}
	return n.children.Get(k)
}

// Set attaches child under k, allocating the child index with room for
// hint entries on first use.
func (n *pathNode[K, V]) Set(k K, child *pathNode[K, V], hint uint32) {
	if n.children == nil {
		n.children = swiss.NewMap[K, *pathNode[K, V]](hint)
	}
	n.children.Put(k, child)
}
