package smt

// Node is an ordered pair of child hashes. For an internal node the
// components are the combined hashes of its left and right subtrees;
// for a leaf they are (valueHash, zero). The all-zero pair denotes an
// empty subtree and is never materialized in the store.
type Node[V any] struct {
	Left  V
	Right V
}

// side returns the node component selected by a direction bit.
func (n Node[V]) side(right bool) V {
	if right {
		return n.Right
	}
	return n.Left
}

// withSide returns a copy of n with the selected component replaced.
func (n Node[V]) withSide(right bool, v V) Node[V] {
	if right {
		n.Right = v
	} else {
		n.Left = v
	}
	return n
}

// nodeStore owns every materialized node below the root, keyed by
// position: the path prefix leading down to the node. Under zero
// absorption two different single-leaf subtrees share a combined hash,
// so content alone cannot identify a node; the position can. Absence
// of a position means that whole subtree is empty. Purely in-memory,
// nothing is ever persisted.
type nodeStore[V any] struct {
	m map[string]Node[V]
}

func newNodeStore[V any]() *nodeStore[V] {
	return &nodeStore[V]{m: make(map[string]Node[V])}
}

// prefixKey encodes the first depth bits of path.
func prefixKey(path []bool, depth int) string {
	b := make([]byte, depth)
	for i := 0; i < depth; i++ {
		if path[i] {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}

// get returns the node at the given position.
func (s *nodeStore[V]) get(path []bool, depth int) (Node[V], bool) {
	n, ok := s.m[prefixKey(path, depth)]
	return n, ok
}

// put records the node at the given position.
func (s *nodeStore[V]) put(path []bool, depth int, n Node[V]) {
	s.m[prefixKey(path, depth)] = n
}

// remove drops the node at the given position.
func (s *nodeStore[V]) remove(path []bool, depth int) {
	k := prefixKey(path, depth)
	if _, ok := s.m[k]; !ok {
		panic("smt: removing node missing from store")
	}
	delete(s.m, k)
}

// len returns the number of materialized nodes.
func (s *nodeStore[V]) len() int { return len(s.m) }
