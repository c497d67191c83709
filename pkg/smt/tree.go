// Package smt implements a fixed-depth sparse Merkle tree committing a
// sparse key to value-hash mapping to a single root hash. Empty and
// single-leaf subtrees are never materialized: the zero-absorbing hash
// combinator makes their hashes equal to what a fully materialized
// tree would produce, so every operation touches O(depth) nodes.
package smt

import (
	"errors"
	"math/big"
)

// Tree is a sparse Merkle tree of a fixed depth. The all-zero root
// pair denotes an empty tree. A Tree is not safe for concurrent
// mutation: callers must serialize Add/Update/Delete against each
// other and against Get/CreateProof on the same instance. VerifyProof
// does not touch the tree and needs no coordination.
type Tree[V any] struct {
	dom   Domain[V]
	comb  *Combinator[V]
	depth int
	store *nodeStore[V]
	root  Node[V]
}

// NewTree returns an empty tree of the given depth using dom as its
// value representation and fn as the node-combining hash. fn is
// validated per NewCombinator before any tree state is created.
func NewTree[V any](dom Domain[V], fn HashFunc[V], depth int) (*Tree[V], error) {
	if depth <= 0 {
		return nil, errors.New("depth must be positive")
	}
	comb, err := NewCombinator(dom, fn)
	if err != nil {
		return nil, err
	}
	return &Tree[V]{
		dom:   dom,
		comb:  comb,
		depth: depth,
		store: newNodeStore[V](),
		root:  Node[V]{Left: dom.Zero(), Right: dom.Zero()},
	}, nil
}

// NewHexTree returns a tree in hex-string mode: keys and value hashes
// are 1-64 hex digits and "0" is the zero sentinel.
func NewHexTree(fn HashFunc[string], depth int) (*Tree[string], error) {
	return NewTree[string](HexDomain{}, fn, depth)
}

// NewBigTree returns a tree in big-number mode: keys and value hashes
// are nonnegative arbitrary-precision integers.
func NewBigTree(fn HashFunc[*big.Int], depth int) (*Tree[*big.Int], error) {
	return NewTree[*big.Int](BigDomain{}, fn, depth)
}

// Depth returns the fixed tree depth.
func (t *Tree[V]) Depth() int { return t.depth }

// Root returns the root node pair. It equals the all-zero pair exactly
// when the tree is empty.
func (t *Tree[V]) Root() Node[V] { return t.root }

// RootHash returns the root commitment, the combined hash of the
// root's two components.
func (t *Tree[V]) RootHash() V { return t.comb.Combine(t.root.Left, t.root.Right) }

// Size returns the number of materialized nodes.
func (t *Tree[V]) Size() int { return t.store.len() }

// Get returns the value hash stored for key, or the zero sentinel if
// the key has no entry.
func (t *Tree[V]) Get(key V) (V, error) {
	path, err := keyToPath(t.dom, key, t.depth)
	if err != nil {
		return t.dom.Zero(), err
	}
	return t.walk(path).value, nil
}

// Add stores value for key. The zero sentinel is reserved for absent
// entries and is rejected with ErrReservedValue.
func (t *Tree[V]) Add(key, value V) error {
	if err := t.dom.Validate(value); err != nil {
		return err
	}
	if t.dom.IsZero(value) {
		return ErrReservedValue
	}
	return t.Update(key, value)
}

// Update sets the value hash for key, creating, replacing or (when
// value is the zero sentinel) removing the entry. Updating an entry to
// the value it already has is a no-op, as is zeroing an absent key.
// All validation happens before any mutation, so a returned error
// means the tree is unchanged.
func (t *Tree[V]) Update(key, value V) error {
	if err := t.dom.Validate(value); err != nil {
		return err
	}
	path, err := keyToPath(t.dom, key, t.depth)
	if err != nil {
		return err
	}
	w := t.walk(path)
	if t.dom.Equal(w.value, value) {
		return nil
	}
	if t.dom.IsZero(value) {
		t.deleteLeaf(path)
	} else {
		t.insertLeaf(path, value)
	}
	return nil
}

// Delete removes the entry for key. It returns ErrNotFound if the key
// has no entry.
func (t *Tree[V]) Delete(key V) error {
	path, err := keyToPath(t.dom, key, t.depth)
	if err != nil {
		return err
	}
	if t.dom.IsZero(t.walk(path).value) {
		return ErrNotFound
	}
	t.deleteLeaf(path)
	return nil
}

// walkInfo is the result of a retrieval walk along a path.
type walkInfo[V any] struct {
	// value is the leaf's value hash, zero when the walk short-circuited
	// into an unmaterialized subtree.
	value V
	// siblings holds the combined hash of the subtree not taken at each
	// level, root to leaf.
	siblings []V
}

// walk descends from the root along path. The moment a position is
// absent from the store the rest of the path is a zero subtree and no
// further lookups happen.
func (t *Tree[V]) walk(path []bool) walkInfo[V] {
	w := walkInfo[V]{value: t.dom.Zero(), siblings: make([]V, t.depth)}
	for i := range w.siblings {
		w.siblings[i] = t.dom.Zero()
	}
	cur := t.root
	for lvl := 0; lvl < t.depth; lvl++ {
		w.siblings[lvl] = cur.side(!path[lvl])
		next, ok := t.store.get(path, lvl+1)
		if !ok {
			return w
		}
		cur = next
	}
	// cur is the leaf pair (valueHash, zero).
	w.value = t.comb.Combine(cur.Left, cur.Right)
	return w
}

// insertLeaf writes value at the leaf addressed by path and rebuilds
// the path bottom-up: every ancestor gets the child slot on the key's
// side replaced with the combined hash of the subtree built so far.
func (t *Tree[V]) insertLeaf(path []bool, value V) {
	cur := Node[V]{Left: value, Right: t.dom.Zero()}
	t.store.put(path, t.depth, cur)
	for d := t.depth - 1; d >= 1; d-- {
		n, ok := t.store.get(path, d)
		if !ok {
			n = t.zeroNode()
		}
		n = n.withSide(path[d], t.comb.Combine(cur.Left, cur.Right))
		t.store.put(path, d, n)
		cur = n
	}
	t.root = t.root.withSide(path[0], t.comb.Combine(cur.Left, cur.Right))
}

// deleteLeaf removes the leaf addressed by path, pruning every
// ancestor left with two empty children and re-hashing the rest of the
// way up. The walk must have found a leaf at full depth.
func (t *Tree[V]) deleteLeaf(path []bool) {
	t.store.remove(path, t.depth)
	cur := t.zeroNode()
	for d := t.depth - 1; d >= 1; d-- {
		n, ok := t.store.get(path, d)
		if !ok {
			panic("smt: ancestor missing from store")
		}
		n = n.withSide(path[d], t.comb.Combine(cur.Left, cur.Right))
		if t.dom.IsZero(n.Left) && t.dom.IsZero(n.Right) {
			t.store.remove(path, d)
		} else {
			t.store.put(path, d, n)
		}
		cur = n
	}
	t.root = t.root.withSide(path[0], t.comb.Combine(cur.Left, cur.Right))
}

func (t *Tree[V]) zeroNode() Node[V] {
	return Node[V]{Left: t.dom.Zero(), Right: t.dom.Zero()}
}
