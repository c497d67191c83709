package smt

// Proof is a membership or non-membership proof for a single key. It
// is an immutable snapshot with no ties back to the tree it came from:
// a zero Value proves the key absent, anything else proves the key
// bound to that value hash under Root.
type Proof[V any] struct {
	// Key is the key the proof speaks about.
	Key V
	// Value is the value hash bound to Key, zero for absent keys.
	Value V
	// Root is the root commitment the proof verifies against.
	Root V
	// Siblings holds one combined subtree hash per level, root to leaf.
	Siblings []V
}

// CreateProof builds a proof for key against the current root. It
// works uniformly for present and absent keys.
func (t *Tree[V]) CreateProof(key V) (*Proof[V], error) {
	path, err := keyToPath(t.dom, key, t.depth)
	if err != nil {
		return nil, err
	}
	w := t.walk(path)
	return &Proof[V]{
		Key:      key,
		Value:    w.value,
		Root:     t.RootHash(),
		Siblings: w.siblings,
	}, nil
}

// VerifyProof checks p against its own root commitment using only the
// combinator: starting from the value hash it folds in one sibling per
// level, leaf to root, on the side the key's path dictates. It needs
// no access to any tree, so proofs can be verified anywhere the hash
// function is known. Proofs come from untrusted input, so every field
// is validated against the representation before it can reach the
// hash; anything malformed simply fails verification.
func VerifyProof[V any](c *Combinator[V], p *Proof[V]) bool {
	if p == nil || len(p.Siblings) == 0 {
		return false
	}
	if c.dom.Validate(p.Value) != nil || c.dom.Validate(p.Root) != nil {
		return false
	}
	for _, s := range p.Siblings {
		if c.dom.Validate(s) != nil {
			return false
		}
	}
	path, err := keyToPath(c.dom, p.Key, len(p.Siblings))
	if err != nil {
		return false
	}
	h := p.Value
	for lvl := len(p.Siblings) - 1; lvl >= 0; lvl-- {
		if path[lvl] {
			h = c.Combine(p.Siblings[lvl], h)
		} else {
			h = c.Combine(h, p.Siblings[lvl])
		}
	}
	return c.dom.Equal(h, p.Root)
}
