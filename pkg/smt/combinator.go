package smt

import "fmt"

// HashFunc combines two child hashes into a parent hash. It must be
// deterministic and must never return the zero sentinel for nonzero
// operands.
type HashFunc[V any] func(x, y V) V

// Combinator wraps a caller-supplied HashFunc with zero absorption:
// combining with zero passes the other operand through unchanged.
// This is what lets empty and single-leaf subtrees exist without
// materialized nodes.
type Combinator[V any] struct {
	dom Domain[V]
	fn  HashFunc[V]
}

// NewCombinator validates fn against the domain and wraps it. The
// function is probed once with a known-good operand pair; a result
// that fails domain validation means the function produces values of
// the wrong representation and construction fails with
// ErrBadHashFunction.
func NewCombinator[V any](dom Domain[V], fn HashFunc[V]) (*Combinator[V], error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil function", ErrBadHashFunction)
	}
	p := dom.Probe()
	if err := dom.Validate(fn(p, p)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHashFunction, err)
	}
	return &Combinator[V]{dom: dom, fn: fn}, nil
}

// Combine returns y if x is zero, x if y is zero and fn(x, y)
// otherwise. Combining zero with zero therefore yields zero.
func (c *Combinator[V]) Combine(x, y V) V {
	if c.dom.IsZero(x) {
		return y
	}
	if c.dom.IsZero(y) {
		return x
	}
	return c.fn(x, y)
}
