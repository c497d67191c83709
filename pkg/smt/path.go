package smt

import "fmt"

// keyToPath expands key into exactly depth direction bits, most
// significant bit first, left-padding with zero bits. false selects
// the left child, true the right one. Keys whose natural bit length
// exceeds depth are rejected with ErrKeyTooLarge.
func keyToPath[V any](dom Domain[V], key V, depth int) ([]bool, error) {
	bits, err := dom.KeyBits(key)
	if err != nil {
		return nil, err
	}
	if len(bits) > depth {
		return nil, fmt.Errorf("%w: key needs %d bits, depth is %d", ErrKeyTooLarge, len(bits), depth)
	}
	path := make([]bool, depth)
	copy(path[depth-len(bits):], bits)
	return path, nil
}
