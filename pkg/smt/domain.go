package smt

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/jordan-public/zk-optimized-sparse-merkle-tree/pkg/encoding/hexbit"
)

// Domain fixes the value representation a tree works with. It is
// chosen once at construction, replacing any per-call type switching:
// the tree only ever needs a zero sentinel, equality, argument
// validation, a canonical form usable as a map key and the expansion
// of keys into bits.
type Domain[V any] interface {
	// Zero returns the distinguished absent-value sentinel.
	Zero() V
	// IsZero reports whether v is the zero sentinel.
	IsZero(v V) bool
	// Equal reports whether a and b denote the same hash.
	Equal(a, b V) bool
	// Validate checks that v belongs to this representation.
	Validate(v V) error
	// KeyBits returns the natural binary representation of key, most
	// significant bit first, with no leading zeros.
	KeyBits(key V) ([]bool, error)
	// Probe returns a sample value used to validate the hash function
	// at construction time.
	Probe() V
}

// HexDomain is the hex-string representation: values are 1-64 hex
// digits, zero is "0", equality is case-insensitive.
type HexDomain struct{}

// Zero implements Domain.
func (HexDomain) Zero() string { return "0" }

// IsZero implements Domain.
func (HexDomain) IsZero(v string) bool { return v == "0" }

// Equal implements Domain.
func (HexDomain) Equal(a, b string) bool { return strings.EqualFold(a, b) }

// Validate implements Domain.
func (HexDomain) Validate(v string) error {
	if !hexbit.Valid(v) {
		return fmt.Errorf("%w: %q is not a hex string", ErrTypeMismatch, v)
	}
	return nil
}

// KeyBits implements Domain.
func (HexDomain) KeyBits(key string) ([]bool, error) {
	if !hexbit.Valid(key) {
		return nil, fmt.Errorf("%w: %q is not a hex string", ErrTypeMismatch, key)
	}
	return hexbit.Bits(key)
}

// Probe implements Domain.
func (HexDomain) Probe() string { return "1" }

// BigDomain is the big-number representation: values are nonnegative
// arbitrary-precision integers, zero is 0.
type BigDomain struct{}

// Zero implements Domain.
func (BigDomain) Zero() *big.Int { return new(big.Int) }

// IsZero implements Domain.
func (BigDomain) IsZero(v *big.Int) bool { return v != nil && v.Sign() == 0 }

// Equal implements Domain.
func (BigDomain) Equal(a, b *big.Int) bool {
	return a != nil && b != nil && a.Cmp(b) == 0
}

// Validate implements Domain.
func (BigDomain) Validate(v *big.Int) error {
	if v == nil {
		return fmt.Errorf("%w: nil big integer", ErrTypeMismatch)
	}
	if v.Sign() < 0 {
		return fmt.Errorf("%w: negative big integer", ErrTypeMismatch)
	}
	return nil
}

// KeyBits implements Domain.
func (BigDomain) KeyBits(key *big.Int) ([]bool, error) {
	if err := (BigDomain{}).Validate(key); err != nil {
		return nil, err
	}
	l := key.BitLen()
	bits := make([]bool, l)
	for i := 0; i < l; i++ {
		bits[i] = key.Bit(l-1-i) == 1
	}
	return bits, nil
}

// Probe implements Domain.
func (BigDomain) Probe() *big.Int { return big.NewInt(1) }
