package smt

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// Zero must pass the other operand through unchanged; the absorbing
// variant (zero operand forcing a zero result) would break single-leaf
// collapse, so these identities are pinned explicitly.
func TestCombinator_ZeroAbsorption(t *testing.T) {
	var calls int
	c, err := NewCombinator[string](HexDomain{}, countingHex(&calls))
	require.NoError(t, err)
	calls = 0 // construction probes once

	require.Equal(t, "ab", c.Combine("0", "ab"))
	require.Equal(t, "ab", c.Combine("ab", "0"))
	require.Equal(t, "0", c.Combine("0", "0"))
	require.Equal(t, 0, calls)

	got := c.Combine("ab", "cd")
	require.Equal(t, 1, calls)
	require.Equal(t, sha256Hex("ab", "cd"), got)
	require.NotEqual(t, "0", got)
}

func TestCombinator_Validation(t *testing.T) {
	t.Run("hex", func(t *testing.T) {
		_, err := NewCombinator[string](HexDomain{}, func(x, y string) string { return "" })
		require.ErrorIs(t, err, ErrBadHashFunction)
		_, err = NewCombinator[string](HexDomain{}, sha256Hex)
		require.NoError(t, err)
	})
	t.Run("big", func(t *testing.T) {
		_, err := NewCombinator[*big.Int](BigDomain{}, func(x, y *big.Int) *big.Int { return nil })
		require.ErrorIs(t, err, ErrBadHashFunction)
		_, err = NewCombinator[*big.Int](BigDomain{}, sha256Big)
		require.NoError(t, err)
	})
}

func TestCombinator_BigZero(t *testing.T) {
	c, err := NewCombinator[*big.Int](BigDomain{}, sha256Big)
	require.NoError(t, err)

	x := big.NewInt(42)
	require.Equal(t, 0, x.Cmp(c.Combine(new(big.Int), x)))
	require.Equal(t, 0, x.Cmp(c.Combine(x, new(big.Int))))
	require.Equal(t, 0, c.Combine(new(big.Int), new(big.Int)).Sign())
}
