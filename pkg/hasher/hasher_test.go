package hasher

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/jordan-public/zk-optimized-sparse-merkle-tree/pkg/smt"
)

func TestSHA256Hex(t *testing.T) {
	fn := SHA256Hex()
	got := fn("1", "256")
	require.Len(t, got, 64)
	require.NoError(t, smt.HexDomain{}.Validate(got))
	require.Equal(t, got, fn("1", "256"))
	require.NotEqual(t, got, fn("256", "1"))
	// padding makes "1" and "01" the same operand
	require.Equal(t, got, fn("01", "256"))
}

func TestMiMCBig(t *testing.T) {
	fn := MiMCBig()
	got := fn(big.NewInt(1), big.NewInt(256))
	require.NoError(t, smt.BigDomain{}.Validate(got))
	require.True(t, got.Cmp(fr.Modulus()) < 0)
	require.Equal(t, 0, got.Cmp(fn(big.NewInt(1), big.NewInt(256))))
	require.NotEqual(t, 0, got.Cmp(fn(big.NewInt(256), big.NewInt(1))))
}

func TestHashersDriveTrees(t *testing.T) {
	t.Run("sha256 hex", func(t *testing.T) {
		tr, err := smt.NewHexTree(SHA256Hex(), 16)
		require.NoError(t, err)
		require.NoError(t, tr.Add("a3", "ff01"))
		require.NoError(t, tr.Add("a4", "ff02"))
		p, err := tr.CreateProof("a3")
		require.NoError(t, err)
		c, err := smt.NewCombinator[string](smt.HexDomain{}, SHA256Hex())
		require.NoError(t, err)
		require.True(t, smt.VerifyProof(c, p))
	})
	t.Run("mimc big", func(t *testing.T) {
		tr, err := smt.NewBigTree(MiMCBig(), 32)
		require.NoError(t, err)
		require.NoError(t, tr.Add(big.NewInt(163), big.NewInt(65281)))
		require.NoError(t, tr.Add(big.NewInt(164), big.NewInt(65282)))
		p, err := tr.CreateProof(big.NewInt(163))
		require.NoError(t, err)
		c, err := smt.NewCombinator[*big.Int](smt.BigDomain{}, MiMCBig())
		require.NoError(t, err)
		require.True(t, smt.VerifyProof(c, p))
	})
}
