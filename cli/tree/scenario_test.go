package tree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jordan-public/zk-optimized-sparse-merkle-tree/pkg/hasher"
	"github.com/jordan-public/zk-optimized-sparse-merkle-tree/pkg/smt"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "scenario.yml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0644))
	return p
}

func TestLoadScenario(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s, err := LoadScenario(writeScenario(t, `
Mode: hex
Depth: 3
Hash: sha256
Ops:
  - {Op: add, Key: "1", Value: "256"}
  - {Op: prove, Key: "1"}
`))
		require.NoError(t, err)
		require.Equal(t, 3, s.Depth)
		require.Len(t, s.Ops, 2)
	})
	t.Run("defaults", func(t *testing.T) {
		s, err := LoadScenario(writeScenario(t, "Depth: 8\n"))
		require.NoError(t, err)
		require.Equal(t, ModeHex, s.Mode)
		require.Equal(t, HashSHA256, s.Hash)
	})
	t.Run("bad depth", func(t *testing.T) {
		_, err := LoadScenario(writeScenario(t, "Mode: hex\nHash: sha256\n"))
		require.Error(t, err)
	})
	t.Run("mismatched pair", func(t *testing.T) {
		_, err := LoadScenario(writeScenario(t, "Mode: big\nDepth: 8\nHash: sha256\n"))
		require.Error(t, err)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yml"))
		require.Error(t, err)
	})
}

func TestExecute(t *testing.T) {
	tr, err := smt.NewHexTree(hasher.SHA256Hex(), 3)
	require.NoError(t, err)

	proofs, err := execute(zap.NewNop(), tr, parseHex, []Op{
		{Op: "add", Key: "1", Value: "256"},
		{Op: "prove", Key: "1"},
		{Op: "add", Key: "6", Value: "78"},
		{Op: "delete", Key: "6"},
		{Op: "prove", Key: "6"},
	})
	require.NoError(t, err)
	require.Len(t, proofs, 2)

	c, err := smt.NewCombinator[string](smt.HexDomain{}, hasher.SHA256Hex())
	require.NoError(t, err)
	for _, p := range proofs {
		require.True(t, smt.VerifyProof(c, p))
	}
	require.Equal(t, "256", tr.RootHash()) // single entry left, root collapses

	t.Run("unknown op", func(t *testing.T) {
		_, err := execute(zap.NewNop(), tr, parseHex, []Op{{Op: "drop", Key: "1"}})
		require.Error(t, err)
	})
	t.Run("bad value", func(t *testing.T) {
		_, err := execute(zap.NewNop(), tr, parseHex, []Op{{Op: "add", Key: "1", Value: "xx"}})
		require.Error(t, err)
	})
}
