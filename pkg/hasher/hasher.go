// Package hasher provides ready-made node-combining hash functions for
// sparse Merkle trees: a SHA-256 based one for hex-string trees and a
// MiMC based one for big-number trees, the latter being cheap to prove
// inside arithmetic circuits.
package hasher

import (
	"crypto/sha256"
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"

	"github.com/jordan-public/zk-optimized-sparse-merkle-tree/pkg/smt"
)

// SHA256Hex combines two hex-encoded hashes by padding each to a
// 32-byte big-endian word and hashing their concatenation.
// The result is 64 lower-case hex digits.
func SHA256Hex() smt.HashFunc[string] {
	return func(x, y string) string {
		h := sha256.New()
		h.Write(hexWord(x))
		h.Write(hexWord(y))
		return hex.EncodeToString(h.Sum(nil))
	}
}

// hexWord decodes a hex string into a 32-byte big-endian word.
func hexWord(s string) []byte {
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(strings.ToLower(s))
	if err != nil {
		// Operands reach a combinator only after domain validation.
		panic("hasher: invalid hex operand: " + s)
	}
	w := make([]byte, 32)
	copy(w[32-len(b):], b)
	return w
}

// MiMCBig combines two big integers with MiMC over the BN254 scalar
// field. Operands are reduced into the field, so callers wanting a
// bijective mapping must keep values below the field modulus.
func MiMCBig() smt.HashFunc[*big.Int] {
	return func(x, y *big.Int) *big.Int {
		var ex, ey fr.Element
		ex.SetBigInt(x)
		ey.SetBigInt(y)
		bx, by := ex.Bytes(), ey.Bytes()

		h := mimc.NewMiMC()
		h.Write(bx[:])
		h.Write(by[:])
		return new(big.Int).SetBytes(h.Sum(nil))
	}
}
