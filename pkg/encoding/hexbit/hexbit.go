// Package hexbit provides the hexadecimal key grammar used by sparse
// Merkle trees operating in hex-string mode and the expansion of such
// keys into direction bits.
package hexbit

import (
	"fmt"
	"regexp"
	"strconv"
)

// grammar accepted for keys and value hashes in hex mode.
var hexRx = regexp.MustCompile(`^[0-9A-Fa-f]{1,64}$`)

// Valid reports whether s is a well-formed hex value: 1 to 64 hex
// digits, either case.
func Valid(s string) bool {
	return hexRx.MatchString(s)
}

// Bits expands a hex string into its natural binary representation,
// most significant bit first. The first nibble contributes no leading
// zero bits, every following nibble contributes exactly four bits, so
// "6" expands to 110 and "a3" to 10100011.
func Bits(s string) ([]bool, error) {
	if !Valid(s) {
		return nil, fmt.Errorf("invalid hex string %q", s)
	}
	var bits []bool
	for i, c := range s {
		n, err := strconv.ParseUint(string(c), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid hex digit %q: %w", c, err)
		}
		width := 4
		if i == 0 {
			width = bitLen(uint8(n))
		}
		for b := width - 1; b >= 0; b-- {
			bits = append(bits, n&(1<<uint(b)) != 0)
		}
	}
	return bits, nil
}

func bitLen(n uint8) int {
	l := 0
	for n != 0 {
		l++
		n >>= 1
	}
	return l
}
