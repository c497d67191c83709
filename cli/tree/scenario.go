package tree

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tree modes and the hash functions shipped for them.
const (
	ModeHex = "hex"
	ModeBig = "big"

	HashSHA256 = "sha256"
	HashMiMC   = "mimc"
)

// Scenario describes a tree and an ordered list of operations to run
// against it.
type Scenario struct {
	Mode  string `yaml:"Mode"`
	Depth int    `yaml:"Depth"`
	Hash  string `yaml:"Hash"`
	Ops   []Op   `yaml:"Ops"`
}

// Op is a single scenario step. Keys and values are strings in both
// modes; big-number mode parses them as decimal integers.
type Op struct {
	Op    string `yaml:"Op"`
	Key   string `yaml:"Key"`
	Value string `yaml:"Value,omitempty"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read scenario: %w", err)
	}
	s := &Scenario{Mode: ModeHex, Hash: HashSHA256}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("unable to parse scenario: %w", err)
	}
	if s.Depth <= 0 {
		return nil, fmt.Errorf("invalid depth %d", s.Depth)
	}
	switch {
	case s.Mode == ModeHex && s.Hash == HashSHA256:
	case s.Mode == ModeBig && s.Hash == HashMiMC:
	default:
		return nil, fmt.Errorf("unsupported mode/hash pair %q/%q", s.Mode, s.Hash)
	}
	return s, nil
}
