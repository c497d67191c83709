package tree

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jordan-public/zk-optimized-sparse-merkle-tree/pkg/hasher"
	"github.com/jordan-public/zk-optimized-sparse-merkle-tree/pkg/smt"
)

// NewCommands returns the tree-related CLI commands.
func NewCommands() []cli.Command {
	scenarioFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "in, i",
			Usage: "scenario file to execute",
		},
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: "enable debug logging",
		},
	}
	return []cli.Command{
		{
			Name:  "run",
			Usage: "execute a scenario and emit proofs for its prove steps",
			Flags: append(scenarioFlags, cli.StringFlag{
				Name:  "out, o",
				Usage: "file to write emitted proofs to (default stdout)",
			}),
			Action: runScenario,
		},
		{
			Name:  "verify",
			Usage: "check previously emitted proofs without rebuilding the tree",
			Flags: append(scenarioFlags, cli.StringFlag{
				Name:  "proofs, p",
				Usage: "file with proofs emitted by run",
			}),
			Action: verifyProofs,
		},
	}
}

func newLogger(ctx *cli.Context) (*zap.Logger, error) {
	cc := zap.NewProductionConfig()
	cc.Encoding = "console"
	if ctx.Bool("debug") {
		cc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cc.Build()
}

func runScenario(ctx *cli.Context) error {
	s, err := LoadScenario(ctx.String("in"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	log, err := newLogger(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer log.Sync()

	var proofs interface{}
	switch s.Mode {
	case ModeHex:
		t, err := smt.NewHexTree(hasher.SHA256Hex(), s.Depth)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		proofs, err = execute(log, t, parseHex, s.Ops)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
	case ModeBig:
		t, err := smt.NewBigTree(hasher.MiMCBig(), s.Depth)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		proofs, err = execute(log, t, parseBig, s.Ops)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
	}
	return writeJSON(ctx.String("out"), proofs)
}

func verifyProofs(ctx *cli.Context) error {
	s, err := LoadScenario(ctx.String("in"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	log, err := newLogger(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer log.Sync()

	data, err := os.ReadFile(ctx.String("proofs"))
	if err != nil {
		return cli.NewExitError(fmt.Errorf("unable to read proofs: %w", err), 1)
	}
	switch s.Mode {
	case ModeHex:
		c, err := smt.NewCombinator[string](smt.HexDomain{}, hasher.SHA256Hex())
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		err = checkAll(log, c, data)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
	case ModeBig:
		c, err := smt.NewCombinator[*big.Int](smt.BigDomain{}, hasher.MiMCBig())
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		err = checkAll(log, c, data)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
	}
	return nil
}

// execute runs ops in order, logging each root transition, and returns
// the proofs produced by prove steps.
func execute[V any](log *zap.Logger, t *smt.Tree[V], parse func(string) (V, error), ops []Op) ([]*smt.Proof[V], error) {
	var proofs []*smt.Proof[V]
	for i, op := range ops {
		key, err := parse(op.Key)
		if err != nil {
			return nil, fmt.Errorf("op %d: bad key: %w", i, err)
		}
		switch op.Op {
		case "add", "update":
			value, err := parse(op.Value)
			if err != nil {
				return nil, fmt.Errorf("op %d: bad value: %w", i, err)
			}
			if op.Op == "add" {
				err = t.Add(key, value)
			} else {
				err = t.Update(key, value)
			}
			if err != nil {
				return nil, fmt.Errorf("op %d: %w", i, err)
			}
		case "delete":
			if err := t.Delete(key); err != nil {
				return nil, fmt.Errorf("op %d: %w", i, err)
			}
		case "prove":
			p, err := t.CreateProof(key)
			if err != nil {
				return nil, fmt.Errorf("op %d: %w", i, err)
			}
			proofs = append(proofs, p)
		default:
			return nil, fmt.Errorf("op %d: unknown operation %q", i, op.Op)
		}
		log.Info("executed",
			zap.String("op", op.Op),
			zap.String("key", op.Key),
			zap.Any("root", t.RootHash()),
			zap.Int("nodes", t.Size()))
	}
	return proofs, nil
}

// checkAll verifies every proof in a run emission.
func checkAll[V any](log *zap.Logger, c *smt.Combinator[V], data []byte) error {
	var proofs []*smt.Proof[V]
	if err := json.Unmarshal(data, &proofs); err != nil {
		return fmt.Errorf("unable to parse proofs: %w", err)
	}
	for i, p := range proofs {
		if !smt.VerifyProof(c, p) {
			return fmt.Errorf("proof %d failed verification", i)
		}
		log.Info("proof ok", zap.Any("key", p.Key), zap.Any("value", p.Value))
	}
	return nil
}

func parseHex(s string) (string, error) {
	return s, nil
}

func parseBig(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%q is not a decimal integer", s)
	}
	return n, nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
	} else {
		err = os.WriteFile(path, data, 0644)
	}
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}
