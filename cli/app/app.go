package app

import (
	"os"

	"github.com/jordan-public/zk-optimized-sparse-merkle-tree/cli/tree"
	"github.com/urfave/cli"
)

// Version is set at build time.
var Version = "dev"

// New creates a [cli.App] with all commands included.
func New() *cli.App {
	ctl := cli.NewApp()
	ctl.Name = "smt"
	ctl.Version = Version
	ctl.Usage = "sparse Merkle tree scenario runner and proof checker"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, tree.NewCommands()...)
	return ctl
}
