package cli

import (
	"context"
	"fmt"

	"github.com/buckos/patchd/internal/overrides"
	"github.com/buckos/patchd/internal/toolchain"
)

// Represents the 'patchd toolchain' command.
type ToolchainCmd struct {
	Kind string `arg:"" optional:"" help:"Toolchain kind, e.g. rust. Lists all kinds when omitted."`
}

// Executes the toolchain command.
//
// Prints the install root and version of the toolchain declared in the
// settings section toolchain.<kind>.
func (c *ToolchainCmd) Run(ctx context.Context) error {
	snap, err := overrides.LoadSnapshot(sources())
	if err != nil {
		return err
	}

	if c.Kind == "" {
		for _, k := range snap.Toolchains.Kinds() {
			fmt.Println(k)
		}
		return nil
	}

	d, err := snap.Toolchains.Get(toolchain.Kind(c.Kind))
	if err != nil {
		return err
	}

	fmt.Printf("%s\t%s\n", d.InstallRoot(), d.Version())
	return nil
}
