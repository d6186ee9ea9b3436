package cli

import (
	"context"
	"io"
	"os"

	"github.com/buckos/patchd/internal/client"
	"github.com/buckos/patchd/internal/overrides"
	"github.com/buckos/patchd/internal/protocol"
)

// Represents the 'patchd resolve' command.
type ResolveCmd struct {
	Package string `arg:"" help:"Package name."`
	Remote  bool   `help:"Ask the running daemon instead of loading the registry."`
	JSON    bool   `help:"Print JSON instead of YAML."`
}

// Executes the resolve command.
//
// Prints whether overrides are enabled and the record that applies to the
// package, if any. A package without a record is not an error.
func (c *ResolveCmd) Run(ctx context.Context) error {
	var (
		res *protocol.ResolveResult
		err error
	)

	if c.Remote {
		res, err = client.New(socketPath()).Resolve(ctx, c.Package)
	} else {
		res, err = resolveLocal(c.Package)
	}
	if err != nil {
		return err
	}

	return c.print(os.Stdout, res)
}

func (c *ResolveCmd) print(w io.Writer, res *protocol.ResolveResult) error {
	if c.JSON {
		return writeJSON(w, res)
	}
	return writeYAML(w, res)
}

// Resolves a package against a freshly loaded snapshot.
func resolveLocal(pkg string) (*protocol.ResolveResult, error) {
	snap, err := overrides.LoadSnapshot(sources())
	if err != nil {
		return nil, err
	}

	res := &protocol.ResolveResult{Package: pkg, Enabled: snap.Gate.Active()}
	if rec, ok := snap.Resolver.Resolve(pkg); ok {
		res.Found = true
		res.Record = &rec
	}
	return res, nil
}
