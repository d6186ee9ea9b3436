package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/buckos/patchd/internal/overrides"
)

// Represents the 'patchd validate' command.
type ValidateCmd struct {
	List bool `short:"l" help:"List the registered packages."`
}

// Executes the validate command.
//
// Loads the settings and every registry file exactly as the daemon would and
// reports the first problem found.
func (c *ValidateCmd) Run(ctx context.Context) error {
	src := sources()

	snap, err := overrides.LoadSnapshot(src)
	if err != nil {
		return err
	}

	slog.Debug("validated", "settings", src.Settings, "registries", src.Registries)

	state := "enabled"
	if !snap.Gate.Active() {
		state = "disabled"
	}
	fmt.Printf("%d packages, overrides %s\n", snap.Registry.Len(), state)

	if c.List {
		for _, name := range snap.Registry.Names() {
			fmt.Println(name)
		}
	}

	return nil
}
