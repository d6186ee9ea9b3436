package cli

import (
	"context"
	"log/slog"

	"github.com/buckos/patchd/internal/overrides"
	"github.com/buckos/patchd/internal/server"
)

// Represents the 'patchd start' command.
type StartCmd struct {
	NoWatch bool `help:"Do not reload when the settings or registry files change."`
}

// Executes the start command.
//
// Loads the registry, starts the server on a Unix domain socket and blocks
// until the context is cancelled (e.g. via SIGINT or SIGTERM) or a client
// requests shutdown.
func (c *StartCmd) Run(ctx context.Context) error {
	store, err := overrides.NewStore(sources())
	if err != nil {
		return err
	}

	snap := store.Snapshot()
	slog.Info("override registry loaded",
		"packages", snap.Registry.Len(),
		"enabled", snap.Gate.Active(),
	)

	srv, err := server.New(server.Config{
		SocketPath: RootCmd.Socket,
		Store:      store,
		Watch:      !c.NoWatch,
	})
	if err != nil {
		return err
	}

	if err := srv.Start(); err != nil {
		return err
	}

	slog.Info("patchd is running")

	select {
	case <-ctx.Done():
	case <-srv.Done():
	}

	slog.Info("shutting down")
	return srv.Stop()
}
