package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/buckos/patchd/internal/client"
)

// Represents the 'patchd status' command.
type StatusCmd struct{}

// Executes the status command.
func (c *StatusCmd) Run(ctx context.Context) error {
	st, err := client.New(socketPath()).Status(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("version:   %s\n", st.Version)
	fmt.Printf("pid:       %d\n", st.Pid)
	fmt.Printf("uptime:    %s\n", st.Uptime)
	fmt.Printf("enabled:   %t\n", st.Enabled)
	fmt.Printf("packages:  %d\n", st.Packages)
	fmt.Printf("requests:  %d\n", st.Requests)
	fmt.Printf("loaded at: %s\n", st.LoadedAt.Format(time.RFC3339))
	return nil
}

// Represents the 'patchd reload' command.
type ReloadCmd struct{}

// Executes the reload command.
func (c *ReloadCmd) Run(ctx context.Context) error {
	res, err := client.New(socketPath()).Reload(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("reloaded: %d packages, enabled %t\n", res.Packages, res.Enabled)
	return nil
}

// Represents the 'patchd stop' command.
type StopCmd struct{}

// Executes the stop command.
func (c *StopCmd) Run(ctx context.Context) error {
	return client.New(socketPath()).Shutdown(ctx)
}
