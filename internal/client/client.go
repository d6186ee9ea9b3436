package client

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"syscall"
	"time"

	"github.com/buckos/patchd/internal/build"
	"github.com/buckos/patchd/internal/protocol"
	"github.com/containerd/errdefs"
)

// Upper bound on a single exchange when the context has no deadline.
const defaultTimeout = 30 * time.Second

// Sends commands to the daemon listening on a Unix socket.
type Client struct {
	socketPath string
}

// Creates a client for the daemon at socketPath.
func New(socketPath string) *Client {
	return &Client{socketPath: socketPath}
}

// Returns the override record the daemon resolves for pkg.
func (c *Client) Resolve(ctx context.Context, pkg string) (*protocol.ResolveResult, error) {
	var res protocol.ResolveResult
	if err := c.call(ctx, protocol.CmdResolve, &protocol.ResolveRequest{Package: pkg}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Asks the daemon to prepare a build plan.
func (c *Client) Prepare(ctx context.Context, req *protocol.PrepareRequest) (*build.Plan, error) {
	var res protocol.PrepareResult
	if err := c.call(ctx, protocol.CmdPrepare, req, &res); err != nil {
		return nil, err
	}
	if res.Plan == nil {
		return nil, fmt.Errorf("%w: empty plan in response", ErrClient)
	}
	return res.Plan, nil
}

// Returns the daemon status.
func (c *Client) Status(ctx context.Context) (*protocol.StatusResult, error) {
	var res protocol.StatusResult
	if err := c.call(ctx, protocol.CmdStatus, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Asks the daemon to reload its settings and registries.
func (c *Client) Reload(ctx context.Context) (*protocol.ReloadResult, error) {
	var res protocol.ReloadResult
	if err := c.call(ctx, protocol.CmdReload, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Asks the daemon to stop.
func (c *Client) Shutdown(ctx context.Context) error {
	return c.call(ctx, protocol.CmdShutdown, nil, nil)
}

// Performs one request-response exchange.
//
// An error response from the daemon is returned as an error carrying the
// daemon's errdefs class. result may be nil when the response has no
// payload of interest.
func (c *Client) call(ctx context.Context, cmd protocol.Command, payload, result any) error {
	conn, err := c.dial(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(defaultTimeout)
	}
	conn.SetDeadline(deadline)

	data, err := protocol.Encode(cmd, payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrClient, err)
	}
	if _, err := conn.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("%w: %w", ErrClient, err)
	}

	line, err := bufio.NewReader(conn).ReadBytes('\n')
	if err != nil {
		return fmt.Errorf("%w: %w", ErrClient, err)
	}

	env, raw, err := protocol.Decode(line)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrClient, err)
	}

	switch env.Command {
	case protocol.CmdOK:
		if result == nil || len(raw) == 0 {
			return nil
		}
		if err := json.Unmarshal(raw, result); err != nil {
			return fmt.Errorf("%w: %w", ErrClient, err)
		}
		return nil

	case protocol.CmdError:
		res, err := protocol.DecodePayload[protocol.ErrorResult](raw)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrClient, err)
		}
		return fmt.Errorf("%w: %w", ErrClient, res.Err())

	default:
		return fmt.Errorf("%w: unexpected response %q", ErrClient, env.Command)
	}
}

// Connects to the daemon socket.
func (c *Client) dial(ctx context.Context) (net.Conn, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		if isNotRunning(err) {
			return nil, fmt.Errorf("%w: %w: daemon not running at %s", ErrClient, errdefs.ErrUnavailable, c.socketPath)
		}
		return nil, fmt.Errorf("%w: %w", ErrClient, err)
	}
	return conn, nil
}

// Reports whether a dial error means nothing is listening on the socket.
func isNotRunning(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ENOENT)
}
