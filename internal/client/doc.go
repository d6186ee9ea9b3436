// Package client talks to a running patchd daemon.
//
// Each call opens a new connection to the daemon's Unix socket, sends one
// request envelope and reads one response, mirroring the daemon's
// one-exchange-per-connection model. When no daemon is listening, calls fail
// with an error matching errdefs.ErrUnavailable.
package client
