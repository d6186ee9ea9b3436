package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"os"
	"time"

	"github.com/buckos/patchd/internal"
	"github.com/buckos/patchd/internal/build"
	"github.com/buckos/patchd/internal/protocol"
	"github.com/containerd/errdefs"
)

// Handles a resolve command.
//
// Reports the override record that applies to the package under the current
// snapshot. An unregistered package is a successful response with Found set
// to false.
func (s *Server) handleResolve(conn net.Conn, payload json.RawMessage) {
	req, err := protocol.DecodePayload[protocol.ResolveRequest](payload)
	if err != nil {
		s.respondError(conn, fmt.Errorf("%w: %w", errdefs.ErrInvalidArgument, err))
		return
	}
	if req.Package == "" {
		s.respondError(conn, fmt.Errorf("%w: package name is required", errdefs.ErrInvalidArgument))
		return
	}

	snap := s.store.Snapshot()
	result := &protocol.ResolveResult{
		Package: req.Package,
		Enabled: snap.Gate.Active(),
	}
	if rec, ok := snap.Resolver.Resolve(req.Package); ok {
		result.Found = true
		result.Record = &rec
	}

	s.countRequest()
	s.respond(conn, protocol.CmdOK, result)
}

// Handles a prepare command.
//
// Merges the package's overrides into the supplied recipe and returns the
// resulting plan.
func (s *Server) handlePrepare(conn net.Conn, payload json.RawMessage) {
	req, err := protocol.DecodePayload[protocol.PrepareRequest](payload)
	if err != nil {
		s.respondError(conn, fmt.Errorf("%w: %w", errdefs.ErrInvalidArgument, err))
		return
	}

	snap := s.store.Snapshot()
	plan, err := build.Prepare(snap.Resolver, build.Options{
		Package:   req.Package,
		Recipe:    req.Recipe,
		Shell:     req.Shell,
		Workdir:   req.Workdir,
		BaseEnv:   req.BaseEnv,
		Configure: req.Configure,
	})
	if err != nil {
		s.respondError(conn, err)
		return
	}

	s.countRequest()
	s.respond(conn, protocol.CmdOK, &protocol.PrepareResult{Plan: plan})
}

// Handles a status command.
func (s *Server) handleStatus(conn net.Conn) {
	s.mu.Lock()
	requests := s.requests
	s.mu.Unlock()

	snap := s.store.Snapshot()
	uptime := time.Since(s.startedAt).Truncate(time.Second)

	s.respond(conn, protocol.CmdOK, &protocol.StatusResult{
		Running:  true,
		Version:  internal.VersionString(),
		Pid:      os.Getpid(),
		Uptime:   uptime.String(),
		Enabled:  snap.Gate.Active(),
		Packages: snap.Registry.Len(),
		Requests: requests,
		LoadedAt: snap.LoadedAt,
	})
}

// Handles a reload command.
//
// On failure the previous snapshot keeps serving and the error is returned
// to the caller.
func (s *Server) handleReload(conn net.Conn) {
	snap, err := s.store.Reload()
	if err != nil {
		slog.Error("reload failed", "error", err)
		s.respondError(conn, err)
		return
	}

	s.respond(conn, protocol.CmdOK, &protocol.ReloadResult{
		Enabled:  snap.Gate.Active(),
		Packages: snap.Registry.Len(),
		LoadedAt: snap.LoadedAt,
	})
}

// Handles a shutdown command.
func (s *Server) handleShutdown(conn net.Conn) {
	s.respond(conn, protocol.CmdOK, nil)
	slog.Info("shutdown requested")

	go func() {
		s.Stop()
	}()
}

// Counts a served resolve or prepare request.
func (s *Server) countRequest() {
	s.mu.Lock()
	s.requests++
	s.mu.Unlock()
}
