package server

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/buckos/patchd/internal/overrides"
	"github.com/buckos/patchd/internal/paths"
	"github.com/buckos/patchd/internal/protocol"
	"github.com/containerd/errdefs"
)

const (

	// Group name used to grant socket access. Members of this group can
	// connect to the daemon socket without owning the process.
	socketGroup = "patchd"

	// File mode applied to the Unix socket. Owner and group get read-write
	// (required for connect); others get no access.
	socketMode = 0660
)

// Holds server configuration.
type Config struct {
	SocketPath string           // Override for the Unix socket path. Empty uses the default.
	PIDFile    string           // Override for the PID file path. Empty uses the default.
	Store      *overrides.Store // Snapshot store serving every request. Required.
	Watch      bool             // Reload the store when its source files change.
}

// Listens on a Unix domain socket and dispatches commands.
type Server struct {
	socketPath string             // Path to the Unix socket file.
	pidFile    string             // Path to the PID file.
	store      *overrides.Store   // Current override snapshot.
	watch      bool               // Whether to watch source files.
	listener   net.Listener       // Listener for incoming connections.
	startedAt  time.Time          // Timestamp when the server started.
	requests   int                // Total number of resolve and prepare commands processed.
	cancel     context.CancelFunc // Stops the file watcher.
	done       chan struct{}      // Channel to signal server shutdown.
	stopOnce   sync.Once          // Guards shutdown.
	mu         sync.Mutex         // Mutex to protect shared state.
}

// Creates a new server instance.
//
// The socket is not opened until [Start] is called.
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("%w: no override store", ErrServer)
	}

	socketPath := cfg.SocketPath
	if socketPath == "" {
		socketPath = paths.Socket()
	}

	pidFile := cfg.PIDFile
	if pidFile == "" {
		pidFile = paths.PIDFile()
	}

	return &Server{
		socketPath: socketPath,
		pidFile:    pidFile,
		store:      cfg.Store,
		watch:      cfg.Watch,
		done:       make(chan struct{}),
	}, nil
}

// Opens the Unix socket and begins accepting connections.
func (s *Server) Start() error {
	listener, err := listen(s.socketPath)
	if err != nil {
		return err
	}

	s.listener = listener
	s.startedAt = time.Now()

	if err := writePID(s.pidFile); err != nil {
		slog.Warn("failed to write PID file", "error", err)
	}

	slog.Info("server listening on socket", "path", s.socketPath)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	if s.watch {
		go func() {
			if err := s.store.Watch(ctx); err != nil {
				slog.Error("file watcher stopped", "error", err)
			}
		}()
	}

	go s.accept()
	return nil
}

// Creates the Unix socket listener, removes any stale socket from a previous
// run, and applies permissions.
func listen(socketPath string) (net.Listener, error) {
	if err := os.MkdirAll(filepath.Dir(socketPath), paths.DefaultDirMode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServer, err)
	}

	os.Remove(socketPath)

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to listen on %s: %w", ErrServer, socketPath, err)
	}

	if err := setSocketPermissions(socketPath); err != nil {
		listener.Close()
		return nil, err
	}

	return listener, nil
}

// Restricts socket access to owner and group. Any user in the patchd group
// can also connect.
func setSocketPermissions(socketPath string) error {
	if err := os.Chmod(socketPath, socketMode); err != nil {
		return fmt.Errorf("%w: failed to chmod socket %s: %w", ErrServer, socketPath, err)
	}

	if g, err := user.LookupGroup(socketGroup); err == nil {
		if gid, err := strconv.Atoi(g.Gid); err == nil {
			if err := os.Chown(socketPath, -1, gid); err != nil {
				slog.Warn("failed to chgrp socket", "group", socketGroup, "error", err)
			}
		}
	} else {
		slog.Debug("socket group not found, socket accessible to owner only", "group", socketGroup)
	}

	return nil
}

// Shuts down the server and cleans up resources. Safe to call more than
// once.
func (s *Server) Stop() error {
	s.stopOnce.Do(func() {
		close(s.done)

		if s.cancel != nil {
			s.cancel()
		}

		if s.listener != nil {
			s.listener.Close()
		}

		os.Remove(s.socketPath)
		os.Remove(s.pidFile)
	})

	return nil
}

// Blocks until the server stops.
func (s *Server) Wait() {
	<-s.done
}

// Returns a channel that is closed when the server stops.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Accepts connections in a loop until the server shuts down.
func (s *Server) accept() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.done:
				return
			default:
				slog.Error("accept error", "error", err)
				continue
			}
		}

		go s.handle(conn)
	}
}

// Processes a single connection.
//
// Reads one newline-delimited JSON message, dispatches the command, and
// writes the response. The connection is closed after one exchange.
func (s *Server) handle(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)

	line, err := reader.ReadBytes('\n')
	if err != nil {
		slog.Error("read error", "error", err)
		return
	}

	env, payload, err := protocol.Decode(line)
	if err != nil {
		s.respondError(conn, fmt.Errorf("%w: %w", errdefs.ErrInvalidArgument, err))
		return
	}

	slog.Debug("command received", "command", env.Command)

	s.dispatch(conn, env.Command, payload)
}

// Routes a command to the appropriate handler.
func (s *Server) dispatch(conn net.Conn, cmd protocol.Command, payload json.RawMessage) {
	switch cmd {
	case protocol.CmdResolve:
		s.handleResolve(conn, payload)
	case protocol.CmdPrepare:
		s.handlePrepare(conn, payload)
	case protocol.CmdStatus:
		s.handleStatus(conn)
	case protocol.CmdReload:
		s.handleReload(conn)
	case protocol.CmdShutdown:
		s.handleShutdown(conn)
	default:
		s.respond(conn, protocol.CmdError, &protocol.ErrorResult{
			Code:    protocol.CodeInvalidArgument,
			Message: fmt.Sprintf("unknown command: %s", cmd),
		})
	}
}

// Writes a JSON envelope response to the connection.
func (s *Server) respond(conn net.Conn, cmd protocol.Command, payload any) {
	data, err := protocol.Encode(cmd, payload)
	if err != nil {
		slog.Error("encode response failed", "error", err)
		return
	}
	data = append(data, '\n')
	conn.Write(data)
}

// Writes an error response classified by errdefs.
func (s *Server) respondError(conn net.Conn, err error) {
	s.respond(conn, protocol.CmdError, protocol.NewErrorResult(err))
}

// Writes the daemon PID to the PID file so the CLI can detect whether the
// daemon is already running and send it signals.
func writePID(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), paths.DefaultDirMode); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), paths.DefaultFileMode)
}
