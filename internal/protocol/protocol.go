package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/buckos/patchd/internal/build"
	"github.com/buckos/patchd/internal/overrides"
	"github.com/buckos/patchd/internal/recipe"
	"github.com/containerd/errdefs"
)

// Protocol version carried in every envelope.
const Version = 1

// Names a request or response kind.
type Command string

const (
	CmdResolve  Command = "resolve"  // Look up a package's override record.
	CmdPrepare  Command = "prepare"  // Build a plan for a package.
	CmdStatus   Command = "status"   // Report daemon status.
	CmdReload   Command = "reload"   // Reload settings and registries.
	CmdShutdown Command = "shutdown" // Stop the daemon.
	CmdOK       Command = "ok"       // Successful response.
	CmdError    Command = "error"    // Failed response.
)

var (
	ErrProtocol = errors.New("protocol error")
)

// Wire frame for every message.
type Envelope struct {
	Version int             `json:"version"`
	Command Command         `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Encodes a command and payload into an envelope. A nil payload is omitted.
func Encode(cmd Command, payload any) ([]byte, error) {
	env := Envelope{Version: Version, Command: cmd}

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrProtocol, err)
		}
		env.Payload = data
	}

	return json.Marshal(env)
}

// Decodes an envelope and returns it along with its raw payload.
func Decode(data []byte) (*Envelope, json.RawMessage, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrProtocol, err)
	}
	if env.Version != Version {
		return nil, nil, fmt.Errorf("%w: unsupported version %d", ErrProtocol, env.Version)
	}
	if env.Command == "" {
		return nil, nil, fmt.Errorf("%w: missing command", ErrProtocol)
	}
	return &env, env.Payload, nil
}

// Decodes a payload into T. An empty payload yields the zero T.
func DecodePayload[T any](payload json.RawMessage) (*T, error) {
	var v T
	if len(payload) == 0 {
		return &v, nil
	}
	if err := json.Unmarshal(payload, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProtocol, err)
	}
	return &v, nil
}

// Payload of [CmdResolve].
type ResolveRequest struct {
	Package string `json:"package"`
}

// Result of [CmdResolve].
type ResolveResult struct {
	Package string            `json:"package" yaml:"package"`
	Enabled bool              `json:"enabled" yaml:"enabled"`                   // Whether overrides are active.
	Found   bool              `json:"found" yaml:"found"`                       // Whether a record applies to the package.
	Record  *overrides.Record `json:"record,omitempty" yaml:"record,omitempty"` // The record, when found.
}

// Payload of [CmdPrepare].
type PrepareRequest struct {
	Package   string        `json:"package"`
	Recipe    recipe.Recipe `json:"recipe"`
	Shell     string        `json:"shell,omitempty"`
	Workdir   string        `json:"workdir,omitempty"`
	BaseEnv   []string      `json:"base_env,omitempty"`
	Configure string        `json:"configure,omitempty"`
}

// Result of [CmdPrepare].
type PrepareResult struct {
	Plan *build.Plan `json:"plan"`
}

// Result of [CmdStatus].
type StatusResult struct {
	Running  bool      `json:"running"`
	Version  string    `json:"version"`
	Pid      int       `json:"pid"`
	Uptime   string    `json:"uptime"`
	Enabled  bool      `json:"enabled"`   // Whether overrides are active.
	Packages int       `json:"packages"`  // Registered packages.
	Requests int       `json:"requests"`  // Resolve and prepare requests served.
	LoadedAt time.Time `json:"loaded_at"` // When the current snapshot was loaded.
}

// Result of [CmdReload].
type ReloadResult struct {
	Enabled  bool      `json:"enabled"`
	Packages int       `json:"packages"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Error classes carried across the wire.
const (
	CodeInvalidArgument = "invalid_argument"
	CodeNotFound        = "not_found"
	CodeUnavailable     = "unavailable"
	CodeInternal        = "internal"
)

// Result of [CmdError].
type ErrorResult struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Returns an error result for err, classified by errdefs.
func NewErrorResult(err error) *ErrorResult {
	code := CodeInternal
	switch {
	case errdefs.IsInvalidArgument(err):
		code = CodeInvalidArgument
	case errdefs.IsNotFound(err):
		code = CodeNotFound
	case errdefs.IsUnavailable(err):
		code = CodeUnavailable
	}
	return &ErrorResult{Code: code, Message: err.Error()}
}

// Converts the result back into an error matching the original errdefs
// class.
func (r *ErrorResult) Err() error {
	var class error
	switch r.Code {
	case CodeInvalidArgument:
		class = errdefs.ErrInvalidArgument
	case CodeNotFound:
		class = errdefs.ErrNotFound
	case CodeUnavailable:
		class = errdefs.ErrUnavailable
	default:
		class = errdefs.ErrInternal
	}
	return &remoteError{class: class, message: r.Message}
}

// Error reported by the daemon.
type remoteError struct {
	class   error
	message string
}

func (e *remoteError) Error() string { return e.message }
func (e *remoteError) Unwrap() error { return e.class }
