package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/buckos/patchd/internal/recipe"
	"github.com/containerd/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	data, err := Encode(CmdPrepare, &PrepareRequest{
		Package: "openssl",
		Recipe:  recipe.Recipe{Patches: []string{"a.patch"}},
	})
	require.NoError(t, err)

	env, payload, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, CmdPrepare, env.Command)
	assert.Equal(t, Version, env.Version)

	req, err := DecodePayload[PrepareRequest](payload)
	require.NoError(t, err)
	assert.Equal(t, "openssl", req.Package)
	assert.Equal(t, []string{"a.patch"}, req.Recipe.Patches)
}

func TestEncodeNilPayload(t *testing.T) {
	data, err := Encode(CmdStatus, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"command":"status"}`, string(data))

	_, payload, err := Decode(data)
	require.NoError(t, err)

	res, err := DecodePayload[StatusResult](payload)
	require.NoError(t, err)
	assert.False(t, res.Running)
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "hello"},
		{"wrong version", `{"version":2,"command":"status"}`},
		{"missing command", `{"version":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode([]byte(tt.data))
			assert.ErrorIs(t, err, ErrProtocol)
		})
	}
}

func TestDecodePayloadInvalid(t *testing.T) {
	_, err := DecodePayload[ResolveRequest](json.RawMessage(`{"package": 5}`))
	assert.ErrorIs(t, err, ErrProtocol)
}

func TestErrorResultRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		code  string
		check func(error) bool
	}{
		{"invalid", fmt.Errorf("bad: %w", errdefs.ErrInvalidArgument), CodeInvalidArgument, errdefs.IsInvalidArgument},
		{"not found", fmt.Errorf("gone: %w", errdefs.ErrNotFound), CodeNotFound, errdefs.IsNotFound},
		{"unavailable", fmt.Errorf("down: %w", errdefs.ErrUnavailable), CodeUnavailable, errdefs.IsUnavailable},
		{"plain", errors.New("boom"), CodeInternal, errdefs.IsInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewErrorResult(tt.err)
			assert.Equal(t, tt.code, res.Code)
			assert.Equal(t, tt.err.Error(), res.Message)

			back := res.Err()
			assert.True(t, tt.check(back))
			assert.Equal(t, tt.err.Error(), back.Error())
		})
	}
}
