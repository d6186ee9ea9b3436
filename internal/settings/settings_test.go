package settings

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/containerd/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	s, err := Decode(strings.NewReader(`
buckos:
  patch_registry_enabled: false
  quoted: "FALSE"
  number: 0
  empty:
toolchain.rust:
  version: 1.79.0
`))
	require.NoError(t, err)

	tests := []struct {
		section, key string
		want         string
		ok           bool
	}{
		{"buckos", "patch_registry_enabled", "false", true},
		{"buckos", "quoted", "FALSE", true},
		{"buckos", "number", "0", true},
		{"buckos", "empty", "", true},
		{"buckos", "missing", "", false},
		{"toolchain.rust", "version", "1.79.0", true},
		{"nope", "x", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.section+"."+tt.key, func(t *testing.T) {
			got, ok := s.Get(tt.section, tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, []string{"buckos", "toolchain.rust"}, s.Sections())
}

func TestDecodeRejectsNested(t *testing.T) {
	_, err := Decode(strings.NewReader("buckos:\n  enabled:\n    - a\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSettings))
	assert.True(t, errdefs.IsInvalidArgument(err))
}

func TestDecodeEmpty(t *testing.T) {
	s, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	_, ok := s.Get("buckos", "patch_registry_enabled")
	assert.False(t, ok)
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Empty(t, s.Sections())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("buckos:\n  patch_registry_enabled: \"true\"\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	v, ok := s.Get("buckos", "patch_registry_enabled")
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestWith(t *testing.T) {
	base := New(map[string]map[string]string{
		"buckos": {"patch_registry_enabled": "true", "other": "x"},
	})

	s, err := base.With("buckos.patch_registry_enabled=false", "toolchain.go.version=1.25", "a.b=c=d")
	require.NoError(t, err)

	v, _ := s.Get("buckos", "patch_registry_enabled")
	assert.Equal(t, "false", v)
	v, _ = s.Get("buckos", "other")
	assert.Equal(t, "x", v)
	v, _ = s.Get("toolchain.go", "version")
	assert.Equal(t, "1.25", v)
	v, _ = s.Get("a", "b")
	assert.Equal(t, "c=d", v)

	// The receiver is unchanged.
	v, _ = base.Get("buckos", "patch_registry_enabled")
	assert.Equal(t, "true", v)
}

func TestWithNilReceiver(t *testing.T) {
	var s *Settings
	out, err := s.With("buckos.patch_registry_enabled=")
	require.NoError(t, err)
	v, ok := out.Get("buckos", "patch_registry_enabled")
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestWithInvalid(t *testing.T) {
	for _, a := range []string{"novalue", "nodot=1", ".key=1", "section.=1"} {
		t.Run(a, func(t *testing.T) {
			_, err := New(nil).With(a)
			require.Error(t, err)
			assert.True(t, errdefs.IsInvalidArgument(err))
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	in := map[string]map[string]string{"s": {"k": "v"}}
	s := New(in)
	in["s"]["k"] = "changed"

	v, _ := s.Get("s", "k")
	assert.Equal(t, "v", v)
}
