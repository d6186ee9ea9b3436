package toolchain

import (
	"testing"

	"github.com/buckos/patchd/internal/settings"
	"github.com/containerd/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptor(t *testing.T) {
	d := New("/opt/rust", "1.79.0")
	assert.Equal(t, "/opt/rust", d.InstallRoot())
	assert.Equal(t, "1.79.0", d.Version())
}

func TestSetGet(t *testing.T) {
	table := map[Kind]Descriptor{"go": New("/usr/lib/go", "1.25.1")}
	s := NewSet(table)
	delete(table, "go")

	d, err := s.Get("go")
	require.NoError(t, err)
	assert.Equal(t, "1.25.1", d.Version())

	_, err = s.Get("python")
	require.Error(t, err)
	assert.True(t, errdefs.IsNotFound(err))
}

func TestNilSet(t *testing.T) {
	var s *Set
	_, err := s.Get("go")
	assert.True(t, errdefs.IsNotFound(err))
	assert.Empty(t, s.Kinds())
}

func TestFromSettings(t *testing.T) {
	st := settings.New(map[string]map[string]string{
		"buckos":         {"patch_registry_enabled": "true"},
		"toolchain.rust": {"install_root": "/opt/rust", "version": "1.79.0"},
		"toolchain.go":   {"install_root": "/usr/lib/go"},
	})

	s, err := FromSettings(st)
	require.NoError(t, err)
	assert.Equal(t, []Kind{"go", "rust"}, s.Kinds())

	d, err := s.Get("rust")
	require.NoError(t, err)
	assert.Equal(t, New("/opt/rust", "1.79.0"), d)

	d, err = s.Get("go")
	require.NoError(t, err)
	assert.Equal(t, "", d.Version())
}

func TestFromSettingsMissingRoot(t *testing.T) {
	st := settings.New(map[string]map[string]string{
		"toolchain.rust": {"version": "1.79.0"},
	})

	_, err := FromSettings(st)
	require.Error(t, err)
	assert.True(t, errdefs.IsInvalidArgument(err))
}
