package overrides

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	reg := NewRegistry(map[string]Record{
		"openssl": {Patches: []string{"ca.patch"}},
	})
	r := NewResolver(StaticGate(true), reg)

	rec, ok := r.Resolve("openssl")
	require.True(t, ok)
	assert.Equal(t, []string{"ca.patch"}, rec.Patches)

	rec, ok = r.Resolve("unknown-pkg")
	assert.False(t, ok)
	assert.True(t, rec.IsZero())
}

func TestResolveInactiveGate(t *testing.T) {
	reg := NewRegistry(map[string]Record{
		"openssl": {Patches: []string{"ca.patch"}},
		"zlib":    {Env: map[string]string{"A": "1"}},
	})
	r := NewResolver(StaticGate(false), reg)

	for _, name := range []string{"openssl", "zlib", "unknown-pkg", ""} {
		_, ok := r.Resolve(name)
		assert.False(t, ok, "resolve %q with inactive gate", name)
	}
	assert.False(t, r.Gate().Active())
}

func TestResolveNilRegistry(t *testing.T) {
	r := NewResolver(StaticGate(true), nil)
	_, ok := r.Resolve("openssl")
	assert.False(t, ok)
}
