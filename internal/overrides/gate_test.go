package overrides

import (
	"testing"

	"github.com/buckos/patchd/internal/settings"
	"github.com/stretchr/testify/assert"
)

func TestGate(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  bool
	}{
		{"absent", nil, true},
		{"empty", ptr(""), true},
		{"true", ptr("true"), true},
		{"false", ptr("false"), false},
		{"upper case", ptr("FALSE"), true},
		{"title case", ptr("False"), true},
		{"zero", ptr("0"), true},
		{"padded", ptr(" false"), true},
		{"no", ptr("no"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := map[string]map[string]string{}
			if tt.value != nil {
				sections["buckos"] = map[string]string{"patch_registry_enabled": *tt.value}
			}
			g := NewGate(settings.New(sections))
			assert.Equal(t, tt.want, g.Active())
		})
	}
}

func TestGateIgnoresOtherSections(t *testing.T) {
	st := settings.New(map[string]map[string]string{
		"other": {"patch_registry_enabled": "false"},
	})
	assert.True(t, NewGate(st).Active())
}

func TestGateCapturesValue(t *testing.T) {
	st := &mutableSettings{value: "true"}
	g := NewGate(st)

	st.value = "false"
	assert.True(t, g.Active(), "gate must not re-read settings")
}

func TestStaticGate(t *testing.T) {
	assert.True(t, StaticGate(true).Active())
	assert.False(t, StaticGate(false).Active())
}

type mutableSettings struct {
	value string
}

func (m *mutableSettings) Get(section, key string) (string, bool) {
	return m.value, true
}

func ptr(s string) *string {
	return &s
}
