package settings

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/containerd/errdefs"
	"gopkg.in/yaml.v3"
)

// Immutable section/key/value settings table.
type Settings struct {
	sections map[string]map[string]string
}

// Creates settings from a section to key/value table. The table is copied.
func New(sections map[string]map[string]string) *Settings {
	s := &Settings{sections: make(map[string]map[string]string, len(sections))}
	for name, kv := range sections {
		s.sections[name] = maps.Clone(kv)
	}
	return s
}

// Returns the value of key in section and whether it is set.
//
// A nil receiver has no settings.
func (s *Settings) Get(section, key string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.sections[section][key]
	return v, ok
}

// Returns a copy of the key/value pairs in section.
func (s *Settings) Section(section string) map[string]string {
	if s == nil {
		return nil
	}
	return maps.Clone(s.sections[section])
}

// Returns the section names in sorted order.
func (s *Settings) Sections() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.sections))
}

// Returns new settings with the given "section.key=value" assignments applied
// on top of the receiver. Later assignments win.
func (s *Settings) With(assignments ...string) (*Settings, error) {
	out := New(nil)
	if s != nil {
		out = New(s.sections)
	}

	for _, a := range assignments {
		section, key, value, err := parseAssignment(a)
		if err != nil {
			return nil, err
		}
		if out.sections[section] == nil {
			out.sections[section] = make(map[string]string)
		}
		out.sections[section][key] = value
	}

	return out, nil
}

// Splits "section.key=value" into its parts.
//
// The section is everything before the last dot of the left-hand side, so
// sections may themselves contain dots (toolchain.rust.version).
func parseAssignment(a string) (section, key, value string, err error) {
	lhs, value, ok := strings.Cut(a, "=")
	if !ok {
		return "", "", "", fmt.Errorf("%w: %w: expected section.key=value, got %q", ErrSettings, errdefs.ErrInvalidArgument, a)
	}

	lhs = strings.TrimSpace(lhs)
	i := strings.LastIndexByte(lhs, '.')
	if i < 1 || i == len(lhs)-1 {
		return "", "", "", fmt.Errorf("%w: %w: expected section.key, got %q", ErrSettings, errdefs.ErrInvalidArgument, lhs)
	}

	return lhs[:i], lhs[i+1:], value, nil
}

// Reads settings from a YAML file.
//
// A missing file yields empty settings.
func Load(path string) (*Settings, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSettings, err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decodes YAML settings of the form:
//
//	buckos:
//	  patch_registry_enabled: "false"
//
// Scalar values of any YAML type are kept as their literal text, so an
// unquoted false reads as "false". Null values read as "".
func Decode(r io.Reader) (*Settings, error) {
	var raw map[string]map[string]yaml.Node
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %w: %w", ErrSettings, errdefs.ErrInvalidArgument, err)
	}

	sections := make(map[string]map[string]string, len(raw))
	for name, kv := range raw {
		sections[name] = make(map[string]string, len(kv))
		for key, node := range kv {
			if node.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: %w: %s.%s must be a scalar", ErrSettings, errdefs.ErrInvalidArgument, name, key)
			}
			if node.ShortTag() == "!!null" {
				sections[name][key] = ""
				continue
			}
			sections[name][key] = node.Value
		}
	}

	return &Settings{sections: sections}, nil
}
