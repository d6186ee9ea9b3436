package overrides

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/containerd/errdefs"
	"gopkg.in/yaml.v3"
)

// Valid environment variable names.
var envName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// On-disk layout of a registry file.
type registryFile struct {
	Packages map[string]Record `yaml:"packages"`
}

// Reads and validates a registry file.
//
// The file has a single top-level "packages" mapping:
//
//	packages:
//	  openssl:
//	    patches:
//	      - /srv/patches/openssl/0001-ca-bundle.patch
//	    env:
//	      SSL_CERT_FILE: /etc/ssl/corp.pem
//	    extra_configure_args: --openssldir=/etc/ssl
//
// A missing file is an empty registry, matching the default of no private
// overrides.
func LoadRegistry(path string) (*Registry, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewRegistry(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRegistry, err)
	}
	defer f.Close()

	reg, err := DecodeRegistry(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// Loads every file and layers them in the given order.
func LoadRegistries(paths ...string) (*Registry, error) {
	layers := make([]*Registry, 0, len(paths))
	for _, p := range paths {
		reg, err := LoadRegistry(p)
		if err != nil {
			return nil, err
		}
		layers = append(layers, reg)
	}
	return Layer(layers...), nil
}

// Decodes and validates a registry from YAML.
//
// This is where malformed tables are caught: unknown fields, wrongly typed
// values, empty package names, empty patch references and invalid
// environment variable names are all rejected with an error matching
// errdefs.ErrInvalidArgument.
func DecodeRegistry(r io.Reader) (*Registry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file registryFile
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, invalid("%v", err)
	}

	for _, name := range slices.Sorted(maps.Keys(file.Packages)) {
		if err := validate(name, file.Packages[name]); err != nil {
			return nil, err
		}
	}

	return NewRegistry(file.Packages), nil
}

// Checks a single record.
func validate(name string, rec Record) error {
	if strings.TrimSpace(name) == "" {
		return invalid("empty package name")
	}
	for i, p := range rec.Patches {
		if strings.TrimSpace(p) == "" {
			return invalid("package %q: patch %d is empty", name, i+1)
		}
	}
	for k := range rec.Env {
		if !envName.MatchString(k) {
			return invalid("package %q: invalid environment variable name %q", name, k)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrRegistry, errdefs.ErrInvalidArgument, fmt.Sprintf(format, args...))
}
