package toolchain

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/containerd/errdefs"
)

const (

	// Prefix of settings sections that declare a toolchain, as in
	// "toolchain.rust".
	sectionPrefix = "toolchain."

	// Settings key holding the installation root.
	keyInstallRoot = "install_root"

	// Settings key holding the version string.
	keyVersion = "version"
)

// Names a toolchain family, such as "rust" or "go".
type Kind string

// Installation root and version of one toolchain. Read-only once created.
type Descriptor struct {
	installRoot string
	version     string
}

// Creates a descriptor.
func New(installRoot, version string) Descriptor {
	return Descriptor{installRoot: installRoot, version: version}
}

// Returns the directory the toolchain is installed under.
func (d Descriptor) InstallRoot() string {
	return d.installRoot
}

// Returns the toolchain version string.
func (d Descriptor) Version() string {
	return d.version
}

// Immutable table of descriptors keyed by kind.
type Set struct {
	descriptors map[Kind]Descriptor
}

// Creates a set from the given table. The table is copied.
func NewSet(descriptors map[Kind]Descriptor) *Set {
	return &Set{descriptors: maps.Clone(descriptors)}
}

// Returns the descriptor for kind.
//
// Unknown kinds yield an error matching errdefs.ErrNotFound.
func (s *Set) Get(kind Kind) (Descriptor, error) {
	if s != nil {
		if d, ok := s.descriptors[kind]; ok {
			return d, nil
		}
	}
	return Descriptor{}, fmt.Errorf("%w: %w: no %q toolchain", ErrToolchain, errdefs.ErrNotFound, kind)
}

// Returns the kinds present in the set, sorted.
func (s *Set) Kinds() []Kind {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.descriptors))
}

// Source of already materialized settings sections.
type SectionReader interface {
	Sections() []string
	Section(name string) map[string]string
}

// Builds a set from settings sections named "toolchain.<kind>".
//
// Each section must carry an install_root; the version may be empty. Nothing
// on disk is inspected.
func FromSettings(s SectionReader) (*Set, error) {
	descriptors := make(map[Kind]Descriptor)

	for _, name := range s.Sections() {
		kind, ok := strings.CutPrefix(name, sectionPrefix)
		if !ok {
			continue
		}

		kv := s.Section(name)
		if kind == "" || kv[keyInstallRoot] == "" {
			return nil, fmt.Errorf("%w: %w: section %q needs %s", ErrToolchain, errdefs.ErrInvalidArgument, name, keyInstallRoot)
		}

		descriptors[Kind(kind)] = New(kv[keyInstallRoot], kv[keyVersion])
	}

	return &Set{descriptors: descriptors}, nil
}
