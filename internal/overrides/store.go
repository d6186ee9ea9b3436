package overrides

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/buckos/patchd/internal/settings"
	"github.com/buckos/patchd/internal/toolchain"
)

// Files a snapshot is built from.
type Sources struct {
	Settings    string   // Settings file. Empty means no file.
	Assignments []string // "section.key=value" assignments applied over the settings file.
	Registries  []string // Registry files, lowest precedence first.
}

// Consistent view of settings, gate, registry and toolchains for one build
// invocation. Nothing in a snapshot changes after it is created.
type Snapshot struct {
	Settings   *settings.Settings // Effective settings.
	Gate       Gate               // Gate derived from Settings.
	Registry   *Registry          // Layered registry.
	Resolver   *Resolver          // Resolver over Gate and Registry.
	Toolchains *toolchain.Set     // Toolchains declared in Settings.
	LoadedAt   time.Time          // When the snapshot was loaded.
}

// Builds a snapshot from the given sources.
func LoadSnapshot(src Sources) (*Snapshot, error) {
	st := settings.New(nil)
	if src.Settings != "" {
		var err error
		if st, err = settings.Load(src.Settings); err != nil {
			return nil, err
		}
	}

	st, err := st.With(src.Assignments...)
	if err != nil {
		return nil, err
	}

	reg, err := LoadRegistries(src.Registries...)
	if err != nil {
		return nil, err
	}

	tcs, err := toolchain.FromSettings(st)
	if err != nil {
		return nil, err
	}

	return NewSnapshot(st, reg, tcs), nil
}

// Assembles a snapshot from already loaded parts.
func NewSnapshot(st *settings.Settings, reg *Registry, tcs *toolchain.Set) *Snapshot {
	gate := NewGate(st)
	return &Snapshot{
		Settings:   st,
		Gate:       gate,
		Registry:   reg,
		Resolver:   NewResolver(gate, reg),
		Toolchains: tcs,
		LoadedAt:   time.Now(),
	}
}

// Holds the current snapshot and replaces it on reload.
//
// Readers call [Store.Snapshot] once per invocation and use that snapshot
// throughout, so a concurrent reload never mixes two registries within one
// resolution.
type Store struct {
	sources Sources
	current atomic.Pointer[Snapshot]
	mu      sync.Mutex // Serializes reloads.
}

// Creates a store and loads the initial snapshot.
func NewStore(src Sources) (*Store, error) {
	snap, err := LoadSnapshot(src)
	if err != nil {
		return nil, err
	}

	s := &Store{sources: src}
	s.current.Store(snap)
	return s, nil
}

// Returns the current snapshot.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Returns the files the store loads from.
func (s *Store) Sources() Sources {
	return s.sources
}

// Loads a fresh snapshot and makes it current.
//
// On failure the previous snapshot stays current and the error is returned.
func (s *Store) Reload() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := LoadSnapshot(s.sources)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReload, err)
	}

	s.current.Store(snap)

	slog.Info("override registry loaded",
		"packages", snap.Registry.Len(),
		"enabled", snap.Gate.Active(),
	)

	return snap, nil
}
