package recipe

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/containerd/errdefs"
	"gopkg.in/yaml.v3"
)

// Environment key that receives extra configure arguments when a recipe has
// no configure argument string of its own.
const EnvExtraConfigure = "EXTRA_ECONF"

// Build parameters for a single package.
type Recipe struct {
	Patches      []string          `json:"patches,omitempty" yaml:"patches,omitempty"`             // Patch references, applied in order.
	Env          map[string]string `json:"env,omitempty" yaml:"env,omitempty"`                     // Build environment.
	SrcPrepare   string            `json:"src_prepare,omitempty" yaml:"src_prepare,omitempty"`     // Prepare phase script.
	PreConfigure string            `json:"pre_configure,omitempty" yaml:"pre_configure,omitempty"` // Script run before configure.
	SrcConfigure string            `json:"src_configure,omitempty" yaml:"src_configure,omitempty"` // Configure argument string.
}

// Returns a deep copy of the recipe.
//
// Nil patch lists and environments stay nil so that a clone compares equal to
// its source with [Recipe.Equal] and reflect.DeepEqual alike.
func (r Recipe) Clone() Recipe {
	return Recipe{
		Patches:      slices.Clone(r.Patches),
		Env:          maps.Clone(r.Env),
		SrcPrepare:   r.SrcPrepare,
		PreConfigure: r.PreConfigure,
		SrcConfigure: r.SrcConfigure,
	}
}

// Reports whether two recipes describe the same build.
//
// An empty patch list equals a nil one, and likewise for the environment.
func (r Recipe) Equal(other Recipe) bool {
	return slices.Equal(r.Patches, other.Patches) &&
		maps.Equal(r.Env, other.Env) &&
		r.SrcPrepare == other.SrcPrepare &&
		r.PreConfigure == other.PreConfigure &&
		r.SrcConfigure == other.SrcConfigure
}

// Reads a recipe from a YAML file.
func Load(path string) (Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return Recipe{}, fmt.Errorf("%w: %w", ErrRecipe, err)
	}
	defer f.Close()

	r, err := Decode(f)
	if err != nil {
		return Recipe{}, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Decodes a YAML recipe. Unknown fields are rejected.
func Decode(rd io.Reader) (Recipe, error) {
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)

	var r Recipe
	if err := dec.Decode(&r); err != nil && err != io.EOF {
		return Recipe{}, fmt.Errorf("%w: %w: %w", ErrRecipe, errdefs.ErrInvalidArgument, err)
	}
	return r, nil
}
