package build

import (
	"github.com/buckos/patchd/internal/recipe"
	"github.com/opencontainers/go-digest"
	specs "github.com/opencontainers/runtime-spec/specs-go"
)

// Build phases a plan may contain, in execution order.
const (
	PhasePrepare      = "src_prepare"
	PhasePreConfigure = "pre_configure"
	PhaseConfigure    = "src_configure"
)

// One build phase, ready to hand to an OCI runtime.
type Phase struct {
	Name    string        `json:"name" yaml:"name"`
	Process specs.Process `json:"process" yaml:"process"`
}

// Result of [Prepare].
type Plan struct {
	Package     string            `json:"package" yaml:"package"`                             // Package name.
	Overridden  bool              `json:"overridden" yaml:"overridden"`                       // Whether an override record was applied.
	Recipe      recipe.Recipe     `json:"recipe" yaml:"recipe"`                               // Merged recipe.
	Digest      digest.Digest     `json:"digest" yaml:"digest"`                               // Digest of the merged recipe.
	Patches     []string          `json:"patches,omitempty" yaml:"patches,omitempty"`         // Patches to apply before the first phase, in order.
	Phases      []Phase           `json:"phases,omitempty" yaml:"phases,omitempty"`           // Non-empty phases in execution order.
	Annotations map[string]string `json:"annotations,omitempty" yaml:"annotations,omitempty"` // OCI annotations describing the plan.
}

// Returns the phase with the given name.
func (p *Plan) Phase(name string) (Phase, bool) {
	for _, ph := range p.Phases {
		if ph.Name == name {
			return ph, true
		}
	}
	return Phase{}, false
}
