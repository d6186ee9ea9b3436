package build

import (
	"maps"
	"slices"
	"strings"

	"github.com/buckos/patchd/internal/recipe"
	specs "github.com/opencontainers/runtime-spec/specs-go"
)

// Execution context shared by every phase of one plan.
//
// Phases run with the same shell, working directory and environment. The
// environment is the host base environment overlaid with the merged recipe
// environment.
type phaseState struct {
	shell   string
	workdir string
	env     map[string]string
}

// Creates a [phaseState] from the options and the merged recipe environment.
func newPhaseState(opts Options, env map[string]string) *phaseState {
	s := &phaseState{
		shell:   opts.Shell,
		workdir: opts.Workdir,
		env:     make(map[string]string, len(opts.BaseEnv)+len(env)),
	}
	for _, entry := range opts.BaseEnv {
		if k, v, ok := strings.Cut(entry, "="); ok && k != "" {
			s.env[k] = v
		}
	}
	maps.Copy(s.env, env)
	return s
}

// Formats the environment as sorted "key=value" strings.
func (s *phaseState) environ() []string {
	env := make([]string, 0, len(s.env))
	for _, k := range slices.Sorted(maps.Keys(s.env)) {
		env = append(env, k+"="+s.env[k])
	}
	return env
}

// Returns the process that runs script through the shell.
func (s *phaseState) process(script string) specs.Process {
	return specs.Process{
		Args: []string{s.shell, "-c", script},
		Env:  s.environ(),
		Cwd:  s.workdir,
	}
}

// Renders the non-empty phases of the merged recipe in execution order.
//
// The configure phase runs the configure command with the recipe's configure
// arguments and, when set, $EXTRA_ECONF expanded by the shell. It is omitted
// when both are empty.
func (s *phaseState) phases(r recipe.Recipe, configure string) []Phase {
	var phases []Phase

	if r.SrcPrepare != "" {
		phases = append(phases, Phase{Name: PhasePrepare, Process: s.process(r.SrcPrepare)})
	}
	if r.PreConfigure != "" {
		phases = append(phases, Phase{Name: PhasePreConfigure, Process: s.process(r.PreConfigure)})
	}
	if cmd, ok := configureCommand(configure, r.SrcConfigure, s.env[recipe.EnvExtraConfigure]); ok {
		phases = append(phases, Phase{Name: PhaseConfigure, Process: s.process(cmd)})
	}

	return phases
}

// Builds the configure command line. Reports false when there is nothing to
// pass to configure.
func configureCommand(configure, args, extra string) (string, bool) {
	if args == "" && extra == "" {
		return "", false
	}

	parts := []string{configure}
	if args != "" {
		parts = append(parts, args)
	}
	if extra != "" {
		parts = append(parts, "$"+recipe.EnvExtraConfigure)
	}
	return strings.Join(parts, " "), true
}
