package cli

import (
	"context"
	"os"

	"github.com/buckos/patchd/internal/build"
	"github.com/buckos/patchd/internal/client"
	"github.com/buckos/patchd/internal/overrides"
	"github.com/buckos/patchd/internal/protocol"
	"github.com/buckos/patchd/internal/recipe"
)

// Represents the 'patchd plan' command.
type PlanCmd struct {
	Package    string `arg:"" help:"Package name."`
	Recipe     string `help:"Recipe file (YAML). Without it the recipe is empty." placeholder:"PATH" type:"existingfile"`
	Workdir    string `help:"Working directory for every phase." placeholder:"DIR"`
	Shell      string `help:"Shell for phase scripts." default:"/bin/sh"`
	Configure  string `help:"Configure command." default:"./configure"`
	InheritEnv bool   `help:"Start from the current process environment."`
	Remote     bool   `help:"Ask the running daemon instead of loading the registry."`
}

// Executes the plan command.
//
// Prints the merged recipe and the rendered phases as JSON.
func (c *PlanCmd) Run(ctx context.Context) error {
	var r recipe.Recipe
	if c.Recipe != "" {
		var err error
		if r, err = recipe.Load(c.Recipe); err != nil {
			return err
		}
	}

	var baseEnv []string
	if c.InheritEnv {
		baseEnv = os.Environ()
	}

	var (
		plan *build.Plan
		err  error
	)

	if c.Remote {
		plan, err = client.New(socketPath()).Prepare(ctx, &protocol.PrepareRequest{
			Package:   c.Package,
			Recipe:    r,
			Shell:     c.Shell,
			Workdir:   c.Workdir,
			BaseEnv:   baseEnv,
			Configure: c.Configure,
		})
	} else {
		plan, err = c.prepareLocal(r, baseEnv)
	}
	if err != nil {
		return err
	}

	return writeJSON(os.Stdout, plan)
}

func (c *PlanCmd) prepareLocal(r recipe.Recipe, baseEnv []string) (*build.Plan, error) {
	snap, err := overrides.LoadSnapshot(sources())
	if err != nil {
		return nil, err
	}

	return build.Prepare(snap.Resolver, build.Options{
		Package:   c.Package,
		Recipe:    r,
		Shell:     c.Shell,
		Workdir:   c.Workdir,
		BaseEnv:   baseEnv,
		Configure: c.Configure,
	})
}
