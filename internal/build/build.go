package build

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/buckos/patchd/internal/overrides"
	"github.com/buckos/patchd/internal/recipe"
	"github.com/containerd/errdefs"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

const (

	// Shell used for phase scripts when none is given.
	defaultShell = "/bin/sh"

	// Configure command used when none is given.
	defaultConfigure = "./configure"

	// Annotation recording whether an override record was applied.
	AnnotationOverridden = "dev.buckos.patchd.overridden"
)

// Looks up override records by package name.
type Resolver interface {
	Resolve(name string) (overrides.Record, bool)
}

// Controls plan preparation.
type Options struct {
	Package   string        // Package name, used for the override lookup.
	Recipe    recipe.Recipe // The package's recipe before overrides.
	Shell     string        // Shell for phase scripts. Defaults to /bin/sh.
	Workdir   string        // Working directory for every phase.
	BaseEnv   []string      // Host environment as KEY=VALUE. Recipe entries win.
	Configure string        // Configure command. Defaults to ./configure.
}

// Resolves the package's overrides, merges them into the recipe and renders
// the result.
//
// A package without an override record, or with overrides disabled, gets a
// plan for its recipe unchanged.
func Prepare(res Resolver, opts Options) (*Plan, error) {
	if opts.Package == "" {
		return nil, fmt.Errorf("%w: %w: package name is required", ErrPlan, errdefs.ErrInvalidArgument)
	}
	if opts.Shell == "" {
		opts.Shell = defaultShell
	}
	if opts.Configure == "" {
		opts.Configure = defaultConfigure
	}

	var merged recipe.Recipe
	rec, ok := res.Resolve(opts.Package)
	if ok {
		merged = overrides.Merge(opts.Recipe, &rec)
		slog.Debug("override applied",
			"package", opts.Package,
			"patches", len(rec.Patches),
			"env", len(rec.Env),
		)
	} else {
		merged = overrides.Merge(opts.Recipe, nil)
	}

	dgst := merged.Digest()
	state := newPhaseState(opts, merged.Env)

	plan := &Plan{
		Package:    opts.Package,
		Overridden: ok,
		Recipe:     merged,
		Digest:     dgst,
		Patches:    merged.Clone().Patches,
		Phases:     state.phases(merged, opts.Configure),
		Annotations: map[string]string{
			ocispec.AnnotationTitle:    opts.Package,
			ocispec.AnnotationRevision: dgst.String(),
			AnnotationOverridden:       strconv.FormatBool(ok),
		},
	}

	slog.Debug("plan prepared",
		"package", plan.Package,
		"digest", plan.Digest,
		"phases", len(plan.Phases),
	)

	return plan, nil
}
