package overrides

import (
	"maps"
	"slices"

	"github.com/buckos/patchd/internal/recipe"
)

// Folds an override record into a recipe and returns the result.
//
// A nil record returns a copy equal to r. Fields are merged in a fixed order
// by independent policies; only the configure fallback depends on an earlier
// step, since it writes into the already merged environment. Neither r nor o
// is modified, and the result shares no slices or maps with them.
func Merge(r recipe.Recipe, o *Record) recipe.Recipe {
	if o == nil {
		return r.Clone()
	}

	out := recipe.Recipe{
		Patches:      mergePatches(r.Patches, o.Patches),
		Env:          mergeEnv(r.Env, o.Env),
		PreConfigure: mergePreConfigure(r.PreConfigure, o.PreConfigure),
		SrcPrepare:   mergeSrcPrepare(r.SrcPrepare, o.SrcPrepare),
	}
	out.SrcConfigure, out.Env = mergeConfigure(r.SrcConfigure, out.Env, o.ExtraConfigureArgs)

	return out
}

// Appends the override's patches after the existing ones.
func mergePatches(existing, extra []string) []string {
	if len(extra) == 0 {
		return slices.Clone(existing)
	}
	out := make([]string, 0, len(existing)+len(extra))
	out = append(out, existing...)
	return append(out, extra...)
}

// Overlays the override's environment; the override wins on collision.
func mergeEnv(existing, extra map[string]string) map[string]string {
	if len(extra) == 0 {
		return maps.Clone(existing)
	}
	out := make(map[string]string, len(existing)+len(extra))
	maps.Copy(out, existing)
	maps.Copy(out, extra)
	return out
}

// Appends the override's pre-configure script on a new line.
func mergePreConfigure(existing string, extra *string) string {
	if extra == nil || *extra == "" {
		return existing
	}
	return joinNonEmpty(existing, *extra, "\n")
}

// Replaces the prepare script when the override sets one.
func mergeSrcPrepare(existing string, replacement *string) string {
	if replacement == nil {
		return existing
	}
	return *replacement
}

// Appends extra configure arguments to the configure string.
//
// When the recipe has no configure string the arguments go to EXTRA_ECONF in
// env instead, appended to any value already there. env must be the merged
// environment; it is returned, copied only if it changes.
func mergeConfigure(existing string, env map[string]string, extra *string) (string, map[string]string) {
	if extra == nil || *extra == "" {
		return existing, env
	}

	if existing != "" {
		return existing + " " + *extra, env
	}

	out := make(map[string]string, len(env)+1)
	maps.Copy(out, env)
	out[recipe.EnvExtraConfigure] = joinNonEmpty(env[recipe.EnvExtraConfigure], *extra, " ")
	return existing, out
}

// Joins a and b with sep, or returns b alone when a is empty.
func joinNonEmpty(a, b, sep string) string {
	if a == "" {
		return b
	}
	return a + sep + b
}
