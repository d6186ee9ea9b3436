// Package build turns a package's recipe into a build plan with private
// overrides applied.
//
// [Prepare] runs the override pipeline for one package: it asks the resolver
// for the package's override record, merges the record into the recipe, and
// renders the merged recipe into a [Plan]. The plan lists the patches to
// apply, in order, and one OCI process per non-empty build phase (prepare,
// pre-configure, configure), each a shell invocation with the merged
// environment. Executing the processes and applying the patches is left to
// the build engine that consumes the plan.
//
// Plans are content addressed: [Plan.Digest] is the digest of the merged
// recipe, so two invocations that merge to the same recipe share a cache
// key.
//
// Example usage:
//
//	snap := store.Snapshot()
//	plan, err := build.Prepare(snap.Resolver, build.Options{
//	    Package: "openssl",
//	    Recipe:  base,
//	    Workdir: "/var/tmp/build/openssl-3.3.1",
//	})
//	if err != nil {
//	    return err
//	}
//	for _, phase := range plan.Phases {
//	    run(phase.Process)
//	}
package build
