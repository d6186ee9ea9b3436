// Package overrides layers private, locally held customizations onto shared
// build recipes.
//
// An override [Record] names extra patches, environment entries, configure
// arguments and phase scripts for one package. Records live in an immutable
// [Registry] keyed by package name. A [Resolver] answers "what is the
// override for this package", honouring the [Gate]: when the
// buckos.patch_registry_enabled setting is exactly "false", every package
// resolves to no override regardless of registry contents.
//
// [Merge] folds a record into a recipe. Each field has a fixed policy:
//
//	patches               appended after the recipe's own patches
//	env                   override wins on key collision
//	pre_configure         appended after a newline
//	src_prepare           replaces the recipe's script
//	extra_configure_args  appended to src_configure, or to EXTRA_ECONF in
//	                      the merged env when src_configure is empty
//
// Merge is pure; it neither reads nor writes anything outside its arguments.
//
// A [Store] holds the current [Snapshot] for long-running processes and can
// reload it when the registry or settings files change:
//
//	store, err := overrides.NewStore(overrides.Sources{
//	    Settings:   "config.yaml",
//	    Registries: []string{"patches.yaml"},
//	})
//	if err != nil {
//	    return err
//	}
//
//	snap := store.Snapshot()
//	if rec, ok := snap.Resolver.Resolve("openssl"); ok {
//	    merged := overrides.Merge(base, &rec)
//	    ...
//	}
package overrides
