// Package recipe defines the per-package build recipe descriptor.
//
// A [Recipe] carries the build parameters that private overrides may touch:
// the ordered patch list, the build environment, and three phase scripts
// (prepare, pre-configure, configure). Recipes are plain values. Callers own
// their construction; the overrides package produces merged copies and never
// mutates an input recipe.
//
// Recipes can be read from YAML for command line use:
//
//	patches:
//	  - files/0001-fix-locale.patch
//	env:
//	  CFLAGS: -O2
//	src_prepare: |
//	  sed -i 's/foo/bar/' Makefile
//	src_configure: --enable-shared
package recipe
