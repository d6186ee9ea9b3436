// Package settings holds the string-valued build settings read by patchd.
//
// Settings are addressed by section and key, mirroring the "section.key"
// form used on the command line (for example buckos.patch_registry_enabled).
// They are read from a YAML file of nested mappings and may be overridden by
// individual "section.key=value" assignments. A [Settings] value is
// immutable once built.
package settings
