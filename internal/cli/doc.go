// Parses flags, configures logging and runs patchd commands.
//
// Global flags:
//
//	-q, --quiet            Suppress informational output.
//	-v, --verbose          Enable verbose output.
//	-d, --debug            Enable debug output.
//	-s, --socket           Unix socket path.
//	    --config           Settings file.
//	-r, --registry         Registry file; repeat to layer, later wins.
//	-c, --set              Override a setting, as section.key=value.
//
// Commands that only read the registry (resolve, plan, validate, toolchain)
// load it in-process. resolve and plan accept --remote to ask a running
// daemon instead. status, reload and stop always talk to the daemon.
//
// Flags override build-time defaults set via linker flags. After parsing, the
// global logger is reconfigured to reflect the final level and verbosity.
package cli
