package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/buckos/patchd/internal"
	"github.com/buckos/patchd/internal/overrides"
	"github.com/buckos/patchd/internal/paths"
)

// Represents the root command for patchd.
var RootCmd struct {
	Quiet     bool         `short:"q" help:"Suppress informational output."`
	Verbose   bool         `short:"v" help:"Enable verbose output."`
	Debug     bool         `short:"d" help:"Enable debug output."`
	Socket    string       `short:"s" help:"Override the default Unix socket path." placeholder:"PATH"`
	Config    string       `help:"Settings file. Defaults to the user config directory." placeholder:"PATH" type:"path"`
	Registry  []string     `short:"r" sep:"none" help:"Override registry file. Repeat to layer files; later files win." placeholder:"PATH" type:"path"`
	Set       []string     `short:"c" sep:"none" help:"Override a setting, e.g. buckos.patch_registry_enabled=false." placeholder:"SECTION.KEY=VALUE"`
	Start     StartCmd     `cmd:"" help:"Start the daemon."`
	Resolve   ResolveCmd   `cmd:"" help:"Show the override record for a package."`
	Plan      PlanCmd      `cmd:"" help:"Merge overrides into a recipe and print the build plan."`
	Validate  ValidateCmd  `cmd:"" help:"Check the settings and registry files."`
	Toolchain ToolchainCmd `cmd:"" help:"Show a declared toolchain."`
	Status    StatusCmd    `cmd:"" help:"Show daemon status."`
	Reload    ReloadCmd    `cmd:"" help:"Ask the daemon to reload its files."`
	Stop      StopCmd      `cmd:"" help:"Ask the daemon to stop."`
	Version   VersionCmd   `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Private build-recipe overrides.\n\nLayers locally held patches, environment and configure flags onto shared recipes."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Configures the global logger based on CLI flags.
func configureLogger() {
	internal.SetDebug(RootCmd.Debug || internal.IsDebug())
	internal.SetQuiet(RootCmd.Quiet || internal.IsQuiet())
	internal.SetVerbose(RootCmd.Verbose || internal.IsVerbose())

	handler := internal.NewLogHandler(os.Stderr)
	slog.SetDefault(slog.New(handler.WithGroup(internal.Name)))
}

// Returns the files to load settings and overrides from.
func sources() overrides.Sources {
	settings := RootCmd.Config
	if settings == "" {
		settings = paths.Settings()
	}

	registries := RootCmd.Registry
	if len(registries) == 0 {
		registries = []string{paths.Registry()}
	}

	return overrides.Sources{
		Settings:    settings,
		Assignments: RootCmd.Set,
		Registries:  registries,
	}
}

// Returns the daemon socket path.
func socketPath() string {
	if RootCmd.Socket != "" {
		return RootCmd.Socket
	}
	return paths.Socket()
}
