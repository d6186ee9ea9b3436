package main

import (
	"log/slog"
	"os"

	"github.com/buckos/patchd/internal"
	"github.com/buckos/patchd/internal/cli"
)

// The entry point for patchd.
//
// Initializes logging, displays startup information, and executes the root
// command. If any error occurs during execution, it exits with a non-zero code.
func main() {
	slog.SetDefault(logger())

	slog.Debug("build", "version", internal.VersionString())

	slog.Debug("patchd is running",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// Creates a logger seeded from build-time linker flags.
//
// The level is adjusted after flag parsing via cli.Execute.
func logger() *slog.Logger {
	return slog.New(internal.NewLogHandler(os.Stderr).WithGroup(internal.Name))
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
