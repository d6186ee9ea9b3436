package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	appName = "patchd"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the directory for runtime files (sockets, PIDs).
//
//	Linux:   $XDG_RUNTIME_DIR/patchd or ~/.cache/patchd/run
//	macOS:   ~/Library/Caches/patchd/run
func Runtime() string {
	if xdg.RuntimeDir != "" {
		return filepath.Join(xdg.RuntimeDir, appName)
	}
	return filepath.Join(xdg.CacheHome, appName, "run")
}

// Default path to the Unix domain socket.
//
//	Linux:   $XDG_RUNTIME_DIR/patchd/patchd.sock
//	macOS:   ~/Library/Caches/patchd/run/patchd.sock
func Socket() string {
	return filepath.Join(Runtime(), "patchd.sock")
}

// Default path to the PID file.
//
//	Linux:   $XDG_RUNTIME_DIR/patchd/patchd.pid
//	macOS:   ~/Library/Caches/patchd/run/patchd.pid
func PIDFile() string {
	return filepath.Join(Runtime(), "patchd.pid")
}

// Directory holding the settings and registry files.
//
//	Linux:   $XDG_CONFIG_HOME/patchd
//	macOS:   ~/Library/Application Support/patchd
func Config() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

// Default settings file.
func Settings() string {
	return filepath.Join(Config(), "config.yaml")
}

// Default private registry file.
func Registry() string {
	return filepath.Join(Config(), "patches.yaml")
}
