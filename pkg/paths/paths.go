package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"github.com/fluffis/invoicehandler/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigPath overrides the location of the configuration file
	EnvConfigPath = "INVOICEHANDLER_CONFIG"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for invoicehandler-specific files
	AppDirName = "invoicehandler"

	// ConfigFileName is the configuration file name inside the XDG config dir
	ConfigFileName = "config.toml"

	// LinuxConfigFileName is the dotfile used as the configuration on Linux
	LinuxConfigFileName = ".invoicehandler"
)

// ConfigPath resolves the configuration file location using the following priority:
// 1. explicit path (from the --config flag)
// 2. INVOICEHANDLER_CONFIG environment variable
// 3. the platform default (see DefaultConfigPath)
//
// The returned path is normalized.
func ConfigPath(explicit string) (string, error) {
	if explicit != "" {
		return NormalizePath(explicit)
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return NormalizePath(env)
	}
	def, err := DefaultConfigPath()
	if err != nil {
		return "", err
	}
	return NormalizePath(def)
}

// DefaultConfigPath returns the per-user configuration file for this platform.
// Linux uses ~/.invoicehandler, every other platform uses
// $XDG_CONFIG_HOME/invoicehandler/config.toml.
func DefaultConfigPath() (string, error) {
	return defaultConfigPathFor(runtime.GOOS)
}

func defaultConfigPathFor(goos string) (string, error) {
	if goos == "linux" {
		home, err := GetHomeDirectory()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, LinuxConfigFileName), nil
	}
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName), nil
}

// NormalizePath normalizes a path by expanding home, making it absolute,
// and cleaning it. Symlinks are not resolved and case is preserved.
func NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	abs, err := filepath.Abs(expandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", path)
	}

	return filepath.Clean(abs), nil
}

// SamePath reports whether a and b normalize to the same absolute path.
// Paths that cannot be normalized never compare equal.
func SamePath(a, b string) bool {
	na, err := NormalizePath(a)
	if err != nil {
		return false
	}
	nb, err := NormalizePath(b)
	if err != nil {
		return false
	}
	return na == nb
}

// ResolveRelative expands ~ in path and, if the result is still relative,
// joins it onto base.
func ResolveRelative(base, path string) string {
	expanded := expandHome(path)
	if expanded == "" || filepath.IsAbs(expanded) {
		return expanded
	}
	return filepath.Join(base, expanded)
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment variable.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	if homeDir = os.Getenv(EnvHome); homeDir != "" {
		return homeDir, nil
	}

	return "", errors.New(errors.ErrFileAccess, "unable to determine home directory: neither os.UserHomeDir() nor HOME environment variable are available")
}
