// Package paths resolves the configuration directory, the storage file, and
// the data directory used for the lookup cache.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user configuration and data directories.
const AppName = "addressbook"

// DefaultStorageFileName is the CWD-relative storage file used when nothing
// else is configured.
const DefaultStorageFileName = "addressbook.xml"

// Environment variable names for overrides.
const (
	EnvConfigDir   = "ADDRESSBOOK_CONFIG_DIR"
	EnvStorageFile = "ADDRESSBOOK_FILE"
	EnvDataDir     = "ADDRESSBOOK_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/addressbook (fallback ~/.config/addressbook)
// macOS:   ~/Library/Application Support/addressbook
// Windows: %APPDATA%/addressbook
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		return xdgDir("XDG_CONFIG_HOME", ".config")
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName), nil
}

// DefaultDataDir returns the platform-specific default data directory.
//
// Linux:   $XDG_DATA_HOME/addressbook (fallback ~/.local/share/addressbook)
// macOS:   ~/Library/Application Support/addressbook
// Windows: %APPDATA%/addressbook
func DefaultDataDir() (string, error) {
	if runtime.GOOS == "linux" {
		return xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName), nil
}

func xdgDir(env, homeRel string) (string, error) {
	if xdg := os.Getenv(env); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, homeRel, AppName), nil
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > ADDRESSBOOK_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveStorageFile returns the storage file path following the precedence
// chain: flag > config.yaml file > ADDRESSBOOK_FILE env > $(CWD)/addressbook.xml.
// The extension is not checked here; the storage layer validates it.
func ResolveStorageFile(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvStorageFile); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultStorageFileName), nil
}

// ResolveDataDir returns the data directory following the precedence chain:
// config.yaml data_dir > ADDRESSBOOK_DATA_DIR env > DefaultDataDir().
func ResolveDataDir(configYAMLValue string) (string, error) {
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultDataDir()
}
