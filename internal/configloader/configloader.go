package configloader

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvConfig names the environment variable overriding the config file location.
const EnvConfig = "WINECHAD_CONFIG"

// AppName is the directory name used below the user and system config roots.
const AppName = "winechad"

// UserConfigDir returns $XDG_CONFIG_HOME/winechad, falling back to ~/.config/winechad.
func UserConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName), nil
}

// ResolveConfigPath returns the config path to load for the given filename.
// It checks, in order:
// 1. $WINECHAD_CONFIG if set (used verbatim, existence is checked by the loader)
// 2. $XDG_CONFIG_HOME/winechad/<file> or ~/.config/winechad/<file>
// 3. /etc/winechad/<file>
func ResolveConfigPath(file string) (string, error) {
	if env := os.Getenv(EnvConfig); env != "" {
		return env, nil
	}
	if dir, err := UserConfigDir(); err == nil {
		userPath := filepath.Join(dir, file)
		if _, err := os.Stat(userPath); err == nil {
			return userPath, nil
		}
	}
	systemPath := filepath.Join("/etc", AppName, file)
	if _, err := os.Stat(systemPath); err == nil {
		return systemPath, nil
	}
	return "", fmt.Errorf("no config found for %s (set %s to override)", file, EnvConfig)
}
