package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoHomeDir is returned when a default path needs the home directory and
// it cannot be determined.
var ErrNoHomeDir = errors.New("cannot determine home directory")

// GetDefaults returns application default paths. Environment variables take
// precedence over the home-directory defaults:
//   - CFPR_CONFIG_PATH: config file location (default: ~/.config/cfpr.toml)
//   - CFPR_HOME: base directory for cfpr data (default: ~/.local/share/cfpr)
//
// The record store is not among them: it always lives in the working
// directory unless the config says otherwise.
func GetDefaults() (map[string]string, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}

	baseDir, err := envOrHome("CFPR_HOME", ".local", "share", "cfpr")
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"config_path": configPath,
		"base_dir":    baseDir,
		"log_dir":     filepath.Join(baseDir, "log"),
	}, nil
}

// DefaultConfigPath returns $CFPR_CONFIG_PATH, else ~/.config/cfpr.toml.
func DefaultConfigPath() (string, error) {
	return envOrHome("CFPR_CONFIG_PATH", ".config", "cfpr.toml")
}

// envOrHome returns $env if set, else the given path under the home directory.
func envOrHome(env string, elems ...string) (string, error) {
	if path := os.Getenv(env); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoHomeDir, err)
	}
	return filepath.Join(append([]string{homeDir}, elems...)...), nil
}
