// Package paths resolves the configuration and data directories used by the
// questions CLI.
package paths

import (
	"os"
	"path/filepath"
)

const appName = "questions"

// DefaultDataDirName is the data directory created under the working
// directory when nothing else names one.
const DefaultDataDirName = ".questions-db"

// Environment overrides.
const (
	EnvConfigDir = "QUESTIONS_CONFIG_DIR"
	EnvDataDir   = "QUESTIONS_DATA_DIR"
)

// DefaultConfigDir returns the questions directory under the user config
// root: $XDG_CONFIG_HOME or ~/.config on Linux, ~/Library/Application
// Support on macOS, %AppData% on Windows.
func DefaultConfigDir() (string, error) {
	root, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, appName), nil
}

// ResolveConfigDir picks --config-dir, then QUESTIONS_CONFIG_DIR, then
// DefaultConfigDir.
func ResolveConfigDir(flag string) (string, error) {
	if dir, ok, err := firstSet(flag, os.Getenv(EnvConfigDir)); ok {
		return dir, err
	}
	return DefaultConfigDir()
}

// ResolveDataDir picks --data-dir, then data_dir from config.yaml, then
// QUESTIONS_DATA_DIR, then DefaultDataDirName under the working directory.
func ResolveDataDir(flag, configValue string) (string, error) {
	if dir, ok, err := firstSet(flag, configValue, os.Getenv(EnvDataDir)); ok {
		return dir, err
	}
	return filepath.Abs(DefaultDataDirName)
}

// firstSet returns the first non-empty candidate as an absolute path. ok is
// false when every candidate is empty.
func firstSet(candidates ...string) (dir string, ok bool, err error) {
	for _, c := range candidates {
		if c != "" {
			dir, err = filepath.Abs(c)
			return dir, true, err
		}
	}
	return "", false, nil
}
