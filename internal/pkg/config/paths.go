package config

import (
	"errors"
	"os"
	"path/filepath"
)

// DefaultAppName names the per-user state directories.
const DefaultAppName = "MacNetConfig"

// ErrNoHome is returned when HOME is not set.
var ErrNoHome = errors.New("failed to read HOME")

func homeDir() (string, error) {
	home := os.Getenv("HOME")
	if home == "" {
		return "", ErrNoHome
	}

	return home, nil
}

// AppSupportDir returns $HOME/Library/Application Support/<appName>.
func AppSupportDir(appName string) (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, "Library", "Application Support", appName), nil
}

// DefaultConfigPath returns the config file used when --config is not given.
func DefaultConfigPath() (string, error) {
	dir, err := AppSupportDir(DefaultAppName)
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "config.yaml"), nil
}

// LogFilePath returns $HOME/Library/Logs/<appName>/<appName>.log.
func LogFilePath(appName string) (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, "Library", "Logs", appName, appName+".log"), nil
}

// LaunchAgentsDir returns $HOME/Library/LaunchAgents.
func LaunchAgentsDir() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, "Library", "LaunchAgents"), nil
}
