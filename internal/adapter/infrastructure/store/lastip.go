// Package store persists the last applied static address.
package store

import (
	"fmt"
	"path/filepath"
	"strings"

	"macnetconfig/internal/pkg/config"
	"macnetconfig/internal/port"
)

// FileName is the name of the state file inside the app support directory.
const FileName = "last_ip.txt"

// PathFunc resolves the location of the state file. It is called on every
// Load and Save so that a missing HOME only fails the operations that need
// the file.
type PathFunc func() (string, error)

// StaticPath returns a PathFunc for a fixed location.
func StaticPath(path string) PathFunc {
	return func() (string, error) { return path, nil }
}

// AppSupportPath returns a PathFunc for DefaultPath(appName).
func AppSupportPath(appName string) PathFunc {
	return func() (string, error) { return DefaultPath(appName) }
}

// LastIPAdapter is an adapter that implements the LastIPStore port with a
// single-line text file.
type LastIPAdapter struct {
	path    PathFunc
	fileMgr port.FileManager
}

// Ensure LastIPAdapter implements the LastIPStore port
var _ port.LastIPStore = (*LastIPAdapter)(nil)

// NewLastIPAdapter creates a store backed by the file that path resolves to.
func NewLastIPAdapter(path PathFunc, fileMgr port.FileManager) *LastIPAdapter {
	return &LastIPAdapter{
		path:    path,
		fileMgr: fileMgr,
	}
}

// DefaultPath returns $HOME/Library/Application Support/<appName>/last_ip.txt.
func DefaultPath(appName string) (string, error) {
	dir, err := config.AppSupportDir(appName)
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, FileName), nil
}

// Path returns the location of the state file.
func (s *LastIPAdapter) Path() (string, error) {
	return s.path()
}

// Load returns the stored address, or an empty string when the file is
// missing or blank.
func (s *LastIPAdapter) Load() (string, error) {
	path, err := s.path()
	if err != nil {
		return "", err
	}

	if !s.fileMgr.FileExists(path) {
		return "", nil
	}

	data, err := s.fileMgr.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read last ip: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

// Save replaces the stored address, creating parent directories as needed.
func (s *LastIPAdapter) Save(ip string) error {
	path, err := s.path()
	if err != nil {
		return err
	}

	if err := s.fileMgr.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	if err := s.fileMgr.WriteFile(path, []byte(strings.TrimSpace(ip)), 0644); err != nil {
		return fmt.Errorf("write last ip: %w", err)
	}

	return nil
}
