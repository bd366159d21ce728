// Package file provides file system operations adapter implementation.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"macnetconfig/internal/port"

	"github.com/google/renameio/v2"
)

// ManagerAdapter is an adapter that implements the FileManager port.
// Writes go through renameio so a crash never leaves a truncated file.
type ManagerAdapter struct{}

// Ensure ManagerAdapter implements the FileManager port
var _ port.FileManager = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new file manager adapter.
func NewManagerAdapter() *ManagerAdapter {
	return &ManagerAdapter{}
}

// ReadFile reads the contents of a file.
func (f *ManagerAdapter) ReadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return data, nil
}

// WriteFile atomically replaces filename with data.
func (f *ManagerAdapter) WriteFile(filename string, data []byte, perm fs.FileMode) error {
	if err := renameio.WriteFile(filename, data, perm); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// FileExists checks if a file exists.
func (f *ManagerAdapter) FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// MkdirAll creates path and any missing parents.
func (f *ManagerAdapter) MkdirAll(path string, perm fs.FileMode) error {
	if err := os.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// Remove deletes filename. A missing file is not an error.
func (f *ManagerAdapter) Remove(filename string) error {
	if err := os.Remove(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove file %s: %w", filename, err)
	}
	return nil
}
