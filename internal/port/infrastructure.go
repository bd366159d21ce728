// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"
	"io/fs"

	"macnetconfig/internal/types"
)

// CommandRunner is a port for running external commands.
type CommandRunner interface {
	// Output runs the command and returns its standard output.
	// A non-zero exit status is reported as a *types.CommandError.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)

	// Run runs the command and waits for it to exit.
	// A non-zero exit status is reported as a *types.CommandError.
	Run(ctx context.Context, name string, args ...string) error
}

// Prober is a port for host liveness checks.
type Prober interface {
	// IsAlive reports whether the host at ip answered a single probe.
	IsAlive(ctx context.Context, ip string) (bool, error)
}

// NetworkManager is a port for OS network service operations.
// On macOS this abstracts the networksetup tool.
type NetworkManager interface {
	// GetInfo returns the current IPv4 configuration of the service
	GetInfo(ctx context.Context, service string) (types.NetworkInfo, error)

	// SetManual switches the service to a static configuration
	SetManual(ctx context.Context, service string, config types.StaticIPConfig) error

	// SetDHCP switches the service back to DHCP
	SetDHCP(ctx context.Context, service string) error

	// ListServices returns the names of all network services
	ListServices(ctx context.Context) ([]string, error)
}

// AddressAllocator is a port for picking an unused address.
type AddressAllocator interface {
	Allocate(ctx context.Context) (string, error)
}

// LastIPStore is a port for the persisted last applied address.
type LastIPStore interface {
	// Load returns the stored address, or an empty string if there is none
	Load() (string, error)

	// Save replaces the stored address
	Save(ip string) error
}

// FileManager is a port for file system operations.
// This interface abstracts file read/write operations.
type FileManager interface {
	// ReadFile reads the contents of a file
	ReadFile(filename string) ([]byte, error)

	// WriteFile atomically replaces a file with data
	WriteFile(filename string, data []byte, perm fs.FileMode) error

	// FileExists checks if a file exists
	FileExists(filename string) bool

	// MkdirAll creates a directory along with any missing parents
	MkdirAll(path string, perm fs.FileMode) error

	// Remove deletes a file; a missing file is not an error
	Remove(filename string) error
}
