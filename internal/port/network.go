// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"

	"macnetconfig/internal/types"
)

// NetworkConfigurationManager is the primary port for network configuration.
// It toggles a single network service between DHCP and a static address.
type NetworkConfigurationManager interface {
	// Detect queries the OS for the service's current configuration.
	Detect(ctx context.Context) (types.NetworkInfo, error)

	// Enable switches the service to a static address and returns it.
	Enable(ctx context.Context) (string, error)

	// Disable switches the service back to DHCP.
	Disable(ctx context.Context) error

	// GetServiceName returns the name of the network service managed by this manager.
	GetServiceName() string
}
