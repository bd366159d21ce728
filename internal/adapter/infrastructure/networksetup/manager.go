// Package networksetup provides the macOS network service adapter, built on
// the networksetup command-line tool.
package networksetup

import (
	"context"
	"fmt"
	"slices"

	"macnetconfig/internal/pkg/logging"
	"macnetconfig/internal/port"
	"macnetconfig/internal/types"
)

// Binary is the name of the tool this adapter drives.
const Binary = "networksetup"

// ManagerAdapter is an adapter that implements the NetworkManager port by
// running networksetup.
type ManagerAdapter struct {
	runner port.CommandRunner
}

// Ensure ManagerAdapter implements the NetworkManager port
var _ port.NetworkManager = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new networksetup adapter.
func NewManagerAdapter(runner port.CommandRunner) *ManagerAdapter {
	return &ManagerAdapter{runner: runner}
}

// GetInfo returns the current IPv4 configuration of service.
func (m *ManagerAdapter) GetInfo(ctx context.Context, service string) (types.NetworkInfo, error) {
	out, err := m.runner.Output(ctx, Binary, "-getinfo", service)
	if err != nil {
		return types.NetworkInfo{}, fmt.Errorf("failed to get info for %s: %w", service, err)
	}

	info := ParseInfo(out)

	logging.WithComponentAndService("networksetup", service).WithFields(map[string]interface{}{
		"dhcp": info.IsDHCP,
		"ip":   info.IP,
	}).Debug("Read service configuration")

	return info, nil
}

// SetManual switches service to the given static configuration.
func (m *ManagerAdapter) SetManual(ctx context.Context, service string, config types.StaticIPConfig) error {
	err := m.runner.Run(ctx, Binary, "-setmanual", service, config.IPAddress, config.Netmask, config.Gateway)
	if err != nil {
		return fmt.Errorf("failed to set manual configuration on %s: %w", service, err)
	}

	return nil
}

// SetDHCP switches service back to DHCP.
func (m *ManagerAdapter) SetDHCP(ctx context.Context, service string) error {
	if err := m.runner.Run(ctx, Binary, "-setdhcp", service); err != nil {
		return fmt.Errorf("failed to set DHCP on %s: %w", service, err)
	}

	return nil
}

// ListServices returns all network service names, disabled ones included.
func (m *ManagerAdapter) ListServices(ctx context.Context) ([]string, error) {
	out, err := m.runner.Output(ctx, Binary, "-listallnetworkservices")
	if err != nil {
		return nil, fmt.Errorf("failed to list network services: %w", err)
	}

	return ParseServices(out), nil
}

// HasService reports whether service is one of the known network services.
func HasService(services []string, service string) bool {
	return slices.Contains(services, service)
}
