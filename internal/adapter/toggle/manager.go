// Package toggle switches a network service between DHCP and a static
// address in a fixed subnet.
package toggle

import (
	"context"
	"fmt"
	"net/netip"

	"macnetconfig/internal/adapter/allocator"
	"macnetconfig/internal/pkg/logging"
	"macnetconfig/internal/port"
	"macnetconfig/internal/types"
)

// Settings describes the service and the static network it is switched to.
type Settings struct {
	Service string
	Subnet  netip.Prefix
	Netmask string
	Router  netip.Addr
}

// Manager is a network configuration adapter that implements the
// NetworkConfigurationManager port.
type Manager struct {
	settings   Settings
	networkMgr port.NetworkManager
	prober     port.Prober
	allocator  port.AddressAllocator
	store      port.LastIPStore
}

// Ensure Manager implements the NetworkConfigurationManager port
var _ port.NetworkConfigurationManager = (*Manager)(nil)

// NewManager creates a toggle manager.
func NewManager(settings Settings, networkMgr port.NetworkManager, prober port.Prober, alloc port.AddressAllocator, store port.LastIPStore) *Manager {
	return &Manager{
		settings:   settings,
		networkMgr: networkMgr,
		prober:     prober,
		allocator:  alloc,
		store:      store,
	}
}

// GetServiceName returns the name of the network service managed by this manager.
func (m *Manager) GetServiceName() string {
	return m.settings.Service
}

// Detect returns the service's current configuration.
func (m *Manager) Detect(ctx context.Context) (types.NetworkInfo, error) {
	return m.networkMgr.GetInfo(ctx, m.settings.Service)
}

// Enable switches the service to a static address and returns it. The last
// applied address is reused when it still belongs to the subnet and nobody
// answers on it; otherwise a fresh one is allocated. The address is
// persisted only after networksetup accepted it.
func (m *Manager) Enable(ctx context.Context) (string, error) {
	logger := logging.WithComponentAndService("toggle", m.settings.Service)

	ip, err := m.reusableLastIP(ctx)
	if err != nil {
		return "", err
	}

	if ip == "" {
		ip, err = m.allocator.Allocate(ctx)
		if err != nil {
			return "", err
		}
	}

	config := types.StaticIPConfig{
		IPAddress: ip,
		Netmask:   m.settings.Netmask,
		Gateway:   m.settings.Router.String(),
	}
	if err := m.networkMgr.SetManual(ctx, m.settings.Service, config); err != nil {
		return "", err
	}

	logger.WithFields(map[string]interface{}{
		"ip":      config.IPAddress,
		"netmask": config.Netmask,
		"router":  config.Gateway,
	}).Info("Static configuration applied")

	if err := m.store.Save(ip); err != nil {
		logger.WithError(err).Warn("Failed to remember applied address")
	}

	return ip, nil
}

// Disable switches the service back to DHCP.
func (m *Manager) Disable(ctx context.Context) error {
	if err := m.networkMgr.SetDHCP(ctx, m.settings.Service); err != nil {
		return err
	}

	logging.WithComponentAndService("toggle", m.settings.Service).Info("Reverted to DHCP")

	return nil
}

// reusableLastIP returns the persisted address if it may be applied again,
// or an empty string.
func (m *Manager) reusableLastIP(ctx context.Context) (string, error) {
	logger := logging.WithComponentAndService("toggle", m.settings.Service)

	last, err := m.store.Load()
	if err != nil {
		return "", err
	}
	if last == "" {
		return "", nil
	}

	addr, err := netip.ParseAddr(last)
	if err != nil || !allocator.IsCandidate(m.settings.Subnet, m.settings.Router, addr) {
		logger.WithField("ip", last).Info("Last address does not fit the subnet, allocating a new one")
		return "", nil
	}

	alive, err := m.prober.IsAlive(ctx, last)
	if err != nil {
		return "", fmt.Errorf("failed to probe %s: %w", last, err)
	}
	if alive {
		logger.WithField("ip", last).Info("Last address is taken, allocating a new one")
		return "", nil
	}

	logger.WithField("ip", last).Debug("Reusing last address")

	return last, nil
}
