package cmd

import (
	"context"
	"fmt"

	"macnetconfig/internal/adapter/allocator"
	"macnetconfig/internal/adapter/infrastructure/command"
	"macnetconfig/internal/adapter/infrastructure/file"
	"macnetconfig/internal/adapter/infrastructure/networksetup"
	"macnetconfig/internal/adapter/infrastructure/probe"
	"macnetconfig/internal/adapter/infrastructure/store"
	"macnetconfig/internal/adapter/toggle"
	"macnetconfig/internal/pkg/config"
	"macnetconfig/internal/pkg/logging"
	"macnetconfig/internal/port"
)

// createProber creates the liveness probe selected in the configuration.
func createProber(probeCfg config.ProbeConfig, runner port.CommandRunner) port.Prober {
	if probeCfg.Method == config.ProbeICMP {
		return probe.NewICMPProber(probeCfg.Timeout, probeCfg.Privileged)
	}
	return probe.NewExecProber(runner, probeCfg.Timeout)
}

// createNetworkConfigurationManager wires the toggle manager and its
// infrastructure adapters for the given configuration.
func createNetworkConfigurationManager(c *config.Config) (port.NetworkConfigurationManager, error) {
	subnet, err := c.SubnetPrefix()
	if err != nil {
		return nil, err
	}
	router, err := c.RouterAddr()
	if err != nil {
		return nil, err
	}

	runner := command.NewRunnerAdapter()
	prober := createProber(c.Probe, runner)

	alloc, err := allocator.New(subnet, router, prober, allocator.WithMaxAttempts(c.Probe.MaxAttempts))
	if err != nil {
		return nil, err
	}

	manager := toggle.NewManager(
		toggle.Settings{
			Service: c.Network.Service,
			Subnet:  subnet,
			Netmask: c.Network.Netmask,
			Router:  router,
		},
		networksetup.NewManagerAdapter(runner),
		prober,
		alloc,
		store.NewLastIPAdapter(store.AppSupportPath(c.State.AppName), file.NewManagerAdapter()),
	)

	logging.WithService(c.Network.Service).WithFields(map[string]interface{}{
		"subnet": subnet.String(),
		"router": router.String(),
		"probe":  c.Probe.Method,
	}).Debug("Created network configuration manager")

	return manager, nil
}

// warnUnknownService logs when the configured service is not known to the
// OS. Listing failures are only logged; the toggle reports real errors.
func warnUnknownService(ctx context.Context, networkMgr port.NetworkManager, service string) {
	logger := logging.WithService(service)

	services, err := networkMgr.ListServices(ctx)
	if err != nil {
		logger.WithError(err).Debug("Failed to list network services")
		return
	}
	if !networksetup.HasService(services, service) {
		logger.WithField("known", fmt.Sprintf("%q", services)).Warn("Configured network service does not exist")
	}
}
