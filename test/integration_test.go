//go:build integration && darwin

package test

import (
	"context"
	"net/netip"
	"os/exec"
	"testing"
	"time"

	"macnetconfig/internal/adapter/infrastructure/command"
	"macnetconfig/internal/adapter/infrastructure/networksetup"
	"macnetconfig/internal/adapter/infrastructure/probe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests only read system state; switching a service needs admin
// rights and would disturb the machine running them.

func requireNetworksetup(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath(networksetup.Binary); err != nil {
		t.Skip("networksetup not available")
	}
}

func TestNetworksetupReadOnly(t *testing.T) {
	requireNetworksetup(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	adapter := networksetup.NewManagerAdapter(command.NewRunnerAdapter())

	services, err := adapter.ListServices(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, services, "expected at least one network service")

	for _, service := range services {
		t.Run(service, func(t *testing.T) {
			info, err := adapter.GetInfo(ctx, service)
			if err != nil {
				// Disabled services cannot be queried.
				t.Skipf("cannot query %s: %v", service, err)
			}

			if info.IP != "" {
				addr, err := netip.ParseAddr(info.IP)
				assert.NoError(t, err)
				assert.True(t, addr.Is4())
			}
		})
	}
}

func TestExecProberLoopback(t *testing.T) {
	prober := probe.NewExecProber(command.NewRunnerAdapter(), time.Second)

	alive, err := prober.IsAlive(context.Background(), "127.0.0.1")
	require.NoError(t, err)
	assert.True(t, alive)
}

func TestICMPProberLoopback(t *testing.T) {
	prober := probe.NewICMPProber(time.Second, false)

	alive, err := prober.IsAlive(context.Background(), "127.0.0.1")
	require.NoError(t, err)
	assert.True(t, alive)
}
