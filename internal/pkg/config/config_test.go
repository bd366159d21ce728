//go:build unit

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("ValidConfig", func(t *testing.T) {
		configContent := `logging:
  level: debug
  format: simple

network:
  service: Ethernet
  subnet: 10.1.2.0/24
  router: 10.1.2.1

probe:
  method: icmp
  timeout: 500ms
`
		configFile := filepath.Join(tempDir, "valid.yml")
		err := os.WriteFile(configFile, []byte(configContent), 0644)
		require.NoError(t, err)

		config, err := Load(configFile)
		require.NoError(t, err)
		assert.Equal(t, "debug", config.Logging.Level)
		assert.Equal(t, "simple", config.Logging.Format)
		assert.Equal(t, "Ethernet", config.Network.Service)
		assert.Equal(t, "10.1.2.0/24", config.Network.Subnet)
		assert.Equal(t, "10.1.2.1", config.Network.Router)
		assert.Equal(t, ProbeICMP, config.Probe.Method)
		assert.Equal(t, 500*time.Millisecond, config.Probe.Timeout)

		// Unset keys keep their defaults
		assert.Equal(t, "255.255.255.0", config.Network.Netmask)
		assert.Equal(t, 100, config.Probe.MaxAttempts)
		assert.Equal(t, DefaultAppName, config.State.AppName)
		assert.NoError(t, config.Validate())
	})

	t.Run("NonExistentFile", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		configContent := `invalid: yaml: content: [
`
		configFile := filepath.Join(tempDir, "invalid.yml")
		err := os.WriteFile(configFile, []byte(configContent), 0644)
		require.NoError(t, err)

		_, err = Load(configFile)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("MissingFileYieldsDefaults", func(t *testing.T) {
		config, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), config)
	})

	t.Run("ParseErrorsStillReported", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("network: ["), 0644))

		_, err := LoadOrDefault(configFile)
		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		assert.NoError(t, Default().Validate())
	})

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"MissingService", func(c *Config) { c.Network.Service = " " }, "network service is required"},
		{"BadSubnet", func(c *Config) { c.Network.Subnet = "192.168.50" }, "invalid subnet"},
		{"NotSlash24", func(c *Config) { c.Network.Subnet = "10.0.0.0/16" }, "must be an IPv4 /24 network"},
		{"IPv6Subnet", func(c *Config) { c.Network.Subnet = "fd00::/24" }, "must be an IPv4 /24 network"},
		{"BadRouter", func(c *Config) { c.Network.Router = "router" }, "invalid router address"},
		{"RouterOutsideSubnet", func(c *Config) { c.Network.Router = "192.168.51.1" }, "outside subnet"},
		{"RouterIsBroadcast", func(c *Config) { c.Network.Router = "192.168.50.255" }, "network or broadcast"},
		{"BadNetmask", func(c *Config) { c.Network.Netmask = "255.0.255.0" }, "invalid netmask"},
		{"UnknownProbe", func(c *Config) { c.Probe.Method = "arp" }, "probe method must be"},
		{"ZeroTimeout", func(c *Config) { c.Probe.Timeout = 0 }, "probe timeout must be positive"},
		{"TooManyAttempts", func(c *Config) { c.Probe.MaxAttempts = 254 }, "max_attempts must be between"},
		{"NoAppName", func(c *Config) { c.State.AppName = "" }, "app_name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			tt.mutate(config)

			err := config.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_SubnetPrefix(t *testing.T) {
	config := Default()
	config.Network.Subnet = "192.168.50.77/24"

	prefix, err := config.SubnetPrefix()
	require.NoError(t, err)
	assert.Equal(t, "192.168.50.0/24", prefix.String())
}

func TestPaths(t *testing.T) {
	t.Run("UnderHome", func(t *testing.T) {
		t.Setenv("HOME", "/Users/alex")

		dir, err := AppSupportDir("MacNetConfig")
		require.NoError(t, err)
		assert.Equal(t, "/Users/alex/Library/Application Support/MacNetConfig", dir)

		logFile, err := LogFilePath("MacNetConfig")
		require.NoError(t, err)
		assert.Equal(t, "/Users/alex/Library/Logs/MacNetConfig/MacNetConfig.log", logFile)

		agents, err := LaunchAgentsDir()
		require.NoError(t, err)
		assert.Equal(t, "/Users/alex/Library/LaunchAgents", agents)
	})

	t.Run("MissingHome", func(t *testing.T) {
		t.Setenv("HOME", "")

		_, err := AppSupportDir("MacNetConfig")
		assert.ErrorIs(t, err, ErrNoHome)

		_, err = DefaultConfigPath()
		assert.ErrorIs(t, err, ErrNoHome)
	})
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("network:\n  service: Wi-Fi\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c *Config) {
			select {
			case changes <- c:
			default:
			}
		})
	}()

	// Give the watcher time to register before writing
	time.Sleep(100 * time.Millisecond)

	// Invalid change is skipped, the next valid one is delivered
	require.NoError(t, os.WriteFile(path, []byte("probe:\n  method: arp\n"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("network:\n  service: Ethernet\n"), 0644))

	// A truncating write can surface an intermediate empty file first
	timeout := time.After(5 * time.Second)
	for seen := false; !seen; {
		select {
		case c := <-changes:
			assert.NotEqual(t, "arp", c.Probe.Method)
			seen = c.Network.Service == "Ethernet"
		case <-timeout:
			t.Fatal("config change was not reported")
		}
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
