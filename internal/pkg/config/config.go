package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/netip"
	"os"
	"strings"
	"time"

	"macnetconfig/internal/pkg/logging"

	"gopkg.in/yaml.v3"
)

// Probe methods.
const (
	ProbeExec = "exec"
	ProbeICMP = "icmp"
)

// NetworkConfig describes the network service and the static subnet it is
// switched to.
type NetworkConfig struct {
	Service string `yaml:"service"`
	Subnet  string `yaml:"subnet"`
	Netmask string `yaml:"netmask"`
	Router  string `yaml:"router"`
}

// ProbeConfig configures host liveness checks
type ProbeConfig struct {
	Method      string        `yaml:"method"`
	Timeout     time.Duration `yaml:"timeout"`
	MaxAttempts int           `yaml:"max_attempts"`
	Privileged  bool          `yaml:"privileged"`
}

// StateConfig configures where state files live
type StateConfig struct {
	AppName string `yaml:"app_name"`
}

// Config represents the main configuration structure
type Config struct {
	Logging logging.LogConfig `yaml:"logging"`
	Network NetworkConfig     `yaml:"network"`
	Probe   ProbeConfig       `yaml:"probe"`
	State   StateConfig       `yaml:"state"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: logging.LogConfig{
			Level:  "info",
			Format: "text",
		},
		Network: NetworkConfig{
			Service: "Wi-Fi",
			Subnet:  "192.168.50.0/24",
			Netmask: "255.255.255.0",
			Router:  "192.168.50.222",
		},
		Probe: ProbeConfig{
			Method:      ProbeExec,
			Timeout:     time.Second,
			MaxAttempts: 100,
		},
		State: StateConfig{
			AppName: DefaultAppName,
		},
	}
}

// Load loads configuration from a YAML file on top of the defaults
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return config, nil
}

// LoadOrDefault is like Load but returns the defaults when the file does not
// exist.
func LoadOrDefault(configPath string) (*Config, error) {
	config, err := Load(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	return config, err
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Network.Service) == "" {
		return fmt.Errorf("network service is required")
	}

	subnet, err := c.SubnetPrefix()
	if err != nil {
		return err
	}

	router, err := c.RouterAddr()
	if err != nil {
		return err
	}
	if !subnet.Contains(router) {
		return fmt.Errorf("router %s is outside subnet %s", router, subnet)
	}
	if last := router.As4()[3]; last == 0 || last == 255 {
		return fmt.Errorf("router %s cannot be the network or broadcast address", router)
	}

	if err := validateNetmask(c.Network.Netmask); err != nil {
		return err
	}

	switch c.Probe.Method {
	case ProbeExec, ProbeICMP:
	default:
		return fmt.Errorf("probe method must be %q or %q, got %q", ProbeExec, ProbeICMP, c.Probe.Method)
	}
	if c.Probe.Timeout <= 0 {
		return fmt.Errorf("probe timeout must be positive")
	}
	if c.Probe.MaxAttempts < 1 || c.Probe.MaxAttempts > 253 {
		return fmt.Errorf("probe max_attempts must be between 1 and 253, got %d", c.Probe.MaxAttempts)
	}

	if strings.TrimSpace(c.State.AppName) == "" {
		return fmt.Errorf("state app_name is required")
	}

	return nil
}

// SubnetPrefix returns the configured subnet. Only IPv4 /24 networks are
// supported.
func (c *Config) SubnetPrefix() (netip.Prefix, error) {
	prefix, err := netip.ParsePrefix(c.Network.Subnet)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("invalid subnet %q: %w", c.Network.Subnet, err)
	}
	if !prefix.Addr().Is4() || prefix.Bits() != 24 {
		return netip.Prefix{}, fmt.Errorf("subnet %s must be an IPv4 /24 network", prefix)
	}

	return prefix.Masked(), nil
}

// RouterAddr returns the configured router address.
func (c *Config) RouterAddr() (netip.Addr, error) {
	router, err := netip.ParseAddr(c.Network.Router)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("invalid router address %q: %w", c.Network.Router, err)
	}
	if !router.Is4() {
		return netip.Addr{}, fmt.Errorf("router %s must be an IPv4 address", router)
	}

	return router, nil
}

func validateNetmask(netmask string) error {
	mask, err := netip.ParseAddr(netmask)
	if err != nil || !mask.Is4() {
		return fmt.Errorf("invalid netmask %q", netmask)
	}

	bits := mask.As4()
	v := uint32(bits[0])<<24 | uint32(bits[1])<<16 | uint32(bits[2])<<8 | uint32(bits[3])
	// Contiguous ones followed by zeros.
	if v != 0 && (^v)&(^v+1) != 0 {
		return fmt.Errorf("invalid netmask %q", netmask)
	}

	return nil
}
