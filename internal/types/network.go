// Package types defines common types used across the application.
package types

import "fmt"

// NetworkInfo is a snapshot of a network service's IPv4 configuration as
// reported by the OS. It is derived fresh on every query and never persisted.
type NetworkInfo struct {
	IsDHCP bool   // true when the service obtains its address via DHCP
	IP     string // current IPv4 address, empty when none is assigned
	Mask   string // subnet mask, empty when unknown
	Router string // default gateway, empty when unknown
}

// StaticIPConfig represents static IP configuration parameters.
type StaticIPConfig struct {
	IPAddress string `yaml:"ip"`      // IP address in dotted decimal notation (e.g., "192.168.50.10")
	Netmask   string `yaml:"netmask"` // Subnet mask in dotted decimal notation (e.g., "255.255.255.0")
	Gateway   string `yaml:"gateway"` // Router address
}

// CommandError is returned when a subprocess ran but exited with a non-zero
// status.
type CommandError struct {
	Command  string
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
}
