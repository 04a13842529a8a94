// Package types defines common types used across the application.
package types

import "strings"

// StaticIPConfig holds the values passed to netsh for a static address.
// All three are required.
type StaticIPConfig struct {
	IPAddress string // dotted decimal, e.g. "192.168.1.100"
	Netmask   string // dotted decimal, e.g. "255.255.255.0"
	Gateway   string // default gateway, dotted decimal
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (c StaticIPConfig) Trimmed() StaticIPConfig {
	return StaticIPConfig{
		IPAddress: strings.TrimSpace(c.IPAddress),
		Netmask:   strings.TrimSpace(c.Netmask),
		Gateway:   strings.TrimSpace(c.Gateway),
	}
}

// CommandResult is the captured outcome of one external command invocation.
type CommandResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success reports whether the command exited with status zero.
func (r *CommandResult) Success() bool {
	return r != nil && r.ExitCode == 0
}

// DHCPStatus describes what enabling DHCP did to an interface.
type DHCPStatus int

const (
	// DHCPEnabled means the interface was switched to DHCP.
	DHCPEnabled DHCPStatus = iota
	// DHCPAlreadyEnabled means the tool reported DHCP was already on.
	DHCPAlreadyEnabled
)

func (s DHCPStatus) String() string {
	switch s {
	case DHCPEnabled:
		return "enabled"
	case DHCPAlreadyEnabled:
		return "already-enabled"
	default:
		return "unknown"
	}
}
