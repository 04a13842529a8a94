// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"

	"golang-netcfg/internal/types"
)

// AddressLister is the primary port for reading the host IP configuration.
type AddressLister interface {
	// ListAddresses returns the full IP configuration report exactly as the
	// underlying tool printed it.
	ListAddresses(ctx context.Context) ([]byte, error)
}

// DHCPConfigurator is the primary port for switching an interface to DHCP.
type DHCPConfigurator interface {
	// EnableDHCP switches the named interface to DHCP addressing and reports
	// whether it was already in that mode.
	EnableDHCP(ctx context.Context, interfaceName string) (types.DHCPStatus, error)
}

// StaticConfigurator is the primary port for assigning a fixed address.
type StaticConfigurator interface {
	// SetStaticAddress assigns address, mask and gateway to the named interface.
	SetStaticAddress(ctx context.Context, interfaceName string, config types.StaticIPConfig) error
}
