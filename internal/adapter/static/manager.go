package static

import (
	"context"
	"fmt"
	"net"
	"strings"

	"golang-netcfg/internal/pkg/logging"
	"golang-netcfg/internal/pkg/privilege"
	"golang-netcfg/internal/port"
	"golang-netcfg/internal/types"
)

// Manager is a static IP network configuration adapter that implements the StaticConfigurator port.
// It assigns a fixed address through `netsh interface ip set address ... static`.
type Manager struct {
	runner port.CommandRunner
}

// Ensure Manager implements the StaticConfigurator port
var _ port.StaticConfigurator = (*Manager)(nil)

// NewManager creates a new static IP network configuration adapter.
func NewManager(runner port.CommandRunner) *Manager {
	return &Manager{runner: runner}
}

// SetStaticAddress assigns config to interfaceName. All four values are trimmed
// and must be non-empty; otherwise nothing is run.
func (m *Manager) SetStaticAddress(ctx context.Context, interfaceName string, config types.StaticIPConfig) error {
	interfaceName = strings.TrimSpace(interfaceName)
	config = config.Trimmed()
	if interfaceName == "" || config.IPAddress == "" || config.Netmask == "" || config.Gateway == "" {
		return types.InvalidInput("all parameters must be provided")
	}

	logger := logging.WithComponentAndInterface("static", interfaceName)
	privilege.WarnIfNotElevated(logger)

	// netsh is the authority on what it accepts; a malformed value only warns here.
	if err := validateConfig(config); err != nil {
		logger.WithError(err).Warn("Static parameters do not look like IPv4, passing them to netsh anyway")
	}

	logger.WithFields(map[string]interface{}{
		"ip":      config.IPAddress,
		"netmask": config.Netmask,
		"gateway": config.Gateway,
	}).Debug("Setting static address")

	result, err := m.runner.Run(ctx, "netsh", "interface", "ip", "set", "address",
		interfaceName, "static", config.IPAddress, config.Netmask, config.Gateway)
	if err != nil {
		return err
	}

	if !result.Success() {
		logger.WithField("exit_code", result.ExitCode).Debug("netsh rejected static address")
		return &types.CommandError{
			Op:        types.OpSetStatic,
			Interface: interfaceName,
			ExitCode:  result.ExitCode,
			Stderr:    result.Stderr,
		}
	}

	logger.Info("Static address set")
	return nil
}

// validateConfig checks that address, mask and gateway are dotted IPv4 values.
func validateConfig(config types.StaticIPConfig) error {
	ip := net.ParseIP(config.IPAddress)
	if ip == nil {
		return fmt.Errorf("invalid IP address: %s", config.IPAddress)
	}
	if ip.To4() == nil {
		return fmt.Errorf("only IPv4 addresses are supported: %s", config.IPAddress)
	}

	mask := net.ParseIP(config.Netmask)
	if mask == nil {
		return fmt.Errorf("invalid netmask: %s", config.Netmask)
	}
	if mask.To4() == nil {
		return fmt.Errorf("only IPv4 netmasks are supported: %s", config.Netmask)
	}
	if ones, bits := net.IPMask(mask.To4()).Size(); ones == 0 && bits == 0 {
		return fmt.Errorf("netmask is not contiguous: %s", config.Netmask)
	}

	gw := net.ParseIP(config.Gateway)
	if gw == nil {
		return fmt.Errorf("invalid gateway address: %s", config.Gateway)
	}
	if gw.To4() == nil {
		return fmt.Errorf("only IPv4 gateway addresses are supported: %s", config.Gateway)
	}

	return nil
}
