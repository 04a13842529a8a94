package dhcp

import (
	"context"
	"strings"

	"golang-netcfg/internal/pkg/logging"
	"golang-netcfg/internal/pkg/privilege"
	"golang-netcfg/internal/port"
	"golang-netcfg/internal/types"
)

// AlreadyEnabledMarker is the netsh message printed when the interface is already in DHCP mode.
// The match is a plain substring test and depends on the OS display language.
const AlreadyEnabledMarker = "DHCP is already enabled"

// Manager is a DHCP network configuration adapter that implements the DHCPConfigurator port.
// It switches an interface to DHCP addressing through `netsh interface ip set address`.
type Manager struct {
	runner port.CommandRunner
}

// Ensure Manager implements the DHCPConfigurator port
var _ port.DHCPConfigurator = (*Manager)(nil)

// NewManager creates a new DHCP network configuration adapter.
func NewManager(runner port.CommandRunner) *Manager {
	return &Manager{runner: runner}
}

// EnableDHCP switches interfaceName to DHCP. The name is trimmed first and an
// empty name is rejected without running anything.
func (m *Manager) EnableDHCP(ctx context.Context, interfaceName string) (types.DHCPStatus, error) {
	interfaceName = strings.TrimSpace(interfaceName)
	if interfaceName == "" {
		return types.DHCPEnabled, types.InvalidInput("interface name cannot be empty")
	}

	logger := logging.WithComponentAndInterface("dhcp", interfaceName)
	privilege.WarnIfNotElevated(logger)
	logger.Debug("Enabling DHCP")

	result, err := m.runner.Run(ctx, "netsh", "interface", "ip", "set", "address", interfaceName, "dhcp")
	if err != nil {
		return types.DHCPEnabled, err
	}

	if !result.Success() {
		logger.WithField("exit_code", result.ExitCode).Debug("netsh rejected DHCP change")
		return types.DHCPEnabled, &types.CommandError{
			Op:        types.OpEnableDHCP,
			Interface: interfaceName,
			ExitCode:  result.ExitCode,
			Stderr:    result.Stderr,
		}
	}

	if strings.Contains(string(result.Stdout), AlreadyEnabledMarker) {
		logger.Info("DHCP already enabled")
		return types.DHCPAlreadyEnabled, nil
	}

	logger.Info("DHCP enabled")
	return types.DHCPEnabled, nil
}
