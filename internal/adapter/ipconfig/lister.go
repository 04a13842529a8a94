// Package ipconfig implements the AddressLister port with the Windows ipconfig tool.
package ipconfig

import (
	"context"

	"golang-netcfg/internal/pkg/logging"
	"golang-netcfg/internal/port"
	"golang-netcfg/internal/types"
)

const tool = "ipconfig"

// Lister dumps the full host IP configuration.
type Lister struct {
	runner port.CommandRunner
}

// Ensure Lister implements the AddressLister port
var _ port.AddressLister = (*Lister)(nil)

// NewLister creates a new ipconfig-backed address lister.
func NewLister(runner port.CommandRunner) *Lister {
	return &Lister{runner: runner}
}

// ListAddresses runs `ipconfig /all` and returns its stdout untouched.
func (l *Lister) ListAddresses(ctx context.Context) ([]byte, error) {
	logger := logging.WithComponent("ipconfig")
	logger.Debug("Listing IP configuration")

	result, err := l.runner.Run(ctx, tool, "/all")
	if err != nil {
		return nil, err
	}

	if !result.Success() {
		logger.WithField("exit_code", result.ExitCode).Debug("ipconfig failed")
		return nil, &types.CommandError{
			Op:       types.OpListAddresses,
			ExitCode: result.ExitCode,
			Stderr:   result.Stderr,
		}
	}

	return result.Stdout, nil
}
