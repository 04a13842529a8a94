// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"

	"golang-netcfg/internal/types"
)

// CommandRunner is a port for external process execution.
// This interface abstracts os/exec so adapters can be tested without the real tools.
type CommandRunner interface {
	// Run starts name with args, waits for it and captures stdout and stderr.
	// A process that starts and exits non-zero is reported through the result,
	// not through the error; the error is reserved for launch failures.
	Run(ctx context.Context, name string, args ...string) (*types.CommandResult, error)
}
