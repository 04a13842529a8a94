// Package command provides the external process adapter implementation.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"golang-netcfg/internal/pkg/charset"
	"golang-netcfg/internal/pkg/logging"
	"golang-netcfg/internal/port"
	"golang-netcfg/internal/types"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"
)

// RunnerAdapter is an adapter that implements the CommandRunner port using os/exec.
type RunnerAdapter struct {
	encoding encoding.Encoding
}

// Ensure RunnerAdapter implements the CommandRunner port
var _ port.CommandRunner = (*RunnerAdapter)(nil)

// NewRunnerAdapter creates a new command runner adapter. A non-nil enc decodes
// captured stdout and stderr to UTF-8.
func NewRunnerAdapter(enc encoding.Encoding) *RunnerAdapter {
	return &RunnerAdapter{encoding: enc}
}

// Run starts the command, waits for it to exit and returns everything it wrote.
func (r *RunnerAdapter) Run(ctx context.Context, name string, args ...string) (*types.CommandResult, error) {
	logger := logging.WithComponent("exec").WithField("command", name)
	logger.WithField("args", args).Debug("Starting external command")

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := &types.CommandResult{}
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s interrupted: %w", name, ctxErr)
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("failed to run %s: %w", name, err)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	result.Stdout = r.decode(logger, stdout.Bytes())
	result.Stderr = r.decode(logger, stderr.Bytes())

	logger.WithFields(map[string]interface{}{
		"exit_code":    result.ExitCode,
		"stdout_bytes": len(result.Stdout),
		"stderr_bytes": len(result.Stderr),
	}).Debug("External command finished")

	return result, nil
}

func (r *RunnerAdapter) decode(logger *logrus.Entry, b []byte) []byte {
	out, err := charset.Decode(r.encoding, b)
	if err != nil {
		logger.Warn(err)
		return b
	}
	return out
}
