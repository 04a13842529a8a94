package types

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a required value is empty. It is always
// detected before any external command is started.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInput wraps ErrInvalidInput with a human readable reason.
func InvalidInput(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrInvalidInput)
}

// Operation names the action a CommandError belongs to. The value completes
// the sentence "failed to ...".
type Operation string

const (
	OpListAddresses Operation = "retrieve IP addresses"
	OpEnableDHCP    Operation = "enable DHCP"
	OpSetStatic     Operation = "set static IP address"
)

// CommandError reports an external command that started but exited non-zero.
type CommandError struct {
	Op        Operation
	Interface string
	ExitCode  int
	Stderr    []byte
}

func (e *CommandError) Error() string {
	return "failed to " + string(e.Op)
}
