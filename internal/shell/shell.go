// Package shell implements the interactive menu: it reads one choice and the
// inputs that choice needs, runs the matching operation and reports the result.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang-netcfg/internal/pkg/logging"
	"golang-netcfg/internal/port"
	"golang-netcfg/internal/types"
)

const menu = `Choose an option:
1. List all IP addresses
2. Enable DHCP on an interface
3. Set a static IP address on an interface
`

const invalidChoice = "Invalid choice. Please select 1, 2, or 3."

// Prompts, in the order they are issued.
const (
	promptInterface = "Enter the interface name:"
	promptIP        = "Enter the IP address:"
	promptNetmask   = "Enter the subnet mask:"
	promptGateway   = "Enter the gateway:"
)

// ProgressFunc shows progress while a tool runs and returns the function that hides it.
type ProgressFunc func(message string) (stop func())

// Shell is the interactive front end. Expected output goes to out, failures
// and diagnostics go to errOut.
type Shell struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer

	lister   port.AddressLister
	dhcp     port.DHCPConfigurator
	static   port.StaticConfigurator
	progress ProgressFunc
}

// Option configures a Shell.
type Option func(*Shell)

// WithProgress installs a progress indicator around each external command.
func WithProgress(progress ProgressFunc) Option {
	return func(s *Shell) {
		if progress != nil {
			s.progress = progress
		}
	}
}

// New creates a shell reading from in and writing to out and errOut.
func New(in io.Reader, out, errOut io.Writer, lister port.AddressLister, dhcp port.DHCPConfigurator, static port.StaticConfigurator, opts ...Option) *Shell {
	s := &Shell{
		in:       bufio.NewReader(in),
		out:      out,
		errOut:   errOut,
		lister:   lister,
		dhcp:     dhcp,
		static:   static,
		progress: func(string) func() { return func() {} },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run prints the menu, reads one choice and performs it. An unknown choice is
// reported on errOut and is not an error.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprint(s.out, menu)

	choice, err := s.readLine()
	if err != nil {
		return err
	}
	logging.WithComponent("shell").WithField("choice", choice).Debug("Menu choice read")

	switch choice {
	case "1":
		fmt.Fprintln(s.out, "Listing all current IP addresses:")
		return s.ListAddresses(ctx)
	case "2":
		iface, err := s.prompt(promptInterface)
		if err != nil {
			return err
		}
		return s.EnableDHCP(ctx, iface)
	case "3":
		return s.runSetStatic(ctx)
	default:
		fmt.Fprintln(s.errOut, invalidChoice)
		return nil
	}
}

func (s *Shell) runSetStatic(ctx context.Context) error {
	var values [4]string
	for i, p := range []string{promptInterface, promptIP, promptNetmask, promptGateway} {
		v, err := s.prompt(p)
		if err != nil {
			return err
		}
		values[i] = v
	}

	return s.SetStaticAddress(ctx, values[0], types.StaticIPConfig{
		IPAddress: values[1],
		Netmask:   values[2],
		Gateway:   values[3],
	})
}

// ListAddresses prints the full IP configuration report.
func (s *Shell) ListAddresses(ctx context.Context) error {
	stop := s.progress("Reading IP configuration")
	out, err := s.lister.ListAddresses(ctx)
	stop()

	if err != nil {
		var cmdErr *types.CommandError
		if errors.As(err, &cmdErr) {
			fmt.Fprintln(s.errOut, "Failed to retrieve IP addresses.")
			fmt.Fprintf(s.errOut, "Standard Error: %s\n", cmdErr.Stderr)
		}
		return err
	}

	fmt.Fprintf(s.out, "%s\n", out)
	return nil
}

// EnableDHCP switches interfaceName to DHCP and says whether it already was.
func (s *Shell) EnableDHCP(ctx context.Context, interfaceName string) error {
	interfaceName = strings.TrimSpace(interfaceName)

	stop := s.progress("Enabling DHCP")
	status, err := s.dhcp.EnableDHCP(ctx, interfaceName)
	stop()

	if err != nil {
		s.reportCommandError(err, "Failed to enable DHCP on interface")
		return err
	}

	if status == types.DHCPAlreadyEnabled {
		fmt.Fprintf(s.out, "DHCP was already enabled on interface: %s\n", interfaceName)
	} else {
		fmt.Fprintf(s.out, "Successfully enabled DHCP on interface: %s\n", interfaceName)
	}
	return nil
}

// SetStaticAddress assigns a fixed address to interfaceName.
func (s *Shell) SetStaticAddress(ctx context.Context, interfaceName string, config types.StaticIPConfig) error {
	interfaceName = strings.TrimSpace(interfaceName)

	stop := s.progress("Setting static IP address")
	err := s.static.SetStaticAddress(ctx, interfaceName, config)
	stop()

	if err != nil {
		s.reportCommandError(err, "Failed to set static IP address on interface")
		return err
	}

	fmt.Fprintf(s.out, "Successfully set static IP address on interface: %s\n", interfaceName)
	return nil
}

// reportCommandError prints the fixed failure line and the tool's stderr.
// Invalid input and launch failures are left to the caller.
func (s *Shell) reportCommandError(err error, headline string) {
	var cmdErr *types.CommandError
	if !errors.As(err, &cmdErr) {
		return
	}
	fmt.Fprintf(s.errOut, "%s: %s\n", headline, cmdErr.Interface)
	fmt.Fprintf(s.errOut, "Error: %s\n", cmdErr.Stderr)
}

func (s *Shell) prompt(text string) (string, error) {
	fmt.Fprintln(s.out, text)
	return s.readLine()
}

// readLine returns the next line without surrounding whitespace. End of input
// reads as an empty line.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
