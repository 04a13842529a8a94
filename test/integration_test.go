//go:build integration && windows
// +build integration,windows

package test

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// interfaceEnv names a DHCP-configured adapter the tests may reconfigure.
// Tests that change addressing are skipped when it is unset.
const interfaceEnv = "NETCFG_TEST_INTERFACE"

// TestNetcfgIntegration builds the binary and drives it against the real
// ipconfig and netsh tools.
func TestNetcfgIntegration(t *testing.T) {
	binary := buildBinary(t)

	t.Run("List_Prints_IP_Configuration", func(t *testing.T) {
		stdout, stderr, code := runBinary(t, binary, "", "list")
		if code != 0 {
			t.Fatalf("list exited with %d, stderr:\n%s", code, stderr)
		}
		if !strings.Contains(stdout, "Windows IP Configuration") {
			t.Errorf("Unexpected ipconfig output:\n%s", stdout)
		}
	})

	t.Run("Menu_Invalid_Choice_Exits_Cleanly", func(t *testing.T) {
		_, stderr, code := runBinary(t, binary, "9\n")
		if code != 0 {
			t.Fatalf("Expected exit 0, got %d", code)
		}
		if !strings.Contains(stderr, "Invalid choice. Please select 1, 2, or 3.") {
			t.Errorf("Missing invalid choice message, stderr:\n%s", stderr)
		}
	})

	t.Run("Menu_Blank_Interface_Fails", func(t *testing.T) {
		_, stderr, code := runBinary(t, binary, "2\n   \n")
		if code == 0 {
			t.Fatal("Expected non-zero exit for a blank interface name")
		}
		if !strings.Contains(stderr, "invalid input") {
			t.Errorf("Expected invalid input error, stderr:\n%s", stderr)
		}
	})

	t.Run("DHCP_Already_Enabled", func(t *testing.T) {
		iface := os.Getenv(interfaceEnv)
		if iface == "" {
			t.Skipf("%s not set", interfaceEnv)
		}

		stdout, stderr, code := runBinary(t, binary, "", "dhcp", iface)
		if code != 0 {
			t.Fatalf("dhcp exited with %d, stderr:\n%s", code, stderr)
		}
		t.Logf("dhcp output: %s", stdout)
		if !strings.Contains(stdout, "DHCP was already enabled on interface: "+iface) {
			t.Errorf("Expected already enabled message, got:\n%s", stdout)
		}
	})

	t.Run("DHCP_Unknown_Interface_Fails", func(t *testing.T) {
		_, stderr, code := runBinary(t, binary, "", "dhcp", "netcfg-no-such-interface")
		if code == 0 {
			t.Fatal("Expected non-zero exit for an unknown interface")
		}
		if !strings.Contains(stderr, "Failed to enable DHCP on interface: netcfg-no-such-interface") {
			t.Errorf("Missing failure line, stderr:\n%s", stderr)
		}
	})
}

// buildBinary compiles the project root into a temporary directory
func buildBinary(t *testing.T) string {
	t.Helper()

	binary := filepath.Join(t.TempDir(), "golang-netcfg.exe")
	cmd := exec.Command("go", "build", "-o", binary, ".")
	cmd.Dir = filepath.Join("..")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build binary: %v\n%s", err, out)
	}
	return binary
}

func runBinary(t *testing.T, binary, stdin string, args ...string) (string, string, int) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(binary, append([]string{"--config", filepath.Join("testdata", "config.yml")}, args...)...)
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return stdout.String(), stderr.String(), 0
	case errors.As(err, &exitErr):
		return stdout.String(), stderr.String(), exitErr.ExitCode()
	default:
		t.Fatalf("Failed to run binary: %v", err)
		return "", "", -1
	}
}
