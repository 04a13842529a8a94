//go:build windows

package privilege

import "golang.org/x/sys/windows"

// IsElevated reports whether the current process token is elevated.
func IsElevated() (bool, error) {
	return windows.GetCurrentProcessToken().IsElevated(), nil
}
