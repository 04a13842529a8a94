//go:build !windows

package privilege

// IsElevated always fails outside Windows.
func IsElevated() (bool, error) {
	return false, ErrUnsupported
}
