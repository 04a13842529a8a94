// Package privilege reports whether the process may change network settings.
package privilege

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// ErrUnsupported is returned where the platform has no elevation concept we can query.
var ErrUnsupported = errors.New("elevation check not supported on this platform")

// checker is swapped in tests.
var checker = IsElevated

// WarnIfNotElevated logs at info when the process is known to lack
// administrator rights. netsh reports the failure itself, so this stays out of
// the default warn output. It never blocks the caller.
func WarnIfNotElevated(logger *logrus.Entry) {
	elevated, err := checker()
	if err != nil {
		logger.WithError(err).Debug("Could not determine process elevation")
		return
	}
	if !elevated {
		logger.Info("Process is not elevated, netsh usually requires administrator rights")
	}
}
