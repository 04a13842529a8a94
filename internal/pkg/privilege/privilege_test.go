//go:build unit

package privilege

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestEntry(buf *bytes.Buffer) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetLevel(logrus.DebugLevel)
	return logrus.NewEntry(logger)
}

func withChecker(t *testing.T, fn func() (bool, error)) {
	t.Helper()
	saved := checker
	checker = fn
	t.Cleanup(func() { checker = saved })
}

func TestWarnIfNotElevated(t *testing.T) {
	t.Run("NotElevated", func(t *testing.T) {
		withChecker(t, func() (bool, error) { return false, nil })
		var buf bytes.Buffer

		WarnIfNotElevated(newTestEntry(&buf))
		assert.Contains(t, buf.String(), "level=info")
		assert.Contains(t, buf.String(), "administrator rights")
		assert.NotContains(t, buf.String(), "level=warning")
	})

	t.Run("Elevated", func(t *testing.T) {
		withChecker(t, func() (bool, error) { return true, nil })
		var buf bytes.Buffer

		WarnIfNotElevated(newTestEntry(&buf))
		assert.Empty(t, buf.String())
	})

	t.Run("CheckFailed", func(t *testing.T) {
		withChecker(t, func() (bool, error) { return false, errors.New("boom") })
		var buf bytes.Buffer

		WarnIfNotElevated(newTestEntry(&buf))
		assert.Contains(t, buf.String(), "level=debug")
		assert.NotContains(t, buf.String(), "level=warning")
	})
}
