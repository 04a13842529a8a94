//go:build unit

package spinner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStart(t *testing.T) {
	// Under go test stderr is not a terminal, so this must not block or panic.
	stop := Start("working")
	assert.NotNil(t, stop)
	stop()
	stop()
}

func TestDisabled(t *testing.T) {
	stop := Disabled("working")
	assert.NotNil(t, stop)
	stop()
}
