package capability

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNotImplemented_MatchesSentinel(t *testing.T) {
	err := NotImplemented("paypal.pay")

	assert.True(t, IsNotImplemented(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, "paypal.pay: not implemented", err.Error())
}

func TestIsNotFound_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("command: %w", errors.Wrapf(ErrNotFound, "employee %s", "42"))

	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotImplemented(err))
}
