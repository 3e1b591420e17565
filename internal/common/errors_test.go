package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	wrapped := NewUserError("role must be admin or client", ErrUnknownRole)

	assert.ErrorIs(t, wrapped, ErrUnknownRole)
	assert.Contains(t, wrapped.Error(), "role must be admin or client")

	bare := NewUserError("something went wrong", nil)
	assert.Equal(t, "something went wrong", bare.Error())
}

func TestSetupLogger(t *testing.T) {
	assert.NoError(t, SetupLogger("info", "console"))
	assert.NoError(t, SetupLogger("debug", "json"))

	assert.ErrorIs(t, SetupLogger("verbose", "console"), ErrInvalidConfig)
	assert.ErrorIs(t, SetupLogger("info", "xml"), ErrInvalidConfig)
}
