package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidation(t *testing.T) {
	err := Validation("Name and email are required")
	assert.EqualError(t, err, "Name and email are required")
	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
}

func TestNotFound(t *testing.T) {
	err := NotFound("Asset not found")
	assert.EqualError(t, err, "Asset not found")
	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
}

func TestStore(t *testing.T) {
	cause := errors.New("badger: closed")
	err := Store("Failed to fetch assets", cause)

	assert.EqualError(t, err, "Failed to fetch assets",
		"public message carries no internal detail")
	assert.ErrorIs(t, err, cause, "cause stays reachable for logging")

	se, ok := AsStore(err)
	require.True(t, ok)
	assert.Same(t, cause, se.Cause)
}

func TestTaxonomySurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", Validation("Valid amount is required"))
	assert.True(t, IsValidation(wrapped))

	se, ok := AsStore(fmt.Errorf("outer: %w", Store("Failed", errors.New("x"))))
	require.True(t, ok)
	assert.Equal(t, "Failed", se.Message)
}
