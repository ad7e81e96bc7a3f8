package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidEffectIsValidation(t *testing.T) {
	err := InvalidEffectf("transfer accounts must be different")
	assert.True(t, errors.Is(err, ErrInvalidEffect))
	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "transfer accounts must be different")
}

func TestNotFoundf(t *testing.T) {
	err := NotFoundf("transaction %d", 42)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "resource not found: transaction 42", err.Error())
}
