package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidEffect indicates that a transaction's type and account references
// do not describe a balance effect that can be applied. It is a validation error.
var ErrInvalidEffect = fmt.Errorf("%w: invalid transaction effect", ErrValidation)

// ErrInternal wraps unexpected failures in lower layers.
var ErrInternal = errors.New("internal error")

// Validationf builds a validation error carrying a client-facing message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// InvalidEffectf builds an ErrInvalidEffect carrying a client-facing message.
func InvalidEffectf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidEffect, fmt.Sprintf(format, args...))
}

// NotFoundf builds a not-found error naming the missing entity.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}
