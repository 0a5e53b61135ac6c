// Package common defines shared sentinel errors and small helpers used across
// the recipeapp server packages. Callers should use errors.Is to match these
// values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors. Every specific validation error wraps ErrorValidation.
	ErrorValidation       = errors.New("validation error")
	ErrorNoEmail          = fmt.Errorf("%w: no email provided", ErrorValidation)
	ErrorInvalidFilename  = fmt.Errorf("%w: filename has no extension", ErrorValidation)
	ErrorInvalidPrice     = fmt.Errorf("%w: invalid price", ErrorValidation)
	ErrorInvalidTime      = fmt.Errorf("%w: invalid time", ErrorValidation)
	ErrorEmptyName        = fmt.Errorf("%w: name is required", ErrorValidation)
	ErrorNoOwner          = fmt.Errorf("%w: owner is required", ErrorValidation)
	ErrorUnusablePassword = errors.New("unusable password")
)
