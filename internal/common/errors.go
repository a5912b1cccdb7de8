// Package common defines shared constants and sentinel errors used across
// the Sweet Shop client layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository/backend-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal    = errors.New("internal error")
	ErrorUnavailable = errors.New("server unavailable")

	// Auth errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("not enough privileges")

	// Validation errors (client-side pre-checks and backend 400s).
	ErrorValidation = errors.New("validation error")

	// Purchase on an item with zero quantity.
	ErrorOutOfStock = errors.New("out of stock")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
