// Package common defines shared constants and sentinel errors used across
// the taskboard layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Credential store errors.
	ErrorDuplicateUsername  = errors.New("username already exists")
	ErrorInvalidCredentials = errors.New("invalid username or password")

	// Session lifecycle errors.
	ErrorSessionExpired = errors.New("session expired")
	ErrInvalidToken     = errors.New("invalid token")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")
)
