// Package common defines shared constants and sentinel errors used across
// the accountd layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrUserNotFound       = errors.New("user does not exist")
	ErrEmailAlreadyExists = errors.New("user with email already exists")

	// Service-level errors (generic/internal flow control).
	ErrInternal           = errors.New("internal error")
	ErrInvalidCredentials = errors.New("wrong credentials provided")
	ErrRegistrationFailed = errors.New("registration failed")

	// Crypto primitive errors.
	ErrHashingFailure = errors.New("password hashing failed")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
