// Package domain defines authentication domain errors.
package domain

import (
	"github.com/allisson/employees/internal/errors"
)

// Token verification errors. All of them wrap ErrUnauthorized so the HTTP
// layer reports a uniform 401 without revealing which condition failed; the
// specific variant is only used for logging and tests.
var (
	// ErrTokenMissing indicates no bearer token was presented.
	ErrTokenMissing = errors.Wrap(errors.ErrUnauthorized, "authorization header missing")

	// ErrTokenInvalid indicates the token is malformed or its signature does not match.
	ErrTokenInvalid = errors.Wrap(errors.ErrUnauthorized, "token invalid")

	// ErrTokenExpired indicates the token expiry has elapsed.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token expired")
)
