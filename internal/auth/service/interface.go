// Package service provides technical services for authentication operations.
//
// This package implements the access token contract: stateless signed tokens
// with a fixed lifetime, verified without any token storage or revocation list.
package service

import "time"

// TokenService defines operations for access token issuance and verification.
// Implementations must be pure functions of the signing key and wall-clock
// time; tokens become invalid solely by expiring.
type TokenService interface {
	// Issue creates a new signed access token encoding the issuance time and
	// an expiry derived from the configured token lifetime.
	Issue() (token string, expiresAt time.Time, err error)

	// Verify checks the token signature and expiry.
	// Returns domain.ErrTokenInvalid if the signature does not match or the
	// token is malformed, domain.ErrTokenExpired if the expiry has elapsed,
	// and nil otherwise.
	Verify(token string) error
}
