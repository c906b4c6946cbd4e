package app

import (
	"fmt"

	authService "github.com/allisson/employees/internal/auth/service"
)

// initTokenService creates the token service from the configured signing key.
func (c *Container) initTokenService() (authService.TokenService, error) {
	if c.config.AuthSecretKey == "" {
		return nil, fmt.Errorf("AUTH_SECRET_KEY is required")
	}

	if c.config.AuthTokenExpiration <= 0 {
		return nil, fmt.Errorf("AUTH_TOKEN_EXPIRATION_SECONDS must be positive")
	}

	return authService.NewTokenService(c.config.AuthSecretKey, c.config.AuthTokenExpiration), nil
}
