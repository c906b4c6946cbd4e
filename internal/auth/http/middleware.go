// Package http provides HTTP middleware and handlers for authentication.
package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/employees/internal/auth/domain"
	authService "github.com/allisson/employees/internal/auth/service"
	"github.com/allisson/employees/internal/httputil"
)

// AuthenticationMiddleware guards protected routes via a Bearer token in the
// Authorization header.
//
// The middleware:
// 1. Extracts the Bearer token from the Authorization header (case-insensitive)
// 2. Verifies the token signature and expiry via TokenService.Verify
// 3. Aborts with 401 on any failure, before any handler or store access
//
// Authorization header format: "Bearer <token>" (case-insensitive "bearer")
//
// Error handling:
//   - Missing Authorization header → 401 Unauthorized
//   - Malformed Authorization header → 401 Unauthorized
//   - Invalid or expired token → 401 Unauthorized
//
// The response body is identical for every failure; the specific condition is
// only visible in debug logs.
func AuthenticationMiddleware(
	tokenService authService.TokenService,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Extract Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, authDomain.ErrTokenMissing, logger)
			c.Abort()
			return
		}

		// Parse Bearer token (case-insensitive)
		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, authDomain.ErrTokenMissing, logger)
			c.Abort()
			return
		}

		plainToken := authHeader[len(bearerPrefix):]
		if plainToken == "" {
			logger.Debug("authentication failed: empty bearer token")
			httputil.HandleErrorGin(c, authDomain.ErrTokenMissing, logger)
			c.Abort()
			return
		}

		// Verify signature and expiry
		if err := tokenService.Verify(plainToken); err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		// Continue to next handler
		c.Next()
	}
}
