package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/employees/internal/auth/http/dto"
	authService "github.com/allisson/employees/internal/auth/service"
	"github.com/allisson/employees/internal/httputil"
)

// TokenHandler handles HTTP requests for token issuance.
type TokenHandler struct {
	tokenService authService.TokenService
	logger       *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(
	tokenService authService.TokenService,
	logger *slog.Logger,
) *TokenHandler {
	return &TokenHandler{
		tokenService: tokenService,
		logger:       logger,
	}
}

// IssueTokenHandler issues a new access token.
// POST /token - No authentication required (this is the authentication endpoint).
// Whether a caller may obtain a token is an external policy concern; the
// endpoint itself takes no credentials.
// Returns 200 OK with the token and expiration time.
func (h *TokenHandler) IssueTokenHandler(c *gin.Context) {
	token, expiresAt, err := h.tokenService.Issue()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.IssueTokenResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}

	c.JSON(http.StatusOK, response)
}
