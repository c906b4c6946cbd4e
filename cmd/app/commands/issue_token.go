package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/allisson/employees/internal/app"
	"github.com/allisson/employees/internal/config"
)

// tokenOutput is the JSON shape for the issue-token command.
type tokenOutput struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// RunIssueToken issues an access token and writes it to the command output.
// Useful for bootstrapping API access without calling the /token endpoint.
func RunIssueToken(format string, io IOTuple) error {
	cfg := config.Load()

	container := app.NewContainer(cfg)

	tokenService, err := container.TokenService()
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}

	token, expiresAt, err := tokenService.Issue()
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	switch format {
	case "json":
		encoder := json.NewEncoder(io.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(tokenOutput{AccessToken: token, ExpiresAt: expiresAt}); err != nil {
			return fmt.Errorf("failed to encode token output: %w", err)
		}
	case "text":
		fmt.Fprintf(io.Writer, "Access token: %s\n", token)
		fmt.Fprintf(io.Writer, "Expires at:   %s\n", expiresAt.Format(time.RFC3339))
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}

	return nil
}
