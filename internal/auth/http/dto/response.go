// Package dto provides data transfer objects for the auth HTTP layer.
package dto

import "time"

// IssueTokenResponse contains the issued access token and its expiry.
type IssueTokenResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}
