package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/allisson/employees/internal/auth/domain"
	apperrors "github.com/allisson/employees/internal/errors"
)

// tokenSubject is the fixed subject claim. The service does not model
// per-user identity; a valid signature and a fresh expiry are the whole claim.
const tokenSubject = "admin"

// jwtTokenService implements TokenService using HMAC-SHA256 signed JWTs.
type jwtTokenService struct {
	secretKey  []byte
	expiration time.Duration
}

// NewTokenService creates a TokenService signing tokens with the given secret
// key and expiring them after the given duration. The key is read once at
// construction and never rotated during the process lifetime.
func NewTokenService(secretKey string, expiration time.Duration) TokenService {
	return &jwtTokenService{
		secretKey:  []byte(secretKey),
		expiration: expiration,
	}
}

// Issue creates a new HS256-signed token with iat/exp claims and a unique jti.
func (t *jwtTokenService) Issue() (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(t.expiration)

	claims := jwt.RegisteredClaims{
		Subject:   tokenSubject,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secretKey)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign token")
	}

	return signed, expiresAt, nil
}

// Verify checks the token signature and expiry against the signing key.
func (t *jwtTokenService) Verify(tokenString string) error {
	_, err := jwt.Parse(
		tokenString,
		func(token *jwt.Token) (any, error) {
			return t.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return authDomain.ErrTokenExpired
		}
		return authDomain.ErrTokenInvalid
	}

	return nil
}
