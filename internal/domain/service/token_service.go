package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenClaims carries the verified identity extracted from a token.
type TokenClaims struct {
	AccountID uuid.UUID // The account the token was issued to.
	TokenType string    // "access" or "refresh".
}

// TokenService defines the interface for issuing and verifying the tokens
// that bind an authenticated identity to subsequent requests.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for an account.
	GenerateTokens(accountID uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken verifies an access token and returns its claims.
	ValidateAccessToken(token string) (*TokenClaims, error)

	// ValidateRefreshToken verifies a refresh token and returns its claims.
	ValidateRefreshToken(token string) (*TokenClaims, error)

	// HashToken produces the stable hash under which a refresh token is persisted.
	HashToken(token string) string

	// RefreshTokenDuration returns the configured lifetime of refresh tokens.
	RefreshTokenDuration() time.Duration
}
