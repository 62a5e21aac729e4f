// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"hydrate/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to sign up a new account.
type RegisterInput struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

// RefreshInput defines the data required to refresh an access token.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutInput defines the data required to end a session.
type LogoutInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns the account and its freshly established session tokens.
type AuthOutput struct {
	Account      *entity.Account
	AccessToken  string
	RefreshToken string
}

// RefreshOutput returns the new access token. The refresh token is unchanged.
type RefreshOutput struct {
	AccessToken string `json:"access_token"`
}

// AccountUsecase defines the interface for signup and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
}
