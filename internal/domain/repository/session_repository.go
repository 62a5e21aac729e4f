package repository

import (
	"context"
	"errors"

	"hydrate/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrSessionNotFound is returned when no session matches the lookup.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired is returned when a matching session exists but has expired.
	ErrSessionExpired = errors.New("session expired")
)

// SessionRepository defines the persistence operations backing the session authority.
type SessionRepository interface {
	// Create persists a new session, establishing a login.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a session by the hash of its refresh token.
	// Expired sessions are reported via ErrSessionExpired.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash removes a single session, ending that login.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteByAccountID removes every session of an account. Used when the
	// account itself is deleted so no identity survives the row.
	DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error

	// DeleteExpired removes all expired sessions.
	DeleteExpired(ctx context.Context) error
}
