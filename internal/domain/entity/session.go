// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a long-lived, authorized login of an account.
// It is used to obtain a new access token after the old one expires,
// without requiring the account's credentials again.
type Session struct {
	ID        uuid.UUID // The unique ID for this session record.
	AccountID uuid.UUID // Links this session to the Account it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token for secure comparison in the database.
	ExpiresAt time.Time // The exact time when this session expires and becomes invalid.
	CreatedAt time.Time // Timestamp of when this session was created (i.e., when the account logged in).
}
