// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultWaterGoal is the daily water intake goal (in milliliters)
	// assigned to every newly created account.
	DefaultWaterGoal = 3000

	// DefaultPicturePath is the sentinel picture path assigned to accounts
	// that have not uploaded a profile picture yet.
	DefaultPicturePath = "default.png"
)

// Account is the sole aggregate of the system: one registered user of the
// water tracker. The ID is assigned at creation and never changes or gets
// reused; the username is unique across all accounts at all times.
type Account struct {
	ID           uuid.UUID // The unique, immutable identifier for the account.
	Username     string    // Unique login name, mutable through the rename workflow.
	PasswordHash string    // bcrypt hash of the password. Never stored or logged in plaintext.
	PicturePath  string    // Reference to the stored profile picture, defaults to DefaultPicturePath.
	WaterGoal    int       // Daily water intake goal in milliliters, defaults to DefaultWaterGoal.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// NewAccount builds an account with the creation-time defaults applied.
// The ID is left zero; the persistence layer assigns it on insert.
func NewAccount(username, passwordHash string) *Account {
	return &Account{
		Username:     username,
		PasswordHash: passwordHash,
		PicturePath:  DefaultPicturePath,
		WaterGoal:    DefaultWaterGoal,
	}
}
