// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"hydrate/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateAction discriminates the mutually-exclusive intents of the account
// mutation workflow. Exactly one action runs per submission.
type UpdateAction string

const (
	ActionRename   UpdateAction = "rename"
	ActionPicture  UpdateAction = "picture"
	ActionGoal     UpdateAction = "goal"
	ActionPassword UpdateAction = "password"
	ActionDelete   UpdateAction = "delete"
)

// PictureUpload carries the raw bytes of an uploaded profile picture.
// A present but empty upload is distinguishable from an absent one.
type PictureUpload struct {
	Filename string
	Data     []byte
}

// UpdateAccountInput is the single-submission payload of the account
// mutation workflow. Action selects the branch explicitly; when empty,
// the branch is inferred from which optional fields are present, evaluated
// in a fixed order (rename, picture, goal, password, delete).
type UpdateAccountInput struct {
	Action UpdateAction

	// rename
	NewUsername    string
	VerifyPassword string

	// picture
	Picture *PictureUpload

	// goal (raw form value; parsed as integer by the service)
	NewGoal *string

	// password change
	OldPassword string
	NewPassword string

	// account deletion
	DeletePassword  string
	ConfirmPassword string
}

// UpdateAccountOutput reports the result of one mutation.
type UpdateAccountOutput struct {
	Account *entity.Account // Post-mutation state; nil when the account was deleted.
	Deleted bool            // True when the delete branch ran and every session was ended.
}

// ProfileUsecase defines the interface for profile retrieval and the
// account mutation workflow.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
	UpdateAccount(ctx context.Context, accountID uuid.UUID, input *UpdateAccountInput) (*UpdateAccountOutput, error)
}
