// Package impl contains the implementation of the application's business logic.
package impl

import (
	"bytes"
	"context"
	"image"
	"log/slog"
	"strconv"

	// Registered so image.DecodeConfig can read the dimensions of uploads.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"hydrate/config"
	deliverycontext "hydrate/internal/delivery/context"
	"hydrate/internal/domain/entity"
	domainerrors "hydrate/internal/domain/errors"
	"hydrate/internal/domain/repository"
	"hydrate/internal/domain/service"
	"hydrate/internal/usecase"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxPictureDimension bounds the width and height of uploaded profile pictures.
const maxPictureDimension = 512

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager      repository.TransactionManager
	hasher         service.PasswordHasher
	pictures       service.PictureStore
	defaultPicture string
	logger         *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Pictures  service.PictureStore
	Config    *config.Config `optional:"true"`
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:      params.TxManager,
		hasher:         params.Hasher,
		pictures:       params.Pictures,
		defaultPicture: defaultPictureFromConfig(params.Config),
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the account behind the authenticated identity.
func (srv *profileService) GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	srv.log(ctx).Debug("Getting profile", slog.Any("accountID", accountID))

	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AccountRepo().FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
			}

			return errors.Wrap(err, "failed to find account")
		}
		account = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return account, nil
}

// UpdateAccount runs exactly one branch of the account mutation workflow.
// Every branch is a complete transaction: either the single intended field
// changes and the commit succeeds, or nothing changes and a domain error is
// surfaced. No two branches execute for one submission.
func (srv *profileService) UpdateAccount(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateAccountInput) (*usecase.UpdateAccountOutput, error) {
	action, err := resolveAction(input)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Updating account", slog.Any("accountID", accountID), slog.String("action", string(action)))

	switch action {
	case usecase.ActionRename:
		return srv.rename(ctx, accountID, input)
	case usecase.ActionPicture:
		return srv.replacePicture(ctx, accountID, input)
	case usecase.ActionGoal:
		return srv.changeGoal(ctx, accountID, input)
	case usecase.ActionPassword:
		return srv.changePassword(ctx, accountID, input)
	case usecase.ActionDelete:
		return srv.deleteAccount(ctx, accountID, input)
	default:
		return nil, errors.Wrap(domainerrors.ErrUnknownAction, "unknown update action")
	}
}

// resolveAction picks the branch to run. An explicit Action wins; otherwise
// the branch is inferred from field presence in a fixed order, first match
// wins. A submission carrying fields for several branches therefore still
// runs exactly one.
func resolveAction(input *usecase.UpdateAccountInput) (usecase.UpdateAction, error) {
	if input.Action != "" {
		switch input.Action {
		case usecase.ActionRename, usecase.ActionPicture, usecase.ActionGoal,
			usecase.ActionPassword, usecase.ActionDelete:
			return input.Action, nil
		default:
			return "", errors.Wrap(domainerrors.ErrUnknownAction, "unknown update action")
		}
	}

	switch {
	case input.NewUsername != "" && input.VerifyPassword != "":
		return usecase.ActionRename, nil
	case input.Picture != nil:
		return usecase.ActionPicture, nil
	case input.NewGoal != nil:
		return usecase.ActionGoal, nil
	case input.OldPassword != "" && input.NewPassword != "":
		return usecase.ActionPassword, nil
	case input.DeletePassword != "" && input.ConfirmPassword != "":
		return usecase.ActionDelete, nil
	default:
		return "", errors.Wrap(domainerrors.ErrUnknownAction, "no recognizable update fields in submission")
	}
}

// rename verifies the account password, checks the new username for
// collisions against every other account, and persists the change.
// Renaming to the name the account already holds is a harmless no-op check.
func (srv *profileService) rename(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateAccountInput) (*usecase.UpdateAccountOutput, error) {
	if input.NewUsername == "" || input.VerifyPassword == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "new username and password confirmation are required")
	}

	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		found, err := findAccount(ctx, accountRepo, accountID)
		if err != nil {
			return err
		}

		if !srv.hasher.Check(input.VerifyPassword, found.PasswordHash) {
			return errors.Wrap(domainerrors.ErrIncorrectPassword, "password verification failed for rename")
		}

		holder, err := accountRepo.FindByUsername(ctx, input.NewUsername)
		if err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check username availability")
		}
		if holder != nil && holder.ID != found.ID {
			return errors.Wrap(domainerrors.ErrUsernameTaken, "username held by another account")
		}

		found.Username = input.NewUsername
		// The store's uniqueness constraint still backstops a concurrent claim.
		if err := accountRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to persist new username")
		}
		account = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Rename failed", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to rename account")
	}

	return &usecase.UpdateAccountOutput{Account: account}, nil
}

// replacePicture validates the upload, writes it to the picture store, and
// points the account at the new file. The file write and the database commit
// are not atomic; on a failed commit the freshly saved file is removed again.
func (srv *profileService) replacePicture(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateAccountInput) (*usecase.UpdateAccountOutput, error) {
	if input.Picture == nil || len(input.Picture.Data) == 0 {
		return nil, errors.Wrap(domainerrors.ErrNoFileSelected, "picture replacement without a file")
	}

	ext, err := sniffPictureExtension(input.Picture.Data)
	if err != nil {
		return nil, err
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(input.Picture.Data))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnsupportedPicture, "failed to decode image")
	}
	if cfg.Width > maxPictureDimension || cfg.Height > maxPictureDimension {
		return nil, errors.Wrapf(domainerrors.ErrPictureTooLarge, "image is %dx%d, limit is %dx%d",
			cfg.Width, cfg.Height, maxPictureDimension, maxPictureDimension)
	}

	savedPath, err := srv.pictures.Save(ctx, accountID, ext, input.Picture.Data)
	if err != nil {
		srv.log(ctx).Error("Failed to save picture", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to save picture")
	}

	var account *entity.Account
	var previousPath string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		found, err := findAccount(ctx, accountRepo, accountID)
		if err != nil {
			return err
		}

		previousPath = found.PicturePath
		found.PicturePath = savedPath
		if err := accountRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to persist picture path")
		}
		account = found

		return nil
	})

	if err != nil {
		// Compensating cleanup for the non-atomic file write.
		if removeErr := srv.pictures.Remove(ctx, savedPath); removeErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned picture", slog.String("path", savedPath), slog.Any("error", removeErr))
		}
		srv.log(ctx).Warn("Picture replacement failed", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to replace picture")
	}

	if previousPath != srv.defaultPicture && previousPath != savedPath {
		if removeErr := srv.pictures.Remove(ctx, previousPath); removeErr != nil {
			srv.log(ctx).Warn("Failed to remove replaced picture", slog.String("path", previousPath), slog.Any("error", removeErr))
		}
	}

	return &usecase.UpdateAccountOutput{Account: account}, nil
}

// changeGoal parses the submitted goal as an integer and overwrites the
// stored value. Any parseable integer is accepted, including zero and
// negative values.
func (srv *profileService) changeGoal(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateAccountInput) (*usecase.UpdateAccountOutput, error) {
	if input.NewGoal == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "goal value is required")
	}

	goal, err := strconv.Atoi(*input.NewGoal)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "goal must be an integer")
	}

	var account *entity.Account

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		found, err := findAccount(ctx, accountRepo, accountID)
		if err != nil {
			return err
		}

		found.WaterGoal = goal
		if err := accountRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to persist water goal")
		}
		account = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Goal change failed", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to change water goal")
	}

	return &usecase.UpdateAccountOutput{Account: account}, nil
}

// changePassword verifies the old password and overwrites the stored hash
// with a hash of the new one.
func (srv *profileService) changePassword(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateAccountInput) (*usecase.UpdateAccountOutput, error) {
	if input.OldPassword == "" || input.NewPassword == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "old and new passwords are required")
	}

	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		found, err := findAccount(ctx, accountRepo, accountID)
		if err != nil {
			return err
		}

		if !srv.hasher.Check(input.OldPassword, found.PasswordHash) {
			return errors.Wrap(domainerrors.ErrIncorrectPassword, "old password verification failed")
		}

		newHash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
		}

		found.PasswordHash = newHash
		if err := accountRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to persist new password hash")
		}
		account = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Password change failed", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to change password")
	}

	return &usecase.UpdateAccountOutput{Account: account}, nil
}

// deleteAccount hard-deletes the account after owner confirmation. The two
// confirmation fields must match before the password is ever checked. On
// success the account row and all of its sessions go away in one transaction.
func (srv *profileService) deleteAccount(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateAccountInput) (*usecase.UpdateAccountOutput, error) {
	if input.DeletePassword == "" || input.ConfirmPassword == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "password and confirmation are required")
	}
	if input.DeletePassword != input.ConfirmPassword {
		return nil, errors.Wrap(domainerrors.ErrPasswordMismatch, "confirmation does not match")
	}

	var picturePath string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		found, err := findAccount(ctx, accountRepo, accountID)
		if err != nil {
			return err
		}

		if !srv.hasher.Check(input.DeletePassword, found.PasswordHash) {
			return errors.Wrap(domainerrors.ErrIncorrectPassword, "password verification failed for deletion")
		}

		picturePath = found.PicturePath

		if err := accountRepo.Delete(ctx, found.ID); err != nil {
			return errors.Wrap(err, "failed to delete account row")
		}

		// Ending every session guarantees no identity outlives the row.
		if err := repoFactory.SessionRepo().DeleteByAccountID(ctx, found.ID); err != nil {
			return errors.Wrap(err, "failed to delete account sessions")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Account deletion failed", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to delete account")
	}

	if picturePath != "" && picturePath != srv.defaultPicture {
		if removeErr := srv.pictures.Remove(ctx, picturePath); removeErr != nil {
			srv.log(ctx).Warn("Failed to remove picture of deleted account", slog.String("path", picturePath), slog.Any("error", removeErr))
		}
	}

	srv.log(ctx).Info("Account deleted", slog.Any("accountID", accountID))

	return &usecase.UpdateAccountOutput{Deleted: true}, nil
}

// findAccount loads an account inside a transaction, mapping the repository
// error to the domain error.
func findAccount(ctx context.Context, accountRepo repository.AccountRepository, accountID uuid.UUID) (*entity.Account, error) {
	found, err := accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return found, nil
}

// sniffPictureExtension detects the upload's content type and returns the
// canonical file extension. Only raster formats the profile page can render
// are accepted.
func sniffPictureExtension(data []byte) (string, error) {
	detected := mimetype.Detect(data)

	switch {
	case detected.Is("image/png"):
		return ".png", nil
	case detected.Is("image/jpeg"):
		return ".jpg", nil
	case detected.Is("image/gif"):
		return ".gif", nil
	default:
		return "", errors.Wrapf(domainerrors.ErrUnsupportedPicture, "unsupported content type %s", detected.String())
	}
}
