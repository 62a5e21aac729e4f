package impl

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"log/slog"
	"testing"

	"hydrate/config"
	"hydrate/internal/domain/entity"
	domainerrors "hydrate/internal/domain/errors"
	"hydrate/internal/domain/repository"
	mockRepo "hydrate/internal/mocks/repository"
	mockSvc "hydrate/internal/mocks/service"
	"hydrate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	hasher    *mockSvc.MockPasswordHasher
	pictures  *mockSvc.MockPictureStore
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	pictures := mockSvc.NewMockPictureStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		Hasher:    hasher,
		Pictures:  pictures,
		Logger:    logger,
	})

	return profileServiceFixtures{
		service:   service,
		txManager: txManager,
		hasher:    hasher,
		pictures:  pictures,
	}
}

// expectTransaction wires the transaction manager to run the callback with a
// factory configured by setup. The transaction result is whatever the
// callback returns.
func expectTransaction(t *testing.T, fx profileServiceFixtures, ctx context.Context, setup func(accountRepo *mockRepo.MockAccountRepository, sessionRepo *mockRepo.MockSessionRepository)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo).Maybe()
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo).Maybe()

			setup(mockAccountRepo, mockSessionRepo)

			return fn(mockFactory)
		})
}

// pngBytes encodes a blank PNG of the given dimensions.
func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func testAccount(accountID uuid.UUID) *entity.Account {
	return &entity.Account{
		ID:           accountID,
		Username:     "alice",
		PasswordHash: "hashed_password",
		PicturePath:  entity.DefaultPicturePath,
		WaterGoal:    entity.DefaultWaterGoal,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := testAccount(accountID)

	expectTransaction(t, fx, ctx, func(accountRepo *mockRepo.MockAccountRepository, _ *mockRepo.MockSessionRepository) {
		accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
	})

	got, err := fx.service.GetProfile(ctx, accountID)

	require.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()

	expectTransaction(t, fx, ctx, func(accountRepo *mockRepo.MockAccountRepository, _ *mockRepo.MockSessionRepository) {
		accountRepo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)
	})

	got, err := fx.service.GetProfile(ctx, accountID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestProfileService_Rename_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := testAccount(accountID)
	input := &usecase.UpdateAccountInput{
		Action:         usecase.ActionRename,
		NewUsername:    "alice_renamed",
		VerifyPassword: "Password123!",
	}

	fx.hasher.EXPECT().Check(input.VerifyPassword, "hashed_password").Return(true)

	expectTransaction(t, fx, ctx, func(accountRepo *mockRepo.MockAccountRepository, _ *mockRepo.MockSessionRepository) {
		accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
		accountRepo.EXPECT().FindByUsername(ctx, "alice_renamed").Return(nil, repository.ErrAccountNotFound)
		accountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	})

	output, err := fx.service.UpdateAccount(ctx, accountID, input)

	require.NoError(t, err)
	assert.False(t, output.Deleted)
	assert.Equal(t, "alice_renamed", output.Account.Username)
}

func TestProfileService_Rename_WrongPassword(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := testAccount(accountID)
	input := &usecase.UpdateAccountInput{
		Action:         usecase.ActionRename,
		NewUsername:    "alice_renamed",
		VerifyPassword: "wrong-password",
	}

	fx.hasher.EXPECT().Check(input.VerifyPassword, "hashed_password").Return(false)

	expectTransaction(t, fx, ctx, func(accountRepo *mockRepo.MockAccountRepository, _ *mockRepo.MockSessionRepository) {
		accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
	})

	output, err := fx.service.UpdateAccount(ctx, accountID, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrIncorrectPassword)
}

func TestProfileService_Rename_UsernameTaken(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := testAccount(accountID)
	holder := &entity.Account{ID: uuid.New(), Username: "bob"}
	input := &usecase.UpdateAccountInput{
		Action:         usecase.ActionRename,
		NewUsername:    "bob",
		VerifyPassword: "Password123!",
	}

	fx.hasher.EXPECT().Check(input.VerifyPassword, "hashed_password").Return(true)

	expectTransaction(t, fx, ctx, func(accountRepo *mockRepo.MockAccountRepository, _ *mockRepo.MockSessionRepository) {
		accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
		accountRepo.EXPECT().FindByUsername(ctx, "bob").Return(holder, nil)
	})

	output, err := fx.service.UpdateAccount(ctx, accountID, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestProfileService_Rename_ToOwnName(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := testAccount(accountID)
	input := &usecase.UpdateAccountInput{
		Action:         usecase.ActionRename,
		NewUsername:    "alice",
		VerifyPassword: "Password123!",
	}

	fx.hasher.EXPECT().Check(input.VerifyPassword, "hashed_password").Return(true)

	expectTransaction(t, fx, ctx, func(accountRepo *mockRepo.MockAccountRepository, _ *mockRepo.MockSessionRepository) {
		accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
		// The collision probe finds the account itself, which is fine.
		accountRepo.EXPECT().FindByUsername(ctx, "alice").Return(account, nil)
		accountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	})

	output, err := fx.service.UpdateAccount(ctx, accountID, input)

	require.NoError(t, err)
	assert.Equal(t, "alice", output.Account.Username)
}

func TestProfileService_Picture_Accepted(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := testAccount(accountID)
	data := pngBytes(t, 400, 400)
	input := &usecase.UpdateAccountInput{
		Action:  usecase.ActionPicture,
		Picture: &usecase.PictureUpload{Filename: "avatar.png", Data: data},
	}

	fx.pictures.EXPECT().Save(ctx, accountID, ".png", data).Return("saved/avatar.png", nil)

	expectTransaction(t, fx, ctx, func(accountRepo *mockRepo.MockAccountRepository, _ *mockRepo.MockSessionRepository) {
		accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
		accountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	})

	output, err := fx.service.UpdateAccount(ctx, accountID, input)

	require.NoError(t, err)
	assert.Equal(t, "saved/avatar.png", output.Account.PicturePath)
}

func TestProfileService_Picture_ReplacesPrevious(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := testAccount(accountID)
	account.PicturePath = "saved/old.png"
	data := pngBytes(t, 128, 128)
	input := &usecase.UpdateAccountInput{
		Action:  usecase.ActionPicture,
		Picture: &usecase.PictureUpload{Filename: "avatar.png", Data: data},
	}

	fx.pictures.EXPECT().Save(ctx, accountID, ".png", data).Return("saved/new.png", nil)

	expectTransaction(t, fx, ctx, func(accountRepo *mockRepo.MockAccountRepository, _ *mockRepo.MockSessionRepository) {
		accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
		accountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	})

	fx.pictures.EXPECT().Remove(ctx, "saved/old.png").Return(nil)

	output, err := fx.service.UpdateAccount(ctx, accountID, input)

	require.NoError(t, err)
	assert.Equal(t, "saved/new.png", output.Account.PicturePath)
}

func TestProfileService_Picture_KeepsConfiguredDefault(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	pictures := mockSvc.NewMockPictureStore(t)

	svc := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		Hasher:    mockSvc.NewMockPasswordHasher(t),
		Pictures:  pictures,
		Config: &config.Config{
			Uploads: &config.UploadsConfig{DefaultPicture: "avatars/placeholder.png"},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx := context.Background()
	accountID := uuid.New()
	account := testAccount(accountID)
	account.PicturePath = "avatars/placeholder.png"
	data := pngBytes(t, 128, 128)
	input := &usecase.UpdateAccountInput{
		Action:  usecase.ActionPicture,
		Picture: &usecase.PictureUpload{Filename: "avatar.png", Data: data},
	}

	// The shared default must survive the replacement; only per-account
	// uploads ever get removed.
	pictures.EXPECT().Save(ctx, accountID, ".png", data).Return("saved/new.png", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
			mockAccountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

			return fn(mockFactory)
		})

	output, err := svc.UpdateAccount(ctx, accountID, input)

	require.NoError(t, err)
	assert.Equal(t, "saved/new.png", output.Account.PicturePath)
}

func TestProfileService_Picture_TooLarge(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	input := &usecase.UpdateAccountInput{
		Action:  usecase.ActionPicture,
		Picture: &usecase.PictureUpload{Filename: "huge.png", Data: pngBytes(t, 600, 600)},
	}

	output, err := fx.service.UpdateAccount(ctx, accountID, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPictureTooLarge)
}

func TestProfileService_Picture_MaxDimensionAccepted(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := testAccount(accountID)
	data := pngBytes(t, 512, 512)
	input := &usecase.UpdateAccountInput{
		Action:  usecase.ActionPicture,
		Picture: &usecase.PictureUpload{Filename: "exact.png", Data: data},
	}

	fx.pictures.EXPECT().Save(ctx, accountID, ".png", data).Return("saved/exact.png", nil)

	expectTransaction(t, fx, ctx, func(accountRepo *mockRepo.MockAccountRepository, _ *mockRepo.MockSessionRepository) {
		accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
		accountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	})

	output, err := fx.service.UpdateAccount(ctx, accountID, input)

	require.NoError(t, err)
	assert.Equal(t, "saved/exact.png", output.Account.PicturePath)
}

func TestProfileService_Picture_NoFile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.UpdateAccountInput{
		Action:  usecase.ActionPicture,
		Picture: &usecase.PictureUpload{Filename: ""},
	}

	output, err := fx.service.UpdateAccount(ctx, uuid.New(), input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrNoFileSelected)
}

func TestProfileService_Picture_UnsupportedFormat(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.UpdateAccountInput{
		Action:  usecase.ActionPicture,
		Picture: &usecase.PictureUpload{Filename: "notes.txt", Data: []byte("plain text, not an image")},
	}

	output, err := fx.service.UpdateAccount(ctx, uuid.New(), input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedPicture)
}

func TestProfileService_Picture_CommitFailureRemovesFile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	data := pngBytes(t, 200, 200)
	input := &usecase.UpdateAccountInput{
		Action:  usecase.ActionPicture,
		Picture: &usecase.PictureUpload{Filename: "avatar.png", Data: data},
	}

	fx.pictures.EXPECT().Save(ctx, accountID, ".png", data).Return("saved/orphan.png", nil)

	expectTransaction(t, fx, ctx, func(accountRepo *mockRepo.MockAccountRepository, _ *mockRepo.MockSessionRepository) {
		accountRepo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)
	})

	// The freshly written file must not outlive the failed commit.
	fx.pictures.EXPECT().Remove(ctx, "saved/orphan.png").Return(nil)

	output, err := fx.service.UpdateAccount(ctx, accountID, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestProfileService_Goal_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := testAccount(accountID)
	goal := "5000"
	input := &usecase.UpdateAccountInput{
		Action:  usecase.ActionGoal,
		NewGoal: &goal,
	}

	expectTransaction(t, fx, ctx, func(accountRepo *mockRepo.MockAccountRepository, _ *mockRepo.MockSessionRepository) {
		accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
		accountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	})

	output, err := fx.service.UpdateAccount(ctx, accountID, input)

	require.NoError(t, err)
	assert.Equal(t, 5000, output.Account.WaterGoal)
}

func TestProfileService_Goal_NegativeAccepted(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := testAccount(accountID)
	goal := "-1"
	input := &usecase.UpdateAccountInput{
		Action:  usecase.ActionGoal,
		NewGoal: &goal,
	}

	expectTransaction(t, fx, ctx, func(accountRepo *mockRepo.MockAccountRepository, _ *mockRepo.MockSessionRepository) {
		accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
		accountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	})

	output, err := fx.service.UpdateAccount(ctx, accountID, input)

	require.NoError(t, err)
	assert.Equal(t, -1, output.Account.WaterGoal)
}

func TestProfileService_Goal_NotAnInteger(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	goal := "lots"
	input := &usecase.UpdateAccountInput{
		Action:  usecase.ActionGoal,
		NewGoal: &goal,
	}

	output, err := fx.service.UpdateAccount(ctx, uuid.New(), input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_Password_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := testAccount(accountID)
	input := &usecase.UpdateAccountInput{
		Action:      usecase.ActionPassword,
		OldPassword: "Password123!",
		NewPassword: "NewPassword456!",
	}

	fx.hasher.EXPECT().Check(input.OldPassword, "hashed_password").Return(true)
	fx.hasher.EXPECT().Hash(input.NewPassword).Return("new_hashed_password", nil)

	expectTransaction(t, fx, ctx, func(accountRepo *mockRepo.MockAccountRepository, _ *mockRepo.MockSessionRepository) {
		accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
		accountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	})

	output, err := fx.service.UpdateAccount(ctx, accountID, input)

	require.NoError(t, err)
	assert.Equal(t, "new_hashed_password", output.Account.PasswordHash)
}

func TestProfileService_Password_WrongOldPassword(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := testAccount(accountID)
	input := &usecase.UpdateAccountInput{
		Action:      usecase.ActionPassword,
		OldPassword: "wrong-password",
		NewPassword: "NewPassword456!",
	}

	fx.hasher.EXPECT().Check(input.OldPassword, "hashed_password").Return(false)

	expectTransaction(t, fx, ctx, func(accountRepo *mockRepo.MockAccountRepository, _ *mockRepo.MockSessionRepository) {
		accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
	})

	output, err := fx.service.UpdateAccount(ctx, accountID, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrIncorrectPassword)
}

func TestProfileService_Delete_ConfirmationMismatch(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.UpdateAccountInput{
		Action:          usecase.ActionDelete,
		DeletePassword:  "Password123!",
		ConfirmPassword: "Password123?",
	}

	// The mismatch is rejected before any password check or lookup.
	output, err := fx.service.UpdateAccount(ctx, uuid.New(), input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)
}

func TestProfileService_Delete_WrongPassword(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := testAccount(accountID)
	input := &usecase.UpdateAccountInput{
		Action:          usecase.ActionDelete,
		DeletePassword:  "wrong-password",
		ConfirmPassword: "wrong-password",
	}

	fx.hasher.EXPECT().Check(input.DeletePassword, "hashed_password").Return(false)

	expectTransaction(t, fx, ctx, func(accountRepo *mockRepo.MockAccountRepository, _ *mockRepo.MockSessionRepository) {
		accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
	})

	output, err := fx.service.UpdateAccount(ctx, accountID, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrIncorrectPassword)
}

func TestProfileService_Delete_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := testAccount(accountID)
	account.PicturePath = "saved/avatar.png"
	input := &usecase.UpdateAccountInput{
		Action:          usecase.ActionDelete,
		DeletePassword:  "Password123!",
		ConfirmPassword: "Password123!",
	}

	fx.hasher.EXPECT().Check(input.DeletePassword, "hashed_password").Return(true)

	expectTransaction(t, fx, ctx, func(accountRepo *mockRepo.MockAccountRepository, sessionRepo *mockRepo.MockSessionRepository) {
		accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
		accountRepo.EXPECT().Delete(ctx, accountID).Return(nil)
		sessionRepo.EXPECT().DeleteByAccountID(ctx, accountID).Return(nil)
	})

	fx.pictures.EXPECT().Remove(ctx, "saved/avatar.png").Return(nil)

	output, err := fx.service.UpdateAccount(ctx, accountID, input)

	require.NoError(t, err)
	assert.True(t, output.Deleted)
	assert.Nil(t, output.Account)
}

func TestProfileService_ActionInference(t *testing.T) {
	goal := "4000"
	data := []byte{0x89}

	tests := []struct {
		name   string
		input  *usecase.UpdateAccountInput
		expect usecase.UpdateAction
	}{
		{
			name:   "rename fields",
			input:  &usecase.UpdateAccountInput{NewUsername: "bob", VerifyPassword: "pw"},
			expect: usecase.ActionRename,
		},
		{
			name:   "picture upload",
			input:  &usecase.UpdateAccountInput{Picture: &usecase.PictureUpload{Filename: "a.png", Data: data}},
			expect: usecase.ActionPicture,
		},
		{
			name:   "goal value",
			input:  &usecase.UpdateAccountInput{NewGoal: &goal},
			expect: usecase.ActionGoal,
		},
		{
			name:   "password pair",
			input:  &usecase.UpdateAccountInput{OldPassword: "old", NewPassword: "new"},
			expect: usecase.ActionPassword,
		},
		{
			name:   "deletion confirmation",
			input:  &usecase.UpdateAccountInput{DeletePassword: "pw", ConfirmPassword: "pw"},
			expect: usecase.ActionDelete,
		},
		{
			name: "rename wins over goal",
			input: &usecase.UpdateAccountInput{
				NewUsername:    "bob",
				VerifyPassword: "pw",
				NewGoal:        &goal,
			},
			expect: usecase.ActionRename,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, err := resolveAction(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expect, action)
		})
	}
}

func TestProfileService_ActionUnknown(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	output, err := fx.service.UpdateAccount(ctx, uuid.New(), &usecase.UpdateAccountInput{})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownAction)

	output, err = fx.service.UpdateAccount(ctx, uuid.New(), &usecase.UpdateAccountInput{Action: "promote"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownAction)
}
