package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"hydrate/config"
	"hydrate/internal/domain/entity"
	domainerrors "hydrate/internal/domain/errors"
	"hydrate/internal/domain/repository"
	"hydrate/internal/domain/service"
	mockRepo "hydrate/internal/mocks/repository"
	mockSvc "hydrate/internal/mocks/service"
	"hydrate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	sessionRepo *mockRepo.MockSessionRepository
	hasher      *mockSvc.MockPasswordHasher
	tokens      *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		SessionRepo: sessionRepo,
		Hasher:      hasher,
		Tokens:      tokens,
		Logger:      logger,
	})

	return accountServiceFixtures{
		service:     service,
		txManager:   txManager,
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		tokens:      tokens,
	}
}

// expectSessionEstablished wires the token and session expectations shared by
// every path that ends in a fresh login.
func expectSessionEstablished(fx accountServiceFixtures, ctx context.Context) {
	fx.tokens.EXPECT().GenerateTokens(mock.AnythingOfType("uuid.UUID")).Return("access-token", "refresh-token", nil)
	fx.tokens.EXPECT().HashToken("refresh-token").Return("refresh-token-hash")
	fx.tokens.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Return(nil)
	fx.sessionRepo.EXPECT().DeleteExpired(ctx).Return(nil)
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					account.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	expectSessionEstablished(fx, ctx)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, input.Username, output.Account.Username)
	assert.Equal(t, entity.DefaultWaterGoal, output.Account.WaterGoal)
	assert.Equal(t, entity.DefaultPicturePath, output.Account.PicturePath)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestAccountService_Register_ConfiguredDefaultPicture(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)

	svc := NewAccountService(AccountServiceParams{
		TxManager:   txManager,
		AccountRepo: mockRepo.NewMockAccountRepository(t),
		SessionRepo: sessionRepo,
		Hasher:      hasher,
		Tokens:      tokens,
		Config: &config.Config{
			Uploads: &config.UploadsConfig{DefaultPicture: "avatars/placeholder.png"},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Password: "Password123!",
	}

	hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					account.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	tokens.EXPECT().GenerateTokens(mock.AnythingOfType("uuid.UUID")).Return("access-token", "refresh-token", nil)
	tokens.EXPECT().HashToken("refresh-token").Return("refresh-token-hash")
	tokens.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)
	sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Return(nil)
	sessionRepo.EXPECT().DeleteExpired(ctx).Return(nil)

	output, err := svc.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "avatars/placeholder.png", output.Account.PicturePath)
}

func TestAccountService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(domainerrors.ErrUsernameTaken)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt failure"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: "hashed_password",
	}
	input := &usecase.LoginInput{
		Username: "alice",
		Password: "Password123!",
	}

	fx.accountRepo.EXPECT().FindByUsername(ctx, "alice").Return(account, nil)
	fx.hasher.EXPECT().Check(input.Password, account.PasswordHash).Return(true)

	expectSessionEstablished(fx, ctx)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, account.ID, output.Account.ID)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestAccountService_Login_AccountNotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "ghost",
		Password: "Password123!",
	}

	fx.accountRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	// A missing account surfaces the same error as a wrong password.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: "hashed_password",
	}
	input := &usecase.LoginInput{
		Username: "alice",
		Password: "wrong-password",
	}

	fx.accountRepo.EXPECT().FindByUsername(ctx, "alice").Return(account, nil)
	fx.hasher.EXPECT().Check(input.Password, account.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_SessionPruneFailureIgnored(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: "hashed_password",
	}
	input := &usecase.LoginInput{
		Username: "alice",
		Password: "Password123!",
	}

	fx.accountRepo.EXPECT().FindByUsername(ctx, "alice").Return(account, nil)
	fx.hasher.EXPECT().Check(input.Password, account.PasswordHash).Return(true)

	fx.tokens.EXPECT().GenerateTokens(account.ID).Return("access-token", "refresh-token", nil)
	fx.tokens.EXPECT().HashToken("refresh-token").Return("refresh-token-hash")
	fx.tokens.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Return(nil)

	// Pruning expired sessions is best-effort; a failure never blocks the login.
	fx.sessionRepo.EXPECT().DeleteExpired(ctx).Return(errors.New("prune failed"))

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
}

func TestAccountService_Refresh_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	input := &usecase.RefreshInput{RefreshToken: "refresh-token"}

	fx.tokens.EXPECT().
		ValidateRefreshToken("refresh-token").
		Return(&service.TokenClaims{AccountID: accountID, TokenType: "refresh"}, nil)
	fx.tokens.EXPECT().HashToken("refresh-token").Return("refresh-token-hash")
	fx.sessionRepo.EXPECT().
		FindByTokenHash(ctx, "refresh-token-hash").
		Return(&entity.Session{AccountID: accountID, TokenHash: "refresh-token-hash"}, nil)
	fx.tokens.EXPECT().GenerateTokens(accountID).Return("new-access-token", "unused-refresh", nil)

	output, err := fx.service.Refresh(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "new-access-token", output.AccessToken)
}

func TestAccountService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RefreshInput{RefreshToken: "garbage"}

	fx.tokens.EXPECT().ValidateRefreshToken("garbage").Return(nil, errors.New("invalid token"))

	output, err := fx.service.Refresh(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestAccountService_Refresh_SessionGone(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	input := &usecase.RefreshInput{RefreshToken: "refresh-token"}

	fx.tokens.EXPECT().
		ValidateRefreshToken("refresh-token").
		Return(&service.TokenClaims{AccountID: accountID, TokenType: "refresh"}, nil)
	fx.tokens.EXPECT().HashToken("refresh-token").Return("refresh-token-hash")
	fx.sessionRepo.EXPECT().
		FindByTokenHash(ctx, "refresh-token-hash").
		Return(nil, repository.ErrSessionNotFound)

	output, err := fx.service.Refresh(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestAccountService_Logout_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	input := &usecase.LogoutInput{RefreshToken: "refresh-token"}

	fx.tokens.EXPECT().
		ValidateRefreshToken("refresh-token").
		Return(&service.TokenClaims{AccountID: accountID, TokenType: "refresh"}, nil)
	fx.tokens.EXPECT().HashToken("refresh-token").Return("refresh-token-hash")
	fx.sessionRepo.EXPECT().DeleteByTokenHash(ctx, "refresh-token-hash").Return(nil)

	err := fx.service.Logout(ctx, input)

	require.NoError(t, err)
}

func TestAccountService_Logout_SessionNotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LogoutInput{RefreshToken: "refresh-token"}

	fx.tokens.EXPECT().ValidateRefreshToken("refresh-token").Return(nil, errors.New("expired"))
	fx.tokens.EXPECT().HashToken("refresh-token").Return("refresh-token-hash")
	fx.sessionRepo.EXPECT().DeleteByTokenHash(ctx, "refresh-token-hash").Return(repository.ErrSessionNotFound)

	err := fx.service.Logout(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}
