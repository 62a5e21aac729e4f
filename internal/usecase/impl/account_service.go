// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"hydrate/config"
	deliverycontext "hydrate/internal/delivery/context"
	"hydrate/internal/domain/entity"
	domainerrors "hydrate/internal/domain/errors"
	"hydrate/internal/domain/repository"
	"hydrate/internal/domain/service"
	"hydrate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager      repository.TransactionManager
	accountRepo    repository.AccountRepository
	sessionRepo    repository.SessionRepository
	hasher         service.PasswordHasher
	tokens         service.TokenService
	defaultPicture string
	logger         *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	SessionRepo repository.SessionRepository
	Hasher      service.PasswordHasher
	Tokens      service.TokenService
	Config      *config.Config `optional:"true"`
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:      params.TxManager,
		accountRepo:    params.AccountRepo,
		sessionRepo:    params.SessionRepo,
		hasher:         params.Hasher,
		tokens:         params.Tokens,
		defaultPicture: defaultPictureFromConfig(params.Config),
		logger:         params.Logger,
	}
}

// defaultPictureFromConfig resolves the picture path assigned to new accounts,
// falling back to the entity-level default when no config is wired.
func defaultPictureFromConfig(cfg *config.Config) string {
	if cfg != nil && cfg.Uploads != nil && cfg.Uploads.DefaultPicture != "" {
		return cfg.Uploads.DefaultPicture
	}

	return entity.DefaultPicturePath
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the signup process: hash the password, insert the
// account with creation defaults, and establish a session for it.
// A username collision rolls back the insert entirely; no partial account
// is ever visible to other readers.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newAccount := entity.NewAccount(input.Username, hashedPassword)
	newAccount.PicturePath = srv.defaultPicture

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.AccountRepo().Create(ctx, newAccount)
	}); err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	output, err := srv.establishSession(ctx, newAccount)
	if err != nil {
		srv.log(ctx).Error("Registration succeeded but session could not be established", slog.Any("accountID", newAccount.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to establish session after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", newAccount.ID))

	return output, nil
}

// Login orchestrates the login process. A missing account and a wrong
// password produce the same invalid-credentials error so callers cannot
// probe for account existence.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	account, err := srv.accountRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find account by username")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	output, err := srv.establishSession(ctx, account)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to establish session during login")
	}

	srv.log(ctx).Debug("Account logged in successfully", slog.Any("accountID", account.ID))

	return output, nil
}

// Refresh issues a new access token using a refresh token.
// The refresh token itself remains unchanged.
func (srv *accountService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokens.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "invalid refresh token")
	}

	// Verify the session still exists and has not expired.
	tokenHash := srv.tokens.HashToken(input.RefreshToken)
	if _, err := srv.sessionRepo.FindByTokenHash(ctx, tokenHash); err != nil {
		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "session not found or expired")
	}

	accessToken, _, err := srv.tokens.GenerateTokens(claims.AccountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshOutput{AccessToken: accessToken}, nil
}

// Logout ends a session by deleting its persisted refresh token.
func (srv *accountService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokens.ValidateRefreshToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokens.HashToken(input.RefreshToken)

	// Single operation - use direct repository instance
	if err := srv.sessionRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return errors.Wrap(domainerrors.ErrSessionNotFound, "logout failed")
		}
		srv.log(ctx).Error("Failed to delete session", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete session")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// establishSession generates tokens for an account and persists the hashed
// refresh token as its session row.
func (srv *accountService) establishSession(ctx context.Context, account *entity.Account) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokens.GenerateTokens(account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	session := &entity.Session{
		AccountID: account.ID,
		TokenHash: srv.tokens.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokens.RefreshTokenDuration()),
	}

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}

	// Opportunistic housekeeping on the write path; expired rows never
	// accumulate without a scheduler. Failure does not affect the login.
	if err := srv.sessionRepo.DeleteExpired(ctx); err != nil {
		srv.log(ctx).Warn("Failed to prune expired sessions", slog.Any("error", err))
	}

	return &usecase.AuthOutput{
		Account:      account,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
