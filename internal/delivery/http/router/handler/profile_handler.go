package handler

import (
	"io"
	"log/slog"
	"net/http"

	"hydrate/config"
	deliverycontext "hydrate/internal/delivery/context"
	"hydrate/internal/delivery/http/response"
	domainerrors "hydrate/internal/domain/errors"
	"hydrate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, cfg *config.Config, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// ownAccountID resolves the :id path parameter and checks it against the
// authenticated account. Every profile route is owner-only.
func (h *ProfileHandler) ownAccountID(c echo.Context) (uuid.UUID, error) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid account id")
	}

	if deliverycontext.GetAccountID(c) != accountID {
		return uuid.Nil, domainerrors.ErrForbidden
	}

	return accountID, nil
}

// GetProfile handles the request to view an account's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	accountID, err := h.ownAccountID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	account, err := h.uc.GetProfile(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewAccountView(account), "Profile retrieved successfully")
}

// UpdateAccount handles one submission of the account mutation workflow.
// The request is a multipart form; exactly one branch runs per submission.
func (h *ProfileHandler) UpdateAccount(c echo.Context) error {
	accountID, err := h.ownAccountID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input, err := h.parseUpdateForm(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateAccount(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	if output.Deleted {
		return response.Success(c, http.StatusOK, map[string]bool{"deleted": true}, "Account deleted successfully")
	}

	return response.Success(c, http.StatusOK, NewAccountView(output.Account), "Account updated successfully")
}

// parseUpdateForm maps the multipart submission onto the usecase input.
// Absent fields stay zero so the usecase can infer the intended branch.
func (h *ProfileHandler) parseUpdateForm(c echo.Context) (*usecase.UpdateAccountInput, error) {
	// Reject oversized bodies before buffering any part of them.
	c.Request().Body = http.MaxBytesReader(c.Response(), c.Request().Body, h.cfg.Uploads.MaxUploadBytes)

	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "expected multipart form data")
	}

	value := func(key string) string {
		if vs := form.Value[key]; len(vs) > 0 {
			return vs[0]
		}

		return ""
	}

	input := &usecase.UpdateAccountInput{
		Action:          usecase.UpdateAction(value("action")),
		NewUsername:     value("new_username"),
		VerifyPassword:  value("verify_password"),
		OldPassword:     value("old_password"),
		NewPassword:     value("new_password"),
		DeletePassword:  value("delete_password"),
		ConfirmPassword: value("confirm_password"),
	}

	if vs := form.Value["new_goal"]; len(vs) > 0 {
		goal := vs[0]
		input.NewGoal = &goal
	}

	// A file part with an empty filename is how browsers submit "no file
	// chosen"; it still counts as a picture submission.
	if fhs := form.File["picture"]; len(fhs) > 0 {
		fh := fhs[0]
		upload := &usecase.PictureUpload{Filename: fh.Filename}

		if fh.Size > 0 {
			src, err := fh.Open()
			if err != nil {
				return nil, errors.Wrap(err, "failed to open uploaded picture")
			}
			defer src.Close()

			data, err := io.ReadAll(src)
			if err != nil {
				return nil, errors.Wrap(err, "failed to read uploaded picture")
			}
			upload.Data = data
		}

		input.Picture = upload
	}

	return input, nil
}
