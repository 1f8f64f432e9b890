package handler

import (
	"log/slog"
	"net/http"

	"ideabank/internal/delivery/api/middleware"
	"ideabank/internal/delivery/api/response"
	domainerrors "ideabank/internal/domain/errors"
	"ideabank/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// errInvalidBody is returned when the request body is not valid JSON for the target shape.
var errInvalidBody = domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_INPUT", "Invalid request body")

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// UserHandler serves /api/users.
type UserHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// Register creates an account and responds with its token.
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return errInvalidBody
	}

	output, err := h.accountUC.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output)
}

// Delete removes the caller's account and all of their ideas.
func (h *UserHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrTokenInvalid
	}

	if err := h.accountUC.DeleteAccount(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Text(c, "User deleted")
}
