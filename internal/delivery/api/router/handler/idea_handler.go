package handler

import (
	"log/slog"

	"ideabank/internal/delivery/api/middleware"
	"ideabank/internal/delivery/api/response"
	domainerrors "ideabank/internal/domain/errors"
	"ideabank/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// IdeaHandlerParams holds dependencies for IdeaHandler, injected by Fx.
type IdeaHandlerParams struct {
	fx.In

	IdeaUC usecase.IdeaUsecase
	Logger *slog.Logger
}

// IdeaHandler serves /api/ideas.
type IdeaHandler struct {
	ideaUC usecase.IdeaUsecase
	logger *slog.Logger
}

// NewIdeaHandler is the constructor for IdeaHandler
func NewIdeaHandler(params IdeaHandlerParams) *IdeaHandler {
	return &IdeaHandler{
		ideaUC: params.IdeaUC,
		logger: params.Logger,
	}
}

// ListIdeas returns the caller's ideas, newest first.
func (h *IdeaHandler) ListIdeas(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrTokenInvalid
	}

	ideas, err := h.ideaUC.ListIdeas(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, ideas)
}

// CreateIdea stores a new idea for the caller.
func (h *IdeaHandler) CreateIdea(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrTokenInvalid
	}

	var input usecase.CreateIdeaInput
	if err := c.Bind(&input); err != nil {
		return errInvalidBody
	}

	idea, err := h.ideaUC.CreateIdea(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, idea)
}

// UpdateIdea applies a partial update to one of the caller's ideas.
func (h *IdeaHandler) UpdateIdea(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrTokenInvalid
	}

	ideaID, err := parseIdeaID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateIdeaInput
	if err := c.Bind(&input); err != nil {
		return errInvalidBody
	}

	idea, err := h.ideaUC.UpdateIdea(c.Request().Context(), userID, ideaID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, idea)
}

// DeleteIdea removes one of the caller's ideas.
func (h *IdeaHandler) DeleteIdea(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrTokenInvalid
	}

	ideaID, err := parseIdeaID(c)
	if err != nil {
		return err
	}

	if err := h.ideaUC.DeleteIdea(c.Request().Context(), userID, ideaID); err != nil {
		return errors.WithStack(err)
	}

	return response.Text(c, "Idea deleted")
}

// parseIdeaID reads the :id path parameter. A malformed id can never match a
// stored idea, so it is reported as not found.
func parseIdeaID(c echo.Context) (uuid.UUID, error) {
	ideaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrIdeaNotFound
	}

	return ideaID, nil
}
