// Package middleware holds the API-specific echo middleware.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "ideabank/internal/delivery/context"
	"ideabank/internal/domain/constants"
	domainerrors "ideabank/internal/domain/errors"
	"ideabank/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	headerAuthorization = "Authorization"
	// headerAuthToken is the legacy header older clients send the raw token in.
	headerAuthToken = "x-auth-token"
	bearerScheme    = "bearer"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

// AuthMiddleware guards routes that need an authenticated identity.
type AuthMiddleware struct {
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Authenticate validates the bearer token and attaches the caller's identity
// to both echo.Context and the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := extractToken(c.Request().Header)
		if err != nil {
			return err
		}

		claims, err := m.tokenService.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected token", slog.Any("error", err))

			return domainerrors.ErrTokenInvalid
		}

		userID, err := claims.UserID()
		if err != nil || userID == uuid.Nil {
			return domainerrors.ErrTokenInvalid
		}

		c.Set(constants.ContextKeyUserID, userID)

		ctx := c.Request().Context()
		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", userID.String()))
		ctx = deliverycontext.WithUserID(ctx, userID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// extractToken prefers "Authorization: Bearer <token>" (scheme matched
// case-insensitively) and falls back to x-auth-token. A credential header
// that is present but unusable is ErrTokenInvalid; no credential at all is
// ErrNoToken.
func extractToken(header http.Header) (string, error) {
	auth := strings.TrimSpace(header.Get(headerAuthorization))
	if scheme, token, found := strings.Cut(auth, " "); found && strings.EqualFold(scheme, bearerScheme) {
		if token = strings.TrimSpace(token); token != "" {
			return token, nil
		}
	}

	if token := strings.TrimSpace(header.Get(headerAuthToken)); token != "" {
		return token, nil
	}

	if auth != "" || len(header.Values(headerAuthToken)) > 0 {
		return "", domainerrors.ErrTokenInvalid
	}

	return "", domainerrors.ErrNoToken
}

// GetUserID returns the identity set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}
