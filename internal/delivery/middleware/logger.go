package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"ideabank/config"
	deliverycontext "ideabank/internal/delivery/context"
	domainerrors "ideabank/internal/domain/errors"
	"ideabank/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request through the
// request-scoped logger, so request_id and user_id are attached.
// Successful requests log at Debug unless env.debug is set.
type LoggerMiddleware struct {
	logger       *slog.Logger
	successLevel slog.Level
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	successLevel := slog.LevelDebug
	if cfg != nil && cfg.Env.Debug {
		successLevel = slog.LevelInfo
	}

	return &LoggerMiddleware{
		logger:       logger,
		successLevel: successLevel,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		m.logRequest(c, time.Since(start), err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, latency time.Duration, err error) {
	req := c.Request()
	status := responseStatus(c, err)

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if err != nil && status >= http.StatusInternalServerError {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := m.successLevel
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	// The auth guard swaps in a logger carrying user_id, so read it after next.
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).
		LogAttrs(req.Context(), level, "HTTP request", attrs...)
}

// responseStatus predicts the status the error handler will write when the
// handler returned an error without committing a response.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
