package middleware

import (
	"time"

	"ideabank/config"
	domainerrors "ideabank/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const rateLimiterExpiresIn = 3 * time.Minute

// NewAuthRateLimiter limits the public credential endpoints per client IP.
// It returns nil when http.authRateLimit is not positive.
func NewAuthRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	limit := cfg.HTTP.AuthRateLimit
	if limit <= 0 {
		return nil
	}

	burst := int(limit)
	if burst < 1 {
		burst = 1
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(limit),
		Burst:     burst,
		ExpiresIn: rateLimiterExpiresIn,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(_ echo.Context, _ error) error {
			return domainerrors.ErrTooManyRequests
		},
		DenyHandler: func(_ echo.Context, _ string, _ error) error {
			return domainerrors.ErrTooManyRequests
		},
	})
}
