package impl

import (
	"io"
	"log/slog"

	"ideabank/config"
	"ideabank/internal/validation"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(updateMode string) *config.Config {
	return &config.Config{
		Ideas: &config.IdeasConfig{UpdateMode: updateMode},
	}
}

func newTestValidator() *validation.Validator {
	return validation.New()
}

func ptr[T any](v T) *T {
	return &v
}
