package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"ideabank/config"
	deliverycontext "ideabank/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestQueryLogger_UsesRequestScopedLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	ql := newQueryLogger(newBufferLogger(&base), &config.Config{})

	ctx := deliverycontext.WithLogger(context.Background(),
		newBufferLogger(&scoped).With(slog.String("request_id", "req-1")))
	ql.Trace(ctx, time.Now(), sqlFn, assert.AnError)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "Database query failed")
	assert.Contains(t, scoped.String(), `"request_id":"req-1"`)
}

func TestQueryLogger_IgnoresRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	ql := newQueryLogger(newBufferLogger(&buf), &config.Config{})

	ql.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestQueryLogger_SlowQuery(t *testing.T) {
	var buf bytes.Buffer
	ql := newQueryLogger(newBufferLogger(&buf), &config.Config{})

	ql.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

	assert.Contains(t, buf.String(), "Slow database query")
	assert.Contains(t, buf.String(), "SELECT 1")
}

func TestQueryLogger_DebugLogsEveryQuery(t *testing.T) {
	var quiet, verbose bytes.Buffer

	newQueryLogger(newBufferLogger(&quiet), &config.Config{}).
		Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, quiet.String())

	cfg := &config.Config{}
	cfg.Env.Debug = true
	newQueryLogger(newBufferLogger(&verbose), cfg).
		Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, verbose.String(), "Database query")
}
