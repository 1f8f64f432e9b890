package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ideabank/config"
	deliverycontext "ideabank/internal/delivery/context"
	"ideabank/internal/domain/constants"
	"ideabank/internal/domain/service"
	"ideabank/internal/infra/pubsub"
	mockUC "ideabank/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUC.MockSweepUsecase) {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{}
	}
	sweepUC := mockUC.NewMockSweepUsecase(t)

	return NewPushHandler(PushHandlerParams{
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		SweepUC: sweepUC,
	}), sweepUC
}

func pushBody(t *testing.T, event any, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushEnvelope
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/local/subscriptions/account-events-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestHandlePush_SweepsDeletedAccount(t *testing.T) {
	h, sweepUC := newPushHandler(t, nil)
	userID := uuid.New()

	sweepUC.EXPECT().
		SweepOrphanedIdeas(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-9"
		}), userID).
		Return(int64(3), nil)

	rec := servePush(h, pushBody(t, service.AccountEvent{
		EventType:  service.EventTypeAccountDeleted,
		UserID:     userID.String(),
		OccurredAt: time.Now().UTC(),
	}, map[string]string{"request_id": "req-9"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_StorageFailureRequestsRetry(t *testing.T) {
	h, sweepUC := newPushHandler(t, nil)
	userID := uuid.New()

	sweepUC.EXPECT().SweepOrphanedIdeas(mock.Anything, userID).Return(0, errors.New("db down"))

	rec := servePush(h, pushBody(t, service.AccountEvent{EventType: service.EventTypeAccountDeleted, UserID: userID.String()}, nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_UnknownEventIsAcknowledged(t *testing.T) {
	h, _ := newPushHandler(t, nil)

	rec := servePush(h, pushBody(t, service.AccountEvent{EventType: "account.renamed", UserID: uuid.NewString()}, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_MalformedMessages(t *testing.T) {
	h, _ := newPushHandler(t, nil)

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{"message":`},
		{name: "not base64", body: `{"message":{"data":"***"}}`},
		{name: "payload not json", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`},
		{name: "bad user id", body: pushBody(t, service.AccountEvent{EventType: service.EventTypeAccountDeleted, UserID: "42"}, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := servePush(h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandlePush_RejectsUnverifiedPushInProduction(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	h, _ := newPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)
	h.verifyToken = func(*http.Request) error { return errors.New("missing authorization header") }

	rec := servePush(h, pushBody(t, service.AccountEvent{EventType: service.EventTypeAccountDeleted, UserID: uuid.NewString()}, nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_SkipsVerificationInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop

	h, _ := newPushHandler(t, cfg)
	assert.False(t, h.verifyPushAuth)
}

func TestVerifyPubSubToken_HeaderChecks(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	assert.ErrorContains(t, verifyPubSubToken(req), "missing authorization header")

	req.Header.Set("Authorization", "Basic Zm9v")
	assert.ErrorContains(t, verifyPubSubToken(req), "invalid authorization header format")
}
