package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"ideabank/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Attribute keys set on every account event message.
const (
	AttrEventType = "event_type"
	AttrUserID    = "user_id"
	AttrRequestID = "request_id"
)

// PushMessage is the message part of a push delivery. Data is base64.
type PushMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// PushEnvelope is the JSON body a Pub/Sub push subscription POSTs to its endpoint.
type PushEnvelope struct {
	Message      PushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

// NewPushEnvelope wraps an account event the way Pub/Sub push delivers it.
func NewPushEnvelope(event *service.AccountEvent, subscription string) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &PushEnvelope{
		Message: PushMessage{
			Data:        base64.StdEncoding.EncodeToString(data),
			Attributes:  eventAttributes(event),
			MessageID:   uuid.NewString(),
			PublishTime: time.Now().UTC().Format(time.RFC3339Nano),
		},
		Subscription: subscription,
	}, nil
}

// AccountEvent decodes the event carried in the message data.
func (e *PushEnvelope) AccountEvent() (*service.AccountEvent, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "message data is not base64")
	}

	var event service.AccountEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "message data is not an account event")
	}

	return &event, nil
}

// Attribute returns a message attribute, or "" when absent.
func (e *PushEnvelope) Attribute(key string) string {
	return e.Message.Attributes[key]
}

// eventAttributes builds the message attributes used for filtering and tracing
func eventAttributes(event *service.AccountEvent) map[string]string {
	attributes := map[string]string{
		AttrEventType: event.EventType,
		AttrUserID:    event.UserID,
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}
