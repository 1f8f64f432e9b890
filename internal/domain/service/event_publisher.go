package service

import (
	"context"
	"time"
)

// EventTypeAccountDeleted is emitted after an account and its ideas were removed.
const EventTypeAccountDeleted = "account.deleted"

// AccountEvent is published for asynchronous account reconciliation.
type AccountEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventType  string    `json:"event_type"`
	UserID     string    `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes an account event for async processing
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
