package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "ideabank/internal/delivery/context"
	"ideabank/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher publishes account events to a Cloud Pub/Sub topic.
// The sweeper receives them through a push subscription on that topic.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topicPath string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to the project and fails fast when the
// topic does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topicPath := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicPath)
	}

	logger.Info("Google Pub/Sub publisher ready", slog.String("topic", topicPath))

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		topicPath: topicPath,
		logger:    logger,
	}, nil
}

// PublishAccountEvent blocks until the server acknowledges the message.
func (p *googlePubSubPublisher) PublishAccountEvent(ctx context.Context, event *service.AccountEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to publish %s to %s", event.EventType, p.topicPath)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("Account event published",
		slog.String("event_type", event.EventType),
		slog.String("message_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases the client.
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
