package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/apache/pulsar-client-go/pulsar"
	pulsarlog "github.com/apache/pulsar-client-go/pulsar/log"
	"github.com/google/uuid"

	"github.com/consensuslabs/pavilion-network/commentinfo/internal/config"
)

// ErrPublisherClosed is returned when publishing after Close
var ErrPublisherClosed = errors.New("publisher is closed")

// Publisher sends comment info events to a pulsar topic
type Publisher struct {
	sender Sender
	client pulsar.Client
	topic  string
	logger Logger
	now    func() time.Time
}

// NewPulsarPublisher connects to pulsar and creates the event producer
func NewPulsarPublisher(cfg config.NotificationConfig, logger Logger) (*Publisher, error) {
	clientLogger, err := newClientLogger(cfg.ClientLogLevel)
	if err != nil {
		return nil, err
	}

	client, err := pulsar.NewClient(pulsar.ClientOptions{
		URL:               cfg.PulsarURL,
		OperationTimeout:  cfg.OperationTimeout,
		ConnectionTimeout: cfg.ConnectionTimeout,
		Logger:            pulsarlog.NewLoggerWithLogrus(clientLogger),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Pulsar client: %w", err)
	}

	producer, err := client.CreateProducer(pulsar.ProducerOptions{
		Topic:                   cfg.Topic,
		SendTimeout:             30 * time.Second,
		MaxPendingMessages:      100,
		BatchingMaxPublishDelay: 10 * time.Millisecond,
		BatchingMaxMessages:     1000,
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	p := NewPublisher(producer, cfg.Topic, logger)
	p.client = client

	logger.LogInfo("Comment info event publisher initialized", map[string]interface{}{
		"pulsar_url": cfg.PulsarURL,
		"topic":      cfg.Topic,
	})
	return p, nil
}

// NewPublisher wraps an existing sender
func NewPublisher(sender Sender, topic string, logger Logger) *Publisher {
	return &Publisher{
		sender: sender,
		topic:  topic,
		logger: logger,
		now:    time.Now,
	}
}

// PublishCommentLiked announces a counted like
func (p *Publisher) PublishCommentLiked(ctx context.Context, commentID, ownerID, userID uuid.UUID, likes int) error {
	return p.publish(ctx, CommentLiked, commentID, ownerID, userID, likes)
}

// PublishCommentReported announces a counted report
func (p *Publisher) PublishCommentReported(ctx context.Context, commentID, ownerID, userID uuid.UUID, reports int) error {
	return p.publish(ctx, CommentReported, commentID, ownerID, userID, reports)
}

func (p *Publisher) publish(ctx context.Context, eventType EventType, commentID, ownerID, userID uuid.UUID, count int) error {
	if p.sender == nil {
		return ErrPublisherClosed
	}

	event := &CommentInfoEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New(),
			Type:      eventType,
			CreatedAt: p.now(),
		},
		CommentID: commentID,
		UserID:    userID,
		OwnerID:   ownerID,
		Count:     count,
	}

	msg, err := newProducerMessage(event)
	if err != nil {
		return err
	}

	msgID, err := p.sender.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}

	fields := map[string]interface{}{
		"event_id":   event.ID.String(),
		"event_type": string(eventType),
		"comment_id": commentID.String(),
		"topic":      p.topic,
	}
	if msgID != nil {
		fields["message_id"] = msgID.String()
	}
	p.logger.LogInfo("Published comment info event", fields)
	return nil
}

// Close closes the producer and the client it owns
func (p *Publisher) Close() error {
	if p.sender != nil {
		p.sender.Close()
		p.sender = nil
	}
	if p.client != nil {
		p.client.Close()
		p.client = nil
	}
	return nil
}

// NoopPublisher drops every event; used when notifications are disabled
type NoopPublisher struct{}

func (NoopPublisher) PublishCommentLiked(context.Context, uuid.UUID, uuid.UUID, uuid.UUID, int) error {
	return nil
}

func (NoopPublisher) PublishCommentReported(context.Context, uuid.UUID, uuid.UUID, uuid.UUID, int) error {
	return nil
}
