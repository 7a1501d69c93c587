// Package service publishes domain events to RabbitMQ. Publishing failures
// are logged and returned so callers can ignore them without interrupting
// the request that produced the event.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/iliyamo/cinema-seat-suggest/internal/queue"
)

// EventPublisher is what the seat handlers depend on.
type EventPublisher interface {
	PublishSeatsSuggested(ctx context.Context, ev queue.SeatsSuggestedEvent) error
}

// Publisher dials the broker for every event. Suggestion traffic is low
// enough that a long-lived channel is not worth the reconnect handling.
type Publisher struct {
	url    string
	logger *zap.Logger
}

// NewPublisher returns a Publisher for the AMQP url.
func NewPublisher(url string, logger *zap.Logger) *Publisher {
	return &Publisher{url: url, logger: logger.Named("publisher")}
}

// PublishSeatsSuggested sends ev to the durable seats.suggested queue as a
// persistent JSON message.
func (p *Publisher) PublishSeatsSuggested(ctx context.Context, ev queue.SeatsSuggestedEvent) error {
	msg, err := newPublishing(ev, time.Now().UTC())
	if err != nil {
		return err
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.logger.Warn("dial failed", zap.Error(err))
		return fmt.Errorf("dial broker: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.logger.Warn("channel open failed", zap.Error(err))
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		queue.SuggestionQueueName, // name
		true,                      // durable
		false,                     // autoDelete
		false,                     // exclusive
		false,                     // noWait
		nil,                       // args
	); err != nil {
		p.logger.Warn("queue declare failed", zap.Error(err))
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.PublishWithContext(ctx, "", queue.SuggestionQueueName, false, false, msg); err != nil {
		p.logger.Warn("publish failed", zap.Uint64("show_id", ev.ShowID), zap.Error(err))
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}

func newPublishing(ev queue.SeatsSuggestedEvent, now time.Time) (amqp.Publishing, error) {
	if ev.SuggestedAt == "" {
		ev.SuggestedAt = now.Format(time.RFC3339)
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal event: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    now,
		Body:         body,
	}, nil
}

// NoopPublisher drops every event. It is used when events are disabled.
type NoopPublisher struct{}

// PublishSeatsSuggested implements EventPublisher.
func (NoopPublisher) PublishSeatsSuggested(context.Context, queue.SeatsSuggestedEvent) error {
	return nil
}
