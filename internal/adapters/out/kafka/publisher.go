// Package kafka publishes committed order events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// Producer is the part of kafka.Writer the publisher needs.
type Producer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// NewWriter builds a writer that waits for every in-sync replica.
func NewWriter(brokers ...string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
	}
}

// statusChangedMessage is the wire form of order.StatusChanged.
type statusChangedMessage struct {
	EventID  string    `json:"event_id"`
	OrderID  string    `json:"order_id"`
	From     string    `json:"from"`
	To       string    `json:"to"`
	DriverID *string   `json:"driver_id,omitempty"`
	Actor    string    `json:"actor"`
	At       time.Time `json:"at"`
}

// StatusEventPublisher implements ports.EventPublisher. Messages are keyed
// by order id so one order's events stay in partition order.
type StatusEventPublisher struct {
	producer Producer
	topic    string
	logger   *slog.Logger
}

func NewStatusEventPublisher(producer Producer, topic string, logger *slog.Logger) *StatusEventPublisher {
	return &StatusEventPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka_publisher"),
	}
}

// Publish writes all events in one batch.
func (p *StatusEventPublisher) Publish(ctx context.Context, events ...order.StatusChanged) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		msg, err := p.toMessage(e)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
	}

	if err := p.producer.WriteMessages(ctx, msgs...); err != nil {
		p.logger.ErrorContext(ctx, "failed to write order events", "topic", p.topic, "count", len(msgs), "error", err)
		return fmt.Errorf("write %d order events: %w", len(msgs), err)
	}

	p.logger.DebugContext(ctx, "order events written", "topic", p.topic, "count", len(msgs))
	return nil
}

func (p *StatusEventPublisher) toMessage(e order.StatusChanged) (kafka.Message, error) {
	body := statusChangedMessage{
		EventID: e.EventID.String(),
		OrderID: e.OrderID.String(),
		From:    e.From.String(),
		To:      e.To.String(),
		Actor:   e.Actor.String(),
		At:      e.At.UTC(),
	}
	if e.DriverID != nil {
		id := e.DriverID.String()
		body.DriverID = &id
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Topic: p.topic,
		Key:   []byte(body.OrderID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(e.EventType())},
			{Key: "event_id", Value: []byte(body.EventID)},
		},
		Time: body.At,
	}, nil
}
