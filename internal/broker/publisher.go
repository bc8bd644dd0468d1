package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/printshop-order-service/internal/config"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/entities"
	"github.com/segmentio/kafka-go"
)

const EventTypeHeader = "event-type"

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderPublisher writes order events to the orders topic keyed by order
// number, so all events of one order land in the same partition.
type OrderPublisher struct {
	logger *slog.Logger
	writer MessageWriter
	now    func() time.Time
}

func NewOrderPublisher(logger *slog.Logger, cfg config.Kafka) *OrderPublisher {
	return NewOrderPublisherWithWriter(logger, &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.OrdersTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: cfg.BatchTimeout,
	})
}

func NewOrderPublisherWithWriter(logger *slog.Logger, writer MessageWriter) *OrderPublisher {
	return &OrderPublisher{
		logger: logger.With(slog.String("broker", "kafka")),
		writer: writer,
		now:    time.Now,
	}
}

func (p *OrderPublisher) PublishOrderEvent(ctx context.Context, event entities.OrderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderNumber),
		Value: data,
		Time:  p.now().UTC(),
		Headers: []kafka.Header{
			{Key: EventTypeHeader, Value: []byte(event.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write order event: %w", err)
	}

	p.logger.DebugContext(ctx, "order event published",
		slog.String("type", event.Type),
		slog.Int64("order_id", event.OrderID),
	)
	return nil
}

func (p *OrderPublisher) Close() error {
	return p.writer.Close()
}

// Noop drops every event. Used when Kafka is disabled.
type Noop struct{}

func (Noop) PublishOrderEvent(context.Context, entities.OrderEvent) error { return nil }

func (Noop) Close() error { return nil }
