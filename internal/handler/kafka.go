package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/printshop-order-service/internal/config"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/entities"
	"github.com/segmentio/kafka-go"
)

type PaymentEventHandler interface {
	HandleEvent(ctx context.Context, event entities.PaymentEvent) (entities.EventResult, error)
}

// RelayParser verifies a relayed processor event. Unlike the webhook, it
// must not reject events for their signing time.
type RelayParser interface {
	ParseRelayedEvent(payload []byte, signature string) (entities.PaymentEvent, error)
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaHandler consumes processor events relayed through Kafka. Each message
// carries the raw event payload and its signature header, exactly as the
// webhook would have received them.
type KafkaHandler struct {
	logger          *slog.Logger
	reader          MessageReader
	dlq             MessageWriter
	parser          RelayParser
	events          PaymentEventHandler
	signatureHeader string
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, parser RelayParser, events PaymentEventHandler, signatureHeader string) *KafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.PaymentsTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
	}
	return NewKafkaHandlerWithClients(logger, reader, dlq, parser, events, signatureHeader)
}

func NewKafkaHandlerWithClients(
	logger *slog.Logger,
	reader MessageReader,
	dlq MessageWriter,
	parser RelayParser,
	events PaymentEventHandler,
	signatureHeader string,
) *KafkaHandler {
	return &KafkaHandler{
		logger:          logger.With(slog.String("handler", "kafka")),
		reader:          reader,
		dlq:             dlq,
		parser:          parser,
		events:          events,
		signatureHeader: signatureHeader,
	}
}

// Consume runs until ctx is cancelled or the reader is closed. A message that
// cannot be verified or processed goes to the DLQ; every message is committed.
func (h *KafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		// HandleEvent already retries transient store failures.
		if err := h.handleMessage(ctx, m); err != nil {
			h.logger.Error("failed to handle message",
				slog.Any("error", err),
				slog.Int("partition", m.Partition),
				slog.Int64("offset", m.Offset),
			)

			// kafka-go retries the write itself.
			if err := h.writeToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			relayDLQ.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			relayCommitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *KafkaHandler) handleMessage(ctx context.Context, m kafka.Message) error {
	relayInProgress.Inc()
	defer relayInProgress.Dec()

	start := time.Now()
	defer func() { relayProcessingDuration.Observe(time.Since(start).Seconds()) }()

	event, err := h.parser.ParseRelayedEvent(m.Value, headerValue(m.Headers, h.signatureHeader))
	if err != nil {
		paymentEvents.WithLabelValues(sourceKafka, resultRejected).Inc()
		return fmt.Errorf("failed to verify payment event: %w", err)
	}

	result, err := h.events.HandleEvent(ctx, event)
	if err != nil {
		paymentEvents.WithLabelValues(sourceKafka, resultFailed).Inc()
		return fmt.Errorf("failed to handle payment event %s: %w", event.ID, err)
	}

	paymentEvents.WithLabelValues(sourceKafka, string(result)).Inc()
	h.logger.DebugContext(ctx, "payment event handled",
		slog.String("event_id", event.ID),
		slog.String("result", string(result)),
	)
	return nil
}

func (h *KafkaHandler) writeToDLQ(ctx context.Context, m kafka.Message) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *KafkaHandler) Close() error {
	return errors.Join(h.reader.Close(), h.dlq.Close())
}

func headerValue(headers []kafka.Header, key string) string {
	for _, hd := range headers {
		if hd.Key == key {
			return string(hd.Value)
		}
	}
	return ""
}
