// Command paysim publishes synthetic payment_intent.succeeded events, signed
// with the configured webhook secret, either to the Kafka payments relay
// topic or straight to the HTTP webhook.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/printshop-order-service/internal/config"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/processor"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"
	"github.com/stripe/stripe-go/v76"
)

type options struct {
	paymentIDs []string
	webhookURL string
	interval   time.Duration
	count      int
}

func main() {
	var (
		opts options
		ids  string
	)
	flag.StringVar(&ids, "payment-ids", "", "comma separated payment ids, random ids when empty")
	flag.StringVar(&opts.webhookURL, "webhook", "", "POST events to this webhook URL instead of Kafka")
	flag.DurationVar(&opts.interval, "interval", 2*time.Second, "delay between events")
	flag.IntVar(&opts.count, "count", 0, "number of events to send, 0 means until interrupted")
	flag.Parse()

	for _, id := range strings.Split(ids, ",") {
		if id = strings.TrimSpace(id); id != "" {
			opts.paymentIDs = append(opts.paymentIDs, id)
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	conf := config.New()
	if conf.Stripe.WebhookSecret == "" {
		logger.Error("STRIPE_WEBHOOK_SECRET is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	var send sender
	if opts.webhookURL != "" {
		send = webhookSender{client: &http.Client{Timeout: 5 * time.Second}, url: opts.webhookURL}
	} else {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(conf.Kafka.Brokers...),
			Topic:    conf.Kafka.PaymentsTopic,
			Balancer: &kafka.Hash{},
		}
		defer writer.Close()
		send = kafkaSender{writer: writer}
	}

	if err := run(ctx, logger, opts, conf.Stripe.WebhookSecret, send); err != nil {
		logger.Error("paysim failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func init() {
	godotenv.Load()
}

type sender interface {
	send(ctx context.Context, key string, payload []byte, signature string) error
}

type kafkaSender struct {
	writer *kafka.Writer
}

func (s kafkaSender) send(ctx context.Context, key string, payload []byte, signature string) error {
	return s.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(key),
		Value:   payload,
		Headers: []kafka.Header{{Key: processor.SignatureHeader, Value: []byte(signature)}},
	})
}

type webhookSender struct {
	client *http.Client
	url    string
}

func (s webhookSender) send(ctx context.Context, _ string, payload []byte, signature string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(processor.SignatureHeader, signature)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("webhook answered %s", resp.Status)
	}
	return nil
}

func run(ctx context.Context, logger *slog.Logger, opts options, secret string, s sender) error {
	ticker := time.NewTicker(opts.interval)
	defer ticker.Stop()

	for sent := 0; opts.count == 0 || sent < opts.count; sent++ {
		paymentID := pickPaymentID(opts.paymentIDs, sent)
		now := time.Now()

		payload, err := newEnvelope(paymentID, rand.Int64N(50000)+100, now)
		if err != nil {
			return err
		}
		if err := s.send(ctx, paymentID, payload, processor.SignPayload(payload, secret, now)); err != nil {
			logger.Error("failed to send event", slog.String("payment_id", paymentID), slog.Any("error", err))
		} else {
			logger.Info("event sent", slog.String("payment_id", paymentID))
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}

func pickPaymentID(ids []string, n int) string {
	if len(ids) == 0 {
		return "pi_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:24]
	}
	return ids[n%len(ids)]
}

type envelope struct {
	ID         string       `json:"id"`
	Object     string       `json:"object"`
	APIVersion string       `json:"api_version"`
	Created    int64        `json:"created"`
	Type       string       `json:"type"`
	Data       envelopeData `json:"data"`
}

type envelopeData struct {
	Object paymentIntent `json:"object"`
}

type paymentIntent struct {
	ID       string `json:"id"`
	Object   string `json:"object"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// newEnvelope builds a processor event the webhook endpoint accepts.
func newEnvelope(paymentID string, amount int64, at time.Time) ([]byte, error) {
	return json.Marshal(envelope{
		ID:         "evt_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:24],
		Object:     "event",
		APIVersion: stripe.APIVersion,
		Created:    at.Unix(),
		Type:       entities.EventPaymentSucceeded,
		Data: envelopeData{Object: paymentIntent{
			ID:       paymentID,
			Object:   "payment_intent",
			Amount:   amount,
			Currency: "usd",
			Status:   "succeeded",
		}},
	})
}
