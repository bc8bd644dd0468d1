package processor

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/printshop-order-service/internal/config"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/entities"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	serviceName = "stripe"

	SignatureHeader = "Stripe-Signature"
)

type Stripe struct {
	intents       *paymentintent.Client
	webhookSecret string
}

type Option func(*stripe.BackendConfig)

func WithMaxNetworkRetries(n int64) Option {
	return func(c *stripe.BackendConfig) { c.MaxNetworkRetries = stripe.Int64(n) }
}

func NewStripe(cfg config.Stripe, opts ...Option) *Stripe {
	backendCfg := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(2),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	}
	if cfg.APIURL != "" {
		backendCfg.URL = stripe.String(strings.TrimRight(cfg.APIURL, "/"))
	}
	for _, opt := range opts {
		opt(backendCfg)
	}

	return &Stripe{
		intents: &paymentintent.Client{
			B:   stripe.GetBackendWithConfig(stripe.APIBackend, backendCfg),
			Key: cfg.SecretKey,
		},
		webhookSecret: cfg.WebhookSecret,
	}
}

// CreatePaymentIntent creates an intent for amount minor units of currency.
func (s *Stripe) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (entities.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	pi, err := s.intents.New(params)
	if err != nil {
		return entities.PaymentIntent{}, toExternalError(err)
	}

	return entities.PaymentIntent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// toExternalError keeps processor messages only for request errors, which
// describe the caller's input. Anything else is reported generically.
func toExternalError(err error) error {
	reason := "payment processor unavailable"

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		switch stripeErr.Type {
		case stripe.ErrorTypeInvalidRequest, stripe.ErrorTypeCard:
			if stripeErr.Msg != "" {
				reason = stripeErr.Msg
			}
		default:
			reason = "payment processor rejected the request"
		}
	}

	return &entities.ExternalServiceError{Service: serviceName, Reason: reason, Err: err}
}

// ParseWebhook verifies the signature header against the raw payload and
// reduces the event to what reconciliation needs.
func (s *Stripe) ParseWebhook(payload []byte, signature string) (entities.PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, s.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		if isSignatureError(err) {
			return entities.PaymentEvent{}, fmt.Errorf("%w: %w", entities.ErrInvalidSignature, err)
		}
		return entities.PaymentEvent{}, fmt.Errorf("%w: %w", entities.ErrInvalidPayload, err)
	}

	return decodeEvent(event)
}

// ParseRelayedEvent verifies the signature like ParseWebhook but accepts any
// signing time. Events relayed through Kafka can sit in the topic long past
// the webhook tolerance.
func (s *Stripe) ParseRelayedEvent(payload []byte, signature string) (entities.PaymentEvent, error) {
	if err := webhook.ValidatePayloadIgnoringTolerance(payload, signature, s.webhookSecret); err != nil {
		if isSignatureError(err) {
			return entities.PaymentEvent{}, fmt.Errorf("%w: %w", entities.ErrInvalidSignature, err)
		}
		return entities.PaymentEvent{}, fmt.Errorf("%w: %w", entities.ErrInvalidPayload, err)
	}

	var event stripe.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return entities.PaymentEvent{}, fmt.Errorf("%w: %w", entities.ErrInvalidPayload, err)
	}
	return decodeEvent(event)
}

func isSignatureError(err error) bool {
	return errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrInvalidHeader) ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrTooOld)
}

type eventObject struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func decodeEvent(event stripe.Event) (entities.PaymentEvent, error) {
	if event.Type == "" || event.Data == nil {
		return entities.PaymentEvent{}, fmt.Errorf("%w: missing type or data", entities.ErrInvalidPayload)
	}

	var obj eventObject
	if err := json.Unmarshal(event.Data.Raw, &obj); err != nil {
		return entities.PaymentEvent{}, fmt.Errorf("%w: %w", entities.ErrInvalidPayload, err)
	}

	return entities.PaymentEvent{
		ID:        event.ID,
		Type:      string(event.Type),
		PaymentID: obj.ID,
		Amount:    obj.Amount,
		Currency:  obj.Currency,
	}, nil
}

// SignPayload produces a signature header value for payload, in the format
// the webhook endpoint verifies.
func SignPayload(payload []byte, secret string, at time.Time) string {
	sig := webhook.ComputeSignature(at, payload, secret)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(sig))
}
