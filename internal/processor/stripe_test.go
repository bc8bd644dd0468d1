package processor_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/printshop-order-service/internal/config"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/processor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const webhookSecret = "whsec_test_secret"

func newStripe(t *testing.T, h http.HandlerFunc) *processor.Stripe {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return processor.NewStripe(config.Stripe{
		SecretKey:     "sk_test_123",
		WebhookSecret: webhookSecret,
		APIURL:        srv.URL,
	}, processor.WithMaxNetworkRetries(0))
}

func TestStripe_CreatePaymentIntent(t *testing.T) {
	var gotForm map[string]string

	s := newStripe(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"amount":   r.PostForm.Get("amount"),
			"currency": r.PostForm.Get("currency"),
			"apm":      r.PostForm.Get("automatic_payment_methods[enabled]"),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":            "pi_123",
			"object":        "payment_intent",
			"amount":        3999,
			"currency":      "usd",
			"client_secret": "pi_123_secret_456",
		})
	})

	intent, err := s.CreatePaymentIntent(context.Background(), 3999, "usd")
	require.NoError(t, err)

	assert.Equal(t, entities.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret_456"}, intent)
	assert.Equal(t, map[string]string{"amount": "3999", "currency": "usd", "apm": "true"}, gotForm)
}

func TestStripe_CreatePaymentIntent_Rejected(t *testing.T) {
	testCases := []struct {
		name       string
		status     int
		body       string
		wantReason string
	}{
		{
			name:       "invalid currency",
			status:     http.StatusBadRequest,
			body:       `{"error":{"type":"invalid_request_error","message":"Invalid currency: xyz.","param":"currency"}}`,
			wantReason: "Invalid currency: xyz.",
		},
		{
			name:       "processor internal error",
			status:     http.StatusInternalServerError,
			body:       `{"error":{"type":"api_error","message":"something internal at req_abc"}}`,
			wantReason: "payment processor rejected the request",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newStripe(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})

			_, err := s.CreatePaymentIntent(context.Background(), 3999, "xyz")
			require.Error(t, err)
			assert.ErrorIs(t, err, entities.ErrExternalService)

			var ext *entities.ExternalServiceError
			require.ErrorAs(t, err, &ext)
			assert.Equal(t, "stripe", ext.Service)
			assert.Equal(t, tc.wantReason, ext.Reason)
		})
	}
}

func TestStripe_ParseWebhook(t *testing.T) {
	s := processor.NewStripe(config.Stripe{SecretKey: "sk_test_123", WebhookSecret: webhookSecret})

	payload := []byte(`{
		"id": "evt_1",
		"object": "event",
		"type": "payment_intent.succeeded",
		"data": {"object": {"id": "pi_abc", "object": "payment_intent", "amount": 3999, "currency": "usd"}}
	}`)

	t.Run("valid signature", func(t *testing.T) {
		sig := processor.SignPayload(payload, webhookSecret, time.Now())

		event, err := s.ParseWebhook(payload, sig)
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentEvent{
			ID:        "evt_1",
			Type:      entities.EventPaymentSucceeded,
			PaymentID: "pi_abc",
			Amount:    3999,
			Currency:  "usd",
		}, event)
	})

	t.Run("wrong secret", func(t *testing.T) {
		sig := processor.SignPayload(payload, "whsec_other", time.Now())

		_, err := s.ParseWebhook(payload, sig)
		assert.ErrorIs(t, err, entities.ErrInvalidSignature)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := s.ParseWebhook(payload, "")
		assert.ErrorIs(t, err, entities.ErrInvalidSignature)
	})

	t.Run("stale timestamp", func(t *testing.T) {
		sig := processor.SignPayload(payload, webhookSecret, time.Now().Add(-time.Hour))

		_, err := s.ParseWebhook(payload, sig)
		assert.ErrorIs(t, err, entities.ErrInvalidSignature)
	})

	t.Run("tampered payload", func(t *testing.T) {
		sig := processor.SignPayload(payload, webhookSecret, time.Now())
		tampered := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_other"}}}`)

		_, err := s.ParseWebhook(tampered, sig)
		assert.ErrorIs(t, err, entities.ErrInvalidSignature)
	})

	t.Run("signed garbage", func(t *testing.T) {
		garbage := []byte(`not json`)
		sig := processor.SignPayload(garbage, webhookSecret, time.Now())

		_, err := s.ParseWebhook(garbage, sig)
		assert.ErrorIs(t, err, entities.ErrInvalidPayload)
		assert.ErrorIs(t, err, entities.ErrValidation)
	})
}

func TestStripe_ParseRelayedEvent(t *testing.T) {
	s := processor.NewStripe(config.Stripe{SecretKey: "sk_test_123", WebhookSecret: webhookSecret})

	payload := []byte(`{
		"id": "evt_2",
		"object": "event",
		"type": "payment_intent.succeeded",
		"data": {"object": {"id": "pi_late", "object": "payment_intent", "amount": 500, "currency": "usd"}}
	}`)

	t.Run("signed ten minutes ago", func(t *testing.T) {
		sig := processor.SignPayload(payload, webhookSecret, time.Now().Add(-10*time.Minute))

		_, err := s.ParseWebhook(payload, sig)
		require.ErrorIs(t, err, entities.ErrInvalidSignature)

		event, err := s.ParseRelayedEvent(payload, sig)
		require.NoError(t, err)
		assert.Equal(t, "pi_late", event.PaymentID)
		assert.Equal(t, entities.EventPaymentSucceeded, event.Type)
	})

	t.Run("signed days ago", func(t *testing.T) {
		sig := processor.SignPayload(payload, webhookSecret, time.Now().Add(-72*time.Hour))

		event, err := s.ParseRelayedEvent(payload, sig)
		require.NoError(t, err)
		assert.Equal(t, "evt_2", event.ID)
	})

	t.Run("wrong secret", func(t *testing.T) {
		sig := processor.SignPayload(payload, "whsec_other", time.Now().Add(-10*time.Minute))

		_, err := s.ParseRelayedEvent(payload, sig)
		assert.ErrorIs(t, err, entities.ErrInvalidSignature)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := s.ParseRelayedEvent(payload, "")
		assert.ErrorIs(t, err, entities.ErrInvalidSignature)
	})

	t.Run("signed garbage", func(t *testing.T) {
		garbage := []byte(`not json`)
		sig := processor.SignPayload(garbage, webhookSecret, time.Now())

		_, err := s.ParseRelayedEvent(garbage, sig)
		assert.ErrorIs(t, err, entities.ErrInvalidPayload)
	})
}
