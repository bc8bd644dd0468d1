package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/printshop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/printshop-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	defaultCurrency = "usd"
	maxWebhookBytes = 1 << 20
)

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, currency string) (entities.PaymentIntent, error)
	HandleEvent(ctx context.Context, event entities.PaymentEvent) (entities.EventResult, error)
}

type WebhookParser interface {
	ParseWebhook(payload []byte, signature string) (entities.PaymentEvent, error)
}

type PaymentHandler struct {
	logger          *slog.Logger
	validate        *validator.Validate
	svc             PaymentService
	parser          WebhookParser
	signatureHeader string
}

func NewPaymentHandler(logger *slog.Logger, svc PaymentService, parser WebhookParser, signatureHeader string) *PaymentHandler {
	return &PaymentHandler{
		logger:          logger.With(slog.String("handler", "payments")),
		validate:        newValidator(),
		svc:             svc,
		parser:          parser,
		signatureHeader: signatureHeader,
	}
}

func (h *PaymentHandler) Init(r chi.Router) {
	r.Route("/payments", func(r chi.Router) {
		r.Post("/create-intent", h.CreateIntent)
		r.Post("/webhook", h.Webhook)
	})
}

// CreateIntent creates a payment intent with the payment processor.
// @Summary      Create payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        intent  body      CreateIntentRequest  true  "Amount in currency units"
// @Success      200     {object}  CreateIntentResponse
// @Failure      400     {object}  utils.ErrorResponse "Payment processor rejected the request"
// @Failure      422     {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      500     {object}  utils.ErrorResponse "Internal server error"
// @Router       /payments/create-intent [post]
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateIntentRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err, http.StatusUnprocessableEntity, nil)
		return
	}
	if req.Currency == "" {
		req.Currency = defaultCurrency
	}

	intent, err := h.svc.CreatePaymentIntent(ctx, req.Amount, req.Currency)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "create payment intent")
		return
	}

	utils.WriteJSON(w, CreateIntentResponse{ClientSecret: intent.ClientSecret}, http.StatusOK)
}

// Webhook receives payment processor notifications. Any verified event is
// acknowledged with 200 so the processor does not redeliver it; only a bad
// signature or an unparseable payload is rejected.
// @Summary      Payment processor webhook
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header    string  true  "Processor signature"
// @Success      200  {object}  WebhookResponse
// @Failure      400  {object}  utils.ErrorResponse "Invalid signature or payload"
// @Router       /payments/webhook [post]
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBytes))
	if err != nil {
		paymentEvents.WithLabelValues(sourceWebhook, resultRejected).Inc()
		utils.WriteError(w, "invalid payload", http.StatusBadRequest)
		return
	}

	event, err := h.parser.ParseWebhook(payload, r.Header.Get(h.signatureHeader))
	if err != nil {
		paymentEvents.WithLabelValues(sourceWebhook, resultRejected).Inc()
		h.logger.WarnContext(ctx, "rejected webhook", slog.Any("error", err))

		msg := "invalid payload"
		if errors.Is(err, entities.ErrInvalidSignature) {
			msg = "invalid signature"
		}
		utils.WriteError(w, msg, http.StatusBadRequest)
		return
	}

	logger := h.logger.With(slog.String("event_id", event.ID), slog.String("event_type", event.Type))

	result, err := h.svc.HandleEvent(ctx, event)
	if err != nil {
		paymentEvents.WithLabelValues(sourceWebhook, resultFailed).Inc()
		logger.ErrorContext(ctx, "failed to handle payment event", slog.Any("error", err))
	} else {
		paymentEvents.WithLabelValues(sourceWebhook, string(result)).Inc()
		logger.DebugContext(ctx, "payment event handled", slog.String("result", string(result)))
	}

	utils.WriteJSON(w, WebhookResponse{Status: "success"}, http.StatusOK)
}
