package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/printshop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/printshop-order-service/pkg/trm"
	"github.com/SergeyBogomolovv/printshop-order-service/pkg/utils"
	"github.com/shopspring/decimal"
)

const minorUnitExponent = 2

type PaymentProcessor interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (entities.PaymentIntent, error)
}

type PaymentRepo interface {
	LockOrderByPaymentID(ctx context.Context, paymentID string) (entities.Order, error)
	UpdateOrder(ctx context.Context, id int64, upd entities.OrderUpdate) (entities.Order, error)
}

type paymentService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      PaymentRepo
	processor PaymentProcessor
	writes    writeNotifier
	opts      options
}

func NewPaymentService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo PaymentRepo,
	processor PaymentProcessor,
	cache Cache,
	publisher EventPublisher,
	opts ...Option,
) *paymentService {
	logger = logger.With(slog.String("service", "payment"))

	return &paymentService{
		logger:    logger,
		txManager: txManager,
		repo:      repo,
		processor: processor,
		writes:    writeNotifier{logger: logger, cache: cache, publisher: publisher},
		opts:      newOptions(opts),
	}
}

// CreatePaymentIntent converts amount to minor units, truncating anything
// past the second decimal place, and asks the processor for an intent.
func (s *paymentService) CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, currency string) (entities.PaymentIntent, error) {
	if !amount.IsPositive() {
		return entities.PaymentIntent{}, entities.NewValidationError("amount", "must be greater than 0")
	}

	minor := amount.Shift(minorUnitExponent).IntPart()
	if minor <= 0 {
		return entities.PaymentIntent{}, entities.NewValidationError("amount", "must be at least one minor currency unit")
	}

	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		return entities.PaymentIntent{}, entities.NewValidationError("currency", "is required")
	}

	intent, err := s.processor.CreatePaymentIntent(ctx, minor, currency)
	if err != nil {
		return entities.PaymentIntent{}, fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.logger.DebugContext(ctx, "payment intent created",
		slog.String("payment_id", intent.ID),
		slog.Int64("amount", minor),
		slog.String("currency", currency),
	)
	return intent, nil
}

// HandleEvent dispatches a verified processor event. An unmatched payment id
// is reported through the result, not as an error, so the sender does not
// redeliver it.
func (s *paymentService) HandleEvent(ctx context.Context, event entities.PaymentEvent) (entities.EventResult, error) {
	logger := s.logger.With(slog.String("event_id", event.ID), slog.String("event_type", event.Type))

	if event.Type != entities.EventPaymentSucceeded {
		logger.DebugContext(ctx, "ignoring payment event")
		return entities.EventIgnored, nil
	}

	_, err := s.HandlePaymentSucceeded(ctx, event.PaymentID)
	if errors.Is(err, entities.ErrOrderNotFound) {
		logger.WarnContext(ctx, "no order for payment", slog.String("payment_id", event.PaymentID))
		return entities.EventUnmatched, nil
	}
	if err != nil {
		return "", err
	}
	return entities.EventProcessed, nil
}

// HandlePaymentSucceeded marks the order linked to paymentID as paid. A
// pending order becomes paid, a paid order is left as is, and an order that
// already moved past paid or was cancelled is never regressed.
func (s *paymentService) HandlePaymentSucceeded(ctx context.Context, paymentID string) (entities.Order, error) {
	if paymentID == "" {
		return entities.Order{}, entities.NewValidationError("payment_id", "is required")
	}

	var (
		order   entities.Order
		changed bool
	)
	err := utils.Retry(ctx, s.opts.retry, func() error {
		changed = false
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			current, err := s.repo.LockOrderByPaymentID(ctx, paymentID)
			if err != nil {
				return err
			}

			switch current.Status {
			case entities.StatusPending:
				paid := entities.StatusPaid
				order, err = s.repo.UpdateOrder(ctx, current.ID, entities.OrderUpdate{Status: &paid})
				if err != nil {
					return err
				}
				changed = true
			case entities.StatusPaid:
				order = current
			default:
				s.logger.WarnContext(ctx, "payment succeeded for order past pending, status left unchanged",
					slog.Int64("order_id", current.ID),
					slog.String("payment_id", paymentID),
					slog.String("status", string(current.Status)),
					slog.Bool("terminal", current.Status.Terminal()),
				)
				order = current
			}
			return nil
		})
	}, entities.ErrOrderNotFound, entities.ErrValidation)
	if err != nil {
		if errors.Is(err, entities.ErrOrderNotFound) {
			return entities.Order{}, err
		}
		return entities.Order{}, fmt.Errorf("failed to reconcile payment %s: %w", paymentID, err)
	}

	if changed {
		s.logger.InfoContext(ctx, "order paid", slog.Int64("order_id", order.ID), slog.String("payment_id", paymentID))
		event := entities.NewStatusChangedEvent(order, entities.StatusPending)
		s.writes.committed(ctx, order, &event)
	}
	return order, nil
}
