package service_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/printshop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/service"
	mocks "github.com/SergeyBogomolovv/printshop-order-service/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentDeps struct {
	repo      *mocks.MockPaymentRepo
	processor *mocks.MockPaymentProcessor
	cache     *mocks.MockCache
	publisher *mocks.MockEventPublisher
}

type paymentAPI interface {
	CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, currency string) (entities.PaymentIntent, error)
	HandleEvent(ctx context.Context, event entities.PaymentEvent) (entities.EventResult, error)
	HandlePaymentSucceeded(ctx context.Context, paymentID string) (entities.Order, error)
}

func newPaymentService(t *testing.T) (paymentDeps, paymentAPI) {
	deps := paymentDeps{
		repo:      mocks.NewMockPaymentRepo(t),
		processor: mocks.NewMockPaymentProcessor(t),
		cache:     mocks.NewMockCache(t),
		publisher: mocks.NewMockEventPublisher(t),
	}
	svc := service.NewPaymentService(discardLogger(), inlineTx(t), deps.repo, deps.processor, deps.cache, deps.publisher,
		service.WithRetryConfig(noDelay),
	)
	return deps, svc
}

func TestPaymentService_CreatePaymentIntent(t *testing.T) {
	intent := entities.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret_abc"}

	testCases := []struct {
		name         string
		amount       string
		currency     string
		mockBehavior func(p *mocks.MockPaymentProcessor)
		want         entities.PaymentIntent
		wantErr      error
	}{
		{
			name:     "scenario E: amount in minor units",
			amount:   "39.99",
			currency: "usd",
			mockBehavior: func(p *mocks.MockPaymentProcessor) {
				p.EXPECT().CreatePaymentIntent(mock.Anything, int64(3999), "usd").Return(intent, nil).Once()
			},
			want: intent,
		},
		{
			name:     "currency normalized",
			amount:   "10",
			currency: " EUR ",
			mockBehavior: func(p *mocks.MockPaymentProcessor) {
				p.EXPECT().CreatePaymentIntent(mock.Anything, int64(1000), "eur").Return(intent, nil).Once()
			},
			want: intent,
		},
		{
			name:     "sub-cent digits truncated",
			amount:   "1.239",
			currency: "usd",
			mockBehavior: func(p *mocks.MockPaymentProcessor) {
				p.EXPECT().CreatePaymentIntent(mock.Anything, int64(123), "usd").Return(intent, nil).Once()
			},
			want: intent,
		},
		{
			name:         "zero amount",
			amount:       "0",
			currency:     "usd",
			mockBehavior: func(p *mocks.MockPaymentProcessor) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:         "negative amount",
			amount:       "-5",
			currency:     "usd",
			mockBehavior: func(p *mocks.MockPaymentProcessor) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:         "below one minor unit",
			amount:       "0.001",
			currency:     "usd",
			mockBehavior: func(p *mocks.MockPaymentProcessor) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:         "missing currency",
			amount:       "1",
			currency:     "  ",
			mockBehavior: func(p *mocks.MockPaymentProcessor) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:     "processor rejects",
			amount:   "39.99",
			currency: "usd",
			mockBehavior: func(p *mocks.MockPaymentProcessor) {
				p.EXPECT().CreatePaymentIntent(mock.Anything, int64(3999), "usd").
					Return(entities.PaymentIntent{}, &entities.ExternalServiceError{Service: "stripe", Reason: "Invalid currency"}).Once()
			},
			wantErr: entities.ErrExternalService,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			deps, svc := newPaymentService(t)
			tc.mockBehavior(deps.processor)

			got, err := svc.CreatePaymentIntent(context.Background(), decimal.RequireFromString(tc.amount), tc.currency)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// statefulPaymentRepo wires the repo mock to a single in-memory order so
// repeated deliveries observe earlier writes.
func statefulPaymentRepo(repo *mocks.MockPaymentRepo, order *entities.Order) {
	repo.EXPECT().LockOrderByPaymentID(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, paymentID string) (entities.Order, error) {
			if paymentID != order.PaymentID {
				return entities.Order{}, entities.ErrOrderNotFound
			}
			return *order, nil
		}).Maybe()
	repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id int64, upd entities.OrderUpdate) (entities.Order, error) {
			if upd.Status != nil {
				order.Status = *upd.Status
			}
			return *order, nil
		}).Maybe()
}

func TestPaymentService_HandlePaymentSucceeded(t *testing.T) {
	t.Run("pending becomes paid", func(t *testing.T) {
		deps, svc := newPaymentService(t)
		order := &entities.Order{ID: 1, OrderNumber: "ORD-1", PaymentID: "pi_X", Status: entities.StatusPending}
		statefulPaymentRepo(deps.repo, order)

		deps.cache.EXPECT().Delete(int64(1)).Once()
		deps.publisher.EXPECT().
			PublishOrderEvent(mock.Anything, mock.MatchedBy(func(e entities.OrderEvent) bool {
				return e.Type == entities.EventOrderStatusChanged &&
					e.Status == entities.StatusPaid &&
					e.PreviousStatus == entities.StatusPending &&
					e.PaymentID == "pi_X"
			})).
			Return(nil).Once()

		got, err := svc.HandlePaymentSucceeded(context.Background(), "pi_X")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusPaid, got.Status)
	})

	t.Run("scenario D: redelivery is a no-op", func(t *testing.T) {
		deps, svc := newPaymentService(t)
		order := &entities.Order{ID: 1, PaymentID: "pi_X", Status: entities.StatusPending}
		statefulPaymentRepo(deps.repo, order)

		deps.cache.EXPECT().Delete(int64(1)).Once()
		deps.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Once()

		event := entities.PaymentEvent{ID: "evt_1", Type: entities.EventPaymentSucceeded, PaymentID: "pi_X"}
		for range 2 {
			res, err := svc.HandleEvent(context.Background(), event)
			require.NoError(t, err)
			assert.Equal(t, entities.EventProcessed, res)
			assert.Equal(t, entities.StatusPaid, order.Status)
		}
		deps.repo.AssertNumberOfCalls(t, "UpdateOrder", 1)
	})

	for _, status := range []entities.OrderStatus{entities.StatusShipped, entities.StatusDelivered, entities.StatusCancelled} {
		t.Run("never regresses "+string(status), func(t *testing.T) {
			deps, svc := newPaymentService(t)
			order := &entities.Order{ID: 1, PaymentID: "pi_X", Status: status}
			statefulPaymentRepo(deps.repo, order)

			got, err := svc.HandlePaymentSucceeded(context.Background(), "pi_X")
			require.NoError(t, err)
			assert.Equal(t, status, got.Status)
			deps.repo.AssertNotCalled(t, "UpdateOrder", mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("unknown payment id", func(t *testing.T) {
		deps, svc := newPaymentService(t)
		deps.repo.EXPECT().LockOrderByPaymentID(mock.Anything, "pi_unknown").
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		_, err := svc.HandlePaymentSucceeded(context.Background(), "pi_unknown")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("empty payment id", func(t *testing.T) {
		_, svc := newPaymentService(t)

		_, err := svc.HandlePaymentSucceeded(context.Background(), "")
		assert.ErrorIs(t, err, entities.ErrValidation)
	})

	t.Run("transient failure is retried", func(t *testing.T) {
		deps, svc := newPaymentService(t)
		order := entities.Order{ID: 2, PaymentID: "pi_Y", Status: entities.StatusPending}
		paid := order
		paid.Status = entities.StatusPaid

		deps.repo.EXPECT().LockOrderByPaymentID(mock.Anything, "pi_Y").
			Return(entities.Order{}, errors.New("deadlock detected")).Once()
		deps.repo.EXPECT().LockOrderByPaymentID(mock.Anything, "pi_Y").Return(order, nil).Once()
		deps.repo.EXPECT().UpdateOrder(mock.Anything, int64(2), mock.Anything).Return(paid, nil).Once()
		deps.cache.EXPECT().Delete(int64(2)).Once()
		deps.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Once()

		got, err := svc.HandlePaymentSucceeded(context.Background(), "pi_Y")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusPaid, got.Status)
	})

	t.Run("retries exhausted", func(t *testing.T) {
		deps, svc := newPaymentService(t)
		dbErr := errors.New("connection refused")

		deps.repo.EXPECT().LockOrderByPaymentID(mock.Anything, "pi_Z").
			Return(entities.Order{}, dbErr).Times(noDelay.MaxAttempts)

		_, err := svc.HandlePaymentSucceeded(context.Background(), "pi_Z")
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestPaymentService_HandleEvent(t *testing.T) {
	t.Run("scenario C: unmatched payment leaves orders untouched", func(t *testing.T) {
		deps, svc := newPaymentService(t)
		order := &entities.Order{ID: 1, PaymentID: "pi_X", Status: entities.StatusPending}
		statefulPaymentRepo(deps.repo, order)

		res, err := svc.HandleEvent(context.Background(), entities.PaymentEvent{
			ID:        "evt_2",
			Type:      entities.EventPaymentSucceeded,
			PaymentID: "pi_unknown",
		})
		require.NoError(t, err)
		assert.Equal(t, entities.EventUnmatched, res)
		assert.Equal(t, entities.StatusPending, order.Status)
	})

	t.Run("other event types are ignored", func(t *testing.T) {
		_, svc := newPaymentService(t)

		res, err := svc.HandleEvent(context.Background(), entities.PaymentEvent{
			ID:        "evt_3",
			Type:      "payment_intent.payment_failed",
			PaymentID: "pi_X",
		})
		require.NoError(t, err)
		assert.Equal(t, entities.EventIgnored, res)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		deps, svc := newPaymentService(t)
		deps.repo.EXPECT().LockOrderByPaymentID(mock.Anything, "pi_X").
			Return(entities.Order{}, errors.New("db down")).Times(noDelay.MaxAttempts)

		_, err := svc.HandleEvent(context.Background(), entities.PaymentEvent{
			ID:        "evt_4",
			Type:      entities.EventPaymentSucceeded,
			PaymentID: "pi_X",
		})
		assert.Error(t, err)
	})
}

func TestPaymentService_LatePaymentIsLogged(t *testing.T) {
	testCases := []struct {
		status       entities.OrderStatus
		wantTerminal string
	}{
		{status: entities.StatusShipped, wantTerminal: "terminal=false"},
		{status: entities.StatusDelivered, wantTerminal: "terminal=true"},
		{status: entities.StatusCancelled, wantTerminal: "terminal=true"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.status), func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			repo := mocks.NewMockPaymentRepo(t)
			statefulPaymentRepo(repo, &entities.Order{ID: 1, PaymentID: "pi_X", Status: tc.status})

			svc := service.NewPaymentService(logger, inlineTx(t), repo, mocks.NewMockPaymentProcessor(t),
				mocks.NewMockCache(t), mocks.NewMockEventPublisher(t), service.WithRetryConfig(noDelay))

			_, err := svc.HandlePaymentSucceeded(context.Background(), "pi_X")
			require.NoError(t, err)

			out := buf.String()
			assert.Contains(t, out, "level=WARN")
			assert.Contains(t, out, "status="+string(tc.status))
			assert.Contains(t, out, tc.wantTerminal)
		})
	}
}
