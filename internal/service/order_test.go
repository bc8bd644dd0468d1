package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/printshop-order-service/internal/config"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/service"
	mocks "github.com/SergeyBogomolovv/printshop-order-service/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/printshop-order-service/pkg/trm/mocks"
	"github.com/SergeyBogomolovv/printshop-order-service/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	fixedNow = time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)

	noDelay = utils.RetryConfig{MaxAttempts: 3}

	orderNumberRe = regexp.MustCompile(`^ORD-\d{8}-[0-9A-F]{8}$`)
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func inlineTx(t *testing.T) *txMocks.MockManager {
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
	return tx
}

func scenarioA() entities.NewOrder {
	return entities.NewOrder{
		CustomerEmail: "a@b.com",
		CustomerName:  "A",
		TotalAmount:   decimal.RequireFromString("53.18"),
		Items: []entities.NewOrderItem{
			{ProductID: 1, Quantity: 1, PriceAtPurchase: decimal.RequireFromString("39.99")},
		},
	}
}

// persisted mimics what the store returns for an inserted order.
func persisted(id int64, number string, in entities.NewOrder) entities.Order {
	return entities.Order{
		ID:            id,
		OrderNumber:   number,
		CustomerEmail: in.CustomerEmail,
		CustomerName:  in.CustomerName,
		TotalAmount:   in.TotalAmount,
		Status:        in.Status,
		PaymentID:     in.PaymentID,
		UserID:        in.UserID,
		CreatedAt:     fixedNow,
		UpdatedAt:     fixedNow,
	}
}

func persistedItems(orderID int64, items []entities.NewOrderItem) []entities.OrderItem {
	res := make([]entities.OrderItem, 0, len(items))
	for i, it := range items {
		res = append(res, entities.OrderItem{
			ID:              orderID*100 + int64(i),
			OrderID:         orderID,
			ProductID:       it.ProductID,
			Quantity:        it.Quantity,
			PriceAtPurchase: it.PriceAtPurchase,
		})
	}
	return res
}

type orderAPI interface {
	CreateOrder(ctx context.Context, in entities.NewOrder) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) (entities.Order, error)
	UpdateOrder(ctx context.Context, id int64, upd entities.OrderUpdate) (entities.Order, error)
	ProcessPayment(ctx context.Context, id int64, paymentID string) (entities.Order, error)
	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	GetOrdersByCustomerEmail(ctx context.Context, email string, page entities.Page) ([]entities.Order, error)
	GetOrdersByUser(ctx context.Context, userID int64, page entities.Page) ([]entities.Order, error)
	WarmUpCache(ctx context.Context, count int) error
}

type orderDeps struct {
	repo      *mocks.MockOrderRepo
	stock     *mocks.MockStockReserver
	cache     *mocks.MockCache
	publisher *mocks.MockEventPublisher
}

func newOrderService(t *testing.T, cfg config.Orders, opts ...service.Option) (orderDeps, orderAPI) {
	deps := orderDeps{
		repo:      mocks.NewMockOrderRepo(t),
		stock:     mocks.NewMockStockReserver(t),
		cache:     mocks.NewMockCache(t),
		publisher: mocks.NewMockEventPublisher(t),
	}
	if cfg.NumberAttempts == 0 {
		cfg.NumberAttempts = 5
	}

	opts = append([]service.Option{
		service.WithClock(func() time.Time { return fixedNow }),
		service.WithRetryConfig(noDelay),
	}, opts...)

	svc := service.NewOrderService(discardLogger(), cfg, inlineTx(t), deps.repo, deps.stock, deps.cache, deps.publisher, opts...)
	return deps, svc
}

func TestOrderService_CreateOrder(t *testing.T) {
	t.Run("scenario A: pending order with generated number", func(t *testing.T) {
		deps, svc := newOrderService(t, config.Orders{})
		in := scenarioA()

		deps.repo.EXPECT().
			CreateOrder(mock.Anything, mock.AnythingOfType("string"), mock.Anything).
			RunAndReturn(func(_ context.Context, number string, o entities.NewOrder) (entities.Order, error) {
				assert.Equal(t, entities.StatusPending, o.Status)
				return persisted(1, number, o), nil
			}).Once()
		deps.repo.EXPECT().
			SaveItems(mock.Anything, int64(1), in.Items).
			RunAndReturn(func(_ context.Context, id int64, items []entities.NewOrderItem) ([]entities.OrderItem, error) {
				return persistedItems(id, items), nil
			}).Once()
		deps.cache.EXPECT().Delete(int64(1)).Once()
		deps.publisher.EXPECT().
			PublishOrderEvent(mock.Anything, mock.MatchedBy(func(e entities.OrderEvent) bool {
				return e.Type == entities.EventOrderCreated && e.OrderID == 1
			})).
			Return(nil).Once()

		order, err := svc.CreateOrder(context.Background(), in)
		require.NoError(t, err)

		assert.Equal(t, int64(1), order.ID)
		assert.Equal(t, entities.StatusPending, order.Status)
		assert.Regexp(t, orderNumberRe, order.OrderNumber)
		assert.Equal(t, "ORD-20260307-", order.OrderNumber[:13])
		assert.Nil(t, order.UserID)

		require.Len(t, order.Items, 1)
		assert.Equal(t, int64(1), order.Items[0].ProductID)
		assert.Equal(t, 1, order.Items[0].Quantity)
		assert.True(t, order.Items[0].PriceAtPurchase.Equal(decimal.RequireFromString("39.99")))
	})

	t.Run("round trip keeps every item", func(t *testing.T) {
		deps, svc := newOrderService(t, config.Orders{})
		uid := int64(7)
		in := scenarioA()
		in.UserID = &uid
		in.Items = []entities.NewOrderItem{
			{ProductID: 1, Quantity: 2, PriceAtPurchase: decimal.RequireFromString("10.50")},
			{ProductID: 2, Quantity: 1, PriceAtPurchase: decimal.RequireFromString("0.01")},
			{ProductID: 3, Quantity: 40, PriceAtPurchase: decimal.RequireFromString("1234.56")},
		}

		deps.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, number string, o entities.NewOrder) (entities.Order, error) {
				return persisted(2, number, o), nil
			}).Once()
		deps.repo.EXPECT().SaveItems(mock.Anything, int64(2), mock.Anything).
			RunAndReturn(func(_ context.Context, id int64, items []entities.NewOrderItem) ([]entities.OrderItem, error) {
				return persistedItems(id, items), nil
			}).Once()
		deps.cache.EXPECT().Delete(int64(2)).Once()
		deps.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Once()

		order, err := svc.CreateOrder(context.Background(), in)
		require.NoError(t, err)

		require.Len(t, order.Items, len(in.Items))
		for i, it := range in.Items {
			assert.Equal(t, it.ProductID, order.Items[i].ProductID)
			assert.Equal(t, it.Quantity, order.Items[i].Quantity)
			assert.True(t, it.PriceAtPurchase.Equal(order.Items[i].PriceAtPurchase))
		}
		require.NotNil(t, order.UserID)
		assert.Equal(t, uid, *order.UserID)
	})

	t.Run("validation error touches nothing", func(t *testing.T) {
		_, svc := newOrderService(t, config.Orders{})
		in := scenarioA()
		in.Items[0].Quantity = 0

		_, err := svc.CreateOrder(context.Background(), in)
		assert.ErrorIs(t, err, entities.ErrValidation)
	})

	t.Run("order number collision is regenerated", func(t *testing.T) {
		numbers := []string{"ORD-20260307-AAAAAAAA", "ORD-20260307-BBBBBBBB"}
		next := 0
		deps, svc := newOrderService(t, config.Orders{}, service.WithNumberGenerator(func(time.Time) string {
			n := numbers[next]
			next++
			return n
		}))

		deps.repo.EXPECT().CreateOrder(mock.Anything, "ORD-20260307-AAAAAAAA", mock.Anything).
			Return(entities.Order{}, entities.ErrOrderNumberTaken).Once()
		deps.repo.EXPECT().CreateOrder(mock.Anything, "ORD-20260307-BBBBBBBB", mock.Anything).
			RunAndReturn(func(_ context.Context, number string, o entities.NewOrder) (entities.Order, error) {
				return persisted(3, number, o), nil
			}).Once()
		deps.repo.EXPECT().SaveItems(mock.Anything, int64(3), mock.Anything).
			Return([]entities.OrderItem{{ID: 1, OrderID: 3}}, nil).Once()
		deps.cache.EXPECT().Delete(int64(3)).Once()
		deps.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Once()

		order, err := svc.CreateOrder(context.Background(), scenarioA())
		require.NoError(t, err)
		assert.Equal(t, "ORD-20260307-BBBBBBBB", order.OrderNumber)
	})

	t.Run("number attempts exhausted", func(t *testing.T) {
		deps, svc := newOrderService(t, config.Orders{NumberAttempts: 2})

		deps.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything).
			Return(entities.Order{}, entities.ErrOrderNumberTaken).Twice()

		_, err := svc.CreateOrder(context.Background(), scenarioA())
		assert.ErrorIs(t, err, entities.ErrConflict)
	})

	t.Run("duplicate payment id is not retried", func(t *testing.T) {
		deps, svc := newOrderService(t, config.Orders{})
		in := scenarioA()
		in.PaymentID = "pi_abc"

		deps.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything).
			Return(entities.Order{}, entities.ErrPaymentIDTaken).Once()

		_, err := svc.CreateOrder(context.Background(), in)
		assert.ErrorIs(t, err, entities.ErrPaymentIDTaken)
		assert.ErrorIs(t, err, entities.ErrConflict)
	})

	t.Run("item insert failure rolls back without side effects", func(t *testing.T) {
		deps, svc := newOrderService(t, config.Orders{})
		dbErr := errors.New("db error")

		deps.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything).
			Return(entities.Order{ID: 4}, nil).Once()
		deps.repo.EXPECT().SaveItems(mock.Anything, int64(4), mock.Anything).
			Return(nil, dbErr).Once()

		_, err := svc.CreateOrder(context.Background(), scenarioA())
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("unknown product is a validation error", func(t *testing.T) {
		deps, svc := newOrderService(t, config.Orders{})

		deps.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything).
			Return(entities.Order{ID: 4}, nil).Once()
		deps.repo.EXPECT().SaveItems(mock.Anything, int64(4), mock.Anything).
			Return(nil, entities.ErrProductNotFound).Once()

		_, err := svc.CreateOrder(context.Background(), scenarioA())
		assert.ErrorIs(t, err, entities.ErrValidation)
	})

	t.Run("stock reservation", func(t *testing.T) {
		deps, svc := newOrderService(t, config.Orders{ReserveStock: true})

		deps.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, number string, o entities.NewOrder) (entities.Order, error) {
				return persisted(5, number, o), nil
			}).Once()
		deps.stock.EXPECT().DecrementStock(mock.Anything, int64(1), 1).Return(nil).Once()
		deps.repo.EXPECT().SaveItems(mock.Anything, int64(5), mock.Anything).
			Return([]entities.OrderItem{{ID: 1, OrderID: 5, ProductID: 1, Quantity: 1}}, nil).Once()
		deps.cache.EXPECT().Delete(int64(5)).Once()
		deps.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Once()

		_, err := svc.CreateOrder(context.Background(), scenarioA())
		require.NoError(t, err)
	})

	t.Run("insufficient stock aborts creation", func(t *testing.T) {
		deps, svc := newOrderService(t, config.Orders{ReserveStock: true})

		deps.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything).
			Return(entities.Order{ID: 6}, nil).Once()
		deps.stock.EXPECT().DecrementStock(mock.Anything, int64(1), 1).
			Return(entities.ErrInsufficientStock).Once()

		_, err := svc.CreateOrder(context.Background(), scenarioA())
		assert.ErrorIs(t, err, entities.ErrInsufficientStock)
		assert.ErrorIs(t, err, entities.ErrValidation)
	})

	t.Run("publish failure does not fail the order", func(t *testing.T) {
		deps, svc := newOrderService(t, config.Orders{})

		deps.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, number string, o entities.NewOrder) (entities.Order, error) {
				return persisted(7, number, o), nil
			}).Once()
		deps.repo.EXPECT().SaveItems(mock.Anything, int64(7), mock.Anything).
			Return([]entities.OrderItem{}, nil).Once()
		deps.cache.EXPECT().Delete(int64(7)).Once()
		deps.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).
			Return(errors.New("kafka down")).Once()

		order, err := svc.CreateOrder(context.Background(), scenarioA())
		require.NoError(t, err)
		assert.Equal(t, int64(7), order.ID)
	})
}

// The unique constraint is emulated by the repo mock; the generator has to
// stay collision free for many orders created within the same second.
func TestOrderService_CreateOrder_RapidCreations(t *testing.T) {
	deps, svc := newOrderService(t, config.Orders{})

	var (
		mu     sync.Mutex
		taken  = map[string]bool{}
		nextID int64
	)

	deps.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, number string, o entities.NewOrder) (entities.Order, error) {
			mu.Lock()
			defer mu.Unlock()
			if taken[number] {
				return entities.Order{}, entities.ErrOrderNumberTaken
			}
			taken[number] = true
			nextID++
			return persisted(nextID, number, o), nil
		})
	deps.repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id int64, items []entities.NewOrderItem) ([]entities.OrderItem, error) {
			return persistedItems(id, items), nil
		})
	deps.cache.EXPECT().Delete(mock.Anything)
	deps.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil)

	const n = 100
	numbers := make(map[string]struct{}, n)
	ids := make(map[int64]struct{}, n)

	var wg sync.WaitGroup
	var resMu sync.Mutex
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			in := scenarioA()
			in.CustomerName = fmt.Sprintf("customer %d", i)

			order, err := svc.CreateOrder(context.Background(), in)
			if !assert.NoError(t, err) {
				return
			}
			resMu.Lock()
			numbers[order.OrderNumber] = struct{}{}
			ids[order.ID] = struct{}{}
			resMu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, numbers, n)
	assert.Len(t, ids, n)
	for number := range numbers {
		assert.Regexp(t, orderNumberRe, number)
	}
}

func TestOrderService_CreateOrder_ScenarioB(t *testing.T) {
	deps, svc := newOrderService(t, config.Orders{})

	var nextID int64
	deps.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, number string, o entities.NewOrder) (entities.Order, error) {
			nextID++
			return persisted(nextID, number, o), nil
		}).Twice()
	deps.repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id int64, items []entities.NewOrderItem) ([]entities.OrderItem, error) {
			return persistedItems(id, items), nil
		}).Twice()
	deps.cache.EXPECT().Delete(mock.Anything).Twice()
	deps.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Twice()

	first := scenarioA()
	second := scenarioA()
	second.Items = []entities.NewOrderItem{{ProductID: 2, Quantity: 3, PriceAtPurchase: decimal.RequireFromString("17.72")}}

	a, err := svc.CreateOrder(context.Background(), first)
	require.NoError(t, err)
	b, err := svc.CreateOrder(context.Background(), second)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.OrderNumber, b.OrderNumber)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	t.Run("rejects unknown status", func(t *testing.T) {
		_, svc := newOrderService(t, config.Orders{})

		_, err := svc.UpdateOrderStatus(context.Background(), 1, "shipped-ish")

		var ve *entities.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "status", ve.Field)
	})

	for _, status := range entities.Statuses() {
		t.Run("accepts "+string(status), func(t *testing.T) {
			deps, svc := newOrderService(t, config.Orders{})

			current := entities.Order{ID: 1, OrderNumber: "ORD-1", Status: entities.StatusPending}
			deps.repo.EXPECT().LockOrderByID(mock.Anything, int64(1)).Return(current, nil).Once()
			deps.repo.EXPECT().
				UpdateOrder(mock.Anything, int64(1), mock.MatchedBy(func(u entities.OrderUpdate) bool {
					return u.Status != nil && *u.Status == status && u.PaymentID == nil
				})).
				RunAndReturn(func(_ context.Context, id int64, u entities.OrderUpdate) (entities.Order, error) {
					updated := current
					updated.Status = *u.Status
					updated.UpdatedAt = fixedNow.Add(time.Minute)
					return updated, nil
				}).Once()
			deps.cache.EXPECT().Delete(int64(1)).Once()
			if status != entities.StatusPending {
				deps.publisher.EXPECT().
					PublishOrderEvent(mock.Anything, entities.OrderEvent{
						Type:           entities.EventOrderStatusChanged,
						OrderID:        1,
						OrderNumber:    "ORD-1",
						Status:         status,
						PreviousStatus: entities.StatusPending,
						OccurredAt:     fixedNow.Add(time.Minute),
					}).
					Return(nil).Once()
			}

			order, err := svc.UpdateOrderStatus(context.Background(), 1, string(status))
			require.NoError(t, err)
			assert.Equal(t, status, order.Status)
		})
	}

	t.Run("writes outside the state machine are allowed", func(t *testing.T) {
		deps, svc := newOrderService(t, config.Orders{})

		deps.repo.EXPECT().LockOrderByID(mock.Anything, int64(2)).
			Return(entities.Order{ID: 2, Status: entities.StatusDelivered}, nil).Once()
		deps.repo.EXPECT().UpdateOrder(mock.Anything, int64(2), mock.Anything).
			Return(entities.Order{ID: 2, Status: entities.StatusPending}, nil).Once()
		deps.cache.EXPECT().Delete(int64(2)).Once()
		deps.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Once()

		order, err := svc.UpdateOrderStatus(context.Background(), 2, "pending")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusPending, order.Status)
	})

	t.Run("not found", func(t *testing.T) {
		deps, svc := newOrderService(t, config.Orders{})

		deps.repo.EXPECT().LockOrderByID(mock.Anything, int64(404)).
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		_, err := svc.UpdateOrderStatus(context.Background(), 404, "paid")
		assert.ErrorIs(t, err, entities.ErrNotFound)
	})
}

func TestOrderService_UpdateOrder(t *testing.T) {
	t.Run("assigns payment id", func(t *testing.T) {
		deps, svc := newOrderService(t, config.Orders{})
		paymentID := "pi_abc"

		deps.repo.EXPECT().LockOrderByID(mock.Anything, int64(1)).
			Return(entities.Order{ID: 1, Status: entities.StatusPending}, nil).Once()
		deps.repo.EXPECT().UpdateOrder(mock.Anything, int64(1), entities.OrderUpdate{PaymentID: &paymentID}).
			Return(entities.Order{ID: 1, Status: entities.StatusPending, PaymentID: paymentID}, nil).Once()
		deps.cache.EXPECT().Delete(int64(1)).Once()

		order, err := svc.UpdateOrder(context.Background(), 1, entities.OrderUpdate{PaymentID: &paymentID})
		require.NoError(t, err)
		assert.Equal(t, "pi_abc", order.PaymentID)
	})

	t.Run("payment id taken", func(t *testing.T) {
		deps, svc := newOrderService(t, config.Orders{})
		paymentID := "pi_dup"

		deps.repo.EXPECT().LockOrderByID(mock.Anything, int64(1)).
			Return(entities.Order{ID: 1, Status: entities.StatusPending}, nil).Once()
		deps.repo.EXPECT().UpdateOrder(mock.Anything, int64(1), mock.Anything).
			Return(entities.Order{}, entities.ErrPaymentIDTaken).Once()

		_, err := svc.UpdateOrder(context.Background(), 1, entities.OrderUpdate{PaymentID: &paymentID})
		assert.ErrorIs(t, err, entities.ErrConflict)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, svc := newOrderService(t, config.Orders{})
		bad := entities.OrderStatus("refunded")

		_, err := svc.UpdateOrder(context.Background(), 1, entities.OrderUpdate{Status: &bad})
		assert.ErrorIs(t, err, entities.ErrValidation)
	})

	t.Run("empty update returns current order", func(t *testing.T) {
		deps, svc := newOrderService(t, config.Orders{})

		deps.cache.EXPECT().Get(int64(1)).Return(entities.Order{ID: 1, Status: entities.StatusPaid}, true).Once()

		order, err := svc.UpdateOrder(context.Background(), 1, entities.OrderUpdate{})
		require.NoError(t, err)
		assert.Equal(t, entities.StatusPaid, order.Status)
	})
}

func TestOrderService_ProcessPayment(t *testing.T) {
	t.Run("pending order becomes paid with the payment id", func(t *testing.T) {
		deps, svc := newOrderService(t, config.Orders{})
		paid := entities.StatusPaid
		paymentID := "pi_abc"

		deps.repo.EXPECT().LockOrderByID(mock.Anything, int64(1)).
			Return(entities.Order{ID: 1, OrderNumber: "ORD-1", Status: entities.StatusPending}, nil).Once()
		deps.repo.EXPECT().UpdateOrder(mock.Anything, int64(1), entities.OrderUpdate{Status: &paid, PaymentID: &paymentID}).
			Return(entities.Order{ID: 1, OrderNumber: "ORD-1", Status: entities.StatusPaid, PaymentID: paymentID}, nil).Once()
		deps.cache.EXPECT().Delete(int64(1)).Once()
		deps.publisher.EXPECT().
			PublishOrderEvent(mock.Anything, mock.MatchedBy(func(e entities.OrderEvent) bool {
				return e.Type == entities.EventOrderStatusChanged &&
					e.PreviousStatus == entities.StatusPending &&
					e.Status == entities.StatusPaid &&
					e.PaymentID == "pi_abc"
			})).
			Return(nil).Once()

		order, err := svc.ProcessPayment(context.Background(), 1, " pi_abc ")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusPaid, order.Status)
		assert.Equal(t, "pi_abc", order.PaymentID)
	})

	for _, status := range []entities.OrderStatus{entities.StatusPaid, entities.StatusShipped, entities.StatusCancelled} {
		t.Run("rejects "+string(status), func(t *testing.T) {
			deps, svc := newOrderService(t, config.Orders{})

			deps.repo.EXPECT().LockOrderByID(mock.Anything, int64(1)).
				Return(entities.Order{ID: 1, Status: status}, nil).Once()

			_, err := svc.ProcessPayment(context.Background(), 1, "pi_abc")

			var ve *entities.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "status", ve.Field)
			assert.Contains(t, ve.Reason, string(status))
			deps.repo.AssertNotCalled(t, "UpdateOrder", mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("payment id required", func(t *testing.T) {
		_, svc := newOrderService(t, config.Orders{})

		_, err := svc.ProcessPayment(context.Background(), 1, "  ")
		assert.ErrorIs(t, err, entities.ErrValidation)
	})

	t.Run("payment id taken", func(t *testing.T) {
		deps, svc := newOrderService(t, config.Orders{})

		deps.repo.EXPECT().LockOrderByID(mock.Anything, int64(1)).
			Return(entities.Order{ID: 1, Status: entities.StatusPending}, nil).Once()
		deps.repo.EXPECT().UpdateOrder(mock.Anything, int64(1), mock.Anything).
			Return(entities.Order{}, entities.ErrPaymentIDTaken).Once()

		_, err := svc.ProcessPayment(context.Background(), 1, "pi_dup")
		assert.ErrorIs(t, err, entities.ErrConflict)
	})

	t.Run("order not found", func(t *testing.T) {
		deps, svc := newOrderService(t, config.Orders{})

		deps.repo.EXPECT().LockOrderByID(mock.Anything, int64(404)).
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		_, err := svc.ProcessPayment(context.Background(), 404, "pi_abc")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestOrderService_GetOrderByID(t *testing.T) {
	cached := entities.Order{ID: 1, OrderNumber: "ORD-1", Status: entities.StatusPending}

	testCases := []struct {
		name         string
		mockBehavior func(deps orderDeps)
		want         entities.Order
		wantErr      error
	}{
		{
			name: "cache hit",
			mockBehavior: func(deps orderDeps) {
				deps.cache.EXPECT().Get(int64(1)).Return(cached, true).Once()
			},
			want: cached,
		},
		{
			name: "cache miss loads and stores",
			mockBehavior: func(deps orderDeps) {
				deps.cache.EXPECT().Get(int64(1)).Return(entities.Order{}, false).Once()
				deps.cache.EXPECT().Version(int64(1)).Return(uint64(4)).Once()
				deps.repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).Return(cached, nil).Once()
				deps.cache.EXPECT().SetIfVersion(int64(1), cached, uint64(4)).Return(true).Once()
			},
			want: cached,
		},
		{
			name: "stale fill is refused but the read still succeeds",
			mockBehavior: func(deps orderDeps) {
				deps.cache.EXPECT().Get(int64(1)).Return(entities.Order{}, false).Once()
				deps.cache.EXPECT().Version(int64(1)).Return(uint64(4)).Once()
				deps.repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).Return(cached, nil).Once()
				deps.cache.EXPECT().SetIfVersion(int64(1), cached, uint64(4)).Return(false).Once()
			},
			want: cached,
		},
		{
			name: "not found is not retried",
			mockBehavior: func(deps orderDeps) {
				deps.cache.EXPECT().Get(int64(1)).Return(entities.Order{}, false).Once()
				deps.cache.EXPECT().Version(int64(1)).Return(uint64(0)).Once()
				deps.repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "transient error is retried",
			mockBehavior: func(deps orderDeps) {
				deps.cache.EXPECT().Get(int64(1)).Return(entities.Order{}, false).Once()
				deps.cache.EXPECT().Version(int64(1)).Return(uint64(0)).Once()
				deps.repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).
					Return(entities.Order{}, errors.New("conn reset")).Once()
				deps.repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).Return(cached, nil).Once()
				deps.cache.EXPECT().SetIfVersion(int64(1), cached, uint64(0)).Return(true).Once()
			},
			want: cached,
		},
		{
			name: "retries exhausted",
			mockBehavior: func(deps orderDeps) {
				deps.cache.EXPECT().Get(int64(1)).Return(entities.Order{}, false).Once()
				deps.cache.EXPECT().Version(int64(1)).Return(uint64(0)).Once()
				deps.repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).
					Return(entities.Order{}, errors.New("conn reset")).Times(noDelay.MaxAttempts)
			},
			wantErr: errors.New("conn reset"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			deps, svc := newOrderService(t, config.Orders{})
			tc.mockBehavior(deps)

			order, err := svc.GetOrderByID(context.Background(), 1)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, order)
		})
	}
}

func TestOrderService_GetOrderByNumber(t *testing.T) {
	deps, svc := newOrderService(t, config.Orders{})
	order := entities.Order{ID: 9, OrderNumber: "ORD-20260307-ABCDEF12"}

	deps.repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD-20260307-ABCDEF12").Return(order, nil).Once()

	got, err := svc.GetOrderByNumber(context.Background(), "ORD-20260307-ABCDEF12")
	require.NoError(t, err)
	assert.Equal(t, order, got)
}

func TestOrderService_ListOrders(t *testing.T) {
	uid := int64(7)

	testCases := []struct {
		name       string
		call       func(svc orderAPI) ([]entities.Order, error)
		wantFilter entities.OrderFilter
	}{
		{
			name: "list default limit",
			call: func(svc orderAPI) ([]entities.Order, error) {
				return svc.ListOrders(context.Background(), entities.OrderFilter{Status: entities.StatusPaid})
			},
			wantFilter: entities.OrderFilter{Status: entities.StatusPaid, Page: entities.Page{Limit: 100}},
		},
		{
			name: "list clamps limit",
			call: func(svc orderAPI) ([]entities.Order, error) {
				return svc.ListOrders(context.Background(), entities.OrderFilter{Page: entities.Page{Skip: 5, Limit: 1000}})
			},
			wantFilter: entities.OrderFilter{Page: entities.Page{Skip: 5, Limit: 100}},
		},
		{
			name: "by customer email",
			call: func(svc orderAPI) ([]entities.Order, error) {
				return svc.GetOrdersByCustomerEmail(context.Background(), "a@b.com", entities.Page{})
			},
			wantFilter: entities.OrderFilter{CustomerEmail: "a@b.com", Page: entities.Page{Limit: 50}},
		},
		{
			name: "by user",
			call: func(svc orderAPI) ([]entities.Order, error) {
				return svc.GetOrdersByUser(context.Background(), uid, entities.Page{Limit: 500})
			},
			wantFilter: entities.OrderFilter{UserID: &uid, Page: entities.Page{Limit: 100}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			deps, svc := newOrderService(t, config.Orders{})

			deps.repo.EXPECT().ListOrders(mock.Anything, tc.wantFilter).Return(nil, nil).Once()

			orders, err := tc.call(svc)
			require.NoError(t, err)
			assert.NotNil(t, orders)
			assert.Empty(t, orders)
		})
	}
}

func TestOrderService_WarmUpCache(t *testing.T) {
	deps, svc := newOrderService(t, config.Orders{})
	orders := []entities.Order{{ID: 3}, {ID: 2}, {ID: 1}}

	deps.repo.EXPECT().ListOrders(mock.Anything, entities.OrderFilter{Page: entities.Page{Limit: 1000}}).
		Return(orders, nil).Once()
	for _, o := range orders {
		deps.cache.EXPECT().Set(o.ID, o).Once()
	}

	require.NoError(t, svc.WarmUpCache(context.Background(), 1000))
}
