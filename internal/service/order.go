package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/printshop-order-service/internal/config"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/printshop-order-service/pkg/trm"
	"github.com/SergeyBogomolovv/printshop-order-service/pkg/utils"
)

const (
	defaultListLimit   = 100
	defaultLookupLimit = 50
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, orderNumber string, o entities.NewOrder) (entities.Order, error)
	SaveItems(ctx context.Context, orderID int64, items []entities.NewOrderItem) ([]entities.OrderItem, error)

	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)

	// Lock* must run inside a transaction; the row stays locked until it ends.
	LockOrderByID(ctx context.Context, id int64) (entities.Order, error)
	UpdateOrder(ctx context.Context, id int64, upd entities.OrderUpdate) (entities.Order, error)
}

type StockReserver interface {
	DecrementStock(ctx context.Context, productID int64, qty int) error
}

// Cache holds orders by id. Fills after a store read go through Version and
// SetIfVersion so a read racing a write cannot cache the pre-write row.
type Cache interface {
	Get(key int64) (entities.Order, bool)
	Set(key int64, value entities.Order)
	Version(key int64) uint64
	SetIfVersion(key int64, value entities.Order, version uint64) bool
	Delete(key int64)
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event entities.OrderEvent) error
}

var defaultRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxDelay:     time.Second,
	MaxAttempts:  5,
	Multiplier:   2,
}

type Option func(*options)

type options struct {
	now       func() time.Time
	newNumber func(time.Time) string
	retry     utils.RetryConfig
}

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func WithNumberGenerator(gen func(time.Time) string) Option {
	return func(o *options) { o.newNumber = gen }
}

func WithRetryConfig(cfg utils.RetryConfig) Option {
	return func(o *options) { o.retry = cfg }
}

func newOptions(opts []Option) options {
	o := options{
		now:       time.Now,
		newNumber: entities.NewOrderNumber,
		retry:     defaultRetry,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type orderService struct {
	logger    *slog.Logger
	cfg       config.Orders
	txManager trm.Manager
	repo      OrderRepo
	stock     StockReserver
	writes    writeNotifier
	opts      options
}

func NewOrderService(
	logger *slog.Logger,
	cfg config.Orders,
	txManager trm.Manager,
	repo OrderRepo,
	stock StockReserver,
	cache Cache,
	publisher EventPublisher,
	opts ...Option,
) *orderService {
	logger = logger.With(slog.String("service", "order"))
	if cfg.NumberAttempts <= 0 {
		cfg.NumberAttempts = 1
	}

	return &orderService{
		logger:    logger,
		cfg:       cfg,
		txManager: txManager,
		repo:      repo,
		stock:     stock,
		writes:    writeNotifier{logger: logger, cache: cache, publisher: publisher},
		opts:      newOptions(opts),
	}
}

// CreateOrder persists the order and its items in one transaction. A
// colliding order number is regenerated up to cfg.NumberAttempts times.
func (s *orderService) CreateOrder(ctx context.Context, in entities.NewOrder) (entities.Order, error) {
	if in.Status == "" {
		in.Status = entities.StatusPending
	}
	if err := in.Validate(); err != nil {
		return entities.Order{}, err
	}

	for attempt := 1; attempt <= s.cfg.NumberAttempts; attempt++ {
		orderNumber := s.opts.newNumber(s.opts.now())

		var order entities.Order
		err := s.txManager.Do(ctx, func(ctx context.Context) error {
			created, err := s.repo.CreateOrder(ctx, orderNumber, in)
			if err != nil {
				return err
			}

			if s.cfg.ReserveStock {
				for _, it := range in.Items {
					if err := s.stock.DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
						return fmt.Errorf("failed to reserve stock for product %d: %w", it.ProductID, itemError(err))
					}
				}
			}

			items, err := s.repo.SaveItems(ctx, created.ID, in.Items)
			if err != nil {
				return itemError(err)
			}

			created.Items = items
			order = created
			return nil
		})

		if errors.Is(err, entities.ErrOrderNumberTaken) {
			s.logger.WarnContext(ctx, "order number collision", slog.String("order_number", orderNumber), slog.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
		}

		s.logger.DebugContext(ctx, "order created", slog.Int64("order_id", order.ID), slog.String("order_number", order.OrderNumber))

		event := entities.NewOrderCreatedEvent(order)
		s.writes.committed(ctx, order, &event)
		return order, nil
	}

	return entities.Order{}, fmt.Errorf("failed to allocate order number after %d attempts: %w", s.cfg.NumberAttempts, entities.ErrOrderNumberTaken)
}

// itemError reports a line item pointing at a missing or inactive product as
// caller input rather than a missing resource.
func itemError(err error) error {
	if errors.Is(err, entities.ErrProductNotFound) {
		return entities.NewValidationError("items", "unknown or inactive product")
	}
	return err
}

// UpdateOrderStatus writes any valid status. Writes that skip the state
// machine are allowed but logged.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id int64, status string) (entities.Order, error) {
	next, err := entities.ParseOrderStatus(status)
	if err != nil {
		return entities.Order{}, err
	}
	return s.UpdateOrder(ctx, id, entities.OrderUpdate{Status: &next})
}

func (s *orderService) UpdateOrder(ctx context.Context, id int64, upd entities.OrderUpdate) (entities.Order, error) {
	if upd.Status != nil && !upd.Status.Valid() {
		_, err := entities.ParseOrderStatus(string(*upd.Status))
		return entities.Order{}, err
	}
	if upd.Empty() {
		return s.GetOrderByID(ctx, id)
	}
	return s.update(ctx, id, upd, nil)
}

// ProcessPayment marks a pending order paid and links paymentID to it. Any
// other status is rejected.
func (s *orderService) ProcessPayment(ctx context.Context, id int64, paymentID string) (entities.Order, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Order{}, entities.NewValidationError("stripe_payment_id", "is required")
	}

	paid := entities.StatusPaid
	return s.update(ctx, id, entities.OrderUpdate{Status: &paid, PaymentID: &paymentID}, func(current entities.Order) error {
		if current.Status != entities.StatusPending {
			return entities.NewValidationError("status", "cannot process payment for order with status: "+string(current.Status))
		}
		return nil
	})
}

// update applies upd under a row lock. guard, if set, sees the locked row and
// may veto the write.
func (s *orderService) update(ctx context.Context, id int64, upd entities.OrderUpdate, guard func(current entities.Order) error) (entities.Order, error) {
	var (
		order    entities.Order
		previous entities.OrderStatus
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repo.LockOrderByID(ctx, id)
		if err != nil {
			return err
		}
		previous = current.Status

		if guard != nil {
			if err := guard(current); err != nil {
				return err
			}
		}

		if upd.Status != nil && *upd.Status != current.Status && !current.Status.CanTransitionTo(*upd.Status) {
			s.logger.WarnContext(ctx, "status write outside the order state machine",
				slog.Int64("order_id", id),
				slog.String("from", string(current.Status)),
				slog.String("to", string(*upd.Status)),
			)
		}

		order, err = s.repo.UpdateOrder(ctx, id, upd)
		return err
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order: %w", err)
	}

	var event *entities.OrderEvent
	if order.Status != previous {
		e := entities.NewStatusChangedEvent(order, previous)
		event = &e
	}
	s.writes.committed(ctx, order, event)
	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id int64) (entities.Order, error) {
	if order, ok := s.writes.cache.Get(id); ok {
		return order.Clone(), nil
	}
	version := s.writes.cache.Version(id)

	var order entities.Order
	err := utils.Retry(ctx, s.opts.retry, func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, id)
		return err
	}, entities.ErrOrderNotFound)
	if err != nil {
		return entities.Order{}, err
	}

	if !s.writes.cache.SetIfVersion(order.ID, order.Clone(), version) {
		s.logger.DebugContext(ctx, "order changed during read, not cached", slog.Int64("order_id", id))
	}
	return order, nil
}

// GetOrderByNumber always reads the store. The id is unknown until the row
// is loaded, so there is no version to guard a cache fill with.
func (s *orderService) GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	var order entities.Order
	err := utils.Retry(ctx, s.opts.retry, func() error {
		var err error
		order, err = s.repo.GetOrderByNumber(ctx, orderNumber)
		return err
	}, entities.ErrOrderNotFound)
	if err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	filter.Page = filter.Page.Normalize(defaultListLimit)
	return s.listOrders(ctx, filter)
}

func (s *orderService) GetOrdersByCustomerEmail(ctx context.Context, email string, page entities.Page) ([]entities.Order, error) {
	return s.listOrders(ctx, entities.OrderFilter{
		CustomerEmail: email,
		Page:          page.Normalize(defaultLookupLimit),
	})
}

func (s *orderService) GetOrdersByUser(ctx context.Context, userID int64, page entities.Page) ([]entities.Order, error) {
	return s.listOrders(ctx, entities.OrderFilter{
		UserID: &userID,
		Page:   page.Normalize(defaultLookupLimit),
	})
}

func (s *orderService) listOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	var orders []entities.Order
	err := utils.Retry(ctx, s.opts.retry, func() error {
		var err error
		orders, err = s.repo.ListOrders(ctx, filter)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		orders = []entities.Order{}
	}
	return orders, nil
}

// WarmUpCache loads the count most recent orders into the cache. It runs
// before any writer starts.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.ListOrders(ctx, entities.OrderFilter{Page: entities.Page{Limit: count}})
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}

	for _, order := range orders {
		s.writes.cache.Set(order.ID, order.Clone())
	}

	s.logger.InfoContext(ctx, "cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

// writeNotifier runs the post-commit side effects of an order write.
type writeNotifier struct {
	logger    *slog.Logger
	cache     Cache
	publisher EventPublisher
}

// committed drops the cached copy and publishes event if given. Publishing is
// best-effort: the write is already committed.
func (n writeNotifier) committed(ctx context.Context, order entities.Order, event *entities.OrderEvent) {
	n.cache.Delete(order.ID)

	if event == nil {
		return
	}
	if err := n.publisher.PublishOrderEvent(ctx, *event); err != nil {
		n.logger.ErrorContext(ctx, "failed to publish order event",
			slog.String("type", event.Type),
			slog.Int64("order_id", order.ID),
			slog.Any("error", err),
		)
	}
}
