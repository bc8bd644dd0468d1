package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/printshop-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type orderRepo struct {
	base
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{base: newBase(db)}
}

// CreateOrder inserts the order row only; items are written by SaveItems
// within the same transaction.
func (r *orderRepo) CreateOrder(ctx context.Context, orderNumber string, o entities.NewOrder) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns(
			"order_number", "customer_email", "customer_name", "total_amount",
			"status", "stripe_payment_id", "user_id",
		).
		Values(
			orderNumber, o.CustomerEmail, o.CustomerName, o.TotalAmount,
			string(o.Status), nullString(o.PaymentID), nullInt64(o.UserID),
		).
		Suffix("RETURNING " + joinColumns(orderColumns)).
		MustSql()

	var order Order
	if err := r.getContext(ctx, &order, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to insert order: %w", mapError(err))
	}
	return OrderToEntity(order, nil), nil
}

func (r *orderRepo) SaveItems(ctx context.Context, orderID int64, items []entities.NewOrderItem) ([]entities.OrderItem, error) {
	if len(items) == 0 {
		return []entities.OrderItem{}, nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "quantity", "price_at_purchase").
		Suffix("RETURNING " + joinColumns(itemColumns))

	for _, it := range items {
		q = q.Values(orderID, it.ProductID, it.Quantity, it.PriceAtPurchase)
	}

	query, args := q.MustSql()

	var rows []Item
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to insert items: %w", mapError(err))
	}

	result := make([]entities.OrderItem, 0, len(rows))
	for _, it := range rows {
		result = append(result, ItemToEntity(it))
	}
	return result, nil
}

func (r *orderRepo) GetOrderByID(ctx context.Context, id int64) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"id": id}, false)
}

func (r *orderRepo) GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"order_number": orderNumber}, false)
}

// LockOrderByID reads the order with a row lock held until the surrounding
// transaction ends.
func (r *orderRepo) LockOrderByID(ctx context.Context, id int64) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"id": id}, true)
}

func (r *orderRepo) LockOrderByPaymentID(ctx context.Context, paymentID string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"stripe_payment_id": paymentID}, true)
}

func (r *orderRepo) getOrder(ctx context.Context, where sq.Eq, forUpdate bool) (entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(where)
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}
	query, args := q.MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.itemsByOrderIDs(ctx, []int64{order.ID})
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items[order.ID]), nil
}

// ListOrders returns orders newest first. The limit is taken as given.
func (r *orderRepo) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	where := sq.Eq{}
	if filter.CustomerEmail != "" {
		where["customer_email"] = filter.CustomerEmail
	}
	if filter.UserID != nil {
		where["user_id"] = *filter.UserID
	}
	if filter.Status != "" {
		where["status"] = string(filter.Status)
	}

	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Skip))
	if len(where) > 0 {
		q = q.Where(where)
	}
	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]int64, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	items, err := r.itemsByOrderIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, items[order.ID]))
	}
	return result, nil
}

// UpdateOrder applies the non-nil fields of upd and bumps updated_at.
func (r *orderRepo) UpdateOrder(ctx context.Context, id int64, upd entities.OrderUpdate) (entities.Order, error) {
	q := r.qb.Update("orders").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(orderColumns))
	if upd.Status != nil {
		q = q.Set("status", string(*upd.Status))
	}
	if upd.PaymentID != nil {
		q = q.Set("stripe_payment_id", nullString(*upd.PaymentID))
	}
	query, args := q.MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order: %w", mapError(err))
	}

	items, err := r.itemsByOrderIDs(ctx, []int64{order.ID})
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items[order.ID]), nil
}

func (r *orderRepo) itemsByOrderIDs(ctx context.Context, ids []int64) (map[int64][]Item, error) {
	query, args := r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("id").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}

	byOrder := make(map[int64][]Item, len(ids))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}
	return byOrder, nil
}
