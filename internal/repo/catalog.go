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

// catalogRepo reads active products only; inactive rows behave as missing.
type catalogRepo struct {
	base
}

func NewCatalogRepo(db *sqlx.DB) *catalogRepo {
	return &catalogRepo{base: newBase(db)}
}

func (r *catalogRepo) GetProductByID(ctx context.Context, id int64) (entities.Product, error) {
	return r.getProduct(ctx, sq.Eq{"id": id, "is_active": true})
}

func (r *catalogRepo) GetProductBySKU(ctx context.Context, sku string) (entities.Product, error) {
	return r.getProduct(ctx, sq.Eq{"sku": sku, "is_active": true})
}

func (r *catalogRepo) getProduct(ctx context.Context, where sq.Eq) (entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(where).
		MustSql()

	var p Product
	err := r.getContext(ctx, &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(p), nil
}

func (r *catalogRepo) ListProducts(ctx context.Context, page entities.Page) ([]entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"is_active": true}).
		OrderBy("id").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Skip)).
		MustSql()

	var rows []Product
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	products := make([]entities.Product, 0, len(rows))
	for _, p := range rows {
		products = append(products, ProductToEntity(p))
	}
	return products, nil
}

// DecrementStock takes qty units off the product's stock if that many are
// available.
func (r *catalogRepo) DecrementStock(ctx context.Context, productID int64, qty int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock - ?", qty)).
		Where(sq.Eq{"id": productID, "is_active": true}).
		Where(sq.GtOrEq{"stock": qty}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	if n > 0 {
		return nil
	}

	if _, err := r.GetProductByID(ctx, productID); err != nil {
		return err
	}
	return entities.ErrInsufficientStock
}
