package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/SergeyBogomolovv/printshop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/printshop-order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
)

// base runs queries on the transaction from ctx, if any, or on the pool.
type base struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func newBase(db *sqlx.DB) base {
	return base{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (b base) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return trm.Executor(ctx, b.db).ExecContext(ctx, query, args...)
}

func (b base) getContext(ctx context.Context, dest any, query string, args ...any) error {
	return sqlx.GetContext(ctx, trm.Executor(ctx, b.db), dest, query, args...)
}

func (b base) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	return sqlx.SelectContext(ctx, trm.Executor(ctx, b.db), dest, query, args...)
}

// mapError translates constraint violations into domain errors.
func mapError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case pqUniqueViolation:
		switch pqErr.Constraint {
		case "orders_order_number_key":
			return entities.ErrOrderNumberTaken
		case "orders_stripe_payment_id_key":
			return entities.ErrPaymentIDTaken
		}
	case pqForeignKeyViolation:
		switch pqErr.Constraint {
		case "order_items_product_id_fkey":
			return entities.ErrProductNotFound
		case "orders_user_id_fkey":
			return entities.ErrUserNotFound
		}
	case pqCheckViolation:
		return entities.NewValidationError(pqErr.Constraint, "violates check constraint")
	}
	return err
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
