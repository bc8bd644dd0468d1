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

type userRepo struct {
	base
}

func NewUserRepo(db *sqlx.DB) *userRepo {
	return &userRepo{base: newBase(db)}
}

func (r *userRepo) GetUserByID(ctx context.Context, id int64) (entities.User, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		MustSql()

	var u User
	err := r.getContext(ctx, &u, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(u), nil
}
