package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/printshop-order-service/internal/entities"
	"github.com/shopspring/decimal"
)

var (
	orderColumns = []string{
		"id", "order_number", "customer_email", "customer_name", "total_amount",
		"status", "stripe_payment_id", "user_id", "created_at", "updated_at",
	}
	itemColumns    = []string{"id", "order_id", "product_id", "quantity", "price_at_purchase"}
	productColumns = []string{"id", "sku", "name", "description", "price", "stock", "image_url", "is_active"}
	userColumns    = []string{"id", "email", "full_name", "is_active", "is_superuser"}
)

type Order struct {
	ID              int64           `db:"id"`
	OrderNumber     string          `db:"order_number"`
	CustomerEmail   string          `db:"customer_email"`
	CustomerName    string          `db:"customer_name"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	Status          string          `db:"status"`
	StripePaymentID sql.NullString  `db:"stripe_payment_id"`
	UserID          sql.NullInt64   `db:"user_id"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

type Item struct {
	ID              int64           `db:"id"`
	OrderID         int64           `db:"order_id"`
	ProductID       int64           `db:"product_id"`
	Quantity        int             `db:"quantity"`
	PriceAtPurchase decimal.Decimal `db:"price_at_purchase"`
}

type Product struct {
	ID          int64           `db:"id"`
	SKU         string          `db:"sku"`
	Name        string          `db:"name"`
	Description sql.NullString  `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Stock       int             `db:"stock"`
	ImageURL    sql.NullString  `db:"image_url"`
	Active      bool            `db:"is_active"`
}

type User struct {
	ID          int64          `db:"id"`
	Email       string         `db:"email"`
	FullName    sql.NullString `db:"full_name"`
	Active      bool           `db:"is_active"`
	IsSuperuser bool           `db:"is_superuser"`
}

func ItemToEntity(i Item) entities.OrderItem {
	return entities.OrderItem{
		ID:              i.ID,
		OrderID:         i.OrderID,
		ProductID:       i.ProductID,
		Quantity:        i.Quantity,
		PriceAtPurchase: i.PriceAtPurchase,
	}
}

func OrderToEntity(o Order, items []Item) entities.Order {
	order := entities.Order{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerEmail: o.CustomerEmail,
		CustomerName:  o.CustomerName,
		TotalAmount:   o.TotalAmount,
		Status:        entities.OrderStatus(o.Status),
		PaymentID:     nullStringToString(o.StripePaymentID),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		Items:         make([]entities.OrderItem, 0, len(items)),
	}
	if o.UserID.Valid {
		id := o.UserID.Int64
		order.UserID = &id
	}
	for _, it := range items {
		order.Items = append(order.Items, ItemToEntity(it))
	}
	return order
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: nullStringToString(p.Description),
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    nullStringToString(p.ImageURL),
		Active:      p.Active,
	}
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    nullStringToString(u.FullName),
		Active:      u.Active,
		IsSuperuser: u.IsSuperuser,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt64(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}
