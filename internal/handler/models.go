package handler

import (
	"time"

	"github.com/SergeyBogomolovv/printshop-order-service/internal/entities"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the checkout payload
type CreateOrderRequest struct {
	CustomerEmail   string              `json:"customer_email" validate:"required,email" example:"a@b.com"`
	CustomerName    string              `json:"customer_name" validate:"required,max=255" example:"A"`
	TotalAmount     decimal.Decimal     `json:"total_amount" swaggertype:"number" example:"53.18"`
	Items           []CreateItemRequest `json:"items" validate:"required,min=1,dive"`
	StripePaymentID string              `json:"stripe_payment_id,omitempty" validate:"omitempty,max=255" example:"pi_abc"`
}

// CreateItemRequest is one line of a checkout payload
type CreateItemRequest struct {
	ProductID       int64           `json:"product_id" validate:"required,gt=0" example:"1"`
	Quantity        int             `json:"quantity" validate:"required,gt=0,lte=2147483647" example:"1"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase" swaggertype:"number" example:"39.99"`
}

// UpdateOrderRequest changes the status and/or links a payment id
type UpdateOrderRequest struct {
	Status          *string `json:"status,omitempty" example:"paid"`
	StripePaymentID *string `json:"stripe_payment_id,omitempty" validate:"omitempty,min=1,max=255" example:"pi_abc"`
}

// ProcessPaymentRequest links a payment to a pending order
type ProcessPaymentRequest struct {
	StripePaymentID string `json:"stripe_payment_id" validate:"required,max=255" example:"pi_abc"`
}

type ProcessPaymentResponse struct {
	Status    string `json:"status" example:"success"`
	Message   string `json:"message" example:"Payment processed"`
	OrderID   int64  `json:"order_id" example:"1"`
	PaymentID string `json:"payment_id" example:"pi_abc"`
}

// Order is the order representation returned by the API
type Order struct {
	ID              int64       `json:"id" example:"1"`
	OrderNumber     string      `json:"order_number" example:"ORD-20260307-1A2B3C4D"`
	CustomerEmail   string      `json:"customer_email" example:"a@b.com"`
	CustomerName    string      `json:"customer_name" example:"A"`
	TotalAmount     float64     `json:"total_amount" example:"53.18"`
	Status          string      `json:"status" example:"pending"`
	StripePaymentID *string     `json:"stripe_payment_id"`
	UserID          *int64      `json:"user_id"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	Items           []OrderItem `json:"items"`
}

// OrderItem is one line of an order
type OrderItem struct {
	ID              int64   `json:"id" example:"1"`
	ProductID       int64   `json:"product_id" example:"1"`
	Quantity        int     `json:"quantity" example:"1"`
	PriceAtPurchase float64 `json:"price_at_purchase" example:"39.99"`
}

// CreateIntentRequest asks the payment processor for a payment intent
type CreateIntentRequest struct {
	Amount   decimal.Decimal `json:"amount" swaggertype:"number" example:"39.99"`
	Currency string          `json:"currency,omitempty" validate:"omitempty,len=3,alpha" example:"usd"`
}

// CreateIntentResponse carries the client secret for the storefront
type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// WebhookResponse acknowledges a processor notification
type WebhookResponse struct {
	Status string `json:"status" example:"success"`
}

// Product is a catalog entry
type Product struct {
	ID          int64   `json:"id" example:"1"`
	SKU         string  `json:"sku" example:"BC-100"`
	Name        string  `json:"name" example:"Business cards"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" example:"39.99"`
	Stock       int     `json:"stock" example:"12"`
	ImageURL    string  `json:"image_url,omitempty"`
	IsActive    bool    `json:"is_active" example:"true"`
}

// CheckStockRequest is the quantity to check against the stock
type CheckStockRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0" example:"3"`
}

// StockCheck reports whether a product can cover a quantity
type StockCheck struct {
	ProductID          int64 `json:"product_id" example:"1"`
	RequestedQuantity  int   `json:"requested_quantity" example:"3"`
	AvailableStock     int   `json:"available_stock" example:"12"`
	HasSufficientStock bool  `json:"has_sufficient_stock" example:"true"`
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`
	Database  string    `json:"database" example:"up"`
	Service   string    `json:"service" example:"printshop-order-service"`
	Timestamp time.Time `json:"timestamp"`
}

// PingResponse answers /ping
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

func (r CreateOrderRequest) ToEntity(userID *int64) entities.NewOrder {
	items := make([]entities.NewOrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.NewOrderItem{
			ProductID:       it.ProductID,
			Quantity:        it.Quantity,
			PriceAtPurchase: it.PriceAtPurchase,
		})
	}

	return entities.NewOrder{
		CustomerEmail: r.CustomerEmail,
		CustomerName:  r.CustomerName,
		TotalAmount:   r.TotalAmount,
		Items:         items,
		PaymentID:     r.StripePaymentID,
		UserID:        userID,
	}
}

func (r UpdateOrderRequest) ToEntity() entities.OrderUpdate {
	var upd entities.OrderUpdate
	if r.Status != nil {
		status := entities.OrderStatus(*r.Status)
		upd.Status = &status
	}
	upd.PaymentID = r.StripePaymentID
	return upd
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ID:              it.ID,
			ProductID:       it.ProductID,
			Quantity:        it.Quantity,
			PriceAtPurchase: it.PriceAtPurchase.InexactFloat64(),
		})
	}

	var paymentID *string
	if o.PaymentID != "" {
		id := o.PaymentID
		paymentID = &id
	}

	return Order{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerEmail:   o.CustomerEmail,
		CustomerName:    o.CustomerName,
		TotalAmount:     o.TotalAmount.InexactFloat64(),
		Status:          string(o.Status),
		StripePaymentID: paymentID,
		UserID:          o.UserID,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Items:           items,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	return res
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		IsActive:    p.Active,
	}
}

func StockCheckEntityToJSON(c entities.StockCheck) StockCheck {
	return StockCheck{
		ProductID:          c.ProductID,
		RequestedQuantity:  c.RequestedQuantity,
		AvailableStock:     c.AvailableStock,
		HasSufficientStock: c.HasSufficientStock,
	}
}
