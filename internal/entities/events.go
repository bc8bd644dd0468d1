package entities

import "time"

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

type OrderEvent struct {
	Type           string      `json:"type"`
	OrderID        int64       `json:"order_id"`
	OrderNumber    string      `json:"order_number"`
	Status         OrderStatus `json:"status"`
	PreviousStatus OrderStatus `json:"previous_status,omitempty"`
	PaymentID      string      `json:"payment_id,omitempty"`
	OccurredAt     time.Time   `json:"occurred_at"`
}

func NewOrderCreatedEvent(o Order) OrderEvent {
	return OrderEvent{
		Type:        EventOrderCreated,
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		Status:      o.Status,
		PaymentID:   o.PaymentID,
		OccurredAt:  o.CreatedAt,
	}
}

func NewStatusChangedEvent(o Order, previous OrderStatus) OrderEvent {
	return OrderEvent{
		Type:           EventOrderStatusChanged,
		OrderID:        o.ID,
		OrderNumber:    o.OrderNumber,
		Status:         o.Status,
		PreviousStatus: previous,
		PaymentID:      o.PaymentID,
		OccurredAt:     o.UpdatedAt,
	}
}
