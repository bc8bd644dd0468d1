package entities

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MaxPageLimit = 100

	orderNumberPrefix = "ORD"

	// Money columns are NUMERIC(10, 2).
	moneyScale = 2
	// MaxItemQuantity matches the INTEGER quantity column.
	MaxItemQuantity = math.MaxInt32
)

var (
	validate = validator.New()

	moneyLimit = decimal.New(1, 10-moneyScale)
)

type Order struct {
	ID            int64
	OrderNumber   string
	CustomerEmail string
	CustomerName  string
	TotalAmount   decimal.Decimal
	Status        OrderStatus
	// PaymentID is the processor's payment intent id, empty until linked.
	PaymentID string
	// UserID is nil for guest checkout.
	UserID    *int64
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []OrderItem
}

// Clone returns a copy that shares no mutable state with o.
func (o Order) Clone() Order {
	c := o
	if o.UserID != nil {
		id := *o.UserID
		c.UserID = &id
	}
	if o.Items != nil {
		c.Items = make([]OrderItem, len(o.Items))
		copy(c.Items, o.Items)
	}
	return c
}

type OrderItem struct {
	ID              int64
	OrderID         int64
	ProductID       int64
	Quantity        int
	PriceAtPurchase decimal.Decimal
}

type NewOrderItem struct {
	ProductID       int64
	Quantity        int
	PriceAtPurchase decimal.Decimal
}

type NewOrder struct {
	CustomerEmail string
	CustomerName  string
	TotalAmount   decimal.Decimal
	Items         []NewOrderItem
	PaymentID     string
	UserID        *int64
	// Status overrides the initial pending status. Internal callers only.
	Status OrderStatus
}

func (o NewOrder) Validate() error {
	if err := validate.Var(o.CustomerEmail, "required,email"); err != nil {
		return NewValidationError("customer_email", "must be a valid email address")
	}
	if name := strings.TrimSpace(o.CustomerName); name == "" || len(name) > 255 {
		return NewValidationError("customer_name", "must be between 1 and 255 characters")
	}
	if reason := checkMoney(o.TotalAmount); reason != "" {
		return NewValidationError("total_amount", reason)
	}
	if len(o.Items) == 0 {
		return NewValidationError("items", "at least one item is required")
	}
	for i, it := range o.Items {
		if it.ProductID <= 0 {
			return NewValidationError(fmt.Sprintf("items[%d].product_id", i), "must be greater than 0")
		}
		if it.Quantity <= 0 || it.Quantity > MaxItemQuantity {
			return NewValidationError(fmt.Sprintf("items[%d].quantity", i), fmt.Sprintf("must be between 1 and %d", MaxItemQuantity))
		}
		if reason := checkMoney(it.PriceAtPurchase); reason != "" {
			return NewValidationError(fmt.Sprintf("items[%d].price_at_purchase", i), reason)
		}
	}
	if o.Status != "" && !o.Status.Valid() {
		_, err := ParseOrderStatus(string(o.Status))
		return err
	}
	return nil
}

// checkMoney reports why d cannot be stored exactly, or "" if it can.
func checkMoney(d decimal.Decimal) string {
	switch {
	case !d.IsPositive():
		return "must be greater than 0"
	case !d.Equal(d.Truncate(moneyScale)):
		return "must have at most 2 decimal places"
	case d.GreaterThanOrEqual(moneyLimit):
		return "must be less than 100000000"
	}
	return ""
}

// OrderUpdate holds the mutable fields of an order; nil fields are left as is.
type OrderUpdate struct {
	Status    *OrderStatus
	PaymentID *string
}

func (u OrderUpdate) Empty() bool {
	return u.Status == nil && u.PaymentID == nil
}

type Page struct {
	Skip  int
	Limit int
}

// Normalize applies defaultLimit to an unset limit and clamps it to MaxPageLimit.
func (p Page) Normalize(defaultLimit int) Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

type OrderFilter struct {
	CustomerEmail string
	UserID        *int64
	Status        OrderStatus
	Page
}

// NewOrderNumber returns ORD-<YYYYMMDD>-<8 uppercase hex chars>. The suffix
// comes from a random uuid; the unique constraint on order_number is what
// actually guarantees uniqueness.
func NewOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%s-%s", orderNumberPrefix, now.UTC().Format("20060102"), suffix)
}
