package entities

const (
	EventPaymentSucceeded = "payment_intent.succeeded"
)

type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentEvent is a processor notification reduced to what reconciliation needs.
type PaymentEvent struct {
	ID        string
	Type      string
	PaymentID string
	Amount    int64
	Currency  string
}

// EventResult tells how a payment event was handled.
type EventResult string

const (
	EventProcessed EventResult = "processed"
	// EventUnmatched means no order carries the event's payment id.
	EventUnmatched EventResult = "unmatched"
	EventIgnored   EventResult = "ignored"
)
