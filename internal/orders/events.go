package orders

import (
	"encoding/json"
	"time"
)

const (
	TopicOrderCreated    = "order.created"
	TopicOrderDispatched = "order.dispatched"
)

const (
	EventOrderCreated    = "OrderCreated"
	EventOrderDispatched = "OrderDispatched"
)

// Envelope wraps every event published to the supplier broadcast topics.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // order id
	Payload       json.RawMessage `json:"payload"`
}

type ItemQty struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

type OrderCreatedPayload struct {
	OrderID        string    `json:"order_id"`
	MerchantMobile string    `json:"merchant_mobile"`
	Items          []ItemQty `json:"items"`
	Total          float64   `json:"total"`
	Source         string    `json:"source"` // "checkout" or "negotiation"
}

type OrderDispatchedPayload struct {
	OrderID        string `json:"order_id"`
	TrackingNumber string `json:"tracking_number"`
}

// Partition key = order id, so all events for one order stay ordered.
func PartitionKey(orderID string) []byte { return []byte(orderID) }
