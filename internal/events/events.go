package events

import (
	"encoding/json"
	"time"
)

const (
	EventStockChanged       = "StockChanged"
	EventOrderCreated       = "OrderCreated"
	EventOrderStatusChanged = "OrderStatusChanged"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

// ---- payload per event ----

// StockChangedPayload is emitted once per committed ledger row.
type StockChangedPayload struct {
	TransactionID int64  `json:"transaction_id"`
	ProductID     int64  `json:"product_id"`
	Type          string `json:"transaction_type"`
	Quantity      int    `json:"quantity"`
	Remaining     int    `json:"remaining"`
	UserID        int64  `json:"user_id"`
}

type OrderItemPayload struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

type OrderCreatedPayload struct {
	OrderID     int64              `json:"order_id"`
	CreatedBy   int64              `json:"created_by"`
	TotalAmount string             `json:"total_amount"`
	Items       []OrderItemPayload `json:"items"`
}

type OrderStatusChangedPayload struct {
	OrderID   int64  `json:"order_id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Restocked bool   `json:"restocked"`
}
