package orders

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID          int64           `json:"id"`
	OrderDate   time.Time       `json:"order_date"`
	Status      Status          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedBy   int64           `json:"created_by"`
	Notes       string          `json:"notes,omitempty"`
	Items       []OrderItem     `json:"items"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// OrderItem snapshots the product price at fulfillment time; later price
// changes never touch it.
type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type ItemInput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrNoItems       = errors.New("order has no items")
)
