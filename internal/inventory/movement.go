package inventory

import (
	"errors"
	"fmt"
	"time"
)

type Type string

const (
	TypeIn         Type = "in"
	TypeOut        Type = "out"
	TypeAdjustment Type = "adjustment"
)

func (t Type) Valid() bool {
	switch t {
	case TypeIn, TypeOut, TypeAdjustment:
		return true
	}
	return false
}

var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrInvalidType       = errors.New("unknown transaction type")
	ErrNoActor           = errors.New("no acting user")
)

// InsufficientStockError carries the offending product and what was actually
// available when the movement was rejected.
type InsufficientStockError struct {
	ProductID int64
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s (product %d): requested %d, available %d",
		e.Name, e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// Movement is a single requested stock change attributed to an actor.
type Movement struct {
	ProductID int64
	Type      Type
	Quantity  int
	ActorID   int64
	Notes     string
}

// StockTransaction is one committed ledger row. The ledger is append-only.
type StockTransaction struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Type      Type      `json:"transaction_type"`
	Quantity  int       `json:"quantity"`
	UserID    int64     `json:"user_id"`
	Notes     string    `json:"notes,omitempty"`
	Date      time.Time `json:"transaction_date"`
}

// NextQuantity returns the stock level after applying a movement of amount to
// current. "in" and "out" are deltas; "adjustment" sets the absolute level.
func NextQuantity(t Type, current, amount int) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidQuantity
	}
	switch t {
	case TypeIn:
		return current + amount, nil
	case TypeOut:
		if current < amount {
			return 0, ErrInsufficientStock
		}
		return current - amount, nil
	case TypeAdjustment:
		return amount, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidType, t)
}
