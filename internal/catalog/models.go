package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Description  string          `json:"description,omitempty"`
	Category     string          `json:"category,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
	Quantity     int             `json:"quantity"`
	ReorderLevel int             `json:"reorder_level"`
	SupplierID   *int64          `json:"supplier_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// LowStock reports whether the product is at or below its reorder level.
func (p Product) LowStock() bool { return p.Quantity <= p.ReorderLevel }

type Supplier struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrSKUExists        = errors.New("sku already exists")
)

// FieldError reports a field value rejected by validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Reason) }

func validateProduct(p Product) error {
	switch {
	case p.Name == "":
		return &FieldError{Field: "name", Reason: "must not be empty"}
	case p.SKU == "":
		return &FieldError{Field: "sku", Reason: "must not be empty"}
	case !p.Price.IsPositive():
		return &FieldError{Field: "price", Reason: "must be greater than zero"}
	case !p.Cost.IsPositive():
		return &FieldError{Field: "cost", Reason: "must be greater than zero"}
	case p.Quantity < 0:
		return &FieldError{Field: "quantity", Reason: "must not be negative"}
	case p.ReorderLevel < 0:
		return &FieldError{Field: "reorder_level", Reason: "must not be negative"}
	}
	return nil
}
