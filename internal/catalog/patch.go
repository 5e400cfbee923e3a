package catalog

import "github.com/shopspring/decimal"

// ProductPatch is a partial update: nil fields are left untouched. Quantity is
// deliberately absent; stock levels only move through the transaction ledger.
type ProductPatch struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	Category     *string          `json:"category"`
	Price        *decimal.Decimal `json:"price"`
	Cost         *decimal.Decimal `json:"cost"`
	ReorderLevel *int             `json:"reorder_level"`
	SupplierID   *int64           `json:"supplier_id"`
}

// ApplyTo merges the patch field by field. Validation runs against the merged
// record, so a stored value can never be overwritten with an invalid one.
func (pp ProductPatch) ApplyTo(p *Product) error {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.Category != nil {
		p.Category = *pp.Category
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.Cost != nil {
		p.Cost = *pp.Cost
	}
	if pp.ReorderLevel != nil {
		p.ReorderLevel = *pp.ReorderLevel
	}
	if pp.SupplierID != nil {
		p.SupplierID = pp.SupplierID
	}
	return validateProduct(*p)
}
