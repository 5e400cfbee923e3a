package orders

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/puregold/inventory-api/internal/catalog"
	"github.com/puregold/inventory-api/internal/inventory"
)

// PlanLine is one validated line item: the quantity to debit, the price
// snapshotted from the product, and the stock level after the debit.
type PlanLine struct {
	Product     catalog.Product
	Quantity    int
	Price       decimal.Decimal
	NewQuantity int
}

type Plan struct {
	Lines []PlanLine
	Total decimal.Decimal
}

// BuildPlan validates a whole order against the fetched (locked) product rows
// before any mutation happens: first every product must exist and every
// quantity be positive, then every line must be coverable by current stock —
// counting earlier lines for the same product. Any failure rejects the whole
// order.
func BuildPlan(items []ItemInput, products map[int64]catalog.Product) (*Plan, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	for _, it := range items {
		if _, ok := products[it.ProductID]; !ok {
			return nil, fmt.Errorf("product %d: %w", it.ProductID, catalog.ErrProductNotFound)
		}
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("product %d: %w", it.ProductID, inventory.ErrInvalidQuantity)
		}
	}

	remaining := make(map[int64]int, len(products))
	for id, p := range products {
		remaining[id] = p.Quantity
	}
	for _, it := range items {
		p := products[it.ProductID]
		if remaining[it.ProductID] < it.Quantity {
			return nil, &inventory.InsufficientStockError{
				ProductID: p.ID,
				Name:      p.Name,
				Requested: it.Quantity,
				Available: remaining[it.ProductID],
			}
		}
		remaining[it.ProductID] -= it.Quantity
	}

	run := make(map[int64]int, len(products))
	for id, p := range products {
		run[id] = p.Quantity
	}
	plan := &Plan{Total: decimal.Zero}
	for _, it := range items {
		p := products[it.ProductID]
		run[it.ProductID] -= it.Quantity
		line := PlanLine{
			Product:     p,
			Quantity:    it.Quantity,
			Price:       p.Price,
			NewQuantity: run[it.ProductID],
		}
		plan.Lines = append(plan.Lines, line)
		plan.Total = plan.Total.Add(p.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return plan, nil
}

// RestockMovements returns the inbound movements that undo an order's debits,
// used when the cancellation policy restores stock.
func RestockMovements(o Order, actorID int64) []inventory.Movement {
	out := make([]inventory.Movement, 0, len(o.Items))
	for _, it := range o.Items {
		out = append(out, inventory.Movement{
			ProductID: it.ProductID,
			Type:      inventory.TypeIn,
			Quantity:  it.Quantity,
			ActorID:   actorID,
			Notes:     fmt.Sprintf("order %d cancelled", o.ID),
		})
	}
	return out
}
