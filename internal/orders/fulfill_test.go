package orders

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/puregold/inventory-api/internal/catalog"
	"github.com/puregold/inventory-api/internal/inventory"
)

func product(id int64, name string, price string, qty int) catalog.Product {
	return catalog.Product{
		ID:       id,
		Name:     name,
		SKU:      name,
		Price:    decimal.RequireFromString(price),
		Quantity: qty,
	}
}

func TestBuildPlan(t *testing.T) {
	products := map[int64]catalog.Product{
		1: product(1, "Widget", "2.00", 10),
		2: product(2, "Gadget", "5.50", 3),
	}

	t.Run("single line", func(t *testing.T) {
		plan, err := BuildPlan([]ItemInput{{ProductID: 1, Quantity: 4}}, products)
		if err != nil {
			t.Fatalf("BuildPlan() error: %v", err)
		}
		if len(plan.Lines) != 1 {
			t.Fatalf("got %d lines, want 1", len(plan.Lines))
		}
		line := plan.Lines[0]
		if !line.Price.Equal(decimal.RequireFromString("2.00")) {
			t.Errorf("price = %s, want 2.00", line.Price)
		}
		if line.NewQuantity != 6 {
			t.Errorf("new quantity = %d, want 6", line.NewQuantity)
		}
		if !plan.Total.Equal(decimal.RequireFromString("8.00")) {
			t.Errorf("total = %s, want 8.00", plan.Total)
		}
	})

	t.Run("multiple lines total", func(t *testing.T) {
		plan, err := BuildPlan([]ItemInput{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 3},
		}, products)
		if err != nil {
			t.Fatalf("BuildPlan() error: %v", err)
		}
		if !plan.Total.Equal(decimal.RequireFromString("20.50")) {
			t.Errorf("total = %s, want 20.50", plan.Total)
		}
		if plan.Lines[1].NewQuantity != 0 {
			t.Errorf("second line new quantity = %d, want 0", plan.Lines[1].NewQuantity)
		}
	})

	t.Run("duplicate product counts cumulatively", func(t *testing.T) {
		plan, err := BuildPlan([]ItemInput{
			{ProductID: 1, Quantity: 6},
			{ProductID: 1, Quantity: 4},
		}, products)
		if err != nil {
			t.Fatalf("BuildPlan() error: %v", err)
		}
		if plan.Lines[0].NewQuantity != 4 || plan.Lines[1].NewQuantity != 0 {
			t.Errorf("new quantities = %d, %d; want 4, 0", plan.Lines[0].NewQuantity, plan.Lines[1].NewQuantity)
		}
	})

	t.Run("duplicate product over stock", func(t *testing.T) {
		_, err := BuildPlan([]ItemInput{
			{ProductID: 1, Quantity: 6},
			{ProductID: 1, Quantity: 5},
		}, products)
		var short *inventory.InsufficientStockError
		if !errors.As(err, &short) {
			t.Fatalf("want InsufficientStockError, got %v", err)
		}
		if short.Available != 4 || short.Requested != 5 {
			t.Errorf("available = %d, requested = %d; want 4, 5", short.Available, short.Requested)
		}
	})

	t.Run("insufficient stock carries product", func(t *testing.T) {
		_, err := BuildPlan([]ItemInput{{ProductID: 2, Quantity: 10}}, products)
		var short *inventory.InsufficientStockError
		if !errors.As(err, &short) {
			t.Fatalf("want InsufficientStockError, got %v", err)
		}
		if short.ProductID != 2 || short.Name != "Gadget" || short.Available != 3 {
			t.Errorf("unexpected fields: %+v", short)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := BuildPlan([]ItemInput{{ProductID: 99, Quantity: 1}}, products)
		if !errors.Is(err, catalog.ErrProductNotFound) {
			t.Fatalf("want ErrProductNotFound, got %v", err)
		}
	})

	t.Run("existence checked before stock", func(t *testing.T) {
		// even when an earlier line would already fail on stock
		_, err := BuildPlan([]ItemInput{
			{ProductID: 2, Quantity: 10},
			{ProductID: 99, Quantity: 1},
		}, products)
		if !errors.Is(err, catalog.ErrProductNotFound) {
			t.Fatalf("want ErrProductNotFound, got %v", err)
		}
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := BuildPlan([]ItemInput{{ProductID: 1, Quantity: 0}}, products)
		if !errors.Is(err, inventory.ErrInvalidQuantity) {
			t.Fatalf("want ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("no items", func(t *testing.T) {
		_, err := BuildPlan(nil, products)
		if !errors.Is(err, ErrNoItems) {
			t.Fatalf("want ErrNoItems, got %v", err)
		}
	})
}

func TestRestockMovements(t *testing.T) {
	o := Order{
		ID: 42,
		Items: []OrderItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 3, Quantity: 5},
		},
	}
	moves := RestockMovements(o, 9)
	if len(moves) != 2 {
		t.Fatalf("got %d movements, want 2", len(moves))
	}
	for i, m := range moves {
		if m.Type != inventory.TypeIn {
			t.Errorf("movement %d type = %q, want in", i, m.Type)
		}
		if m.ActorID != 9 {
			t.Errorf("movement %d actor = %d, want 9", i, m.ActorID)
		}
	}
	if moves[0].ProductID != 1 || moves[0].Quantity != 2 {
		t.Errorf("unexpected first movement: %+v", moves[0])
	}
	if moves[1].Notes != "order 42 cancelled" {
		t.Errorf("notes = %q", moves[1].Notes)
	}
}
