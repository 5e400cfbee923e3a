package ai

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/puregold/inventory-api/internal/catalog"
	"github.com/puregold/inventory-api/internal/inventory"
)

func TestForecastPrompt(t *testing.T) {
	p := catalog.Product{ID: 1, Name: "Widget", SKU: "WID-1", Quantity: 12, ReorderLevel: 5}
	history := []inventory.StockTransaction{
		{Type: inventory.TypeOut, Quantity: 3, Date: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)},
	}

	got := ForecastPrompt(p, history, 14)

	for _, want := range []string{"next 14 days", "Widget", "WID-1", "Current Stock: 12", `"date":"2026-08-20"`, `"type":"out"`} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestReorderPrompt(t *testing.T) {
	p := catalog.Product{
		Name:         "Widget",
		Quantity:     2,
		ReorderLevel: 5,
		Price:        decimal.RequireFromString("2.5"),
		Cost:         decimal.RequireFromString("1"),
	}

	got := ReorderPrompt(p)

	for _, want := range []string{"Widget", "Current Stock: 2", "Price: $2.50", "Cost: $1.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestCategorizePrompt(t *testing.T) {
	got := CategorizePrompt("Instant Noodles", "")
	if !strings.Contains(got, "Instant Noodles") {
		t.Error("prompt missing product name")
	}
	if !strings.Contains(got, "Not provided") {
		t.Error("empty description should read as not provided")
	}

	got = CategorizePrompt("Instant Noodles", "spicy ramen cup")
	if !strings.Contains(got, "spicy ramen cup") {
		t.Error("prompt missing description")
	}
}
