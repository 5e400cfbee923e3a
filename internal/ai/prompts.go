package ai

import (
	"encoding/json"
	"fmt"

	"github.com/puregold/inventory-api/internal/catalog"
	"github.com/puregold/inventory-api/internal/inventory"
)

// ForecastPrompt asks the model for a demand forecast from the product's
// recent ledger history.
func ForecastPrompt(p catalog.Product, history []inventory.StockTransaction, days int) string {
	type row struct {
		Date     string `json:"date"`
		Type     string `json:"type"`
		Quantity int    `json:"quantity"`
	}
	rows := make([]row, 0, len(history))
	for _, t := range history {
		rows = append(rows, row{Date: t.Date.Format("2006-01-02"), Type: string(t.Type), Quantity: t.Quantity})
	}
	data, _ := json.Marshal(rows)

	return fmt.Sprintf(`Analyze this product's inventory data and provide a forecast for the next %d days:

Product: %s (SKU: %s)
Current Stock: %d
Reorder Level: %d
Recent Transactions: %s

Provide:
1. Predicted demand for next %d days
2. Recommended reorder date
3. Suggested order quantity
4. Risk assessment (low/medium/high)

Format as JSON with keys: predicted_demand, reorder_date, order_quantity, risk_level, analysis`,
		days, p.Name, p.SKU, p.Quantity, p.ReorderLevel, data, days)
}

// ReorderPrompt asks for a single suggested order quantity.
func ReorderPrompt(p catalog.Product) string {
	return fmt.Sprintf(`Product needs reordering:
Name: %s
Current Stock: %d
Reorder Level: %d
Price: $%s
Cost: $%s

Suggest optimal order quantity considering:
- Stock level
- Typical turnover
- Cost efficiency

Return only a number representing the suggested quantity.`,
		p.Name, p.Quantity, p.ReorderLevel, p.Price.StringFixed(2), p.Cost.StringFixed(2))
}

// CategorizePrompt asks for a category and enhanced description.
func CategorizePrompt(name, description string) string {
	if description == "" {
		description = "Not provided"
	}
	return fmt.Sprintf(`Categorize this product and generate a professional description:

Product Name: %s
Description: %s

Return JSON with:
1. category (single category from: Electronics, Food & Beverage, Household, Personal Care, Clothing, Other)
2. enhanced_description (professional, 2-3 sentences)
3. tags (array of 3-5 relevant tags)`,
		name, description)
}
