package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/puregold/inventory-api/internal/ai"
	"github.com/puregold/inventory-api/internal/catalog"
	"github.com/puregold/inventory-api/internal/inventory"
)

// AIHandler serves advisory AI endpoints. These never gate or roll back an
// inventory mutation; a failed call is reported and nothing else happens.
type AIHandler struct {
	Client  *ai.Client
	Catalog *catalog.Repo
	Ledger  *inventory.Repo
	Log     zerolog.Logger
}

type forecastReq struct {
	ProductID int64 `json:"product_id"`
	Days      int   `json:"days"`
}

type categorizeReq struct {
	ProductName        string `json:"product_name"`
	ProductDescription string `json:"product_description"`
}

func (h *AIHandler) Register(r *chi.Mux) {
	r.Post("/ai/forecast", h.forecast)
	r.Post("/ai/reorder-suggestions", h.reorderSuggestions)
	r.Post("/ai/categorize", h.categorize)
}

func (h *AIHandler) forecast(w http.ResponseWriter, r *http.Request) {
	var req forecastReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if req.Days <= 0 {
		req.Days = 30
	}
	if req.Days > 365 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "days must be between 1 and 365"})
		return
	}

	p, err := h.Catalog.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		writeError(w, err)
		return
	}
	history, err := h.Ledger.RecentForProduct(r.Context(), p.ID, 30)
	if err != nil {
		writeError(w, err)
		return
	}

	forecast, err := h.Client.Complete(r.Context(), ai.ForecastPrompt(p, history, req.Days))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"product_id":    p.ID,
		"product_name":  p.Name,
		"current_stock": p.Quantity,
		"forecast":      forecast,
	})
}

func (h *AIHandler) reorderSuggestions(w http.ResponseWriter, r *http.Request) {
	products, err := h.Catalog.LowStockProducts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if len(products) == 0 {
		writeJSON(w, http.StatusOK, map[string]any{"message": "no products need reordering", "suggestions": []any{}})
		return
	}
	if len(products) > 5 {
		products = products[:5]
	}

	type suggestion struct {
		ProductID         int64  `json:"product_id"`
		ProductName       string `json:"product_name"`
		SKU               string `json:"sku"`
		CurrentStock      int    `json:"current_stock"`
		ReorderLevel      int    `json:"reorder_level"`
		SuggestedQuantity string `json:"suggested_quantity"`
	}
	suggestions := make([]suggestion, 0, len(products))
	for _, p := range products {
		resp, err := h.Client.Complete(r.Context(), ai.ReorderPrompt(p))
		if err != nil {
			h.Log.Error().Err(err).Int64("product_id", p.ID).Msg("reorder suggestion failed")
			continue
		}
		suggestions = append(suggestions, suggestion{
			ProductID:         p.ID,
			ProductName:       p.Name,
			SKU:               p.SKU,
			CurrentStock:      p.Quantity,
			ReorderLevel:      p.ReorderLevel,
			SuggestedQuantity: resp,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

func (h *AIHandler) categorize(w http.ResponseWriter, r *http.Request) {
	var req categorizeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if req.ProductName == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing product_name"})
		return
	}

	resp, err := h.Client.Complete(r.Context(), ai.CategorizePrompt(req.ProductName, req.ProductDescription))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"product_name": req.ProductName,
		"ai_response":  resp,
	})
}
