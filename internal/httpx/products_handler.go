package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/puregold/inventory-api/internal/catalog"
)

type ProductsHandler struct {
	Repo *catalog.Repo
	Auth func(http.Handler) http.Handler
}

func (h *ProductsHandler) Register(r *chi.Mux) {
	r.Get("/products", h.list)
	r.Get("/products/low-stock/alerts", h.lowStock)
	r.Get("/products/{id}", h.get)

	r.Group(func(g chi.Router) {
		g.Use(h.Auth)
		g.Post("/products", h.create)
		g.Put("/products/{id}", h.update)
		g.Delete("/products/{id}", h.delete)
	})
}

func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *ProductsHandler) create(w http.ResponseWriter, r *http.Request) {
	var p catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	created, err := h.Repo.CreateProduct(r.Context(), p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ProductsHandler) list(w http.ResponseWriter, r *http.Request) {
	ps, err := h.Repo.ListProducts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if ps == nil {
		ps = []catalog.Product{}
	}
	writeJSON(w, http.StatusOK, ps)
}

func (h *ProductsHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	p, err := h.Repo.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductsHandler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var patch catalog.ProductPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	p, err := h.Repo.UpdateProduct(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductsHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	if err := h.Repo.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

func (h *ProductsHandler) lowStock(w http.ResponseWriter, r *http.Request) {
	ps, err := h.Repo.LowStockProducts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	type alert struct {
		ID           int64  `json:"id"`
		Name         string `json:"name"`
		SKU          string `json:"sku"`
		Quantity     int    `json:"quantity"`
		ReorderLevel int    `json:"reorder_level"`
	}
	alerts := make([]alert, 0, len(ps))
	for _, p := range ps {
		alerts = append(alerts, alert{ID: p.ID, Name: p.Name, SKU: p.SKU, Quantity: p.Quantity, ReorderLevel: p.ReorderLevel})
	}
	writeJSON(w, http.StatusOK, map[string]any{"count": len(alerts), "products": alerts})
}
