package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/puregold/inventory-api/internal/catalog"
)

type SuppliersHandler struct {
	Repo *catalog.Repo
	Auth func(http.Handler) http.Handler
}

func (h *SuppliersHandler) Register(r *chi.Mux) {
	r.Get("/suppliers", h.list)
	r.Get("/suppliers/{id}", h.get)

	r.Group(func(g chi.Router) {
		g.Use(h.Auth)
		g.Post("/suppliers", h.create)
		g.Delete("/suppliers/{id}", h.delete)
	})
}

func (h *SuppliersHandler) create(w http.ResponseWriter, r *http.Request) {
	var s catalog.Supplier
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	created, err := h.Repo.CreateSupplier(r.Context(), s)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *SuppliersHandler) list(w http.ResponseWriter, r *http.Request) {
	ss, err := h.Repo.ListSuppliers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if ss == nil {
		ss = []catalog.Supplier{}
	}
	writeJSON(w, http.StatusOK, ss)
}

func (h *SuppliersHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	s, err := h.Repo.GetSupplier(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *SuppliersHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	if err := h.Repo.DeleteSupplier(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "supplier deleted"})
}
