package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/puregold/inventory-api/internal/auth"
	"github.com/puregold/inventory-api/internal/inventory"
	kafkax "github.com/puregold/inventory-api/internal/kafka"
	"github.com/puregold/inventory-api/internal/orders"
)

type StockHandler struct {
	Service       string
	Repo          *inventory.Repo
	ProducerStock *kafkax.Producer
	Auth          func(http.Handler) http.Handler
}

type createTransactionReq struct {
	ProductID       int64          `json:"product_id"`
	TransactionType inventory.Type `json:"transaction_type"`
	Quantity        int            `json:"quantity"`
	Notes           string         `json:"notes"`
}

func (h *StockHandler) Register(r *chi.Mux) {
	r.Get("/stock/transactions", h.list)

	r.Group(func(g chi.Router) {
		g.Use(h.Auth)
		g.Post("/stock/transactions", h.create)
	})
}

func (h *StockHandler) create(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFrom(r.Context())
	if !ok {
		writeError(w, inventory.ErrNoActor)
		return
	}

	var req createTransactionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	st, remaining, err := h.Repo.CreateTransaction(r.Context(), inventory.Movement{
		ProductID: req.ProductID,
		Type:      req.TransactionType,
		Quantity:  req.Quantity,
		ActorID:   actor.ID,
		Notes:     req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	publishStockChanges(h.ProducerStock, h.Service, middleware.GetReqID(r.Context()),
		[]orders.StockChange{{Transaction: st, Remaining: remaining}})

	writeJSON(w, http.StatusCreated, st)
}

func (h *StockHandler) list(w http.ResponseWriter, r *http.Request) {
	ts, err := h.Repo.ListTransactions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if ts == nil {
		ts = []inventory.StockTransaction{}
	}
	writeJSON(w, http.StatusOK, ts)
}
