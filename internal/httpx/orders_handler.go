package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/puregold/inventory-api/internal/auth"
	"github.com/puregold/inventory-api/internal/events"
	"github.com/puregold/inventory-api/internal/inventory"
	kafkax "github.com/puregold/inventory-api/internal/kafka"
	"github.com/puregold/inventory-api/internal/orders"
)

type OrdersHandler struct {
	Service        string
	Repo           *orders.Repo
	ProducerOrders *kafkax.Producer // order.created
	ProducerStatus *kafkax.Producer // order.status
	ProducerStock  *kafkax.Producer // stock.changed
	Auth           func(http.Handler) http.Handler
}

type createOrderReq struct {
	Items []orders.ItemInput `json:"items"`
	Notes string             `json:"notes"`
}

type updateStatusReq struct {
	Status orders.Status `json:"status"`
}

func (h *OrdersHandler) Register(r *chi.Mux) {
	r.Get("/orders", h.list)
	r.Get("/orders/{id}", h.get)

	r.Group(func(g chi.Router) {
		g.Use(h.Auth)
		g.Post("/orders", h.create)
		g.Put("/orders/{id}/status", h.updateStatus)
	})
}

func (h *OrdersHandler) create(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFrom(r.Context())
	if !ok {
		writeError(w, inventory.ErrNoActor)
		return
	}

	var req createOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	o, changes, err := h.Repo.Create(r.Context(), actor.ID, req.Items, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}

	trace := middleware.GetReqID(r.Context())
	items := make([]events.OrderItemPayload, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, events.OrderItemPayload{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price.String()})
	}
	publish(h.ProducerOrders, h.Service, events.EventOrderCreated, trace, events.PartitionKey(o.ID), events.OrderCreatedPayload{
		OrderID:     o.ID,
		CreatedBy:   o.CreatedBy,
		TotalAmount: o.TotalAmount.String(),
		Items:       items,
	})
	publishStockChanges(h.ProducerStock, h.Service, trace, changes)

	writeJSON(w, http.StatusCreated, o)
}

func (h *OrdersHandler) list(w http.ResponseWriter, r *http.Request) {
	all, err := h.Repo.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if all == nil {
		all = []orders.Order{}
	}
	writeJSON(w, http.StatusOK, all)
}

func (h *OrdersHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	o, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *OrdersHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFrom(r.Context())
	if !ok {
		writeError(w, inventory.ErrNoActor)
		return
	}
	id, ok := idParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var req updateStatusReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if !req.Status.Valid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown status"})
		return
	}

	before, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	o, changes, err := h.Repo.UpdateStatus(r.Context(), id, req.Status, actor.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	trace := middleware.GetReqID(r.Context())
	publish(h.ProducerStatus, h.Service, events.EventOrderStatusChanged, trace, events.PartitionKey(o.ID), events.OrderStatusChangedPayload{
		OrderID:   o.ID,
		From:      string(before.Status),
		To:        string(o.Status),
		Restocked: len(changes) > 0,
	})
	publishStockChanges(h.ProducerStock, h.Service, trace, changes)

	writeJSON(w, http.StatusOK, o)
}
