package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/puregold/inventory-api/internal/dashboard"
	"github.com/puregold/inventory-api/internal/redisx"
)

type DashboardHandler struct {
	Repo  *dashboard.Repo
	Redis *redis.Client
}

func (h *DashboardHandler) Register(r *chi.Mux) {
	r.Get("/dashboard/stats", h.stats)
}

func (h *DashboardHandler) stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// short-TTL cache; staleness up to the TTL is acceptable here
	if s, err := h.Redis.Get(ctx, redisx.KeyDashboardStats).Result(); err == nil && s != "" {
		writeJSON(w, http.StatusOK, json.RawMessage(s))
		return
	}

	stats, err := h.Repo.Stats(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	if stats.RecentOrders == nil {
		stats.RecentOrders = []dashboard.RecentOrder{}
	}

	b, err := json.Marshal(stats)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = h.Redis.Set(ctx, redisx.KeyDashboardStats, b, redisx.TTLDashboardStats).Err()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}
