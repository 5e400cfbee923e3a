package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/puregold/inventory-api/internal/ai"
	"github.com/puregold/inventory-api/internal/auth"
	"github.com/puregold/inventory-api/internal/catalog"
	"github.com/puregold/inventory-api/internal/inventory"
	"github.com/puregold/inventory-api/internal/orders"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps domain errors to HTTP status codes. Caller-input errors are
// never retried; they come straight back with the offending entity.
func statusFor(err error) int {
	var fieldErr *catalog.FieldError
	switch {
	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, catalog.ErrSupplierNotFound),
		errors.Is(err, orders.ErrOrderNotFound),
		errors.Is(err, auth.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrSKUExists),
		errors.Is(err, auth.ErrUsernameTaken),
		errors.Is(err, auth.ErrEmailTaken),
		errors.Is(err, orders.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, ai.ErrUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, inventory.ErrInsufficientStock),
		errors.Is(err, inventory.ErrInvalidQuantity),
		errors.Is(err, inventory.ErrInvalidType),
		errors.Is(err, inventory.ErrNoActor),
		errors.Is(err, orders.ErrNoItems),
		errors.As(err, &fieldErr):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	code := statusFor(err)

	body := map[string]any{"error": err.Error()}
	if code == http.StatusInternalServerError {
		body["error"] = "internal error"
	}
	var short *inventory.InsufficientStockError
	if errors.As(err, &short) {
		body["product_id"] = short.ProductID
		body["available"] = short.Available
	}
	writeJSON(w, code, body)
}
