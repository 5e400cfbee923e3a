package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/puregold/inventory-api/internal/ai"
	"github.com/puregold/inventory-api/internal/auth"
	"github.com/puregold/inventory-api/internal/catalog"
	"github.com/puregold/inventory-api/internal/inventory"
	"github.com/puregold/inventory-api/internal/orders"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{catalog.ErrProductNotFound, http.StatusNotFound},
		{catalog.ErrSupplierNotFound, http.StatusNotFound},
		{orders.ErrOrderNotFound, http.StatusNotFound},
		{auth.ErrUserNotFound, http.StatusNotFound},
		{fmt.Errorf("product 9: %w", catalog.ErrProductNotFound), http.StatusNotFound},
		{catalog.ErrSKUExists, http.StatusConflict},
		{auth.ErrUsernameTaken, http.StatusConflict},
		{auth.ErrEmailTaken, http.StatusConflict},
		{orders.ErrInvalidTransition, http.StatusConflict},
		{auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{auth.ErrInvalidToken, http.StatusUnauthorized},
		{ai.ErrUnavailable, http.StatusBadGateway},
		{fmt.Errorf("%w: status 429", ai.ErrUnavailable), http.StatusBadGateway},
		{inventory.ErrInsufficientStock, http.StatusBadRequest},
		{&inventory.InsufficientStockError{ProductID: 1, Requested: 2, Available: 1}, http.StatusBadRequest},
		{inventory.ErrInvalidQuantity, http.StatusBadRequest},
		{inventory.ErrInvalidType, http.StatusBadRequest},
		{inventory.ErrNoActor, http.StatusBadRequest},
		{orders.ErrNoItems, http.StatusBadRequest},
		{&catalog.FieldError{Field: "price", Reason: "must be greater than zero"}, http.StatusBadRequest},
		{errors.New("pool exhausted"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestWriteErrorInsufficientStock(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, &inventory.InsufficientStockError{ProductID: 7, Name: "Widget", Requested: 5, Available: 2})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body["product_id"] != float64(7) || body["available"] != float64(2) {
		t.Errorf("body = %v", body)
	}
}

func TestWriteErrorMasksInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, errors.New("dial tcp 10.0.0.3:5432: connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body["error"] != "internal error" {
		t.Errorf("error = %v, internals must not leak", body["error"])
	}
}
