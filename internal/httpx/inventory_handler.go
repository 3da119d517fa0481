package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ariefcatur/go-inventory-orders.git/internal/inventory"
)

type InventoryService interface {
	Batches(ctx context.Context, productID int64) ([]inventory.Batch, error)
	Onboard(ctx context.Context, req inventory.OnboardRequest) (inventory.Product, error)
	Decrement(ctx context.Context, batchID int64, qty int) error
}

type InventoryHandler struct {
	Svc InventoryService
	Log *slog.Logger
}

func (h *InventoryHandler) Register(r *chi.Mux) {
	r.Get("/v1/", h.greet)
	r.Get("/v1/inventory/{productId}", h.getBatches)
	r.Post("/v1/inventory", h.onboard)
	r.Post("/v1/inventory/update", h.update)
}

func (h *InventoryHandler) greet(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "hello from inventory")
}

// getBatches lists a product's batches, furthest expiry first. The wire
// contract collapses every failure into 400 + an empty list; the cause
// only reaches the log.
func (h *InventoryHandler) getBatches(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, []inventory.Batch{})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	batches, err := h.Svc.Batches(ctx, productID)
	if err != nil {
		h.Log.Warn("list batches", "product_id", productID, "err", err)
		writeJSON(w, http.StatusBadRequest, []inventory.Batch{})
		return
	}
	if batches == nil {
		batches = []inventory.Batch{}
	}
	writeJSON(w, http.StatusOK, batches)
}

func (h *InventoryHandler) onboard(w http.ResponseWriter, r *http.Request) {
	var req inventory.OnboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	p, err := h.Svc.Onboard(ctx, req)
	if err != nil {
		h.Log.Error("onboard", "product_id", req.ProductID, "batch_id", req.BatchID, "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "onboarding failed"})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// update applies a stock decrement. Every refusal maps to the same
// generic 400 body the original contract promises; the distinct causes
// stay visible in the log.
func (h *InventoryHandler) update(w http.ResponseWriter, r *http.Request) {
	var req inventory.StockUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeText(w, http.StatusBadRequest, "Exception Occured")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	err := h.Svc.Decrement(ctx, req.BatchID, req.Quantity)
	switch {
	case err == nil:
		writeText(w, http.StatusOK, "Updated")
	case errors.Is(err, inventory.ErrInvalidQuantity),
		errors.Is(err, inventory.ErrInsufficientStock),
		errors.Is(err, inventory.ErrBatchNotFound):
		h.Log.Warn("stock update rejected", "batch_id", req.BatchID, "quantity", req.Quantity, "err", err)
		writeText(w, http.StatusBadRequest, "Exception Occured")
	default:
		h.Log.Error("stock update", "batch_id", req.BatchID, "err", err)
		writeText(w, http.StatusInternalServerError, "Exception Occured")
	}
}
