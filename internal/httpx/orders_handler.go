package httpx

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ariefcatur/go-inventory-orders.git/internal/orders"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, req orders.PlaceOrderRequest) (orders.Order, error)
	GetOrder(ctx context.Context, orderID string) (orders.Order, error)
}

type OrdersHandler struct {
	Svc OrderService
	Log *slog.Logger
}

// ErrorResponse is the structured failure body of POST /v1/order.
type ErrorResponse struct {
	Message   string    `json:"message"`
	ErrorCode string    `json:"errorCode"`
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *OrdersHandler) Register(r *chi.Mux) {
	r.Get("/v1/", h.greet)
	r.Post("/v1/order", h.placeOrder)
	r.Get("/v1/order/{id}", h.getOrder)
}

func (h *OrdersHandler) greet(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "Hello")
}

// placeOrder keeps the original wire contract: plain "Success" on the
// happy path, one generic NOT_FOUND body for every failure. The real
// cause (rejection, upstream fault, persist error) goes to the log.
func (h *OrdersHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req orders.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if _, err := h.Svc.PlaceOrder(ctx, req); err != nil {
		h.Log.Error("place order", "user_id", req.UserID, "batch_id", req.BatchID, "err", err)
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Message:   "Order is not able to save due to some reason",
			ErrorCode: "NOT_FOUND",
			Status:    http.StatusNotFound,
			Timestamp: time.Now().UTC(),
		})
		return
	}
	writeText(w, http.StatusOK, "Success")
}

func (h *OrdersHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing id"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	o, err := h.Svc.GetOrder(ctx, orderID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	writeJSON(w, http.StatusOK, o)
}
