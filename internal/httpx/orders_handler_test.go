package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ariefcatur/go-inventory-orders.git/internal/orders"
)

type stubOrderService struct {
	err error
	got orders.PlaceOrderRequest
}

func (s *stubOrderService) PlaceOrder(_ context.Context, req orders.PlaceOrderRequest) (orders.Order, error) {
	s.got = req
	if s.err != nil {
		return orders.Order{}, s.err
	}
	return orders.Order{ID: "o-1", Status: orders.StatusActive}, nil
}

func (s *stubOrderService) GetOrder(_ context.Context, orderID string) (orders.Order, error) {
	if s.err != nil {
		return orders.Order{}, s.err
	}
	return orders.Order{ID: orderID, Status: orders.StatusActive}, nil
}

func ordersRouter(svc *stubOrderService) *chi.Mux {
	r := chi.NewRouter()
	h := &OrdersHandler{Svc: svc, Log: testLogger()}
	h.Register(r)
	return r
}

const orderBody = `{"userId":7,"userName":"alice","shippingAddress":"221B Baker Street","productId":100,"productName":"milk","batchId":1,"amount":20.2,"quantity":10}`

func TestOrderGreeting(t *testing.T) {
	rec := httptest.NewRecorder()
	ordersRouter(&stubOrderService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "Hello" {
		t.Fatalf("greeting = %d %q", rec.Code, rec.Body.String())
	}
}

func TestPlaceOrderSuccess(t *testing.T) {
	svc := &stubOrderService{}
	rec := httptest.NewRecorder()
	ordersRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/order", strings.NewReader(orderBody)))

	if rec.Code != http.StatusOK || rec.Body.String() != "Success" {
		t.Fatalf("place order = %d %q", rec.Code, rec.Body.String())
	}
	if svc.got.UserID != 7 || svc.got.BatchID != 1 || svc.got.Quantity != 10 || svc.got.Amount != 20.2 {
		t.Fatalf("request decoded wrong: %+v", svc.got)
	}
}

func TestPlaceOrderFailureBody(t *testing.T) {
	svc := &stubOrderService{err: errors.New("inventory rejected stock update")}
	rec := httptest.NewRecorder()
	ordersRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/order", strings.NewReader(orderBody)))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ErrorCode != "NOT_FOUND" || resp.Status != http.StatusNotFound {
		t.Fatalf("error body = %+v", resp)
	}
	if resp.Message != "Order is not able to save due to some reason" {
		t.Fatalf("message = %q", resp.Message)
	}
	if resp.Timestamp.IsZero() {
		t.Fatal("timestamp missing")
	}
}

func TestGetOrder(t *testing.T) {
	rec := httptest.NewRecorder()
	ordersRouter(&stubOrderService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/order/o-1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got orders.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != "o-1" || got.Status != orders.StatusActive {
		t.Fatalf("order = %+v", got)
	}
}

func TestGetOrderNotFound(t *testing.T) {
	svc := &stubOrderService{err: orders.ErrOrderNotFound}
	rec := httptest.NewRecorder()
	ordersRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/order/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestPlaceOrderInvalidJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	ordersRouter(&stubOrderService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/order", strings.NewReader("{")))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
