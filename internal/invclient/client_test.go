package invclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ariefcatur/go-inventory-orders.git/internal/inventory"
)

func upd() inventory.StockUpdate {
	return inventory.StockUpdate{ProductID: 100, ProductName: "milk", BatchID: 1, Amount: 20.2, Quantity: 10}
}

func TestUpdateStockOK(t *testing.T) {
	var got inventory.StockUpdate
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/inventory/update" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_, _ = w.Write([]byte("Updated"))
	}))
	defer srv.Close()

	c := New(srv.URL+"/v1", 2*time.Second)
	if err := c.UpdateStock(context.Background(), upd()); err != nil {
		t.Fatalf("update stock: %v", err)
	}
	if got.BatchID != 1 || got.Quantity != 10 || got.ProductID != 100 {
		t.Fatalf("server saw wrong payload: %+v", got)
	}
}

func TestUpdateStockRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Exception Occured", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(srv.URL+"/v1", 2*time.Second)
	err := c.UpdateStock(context.Background(), upd())
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("want ErrRejected, got %v", err)
	}
}

func TestUpdateStockServerFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL+"/v1", 2*time.Second)
	err := c.UpdateStock(context.Background(), upd())
	if err == nil {
		t.Fatal("want error on 500")
	}
	if errors.Is(err, ErrRejected) {
		t.Fatalf("server fault misclassified as rejection: %v", err)
	}
}

func TestUpdateStockUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL+"/v1", 500*time.Millisecond)
	if err := c.UpdateStock(context.Background(), upd()); err == nil {
		t.Fatal("want error when inventory is unreachable")
	}
}

func TestNewTrimsTrailingSlash(t *testing.T) {
	c := New("http://inventory:9091/v1/", time.Second)
	if c.BaseURL != "http://inventory:9091/v1" {
		t.Fatalf("base url = %q", c.BaseURL)
	}
}
