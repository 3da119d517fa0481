package invclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ariefcatur/go-inventory-orders.git/internal/inventory"
)

// ErrRejected marks a client-error response from the inventory service:
// the stock update was refused (short stock, bad quantity, unknown batch).
var ErrRejected = errors.New("inventory rejected stock update")

// Client calls the inventory service over HTTP. The base URL comes from
// config; the timeout bounds every call so order placement cannot block
// on a stuck inventory service.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) UpdateStock(ctx context.Context, upd inventory.StockUpdate) error {
	body, err := json.Marshal(upd)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/inventory/update", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("call inventory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return fmt.Errorf("%w: %s", ErrRejected, strings.TrimSpace(string(msg)))
	}
	return fmt.Errorf("inventory returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
}
