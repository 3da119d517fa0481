package orders

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID              string          `json:"id"`
	UserID          int64           `json:"userId"`
	UserName        string          `json:"userName"`
	Status          Status          `json:"status"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	ShippingAddress string          `json:"shippingAddress"`
	Items           []OrderItem     `json:"items"`
	CreatedAt       time.Time       `json:"-"`
	UpdatedAt       time.Time       `json:"-"`
}

// OrderItem is written together with its order and never updated on its
// own. BatchNo carries the external batch id the stock was taken from.
type OrderItem struct {
	ID          int64   `json:"id"`
	OrderID     string  `json:"-"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	BatchNo     int64   `json:"batchNo"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// PlaceOrderRequest is the POST /v1/order payload. A request carries one
// line item inline (product, batch, quantity, amount).
type PlaceOrderRequest struct {
	UserID          int64   `json:"userId"`
	UserName        string  `json:"userName"`
	ShippingAddress string  `json:"shippingAddress"`
	ProductID       int64   `json:"productId"`
	ProductName     string  `json:"productName"`
	BatchID         int64   `json:"batchId"`
	Amount          float64 `json:"amount"`
	Quantity        int     `json:"quantity"`
}
