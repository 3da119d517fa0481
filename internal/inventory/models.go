package inventory

import "time"

// Product is an onboarded catalog entry. ProductID is the external id
// clients use on the wire; ID is the row key. Batches are owned by the
// product and loaded on demand by parent id.
type Product struct {
	ID                 string    `json:"id"`
	ProductID          int64     `json:"productId"`
	ProductName        string    `json:"productName"`
	ProductDescription string    `json:"productDescription"`
	Batches            []Batch   `json:"batches"`
	CreatedAt          time.Time `json:"-"`
	UpdatedAt          time.Time `json:"-"`
}

// Batch is a dated lot of a product: its own quantity, price and expiry.
// A batch belongs to exactly one product for its lifetime.
type Batch struct {
	ID         string    `json:"id"`
	BatchID    int64     `json:"batchId"`
	BatchType  string    `json:"batchType"`
	ExpiryTime time.Time `json:"expiryTime"`
	Price      float64   `json:"price"`
	Quantity   int       `json:"quantity"`
	ProductID  int64     `json:"-"`
}

// OnboardRequest is the create-or-merge payload for POST /v1/inventory.
type OnboardRequest struct {
	ProductID          int64     `json:"productId"`
	BatchID            int64     `json:"batchId"`
	ProductName        string    `json:"productName"`
	ProductDescription string    `json:"productDescription"`
	ExpiryDate         time.Time `json:"expiryDate"`
	BatchType          string    `json:"batchType"`
	Quantity           int       `json:"quantity"`
	Price              float64   `json:"price"`
}

// StockUpdate is the payload for POST /v1/inventory/update. The order
// service builds the same shape for its outbound call.
type StockUpdate struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	BatchID     int64   `json:"batchId"`
	Amount      float64 `json:"amount"`
	Quantity    int     `json:"quantity"`
}
