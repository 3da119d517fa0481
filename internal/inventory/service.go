package inventory

import (
	"context"
	"log/slog"
)

// Store is the persistence port the service talks to.
type Store interface {
	ProductByExternalID(ctx context.Context, productID int64) (Product, error)
	BatchesByProduct(ctx context.Context, productID int64) ([]Batch, error)
	Onboard(ctx context.Context, req OnboardRequest) (Product, error)
	DecrementBatch(ctx context.Context, batchID int64, qty int) error
}

type Service struct {
	Store Store
	Log   *slog.Logger
}

// Batches returns the product's batches ordered by expiry descending.
// An unknown product id is a distinct error, not an empty list; the HTTP
// surface decides how much of that to reveal.
func (s *Service) Batches(ctx context.Context, productID int64) ([]Batch, error) {
	if _, err := s.Store.ProductByExternalID(ctx, productID); err != nil {
		return nil, err
	}
	return s.Store.BatchesByProduct(ctx, productID)
}

func (s *Service) Onboard(ctx context.Context, req OnboardRequest) (Product, error) {
	p, err := s.Store.Onboard(ctx, req)
	if err != nil {
		return Product{}, err
	}
	s.Log.Info("onboarded batch",
		"product_id", req.ProductID, "batch_id", req.BatchID, "quantity", req.Quantity)
	return p, nil
}

// Decrement subtracts qty from the batch. qty must be positive and no
// larger than the batch quantity; the decrement is final once persisted.
func (s *Service) Decrement(ctx context.Context, batchID int64, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if err := s.Store.DecrementBatch(ctx, batchID, qty); err != nil {
		return err
	}
	s.Log.Info("stock decremented", "batch_id", batchID, "quantity", qty)
	return nil
}
