package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) ProductByExternalID(ctx context.Context, productID int64) (Product, error) {
	var p Product
	err := r.DB.QueryRow(ctx, `
		SELECT id, product_id, product_name, product_description, created_at, updated_at
		FROM products WHERE product_id = $1`, productID).
		Scan(&p.ID, &p.ProductID, &p.ProductName, &p.ProductDescription, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, ErrProductNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

// BatchesByProduct returns the product's batches, furthest expiry first.
func (r *Repo) BatchesByProduct(ctx context.Context, productID int64) ([]Batch, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, batch_id, batch_type, expiry_time, price, quantity, product_id
		FROM batches WHERE product_id = $1 ORDER BY expiry_time DESC`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Batch
	for rows.Next() {
		var b Batch
		if err := rows.Scan(&b.ID, &b.BatchID, &b.BatchType, &b.ExpiryTime, &b.Price, &b.Quantity, &b.ProductID); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Onboard creates the product if its external id is new and upserts the
// batch under it. Re-submitting a known batch id overwrites its quantity
// with the incoming value; it does not add. Both writes happen in one
// transaction keyed on the unique external ids, so concurrent onboarding
// of the same product cannot create duplicates.
func (r *Repo) Onboard(ctx context.Context, req OnboardRequest) (Product, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Product{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO products (id, product_id, product_name, product_description)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id) DO NOTHING`,
		uuid.NewString(), req.ProductID, req.ProductName, req.ProductDescription)
	if err != nil {
		return Product{}, err
	}

	var p Product
	err = tx.QueryRow(ctx, `
		SELECT id, product_id, product_name, product_description, created_at, updated_at
		FROM products WHERE product_id = $1`, req.ProductID).
		Scan(&p.ID, &p.ProductID, &p.ProductName, &p.ProductDescription, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return Product{}, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO batches (id, batch_id, product_id, batch_type, expiry_time, price, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (batch_id) DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`,
		uuid.NewString(), req.BatchID, req.ProductID, req.BatchType, req.ExpiryDate, req.Price, req.Quantity)
	if err != nil {
		return Product{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Product{}, err
	}

	batches, err := r.BatchesByProduct(ctx, req.ProductID)
	if err != nil {
		return Product{}, err
	}
	p.Batches = batches
	return p, nil
}

// DecrementBatch subtracts qty from the batch in a single conditional
// update; the sufficiency check and the write cannot race. Zero rows
// affected means either the batch is unknown or the stock is short, so a
// follow-up read classifies the failure.
func (r *Repo) DecrementBatch(ctx context.Context, batchID int64, qty int) error {
	ct, err := r.DB.Exec(ctx, `
		UPDATE batches SET quantity = quantity - $2, updated_at = now()
		WHERE batch_id = $1 AND quantity >= $2`, batchID, qty)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 1 {
		return nil
	}

	var have int
	err = r.DB.QueryRow(ctx, `SELECT quantity FROM batches WHERE batch_id = $1`, batchID).Scan(&have)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrBatchNotFound
	}
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: batch %d has %d, requested %d", ErrInsufficientStock, batchID, have, qty)
}
