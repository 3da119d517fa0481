package orders

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var ErrOrderNotFound = errors.New("order not found")

type Repo struct{ DB *pgxpool.Pool }

// CreateOrderTx persists the order and its items in one transaction;
// either all rows land or none do.
func (r *Repo) CreateOrderTx(ctx context.Context, o Order) (Order, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Order{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, user_id, user_name, status, payment_status, total_amount, shipping_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		o.ID, o.UserID, o.UserName, string(o.Status), string(o.PaymentStatus),
		o.TotalAmount.String(), o.ShippingAddress)
	if err != nil {
		return Order{}, err
	}

	for i := range o.Items {
		o.Items[i].OrderID = o.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, product_id, product_name, batch_no, quantity, price)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			o.ID, o.Items[i].ProductID, o.Items[i].ProductName, o.Items[i].BatchNo,
			o.Items[i].Quantity, o.Items[i].Price).
			Scan(&o.Items[i].ID)
		if err != nil {
			return Order{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return Order{}, err
	}
	return o, nil
}

func (r *Repo) GetOrder(ctx context.Context, orderID string) (Order, error) {
	var (
		o     Order
		total string
	)
	err := r.DB.QueryRow(ctx, `
		SELECT id, user_id, user_name, status, payment_status, total_amount::text, shipping_address, created_at, updated_at
		FROM orders WHERE id = $1`, orderID).
		Scan(&o.ID, &o.UserID, &o.UserName, &o.Status, &o.PaymentStatus, &total,
			&o.ShippingAddress, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, ErrOrderNotFound
	}
	if err != nil {
		return Order{}, err
	}
	if o.TotalAmount, err = decimal.NewFromString(total); err != nil {
		return Order{}, err
	}

	rows, err := r.DB.Query(ctx, `
		SELECT id, order_id, product_id, product_name, batch_no, quantity, price
		FROM order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return Order{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.BatchNo, &it.Quantity, &it.Price); err != nil {
			return Order{}, err
		}
		o.Items = append(o.Items, it)
	}
	return o, rows.Err()
}
