package orders

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ariefcatur/go-inventory-orders.git/internal/inventory"
)

type Store interface {
	CreateOrderTx(ctx context.Context, o Order) (Order, error)
	GetOrder(ctx context.Context, orderID string) (Order, error)
}

// InventoryGateway is the outbound dependency on the inventory service's
// stock update endpoint.
type InventoryGateway interface {
	UpdateStock(ctx context.Context, upd inventory.StockUpdate) error
}

type Service struct {
	Store     Store
	Inventory InventoryGateway
	Log       *slog.Logger
}

// PlaceOrder decrements stock on the inventory service and, only if that
// succeeds, persists the order with its single item. A rejected or failed
// inventory call surfaces as an error; no order row is written. There is
// no compensation path: if the persist fails after the decrement went
// through, the stock stays decremented.
func (s *Service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (Order, error) {
	upd := inventory.StockUpdate{
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		BatchID:     req.BatchID,
		Amount:      req.Amount,
		Quantity:    req.Quantity,
	}
	if err := s.Inventory.UpdateStock(ctx, upd); err != nil {
		return Order{}, fmt.Errorf("update inventory: %w", err)
	}

	o := Order{
		ID:            uuid.NewString(),
		UserID:        req.UserID,
		UserName:      req.UserName,
		Status:        StatusActive,
		PaymentStatus: PaymentSuccess,
		// total is recorded as zero, not derived from the item
		TotalAmount:     decimal.Zero,
		ShippingAddress: req.ShippingAddress,
		Items: []OrderItem{{
			ProductID:   req.ProductID,
			ProductName: req.ProductName,
			BatchNo:     req.BatchID,
			Quantity:    req.Quantity,
			Price:       req.Amount,
		}},
	}

	saved, err := s.Store.CreateOrderTx(ctx, o)
	if err != nil {
		s.Log.Error("order persist failed after stock decrement",
			"order_id", o.ID, "batch_id", req.BatchID, "quantity", req.Quantity, "err", err)
		return Order{}, fmt.Errorf("persist order: %w", err)
	}
	s.Log.Info("order placed", "order_id", saved.ID, "user_id", saved.UserID)
	return saved, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (Order, error) {
	return s.Store.GetOrder(ctx, orderID)
}
