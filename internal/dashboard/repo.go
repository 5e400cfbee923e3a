package dashboard

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type RecentOrder struct {
	ID          int64           `json:"id"`
	OrderDate   time.Time       `json:"order_date"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type Stats struct {
	TotalProducts int64           `json:"total_products"`
	LowStockCount int64           `json:"low_stock_count"`
	TotalOrders   int64           `json:"total_orders"`
	PendingOrders int64           `json:"pending_orders"`
	// InventoryValue is sum(quantity * cost) over all products.
	InventoryValue decimal.Decimal `json:"inventory_value"`
	RecentOrders   []RecentOrder   `json:"recent_orders"`
}

type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	err := r.DB.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM products WHERE quantity <= reorder_level),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE status = 'pending'),
			COALESCE((SELECT SUM(quantity * cost) FROM products), 0)`,
	).Scan(&s.TotalProducts, &s.LowStockCount, &s.TotalOrders, &s.PendingOrders, &s.InventoryValue)
	if err != nil {
		return Stats{}, err
	}

	rows, err := r.DB.Query(ctx, `
		SELECT id, order_date, status, total_amount
		FROM orders ORDER BY created_at DESC LIMIT 5`)
	if err != nil {
		return Stats{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var o RecentOrder
		if err := rows.Scan(&o.ID, &o.OrderDate, &o.Status, &o.TotalAmount); err != nil {
			return Stats{}, err
		}
		s.RecentOrders = append(s.RecentOrders, o)
	}
	return s, rows.Err()
}
