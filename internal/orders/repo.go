package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/puregold/inventory-api/internal/catalog"
	"github.com/puregold/inventory-api/internal/inventory"
)

type Repo struct {
	DB *pgxpool.Pool

	// RestockOnCancel credits line items back to stock when an order is
	// cancelled. When off, cancellation is a write-off.
	RestockOnCancel bool
}

// StockChange pairs a committed ledger row with the stock level it left
// behind, for event publication.
type StockChange struct {
	Transaction inventory.StockTransaction
	Remaining   int
}

const productCols = `id, name, sku, description, category, price, cost, quantity, reorder_level, supplier_id, created_at, updated_at`

// Create fulfills an order as one atomic unit: lock every requested product
// row in request order, validate the whole order, then debit stock, snapshot
// prices, and append one outbound ledger row per line. Either all rows land
// or none do.
func (r *Repo) Create(ctx context.Context, actorID int64, items []ItemInput, notes string) (Order, []StockChange, error) {
	if actorID <= 0 {
		return Order{}, nil, inventory.ErrNoActor
	}
	if len(items) == 0 {
		return Order{}, nil, ErrNoItems
	}

	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Order{}, nil, err
	}
	defer tx.Rollback(ctx)

	products := make(map[int64]catalog.Product, len(items))
	for _, it := range items {
		if _, ok := products[it.ProductID]; ok {
			continue
		}
		var p catalog.Product
		err := tx.QueryRow(ctx, `SELECT `+productCols+` FROM products WHERE id=$1 FOR UPDATE`, it.ProductID).
			Scan(&p.ID, &p.Name, &p.SKU, &p.Description, &p.Category,
				&p.Price, &p.Cost, &p.Quantity, &p.ReorderLevel, &p.SupplierID,
				&p.CreatedAt, &p.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return Order{}, nil, fmt.Errorf("product %d: %w", it.ProductID, catalog.ErrProductNotFound)
		}
		if err != nil {
			return Order{}, nil, err
		}
		products[p.ID] = p
	}

	plan, err := BuildPlan(items, products)
	if err != nil {
		return Order{}, nil, err
	}

	o := Order{Status: StatusPending, TotalAmount: plan.Total, CreatedBy: actorID, Notes: notes}
	err = tx.QueryRow(ctx, `
		INSERT INTO orders(status, total_amount, created_by, notes)
		VALUES ($1,$2,$3,$4)
		RETURNING id, order_date, created_at, updated_at`,
		string(o.Status), o.TotalAmount, actorID, notes,
	).Scan(&o.ID, &o.OrderDate, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return Order{}, nil, err
	}

	var changes []StockChange
	for _, line := range plan.Lines {
		item := OrderItem{OrderID: o.ID, ProductID: line.Product.ID, Quantity: line.Quantity, Price: line.Price}
		err := tx.QueryRow(ctx, `
			INSERT INTO order_items(order_id, product_id, quantity, price)
			VALUES ($1,$2,$3,$4)
			RETURNING id`,
			o.ID, item.ProductID, item.Quantity, item.Price,
		).Scan(&item.ID)
		if err != nil {
			return Order{}, nil, err
		}
		o.Items = append(o.Items, item)

		st, err := inventory.Record(ctx, tx, inventory.Movement{
			ProductID: line.Product.ID,
			Type:      inventory.TypeOut,
			Quantity:  line.Quantity,
			ActorID:   actorID,
			Notes:     fmt.Sprintf("order %d", o.ID),
		}, line.NewQuantity)
		if err != nil {
			return Order{}, nil, err
		}
		changes = append(changes, StockChange{Transaction: st, Remaining: line.NewQuantity})
	}

	if err := tx.Commit(ctx); err != nil {
		return Order{}, nil, err
	}
	return o, changes, nil
}

func (r *Repo) Get(ctx context.Context, id int64) (Order, error) {
	var o Order
	err := r.DB.QueryRow(ctx, `
		SELECT id, order_date, status, total_amount, created_by, notes, created_at, updated_at
		FROM orders WHERE id=$1`, id,
	).Scan(&o.ID, &o.OrderDate, &o.Status, &o.TotalAmount, &o.CreatedBy, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, fmt.Errorf("order %d: %w", id, ErrOrderNotFound)
	}
	if err != nil {
		return Order{}, err
	}

	rows, err := r.DB.Query(ctx, `
		SELECT id, order_id, product_id, quantity, price
		FROM order_items WHERE order_id=$1 ORDER BY id`, id)
	if err != nil {
		return Order{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price); err != nil {
			return Order{}, err
		}
		o.Items = append(o.Items, it)
	}
	return o, rows.Err()
}

func (r *Repo) List(ctx context.Context) ([]Order, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, order_date, status, total_amount, created_by, notes, created_at, updated_at
		FROM orders ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	index := map[int64]int{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.OrderDate, &o.Status, &o.TotalAmount, &o.CreatedBy, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		index[o.ID] = len(out)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := r.DB.Query(ctx, `
		SELECT id, order_id, product_id, quantity, price
		FROM order_items ORDER BY order_id, id`)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var it OrderItem
		if err := itemRows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		if i, ok := index[it.OrderID]; ok {
			out[i].Items = append(out[i].Items, it)
		}
	}
	return out, itemRows.Err()
}

// UpdateStatus moves an order through the state machine. Cancellation
// restores stock only when the repo's policy says so; the restock happens in
// the same transaction as the status change and writes inbound ledger rows.
func (r *Repo) UpdateStatus(ctx context.Context, id int64, to Status, actorID int64) (Order, []StockChange, error) {
	if actorID <= 0 {
		return Order{}, nil, inventory.ErrNoActor
	}

	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Order{}, nil, err
	}
	defer tx.Rollback(ctx)

	var from Status
	err = tx.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1 FOR UPDATE`, id).Scan(&from)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, nil, fmt.Errorf("order %d: %w", id, ErrOrderNotFound)
	}
	if err != nil {
		return Order{}, nil, err
	}
	if !CanTransition(from, to) {
		return Order{}, nil, fmt.Errorf("%s -> %s: %w", from, to, ErrInvalidTransition)
	}

	if _, err := tx.Exec(ctx, `UPDATE orders SET status=$2, updated_at=now() WHERE id=$1`, id, string(to)); err != nil {
		return Order{}, nil, err
	}

	var changes []StockChange
	if to == StatusCancelled && r.RestockOnCancel {
		o := Order{ID: id}
		rows, err := tx.Query(ctx, `SELECT id, order_id, product_id, quantity, price FROM order_items WHERE order_id=$1 ORDER BY id`, id)
		if err != nil {
			return Order{}, nil, err
		}
		for rows.Next() {
			var it OrderItem
			if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price); err != nil {
				rows.Close()
				return Order{}, nil, err
			}
			o.Items = append(o.Items, it)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return Order{}, nil, err
		}

		for _, m := range RestockMovements(o, actorID) {
			st, remaining, err := inventory.Apply(ctx, tx, m)
			if err != nil {
				return Order{}, nil, err
			}
			changes = append(changes, StockChange{Transaction: st, Remaining: remaining})
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return Order{}, nil, err
	}

	o, err := r.Get(ctx, id)
	if err != nil {
		return Order{}, nil, err
	}
	return o, changes, nil
}
