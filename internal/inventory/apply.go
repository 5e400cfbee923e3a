package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/puregold/inventory-api/internal/catalog"
)

// Querier is the subset of pgx.Tx used here, so callers can apply movements
// inside their own transactions.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Record writes the product's new quantity and appends the matching ledger
// row. Every committed stock change in the system goes through here, which is
// what keeps quantity changes and ledger rows one-to-one.
func Record(ctx context.Context, q Querier, m Movement, newQty int) (StockTransaction, error) {
	if m.ActorID <= 0 {
		return StockTransaction{}, ErrNoActor
	}

	ct, err := q.Exec(ctx, `UPDATE products SET quantity=$2, updated_at=now() WHERE id=$1`, m.ProductID, newQty)
	if err != nil {
		return StockTransaction{}, err
	}
	if ct.RowsAffected() != 1 {
		return StockTransaction{}, fmt.Errorf("product %d: %w", m.ProductID, catalog.ErrProductNotFound)
	}

	st := StockTransaction{ProductID: m.ProductID, Type: m.Type, Quantity: m.Quantity, UserID: m.ActorID, Notes: m.Notes}
	err = q.QueryRow(ctx, `
		INSERT INTO stock_transactions(product_id, transaction_type, quantity, user_id, notes)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, transaction_date`,
		m.ProductID, string(m.Type), m.Quantity, m.ActorID, m.Notes,
	).Scan(&st.ID, &st.Date)
	if err != nil {
		return StockTransaction{}, err
	}
	return st, nil
}

// Apply locks the product row, validates the movement against the current
// quantity, and records it. Returns the ledger row and the resulting level.
func Apply(ctx context.Context, q Querier, m Movement) (StockTransaction, int, error) {
	if m.ActorID <= 0 {
		return StockTransaction{}, 0, ErrNoActor
	}
	if !m.Type.Valid() {
		return StockTransaction{}, 0, fmt.Errorf("%w: %q", ErrInvalidType, m.Type)
	}

	var name string
	var current int
	err := q.QueryRow(ctx, `SELECT name, quantity FROM products WHERE id=$1 FOR UPDATE`, m.ProductID).Scan(&name, &current)
	if errors.Is(err, pgx.ErrNoRows) {
		return StockTransaction{}, 0, fmt.Errorf("product %d: %w", m.ProductID, catalog.ErrProductNotFound)
	}
	if err != nil {
		return StockTransaction{}, 0, err
	}

	next, err := NextQuantity(m.Type, current, m.Quantity)
	if errors.Is(err, ErrInsufficientStock) {
		return StockTransaction{}, 0, &InsufficientStockError{
			ProductID: m.ProductID, Name: name, Requested: m.Quantity, Available: current,
		}
	}
	if err != nil {
		return StockTransaction{}, 0, err
	}

	st, err := Record(ctx, q, m, next)
	if err != nil {
		return StockTransaction{}, 0, err
	}
	return st, next, nil
}
