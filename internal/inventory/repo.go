package inventory

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ DB *pgxpool.Pool }

// CreateTransaction applies one stock movement in its own transaction and
// returns the ledger row plus the resulting quantity.
func (r *Repo) CreateTransaction(ctx context.Context, m Movement) (StockTransaction, int, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return StockTransaction{}, 0, err
	}
	defer tx.Rollback(ctx)

	st, remaining, err := Apply(ctx, tx, m)
	if err != nil {
		return StockTransaction{}, 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return StockTransaction{}, 0, err
	}
	return st, remaining, nil
}

func (r *Repo) ListTransactions(ctx context.Context) ([]StockTransaction, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, product_id, transaction_type, quantity, user_id, notes, transaction_date
		FROM stock_transactions ORDER BY transaction_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

// RecentForProduct returns the newest ledger rows for one product, used as
// forecast input.
func (r *Repo) RecentForProduct(ctx context.Context, productID int64, limit int) ([]StockTransaction, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, product_id, transaction_type, quantity, user_id, notes, transaction_date
		FROM stock_transactions
		WHERE product_id=$1 ORDER BY transaction_date DESC LIMIT $2`, productID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func collect(rows pgx.Rows) ([]StockTransaction, error) {
	var out []StockTransaction
	for rows.Next() {
		var st StockTransaction
		if err := rows.Scan(&st.ID, &st.ProductID, &st.Type, &st.Quantity, &st.UserID, &st.Notes, &st.Date); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}
