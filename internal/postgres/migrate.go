package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate bootstraps the schema. Statements are idempotent so every binary
// can run it at startup.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		username      VARCHAR(50) NOT NULL UNIQUE,
		email         VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role          VARCHAR(20) NOT NULL DEFAULT 'staff',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		id             BIGSERIAL PRIMARY KEY,
		name           VARCHAR(100) NOT NULL,
		contact_person VARCHAR(100) NOT NULL DEFAULT '',
		email          VARCHAR(100) NOT NULL DEFAULT '',
		phone          VARCHAR(20) NOT NULL DEFAULT '',
		address        TEXT NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id            BIGSERIAL PRIMARY KEY,
		name          VARCHAR(200) NOT NULL,
		sku           VARCHAR(50) NOT NULL UNIQUE,
		description   TEXT NOT NULL DEFAULT '',
		category      VARCHAR(100) NOT NULL DEFAULT '',
		price         NUMERIC(12,2) NOT NULL,
		cost          NUMERIC(12,2) NOT NULL,
		quantity      INT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		reorder_level INT NOT NULL DEFAULT 10,
		supplier_id   BIGINT REFERENCES suppliers(id),
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id           BIGSERIAL PRIMARY KEY,
		order_date   TIMESTAMPTZ NOT NULL DEFAULT now(),
		status       VARCHAR(20) NOT NULL DEFAULT 'pending',
		total_amount NUMERIC(14,2) NOT NULL DEFAULT 0,
		created_by   BIGINT NOT NULL REFERENCES users(id),
		notes        TEXT NOT NULL DEFAULT '',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id         BIGSERIAL PRIMARY KEY,
		order_id   BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id BIGINT NOT NULL REFERENCES products(id),
		quantity   INT NOT NULL,
		price      NUMERIC(12,2) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
	`CREATE TABLE IF NOT EXISTS stock_transactions (
		id               BIGSERIAL PRIMARY KEY,
		product_id       BIGINT NOT NULL REFERENCES products(id),
		transaction_type VARCHAR(20) NOT NULL,
		quantity         INT NOT NULL,
		user_id          BIGINT NOT NULL REFERENCES users(id),
		notes            TEXT NOT NULL DEFAULT '',
		transaction_date TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stock_transactions_product ON stock_transactions(product_id, transaction_date DESC)`,
}
