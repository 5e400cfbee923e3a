package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ DB *pgxpool.Pool }

const productCols = `id, name, sku, description, category, price, cost, quantity, reorder_level, supplier_id, created_at, updated_at`

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.SKU, &p.Description, &p.Category,
		&p.Price, &p.Cost, &p.Quantity, &p.ReorderLevel, &p.SupplierID,
		&p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *Repo) CreateProduct(ctx context.Context, p Product) (Product, error) {
	if err := validateProduct(p); err != nil {
		return Product{}, err
	}

	var exists bool
	if err := r.DB.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM products WHERE sku=$1)`, p.SKU).Scan(&exists); err != nil {
		return Product{}, err
	}
	if exists {
		return Product{}, fmt.Errorf("sku %s: %w", p.SKU, ErrSKUExists)
	}

	err := r.DB.QueryRow(ctx, `
		INSERT INTO products(name, sku, description, category, price, cost, quantity, reorder_level, supplier_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id, created_at, updated_at`,
		p.Name, p.SKU, p.Description, p.Category, p.Price, p.Cost, p.Quantity, p.ReorderLevel, p.SupplierID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *Repo) GetProduct(ctx context.Context, id int64) (Product, error) {
	p, err := scanProduct(r.DB.QueryRow(ctx, `SELECT `+productCols+` FROM products WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
	}
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *Repo) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+productCols+` FROM products ORDER BY sku`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// UpdateProduct merges a partial patch against the stored row under a row
// lock, re-validating each field at merge time.
func (r *Repo) UpdateProduct(ctx context.Context, id int64, patch ProductPatch) (Product, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Product{}, err
	}
	defer tx.Rollback(ctx)

	p, err := scanProduct(tx.QueryRow(ctx, `SELECT `+productCols+` FROM products WHERE id=$1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
	}
	if err != nil {
		return Product{}, err
	}

	if err := patch.ApplyTo(&p); err != nil {
		return Product{}, err
	}

	err = tx.QueryRow(ctx, `
		UPDATE products
		SET name=$2, description=$3, category=$4, price=$5, cost=$6, reorder_level=$7, supplier_id=$8, updated_at=now()
		WHERE id=$1
		RETURNING updated_at`,
		id, p.Name, p.Description, p.Category, p.Price, p.Cost, p.ReorderLevel, p.SupplierID,
	).Scan(&p.UpdatedAt)
	if err != nil {
		return Product{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *Repo) DeleteProduct(ctx context.Context, id int64) error {
	ct, err := r.DB.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("product %d: %w", id, ErrProductNotFound)
	}
	return nil
}

// LowStockProducts returns products at or below their reorder level.
func (r *Repo) LowStockProducts(ctx context.Context) ([]Product, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+productCols+` FROM products WHERE quantity <= reorder_level ORDER BY sku`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) CreateSupplier(ctx context.Context, s Supplier) (Supplier, error) {
	if s.Name == "" {
		return Supplier{}, &FieldError{Field: "name", Reason: "must not be empty"}
	}
	err := r.DB.QueryRow(ctx, `
		INSERT INTO suppliers(name, contact_person, email, phone, address)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, created_at`,
		s.Name, s.ContactPerson, s.Email, s.Phone, s.Address,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return Supplier{}, err
	}
	return s, nil
}

func (r *Repo) GetSupplier(ctx context.Context, id int64) (Supplier, error) {
	var s Supplier
	err := r.DB.QueryRow(ctx, `
		SELECT id, name, contact_person, email, phone, address, created_at
		FROM suppliers WHERE id=$1`, id,
	).Scan(&s.ID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone, &s.Address, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Supplier{}, fmt.Errorf("supplier %d: %w", id, ErrSupplierNotFound)
	}
	if err != nil {
		return Supplier{}, err
	}
	return s, nil
}

func (r *Repo) ListSuppliers(ctx context.Context) ([]Supplier, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, name, contact_person, email, phone, address, created_at
		FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Supplier
	for rows.Next() {
		var s Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone, &s.Address, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repo) DeleteSupplier(ctx context.Context, id int64) error {
	ct, err := r.DB.Exec(ctx, `DELETE FROM suppliers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("supplier %d: %w", id, ErrSupplierNotFound)
	}
	return nil
}
