package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/catalog-inventory/services/internal/apperr"
	"github.com/catalog-inventory/services/internal/products/domain"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, name string, price float64) (*domain.Product, error) {
	query := `
		INSERT INTO products (name, price, is_active, created_at, updated_at)
		VALUES ($1, $2, TRUE, NOW(), NOW())
		RETURNING id, name, price, is_active, created_at, updated_at
	`

	product := &domain.Product{}
	err := r.db.QueryRowContext(ctx, query, name, price).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.IsActive,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, apperr.Wrap(apperr.PersistenceError, "products.Create", err)
	}
	return product, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT id, name, price, is_active, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	product := &domain.Product{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.IsActive,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.New(apperr.NotFound, "products.GetByID", fmt.Sprintf("product %d not found", id))
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.PersistenceError, "products.GetByID", err)
	}
	return product, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET name = $2, price = $3, is_active = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query, product.ID, product.Name, product.Price, product.IsActive).
		Scan(&product.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.New(apperr.NotFound, "products.Update", fmt.Sprintf("product %d not found", product.ID))
	}
	if err != nil {
		return apperr.Wrap(apperr.PersistenceError, "products.Update", err)
	}
	return nil
}

func (r *ProductRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `
		UPDATE products
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return apperr.Wrap(apperr.PersistenceError, "products.SoftDelete", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.New(apperr.NotFound, "products.SoftDelete", fmt.Sprintf("product %d not found", id))
	}
	return nil
}

func (r *ProductRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Product, error) {
	query := `
		SELECT id, name, price, is_active, created_at, updated_at
		FROM products
		WHERE ($1::BOOLEAN IS NULL OR is_active = $1)
		ORDER BY id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, filter.IsActive, filter.EffectiveLimit(), filter.Offset())
	if err != nil {
		return nil, apperr.Wrap(apperr.PersistenceError, "products.List", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		product := &domain.Product{}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Price,
			&product.IsActive,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			return nil, apperr.Wrap(apperr.PersistenceError, "products.List", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.PersistenceError, "products.List", err)
	}

	return products, nil
}
