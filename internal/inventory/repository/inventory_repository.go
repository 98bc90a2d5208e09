package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/catalog-inventory/services/internal/apperr"
	"github.com/catalog-inventory/services/internal/inventory/domain"
)

type InventoryRepository struct {
	db *sql.DB
}

func NewInventoryRepository(db *sql.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) GetByProductID(ctx context.Context, productID int64) (*domain.InventoryRecord, error) {
	query := `
		SELECT product_id, quantity, updated_at
		FROM inventories
		WHERE product_id = $1
	`

	record := &domain.InventoryRecord{}
	err := r.db.QueryRowContext(ctx, query, productID).Scan(
		&record.ProductID,
		&record.Quantity,
		&record.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.New(apperr.NotFound, "inventory.GetByProductID",
			fmt.Sprintf("inventory for product %d not found", productID))
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.PersistenceError, "inventory.GetByProductID", err)
	}
	return record, nil
}

// Upsert creates the row on first write and replaces the quantity on later
// writes. Concurrent writers race with last-write-wins semantics; there is no
// version check.
func (r *InventoryRepository) Upsert(ctx context.Context, productID, quantity int64) (*domain.InventoryRecord, error) {
	query := `
		INSERT INTO inventories (product_id, quantity, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = NOW()
		RETURNING product_id, quantity, updated_at
	`

	record := &domain.InventoryRecord{}
	err := r.db.QueryRowContext(ctx, query, productID, quantity).Scan(
		&record.ProductID,
		&record.Quantity,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, apperr.Wrap(apperr.PersistenceError, "inventory.Upsert", err)
	}
	return record, nil
}
