// Package service holds the reconciliation logic between the local inventory
// store and the remote products service.
package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/catalog-inventory/services/internal/apperr"
	"github.com/catalog-inventory/services/internal/directory"
	"github.com/catalog-inventory/services/internal/inventory/domain"
	"github.com/catalog-inventory/services/internal/observability"
)

// Store is the inventory persistence port.
type Store interface {
	GetByProductID(ctx context.Context, productID int64) (*domain.InventoryRecord, error)
	Upsert(ctx context.Context, productID, quantity int64) (*domain.InventoryRecord, error)
}

// InventoryService coordinates the two operations that touch both stores. It
// owns no ambient state; the store, the directory client, and the
// observability ports are injected at construction.
type InventoryService struct {
	store     Store
	directory directory.Client
	log       observability.Logger
	tracer    observability.TraceCtx
}

func NewInventoryService(store Store, dir directory.Client, log observability.Logger, tracer observability.TraceCtx) *InventoryService {
	if log == nil {
		log = observability.NopLogger()
	}
	if tracer == nil {
		tracer = observability.NopTracer()
	}
	return &InventoryService{store: store, directory: dir, log: log, tracer: tracer}
}

// GetInventory returns the persisted quantity merged with the product's live
// attributes. The local lookup runs first: an absent row is NotFound without
// any directory call. A directory failure after the row was found fails the
// whole read; there is no stale or partial fallback.
func (s *InventoryService) GetInventory(ctx context.Context, productID int64) (*domain.MergedInventory, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.get",
		attribute.Int64("product.id", productID))
	defer span.End()

	record, err := s.store.GetByProductID(ctx, productID)
	if err != nil {
		if apperr.Is(err, apperr.NotFound) {
			s.log.Warn("inventory not found", observability.F("productId", productID))
		} else {
			s.log.Error("inventory lookup failed",
				observability.F("productId", productID),
				observability.F("error", err.Error()),
			)
		}
		return nil, err
	}

	attrs, err := s.directory.GetProduct(ctx, productID)
	if err != nil {
		s.log.Error("product attributes fetch failed",
			observability.F("productId", productID),
			observability.F("error", err.Error()),
		)
		return nil, err
	}

	s.log.Info("inventory fetched", observability.F("productId", productID))
	return &domain.MergedInventory{
		ProductID:  record.ProductID,
		Quantity:   record.Quantity,
		Attributes: attrs,
	}, nil
}

// UpdateInventory verifies the product exists in the products service and
// only then upserts the quantity. The ordering is mandatory: no mutation ever
// precedes a successful verification, so a failed write leaves the store
// untouched. Quantity is stored as given; negative values pass through.
func (s *InventoryService) UpdateInventory(ctx context.Context, productID, quantity int64) (*domain.StockLevel, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.update",
		attribute.Int64("product.id", productID),
		attribute.Int64("inventory.quantity", quantity))
	defer span.End()

	if _, err := s.directory.GetProduct(ctx, productID); err != nil {
		s.log.Error("product verification failed",
			observability.F("productId", productID),
			observability.F("error", err.Error()),
		)
		return nil, apperr.Wrap(apperr.ProductVerificationFailed, "inventory.UpdateInventory", err)
	}

	record, err := s.store.Upsert(ctx, productID, quantity)
	if err != nil {
		s.log.Error("inventory upsert failed",
			observability.F("productId", productID),
			observability.F("error", err.Error()),
		)
		return nil, err
	}

	s.log.Info("inventory updated",
		observability.F("productId", record.ProductID),
		observability.F("quantity", record.Quantity),
	)
	return &domain.StockLevel{ProductID: record.ProductID, Quantity: record.Quantity}, nil
}
