package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/catalog-inventory/services/internal/apperr"
	"github.com/catalog-inventory/services/internal/observability"
	"github.com/catalog-inventory/services/internal/products/domain"
)

// Store is the product persistence port.
type Store interface {
	Create(ctx context.Context, name string, price float64) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	SoftDelete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Product, error)
}

type ProductService struct {
	store  Store
	log    observability.Logger
	tracer observability.TraceCtx
}

func NewProductService(store Store, log observability.Logger, tracer observability.TraceCtx) *ProductService {
	if log == nil {
		log = observability.NopLogger()
	}
	if tracer == nil {
		tracer = observability.NopTracer()
	}
	return &ProductService{store: store, log: log, tracer: tracer}
}

func (s *ProductService) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "products.create")
	defer span.End()

	if req.Name == "" {
		return nil, apperr.New(apperr.InvalidInput, "products.CreateProduct", "name is required")
	}
	if req.Price < 0 {
		return nil, apperr.New(apperr.InvalidInput, "products.CreateProduct", "price must not be negative")
	}

	product, err := s.store.Create(ctx, req.Name, req.Price)
	if err != nil {
		s.log.Error("product create failed", observability.F("error", err.Error()))
		return nil, err
	}

	s.log.Info("product created", observability.F("productId", product.ID))
	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "products.get", attribute.Int64("product.id", id))
	defer span.End()

	product, err := s.store.GetByID(ctx, id)
	if err != nil {
		if apperr.Is(err, apperr.NotFound) {
			s.log.Warn("product not found", observability.F("productId", id))
		} else {
			s.log.Error("product fetch failed", observability.F("productId", id), observability.F("error", err.Error()))
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int64, req domain.UpdateProductRequest) (*domain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "products.update", attribute.Int64("product.id", id))
	defer span.End()

	if req.Price != nil && *req.Price < 0 {
		return nil, apperr.New(apperr.InvalidInput, "products.UpdateProduct", "price must not be negative")
	}

	product, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.store.Update(ctx, product); err != nil {
		s.log.Error("product update failed", observability.F("productId", id), observability.F("error", err.Error()))
		return nil, err
	}

	s.log.Info("product updated", observability.F("productId", id))
	return product, nil
}

// DeleteProduct marks the product inactive. The row stays so its id is never
// reused and inventory references keep resolving historically.
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "products.delete", attribute.Int64("product.id", id))
	defer span.End()

	if err := s.store.SoftDelete(ctx, id); err != nil {
		if apperr.Is(err, apperr.NotFound) {
			s.log.Warn("product not found for deletion", observability.F("productId", id))
		} else {
			s.log.Error("product delete failed", observability.F("productId", id), observability.F("error", err.Error()))
		}
		return err
	}

	s.log.Info("product marked inactive", observability.F("productId", id))
	return nil
}

func (s *ProductService) ListProducts(ctx context.Context, filter domain.ListFilter) ([]*domain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "products.list")
	defer span.End()

	products, err := s.store.List(ctx, filter)
	if err != nil {
		s.log.Error("product list failed", observability.F("error", err.Error()))
		return nil, err
	}

	s.log.Info("products listed", observability.F("count", len(products)))
	return products, nil
}
