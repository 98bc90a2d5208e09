package handlers

import (
	"time"

	"github.com/catalog-inventory/services/internal/products/domain"
)

// ProductAttributes is the attribute block of a product resource.
type ProductAttributes struct {
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toAttributes(p *domain.Product) ProductAttributes {
	return ProductAttributes{
		Name:      p.Name,
		Price:     p.Price,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
