package domain

import "time"

// Product is the catalog aggregate. IDs are stable and never reused; removal
// is a soft delete that clears IsActive.
type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// UpdateProductRequest carries partial updates; nil fields are left untouched.
type UpdateProductRequest struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	IsActive *bool    `json:"isActive"`
}

// ListFilter drives pagination and the optional active-flag filter.
type ListFilter struct {
	Page     int
	Limit    int
	IsActive *bool
}

// Offset converts page/limit into a row offset, with the same defaults the
// list endpoint documents (page 1, limit 10).
func (f ListFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.EffectiveLimit()
}

func (f ListFilter) EffectiveLimit() int {
	if f.Limit < 1 {
		return 10
	}
	return f.Limit
}
