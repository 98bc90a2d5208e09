package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gofiber/fiber/v2"

	"github.com/catalog-inventory/services/internal/apperr"
	"github.com/catalog-inventory/services/internal/observability"
	"github.com/catalog-inventory/services/internal/products/domain"
	"github.com/catalog-inventory/services/internal/products/handlers"
	"github.com/catalog-inventory/services/internal/products/service"
)

type stubStore struct {
	nextID int64
	rows   map[int64]domain.Product
}

func newStubStore() *stubStore {
	return &stubStore{nextID: 1, rows: map[int64]domain.Product{}}
}

func (s *stubStore) Create(_ context.Context, name string, price float64) (*domain.Product, error) {
	p := domain.Product{ID: s.nextID, Name: name, Price: price, IsActive: true}
	s.rows[p.ID] = p
	s.nextID++
	return &p, nil
}

func (s *stubStore) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := s.rows[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "stub.GetByID", "product not found")
	}
	return &p, nil
}

func (s *stubStore) Update(_ context.Context, product *domain.Product) error {
	s.rows[product.ID] = *product
	return nil
}

func (s *stubStore) SoftDelete(_ context.Context, id int64) error {
	p, ok := s.rows[id]
	if !ok {
		return apperr.New(apperr.NotFound, "stub.SoftDelete", "product not found")
	}
	p.IsActive = false
	s.rows[id] = p
	return nil
}

func (s *stubStore) List(_ context.Context, _ domain.ListFilter) ([]*domain.Product, error) {
	var out []*domain.Product
	for id := int64(1); id < s.nextID; id++ {
		p := s.rows[id]
		out = append(out, &p)
	}
	return out, nil
}

func newApp(store service.Store) *fiber.App {
	app := fiber.New()
	svc := service.NewProductService(store, observability.NopLogger(), nil)
	handlers.NewProductHandler(svc).Register(app)
	return app
}

func do(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var decoded map[string]any
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}

func TestCreateProduct(t *testing.T) {
	c := qt.New(t)
	app := newApp(newStubStore())

	resp, body := do(t, app, http.MethodPost, "/products", `{"name":"Widget","price":9.5}`)

	c.Assert(resp.StatusCode, qt.Equals, http.StatusCreated)
	data := body["data"].(map[string]any)
	c.Assert(data["type"], qt.Equals, "products")
	attrs := data["attributes"].(map[string]any)
	c.Assert(attrs["name"], qt.Equals, "Widget")
	c.Assert(attrs["isActive"], qt.Equals, true)
}

func TestCreateProductValidationError(t *testing.T) {
	c := qt.New(t)
	app := newApp(newStubStore())

	resp, body := do(t, app, http.MethodPost, "/products", `{"price":1}`)

	c.Assert(resp.StatusCode, qt.Equals, http.StatusBadRequest)
	errs := body["errors"].([]any)
	c.Assert(errs[0].(map[string]any)["code"], qt.Equals, "invalid_input")
}

func TestGetProductNotFound(t *testing.T) {
	c := qt.New(t)
	app := newApp(newStubStore())

	resp, _ := do(t, app, http.MethodGet, "/products/99", "")

	c.Assert(resp.StatusCode, qt.Equals, http.StatusNotFound)
}

func TestDeleteProductReturnsNoContent(t *testing.T) {
	c := qt.New(t)
	store := newStubStore()
	app := newApp(store)

	_, _ = do(t, app, http.MethodPost, "/products", `{"name":"Widget","price":1}`)
	resp, _ := do(t, app, http.MethodDelete, "/products/1", "")

	c.Assert(resp.StatusCode, qt.Equals, http.StatusNoContent)
	c.Assert(store.rows[1].IsActive, qt.IsFalse)
}

func TestListProducts(t *testing.T) {
	c := qt.New(t)
	app := newApp(newStubStore())

	_, _ = do(t, app, http.MethodPost, "/products", `{"name":"A","price":1}`)
	_, _ = do(t, app, http.MethodPost, "/products", `{"name":"B","price":2}`)

	resp, body := do(t, app, http.MethodGet, "/products", "")

	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)
	c.Assert(body["data"].([]any), qt.HasLen, 2)
}

func TestListProductsInvalidPagination(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "non-numeric page", target: "/products?page=abc"},
		{name: "non-numeric limit", target: "/products?limit=ten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			app := newApp(newStubStore())

			resp, body := do(t, app, http.MethodGet, tt.target, "")

			c.Assert(resp.StatusCode, qt.Equals, http.StatusBadRequest)
			errs := body["errors"].([]any)
			c.Assert(errs[0].(map[string]any)["code"], qt.Equals, "invalid_input")
		})
	}
}
