package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/catalog-inventory/services/internal/products/domain"
	"github.com/catalog-inventory/services/internal/products/service"
	"github.com/catalog-inventory/services/internal/shared/httpapi"
)

type ProductHandler struct {
	productService *service.ProductService
}

func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) Register(router fiber.Router) {
	router.Post("/products", h.CreateProduct)
	router.Get("/products", h.ListProducts)
	router.Get("/products/:id", h.GetProduct)
	router.Put("/products/:id", h.UpdateProduct)
	router.Delete("/products/:id", h.DeleteProduct)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req domain.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return httpapi.Error(c, fiber.StatusBadRequest, "invalid_input", "Invalid request body")
	}

	product, err := h.productService.CreateProduct(c.Context(), req)
	if err != nil {
		return httpapi.ErrorFromKind(c, err)
	}

	return httpapi.Resource(c, fiber.StatusCreated, "products", product.ID, toAttributes(product))
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return httpapi.Error(c, fiber.StatusBadRequest, "invalid_input", "Invalid product ID")
	}

	product, err := h.productService.GetProduct(c.Context(), id)
	if err != nil {
		return httpapi.ErrorFromKind(c, err)
	}

	return httpapi.Resource(c, fiber.StatusOK, "products", product.ID, toAttributes(product))
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return httpapi.Error(c, fiber.StatusBadRequest, "invalid_input", "Invalid product ID")
	}

	var req domain.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return httpapi.Error(c, fiber.StatusBadRequest, "invalid_input", "Invalid request body")
	}

	product, err := h.productService.UpdateProduct(c.Context(), id, req)
	if err != nil {
		return httpapi.ErrorFromKind(c, err)
	}

	return httpapi.Resource(c, fiber.StatusOK, "products", product.ID, toAttributes(product))
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return httpapi.Error(c, fiber.StatusBadRequest, "invalid_input", "Invalid product ID")
	}

	if err := h.productService.DeleteProduct(c.Context(), id); err != nil {
		return httpapi.ErrorFromKind(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil {
		return httpapi.Error(c, fiber.StatusBadRequest, "invalid_input", "Invalid pagination parameters")
	}
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		return httpapi.Error(c, fiber.StatusBadRequest, "invalid_input", "Invalid pagination parameters")
	}

	filter := domain.ListFilter{Page: page, Limit: limit}
	switch c.Query("isActive") {
	case "true":
		active := true
		filter.IsActive = &active
	case "false":
		active := false
		filter.IsActive = &active
	}

	products, err := h.productService.ListProducts(c.Context(), filter)
	if err != nil {
		return httpapi.ErrorFromKind(c, err)
	}

	ids := make([]any, len(products))
	attrs := make([]any, len(products))
	for i, p := range products {
		ids[i] = p.ID
		attrs[i] = toAttributes(p)
	}
	return httpapi.ResourceList(c, "products", ids, attrs)
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
