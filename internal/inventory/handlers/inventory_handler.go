package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/catalog-inventory/services/internal/inventory/service"
	"github.com/catalog-inventory/services/internal/shared/httpapi"
)

type InventoryHandler struct {
	inventoryService *service.InventoryService
}

func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (h *InventoryHandler) Register(router fiber.Router) {
	router.Get("/inventory/:productId", h.GetInventory)
	router.Patch("/inventory/:productId", h.UpdateInventory)
}

type updateInventoryRequest struct {
	Quantity *int64 `json:"quantity"`
}

func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Params("productId"), 10, 64)
	if err != nil {
		return httpapi.Error(c, fiber.StatusBadRequest, "invalid_input", "Invalid product ID")
	}

	merged, err := h.inventoryService.GetInventory(c.Context(), productID)
	if err != nil {
		return httpapi.ErrorFromKind(c, err)
	}

	return httpapi.Resource(c, fiber.StatusOK, "inventory", merged.ProductID, merged.Flatten())
}

func (h *InventoryHandler) UpdateInventory(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Params("productId"), 10, 64)
	if err != nil {
		return httpapi.Error(c, fiber.StatusBadRequest, "invalid_input", "Invalid product ID")
	}

	var req updateInventoryRequest
	if err := c.BodyParser(&req); err != nil || req.Quantity == nil {
		return httpapi.Error(c, fiber.StatusBadRequest, "invalid_input", "Invalid quantity")
	}

	written, err := h.inventoryService.UpdateInventory(c.Context(), productID, *req.Quantity)
	if err != nil {
		return httpapi.ErrorFromKind(c, err)
	}

	return httpapi.Resource(c, fiber.StatusOK, "inventory", written.ProductID, written)
}
