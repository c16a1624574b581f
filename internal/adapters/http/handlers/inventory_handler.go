package handlers

import (
	"strings"

	"donorly/internal/adapters/http/middleware"
	"donorly/internal/core/services"
	"donorly/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// InventoryHandler handles blood inventory endpoints
type InventoryHandler struct {
	inventoryService *services.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// UpdateStockRequest represents stock update request body
type UpdateStockRequest struct {
	BloodGroup string `json:"blood_group"`
	Units      *int   `json:"units"`
}

// Get handles inventory retrieval
// @Summary Get inventory
// @Description Inventory for the calling organization, created on first access
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /inventory [get]
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	principal := middleware.GetPrincipal(c)

	inventory, err := h.inventoryService.GetOrCreate(c.Context(), principal.ID())
	if err != nil {
		return response.InternalServerError(c, "Failed to load inventory")
	}

	return response.Success(c, "", inventory)
}

// Update handles per-group stock update
// @Summary Update stock
// @Description Set the absolute unit count for one blood group
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateStockRequest true "Stock update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /inventory [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var req UpdateStockRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.BloodGroup) == "" {
		return response.BadRequest(c, "Blood group is required")
	}
	if req.Units == nil {
		return response.BadRequest(c, "Units is required")
	}
	if *req.Units < 0 {
		return response.BadRequest(c, "Units cannot be negative")
	}

	principal := middleware.GetPrincipal(c)

	inventory, err := h.inventoryService.SetQuantity(c.Context(), principal.ID(), req.BloodGroup, *req.Units)
	if err != nil {
		return response.InternalServerError(c, "Failed to update inventory")
	}

	return response.Success(c, "Inventory updated", inventory)
}
