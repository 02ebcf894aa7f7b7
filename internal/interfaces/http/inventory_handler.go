package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wareline/supplydesk-api/internal/application/dto"
	"github.com/wareline/supplydesk-api/internal/application/inventory"
)

// InventoryHandler handles the stock reporting endpoints (protected).
type InventoryHandler struct {
	uc *inventory.InventoryUseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(uc *inventory.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Levels godoc
// @Summary      List per-product stock levels
// @Tags         inventory
// @Produce      json
// @Param        category             query  string  false  "narrow to one category"
// @Param        low_stock_threshold  query  int     false  "only rows under this threshold"
// @Success      200  {array}  dto.StockLevelResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) Levels(c *fiber.Ctx) error {
	levels, err := h.uc.StockLevels(c.Query("category"), int64(c.QueryInt("low_stock_threshold")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(levels)
}

// Summary godoc
// @Summary      Aggregate stock report (admin only)
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.InventorySummaryResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/inventory/summary [get]
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}
