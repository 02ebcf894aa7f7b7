package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wareline/supplydesk-api/internal/application/dto"
	"github.com/wareline/supplydesk-api/internal/application/orders"
	"github.com/wareline/supplydesk-api/internal/domain"
)

// OrderHandler handles order tracking endpoints (protected).
type OrderHandler struct {
	uc *orders.OrdersUseCase
}

// NewOrderHandler builds the handler.
func NewOrderHandler(uc *orders.OrdersUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Track godoc
// @Summary      Track one order
// @Tags         orders
// @Produce      json
// @Param        identifier  path  string  true  "order id or tracking number, case-insensitive"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{identifier} [get]
func (h *OrderHandler) Track(c *fiber.Ctx) error {
	identifier := c.Params("identifier")
	if identifier == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "order id or tracking number required"})
	}
	order, err := h.uc.Track(identifier)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(order)
}

// History godoc
// @Summary      List a customer's recent orders
// @Tags         orders
// @Produce      json
// @Param        email  query  string  true   "customer email"
// @Param        limit  query  int     false  "max rows, default 5"
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *OrderHandler) History(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email required"})
	}
	list, err := h.uc.History(email, c.QueryInt("limit"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
