package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wareline/supplydesk-api/internal/application/catalog"
	"github.com/wareline/supplydesk-api/internal/application/dto"
	"github.com/wareline/supplydesk-api/internal/domain"
)

// ProductHandler handles the catalog endpoints (protected).
type ProductHandler struct {
	uc *catalog.CatalogUseCase
}

// NewProductHandler builds the handler.
func NewProductHandler(uc *catalog.CatalogUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Search godoc
// @Summary      Search the catalog
// @Tags         products
// @Produce      json
// @Param        q         query  string  false  "match against name, description and specifications"
// @Param        category  query  string  false  "narrow to one category"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	products, err := h.uc.Search(c.Query("q"), c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(products)
}

// GetBySKU godoc
// @Summary      Get one product by SKU
// @Tags         products
// @Produce      json
// @Param        sku  path  string  true  "exact SKU, e.g. PP-ROPE-001"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{sku} [get]
func (h *ProductHandler) GetBySKU(c *fiber.Ctx) error {
	sku := c.Params("sku")
	if sku == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku required"})
	}
	product, err := h.uc.GetBySKU(sku)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(product)
}

// Categories godoc
// @Summary      List catalog categories
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/products/categories [get]
func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.uc.Categories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(cats)
}
