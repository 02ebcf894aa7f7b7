package http

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/wareline/supplydesk-api/internal/application/billing"
	"github.com/wareline/supplydesk-api/internal/application/dto"
	"github.com/wareline/supplydesk-api/internal/domain"
)

// InvoiceHandler handles the billing endpoints (protected).
type InvoiceHandler struct {
	uc *billing.GenerateInvoiceUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(uc *billing.GenerateInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Generate godoc
// @Summary      Generate an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateInvoiceRequest  true  "customer and items"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      422   {object}  dto.InvoiceFailureResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	invoice, err := h.uc.Generate(c.Context(), in)
	if err != nil {
		var sf *billing.StepFailure
		if errors.As(err, &sf) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.InvoiceFailureResponse{
				Errors:     sf.Errors,
				FailedStep: sf.Step,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// GetByNumber godoc
// @Summary      Get an invoice by number
// @Tags         invoices
// @Produce      json
// @Param        number  path  string  true  "invoice number, e.g. INV-000042"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{number} [get]
func (h *InvoiceHandler) GetByNumber(c *fiber.Ctx) error {
	number := c.Params("number")
	if number == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invoice number required"})
	}
	invoice, err := h.uc.GetInvoice(c.Context(), number)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invoice not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(invoice)
}

// DownloadPDF godoc
// @Summary      Download the invoice PDF
// @Tags         invoices
// @Produce      application/pdf
// @Param        number  path  string  true  "invoice number"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{number}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	number := c.Params("number")
	invoice, err := h.uc.GetInvoice(c.Context(), number)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invoice not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if _, err := os.Stat(invoice.PDFPath); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invoice file not found"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.SendFile(invoice.PDFPath)
}
